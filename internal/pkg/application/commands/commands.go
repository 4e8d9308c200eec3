package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/brewmetrics/sensor-master/internal/pkg/infrastructure/storage"
	"github.com/brewmetrics/sensor-master/pkg/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("sensor-master/commands")

var ErrCommandNotFound = fmt.Errorf("command not found")
var ErrInvalidCommand = fmt.Errorf("invalid command")

const (
	ResultSuccess = "success"
	ResultError   = "error"
)

// DeliveryLimit caps the number of commands drained per device fetch.
const DeliveryLimit = 16

type Config struct {
	RetentionHours int `yaml:"retentionHours"`
}

func (c Config) Retention() time.Duration {
	if c.RetentionHours <= 0 {
		return 168 * time.Hour
	}
	return time.Duration(c.RetentionHours) * time.Hour
}

//go:generate moq -rm -out commandrepository_mock.go . CommandRepository
type CommandRepository interface {
	AddCommand(ctx context.Context, command types.Command) (int64, error)
	ExpireCommands(ctx context.Context, sensorID string, now time.Time) error
	SelectCommandsForDelivery(ctx context.Context, sensorID string, now time.Time, limit int) ([]types.Command, error)
	AcknowledgeCommand(ctx context.Context, sensorID string, commandID int64, status, message string, now time.Time) error
	GetCommand(ctx context.Context, conditions ...storage.ConditionFunc) (types.Command, error)
	QueryCommands(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Command], error)
	DeleteTerminalCommands(ctx context.Context, olderThan time.Time) (int64, error)
	DeleteCommand(ctx context.Context, id int64) error
}

//go:generate moq -rm -out commandqueue_mock.go . CommandQueue
type CommandQueue interface {
	Enqueue(ctx context.Context, command types.Command) (int64, error)
	Dequeue(ctx context.Context, sensorID string, now time.Time, limit int) ([]types.Command, error)
	Acknowledge(ctx context.Context, sensorID string, commandID int64, result, message string, now time.Time) error
	Get(ctx context.Context, id int64) (types.Command, error)
	Query(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Command], error)
	Delete(ctx context.Context, id int64) error
	GC(ctx context.Context, now time.Time) error
}

type service struct {
	storage CommandRepository
	config  *Config
}

func New(s CommandRepository, config *Config) CommandQueue {
	return &service{storage: s, config: config}
}

func (svc *service) Enqueue(ctx context.Context, command types.Command) (int64, error) {
	if command.SensorID == "" || command.CommandType == "" {
		return 0, ErrInvalidCommand
	}

	return svc.storage.AddCommand(ctx, command)
}

// Dequeue expires overdue entries, then delivers up to limit pending
// commands in strict (priority, created_at) order. Callers run it inside a
// transaction so the sweep and the delivery are atomic.
func (svc *service) Dequeue(ctx context.Context, sensorID string, now time.Time, limit int) ([]types.Command, error) {
	var err error
	ctx, span := tracer.Start(ctx, "dequeue-commands")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	if limit <= 0 || limit > DeliveryLimit {
		limit = DeliveryLimit
	}

	err = svc.storage.ExpireCommands(ctx, sensorID, now)
	if err != nil {
		return nil, err
	}

	return svc.storage.SelectCommandsForDelivery(ctx, sensorID, now, limit)
}

// Acknowledge resolves a delivered command. Unknown ids map to
// ErrCommandNotFound so that retries from rebooted devices stay non-fatal;
// acks for already terminal commands are silently accepted.
func (svc *service) Acknowledge(ctx context.Context, sensorID string, commandID int64, result, message string, now time.Time) error {
	status := types.CommandFailed
	if result == ResultSuccess {
		status = types.CommandCompleted
	}

	err := svc.storage.AcknowledgeCommand(ctx, sensorID, commandID, status, message, now)
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return ErrCommandNotFound
		}
		return err
	}

	return nil
}

func (svc *service) Get(ctx context.Context, id int64) (types.Command, error) {
	command, err := svc.storage.GetCommand(ctx, storage.WithID(id))
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return types.Command{}, ErrCommandNotFound
		}
		return types.Command{}, err
	}

	return command, nil
}

func (svc *service) Query(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Command], error) {
	return svc.storage.QueryCommands(ctx, conditions...)
}

func (svc *service) Delete(ctx context.Context, id int64) error {
	err := svc.storage.DeleteCommand(ctx, id)
	if errors.Is(err, storage.ErrNoRows) {
		return ErrCommandNotFound
	}

	return err
}

func (svc *service) GC(ctx context.Context, now time.Time) error {
	deleted, err := svc.storage.DeleteTerminalCommands(ctx, now.Add(-svc.config.Retention()))
	if err != nil {
		return err
	}

	if deleted > 0 {
		logging.GetFromContext(ctx).Debug("garbage collected terminal commands", "count", deleted)
	}

	return nil
}
