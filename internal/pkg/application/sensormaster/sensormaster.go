package sensormaster

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/brewmetrics/sensor-master/internal/pkg/application/commands"
	"github.com/brewmetrics/sensor-master/internal/pkg/application/configs"
	"github.com/brewmetrics/sensor-master/internal/pkg/application/registry"
	"github.com/brewmetrics/sensor-master/internal/pkg/application/scripts"
	"github.com/brewmetrics/sensor-master/internal/pkg/infrastructure/storage"
	"github.com/brewmetrics/sensor-master/pkg/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("sensor-master/protocol")

var ErrDeviceNotRegistered = fmt.Errorf("device not registered")
var ErrBadRequest = fmt.Errorf("bad request")

const DefaultCheckInInterval = 60

type Config struct {
	MasterName      string `yaml:"name"`
	MasterID        int    `yaml:"id"`
	ConfigEndpoint  string `yaml:"configEndpoint"`
	CheckInInterval int    `yaml:"checkInInterval"`
}

func (c Config) checkInInterval() int {
	if c.CheckInInterval <= 0 {
		return DefaultCheckInInterval
	}
	return c.CheckInInterval
}

func (c Config) configEndpoint() string {
	if c.ConfigEndpoint == "" {
		return "/api/sensor-master/config/"
	}
	return c.ConfigEndpoint
}

// TxRunner runs a function inside a single storage transaction.
type TxRunner interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
}

// SensorMaster is the device-facing protocol surface. Every operation runs
// as one transaction so concurrent check-ins from the same device never see
// half-applied state.
//
//go:generate moq -rm -out sensormaster_mock.go . SensorMaster
type SensorMaster interface {
	Register(ctx context.Context, req types.RegistrationRequest) (types.RegistrationResponse, error)
	GetConfig(ctx context.Context, sensorID, currentHash string) (types.ConfigResponse, error)
	Heartbeat(ctx context.Context, req types.HeartbeatRequest) (types.HeartbeatResponse, error)
	GetScript(ctx context.Context, sensorID string) (types.ScriptResponse, error)
	ScriptExecuted(ctx context.Context, sensorID string) error
	ReportVersion(ctx context.Context, sensorID, scriptVersion string, scriptID int64) error
}

type service struct {
	tx       TxRunner
	registry registry.Registry
	configs  configs.ConfigService
	commands commands.CommandQueue
	scripts  scripts.ScriptRegistry
	config   *Config
	nowFunc  func() time.Time
}

func New(tx TxRunner, reg registry.Registry, cfgs configs.ConfigService, queue commands.CommandQueue, registry scripts.ScriptRegistry, config *Config) SensorMaster {
	return &service{
		tx:       tx,
		registry: reg,
		configs:  cfgs,
		commands: queue,
		scripts:  registry,
		config:   config,
		nowFunc:  func() time.Time { return time.Now().UTC() },
	}
}

func (svc *service) Register(ctx context.Context, req types.RegistrationRequest) (types.RegistrationResponse, error) {
	var err error
	ctx, span := tracer.Start(ctx, "register")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	if req.SensorID == "" {
		err = fmt.Errorf("%w: sensor_id is required", ErrBadRequest)
		return types.RegistrationResponse{}, err
	}

	var response types.RegistrationResponse

	err = svc.tx.WithTx(ctx, func(ctx context.Context) error {
		_, err := svc.registry.Register(ctx, req)
		if err != nil {
			return err
		}

		resolution, err := svc.configs.Resolve(ctx, req.SensorID, "")
		if err != nil {
			return err
		}

		response = types.RegistrationResponse{
			Status:          "registered",
			AssignedMaster:  svc.config.MasterName,
			MasterID:        svc.config.MasterID,
			HasConfig:       resolution.Available,
			CheckInInterval: resolution.PollingInterval(svc.config.checkInInterval()),
			ConfigEndpoint:  svc.config.configEndpoint() + req.SensorID,
		}

		return nil
	})
	if err != nil {
		return types.RegistrationResponse{}, err
	}

	logging.GetFromContext(ctx).Info("device registered", "sensor_id", req.SensorID, "has_config", response.HasConfig)

	return response, nil
}

func (svc *service) GetConfig(ctx context.Context, sensorID, currentHash string) (types.ConfigResponse, error) {
	var err error
	ctx, span := tracer.Start(ctx, "get-config")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	now := svc.nowFunc()

	var response types.ConfigResponse

	err = svc.tx.WithTx(ctx, func(ctx context.Context) error {
		resolution, err := svc.configs.Resolve(ctx, sensorID, currentHash)
		if err != nil {
			return err
		}

		delivery, err := svc.commands.Dequeue(ctx, sensorID, now, commands.DeliveryLimit)
		if err != nil {
			return err
		}

		if resolution.Available && resolution.Changed {
			err = svc.registry.SetConfigHash(ctx, sensorID, resolution.Hash)
			if err != nil {
				return err
			}
		}

		response = types.ConfigResponse{
			ConfigAvailable: resolution.Available,
			ConfigChanged:   resolution.Changed,
			ConfigHash:      resolution.Hash,
			ConfigName:      resolution.Name,
			ConfigVersion:   resolution.Version,
			Config:          resolution.Config,
			Commands:        toCommandEntries(delivery),
			CheckInInterval: resolution.PollingInterval(svc.config.checkInInterval()),
		}

		return nil
	})
	if err != nil {
		return types.ConfigResponse{}, svc.mapError(err)
	}

	return response, nil
}

func (svc *service) Heartbeat(ctx context.Context, req types.HeartbeatRequest) (types.HeartbeatResponse, error) {
	var err error
	ctx, span := tracer.Start(ctx, "heartbeat")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	if req.SensorID == "" {
		err = fmt.Errorf("%w: sensor_id is required", ErrBadRequest)
		return types.HeartbeatResponse{}, err
	}

	now := svc.nowFunc()
	log := logging.GetFromContext(ctx)

	var response types.HeartbeatResponse

	err = svc.tx.WithTx(ctx, func(ctx context.Context) error {
		device, err := svc.registry.Heartbeat(ctx, req.SensorID, req.Metrics)
		if err != nil {
			return err
		}

		ackStatus := map[int64]string{}
		for _, ack := range req.CommandResults {
			err := svc.commands.Acknowledge(ctx, req.SensorID, ack.CommandID, ack.Result, ack.Message, now)
			if err != nil {
				// per-ack failures never poison the heartbeat
				if errors.Is(err, commands.ErrCommandNotFound) {
					ackStatus[ack.CommandID] = "not_found"
					log.Debug("ack for unknown command", "sensor_id", req.SensorID, "command_id", ack.CommandID)
					continue
				}
				return err
			}
			ackStatus[ack.CommandID] = "ok"
		}

		resolution, err := svc.configs.Resolve(ctx, req.SensorID, device.LastConfigHash)
		if err != nil {
			return err
		}

		delivery, err := svc.commands.Dequeue(ctx, req.SensorID, now, commands.DeliveryLimit)
		if err != nil {
			return err
		}

		response = types.HeartbeatResponse{
			Acknowledged:  true,
			ConfigUpdated: resolution.Available && resolution.Changed,
			Commands:      toCommandEntries(delivery),
			AckStatus:     ackStatus,
		}

		return nil
	})
	if err != nil {
		return types.HeartbeatResponse{}, svc.mapError(err)
	}

	return response, nil
}

func (svc *service) GetScript(ctx context.Context, sensorID string) (types.ScriptResponse, error) {
	var err error
	ctx, span := tracer.Start(ctx, "get-script")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	var response types.ScriptResponse

	err = svc.tx.WithTx(ctx, func(ctx context.Context) error {
		_, err := svc.registry.Get(ctx, sensorID)
		if err != nil {
			return err
		}

		payload, err := svc.scripts.Fetch(ctx, sensorID)
		if err != nil {
			return err
		}

		if !payload.Available {
			response = types.ScriptResponse{ScriptAvailable: false}
			return nil
		}

		response = types.ScriptResponse{
			ScriptAvailable: true,
			Script:          payload.Script.Content,
			Version:         payload.Script.Version,
			ID:              payload.Script.ID,
			Name:            payload.Script.Name,
			ContentHash:     payload.ContentHash,
		}

		return nil
	})
	if err != nil {
		return types.ScriptResponse{}, svc.mapError(err)
	}

	return response, nil
}

func (svc *service) ScriptExecuted(ctx context.Context, sensorID string) error {
	var err error
	ctx, span := tracer.Start(ctx, "script-executed")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	err = svc.scripts.ReportExecuted(ctx, sensorID, "", 0, svc.nowFunc())

	return svc.mapError(err)
}

func (svc *service) ReportVersion(ctx context.Context, sensorID, scriptVersion string, scriptID int64) error {
	var err error
	ctx, span := tracer.Start(ctx, "report-version")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	if scriptVersion == "" {
		err = fmt.Errorf("%w: script_version is required", ErrBadRequest)
		return err
	}

	err = svc.scripts.ReportExecuted(ctx, sensorID, scriptVersion, scriptID, svc.nowFunc())

	return svc.mapError(err)
}

func (svc *service) mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, registry.ErrDeviceNotFound) || errors.Is(err, configs.ErrUnknownDevice) || errors.Is(err, storage.ErrNoRows) {
		return ErrDeviceNotRegistered
	}

	return err
}

func toCommandEntries(delivery []types.Command) []types.CommandEntry {
	entries := make([]types.CommandEntry, 0, len(delivery))

	for _, c := range delivery {
		entry := types.CommandEntry{
			ID:          c.ID,
			CommandType: c.CommandType,
			CommandData: c.CommandData,
			Priority:    c.Priority,
		}
		if c.ExpiresAt != nil {
			expiresAt := c.ExpiresAt.UTC().Format(time.RFC3339)
			entry.ExpiresAt = &expiresAt
		}
		entries = append(entries, entry)
	}

	return entries
}
