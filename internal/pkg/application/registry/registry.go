package registry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/brewmetrics/sensor-master/internal/pkg/infrastructure/storage"
	"github.com/brewmetrics/sensor-master/pkg/types"
	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("sensor-master/registry")

var ErrDeviceNotFound = fmt.Errorf("device not found")

type Config struct {
	OnlineSeconds  int `yaml:"online"`
	OfflineSeconds int `yaml:"offline"`
}

func (c Config) OnlineThreshold() time.Duration {
	if c.OnlineSeconds <= 0 {
		return 5 * time.Minute
	}
	return time.Duration(c.OnlineSeconds) * time.Second
}

func (c Config) OfflineThreshold() time.Duration {
	if c.OfflineSeconds <= 0 {
		return 15 * time.Minute
	}
	return time.Duration(c.OfflineSeconds) * time.Second
}

//go:generate moq -rm -out devicerepository_mock.go . DeviceRepository
type DeviceRepository interface {
	GetDevice(ctx context.Context, conditions ...storage.ConditionFunc) (types.Device, error)
	QueryDevices(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Device], error)
	UpsertDevice(ctx context.Context, device types.Device) error
	TouchDevice(ctx context.Context, sensorID string, at time.Time, metrics json.RawMessage) error
	SetDeviceConfigHash(ctx context.Context, sensorID, hash string) error
	DeleteDevice(ctx context.Context, sensorID string) error
}

//go:generate moq -rm -out registry_mock.go . Registry
type Registry interface {
	Register(ctx context.Context, descriptor types.RegistrationRequest) (types.Device, error)
	Heartbeat(ctx context.Context, sensorID string, metrics json.RawMessage) (types.Device, error)
	Get(ctx context.Context, sensorID string) (types.Device, error)
	Query(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Device], error)
	SetConfigHash(ctx context.Context, sensorID, hash string) error
	Delete(ctx context.Context, sensorID string) error
}

type service struct {
	storage   DeviceRepository
	messenger messaging.MsgContext
	config    *Config
	nowFunc   func() time.Time
}

func New(s DeviceRepository, messenger messaging.MsgContext, config *Config) Registry {
	return &service{
		storage:   s,
		messenger: messenger,
		config:    config,
		nowFunc:   func() time.Time { return time.Now().UTC() },
	}
}

// Register upserts the device record. The sensor id is stable across
// reboots; re-registration only refreshes the descriptive fields.
func (svc *service) Register(ctx context.Context, descriptor types.RegistrationRequest) (types.Device, error) {
	var err error
	ctx, span := tracer.Start(ctx, "register-device")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	now := svc.nowFunc()

	err = svc.storage.UpsertDevice(ctx, types.Device{
		SensorID:        descriptor.SensorID,
		SensorType:      descriptor.SensorType,
		SensorName:      descriptor.SensorName,
		HardwareInfo:    descriptor.HardwareInfo,
		FirmwareVersion: descriptor.FirmwareVersion,
		IPAddress:       descriptor.IPAddress,
		MACAddress:      descriptor.MACAddress,
		Capabilities:    descriptor.Capabilities,
		LastCheckIn:     now,
	})
	if err != nil {
		return types.Device{}, err
	}

	device, err := svc.Get(ctx, descriptor.SensorID)
	if err != nil {
		return types.Device{}, err
	}

	svc.publish(ctx, &deviceRegistered{SensorID: device.SensorID, SensorType: device.SensorType, ObservedAt: now})

	return device, nil
}

// Heartbeat advances last_check_in (monotonic max on concurrent calls) and
// stores the reported metrics.
func (svc *service) Heartbeat(ctx context.Context, sensorID string, metrics json.RawMessage) (types.Device, error) {
	var err error
	ctx, span := tracer.Start(ctx, "device-heartbeat")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	now := svc.nowFunc()

	err = svc.storage.TouchDevice(ctx, sensorID, now, metrics)
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return types.Device{}, ErrDeviceNotFound
		}
		return types.Device{}, err
	}

	device, err := svc.Get(ctx, sensorID)
	if err != nil {
		return types.Device{}, err
	}

	svc.publish(ctx, &deviceCheckIn{SensorID: device.SensorID, ObservedAt: now})

	return device, nil
}

func (svc *service) Get(ctx context.Context, sensorID string) (types.Device, error) {
	device, err := svc.storage.GetDevice(ctx, storage.WithSensorID(sensorID))
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return types.Device{}, ErrDeviceNotFound
		}
		return types.Device{}, err
	}

	device.Status = ClassifyStatus(device, svc.nowFunc(), *svc.config)

	return device, nil
}

func (svc *service) Query(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Device], error) {
	collection, err := svc.storage.QueryDevices(ctx, conditions...)
	if err != nil {
		return types.Collection[types.Device]{}, err
	}

	now := svc.nowFunc()
	for i := range collection.Data {
		collection.Data[i].Status = ClassifyStatus(collection.Data[i], now, *svc.config)
	}

	return collection, nil
}

// SetConfigHash records the hash the device most recently consumed. The
// endpoint layer calls this after a successful config delivery.
func (svc *service) SetConfigHash(ctx context.Context, sensorID, hash string) error {
	err := svc.storage.SetDeviceConfigHash(ctx, sensorID, hash)
	if errors.Is(err, storage.ErrNoRows) {
		return ErrDeviceNotFound
	}

	return err
}

func (svc *service) Delete(ctx context.Context, sensorID string) error {
	err := svc.storage.DeleteDevice(ctx, sensorID)
	if errors.Is(err, storage.ErrNoRows) {
		return ErrDeviceNotFound
	}

	return err
}

func (svc *service) publish(ctx context.Context, msg messaging.TopicMessage) {
	if svc.messenger == nil {
		return
	}

	err := svc.messenger.PublishOnTopic(ctx, msg)
	if err != nil {
		logging.GetFromContext(ctx).Warn("failed to publish message", "topic", msg.TopicName(), "err", err.Error())
	}
}

// ClassifyStatus derives the liveness class from last_check_in. A device that
// checks in but has never had a config delivered is pending rather than
// online.
func ClassifyStatus(device types.Device, now time.Time, config Config) string {
	sinceCheckIn := now.Sub(device.LastCheckIn)

	if sinceCheckIn > config.OfflineThreshold() {
		return types.StatusOffline
	}

	if sinceCheckIn <= config.OnlineThreshold() {
		if device.LastConfigHash == "" {
			return types.StatusPending
		}
		return types.StatusOnline
	}

	// between thresholds: still reachable as far as we know
	if device.LastConfigHash == "" {
		return types.StatusPending
	}

	return types.StatusOnline
}
