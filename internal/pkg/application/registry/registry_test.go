package registry

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/brewmetrics/sensor-master/internal/pkg/infrastructure/storage"
	"github.com/brewmetrics/sensor-master/pkg/types"
	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/matryer/is"
)

func TestClassifyStatus(t *testing.T) {
	is := is.New(t)

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	config := Config{OnlineSeconds: 300, OfflineSeconds: 900}

	tests := []struct {
		name     string
		checkIn  time.Time
		hash     string
		expected string
	}{
		{"fresh check-in with config", now.Add(-time.Minute), "somehash", types.StatusOnline},
		{"fresh check-in without config", now.Add(-time.Minute), "", types.StatusPending},
		{"between thresholds with config", now.Add(-10 * time.Minute), "somehash", types.StatusOnline},
		{"between thresholds without config", now.Add(-10 * time.Minute), "", types.StatusPending},
		{"past offline threshold", now.Add(-16 * time.Minute), "somehash", types.StatusOffline},
		{"past offline threshold without config", now.Add(-16 * time.Minute), "", types.StatusOffline},
	}

	for _, tt := range tests {
		status := ClassifyStatus(types.Device{LastCheckIn: tt.checkIn, LastConfigHash: tt.hash}, now, config)
		is.Equal(status, tt.expected) // tt.name
	}
}

func TestRegisterUpsertsAndPublishes(t *testing.T) {
	is := is.New(t)

	var stored types.Device

	repo := &DeviceRepositoryMock{
		UpsertDeviceFunc: func(ctx context.Context, device types.Device) error {
			stored = device
			return nil
		},
		GetDeviceFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Device, error) {
			return stored, nil
		},
	}
	m := &messaging.MsgContextMock{
		PublishOnTopicFunc: func(ctx context.Context, message messaging.TopicMessage) error {
			return nil
		},
	}

	svc := New(repo, m, &Config{})

	device, err := svc.Register(context.Background(), types.RegistrationRequest{
		SensorID:        "brew-001",
		SensorType:      "fermenter",
		FirmwareVersion: "1.2.0",
		Capabilities:    []string{"temperature", "gravity"},
	})
	is.NoErr(err)

	is.Equal(device.SensorID, "brew-001")
	is.Equal(stored.SensorType, "fermenter")
	is.True(!stored.LastCheckIn.IsZero())

	is.Equal(len(m.PublishOnTopicCalls()), 1)
	is.Equal(m.PublishOnTopicCalls()[0].Message.TopicName(), "device.registered")
}

func TestHeartbeatUnknownDevice(t *testing.T) {
	is := is.New(t)

	repo := &DeviceRepositoryMock{
		TouchDeviceFunc: func(ctx context.Context, sensorID string, at time.Time, metrics json.RawMessage) error {
			return storage.ErrNoRows
		},
	}

	svc := New(repo, nil, &Config{})

	_, err := svc.Heartbeat(context.Background(), "ghost", nil)
	is.Equal(err, ErrDeviceNotFound)
}

func TestHeartbeatTouchesAndPublishes(t *testing.T) {
	is := is.New(t)

	repo := &DeviceRepositoryMock{
		TouchDeviceFunc: func(ctx context.Context, sensorID string, at time.Time, metrics json.RawMessage) error {
			return nil
		},
		GetDeviceFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Device, error) {
			return types.Device{SensorID: "brew-001", LastCheckIn: time.Now().UTC(), LastConfigHash: "h"}, nil
		},
	}
	m := &messaging.MsgContextMock{
		PublishOnTopicFunc: func(ctx context.Context, message messaging.TopicMessage) error {
			return nil
		},
	}

	svc := New(repo, m, &Config{})

	device, err := svc.Heartbeat(context.Background(), "brew-001", []byte(`{"uptime":120}`))
	is.NoErr(err)

	is.Equal(device.Status, types.StatusOnline)
	is.Equal(len(repo.TouchDeviceCalls()), 1)
	is.Equal(string(repo.TouchDeviceCalls()[0].Metrics), `{"uptime":120}`)
	is.Equal(m.PublishOnTopicCalls()[0].Message.TopicName(), "device.checkIn")
}

func TestSetConfigHashUnknownDevice(t *testing.T) {
	is := is.New(t)

	repo := &DeviceRepositoryMock{
		SetDeviceConfigHashFunc: func(ctx context.Context, sensorID, hash string) error {
			return storage.ErrNoRows
		},
	}

	svc := New(repo, nil, &Config{})

	err := svc.SetConfigHash(context.Background(), "ghost", "somehash")
	is.Equal(err, ErrDeviceNotFound)
}
