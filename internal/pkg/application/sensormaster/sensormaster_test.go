package sensormaster

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/brewmetrics/sensor-master/internal/pkg/application/commands"
	"github.com/brewmetrics/sensor-master/internal/pkg/application/configs"
	"github.com/brewmetrics/sensor-master/internal/pkg/application/registry"
	"github.com/brewmetrics/sensor-master/internal/pkg/application/scripts"
	"github.com/brewmetrics/sensor-master/internal/pkg/infrastructure/storage"
	"github.com/brewmetrics/sensor-master/pkg/types"
	"github.com/matryer/is"
)

type passthroughTx struct{}

func (passthroughTx) WithTx(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

type countingTx struct {
	calls int
}

func (c *countingTx) WithTx(ctx context.Context, fn func(context.Context) error) error {
	c.calls++
	return fn(ctx)
}

func emptyQueue() *commands.CommandQueueMock {
	return &commands.CommandQueueMock{
		DequeueFunc: func(ctx context.Context, sensorID string, now time.Time, limit int) ([]types.Command, error) {
			return nil, nil
		},
	}
}

func TestRegisterReturnsAssignmentAndConfigAdvice(t *testing.T) {
	is := is.New(t)

	reg := &registry.RegistryMock{
		RegisterFunc: func(ctx context.Context, descriptor types.RegistrationRequest) (types.Device, error) {
			return types.Device{SensorID: descriptor.SensorID, SensorType: descriptor.SensorType}, nil
		},
	}
	cfgs := &configs.ConfigServiceMock{
		ResolveFunc: func(ctx context.Context, sensorID, deviceLastHash string) (configs.Resolution, error) {
			return configs.Resolution{
				Available: true,
				Changed:   true,
				Hash:      "a1b2c3d4e5f60718",
				Config:    json.RawMessage(`{"polling_interval":30}`),
			}, nil
		},
	}

	svc := New(passthroughTx{}, reg, cfgs, emptyQueue(), &scripts.ScriptRegistryMock{}, &Config{
		MasterName: "master-001",
		MasterID:   1,
	})

	response, err := svc.Register(context.Background(), types.RegistrationRequest{SensorID: "brew-001", SensorType: "fermenter"})
	is.NoErr(err)

	is.Equal(response.Status, "registered")
	is.Equal(response.AssignedMaster, "master-001")
	is.Equal(response.MasterID, 1)
	is.True(response.HasConfig)
	is.Equal(response.CheckInInterval, 30)
	is.Equal(response.ConfigEndpoint, "/api/sensor-master/config/brew-001")
}

func TestRegisterRequiresSensorID(t *testing.T) {
	is := is.New(t)

	svc := New(passthroughTx{}, &registry.RegistryMock{}, &configs.ConfigServiceMock{}, emptyQueue(), &scripts.ScriptRegistryMock{}, &Config{})

	_, err := svc.Register(context.Background(), types.RegistrationRequest{})
	is.True(errors.Is(err, ErrBadRequest))
}

func TestGetConfigDeliversAndRecordsHash(t *testing.T) {
	is := is.New(t)

	expiresAt := time.Date(2026, 3, 1, 13, 0, 0, 0, time.UTC)

	cfgs := &configs.ConfigServiceMock{
		ResolveFunc: func(ctx context.Context, sensorID, deviceLastHash string) (configs.Resolution, error) {
			return configs.Resolution{
				Available: true,
				Changed:   true,
				Hash:      "ffeeddccbbaa0099",
				Name:      "fermenters",
				Version:   3,
				Config:    json.RawMessage(`{"target_temp":18.5}`),
			}, nil
		},
	}
	reg := &registry.RegistryMock{
		SetConfigHashFunc: func(ctx context.Context, sensorID, hash string) error {
			return nil
		},
	}
	queue := &commands.CommandQueueMock{
		DequeueFunc: func(ctx context.Context, sensorID string, now time.Time, limit int) ([]types.Command, error) {
			return []types.Command{
				{ID: 11, CommandType: "reboot", Priority: 1, Status: types.CommandDelivered, ExpiresAt: &expiresAt},
				{ID: 12, CommandType: "set_interval", CommandData: json.RawMessage(`{"seconds":30}`), Priority: 5, Status: types.CommandDelivered},
			}, nil
		},
	}

	svc := New(passthroughTx{}, reg, cfgs, queue, &scripts.ScriptRegistryMock{}, &Config{})

	response, err := svc.GetConfig(context.Background(), "brew-001", "oldhash000000000")
	is.NoErr(err)

	is.True(response.ConfigAvailable)
	is.True(response.ConfigChanged)
	is.Equal(response.ConfigHash, "ffeeddccbbaa0099")
	is.Equal(response.ConfigVersion, 3)

	is.Equal(len(response.Commands), 2)
	is.Equal(response.Commands[0].ID, int64(11))
	is.Equal(*response.Commands[0].ExpiresAt, "2026-03-01T13:00:00Z")
	is.Equal(response.Commands[1].ExpiresAt, (*string)(nil))

	is.Equal(len(reg.SetConfigHashCalls()), 1)
	is.Equal(reg.SetConfigHashCalls()[0].Hash, "ffeeddccbbaa0099")
}

func TestGetConfigUnchangedDoesNotTouchDevice(t *testing.T) {
	is := is.New(t)

	cfgs := &configs.ConfigServiceMock{
		ResolveFunc: func(ctx context.Context, sensorID, deviceLastHash string) (configs.Resolution, error) {
			return configs.Resolution{Available: true, Changed: false, Hash: deviceLastHash}, nil
		},
	}
	reg := &registry.RegistryMock{}

	svc := New(passthroughTx{}, reg, cfgs, emptyQueue(), &scripts.ScriptRegistryMock{}, &Config{})

	response, err := svc.GetConfig(context.Background(), "brew-001", "a1b2c3d4e5f60718")
	is.NoErr(err)

	is.True(!response.ConfigChanged)
	is.Equal(len(reg.SetConfigHashCalls()), 0)
}

func TestGetConfigUnknownDevice(t *testing.T) {
	is := is.New(t)

	cfgs := &configs.ConfigServiceMock{
		ResolveFunc: func(ctx context.Context, sensorID, deviceLastHash string) (configs.Resolution, error) {
			return configs.Resolution{}, configs.ErrUnknownDevice
		},
	}

	svc := New(passthroughTx{}, &registry.RegistryMock{}, cfgs, emptyQueue(), &scripts.ScriptRegistryMock{}, &Config{})

	_, err := svc.GetConfig(context.Background(), "ghost", "")
	is.Equal(err, ErrDeviceNotRegistered)
}

func TestHeartbeatAcknowledgesResults(t *testing.T) {
	is := is.New(t)

	reg := &registry.RegistryMock{
		HeartbeatFunc: func(ctx context.Context, sensorID string, metrics json.RawMessage) (types.Device, error) {
			return types.Device{SensorID: sensorID, LastConfigHash: "currenthash00000"}, nil
		},
	}
	cfgs := &configs.ConfigServiceMock{
		ResolveFunc: func(ctx context.Context, sensorID, deviceLastHash string) (configs.Resolution, error) {
			return configs.Resolution{Available: true, Changed: false, Hash: deviceLastHash}, nil
		},
	}
	queue := &commands.CommandQueueMock{
		AcknowledgeFunc: func(ctx context.Context, sensorID string, commandID int64, result, message string, now time.Time) error {
			if commandID == 99 {
				return commands.ErrCommandNotFound
			}
			return nil
		},
		DequeueFunc: func(ctx context.Context, sensorID string, now time.Time, limit int) ([]types.Command, error) {
			return nil, nil
		},
	}

	svc := New(passthroughTx{}, reg, cfgs, queue, &scripts.ScriptRegistryMock{}, &Config{})

	response, err := svc.Heartbeat(context.Background(), types.HeartbeatRequest{
		SensorID: "brew-001",
		Metrics:  json.RawMessage(`{"battery":87}`),
		CommandResults: []types.CommandResult{
			{CommandID: 11, Result: commands.ResultSuccess},
			{CommandID: 99, Result: commands.ResultError, Message: "timeout"},
		},
	})
	is.NoErr(err)

	is.True(response.Acknowledged)
	is.True(!response.ConfigUpdated)
	is.Equal(response.AckStatus[11], "ok")
	is.Equal(response.AckStatus[99], "not_found")

	// resolution runs against the stored hash, not a device-supplied one
	is.Equal(cfgs.ResolveCalls()[0].DeviceLastHash, "currenthash00000")
}

func TestHeartbeatSignalsConfigUpdates(t *testing.T) {
	is := is.New(t)

	reg := &registry.RegistryMock{
		HeartbeatFunc: func(ctx context.Context, sensorID string, metrics json.RawMessage) (types.Device, error) {
			return types.Device{SensorID: sensorID, LastConfigHash: "oldhash000000000"}, nil
		},
	}
	cfgs := &configs.ConfigServiceMock{
		ResolveFunc: func(ctx context.Context, sensorID, deviceLastHash string) (configs.Resolution, error) {
			return configs.Resolution{Available: true, Changed: true, Hash: "newhash000000000"}, nil
		},
	}

	svc := New(passthroughTx{}, reg, cfgs, emptyQueue(), &scripts.ScriptRegistryMock{}, &Config{})

	response, err := svc.Heartbeat(context.Background(), types.HeartbeatRequest{SensorID: "brew-001"})
	is.NoErr(err)

	is.True(response.ConfigUpdated)
}

func TestHeartbeatUnknownDevice(t *testing.T) {
	is := is.New(t)

	reg := &registry.RegistryMock{
		HeartbeatFunc: func(ctx context.Context, sensorID string, metrics json.RawMessage) (types.Device, error) {
			return types.Device{}, registry.ErrDeviceNotFound
		},
	}

	svc := New(passthroughTx{}, reg, &configs.ConfigServiceMock{}, emptyQueue(), &scripts.ScriptRegistryMock{}, &Config{})

	_, err := svc.Heartbeat(context.Background(), types.HeartbeatRequest{SensorID: "ghost"})
	is.Equal(err, ErrDeviceNotRegistered)
}

func TestGetScriptForUnknownDevice(t *testing.T) {
	is := is.New(t)

	reg := &registry.RegistryMock{
		GetFunc: func(ctx context.Context, sensorID string) (types.Device, error) {
			return types.Device{}, registry.ErrDeviceNotFound
		},
	}

	svc := New(passthroughTx{}, reg, &configs.ConfigServiceMock{}, emptyQueue(), &scripts.ScriptRegistryMock{}, &Config{})

	_, err := svc.GetScript(context.Background(), "ghost")
	is.Equal(err, ErrDeviceNotRegistered)
}

func TestGetScriptWithoutAssignment(t *testing.T) {
	is := is.New(t)

	reg := &registry.RegistryMock{
		GetFunc: func(ctx context.Context, sensorID string) (types.Device, error) {
			return types.Device{SensorID: sensorID}, nil
		},
	}
	scriptreg := &scripts.ScriptRegistryMock{
		FetchFunc: func(ctx context.Context, sensorID string) (scripts.Payload, error) {
			return scripts.Payload{Available: false}, nil
		},
	}

	svc := New(passthroughTx{}, reg, &configs.ConfigServiceMock{}, emptyQueue(), scriptreg, &Config{})

	response, err := svc.GetScript(context.Background(), "brew-001")
	is.NoErr(err)
	is.True(!response.ScriptAvailable)
}

func TestGetScriptDeliversCurrentAssignment(t *testing.T) {
	is := is.New(t)

	reg := &registry.RegistryMock{
		GetFunc: func(ctx context.Context, sensorID string) (types.Device, error) {
			return types.Device{SensorID: sensorID}, nil
		},
	}
	scriptreg := &scripts.ScriptRegistryMock{
		FetchFunc: func(ctx context.Context, sensorID string) (scripts.Payload, error) {
			return scripts.Payload{
				Available:   true,
				Script:      types.Script{ID: 7, Name: "gravity-sampler", Content: "print(1)", Version: "v2"},
				ContentHash: "",
			}, nil
		},
	}

	tx := &countingTx{}
	svc := New(tx, reg, &configs.ConfigServiceMock{}, emptyQueue(), scriptreg, &Config{})

	response, err := svc.GetScript(context.Background(), "brew-001")
	is.NoErr(err)

	is.True(response.ScriptAvailable)
	is.Equal(response.ID, int64(7))
	is.Equal(response.Version, "v2")
	is.Equal(response.Script, "print(1)")

	// identity check and script fetch share one transaction
	is.Equal(tx.calls, 1)
}

func TestScriptExecutedForUnknownDevice(t *testing.T) {
	is := is.New(t)

	scriptreg := &scripts.ScriptRegistryMock{
		ReportExecutedFunc: func(ctx context.Context, sensorID, scriptVersion string, scriptID int64, now time.Time) error {
			return storage.ErrNoRows
		},
	}

	svc := New(passthroughTx{}, &registry.RegistryMock{}, &configs.ConfigServiceMock{}, emptyQueue(), scriptreg, &Config{})

	err := svc.ScriptExecuted(context.Background(), "ghost")
	is.Equal(err, ErrDeviceNotRegistered)
}

func TestReportVersionRequiresVersion(t *testing.T) {
	is := is.New(t)

	svc := New(passthroughTx{}, &registry.RegistryMock{}, &configs.ConfigServiceMock{}, emptyQueue(), &scripts.ScriptRegistryMock{}, &Config{})

	err := svc.ReportVersion(context.Background(), "brew-001", "", 0)
	is.True(errors.Is(err, ErrBadRequest))
}
