package configs

import (
	"context"
	"errors"
	"testing"

	"github.com/brewmetrics/sensor-master/internal/pkg/infrastructure/storage"
	"github.com/brewmetrics/sensor-master/pkg/types"
	"github.com/matryer/is"
)

func fold(conditions []storage.ConditionFunc) *storage.Condition {
	c := &storage.Condition{}
	for _, f := range conditions {
		f(c)
	}
	return c
}

func strptr(s string) *string { return &s }

func newRepositoryMock(device types.Device, templatesByTier map[string][]types.ConfigTemplate) *TemplateRepositoryMock {
	return &TemplateRepositoryMock{
		GetDeviceFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Device, error) {
			if device.SensorID == "" {
				return types.Device{}, storage.ErrNoRows
			}
			return device, nil
		},
		QueryConfigTemplatesFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.ConfigTemplate], error) {
			c := fold(conditions)

			tier := "default"
			if c.TargetSensorID != "" {
				tier = "device"
			} else if c.TargetSensorType != "" {
				tier = "type"
			}

			data := templatesByTier[tier]
			return types.Collection[types.ConfigTemplate]{Data: data, Count: uint64(len(data))}, nil
		},
	}
}

func TestResolvePrefersDeviceSpecificTemplate(t *testing.T) {
	is := is.New(t)

	device := types.Device{SensorID: "brew-001", SensorType: "fermenter"}
	repo := newRepositoryMock(device, map[string][]types.ConfigTemplate{
		"device": {{ID: 1, ConfigName: "mine", SensorID: strptr("brew-001"), ConfigData: []byte(`{"polling_interval":30}`)}},
		"type":   {{ID: 2, ConfigName: "fermenters", SensorType: strptr("fermenter"), ConfigData: []byte(`{}`)}},
	})

	resolution, err := New(repo).Resolve(context.Background(), "brew-001", "")
	is.NoErr(err)

	is.True(resolution.Available)
	is.Equal(resolution.TemplateID, int64(1))
	is.Equal(resolution.Name, "mine")
	is.Equal(resolution.PollingInterval(60), 30)

	// device tier matched, so no other tier should have been queried
	is.Equal(len(repo.QueryConfigTemplatesCalls()), 1)
}

func TestResolveFallsBackToTypeTemplate(t *testing.T) {
	is := is.New(t)

	device := types.Device{SensorID: "brew-001", SensorType: "fermenter"}
	repo := newRepositoryMock(device, map[string][]types.ConfigTemplate{
		"type":    {{ID: 2, ConfigName: "fermenters", SensorType: strptr("fermenter"), ConfigData: []byte(`{"a":1}`)}},
		"default": {{ID: 3, ConfigName: "everything", ConfigData: []byte(`{"b":2}`)}},
	})

	resolution, err := New(repo).Resolve(context.Background(), "brew-001", "")
	is.NoErr(err)

	is.True(resolution.Available)
	is.Equal(resolution.TemplateID, int64(2))
	is.Equal(len(repo.QueryConfigTemplatesCalls()), 2)
}

func TestResolveFallsBackToDefaultTemplate(t *testing.T) {
	is := is.New(t)

	device := types.Device{SensorID: "brew-001", SensorType: "fermenter"}
	repo := newRepositoryMock(device, map[string][]types.ConfigTemplate{
		"default": {{ID: 3, ConfigName: "everything", ConfigData: []byte(`{"b":2}`)}},
	})

	resolution, err := New(repo).Resolve(context.Background(), "brew-001", "")
	is.NoErr(err)

	is.True(resolution.Available)
	is.Equal(resolution.TemplateID, int64(3))
}

func TestResolveSkipsTypeTierForUntypedDevice(t *testing.T) {
	is := is.New(t)

	device := types.Device{SensorID: "brew-001"}
	repo := newRepositoryMock(device, map[string][]types.ConfigTemplate{})

	_, err := New(repo).Resolve(context.Background(), "brew-001", "")
	is.NoErr(err)

	for _, call := range repo.QueryConfigTemplatesCalls() {
		is.Equal(fold(call.Conditions).TargetSensorType, "")
	}
	is.Equal(len(repo.QueryConfigTemplatesCalls()), 2)
}

func TestResolveNoMatch(t *testing.T) {
	is := is.New(t)

	device := types.Device{SensorID: "brew-001", SensorType: "fermenter"}
	repo := newRepositoryMock(device, map[string][]types.ConfigTemplate{})

	resolution, err := New(repo).Resolve(context.Background(), "brew-001", "")
	is.NoErr(err)

	is.True(!resolution.Available)
	is.True(!resolution.Changed)
	is.Equal(resolution.Hash, "")

	// a device that previously held a config must be told it changed
	resolution, err = New(repo).Resolve(context.Background(), "brew-001", "a1b2c3d4e5f60718")
	is.NoErr(err)
	is.True(resolution.Changed)
}

func TestResolveChangedTracksDeviceHash(t *testing.T) {
	is := is.New(t)

	configData := []byte(`{"polling_interval":60,"target_temp":18.5}`)
	hash, err := ContentHash(configData)
	is.NoErr(err)

	device := types.Device{SensorID: "brew-001"}
	repo := newRepositoryMock(device, map[string][]types.ConfigTemplate{
		"device": {{ID: 1, SensorID: strptr("brew-001"), ConfigData: configData}},
	})

	resolution, err := New(repo).Resolve(context.Background(), "brew-001", hash)
	is.NoErr(err)
	is.True(!resolution.Changed)

	resolution, err = New(repo).Resolve(context.Background(), "brew-001", "someotherhash000")
	is.NoErr(err)
	is.True(resolution.Changed)
	is.Equal(resolution.Hash, hash)
}

func TestResolvePropagatesTierQueryFailure(t *testing.T) {
	is := is.New(t)

	queryErr := errors.New("query failed")
	repo := &TemplateRepositoryMock{
		GetDeviceFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Device, error) {
			return types.Device{SensorID: "brew-001"}, nil
		},
		QueryConfigTemplatesFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.ConfigTemplate], error) {
			return types.Collection[types.ConfigTemplate]{}, queryErr
		},
	}

	_, err := New(repo).Resolve(context.Background(), "brew-001", "")
	is.Equal(err, queryErr)
}

func TestResolveUnknownDevice(t *testing.T) {
	is := is.New(t)

	repo := newRepositoryMock(types.Device{}, nil)

	_, err := New(repo).Resolve(context.Background(), "ghost", "")
	is.Equal(err, ErrUnknownDevice)
}

func TestCreateRejectsDualTargeting(t *testing.T) {
	is := is.New(t)

	svc := New(&TemplateRepositoryMock{})

	_, err := svc.Create(context.Background(), types.ConfigTemplate{
		SensorID:   strptr("brew-001"),
		SensorType: strptr("fermenter"),
		ConfigData: []byte(`{}`),
	})
	is.Equal(err, ErrInvalidTargeting)
}

func TestCreateRejectsMalformedConfigData(t *testing.T) {
	is := is.New(t)

	svc := New(&TemplateRepositoryMock{})

	_, err := svc.Create(context.Background(), types.ConfigTemplate{
		ConfigData: []byte(`{"broken":`),
	})
	is.True(err != nil)
}
