package scripts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/brewmetrics/sensor-master/internal/pkg/application/configs"
	"github.com/brewmetrics/sensor-master/internal/pkg/infrastructure/storage"
	"github.com/brewmetrics/sensor-master/pkg/types"
)

var ErrScriptNotFound = fmt.Errorf("script not found")
var ErrInvalidScript = fmt.Errorf("invalid script")

type Config struct {
	RunningSeconds int `yaml:"running"`
	RecentSeconds  int `yaml:"recent"`
}

func (c Config) RunningThreshold(pollingInterval time.Duration) time.Duration {
	if c.RunningSeconds > 0 {
		return time.Duration(c.RunningSeconds) * time.Second
	}
	return 2 * pollingInterval
}

func (c Config) RecentThreshold() time.Duration {
	if c.RecentSeconds <= 0 {
		return 15 * time.Minute
	}
	return time.Duration(c.RecentSeconds) * time.Second
}

// Payload is what a device receives when fetching its current script.
type Payload struct {
	Available   bool
	Script      types.Script
	ContentHash string
}

//go:generate moq -rm -out scriptrepository_mock.go . ScriptRepository
type ScriptRepository interface {
	AssignScript(ctx context.Context, script types.Script) (types.Script, error)
	GetCurrentScript(ctx context.Context, sensorID string) (types.Script, error)
	GetScript(ctx context.Context, conditions ...storage.ConditionFunc) (types.Script, error)
	QueryScripts(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Script], error)
	DeleteScript(ctx context.Context, id int64) error
	SetDeviceScriptReport(ctx context.Context, sensorID string, executedAt *time.Time, version string, scriptID int64) error
}

//go:generate moq -rm -out scriptregistry_mock.go . ScriptRegistry
type ScriptRegistry interface {
	Assign(ctx context.Context, script types.Script) (types.Script, error)
	Fetch(ctx context.Context, sensorID string) (Payload, error)
	ReportExecuted(ctx context.Context, sensorID, scriptVersion string, scriptID int64, now time.Time) error
	Get(ctx context.Context, id int64) (types.Script, error)
	Query(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Script], error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	storage ScriptRepository
	config  *Config
}

func New(s ScriptRepository, config *Config) ScriptRegistry {
	return &service{storage: s, config: config}
}

// Assign stores a new script version and makes it the sensor's current one,
// superseding any prior assignment.
func (svc *service) Assign(ctx context.Context, script types.Script) (types.Script, error) {
	if script.SensorID == "" || script.Content == "" || script.Version == "" {
		return types.Script{}, ErrInvalidScript
	}

	return svc.storage.AssignScript(ctx, script)
}

func (svc *service) Fetch(ctx context.Context, sensorID string) (Payload, error) {
	script, err := svc.storage.GetCurrentScript(ctx, sensorID)
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return Payload{Available: false}, nil
		}
		return Payload{}, err
	}

	hash, err := configs.ContentHash([]byte(script.Content))
	if err != nil {
		// scripts are stored as opaque blobs; a non-JSON script still
		// gets served, just without a canonical hash
		hash = ""
	}

	return Payload{Available: true, Script: script, ContentHash: hash}, nil
}

// ReportExecuted records device-reported execution evidence on the device
// row. The reported version is authoritative and never second-guessed.
func (svc *service) ReportExecuted(ctx context.Context, sensorID, scriptVersion string, scriptID int64, now time.Time) error {
	var executedAt *time.Time
	if !now.IsZero() {
		executedAt = &now
	}

	// storage.ErrNoRows here means the device itself is unknown; the
	// protocol layer translates that into a re-register advice
	return svc.storage.SetDeviceScriptReport(ctx, sensorID, executedAt, scriptVersion, scriptID)
}

func (svc *service) Get(ctx context.Context, id int64) (types.Script, error) {
	script, err := svc.storage.GetScript(ctx, storage.WithID(id))
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return types.Script{}, ErrScriptNotFound
		}
		return types.Script{}, err
	}

	return script, nil
}

func (svc *service) Query(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Script], error) {
	return svc.storage.QueryScripts(ctx, conditions...)
}

func (svc *service) Delete(ctx context.Context, id int64) error {
	err := svc.storage.DeleteScript(ctx, id)
	if errors.Is(err, storage.ErrNoRows) {
		return ErrScriptNotFound
	}

	return err
}

// ExecutionStatus classifies how recently a device reported running its
// script: running within twice the polling interval, recent within the
// recent threshold, idle otherwise or when never reported.
func ExecutionStatus(device types.Device, now time.Time, pollingInterval time.Duration, config Config) string {
	if device.LastScriptExecution == nil {
		return types.ExecutionIdle
	}

	since := now.Sub(*device.LastScriptExecution)

	if since <= config.RunningThreshold(pollingInterval) {
		return types.ExecutionRunning
	}
	if since <= config.RecentThreshold() {
		return types.ExecutionRecent
	}

	return types.ExecutionIdle
}
