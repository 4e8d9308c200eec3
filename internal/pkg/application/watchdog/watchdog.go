package watchdog

import (
	"context"
	"sync"
	"time"

	"github.com/brewmetrics/sensor-master/internal/pkg/application/commands"
	"github.com/brewmetrics/sensor-master/internal/pkg/application/registry"
	"github.com/brewmetrics/sensor-master/internal/pkg/infrastructure/storage"
	"github.com/brewmetrics/sensor-master/pkg/types"
	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
)

type Config struct {
	IntervalSeconds int             `yaml:"interval"`
	Liveness        registry.Config `yaml:"liveness"`
}

func (c Config) Interval() time.Duration {
	if c.IntervalSeconds <= 0 {
		return 60 * time.Second
	}
	return time.Duration(c.IntervalSeconds) * time.Second
}

type Watchdog interface {
	Start(ctx context.Context)
	Stop(ctx context.Context)
}

//go:generate moq -rm -out devicelister_mock.go . DeviceLister
type DeviceLister interface {
	QueryDevices(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Device], error)
}

type watchdogImpl struct {
	devices   DeviceLister
	queue     commands.CommandQueue
	messenger messaging.MsgContext
	config    *Config

	cancel context.CancelFunc
	done   chan struct{}

	mu       sync.Mutex
	notified map[string]time.Time
}

func New(devices DeviceLister, queue commands.CommandQueue, messenger messaging.MsgContext, config *Config) Watchdog {
	return &watchdogImpl{
		devices:   devices,
		queue:     queue,
		messenger: messenger,
		config:    config,
		notified:  map[string]time.Time{},
	}
}

func (w *watchdogImpl) Start(ctx context.Context) {
	ctx, w.cancel = context.WithCancel(ctx)
	w.done = make(chan struct{})

	go w.run(ctx)
}

func (w *watchdogImpl) Stop(ctx context.Context) {
	if w.cancel == nil {
		return
	}

	w.cancel()

	select {
	case <-w.done:
	case <-ctx.Done():
	}
}

func (w *watchdogImpl) run(ctx context.Context) {
	defer close(w.done)

	ticker := time.NewTicker(w.config.Interval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.sweep(ctx, time.Now().UTC())
		}
	}
}

// sweep publishes a notObserved warning for every device that has crossed
// the offline threshold since the previous pass, then garbage collects
// terminal commands.
func (w *watchdogImpl) sweep(ctx context.Context, now time.Time) {
	log := logging.GetFromContext(ctx)

	collection, err := w.devices.QueryDevices(ctx)
	if err != nil {
		log.Error("watchdog could not list devices", "err", err.Error())
		return
	}

	for _, device := range collection.Data {
		if registry.ClassifyStatus(device, now, w.config.Liveness) != types.StatusOffline {
			w.forget(device.SensorID)
			continue
		}

		if !w.shouldNotify(device.SensorID, device.LastCheckIn) {
			continue
		}

		err := w.messenger.PublishOnTopic(ctx, &deviceNotObserved{
			SensorID:   device.SensorID,
			LastSeen:   device.LastCheckIn,
			ObservedAt: now,
		})
		if err != nil {
			log.Error("failed to publish deviceNotObserved", "sensor_id", device.SensorID, "err", err.Error())
			continue
		}

		log.Debug("device not observed", "sensor_id", device.SensorID, "last_check_in", device.LastCheckIn.Format(time.RFC3339))
	}

	err = w.queue.GC(ctx, now)
	if err != nil {
		log.Error("command gc failed", "err", err.Error())
	}
}

// shouldNotify dedupes warnings: one notification per offline episode, keyed
// by the last check-in that started it.
func (w *watchdogImpl) shouldNotify(sensorID string, lastCheckIn time.Time) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if seen, ok := w.notified[sensorID]; ok && seen.Equal(lastCheckIn) {
		return false
	}

	w.notified[sensorID] = lastCheckIn

	return true
}

func (w *watchdogImpl) forget(sensorID string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	delete(w.notified, sensorID)
}
