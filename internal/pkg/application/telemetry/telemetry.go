package telemetry

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/brewmetrics/sensor-master/pkg/types"
	cloudevents "github.com/cloudevents/sdk-go/v2"
	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("sensor-master/telemetry")

var ErrInvalidSample = fmt.Errorf("invalid telemetry sample")

type SubscriberConfig struct {
	Endpoint string `yaml:"endpoint"`
}

type NotificationConfig struct {
	Type        string             `yaml:"type"`
	Subscribers []SubscriberConfig `yaml:"subscribers"`
}

type Config struct {
	Notifications []NotificationConfig `yaml:"notifications"`
}

// Ingest accepts telemetry samples POSTed by devices whose data_endpoint
// points at this service. Each sample is an independent request; there is no
// queueing and the device retries on failure.
//
//go:generate moq -rm -out ingest_mock.go . Ingest
type Ingest interface {
	Accept(ctx context.Context, sample types.TelemetrySample) error
}

type ingest struct {
	messenger   messaging.MsgContext
	subscribers map[string][]SubscriberConfig
}

func New(messenger messaging.MsgContext, cfg *Config) Ingest {
	i := &ingest{
		messenger:   messenger,
		subscribers: make(map[string][]SubscriberConfig),
	}

	if cfg != nil {
		for _, n := range cfg.Notifications {
			i.subscribers[n.Type] = n.Subscribers
		}
	}

	return i
}

type sampleAccepted struct {
	SensorID  string          `json:"sensorID"`
	Timestamp time.Time       `json:"timestamp"`
	Readings  json.RawMessage `json:"readings"`
}

func (s *sampleAccepted) ContentType() string {
	return "application/json"
}
func (s *sampleAccepted) TopicName() string {
	return "telemetry.sample"
}
func (s *sampleAccepted) Body() []byte {
	b, _ := json.Marshal(s)
	return b
}

func (i *ingest) Accept(ctx context.Context, sample types.TelemetrySample) error {
	var err error
	ctx, span := tracer.Start(ctx, "accept-sample")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	log := logging.GetFromContext(ctx)

	if sample.SensorID == "" || len(sample.Readings) == 0 {
		err = ErrInvalidSample
		return err
	}

	if sample.Timestamp.IsZero() {
		sample.Timestamp = time.Now().UTC()
	}

	if i.messenger != nil {
		err = i.messenger.PublishOnTopic(ctx, &sampleAccepted{
			SensorID:  sample.SensorID,
			Timestamp: sample.Timestamp,
			Readings:  sample.Readings,
		})
		if err != nil {
			return err
		}
	}

	i.forward(ctx, log, sample)

	return nil
}

// forward pushes the sample as a cloudevent to any configured subscribers.
// Delivery is best effort; the authoritative copy went out on the topic.
func (i *ingest) forward(ctx context.Context, log *slog.Logger, sample types.TelemetrySample) {
	subscribers, ok := i.subscribers["telemetry.sample"]
	if !ok || len(subscribers) == 0 {
		return
	}

	c, err := cloudevents.NewClientHTTP()
	if err != nil {
		log.Error("failed to create cloudevents client", "err", err.Error())
		return
	}

	event := cloudevents.NewEvent()
	event.SetID(uuid.NewString())
	event.SetTime(sample.Timestamp)
	event.SetSource("github.com/brewmetrics/sensor-master")
	event.SetType("brewmetrics.telemetry.sample")

	err = event.SetData(cloudevents.ApplicationJSON, sample)
	if err != nil {
		log.Error("failed to set cloudevent data", "err", err.Error())
		return
	}

	for _, s := range subscribers {
		evtCtx := cloudevents.ContextWithTarget(ctx, s.Endpoint)
		result := c.Send(evtCtx, event)
		if cloudevents.IsUndelivered(result) {
			log.Error("failed to deliver sample to subscriber", "endpoint", s.Endpoint, "err", result.Error())
		}
	}
}
