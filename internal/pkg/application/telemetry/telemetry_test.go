package telemetry

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/brewmetrics/sensor-master/pkg/types"
	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/matryer/is"
)

func TestAcceptRejectsIncompleteSamples(t *testing.T) {
	is := is.New(t)

	svc := New(nil, nil)

	err := svc.Accept(context.Background(), types.TelemetrySample{Readings: json.RawMessage(`{"t":18.5}`)})
	is.Equal(err, ErrInvalidSample)

	err = svc.Accept(context.Background(), types.TelemetrySample{SensorID: "brew-001"})
	is.Equal(err, ErrInvalidSample)
}

func TestAcceptPublishesOnTopic(t *testing.T) {
	is := is.New(t)

	m := &messaging.MsgContextMock{
		PublishOnTopicFunc: func(ctx context.Context, message messaging.TopicMessage) error {
			return nil
		},
	}

	svc := New(m, nil)

	err := svc.Accept(context.Background(), types.TelemetrySample{
		SensorID: "brew-001",
		Readings: json.RawMessage(`{"temperature":18.5,"gravity":1.012}`),
	})
	is.NoErr(err)

	is.Equal(len(m.PublishOnTopicCalls()), 1)

	published := m.PublishOnTopicCalls()[0].Message
	is.Equal(published.TopicName(), "telemetry.sample")
	is.Equal(published.ContentType(), "application/json")

	var body sampleAccepted
	err = json.Unmarshal(published.Body(), &body)
	is.NoErr(err)
	is.Equal(body.SensorID, "brew-001")
	is.True(!body.Timestamp.IsZero()) // missing timestamps default to ingest time
}

func TestAcceptKeepsProvidedTimestamp(t *testing.T) {
	is := is.New(t)

	m := &messaging.MsgContextMock{
		PublishOnTopicFunc: func(ctx context.Context, message messaging.TopicMessage) error {
			return nil
		},
	}

	svc := New(m, nil)

	ts := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	err := svc.Accept(context.Background(), types.TelemetrySample{
		SensorID:  "brew-001",
		Timestamp: ts,
		Readings:  json.RawMessage(`{"temperature":18.5}`),
	})
	is.NoErr(err)

	var body sampleAccepted
	err = json.Unmarshal(m.PublishOnTopicCalls()[0].Message.Body(), &body)
	is.NoErr(err)
	is.True(body.Timestamp.Equal(ts))
}
