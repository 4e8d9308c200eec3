package commands

import (
	"context"
	"testing"
	"time"

	"github.com/brewmetrics/sensor-master/internal/pkg/infrastructure/storage"
	"github.com/brewmetrics/sensor-master/pkg/types"
	"github.com/matryer/is"
)

func TestEnqueueRejectsIncompleteCommands(t *testing.T) {
	is := is.New(t)

	svc := New(&CommandRepositoryMock{}, &Config{})

	_, err := svc.Enqueue(context.Background(), types.Command{SensorID: "brew-001"})
	is.Equal(err, ErrInvalidCommand)

	_, err = svc.Enqueue(context.Background(), types.Command{CommandType: "reboot"})
	is.Equal(err, ErrInvalidCommand)
}

func TestDequeueExpiresBeforeDelivering(t *testing.T) {
	is := is.New(t)

	var order []string

	repo := &CommandRepositoryMock{
		ExpireCommandsFunc: func(ctx context.Context, sensorID string, now time.Time) error {
			order = append(order, "expire")
			return nil
		},
		SelectCommandsForDeliveryFunc: func(ctx context.Context, sensorID string, now time.Time, limit int) ([]types.Command, error) {
			order = append(order, "deliver")
			return []types.Command{{ID: 1, CommandType: "reboot", Status: types.CommandDelivered}}, nil
		},
	}

	svc := New(repo, &Config{})

	delivery, err := svc.Dequeue(context.Background(), "brew-001", time.Now().UTC(), DeliveryLimit)
	is.NoErr(err)

	is.Equal(len(delivery), 1)
	is.Equal(order, []string{"expire", "deliver"})
}

func TestDequeueClampsLimit(t *testing.T) {
	is := is.New(t)

	repo := &CommandRepositoryMock{
		ExpireCommandsFunc: func(ctx context.Context, sensorID string, now time.Time) error {
			return nil
		},
		SelectCommandsForDeliveryFunc: func(ctx context.Context, sensorID string, now time.Time, limit int) ([]types.Command, error) {
			return nil, nil
		},
	}

	svc := New(repo, &Config{})

	_, err := svc.Dequeue(context.Background(), "brew-001", time.Now().UTC(), 5000)
	is.NoErr(err)
	is.Equal(repo.SelectCommandsForDeliveryCalls()[0].Limit, DeliveryLimit)

	_, err = svc.Dequeue(context.Background(), "brew-001", time.Now().UTC(), 0)
	is.NoErr(err)
	is.Equal(repo.SelectCommandsForDeliveryCalls()[1].Limit, DeliveryLimit)
}

func TestAcknowledgeMapsResultToStatus(t *testing.T) {
	is := is.New(t)

	repo := &CommandRepositoryMock{
		AcknowledgeCommandFunc: func(ctx context.Context, sensorID string, commandID int64, status, message string, now time.Time) error {
			return nil
		},
	}

	svc := New(repo, &Config{})
	now := time.Now().UTC()

	err := svc.Acknowledge(context.Background(), "brew-001", 1, ResultSuccess, "", now)
	is.NoErr(err)
	is.Equal(repo.AcknowledgeCommandCalls()[0].Status, types.CommandCompleted)

	err = svc.Acknowledge(context.Background(), "brew-001", 2, ResultError, "sensor busy", now)
	is.NoErr(err)
	is.Equal(repo.AcknowledgeCommandCalls()[1].Status, types.CommandFailed)
	is.Equal(repo.AcknowledgeCommandCalls()[1].Message, "sensor busy")
}

func TestAcknowledgeUnknownCommand(t *testing.T) {
	is := is.New(t)

	repo := &CommandRepositoryMock{
		AcknowledgeCommandFunc: func(ctx context.Context, sensorID string, commandID int64, status, message string, now time.Time) error {
			return storage.ErrNoRows
		},
	}

	svc := New(repo, &Config{})

	err := svc.Acknowledge(context.Background(), "brew-001", 42, ResultSuccess, "", time.Now().UTC())
	is.Equal(err, ErrCommandNotFound)
}

func TestGCUsesConfiguredRetention(t *testing.T) {
	is := is.New(t)

	repo := &CommandRepositoryMock{
		DeleteTerminalCommandsFunc: func(ctx context.Context, olderThan time.Time) (int64, error) {
			return 3, nil
		},
	}

	svc := New(repo, &Config{RetentionHours: 24})
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	err := svc.GC(context.Background(), now)
	is.NoErr(err)

	is.Equal(repo.DeleteTerminalCommandsCalls()[0].OlderThan, now.Add(-24*time.Hour))
}

func TestRetentionDefault(t *testing.T) {
	is := is.New(t)

	is.Equal(Config{}.Retention(), 168*time.Hour)
	is.Equal(Config{RetentionHours: 48}.Retention(), 48*time.Hour)
}
