package storage

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/brewmetrics/sensor-master/pkg/types"
	"github.com/google/uuid"
	"github.com/matryer/is"
)

func testSetup(t *testing.T) (context.Context, *Storage) {
	ctx := context.Background()

	config := Config{
		host:     "localhost",
		user:     "postgres",
		password: "password",
		port:     "5432",
		dbname:   "postgres",
		sslmode:  "disable",
	}

	s, err := New(ctx, config)
	if err != nil {
		t.SkipNow()
	}

	err = s.Initialize(ctx)
	if err != nil {
		t.SkipNow()
	}

	return ctx, s
}

func newSensorID() string {
	return "test-" + uuid.NewString()
}

func TestUpsertAndGetDevice(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	sensorID := newSensorID()
	now := time.Now().UTC().Truncate(time.Microsecond)

	err := s.UpsertDevice(ctx, types.Device{
		SensorID:        sensorID,
		SensorType:      "fermenter",
		FirmwareVersion: "1.2.0",
		Capabilities:    []string{"temperature"},
		LastCheckIn:     now,
	})
	is.NoErr(err)

	d, err := s.GetDevice(ctx, WithSensorID(sensorID))
	is.NoErr(err)
	is.Equal(d.SensorType, "fermenter")
	is.Equal(d.Capabilities, []string{"temperature"})
	is.True(d.LastCheckIn.Equal(now))
}

func TestUpsertKeepsNewestCheckIn(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	sensorID := newSensorID()
	now := time.Now().UTC().Truncate(time.Microsecond)

	err := s.UpsertDevice(ctx, types.Device{SensorID: sensorID, LastCheckIn: now})
	is.NoErr(err)

	// a delayed registration must not move the check-in backwards
	err = s.UpsertDevice(ctx, types.Device{SensorID: sensorID, LastCheckIn: now.Add(-time.Hour)})
	is.NoErr(err)

	d, err := s.GetDevice(ctx, WithSensorID(sensorID))
	is.NoErr(err)
	is.True(d.LastCheckIn.Equal(now))
}

func TestTouchUnknownDevice(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	err := s.TouchDevice(ctx, "test-nosuchsensor", time.Now().UTC(), nil)
	is.Equal(err, ErrNoRows)
}

func TestCommandDeliveryOrder(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	sensorID := newSensorID()
	now := time.Now().UTC()

	for i, priority := range []int{100, 1, 50} {
		_, err := s.AddCommand(ctx, types.Command{
			SensorID:    sensorID,
			CommandType: fmt.Sprintf("cmd-%d", i),
			Priority:    priority,
		})
		is.NoErr(err)
	}

	delivery, err := s.SelectCommandsForDelivery(ctx, sensorID, now, 16)
	is.NoErr(err)
	is.Equal(len(delivery), 3)
	is.Equal(delivery[0].Priority, 1)
	is.Equal(delivery[1].Priority, 50)
	is.Equal(delivery[2].Priority, 100)

	for _, c := range delivery {
		is.Equal(c.Status, types.CommandDelivered)
		is.True(c.DeliveredAt != nil)
	}

	// a second fetch finds nothing pending
	delivery, err = s.SelectCommandsForDelivery(ctx, sensorID, now, 16)
	is.NoErr(err)
	is.Equal(len(delivery), 0)
}

func TestAcknowledgeCommand(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	sensorID := newSensorID()
	now := time.Now().UTC()

	id, err := s.AddCommand(ctx, types.Command{SensorID: sensorID, CommandType: "reboot"})
	is.NoErr(err)

	_, err = s.SelectCommandsForDelivery(ctx, sensorID, now, 16)
	is.NoErr(err)

	err = s.AcknowledgeCommand(ctx, sensorID, id, types.CommandCompleted, "done", now)
	is.NoErr(err)

	c, err := s.GetCommand(ctx, WithID(id))
	is.NoErr(err)
	is.Equal(c.Status, types.CommandCompleted)
	is.Equal(c.ResultMessage, "done")

	// duplicate acks of a terminal command are accepted silently
	err = s.AcknowledgeCommand(ctx, sensorID, id, types.CommandFailed, "again", now)
	is.NoErr(err)

	c, err = s.GetCommand(ctx, WithID(id))
	is.NoErr(err)
	is.Equal(c.Status, types.CommandCompleted)

	err = s.AcknowledgeCommand(ctx, sensorID, 999999999, types.CommandCompleted, "", now)
	is.Equal(err, ErrNoRows)
}

func TestAcknowledgeUndeliveredCommandIsIgnored(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	sensorID := newSensorID()
	now := time.Now().UTC()

	id, err := s.AddCommand(ctx, types.Command{SensorID: sensorID, CommandType: "reboot"})
	is.NoErr(err)

	// an ack without a preceding delivery must not shortcut the lifecycle
	err = s.AcknowledgeCommand(ctx, sensorID, id, types.CommandCompleted, "done", now)
	is.NoErr(err)

	c, err := s.GetCommand(ctx, WithID(id))
	is.NoErr(err)
	is.Equal(c.Status, types.CommandPending)

	delivery, err := s.SelectCommandsForDelivery(ctx, sensorID, now, 16)
	is.NoErr(err)
	is.Equal(len(delivery), 1)
	is.Equal(delivery[0].ID, id)
}

func TestExpireCommands(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	sensorID := newSensorID()
	now := time.Now().UTC()
	expired := now.Add(-time.Minute)

	id, err := s.AddCommand(ctx, types.Command{
		SensorID:    sensorID,
		CommandType: "reboot",
		ExpiresAt:   &expired,
	})
	is.NoErr(err)

	err = s.ExpireCommands(ctx, sensorID, now)
	is.NoErr(err)

	c, err := s.GetCommand(ctx, WithID(id))
	is.NoErr(err)
	is.Equal(c.Status, types.CommandExpired)

	delivery, err := s.SelectCommandsForDelivery(ctx, sensorID, now, 16)
	is.NoErr(err)
	is.Equal(len(delivery), 0)
}

func TestUpdateConfigTemplateBumpsVersion(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	id, err := s.AddConfigTemplate(ctx, types.ConfigTemplate{
		ConfigName: "default-" + uuid.NewString(),
		ConfigData: []byte(`{"polling_interval":60}`),
		IsActive:   true,
	})
	is.NoErr(err)

	tpl, err := s.GetConfigTemplate(ctx, WithID(id))
	is.NoErr(err)
	is.Equal(tpl.Version, 1)

	tpl.ConfigData = []byte(`{"polling_interval":30}`)
	err = s.UpdateConfigTemplate(ctx, tpl)
	is.NoErr(err)

	tpl, err = s.GetConfigTemplate(ctx, WithID(id))
	is.NoErr(err)
	is.Equal(tpl.Version, 2)

	err = s.DeleteConfigTemplate(ctx, id)
	is.NoErr(err)
}

func TestAssignScriptDemotesPrevious(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	sensorID := newSensorID()

	first, err := s.AssignScript(ctx, types.Script{SensorID: sensorID, Content: "print(1)", Version: "v1"})
	is.NoErr(err)

	second, err := s.AssignScript(ctx, types.Script{SensorID: sensorID, Content: "print(2)", Version: "v2"})
	is.NoErr(err)

	current, err := s.GetCurrentScript(ctx, sensorID)
	is.NoErr(err)
	is.Equal(current.ID, second.ID)
	is.Equal(current.Version, "v2")

	demoted, err := s.GetScript(ctx, WithID(first.ID))
	is.NoErr(err)
	is.True(!demoted.Current)
}

func TestWithTxRollsBackOnError(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	sensorID := newSensorID()

	err := s.WithTx(ctx, func(ctx context.Context) error {
		err := s.UpsertDevice(ctx, types.Device{SensorID: sensorID, LastCheckIn: time.Now().UTC()})
		is.NoErr(err)

		return fmt.Errorf("forced rollback")
	})
	is.True(err != nil)

	_, err = s.GetDevice(ctx, WithSensorID(sensorID))
	is.Equal(err, ErrNoRows)
}

func TestDeleteDeviceCascades(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	sensorID := newSensorID()

	err := s.UpsertDevice(ctx, types.Device{SensorID: sensorID, LastCheckIn: time.Now().UTC()})
	is.NoErr(err)

	id, err := s.AddCommand(ctx, types.Command{SensorID: sensorID, CommandType: "reboot"})
	is.NoErr(err)

	_, err = s.AssignScript(ctx, types.Script{SensorID: sensorID, Content: "print(1)", Version: "v1"})
	is.NoErr(err)

	err = s.DeleteDevice(ctx, sensorID)
	is.NoErr(err)

	_, err = s.GetDevice(ctx, WithSensorID(sensorID))
	is.Equal(err, ErrNoRows)

	_, err = s.GetCommand(ctx, WithID(id))
	is.Equal(err, ErrNoRows)

	_, err = s.GetCurrentScript(ctx, sensorID)
	is.Equal(err, ErrNoRows)
}

func TestDeleteUnknownDeviceRollsBackCascade(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	// orphaned rows without a device record: the failing final delete must
	// roll the whole cascade back
	sensorID := newSensorID()

	id, err := s.AddCommand(ctx, types.Command{SensorID: sensorID, CommandType: "reboot"})
	is.NoErr(err)

	script, err := s.AssignScript(ctx, types.Script{SensorID: sensorID, Content: "print(1)", Version: "v1"})
	is.NoErr(err)

	err = s.DeleteDevice(ctx, sensorID)
	is.Equal(err, ErrNoRows)

	c, err := s.GetCommand(ctx, WithID(id))
	is.NoErr(err)
	is.Equal(c.ID, id)

	current, err := s.GetCurrentScript(ctx, sensorID)
	is.NoErr(err)
	is.Equal(current.ID, script.ID)
}
