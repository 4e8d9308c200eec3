package storage

import (
	"testing"

	"github.com/matryer/is"
)

func TestEmptyConditionMatchesEverything(t *testing.T) {
	is := is.New(t)

	c := newCondition()
	is.Equal(c.Where(), "TRUE")
	is.Equal(len(c.NamedArgs()), 0)
}

func TestSensorIDCondition(t *testing.T) {
	is := is.New(t)

	c := newCondition(WithSensorID("brew-001"))
	is.Equal(c.Where(), "sensor_id = @sensor_id")
	is.Equal(c.NamedArgs()["sensor_id"], "brew-001")
}

func TestConditionsAreANDed(t *testing.T) {
	is := is.New(t)

	c := newCondition(WithSensorType("fermenter"), WithActive(true))
	is.Equal(c.Where(), "sensor_type = @sensor_type AND is_active = @is_active")
}

func TestTargetingConditions(t *testing.T) {
	is := is.New(t)

	c := newCondition(WithTargetSensorID("brew-001"))
	is.Equal(c.Where(), "sensor_id = @target_sensor_id")

	c = newCondition(WithTargetSensorType("fermenter"))
	is.Equal(c.Where(), "sensor_id IS NULL AND sensor_type = @target_sensor_type")

	c = newCondition(WithDefaultTarget())
	is.Equal(c.Where(), "sensor_id IS NULL AND sensor_type IS NULL")
}

func TestSearchConditionWraps(t *testing.T) {
	is := is.New(t)

	c := newCondition(WithSearch("brew"))
	is.Equal(c.NamedArgs()["search"], "%brew%")
}

func TestStatusConditions(t *testing.T) {
	is := is.New(t)

	c := newCondition(WithStatus("pending"))
	is.Equal(c.Where(), "status = @status")

	c = newCondition(WithStatus("pending", "delivered"))
	is.Equal(c.Where(), "status = ANY(@statuses)")
}

func TestOffsetLimit(t *testing.T) {
	is := is.New(t)

	c := newCondition(WithOffset(20), WithLimit(10))
	is.Equal(c.OffsetLimit(), "OFFSET @offset LIMIT @limit ")
	is.Equal(c.Offset(), uint64(20))
	is.Equal(c.Limit(), uint64(10))

	args := c.NamedArgs()
	c.applyOffsetLimit(args)
	is.Equal(args["offset"], 20)
	is.Equal(args["limit"], 10)
}
