package storage

import (
	"strings"

	"github.com/jackc/pgx/v5"
)

type ConditionFunc func(*Condition) *Condition

type Condition struct {
	SensorID   string
	SensorType string
	Statuses   []string
	Active     *bool
	Search     string

	// template targeting tiers
	TargetSensorID   string
	TargetSensorType string
	DefaultTarget    bool

	ID int64

	offset *int
	limit  *int
}

func WithSensorID(sensorID string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.SensorID = sensorID
		return c
	}
}

func WithSensorType(sensorType string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.SensorType = sensorType
		return c
	}
}

func WithStatus(statuses ...string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.Statuses = statuses
		return c
	}
}

func WithActive(active bool) ConditionFunc {
	return func(c *Condition) *Condition {
		c.Active = &active
		return c
	}
}

func WithSearch(search string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.Search = search
		return c
	}
}

func WithTargetSensorID(sensorID string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.TargetSensorID = sensorID
		return c
	}
}

func WithTargetSensorType(sensorType string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.TargetSensorType = sensorType
		return c
	}
}

func WithDefaultTarget() ConditionFunc {
	return func(c *Condition) *Condition {
		c.DefaultTarget = true
		return c
	}
}

func WithID(id int64) ConditionFunc {
	return func(c *Condition) *Condition {
		c.ID = id
		return c
	}
}

func WithOffset(offset int) ConditionFunc {
	return func(c *Condition) *Condition {
		c.offset = &offset
		return c
	}
}

func WithLimit(limit int) ConditionFunc {
	return func(c *Condition) *Condition {
		c.limit = &limit
		return c
	}
}

func newCondition(conditions ...ConditionFunc) *Condition {
	c := &Condition{}
	for _, f := range conditions {
		f(c)
	}
	return c
}

func (c Condition) NamedArgs() pgx.NamedArgs {
	args := pgx.NamedArgs{}

	if c.SensorID != "" {
		args["sensor_id"] = c.SensorID
	}
	if c.SensorType != "" {
		args["sensor_type"] = c.SensorType
	}
	if len(c.Statuses) == 1 {
		args["status"] = c.Statuses[0]
	}
	if len(c.Statuses) > 1 {
		args["statuses"] = c.Statuses
	}
	if c.Active != nil {
		args["is_active"] = *c.Active
	}
	if c.Search != "" {
		args["search"] = "%" + c.Search + "%"
	}
	if c.TargetSensorID != "" {
		args["target_sensor_id"] = c.TargetSensorID
	}
	if c.TargetSensorType != "" {
		args["target_sensor_type"] = c.TargetSensorType
	}
	if c.ID > 0 {
		args["id"] = c.ID
	}

	return args
}

func (c Condition) Where() string {
	parts := []string{}

	if c.SensorID != "" {
		parts = append(parts, "sensor_id = @sensor_id")
	}
	if c.SensorType != "" {
		parts = append(parts, "sensor_type = @sensor_type")
	}
	if len(c.Statuses) == 1 {
		parts = append(parts, "status = @status")
	}
	if len(c.Statuses) > 1 {
		parts = append(parts, "status = ANY(@statuses)")
	}
	if c.Active != nil {
		parts = append(parts, "is_active = @is_active")
	}
	if c.Search != "" {
		parts = append(parts, "(sensor_id ILIKE @search OR sensor_name ILIKE @search)")
	}
	if c.TargetSensorID != "" {
		parts = append(parts, "sensor_id = @target_sensor_id")
	}
	if c.TargetSensorType != "" {
		parts = append(parts, "sensor_id IS NULL AND sensor_type = @target_sensor_type")
	}
	if c.DefaultTarget {
		parts = append(parts, "sensor_id IS NULL AND sensor_type IS NULL")
	}
	if c.ID > 0 {
		parts = append(parts, "id = @id")
	}

	if len(parts) == 0 {
		return "TRUE"
	}

	return strings.Join(parts, " AND ")
}

func (c Condition) OffsetLimit() string {
	offsetLimit := ""

	if c.offset != nil {
		offsetLimit += "OFFSET @offset "
	}
	if c.limit != nil {
		offsetLimit += "LIMIT @limit "
	}

	return offsetLimit
}

func (c Condition) applyOffsetLimit(args pgx.NamedArgs) {
	if c.offset != nil {
		args["offset"] = *c.offset
	}
	if c.limit != nil {
		args["limit"] = *c.limit
	}
}

func (c Condition) Offset() uint64 {
	if c.offset != nil {
		return uint64(*c.offset)
	}
	return 0
}

func (c Condition) Limit() uint64 {
	if c.limit != nil {
		return uint64(*c.limit)
	}
	return 0
}
