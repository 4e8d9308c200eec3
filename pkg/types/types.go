package types

import (
	"encoding/json"
	"time"
)

const (
	StatusOnline  = "online"
	StatusPending = "pending"
	StatusOffline = "offline"
)

const (
	CommandPending   = "pending"
	CommandDelivered = "delivered"
	CommandCompleted = "completed"
	CommandFailed    = "failed"
	CommandExpired   = "expired"
)

const (
	ExecutionRunning = "running"
	ExecutionRecent  = "recent"
	ExecutionIdle    = "idle"
)

type Device struct {
	SensorID        string   `json:"sensorID"`
	SensorType      string   `json:"sensorType,omitempty"`
	SensorName      string   `json:"sensorName,omitempty"`
	HardwareInfo    string   `json:"hardwareInfo,omitempty"`
	FirmwareVersion string   `json:"firmwareVersion,omitempty"`
	IPAddress       string   `json:"ipAddress,omitempty"`
	MACAddress      string   `json:"macAddress,omitempty"`
	Capabilities    []string `json:"capabilities,omitempty"`

	LastCheckIn time.Time       `json:"lastCheckIn"`
	Metrics     json.RawMessage `json:"metrics,omitempty"`

	// Status is derived from LastCheckIn on read and never persisted.
	Status string `json:"status,omitempty"`

	LastConfigHash string `json:"lastConfigHash,omitempty"`

	LastScriptExecution   *time.Time `json:"lastScriptExecution,omitempty"`
	ReportedScriptVersion string     `json:"reportedScriptVersion,omitempty"`
	ReportedScriptID      int64      `json:"reportedScriptID,omitempty"`

	CreatedOn  time.Time `json:"createdOn"`
	ModifiedOn time.Time `json:"modifiedOn"`
}

type ConfigTemplate struct {
	ID         int64           `json:"id"`
	ConfigName string          `json:"configName"`
	SensorID   *string         `json:"sensorID,omitempty"`
	SensorType *string         `json:"sensorType,omitempty"`
	Priority   int             `json:"priority"`
	IsActive   bool            `json:"isActive"`
	Version    int             `json:"version"`
	ConfigData json.RawMessage `json:"configData"`
	CreatedOn  time.Time       `json:"createdOn"`
	ModifiedOn time.Time       `json:"modifiedOn"`
}

type Command struct {
	ID            int64           `json:"id"`
	SensorID      string          `json:"sensorID"`
	CommandType   string          `json:"commandType"`
	CommandData   json.RawMessage `json:"commandData,omitempty"`
	Priority      int             `json:"priority"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"createdAt"`
	DeliveredAt   *time.Time      `json:"deliveredAt,omitempty"`
	CompletedAt   *time.Time      `json:"completedAt,omitempty"`
	ExpiresAt     *time.Time      `json:"expiresAt,omitempty"`
	ResultMessage string          `json:"resultMessage,omitempty"`
}

type Script struct {
	ID          int64     `json:"id"`
	SensorID    string    `json:"sensorID"`
	Name        string    `json:"name,omitempty"`
	Content     string    `json:"content"`
	Version     string    `json:"version"`
	Description string    `json:"description,omitempty"`
	Current     bool      `json:"current"`
	UploadedAt  time.Time `json:"uploadedAt"`
}

type TelemetrySample struct {
	SensorID  string          `json:"sensor_id"`
	Timestamp time.Time       `json:"timestamp,omitzero"`
	Readings  json.RawMessage `json:"readings"`
}

type Collection[T any] struct {
	Data       []T
	Count      uint64
	Offset     uint64
	Limit      uint64
	TotalCount uint64
}
