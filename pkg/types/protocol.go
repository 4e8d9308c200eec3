package types

import "encoding/json"

// Wire types for the device-facing protocol. All timestamps on the wire are
// RFC 3339 UTC and all bodies are UTF-8 JSON.

type RegistrationRequest struct {
	SensorID        string   `json:"sensor_id"`
	SensorName      string   `json:"sensor_name,omitempty"`
	SensorType      string   `json:"sensor_type,omitempty"`
	HardwareInfo    string   `json:"hardware_info,omitempty"`
	FirmwareVersion string   `json:"firmware_version,omitempty"`
	IPAddress       string   `json:"ip_address,omitempty"`
	MACAddress      string   `json:"mac_address,omitempty"`
	Capabilities    []string `json:"capabilities,omitempty"`
}

type RegistrationResponse struct {
	Status          string `json:"status"`
	AssignedMaster  string `json:"assigned_master"`
	MasterID        int    `json:"master_id"`
	HasConfig       bool   `json:"has_config"`
	CheckInInterval int    `json:"check_in_interval"`
	ConfigEndpoint  string `json:"config_endpoint"`
}

type CommandEntry struct {
	ID          int64           `json:"id"`
	CommandType string          `json:"command_type"`
	CommandData json.RawMessage `json:"command_data,omitempty"`
	Priority    int             `json:"priority"`
	ExpiresAt   *string         `json:"expires_at"`
}

type ConfigResponse struct {
	ConfigAvailable bool            `json:"config_available"`
	ConfigChanged   bool            `json:"config_changed"`
	ConfigHash      string          `json:"config_hash"`
	ConfigName      string          `json:"config_name,omitempty"`
	ConfigVersion   int             `json:"config_version,omitempty"`
	Config          json.RawMessage `json:"config"`
	Commands        []CommandEntry  `json:"commands"`
	CheckInInterval int             `json:"check_in_interval"`
}

type CommandResult struct {
	CommandID int64  `json:"command_id"`
	Result    string `json:"result"`
	Message   string `json:"message,omitempty"`
}

type HeartbeatRequest struct {
	SensorID       string          `json:"sensor_id"`
	Status         string          `json:"status,omitempty"`
	Metrics        json.RawMessage `json:"metrics,omitempty"`
	CommandResults []CommandResult `json:"command_results,omitempty"`
}

type HeartbeatResponse struct {
	Acknowledged  bool             `json:"acknowledged"`
	ConfigUpdated bool             `json:"config_updated"`
	Commands      []CommandEntry   `json:"commands"`
	AckStatus     map[int64]string `json:"ack_status,omitempty"`
}

type ScriptResponse struct {
	ScriptAvailable bool   `json:"script_available"`
	Script          string `json:"script,omitempty"`
	Version         string `json:"version,omitempty"`
	ID              int64  `json:"id,omitempty"`
	Name            string `json:"name,omitempty"`
	ContentHash     string `json:"content_hash,omitempty"`
}

type ScriptExecutedRequest struct {
	SensorID string `json:"sensor_id"`
}

type ReportVersionRequest struct {
	SensorID      string `json:"sensor_id"`
	ScriptVersion string `json:"script_version"`
	ScriptID      int64  `json:"script_id,omitempty"`
}

type AckResponse struct {
	Acknowledged bool `json:"acknowledged"`
}

type MasterInstance struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
