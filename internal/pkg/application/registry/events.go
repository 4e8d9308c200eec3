package registry

import (
	"encoding/json"
	"time"
)

type deviceRegistered struct {
	SensorID   string    `json:"sensorID"`
	SensorType string    `json:"sensorType,omitempty"`
	ObservedAt time.Time `json:"observedAt"`
}

func (d *deviceRegistered) ContentType() string {
	return "application/json"
}
func (d *deviceRegistered) TopicName() string {
	return "device.registered"
}
func (d *deviceRegistered) Body() []byte {
	b, _ := json.Marshal(d)
	return b
}

type deviceCheckIn struct {
	SensorID   string    `json:"sensorID"`
	ObservedAt time.Time `json:"observedAt"`
}

func (d *deviceCheckIn) ContentType() string {
	return "application/json"
}
func (d *deviceCheckIn) TopicName() string {
	return "device.checkIn"
}
func (d *deviceCheckIn) Body() []byte {
	b, _ := json.Marshal(d)
	return b
}
