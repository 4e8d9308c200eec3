package watchdog

import (
	"encoding/json"
	"time"
)

type deviceNotObserved struct {
	SensorID   string    `json:"sensorID"`
	LastSeen   time.Time `json:"lastSeen"`
	ObservedAt time.Time `json:"observedAt"`
}

func (d *deviceNotObserved) ContentType() string {
	return "application/json"
}
func (d *deviceNotObserved) TopicName() string {
	return "watchdog.deviceNotObserved"
}
func (d *deviceNotObserved) Body() []byte {
	b, _ := json.Marshal(d)
	return b
}
