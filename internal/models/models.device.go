// FilePath: internal/models/models.device.go
package models

import "time"

type DeviceType string

const (
	FillSensor   DeviceType = "fill_sensor"
	SmartCamera  DeviceType = "smart_camera"
	CompactorBin DeviceType = "compactor"
	OtherDevice  DeviceType = "other"
)

type DeviceStatus string

const (
	DeviceActive   DeviceStatus = "active"
	DeviceInactive DeviceStatus = "inactive"
	DeviceOffline  DeviceStatus = "offline"
)

// Device is a registered bin sensor as stored in the device registry
type Device struct {
	ID        string       `json:"id" db:"id"`
	Name      string       `json:"name" db:"name"`
	Type      DeviceType   `json:"type" db:"type"`
	Location  string       `json:"location" db:"location"`
	Status    DeviceStatus `json:"status" db:"status"`
	CreatedAt time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt time.Time    `json:"updated_at" db:"updated_at"`
}
