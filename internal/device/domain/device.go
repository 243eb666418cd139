package domain

import "time"

type DeviceStatus string

const (
	DeviceActive      DeviceStatus = "active"
	DeviceInactive    DeviceStatus = "inactive"
	DeviceMaintenance DeviceStatus = "maintenance"
)

// Device is a registered entry kiosk. The protocol itself treats device IDs
// as opaque strings; this table exists for operator visibility (which kiosks
// are alive) and is updated best-effort on every scan.
type Device struct {
	ID         string       `json:"id" gorm:"primaryKey"`
	Name       string       `json:"name"`
	Status     DeviceStatus `json:"status"`
	LastSeenAt *time.Time   `json:"last_seen_at,omitempty"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}
