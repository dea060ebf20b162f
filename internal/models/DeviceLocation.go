package models

import (
	"time"

	"gorm.io/gorm"
)

// DeviceLocation is one immutable position report. The log is append-only:
// rows are never updated or deleted, and the device code is not required to
// reference an existing Device row.
type DeviceLocation struct {
	gorm.Model
	DeviceCode string    `json:"device_code" gorm:"index"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	Timestamp  time.Time `json:"timestamp"` // stamped by the service at ingestion
}
