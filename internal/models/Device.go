// internal/models/device.go
package models

import (
	"gorm.io/gorm"
)

// Device is one registered field device, keyed by its opaque unique code.
// Rows are created by the external provisioning process; this service only
// ever touches the assigned_lat/assigned_lng projection columns.
type Device struct {
	gorm.Model
	Code   string `json:"code" gorm:"uniqueIndex;not null"`
	Status string `json:"status"` // free-form, owned by provisioning ("active", "inactive", ...)

	// Latest known position, denormalized from the newest DeviceLocation.
	// Nullable: a device that has never reported has no projection.
	AssignedLat *float64 `json:"assigned_lat"`
	AssignedLng *float64 `json:"assigned_lng"`
}
