package services

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput rejects a report before any storage access: empty
	// device code, or a non-finite coordinate.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDeviceNotFound means no Device row matches the queried code.
	ErrDeviceNotFound = errors.New("device not found")
)

// Steps of the two-part ingestion write.
const (
	StepInsertLocation   = "insert_location"
	StepUpdateProjection = "update_projection"
)

// StorageWriteError reports which half of the ingestion write failed. When
// Step is StepUpdateProjection the location insert has already committed, so
// the projection and the history now disagree until the next report lands.
type StorageWriteError struct {
	Step string
	Err  error
}

func (e *StorageWriteError) Error() string {
	return fmt.Sprintf("storage write failed at %s: %v", e.Step, e.Err)
}

func (e *StorageWriteError) Unwrap() error { return e.Err }

// HistoryFetchError reports a failed history read. Kept distinct from
// ErrDeviceNotFound: the device itself may have resolved fine.
type HistoryFetchError struct {
	Err error
}

func (e *HistoryFetchError) Error() string {
	return fmt.Sprintf("history fetch failed: %v", e.Err)
}

func (e *HistoryFetchError) Unwrap() error { return e.Err }
