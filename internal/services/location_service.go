package services

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/twpayne/go-geom"
	gjson "github.com/twpayne/go-geom/encoding/geojson"
	"gorm.io/gorm"

	"device_tracker/internal/models"
)

// LocationService owns the ingestion and query paths over the position
// store: the append-only device_locations log and the per-device
// current-position projection on devices. It holds no state of its own, so
// one instance serves concurrent requests.
type LocationService struct {
	db      *gorm.DB
	display *time.Location
}

// NewLocationService wires the service to a DB handle and the timezone used
// when rendering history timestamps for display.
func NewLocationService(db *gorm.DB, display *time.Location) *LocationService {
	if display == nil {
		display = time.UTC
	}
	return &LocationService{db: db, display: display}
}

// Record validates and persists one position report, then refreshes the
// device's current-position projection. The two writes are independent
// statements, not a transaction: if the projection update fails after the
// insert committed, the returned StorageWriteError says so and the history
// keeps the report. No retries; the caller owns retry policy.
func (s *LocationService) Record(ctx context.Context, code string, lat, lng float64) error {
	if err := validateReport(code, lat, lng); err != nil {
		return err
	}

	report := models.DeviceLocation{
		DeviceCode: code,
		Latitude:   lat,
		Longitude:  lng,
		Timestamp:  time.Now().UTC(),
	}
	if err := s.db.WithContext(ctx).Create(&report).Error; err != nil {
		logrus.WithError(err).WithField("device_code", code).Error("Failed to insert position report")
		return &StorageWriteError{Step: StepInsertLocation, Err: err}
	}

	res := s.db.WithContext(ctx).Model(&models.Device{}).
		Where("code = ?", code).
		Updates(map[string]interface{}{"assigned_lat": lat, "assigned_lng": lng})
	if res.Error != nil {
		logrus.WithError(res.Error).WithField("device_code", code).Error("Failed to update current-position projection")
		return &StorageWriteError{Step: StepUpdateProjection, Err: res.Error}
	}
	if res.RowsAffected == 0 {
		// The log accepts reports for unknown codes, but there is no
		// projection row to refresh for them.
		logrus.WithField("device_code", code).Warn("Position recorded for unknown device; projection not updated")
	}

	return nil
}

func validateReport(code string, lat, lng float64) error {
	if code == "" {
		return ErrInvalidInput
	}
	if math.IsNaN(lat) || math.IsInf(lat, 0) || math.IsNaN(lng) || math.IsInf(lng, 0) {
		return ErrInvalidInput
	}
	return nil
}

// ResolveDevice fetches the single Device row for code. Any lookup failure
// collapses into ErrDeviceNotFound; the read surface has no storage-failure
// taxonomy for single-row fetches.
func (s *LocationService) ResolveDevice(ctx context.Context, code string) (*models.Device, error) {
	var device models.Device
	if err := s.db.WithContext(ctx).Where("code = ?", code).First(&device).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logrus.WithError(err).WithField("device_code", code).Error("Device lookup failed")
		}
		return nil, ErrDeviceNotFound
	}
	return &device, nil
}

// CurrentPosition is the projected latest coordinates for a device.
// Coordinates stay nil for a device that has never reported.
type CurrentPosition struct {
	DeviceCode string   `json:"device_code"`
	Latitude   *float64 `json:"latitude"`
	Longitude  *float64 `json:"longitude"`
}

// CurrentPosition returns the projection for code, raw and unrounded.
func (s *LocationService) CurrentPosition(ctx context.Context, code string) (*CurrentPosition, error) {
	device, err := s.ResolveDevice(ctx, code)
	if err != nil {
		return nil, err
	}
	return &CurrentPosition{
		DeviceCode: device.Code,
		Latitude:   device.AssignedLat,
		Longitude:  device.AssignedLng,
	}, nil
}

// History returns every report for code ordered oldest first; reports
// sharing a timestamp keep insertion order. Unknown codes yield an empty
// slice, not an error.
func (s *LocationService) History(ctx context.Context, code string) ([]models.DeviceLocation, error) {
	var reports []models.DeviceLocation
	err := s.db.WithContext(ctx).
		Where("device_code = ?", code).
		Order("timestamp ASC").
		Order("id ASC").
		Find(&reports).Error
	if err != nil {
		return nil, &HistoryFetchError{Err: err}
	}
	return reports, nil
}

// LocalizedPoint is a history entry with its timestamp rendered in the
// display timezone, as served by /get-locations.
type LocalizedPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timestamp string  `json:"timestamp"`
}

// LocalizedHistory is History with display-timezone timestamp strings.
func (s *LocationService) LocalizedHistory(ctx context.Context, code string) ([]LocalizedPoint, error) {
	history, err := s.History(ctx, code)
	if err != nil {
		return nil, err
	}
	points := make([]LocalizedPoint, 0, len(history))
	for _, report := range history {
		points = append(points, LocalizedPoint{
			Latitude:  report.Latitude,
			Longitude: report.Longitude,
			Timestamp: FormatTimestamp(report.Timestamp, s.display),
		})
	}
	return points, nil
}

// HistoryPoint is a raw (non-localized) history entry.
type HistoryPoint struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Timestamp time.Time `json:"timestamp"`
}

// DeviceInfo combines the resolved device with its full raw history.
type DeviceInfo struct {
	Code        string         `json:"code"`
	Status      string         `json:"status"`
	AssignedLat *float64       `json:"latest_lat"`
	AssignedLng *float64       `json:"latest_lng"`
	Locations   []HistoryPoint `json:"locations"`
}

// DeviceInfo resolves the device, then attaches its history. A history read
// failure after a successful resolve surfaces as HistoryFetchError, not as
// not-found.
func (s *LocationService) DeviceInfo(ctx context.Context, code string) (*DeviceInfo, error) {
	device, err := s.ResolveDevice(ctx, code)
	if err != nil {
		return nil, err
	}
	history, err := s.History(ctx, code)
	if err != nil {
		return nil, err
	}
	points := make([]HistoryPoint, 0, len(history))
	for _, report := range history {
		points = append(points, HistoryPoint{
			Latitude:  report.Latitude,
			Longitude: report.Longitude,
			Timestamp: report.Timestamp,
		})
	}
	return &DeviceInfo{
		Code:        device.Code,
		Status:      device.Status,
		AssignedLat: device.AssignedLat,
		AssignedLng: device.AssignedLng,
		Locations:   points,
	}, nil
}

// DeviceSummary is the fixed 4-decimal-string view returned after a
// combined write-and-read. Coordinates are nil only for a device that has
// never reported.
type DeviceSummary struct {
	Code      string  `json:"code"`
	Status    string  `json:"status"`
	LatestLat *string `json:"latest_lat"`
	LatestLng *string `json:"latest_lng"`
}

// Summary resolves the device and formats its projected coordinates to
// exactly four decimal places.
func (s *LocationService) Summary(ctx context.Context, code string) (*DeviceSummary, error) {
	device, err := s.ResolveDevice(ctx, code)
	if err != nil {
		return nil, err
	}
	summary := &DeviceSummary{Code: device.Code, Status: device.Status}
	if device.AssignedLat != nil {
		v := FormatCoordinate(*device.AssignedLat)
		summary.LatestLat = &v
	}
	if device.AssignedLng != nil {
		v := FormatCoordinate(*device.AssignedLng)
		summary.LatestLng = &v
	}
	return summary, nil
}

// PathGeoJSON renders the device's history as a GeoJSON LineString
// (longitude/latitude coordinate order, SRID 4326). Fewer than two points
// cannot form a line, so the geometry comes back nil.
func (s *LocationService) PathGeoJSON(ctx context.Context, code string) (json.RawMessage, error) {
	history, err := s.History(ctx, code)
	if err != nil {
		return nil, err
	}
	if len(history) < 2 {
		return nil, nil
	}

	coords := make([]geom.Coord, 0, len(history))
	for _, report := range history {
		coords = append(coords, geom.Coord{report.Longitude, report.Latitude})
	}
	line := geom.NewLineString(geom.XY).SetSRID(4326)
	if _, err := line.SetCoords(coords); err != nil {
		return nil, err
	}

	encoded, err := gjson.Marshal(line)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(encoded), nil
}
