package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"device_tracker/internal/services"
)

// LocationController serves the device position endpoints.
type LocationController struct {
	svc *services.LocationService
}

func NewLocationController(svc *services.LocationService) *LocationController {
	return &LocationController{svc: svc}
}

// locationInput is the body shared by both update endpoints. Coordinates
// are pointers so a missing field is told apart from a legitimate zero.
type locationInput struct {
	DeviceCode string   `json:"device_code"`
	Latitude   *float64 `json:"latitude"`
	Longitude  *float64 `json:"longitude"`
}

func (in *locationInput) valid() bool {
	return in.DeviceCode != "" && in.Latitude != nil && in.Longitude != nil
}

// UpdateLocation handles POST /update-location: record one position report
// and acknowledge.
func (ctl *LocationController) UpdateLocation(c *gin.Context) {
	var input locationInput
	if err := c.ShouldBindJSON(&input); err != nil || !input.valid() {
		respondError(c, http.StatusBadRequest, "Invalid input.")
		return
	}

	if err := ctl.svc.Record(c.Request.Context(), input.DeviceCode, *input.Latitude, *input.Longitude); err != nil {
		respondRecordError(c, err)
		return
	}

	respondSuccess(c, gin.H{"message": "Location updated."})
}

// UpdateLocationAndGetInfo handles POST /update-location-and-get-info: the
// same write as UpdateLocation followed by a summarized read-back of the
// device. Any failure in the write phase short-circuits the read.
func (ctl *LocationController) UpdateLocationAndGetInfo(c *gin.Context) {
	var input locationInput
	if err := c.ShouldBindJSON(&input); err != nil || !input.valid() {
		respondError(c, http.StatusBadRequest, "Invalid input.")
		return
	}

	ctx := c.Request.Context()
	if err := ctl.svc.Record(ctx, input.DeviceCode, *input.Latitude, *input.Longitude); err != nil {
		respondRecordError(c, err)
		return
	}

	summary, err := ctl.svc.Summary(ctx, input.DeviceCode)
	if err != nil {
		// The report committed but there is no device row to summarize.
		respondError(c, http.StatusNotFound, "Device not found.")
		return
	}

	respondSuccess(c, gin.H{"device": summary})
}

// respondRecordError maps the ingestion error taxonomy onto the wire. The
// insert failure echoes the storage error text while the projection failure
// stays generic, as the dashboard expects.
func respondRecordError(c *gin.Context, err error) {
	var write *services.StorageWriteError
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		respondError(c, http.StatusBadRequest, "Invalid input.")
	case errors.As(err, &write) && write.Step == services.StepUpdateProjection:
		respondError(c, http.StatusInternalServerError, "Failed to update device.")
	case errors.As(err, &write) && write.Err != nil:
		respondError(c, http.StatusInternalServerError, write.Err.Error())
	default:
		respondError(c, http.StatusInternalServerError, "Failed to insert location.")
	}
}

// GetDeviceInfo handles GET /get-device-info: device status, projected
// coordinates and the full raw history.
func (ctl *LocationController) GetDeviceInfo(c *gin.Context) {
	code := c.Query("device_code")
	if code == "" {
		respondError(c, http.StatusBadRequest, "Missing device_code.")
		return
	}

	info, err := ctl.svc.DeviceInfo(c.Request.Context(), code)
	if err != nil {
		var fetch *services.HistoryFetchError
		if errors.As(err, &fetch) {
			respondError(c, http.StatusInternalServerError, "Failed to fetch location history.")
			return
		}
		respondError(c, http.StatusNotFound, "Device not found.")
		return
	}

	respondSuccess(c, gin.H{"device": info})
}

// GetLocation handles GET /get-location: just the projected coordinate
// pair, raw numbers.
func (ctl *LocationController) GetLocation(c *gin.Context) {
	code := c.Query("device_code")
	if code == "" {
		respondError(c, http.StatusBadRequest, "Missing device_code.")
		return
	}

	current, err := ctl.svc.CurrentPosition(c.Request.Context(), code)
	if err != nil {
		respondError(c, http.StatusNotFound, "Device not found.")
		return
	}

	respondSuccess(c, gin.H{
		"device_code": current.DeviceCode,
		"latitude":    current.Latitude,
		"longitude":   current.Longitude,
	})
}

// GetLocations handles GET /get-locations: the full history with timestamps
// rendered in the display timezone.
func (ctl *LocationController) GetLocations(c *gin.Context) {
	code := c.Query("device_code")
	if code == "" {
		respondError(c, http.StatusBadRequest, "Missing device_code.")
		return
	}

	points, err := ctl.svc.LocalizedHistory(c.Request.Context(), code)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch locations.")
		return
	}

	respondSuccess(c, gin.H{"device_code": code, "locations": points})
}

// GetPath handles GET /get-path: the history as a GeoJSON LineString, or a
// null geometry when fewer than two reports exist.
func (ctl *LocationController) GetPath(c *gin.Context) {
	code := c.Query("device_code")
	if code == "" {
		respondError(c, http.StatusBadRequest, "Missing device_code.")
		return
	}

	path, err := ctl.svc.PathGeoJSON(c.Request.Context(), code)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch locations.")
		return
	}

	respondSuccess(c, gin.H{"device_code": code, "geojson": path})
}
