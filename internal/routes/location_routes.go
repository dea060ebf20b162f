package routes

import (
	"github.com/gin-gonic/gin"

	"device_tracker/internal/controllers"
)

func LocationRoutes(r *gin.Engine, ctl *controllers.LocationController) {
	r.POST("/update-location", ctl.UpdateLocation)
	r.POST("/update-location-and-get-info", ctl.UpdateLocationAndGetInfo)
	r.GET("/get-device-info", ctl.GetDeviceInfo)
	r.GET("/get-location", ctl.GetLocation)
	r.GET("/get-locations", ctl.GetLocations)
	r.GET("/get-path", ctl.GetPath)
}
