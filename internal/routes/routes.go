package routes

import (
	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"device_tracker/internal/controllers"
)

// SetupRouter builds the gin engine with recovery and request logging, then
// registers every route group.
func SetupRouter(location *controllers.LocationController) *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(ginlog.SetLogger(
		ginlog.WithLogger(func(_ *gin.Context, l zerolog.Logger) zerolog.Logger {
			return l.Output(gin.DefaultWriter)
		}),
	))

	LocationRoutes(r, location)

	return r
}
