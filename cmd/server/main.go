package main

import (
	"log"
	"net/http"

	"device_tracker/internal/config"
	"device_tracker/internal/controllers"
	"device_tracker/internal/logger"
	"device_tracker/internal/middleware"
	"device_tracker/internal/routes"
	"device_tracker/internal/services"
)

func main() {
	// Initialize structured logging to file
	logger.Setup()

	// Connect to the database
	config.InitDB()

	svc := services.NewLocationService(config.DB, config.DisplayLocation())
	location := controllers.NewLocationController(svc)

	// Setup Gin router
	r := routes.SetupRouter(location)

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	addr := config.ServerAddr()
	log.Printf("🚀 Server running at %s", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
