package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"device_tracker/internal/models"
)

var (
	// DB is the globally accessible database handle
	DB *gorm.DB
)

// InitDB initializes the database connection using environment variables
// and migrates the device tables.
func InitDB() {
	// 1) Load .env (if present)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found – relying on env vars")
	}

	// Load environment variables (with defaults)
	host := getEnv("DB_HOST", "localhost")
	port := getEnv("DB_PORT", "5432")
	user := getEnv("DB_USER", "postgres")
	password := getEnv("DB_PASSWORD", "password")
	dbname := getEnv("DB_NAME", "tracker")
	sslmode := getEnv("DB_SSLMODE", "disable")
	timezone := getEnv("DB_TIMEZONE", "UTC")

	// Build Data Source Name
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		host, user, password, dbname, port, sslmode, timezone,
	)

	// Open GORM connection
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	// The device row itself is owned by the external provisioning process;
	// migration only guarantees both tables exist with the right shape.
	err = db.AutoMigrate(&models.Device{}, &models.DeviceLocation{})
	if err != nil {
		log.Fatalf("auto-migration failed: %v", err)
	}

	// Assign to global
	DB = db
}

// getEnv reads an environment variable or returns the provided default
func getEnv(key, defaultValue string) string {
	if v, exists := os.LookupEnv(key); exists {
		return v
	}
	return defaultValue
}

// GetDB returns the initialized DB handle
func GetDB() *gorm.DB {
	return DB
}

// ServerAddr returns the listen address for the HTTP server.
func ServerAddr() string {
	return getEnv("SERVER_ADDR", ":8080")
}

// DisplayLocation loads the timezone used when rendering history timestamps
// for display. Defaults to IST for compatibility with existing dashboards;
// an unknown zone falls back to UTC.
func DisplayLocation() *time.Location {
	name := getEnv("DISPLAY_TIMEZONE", "Asia/Kolkata")
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("unknown DISPLAY_TIMEZONE %q – falling back to UTC", name)
		return time.UTC
	}
	return loc
}
