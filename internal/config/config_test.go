package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("SOME_TEST_KEY", "set")
	assert.Equal(t, "set", getEnv("SOME_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", getEnv("SOME_MISSING_KEY", "fallback"))
}

func TestServerAddrDefault(t *testing.T) {
	assert.Equal(t, ":8080", ServerAddr())

	t.Setenv("SERVER_ADDR", ":9090")
	assert.Equal(t, ":9090", ServerAddr())
}

func TestDisplayLocation(t *testing.T) {
	// Default keeps the dashboard's IST rendering.
	loc := DisplayLocation()
	assert.Equal(t, "Asia/Kolkata", loc.String())

	t.Setenv("DISPLAY_TIMEZONE", "Europe/Madrid")
	assert.Equal(t, "Europe/Madrid", DisplayLocation().String())

	t.Setenv("DISPLAY_TIMEZONE", "Not/AZone")
	assert.Equal(t, time.UTC, DisplayLocation())
}
