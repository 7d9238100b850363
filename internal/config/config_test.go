package config

import (
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("CALENDAR_SOURCES", "")
	t.Setenv("UPCOMING_ONLY", "")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, []string{"investing", "marketpulse", "fxstreet", "finnhub"}, cfg.Sources)
	assert.Equal(t, false, cfg.UpcomingOnly)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("CALENDAR_SOURCES", " fxstreet , investing ,")
	t.Setenv("UPCOMING_ONLY", "true")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, []string{"fxstreet", "investing"}, cfg.Sources)
	assert.Equal(t, true, cfg.UpcomingOnly)
}
