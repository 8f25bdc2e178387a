package config_test

import (
	"context"
	"testing"
	"time"

	"go-logbook/internal/config"

	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := config.LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{}))
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, 15*time.Minute, cfg.Reset.TokenTTL)
	assert.Equal(t, 15*time.Minute, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, "Asia/Kolkata", cfg.Timezone)
	assert.False(t, cfg.ReportsClientTypeFilter)
	assert.Equal(t, 3*time.Second, cfg.Worker.PollInterval)
}

func TestLoadFrom_Overrides(t *testing.T) {
	cfg, err := config.LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{
		"PORT":                       "8080",
		"RESET_TOKEN_TTL":            "30m",
		"LOGBOOK_TIMEZONE":           "UTC",
		"REPORTS_CLIENT_TYPE_FILTER": "true",
		"DB_AUTO_MIGRATE":            "true",
	}))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 30*time.Minute, cfg.Reset.TokenTTL)
	assert.Equal(t, time.UTC, cfg.Location())
	assert.True(t, cfg.ReportsClientTypeFilter)
	assert.True(t, cfg.DB.AutoMigrate)
}

func TestLoadFrom_ProductionRequiresSecret(t *testing.T) {
	_, err := config.LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{
		"APP_ENV": "production",
	}))
	assert.ErrorContains(t, err, "JWT_SECRET")
}

func TestLoadFrom_InvalidTimezone(t *testing.T) {
	_, err := config.LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{
		"LOGBOOK_TIMEZONE": "Mars/Olympus",
	}))
	assert.ErrorContains(t, err, "LOGBOOK_TIMEZONE")
}
