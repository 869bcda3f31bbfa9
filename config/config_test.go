package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"HTTP_ADDR", "GIN_MODE", "DB_PATH", "LOG_LEVEL", "LOG_FORMAT", "HUB_PREFIX", "SHUTDOWN_TIMEOUT", "REFRESH_INTERVAL"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8090", cfg.HTTPAddr)
	assert.Equal(t, "analytics.db", cfg.DBPath)
	assert.Equal(t, "Hub ", cfg.HubPrefix)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Zero(t, cfg.RefreshInterval)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9000")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("HUB_PREFIX", "Polo ")
	t.Setenv("REFRESH_INTERVAL", "5m")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.HTTPAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "Polo ", cfg.AnalyticsOptions().HubPrefix)
	assert.Equal(t, 5*time.Minute, cfg.RefreshInterval)
}

func TestLoad_InvalidDuration(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "soon")

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := Config{HTTPAddr: ":8090", GinMode: "release", DBPath: "x.db"}
	assert.NoError(t, valid.Validate())

	noDB := valid
	noDB.DBPath = ""
	assert.Error(t, noDB.Validate())

	badMode := valid
	badMode.GinMode = "prod"
	assert.Error(t, badMode.Validate())

	negative := valid
	negative.RefreshInterval = -time.Second
	assert.Error(t, negative.Validate())
}
