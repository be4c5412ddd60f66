package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "")
	t.Setenv("STORAGE_DRIVER", "")

	cfg := Load()

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, StorageDriverPostgres, cfg.StorageDriver)
	assert.Equal(t, 300, cfg.QRExpirySeconds)
	assert.Equal(t, 5, cfg.SuccessRedirectSeconds)
	assert.Equal(t, time.Second, cfg.CountdownTick)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.False(t, cfg.IsProduction())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("STORAGE_DRIVER", StorageDriverMemory)
	t.Setenv("COUNTDOWN_TICK", "250ms")
	t.Setenv("ENV", "production")

	cfg := Load()

	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, StorageDriverMemory, cfg.StorageDriver)
	assert.Equal(t, 250*time.Millisecond, cfg.CountdownTick)
	assert.True(t, cfg.IsProduction())
}
