package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitConfig_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "test")

	cfg := InitConfig("does-not-exist.env")

	assert.Equal(t, "dispatch", cfg.App.Name)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "pgx", cfg.Database.Driver)
	assert.Equal(t, "", cfg.NATS.URL)
	assert.Equal(t, 30, cfg.Agent.SessionTTLDays)
	assert.Equal(t, 5, cfg.Agent.MaxLoginAttempts)
	assert.Equal(t, 15, cfg.Agent.LockoutMinutes)
	assert.Equal(t, 10, cfg.Webhook.TimeoutSeconds)
	assert.Equal(t, 3, cfg.Webhook.MaxRetries)
	assert.True(t, cfg.RateLimit.Enabled)
}

func TestInitConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("NATS_URL", "nats://queue:4222")
	t.Setenv("AGENT_MAX_LOGIN_ATTEMPTS", "3")
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := InitConfig("")

	assert.Equal(t, "production", cfg.App.Environment)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "nats://queue:4222", cfg.NATS.URL)
	assert.Equal(t, 3, cfg.Agent.MaxLoginAttempts)
	assert.False(t, cfg.RateLimit.Enabled)
	assert.Equal(t, "debug", cfg.Logger.Level)
}
