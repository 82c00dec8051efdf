package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/piresc/dispatch/internal/pkg/models"
	"github.com/spf13/viper"
)

// InitConfig loads configPath as a .env file when running locally and then
// reads every setting from the environment.
func InitConfig(configPath string) *models.Config {
	v := newViper()
	if v.GetString("APP_ENV") == "local" {
		if err := godotenv.Load(configPath); err != nil {
			log.Println("error loading config from file", err)
		}
	}
	return loadConfig(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "dispatch")
	v.SetDefault("APP_ENV", "local")
	v.SetDefault("APP_DEBUG", true)
	v.SetDefault("APP_VERSION", "dev")

	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("SERVER_READ_TIMEOUT", 15)
	v.SetDefault("SERVER_WRITE_TIMEOUT", 15)
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", 10)

	v.SetDefault("DB_DRIVER", "pgx")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USERNAME", "postgres")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_DATABASE", "dispatch")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 20)
	v.SetDefault("DB_IDLE_CONNS", 5)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_POOL_SIZE", 10)

	v.SetDefault("NATS_URL", "")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FILE_PATH", "logs/dispatch.log")
	v.SetDefault("LOG_TYPE", "console")

	v.SetDefault("AGENT_SESSION_TTL_DAYS", 30)
	v.SetDefault("AGENT_MAX_LOGIN_ATTEMPTS", 5)
	v.SetDefault("AGENT_LOCKOUT_MINUTES", 15)
	v.SetDefault("AGENT_ONLINE_WINDOW_MINUTES", 5)

	v.SetDefault("WEBHOOK_TIMEOUT_SECONDS", 10)
	v.SetDefault("WEBHOOK_MAX_RETRIES", 3)
	v.SetDefault("WEBHOOK_BASE_DELAY_MS", 1000)
	v.SetDefault("WEBHOOK_MAX_DELAY_MS", 30000)
	v.SetDefault("WEBHOOK_WORKERS", 4)

	v.SetDefault("RATE_LIMIT_ENABLED", true)
	v.SetDefault("RATE_LIMIT_LIMIT", 10)
	v.SetDefault("RATE_LIMIT_PERIOD_SECONDS", 60)
}

func loadConfig(v *viper.Viper) *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = v.GetString("APP_NAME")
	configs.App.Environment = v.GetString("APP_ENV")
	configs.App.Debug = v.GetBool("APP_DEBUG")
	configs.App.Version = v.GetString("APP_VERSION")

	// Server config
	configs.Server.Host = v.GetString("SERVER_HOST")
	configs.Server.Port = v.GetInt("SERVER_PORT")
	configs.Server.ReadTimeout = v.GetInt("SERVER_READ_TIMEOUT")
	configs.Server.WriteTimeout = v.GetInt("SERVER_WRITE_TIMEOUT")
	configs.Server.ShutdownTimeout = v.GetInt("SERVER_SHUTDOWN_TIMEOUT")

	// Database config
	configs.Database.Driver = v.GetString("DB_DRIVER")
	configs.Database.Host = v.GetString("DB_HOST")
	configs.Database.Port = v.GetInt("DB_PORT")
	configs.Database.Username = v.GetString("DB_USERNAME")
	configs.Database.Password = v.GetString("DB_PASSWORD")
	configs.Database.Database = v.GetString("DB_DATABASE")
	configs.Database.SSLMode = v.GetString("DB_SSL_MODE")
	configs.Database.MaxConns = v.GetInt("DB_MAX_CONNS")
	configs.Database.IdleConns = v.GetInt("DB_IDLE_CONNS")

	// Redis config
	configs.Redis.Host = v.GetString("REDIS_HOST")
	configs.Redis.Port = v.GetInt("REDIS_PORT")
	configs.Redis.Password = v.GetString("REDIS_PASSWORD")
	configs.Redis.DB = v.GetInt("REDIS_DB")
	configs.Redis.PoolSize = v.GetInt("REDIS_POOL_SIZE")

	// NATS config
	configs.NATS.URL = v.GetString("NATS_URL")

	// Logger config
	configs.Logger.Level = v.GetString("LOG_LEVEL")
	configs.Logger.FilePath = v.GetString("LOG_FILE_PATH")
	configs.Logger.Type = v.GetString("LOG_TYPE")

	// Agent session policy
	configs.Agent.SessionTTLDays = v.GetInt("AGENT_SESSION_TTL_DAYS")
	configs.Agent.MaxLoginAttempts = v.GetInt("AGENT_MAX_LOGIN_ATTEMPTS")
	configs.Agent.LockoutMinutes = v.GetInt("AGENT_LOCKOUT_MINUTES")
	configs.Agent.OnlineWindowMinute = v.GetInt("AGENT_ONLINE_WINDOW_MINUTES")

	// Webhook delivery
	configs.Webhook.TimeoutSeconds = v.GetInt("WEBHOOK_TIMEOUT_SECONDS")
	configs.Webhook.MaxRetries = v.GetInt("WEBHOOK_MAX_RETRIES")
	configs.Webhook.BaseDelayMs = v.GetInt("WEBHOOK_BASE_DELAY_MS")
	configs.Webhook.MaxDelayMs = v.GetInt("WEBHOOK_MAX_DELAY_MS")
	configs.Webhook.Workers = v.GetInt("WEBHOOK_WORKERS")

	// Login rate limiting
	configs.RateLimit.Enabled = v.GetBool("RATE_LIMIT_ENABLED")
	configs.RateLimit.Limit = v.GetInt("RATE_LIMIT_LIMIT")
	configs.RateLimit.PeriodSeconds = v.GetInt("RATE_LIMIT_PERIOD_SECONDS")

	return configs
}
