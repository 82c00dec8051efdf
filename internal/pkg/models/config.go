package models

// Config represents application configuration
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	NATS      NATSConfig
	Logger    LoggerConfig
	Agent     AgentConfig
	Webhook   WebhookConfig
	RateLimit RateLimitConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration. An empty URL disables
// the queue and webhooks are delivered in-process.
type NATSConfig struct {
	URL string
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
	Type     string
}

// AgentConfig contains rider session and PIN policy
type AgentConfig struct {
	SessionTTLDays     int
	MaxLoginAttempts   int
	LockoutMinutes     int
	OnlineWindowMinute int
}

// WebhookConfig contains outbound webhook delivery policy
type WebhookConfig struct {
	TimeoutSeconds int
	MaxRetries     int
	BaseDelayMs    int
	MaxDelayMs     int
	Workers        int
}

// RateLimitConfig contains login rate limit settings
type RateLimitConfig struct {
	Enabled       bool
	Limit         int
	PeriodSeconds int
}
