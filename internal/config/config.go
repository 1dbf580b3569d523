package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Generation GenerationConfig `yaml:"generation"`
	Cache      CacheConfig      `yaml:"cache"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// GenerationConfig holds settings for the AI generation webhook.
// The webhook is a tagged-request endpoint (n8n in production, the bundled
// mock in development); WriteTimeout-scale latencies are normal for it.
type GenerationConfig struct {
	WebhookURL string        `yaml:"webhook_url" env:"GENERATION_WEBHOOK_URL" env-required:"true"`
	AuthHeader string        `yaml:"auth_header" env:"GENERATION_AUTH_HEADER"`
	Timeout    time.Duration `yaml:"timeout"     env:"GENERATION_TIMEOUT"     env-default:"30s"`
}

// CacheConfig holds per-namespace freshness windows for the read-through cache.
// The windows mirror expected mutation frequency: the brand tree changes
// rarely and is the most expensive load, generated content changes on every
// regeneration.
type CacheConfig struct {
	BrandTreeTTL time.Duration `yaml:"brand_tree_ttl" env:"CACHE_BRAND_TREE_TTL" env-default:"5m"`
	AnglesTTL    time.Duration `yaml:"angles_ttl"     env:"CACHE_ANGLES_TTL"     env-default:"3m"`
	IdeasTTL     time.Duration `yaml:"ideas_ttl"      env:"CACHE_IDEAS_TTL"      env-default:"2m"`
	ContentTTL   time.Duration `yaml:"content_ttl"    env:"CACHE_CONTENT_TTL"    env-default:"1m"`
}

// RateLimitConfig holds settings for the generation-route rate limiter.
type RateLimitConfig struct {
	Enabled bool          `yaml:"enabled" env:"RATE_LIMIT_ENABLED" env-default:"true"`
	Limit   int           `yaml:"limit"   env:"RATE_LIMIT_LIMIT"   env-default:"30"`
	Window  time.Duration `yaml:"window"  env:"RATE_LIMIT_WINDOW"  env-default:"1m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-User-ID"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}
