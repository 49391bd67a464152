package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for our application
type Config struct {
	// Server configuration
	Port           string
	GinMode        string
	APIVersion     string
	APIPrefix      string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	MaxHeaderBytes int

	// Database configuration
	Database DatabaseConfig

	// Redis configuration
	Redis RedisConfig

	// Upstream airline seat-map source
	Upstream UpstreamConfig

	// Kafka selection-changed events
	Kafka KafkaConfig

	// JWT configuration
	JWT JWTConfig

	// Rate limiting
	RateLimit RateLimitConfig

	// Seat selection business rules
	Selection SelectionConfig

	// Logging
	LogLevel string
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
	DSN      string
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	Addr     string

	// TTL values for different operations
	PayloadTTL         time.Duration
	SelectionMirrorTTL time.Duration
	PrefetchLockTTL    time.Duration
}

// UpstreamConfig holds the opaque seat-map source configuration. The airline
// API itself is a collaborator; only the fetch seam lives here.
type UpstreamConfig struct {
	BaseURL  string
	APIKey   string
	Timeout  time.Duration
	Cooldown time.Duration // recorded after a 429-class response
	LockWait time.Duration // max time to wait on another caller's fetch
	LockTick time.Duration // cache re-check interval while waiting
}

// KafkaConfig holds the selection-changed producer configuration
type KafkaConfig struct {
	Enabled bool
	Brokers []string
	Topic   string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret string
}

// RateLimitConfig holds inbound rate limiting configuration
type RateLimitConfig struct {
	Enabled        bool          `json:"enabled"`
	WindowDuration time.Duration `json:"window_duration"`
	Requests       int           `json:"requests"`
	WhitelistedIPs []string      `json:"whitelisted_ips"`
}

// SelectionConfig holds the airline policy limits the eligibility gate and
// the selection store enforce.
type SelectionConfig struct {
	MaxAdults   int // more adults than this disables seat selection
	MaxChildren int // any children beyond this disables seat selection
	MaxSegments int // itineraries longer than this disable seat selection
}

// Load loads configuration from environment variables
func Load() *Config {
	cfg := &Config{
		// Server configuration
		Port:           getEnv("PORT", "8080"),
		GinMode:        getEnv("GIN_MODE", "debug"),
		APIVersion:     getEnv("API_VERSION", "v1"),
		APIPrefix:      getEnv("API_PREFIX", "/api"),
		ReadTimeout:    getDurationEnv("READ_TIMEOUT", 15*time.Second),
		WriteTimeout:   getDurationEnv("WRITE_TIMEOUT", 15*time.Second),
		IdleTimeout:    getDurationEnv("IDLE_TIMEOUT", 60*time.Second),
		MaxHeaderBytes: getIntEnv("MAX_HEADER_BYTES", 1<<20), // 1 MB

		// Database configuration
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "seatwise_db"),
			User:     getEnv("DB_USER", "seatwise_user"),
			Password: getEnv("DB_PASSWORD", "seatwise_password"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},

		// Redis configuration
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getIntEnv("REDIS_DB", 0),

			PayloadTTL:         getDurationEnv("SEATMAP_PAYLOAD_TTL", 30*time.Minute),
			SelectionMirrorTTL: getDurationEnv("SELECTION_MIRROR_TTL", 24*time.Hour),
			PrefetchLockTTL:    getDurationEnv("SEATMAP_LOCK_TTL", 20*time.Second),
		},

		// Upstream seat-map source
		Upstream: UpstreamConfig{
			BaseURL:  getEnv("UPSTREAM_BASE_URL", "http://localhost:9090"),
			APIKey:   getEnv("UPSTREAM_API_KEY", ""),
			Timeout:  getDurationEnv("UPSTREAM_TIMEOUT", 10*time.Second),
			Cooldown: getDurationEnv("UPSTREAM_COOLDOWN", 60*time.Second),
			LockWait: getDurationEnv("UPSTREAM_LOCK_WAIT", 5*time.Second),
			LockTick: getDurationEnv("UPSTREAM_LOCK_TICK", 250*time.Millisecond),
		},

		// Kafka configuration
		Kafka: KafkaConfig{
			Enabled: getBoolEnv("KAFKA_ENABLED", false),
			Brokers: getStringSliceEnv("KAFKA_BROKERS", []string{"localhost:9092"}),
			Topic:   getEnv("KAFKA_SELECTION_TOPIC", "selection-changed"),
		},

		// JWT configuration
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", "your-super-secret-jwt-key"),
		},

		// Rate limiting
		RateLimit: RateLimitConfig{
			Enabled:        getBoolEnv("RATE_LIMIT_ENABLED", true),
			WindowDuration: getDurationEnv("RATE_LIMIT_WINDOW_DURATION", 60*time.Second),
			Requests:       getIntEnv("RATE_LIMIT_REQUESTS", 120),
			WhitelistedIPs: getStringSliceEnv("RATE_LIMIT_WHITELISTED_IPS", []string{}),
		},

		// Seat selection business rules
		Selection: SelectionConfig{
			MaxAdults:   getIntEnv("SELECTION_MAX_ADULTS", 1),
			MaxChildren: getIntEnv("SELECTION_MAX_CHILDREN", 0),
			MaxSegments: getIntEnv("SELECTION_MAX_SEGMENTS", 3),
		},

		// Logging
		LogLevel: getEnv("LOG_LEVEL", "debug"),
	}

	// Build composite values
	cfg.Database.DSN = buildDatabaseDSN(cfg.Database)
	cfg.Redis.Addr = cfg.Redis.Host + ":" + cfg.Redis.Port

	return cfg
}

// buildDatabaseDSN builds the database connection string
func buildDatabaseDSN(db DatabaseConfig) string {
	return "host=" + db.Host +
		" port=" + db.Port +
		" user=" + db.User +
		" password=" + db.Password +
		" dbname=" + db.Name +
		" sslmode=" + db.SSLMode
}

// GetServerAddress returns the full server bind address
func (c *Config) GetServerAddress() string {
	return ":" + c.Port
}

// GetAPIBasePath returns the versioned API prefix, e.g. /api/v1
func (c *Config) GetAPIBasePath() string {
	return c.APIPrefix + "/" + c.APIVersion
}

// IsDevelopment reports whether the server runs in debug mode
func (c *Config) IsDevelopment() bool {
	return c.GinMode == "debug"
}

// getEnv gets an environment variable with a fallback value
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getIntEnv gets an integer environment variable with a fallback value
func getIntEnv(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return fallback
}

// getBoolEnv gets a boolean environment variable with a fallback value
func getBoolEnv(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return fallback
}

// getDurationEnv gets a duration environment variable with a fallback value
func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return fallback
}

// getStringSliceEnv gets a comma-separated environment variable as a slice
func getStringSliceEnv(key string, fallback []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				out = append(out, trimmed)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return fallback
}
