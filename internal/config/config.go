package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config represents the application configuration
type Config struct {
	// API contains API server configuration
	API APIConfig
	// Auth contains authentication configuration
	Auth AuthConfig
	// Database contains database configuration
	Database DatabaseConfig
	// Email contains email service configuration
	Email EmailConfig
	// Booking contains booking calendar and scheduler settings
	Booking BookingConfig
	// Storage contains banner image storage settings
	Storage StorageConfig
	// Cache contains zone lookup cache settings
	Cache CacheConfig
	// Events contains lifecycle event publishing settings
	Events EventsConfig
	// Log contains logger settings
	Log LogConfig

	// RateLimit contains the per-IP limiter settings
	RateLimit RateLimitConfig
}

// RateLimitConfig contains the per-IP token bucket settings
type RateLimitConfig struct {
	// Requests is the number of requests allowed per window
	Requests int
	// Window is the time window in seconds
	Window int
	// Burst is the maximum burst size; Requests is used when zero
	Burst int
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	// Host is the database server hostname
	Host string
	// Port is the database server port
	Port int
	// User is the database username
	User string
	// Password is the database password
	Password string
	// DBName is the database name
	DBName string
	// SSLMode is the SSL mode for the database connection
	SSLMode string
	// MigrationsPath is the path to database migrations
	MigrationsPath string
}

// DSN returns the lib/pq connection string
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// URL returns the connection string in URL form used by golang-migrate
func (c DatabaseConfig) URL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode)
}

// APIConfig contains API server settings
type APIConfig struct {
	// Port is the server port to listen on
	Port string
	// AllowedOrigins is the CORS allow list; empty allows all origins
	AllowedOrigins []string
}

// AuthConfig contains authentication settings
type AuthConfig struct {
	// JWTSecret is the secret key used to sign JWT tokens
	JWTSecret string
	// JWTExpiration is the JWT token expiration time in hours
	JWTExpiration int
	// RegistrationOpen determines if new user registration is allowed
	RegistrationOpen bool
}

// EmailConfig contains email service settings
type EmailConfig struct {
	// SMTPHost is the SMTP server hostname. Notifications are disabled when empty.
	SMTPHost string
	// SMTPPort is the SMTP server port
	SMTPPort int
	// SMTPUsername is the SMTP authentication username
	SMTPUsername string
	// SMTPPassword is the SMTP authentication password
	SMTPPassword string
	// FromAddress is the email address used as sender
	FromAddress string
	// AppURL is the base URL of the application
	AppURL string
}

// Enabled reports whether enough settings are present to send mail
func (c EmailConfig) Enabled() bool {
	return c.SMTPHost != "" && c.SMTPPort != 0 && c.FromAddress != ""
}

// BookingConfig contains booking calendar settings
type BookingConfig struct {
	// Timezone is the location used to decide what "today" is
	Timezone string
	// Schedule is the cron expression for the approved/active/expired transitions
	Schedule string
	// SchedulerEnabled starts the transition job with the API server
	SchedulerEnabled bool
}

// Location loads the configured booking time zone
func (c BookingConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid BOOKING_TIMEZONE %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// StorageConfig contains S3 settings for banner images
type StorageConfig struct {
	Bucket  string
	Region  string
	BaseURL string
	// MaxUploadBytes caps the accepted image size
	MaxUploadBytes int64
}

// Enabled reports whether uploads can be stored
func (c StorageConfig) Enabled() bool {
	return c.Bucket != ""
}

// CacheConfig contains zone cache settings
type CacheConfig struct {
	// RedisAddr selects the Redis backend when set, the in-memory cache otherwise
	RedisAddr     string
	RedisPassword string
	TTL           time.Duration
}

// EventsConfig contains Kafka settings
type EventsConfig struct {
	Brokers []string
	Topic   string
	// BatchTimeout caps how long a write waits for the batch to fill
	BatchTimeout time.Duration
	// Async returns from Publish without waiting for the broker
	Async bool
}

// Enabled reports whether lifecycle events are published
func (c EventsConfig) Enabled() bool {
	return len(c.Brokers) > 0 && c.Topic != ""
}

// LogConfig contains logger settings
type LogConfig struct {
	Level string
	// File is the rotated JSON log file; empty logs to stdout only
	File string
}

// LoadFromEnv retrieves configuration from environment variables
func (c *Config) LoadFromEnv() error {
	c.API = APIConfig{
		Port:           getEnvOrDefault("API_PORT", "8080"),
		AllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS"),
	}
	c.Database = DatabaseConfig{
		Host:           getEnvOrDefault("DB_HOST", "localhost"),
		Port:           getEnvAsInt("DB_PORT", 5432),
		User:           getEnvOrDefault("DB_USER", "postgres"),
		Password:       getEnvOrDefault("DB_PASSWORD", "postgres"),
		DBName:         getEnvOrDefault("DB_NAME", "bannerdesk"),
		SSLMode:        getEnvOrDefault("DB_SSL_MODE", "disable"),
		MigrationsPath: getEnvOrDefault("DB_MIGRATIONS_PATH", "migrations"),
	}
	c.Auth = AuthConfig{
		JWTSecret:        os.Getenv("JWT_SECRET"),
		JWTExpiration:    getEnvAsInt("JWT_EXPIRATION_HOURS", 24),
		RegistrationOpen: getEnvAsBool("REGISTRATION_OPEN", true),
	}
	c.Email = EmailConfig{
		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPPort:     getEnvAsInt("SMTP_PORT", 587),
		SMTPUsername: os.Getenv("SMTP_USERNAME"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		FromAddress:  os.Getenv("SMTP_FROM"),
		AppURL:       os.Getenv("APP_URL"),
	}
	c.Booking = BookingConfig{
		Timezone:         getEnvOrDefault("BOOKING_TIMEZONE", "UTC"),
		Schedule:         getEnvOrDefault("BOOKING_SCHEDULE", "5 0 * * *"),
		SchedulerEnabled: getEnvAsBool("BOOKING_SCHEDULER_ENABLED", true),
	}
	c.Storage = StorageConfig{
		Bucket:         os.Getenv("S3_BUCKET"),
		Region:         getEnvOrDefault("S3_REGION", "us-east-1"),
		BaseURL:        os.Getenv("S3_BASE_URL"),
		MaxUploadBytes: int64(getEnvAsInt("UPLOAD_MAX_BYTES", 2<<20)),
	}
	c.Cache = CacheConfig{
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		TTL:           getEnvAsDuration("CACHE_TTL", 5*time.Minute),
	}
	c.Events = EventsConfig{
		Brokers:      getEnvAsList("KAFKA_BROKERS"),
		Topic:        getEnvOrDefault("KAFKA_BOOKING_TOPIC", "banner-bookings"),
		BatchTimeout: getEnvAsDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),
		Async:        getEnvAsBool("KAFKA_ASYNC", false),
	}
	c.Log = LogConfig{
		Level: getEnvOrDefault("LOG_LEVEL", "info"),
		File:  os.Getenv("LOG_FILE"),
	}

	// Load rate limit configuration
	c.RateLimit.Requests = getEnvAsInt("RATE_LIMIT_REQUESTS", 1000)
	c.RateLimit.Window = getEnvAsInt("RATE_LIMIT_WINDOW", 60)
	c.RateLimit.Burst = getEnvAsInt("RATE_LIMIT_BURST", 50)

	// Validate required fields
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if _, err := c.Booking.Location(); err != nil {
		return err
	}
	if c.Storage.Enabled() && c.Storage.BaseURL == "" {
		c.Storage.BaseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", c.Storage.Bucket, c.Storage.Region)
	}

	return nil
}

// getEnvAsInt retrieves an environment variable and converts it to an integer
func getEnvAsInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

// getEnvAsBool retrieves an environment variable and converts it to a boolean
func getEnvAsBool(key string, defaultVal bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultVal
}

func getEnvAsDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}

// getEnvAsList splits a comma separated variable, dropping empty items
func getEnvAsList(key string) []string {
	var out []string
	for _, item := range strings.Split(os.Getenv(key), ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func getEnvOrDefault(key string, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}
