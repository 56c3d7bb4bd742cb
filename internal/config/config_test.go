package config

import (
	"testing"
	"time"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/require"
)

// TestLoadFromEnv tests loading configuration from the test environment file
func TestLoadFromEnv(t *testing.T) {
	env, err := godotenv.Read("../../.env.test")
	require.NoError(t, err, "Failed to read .env.test file")
	for k, v := range env {
		t.Setenv(k, v)
	}

	cfg := &Config{}
	err = cfg.LoadFromEnv()
	require.NoError(t, err)

	require.Equal(t, "8080", cfg.API.Port)
	require.Equal(t, "localhost", cfg.Database.Host)
	require.Equal(t, 5432, cfg.Database.Port)
	require.Equal(t, "postgres", cfg.Database.User)
	require.Equal(t, "postgres", cfg.Database.Password)
	require.Equal(t, "bannerdesk_test", cfg.Database.DBName)
	require.Equal(t, "disable", cfg.Database.SSLMode)
	require.Equal(t, "test_secret_key", cfg.Auth.JWTSecret)
	require.Equal(t, 24, cfg.Auth.JWTExpiration)
	require.True(t, cfg.Auth.RegistrationOpen)
	require.Equal(t, "UTC", cfg.Booking.Timezone)
	require.False(t, cfg.Booking.SchedulerEnabled)
}

func TestLoadFromEnvDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("BOOKING_TIMEZONE", "")
	t.Setenv("BOOKING_SCHEDULE", "")
	t.Setenv("BOOKING_SCHEDULER_ENABLED", "")
	t.Setenv("CACHE_TTL", "")
	t.Setenv("KAFKA_BROKERS", "")
	t.Setenv("KAFKA_BATCH_TIMEOUT", "")
	t.Setenv("KAFKA_ASYNC", "")
	t.Setenv("S3_BUCKET", "")

	cfg := &Config{}
	require.NoError(t, cfg.LoadFromEnv())

	require.Equal(t, "UTC", cfg.Booking.Timezone)
	require.Equal(t, "5 0 * * *", cfg.Booking.Schedule)
	require.True(t, cfg.Booking.SchedulerEnabled)
	require.Equal(t, 5*time.Minute, cfg.Cache.TTL)
	require.False(t, cfg.Events.Enabled())
	require.Equal(t, 10*time.Millisecond, cfg.Events.BatchTimeout)
	require.False(t, cfg.Events.Async)
	require.False(t, cfg.Storage.Enabled())
}

func TestLoadFromEnvErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{
			name: "missing jwt secret",
			env:  map[string]string{"JWT_SECRET": ""},
		},
		{
			name: "unknown timezone",
			env:  map[string]string{"JWT_SECRET": "secret", "BOOKING_TIMEZONE": "Mars/Olympus"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			cfg := &Config{}
			require.Error(t, cfg.LoadFromEnv())
		})
	}
}

func TestListAndStorageDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("BOOKING_TIMEZONE", "Europe/Stockholm")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, ,kafka-2:9092")
	t.Setenv("KAFKA_BATCH_TIMEOUT", "50ms")
	t.Setenv("KAFKA_ASYNC", "true")
	t.Setenv("S3_BUCKET", "banners")
	t.Setenv("S3_REGION", "eu-north-1")
	t.Setenv("S3_BASE_URL", "")

	cfg := &Config{}
	require.NoError(t, cfg.LoadFromEnv())

	require.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Events.Brokers)
	require.True(t, cfg.Events.Enabled())
	require.Equal(t, 50*time.Millisecond, cfg.Events.BatchTimeout)
	require.True(t, cfg.Events.Async)
	require.Equal(t, "https://banners.s3.eu-north-1.amazonaws.com", cfg.Storage.BaseURL)

	loc, err := cfg.Booking.Location()
	require.NoError(t, err)
	require.Equal(t, "Europe/Stockholm", loc.String())
}
