package server

import (
	"bannerdesk/internal/config"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig() *config.Config {
	return &config.Config{
		API:       config.APIConfig{Port: "0"},
		Auth:      config.AuthConfig{JWTSecret: "test_secret_key", JWTExpiration: 1},
		Booking:   config.BookingConfig{Timezone: "UTC", Schedule: "5 0 * * *"},
		Storage:   config.StorageConfig{MaxUploadBytes: 1 << 20},
		Cache:     config.CacheConfig{TTL: time.Minute},
		RateLimit: config.RateLimitConfig{Requests: 100, Window: 60, Burst: 10},
	}
}

func TestNew(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("serves public routes", func(t *testing.T) {
		srv, err := New(context.Background(), testConfig(), nil, zap.NewNop())
		require.NoError(t, err)
		t.Cleanup(func() { _ = srv.Close() })

		tests := []struct {
			path     string
			contains string
		}{
			{path: "/api/v1/banners/formats", contains: "728x90"},
			{path: "/api/v1/banners/pricing?zone_type=city", contains: "price_usd"},
			{path: "/metrics", contains: "go_goroutines"},
			{path: "/swagger/doc.json", contains: "BannerDesk API"},
		}
		for _, tt := range tests {
			t.Run(tt.path, func(t *testing.T) {
				w := httptest.NewRecorder()
				srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))
				assert.Equal(t, http.StatusOK, w.Code)
				assert.Contains(t, w.Body.String(), tt.contains)
			})
		}
	})

	t.Run("uploads disabled without bucket", func(t *testing.T) {
		srv, err := New(context.Background(), testConfig(), nil, zap.NewNop())
		require.NoError(t, err)
		t.Cleanup(func() { _ = srv.Close() })
		assert.Nil(t, srv.services.Uploader)
	})

	t.Run("rejects invalid schedule", func(t *testing.T) {
		cfg := testConfig()
		cfg.Booking.SchedulerEnabled = true
		cfg.Booking.Schedule = "every day"
		_, err := New(context.Background(), cfg, nil, zap.NewNop())
		assert.ErrorContains(t, err, "BOOKING_SCHEDULE")
	})

	t.Run("rejects invalid timezone", func(t *testing.T) {
		cfg := testConfig()
		cfg.Booking.Timezone = "Mars/Olympus"
		_, err := New(context.Background(), cfg, nil, zap.NewNop())
		assert.ErrorContains(t, err, "BOOKING_TIMEZONE")
	})
}

func TestServer_Run(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid port", func(t *testing.T) {
		cfg := testConfig()
		cfg.API.Port = "http"
		srv, err := New(context.Background(), cfg, nil, zap.NewNop())
		require.NoError(t, err)
		t.Cleanup(func() { _ = srv.Close() })

		assert.ErrorContains(t, srv.Run(context.Background()), "invalid port number")
	})

	t.Run("stops when context is cancelled", func(t *testing.T) {
		srv, err := New(context.Background(), testConfig(), nil, zap.NewNop())
		require.NoError(t, err)
		t.Cleanup(func() { _ = srv.Close() })

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- srv.Run(ctx) }()
		cancel()

		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(10 * time.Second):
			t.Fatal("server did not stop")
		}
	})
}
