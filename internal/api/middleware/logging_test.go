package middleware

import (
	"bannerdesk/internal/metrics"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID())
	router.GET("/test", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("request_id"))
	})

	t.Run("generates an id", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))
		assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
		assert.Equal(t, w.Header().Get(RequestIDHeader), w.Body.String())
	})

	t.Run("keeps the caller's id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
	})
}

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name      string
		status    int
		wantLevel zapcore.Level
	}{
		{name: "success logs info", status: http.StatusOK, wantLevel: zapcore.InfoLevel},
		{name: "client error logs warn", status: http.StatusConflict, wantLevel: zapcore.WarnLevel},
		{name: "server error logs error", status: http.StatusBadGateway, wantLevel: zapcore.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.DebugLevel)
			router := gin.New()
			router.Use(RequestID(), RequestLogger(zap.New(core)))
			router.GET("/bookings", func(c *gin.Context) { c.Status(tt.status) })

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/bookings?status=pending", nil))

			entries := logs.All()
			require.Len(t, entries, 1)
			assert.Equal(t, tt.wantLevel, entries[0].Level)
			fields := entries[0].ContextMap()
			assert.Equal(t, "/bookings", fields["path"])
			assert.Equal(t, "status=pending", fields["query"])
			assert.Equal(t, int64(tt.status), fields["status"])
			assert.NotEmpty(t, fields["request_id"])
		})
	}
}

func TestMetrics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := metrics.New(prometheus.NewRegistry())

	router := gin.New()
	router.Use(Metrics(m))
	router.GET("/bookings/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, id := range []string{"a", "b"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/bookings/"+id, nil))
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	assert.Equal(t, float64(2), testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/bookings/:id", "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "unmatched", "404")))
}
