package middleware

import (
	"bannerdesk/internal/config"
	"bannerdesk/internal/metrics"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// unlimitedPrefixes are never rate limited
var unlimitedPrefixes = []string{"/swagger/", "/metrics", "/api/v1/health"}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter implements per-IP rate limiting using a token bucket
type RateLimiter struct {
	visitors map[string]*visitor
	mu       sync.Mutex
	rate     rate.Limit
	burst    int
	idle     time.Duration
	window   int // Store window size for header calculations
	requests int // Store total requests for header calculations
	metrics  *metrics.Metrics
	stop     chan struct{}
	once     sync.Once
}

// NewRateLimiter creates a new rate limiter middleware
func NewRateLimiter(cfg config.RateLimitConfig, m *metrics.Metrics) *RateLimiter {
	if cfg.Requests <= 0 {
		cfg.Requests = 1
	}
	if cfg.Window <= 0 {
		cfg.Window = 1
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = cfg.Requests
	}
	if m == nil {
		m = metrics.NewNop()
	}

	limiter := &RateLimiter{
		visitors: make(map[string]*visitor),
		rate:     rate.Every(time.Duration(cfg.Window) * time.Second / time.Duration(cfg.Requests)),
		burst:    burst,
		idle:     10 * time.Minute,
		window:   cfg.Window,
		requests: cfg.Requests,
		metrics:  m,
		stop:     make(chan struct{}),
	}

	go limiter.cleanupRoutine(time.Minute)

	return limiter
}

// Stop ends the cleanup goroutine
func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.stop) })
}

// getLimiter returns a rate limiter for the given key
func (rl *RateLimiter) getLimiter(key string, now time.Time) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, exists := rl.visitors[key]
	if !exists {
		v = &visitor{limiter: rate.NewLimiter(rl.rate, rl.burst)}
		rl.visitors[key] = v
	}
	v.lastSeen = now
	return v.limiter
}

// cleanupRoutine periodically removes limiters of idle clients
func (rl *RateLimiter) cleanupRoutine(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case now := <-ticker.C:
			rl.evictIdle(now)
		}
	}
}

func (rl *RateLimiter) evictIdle(now time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	for key, v := range rl.visitors {
		if now.Sub(v.lastSeen) > rl.idle {
			delete(rl.visitors, key)
		}
	}
}

func (rl *RateLimiter) reject(c *gin.Context, now time.Time, retryAfter time.Duration) {
	seconds := int(retryAfter.Seconds())
	if seconds < 1 {
		seconds = 1
	}
	rl.metrics.RateLimitExceededTotal.Inc()
	c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", rl.requests))
	c.Header("X-RateLimit-Remaining", "0")
	c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", now.Add(retryAfter).Unix()))
	c.Header("Retry-After", fmt.Sprintf("%d", seconds))
	c.JSON(http.StatusTooManyRequests, gin.H{
		"error":       "rate limit exceeded",
		"retry_after": fmt.Sprintf("%ds", seconds),
	})
	c.Abort()
}

// Middleware returns a Gin middleware function that implements rate limiting
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, prefix := range unlimitedPrefixes {
			if strings.HasPrefix(c.Request.URL.Path, prefix) {
				c.Next()
				return
			}
		}

		now := time.Now()
		limiter := rl.getLimiter(c.ClientIP(), now)

		r := limiter.ReserveN(now, 1)
		if !r.OK() {
			rl.reject(c, now, time.Duration(rl.window)*time.Second)
			return
		}
		if delay := r.DelayFrom(now); delay > 0 {
			r.CancelAt(now)
			rl.reject(c, now, delay)
			return
		}

		tokens := int(limiter.TokensAt(now))
		if tokens > rl.requests {
			tokens = rl.requests
		}

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", rl.requests))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", tokens))
		c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", now.Add(time.Duration(rl.window)*time.Second).Unix()))

		c.Next()
	}
}
