// Package server provides the HTTP server implementation
package server

// @title           BannerDesk API
// @version         1.0
// @description     Banner advertisement booking and pricing API with global rate limiting.
// @x-skip-model-definitions true
//
// @description.markdown
// All API endpoints except health, metrics and swagger are subject to rate limiting:
// * Default rate: 1000 requests per 60 seconds
// * Burst allowance: 50 requests
// * Rate limits are applied per IP address
//
// When rate limit is exceeded:
// * Status code 429 (Too Many Requests) is returned
// * Headers:
//   - X-RateLimit-Limit: Maximum requests allowed
//   - X-RateLimit-Reset: Unix timestamp when the rate limit resets
//   - Retry-After: Seconds to wait before retrying
//
// @host            localhost:8080
// @BasePath        /api/v1
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token authentication
//
// @response 429 {object} models.ErrorResponse "Rate limit exceeded"

import (
	"bannerdesk/internal/api/middleware"
	"bannerdesk/internal/api/routes"
	"bannerdesk/internal/config"
	"bannerdesk/internal/metrics"
	"bannerdesk/internal/scheduler"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

// shutdownTimeout is how long outstanding requests get to complete
const shutdownTimeout = 5 * time.Second

// Server represents the HTTP server and the booking scheduler
type Server struct {
	cfg      *config.Config
	log      *zap.Logger
	services *Services
	limiter  *middleware.RateLimiter
	jobs     *scheduler.Manager
	handler  http.Handler
}

// New wires the services, routes and scheduled jobs around db
func New(ctx context.Context, cfg *config.Config, db *sql.DB, log *zap.Logger) (*Server, error) {
	if log == nil {
		log = zap.NewNop()
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(registry)

	services, err := NewServices(ctx, cfg, db, m, log)
	if err != nil {
		return nil, err
	}

	if cfg.Booking.SchedulerEnabled {
		if err := scheduler.ValidateSchedule(cfg.Booking.Schedule); err != nil {
			services.Close()
			return nil, fmt.Errorf("invalid BOOKING_SCHEDULE %q: %w", cfg.Booking.Schedule, err)
		}
	}
	loc, err := cfg.Booking.Location()
	if err != nil {
		services.Close()
		return nil, err
	}
	jobs := scheduler.NewManager(loc, log)
	jobs.Register(scheduler.NewAdvanceJob(services.Booking, services.Booking.Now), scheduler.Config{
		Schedule: cfg.Booking.Schedule,
		Enabled:  cfg.Booking.SchedulerEnabled,
	})

	limiter := middleware.NewRateLimiter(cfg.RateLimit, m)
	handler := routes.SetupRoutes(routes.Dependencies{
		Config:   cfg,
		DB:       db,
		Log:      log,
		Metrics:  m,
		Gatherer: registry,
		Limiter:  limiter,
		Users:    services.Users,
		Roles:    services.Roles,
		Audit:    services.Audit,
		Auth:     services.Auth,
		Bookings: services.Booking,
		Uploader: services.Uploader,
	})

	return &Server{
		cfg:      cfg,
		log:      log,
		services: services,
		limiter:  limiter,
		jobs:     jobs,
		handler:  handler,
	}, nil
}

// Handler returns the HTTP handler serving the API
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run serves HTTP and runs the scheduler until ctx is cancelled, then shuts
// both down gracefully
func (s *Server) Run(ctx context.Context) error {
	port, err := strconv.Atoi(s.cfg.API.Port)
	if err != nil {
		return fmt.Errorf("invalid port number: %w", err)
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 2)
	go func() {
		s.log.Info("starting server", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("failed to start server: %w", err)
		}
	}()

	jobsCtx, stopJobs := context.WithCancel(context.Background())
	jobsDone := make(chan struct{})
	go func() {
		defer close(jobsDone)
		if err := s.jobs.Start(jobsCtx); err != nil {
			errCh <- fmt.Errorf("failed to start scheduler: %w", err)
		}
	}()

	var runErr error
	select {
	case <-ctx.Done():
	case runErr = <-errCh:
	}
	s.log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		runErr = errors.Join(runErr, fmt.Errorf("server forced to shutdown: %w", err))
	}
	stopJobs()
	<-jobsDone

	return runErr
}

// Close stops the rate limiter and releases backend connections
func (s *Server) Close() error {
	s.limiter.Stop()
	return s.services.Close()
}
