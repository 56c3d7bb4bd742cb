package server

import (
	"bannerdesk/internal/auth"
	"bannerdesk/internal/booking"
	"bannerdesk/internal/cache"
	"bannerdesk/internal/config"
	"bannerdesk/internal/email"
	"bannerdesk/internal/events"
	"bannerdesk/internal/metrics"
	"bannerdesk/internal/repository"
	"bannerdesk/internal/repository/postgres"
	"bannerdesk/internal/storage"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"
)

// zoneCacheNamespace prefixes every key this service writes to Redis
const zoneCacheNamespace = "bannerdesk:"

// Services holds the repositories and domain services shared by the API
// server and the command line tool
type Services struct {
	Users    repository.UserRepository
	Roles    repository.RoleRepository
	Zones    repository.ZoneRepository
	Bookings repository.BookingRepository
	Audit    repository.AuditLogRepository

	Auth     *auth.Service
	Resolver *booking.ZoneResolver
	Booking  *booking.Service
	// Uploader is nil when no bucket is configured
	Uploader *storage.Uploader

	closers []io.Closer
}

// NewServices wires the Postgres repositories and the optional Redis, Kafka,
// SMTP and S3 backends selected by cfg
func NewServices(ctx context.Context, cfg *config.Config, db *sql.DB, m *metrics.Metrics, log *zap.Logger) (*Services, error) {
	if log == nil {
		log = zap.NewNop()
	}
	loc, err := cfg.Booking.Location()
	if err != nil {
		return nil, err
	}

	s := &Services{
		Users:    postgres.NewUserRepository(db),
		Roles:    postgres.NewRoleRepository(db),
		Zones:    postgres.NewZoneRepository(db),
		Bookings: postgres.NewBookingRepository(db),
		Audit:    postgres.NewAuditLogRepository(db),
		Auth:     auth.NewService(cfg.Auth),
	}

	var zoneCache cache.Cache = cache.NewMemory(nil)
	if cfg.Cache.RedisAddr != "" {
		rc, err := cache.NewRedis(ctx, cfg.Cache.RedisAddr, cfg.Cache.RedisPassword, zoneCacheNamespace)
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, rc)
		zoneCache = rc
		log.Info("zone cache backed by redis", zap.String("addr", cfg.Cache.RedisAddr))
	}
	s.Resolver = booking.NewZoneResolver(s.Zones, zoneCache, cfg.Cache.TTL, m, log)

	var publisher events.Publisher = events.NopPublisher{}
	if cfg.Events.Enabled() {
		kp, err := events.NewKafkaPublisher(cfg.Events, log)
		if err != nil {
			s.Close()
			return nil, fmt.Errorf("create kafka publisher: %w", err)
		}
		s.closers = append(s.closers, kp)
		publisher = kp
		log.Info("publishing booking events", zap.Strings("brokers", cfg.Events.Brokers), zap.String("topic", cfg.Events.Topic))
	}

	var notifier email.Notifier = email.NopNotifier{}
	if cfg.Email.Enabled() {
		notifier = email.NewService(cfg.Email, log)
	}

	if cfg.Storage.Enabled() {
		store, err := storage.NewS3Store(ctx, cfg.Storage.Region, cfg.Storage.Bucket, cfg.Storage.BaseURL)
		if err != nil {
			s.Close()
			return nil, err
		}
		s.Uploader = storage.NewUploader(store, cfg.Storage.MaxUploadBytes)
	} else {
		log.Warn("S3_BUCKET is not set, banner uploads are disabled")
	}

	s.Booking = booking.NewService(booking.Options{
		Bookings: s.Bookings,
		Users:    s.Users,
		Audit:    s.Audit,
		Zones:    s.Resolver,
		Events:   publisher,
		Notifier: notifier,
		Metrics:  m,
		Logger:   log,
		Location: loc,
	})
	return s, nil
}

// Close releases the Redis and Kafka connections
func (s *Services) Close() error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	s.closers = nil
	return errors.Join(errs...)
}
