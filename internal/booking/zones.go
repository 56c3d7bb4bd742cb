package booking

import (
	"bannerdesk/internal/banner"
	"bannerdesk/internal/cache"
	"bannerdesk/internal/metrics"
	"bannerdesk/internal/models"
	"bannerdesk/internal/repository"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const zoneCachePrefix = "zone:"

// ZoneResolver maps a page context to its zone, caching lookups until the
// TTL passes or a zone is written through it.
type ZoneResolver struct {
	repo    repository.ZoneRepository
	cache   cache.Cache
	ttl     time.Duration
	metrics *metrics.Metrics
	log     *zap.Logger
}

// NewZoneResolver creates a resolver. A nil cache disables caching.
func NewZoneResolver(repo repository.ZoneRepository, c cache.Cache, ttl time.Duration, m *metrics.Metrics, log *zap.Logger) *ZoneResolver {
	if m == nil {
		m = metrics.NewNop()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &ZoneResolver{repo: repo, cache: c, ttl: ttl, metrics: m, log: log}
}

func resolveKey(zoneType banner.ZoneType, countryID uuid.UUID, regionID *uuid.UUID) string {
	region := "-"
	if zoneType.RequiresRegion() && regionID != nil {
		region = regionID.String()
	}
	return fmt.Sprintf("%s%s:%s:%s", zoneCachePrefix, zoneType, countryID, region)
}

// Resolve returns the active zone for the context. A region passed with a
// home_country zone type is ignored. Missing zones return ErrZoneNotFound.
func (r *ZoneResolver) Resolve(ctx context.Context, zoneType banner.ZoneType, countryID uuid.UUID, regionID *uuid.UUID) (*models.Zone, error) {
	if !zoneType.Valid() {
		return nil, banner.ErrInvalidZoneType
	}
	if !zoneType.RequiresRegion() {
		regionID = nil
	} else if regionID == nil {
		return nil, ErrZoneNotFound
	}

	key := resolveKey(zoneType, countryID, regionID)
	if zone, ok := r.cached(ctx, key); ok {
		return zone, nil
	}

	zone, err := r.repo.Resolve(ctx, zoneType, countryID, regionID)
	if errors.Is(err, repository.ErrZoneNotFound) {
		return nil, ErrZoneNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("resolve zone: %w", err)
	}

	r.store(ctx, key, zone)
	return zone, nil
}

func (r *ZoneResolver) cached(ctx context.Context, key string) (*models.Zone, bool) {
	if r.cache == nil {
		return nil, false
	}
	data, ok, err := r.cache.Get(ctx, key)
	if err != nil {
		r.log.Warn("zone cache read failed", zap.String("key", key), zap.Error(err))
		r.metrics.CacheLookupsTotal.WithLabelValues("error").Inc()
		return nil, false
	}
	if !ok {
		r.metrics.CacheLookupsTotal.WithLabelValues("miss").Inc()
		return nil, false
	}
	var zone models.Zone
	if err := json.Unmarshal(data, &zone); err != nil {
		r.metrics.CacheLookupsTotal.WithLabelValues("error").Inc()
		return nil, false
	}
	r.metrics.CacheLookupsTotal.WithLabelValues("hit").Inc()
	return &zone, true
}

func (r *ZoneResolver) store(ctx context.Context, key string, zone *models.Zone) {
	if r.cache == nil {
		return
	}
	data, err := json.Marshal(zone)
	if err != nil {
		return
	}
	if err := r.cache.Set(ctx, key, data, r.ttl); err != nil {
		r.log.Warn("zone cache write failed", zap.String("key", key), zap.Error(err))
	}
}

// Invalidate drops every cached resolution
func (r *ZoneResolver) Invalidate(ctx context.Context) {
	if r.cache == nil {
		return
	}
	if err := r.cache.InvalidatePrefix(ctx, zoneCachePrefix); err != nil {
		r.log.Warn("zone cache invalidation failed", zap.Error(err))
	}
}

// Get returns a zone by id
func (r *ZoneResolver) Get(ctx context.Context, id uuid.UUID) (*models.Zone, error) {
	zone, err := r.repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrZoneNotFound) {
		return nil, ErrZoneNotFound
	}
	return zone, err
}

// List returns zones matching filter
func (r *ZoneResolver) List(ctx context.Context, filter repository.ZoneFilter) ([]models.Zone, error) {
	return r.repo.List(ctx, filter)
}

// Create stores a new zone
func (r *ZoneResolver) Create(ctx context.Context, zone *models.Zone) error {
	if !zone.ZoneType.Valid() {
		return banner.ErrInvalidZoneType
	}
	if !zone.ZoneType.RequiresRegion() {
		zone.RegionID = nil
	} else if zone.RegionID == nil {
		return fmt.Errorf("%w: city zones need a region", repository.ErrConflict)
	}
	if err := r.repo.Create(ctx, zone); err != nil {
		return err
	}
	r.Invalidate(ctx)
	return nil
}

// Update renames or (de)activates a zone
func (r *ZoneResolver) Update(ctx context.Context, zone *models.Zone) error {
	if err := r.repo.Update(ctx, zone); err != nil {
		if errors.Is(err, repository.ErrZoneNotFound) {
			return ErrZoneNotFound
		}
		return err
	}
	r.Invalidate(ctx)
	return nil
}

// Delete removes a zone without bookings
func (r *ZoneResolver) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrZoneNotFound) {
			return ErrZoneNotFound
		}
		return err
	}
	r.Invalidate(ctx)
	return nil
}
