package repository

import (
	"bannerdesk/internal/banner"
	"bannerdesk/internal/models"
	"context"

	"github.com/google/uuid"
)

// ZoneRepository defines the interface for ad zone database operations
type ZoneRepository interface {
	Repository
	Create(ctx context.Context, zone *models.Zone) error
	Update(ctx context.Context, zone *models.Zone) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Zone, error)
	// Resolve returns the active zone for the type and country.
	// regionID is matched for city zones and ignored for home_country zones.
	Resolve(ctx context.Context, zoneType banner.ZoneType, countryID uuid.UUID, regionID *uuid.UUID) (*models.Zone, error)
	List(ctx context.Context, filter ZoneFilter) ([]models.Zone, error)
}

// ZoneFilter defines the filter options for listing zones
type ZoneFilter struct {
	Search    *string // Search by name
	ZoneType  *banner.ZoneType
	CountryID *uuid.UUID
	Active    *bool
	Limit     *int // Limit results
	Offset    *int // Offset results
}
