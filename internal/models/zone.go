package models

import (
	"bannerdesk/internal/banner"
	"time"

	"github.com/google/uuid"
)

// Zone represents a sellable advertising surface for a country or a city
type Zone struct {
	ID        uuid.UUID       `json:"id" db:"id"`
	Name      string          `json:"name" db:"name" example:"Sweden - Stockholm"`
	ZoneType  banner.ZoneType `json:"zone_type" db:"zone_type" example:"city"`
	CountryID uuid.UUID       `json:"country_id" db:"country_id"`
	RegionID  *uuid.UUID      `json:"region_id,omitempty" db:"region_id"`
	IsActive  bool            `json:"is_active" db:"is_active"`
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt time.Time       `json:"updated_at" db:"updated_at"`
}

// CreateZoneRequest represents the request to create a new zone
type CreateZoneRequest struct {
	Name      string     `json:"name" binding:"required,nospaces,max=100" example:"Sweden - Stockholm"`
	ZoneType  string     `json:"zone_type" binding:"required,zonetype" example:"city"`
	CountryID uuid.UUID  `json:"country_id" binding:"required"`
	RegionID  *uuid.UUID `json:"region_id"`
	IsActive  *bool      `json:"is_active"`
}

// UpdateZoneRequest represents the request to update a zone
type UpdateZoneRequest struct {
	Name     string `json:"name" binding:"required,nospaces,max=100" example:"Sweden - Stockholm"`
	IsActive bool   `json:"is_active"`
}
