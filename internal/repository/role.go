package repository

import (
	"bannerdesk/internal/models"
	"context"

	"github.com/google/uuid"
)

// RoleRepository defines the interface for role lookups
type RoleRepository interface {
	Repository
	GetByID(ctx context.Context, id uuid.UUID) (*models.Role, error)
	GetByName(ctx context.Context, name string) (*models.Role, error)
}
