package repository

import (
	"bannerdesk/internal/models"
	"context"
	"time"

	"github.com/google/uuid"
)

// AuditLogRepository defines the interface for audit log operations
type AuditLogRepository interface {
	Repository
	Create(ctx context.Context, log *models.CreateAuditLogRequest) error
	List(ctx context.Context, filter AuditLogFilter) ([]models.AuditLog, error)
}

// AuditLogFilter defines the filter options for listing audit logs
type AuditLogFilter struct {
	UserID        *uuid.UUID           // Filter by user ID
	Actions       []models.AuditAction // Filter by actions
	EntityTypes   []string             // Filter by entity types
	EntityIDs     []string             // Filter by entity IDs
	CreatedBefore *time.Time           // Filter by creation time
	CreatedAfter  *time.Time           // Filter by creation time
	Limit         *int                 // Limit results
	Offset        *int                 // Offset results
}
