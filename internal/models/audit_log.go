package models

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction represents the type of action performed
type AuditAction string

const (
	AuditActionCreate  AuditAction = "create"
	AuditActionUpdate  AuditAction = "update"
	AuditActionDelete  AuditAction = "delete"
	AuditActionLogin   AuditAction = "login"
	AuditActionApprove AuditAction = "approve"
	AuditActionReject  AuditAction = "reject"
	AuditActionCancel  AuditAction = "cancel"
	AuditActionStatus  AuditAction = "status_change"
	AuditActionAdvance AuditAction = "advance"
)

// AuditLog represents a record of system activity
type AuditLog struct {
	ID          uuid.UUID   `json:"id" db:"id"`
	UserID      *uuid.UUID  `json:"user_id" db:"user_id"` // nil for scheduled jobs
	Action      AuditAction `json:"action" db:"action"`
	EntityType  string      `json:"entity_type" db:"entity_type"` // "booking", "zone", "user"
	EntityID    string      `json:"entity_id" db:"entity_id"`
	Description string      `json:"description" db:"description"`
	Metadata    string      `json:"metadata" db:"metadata"` // JSON
	IPAddress   string      `json:"ip_address" db:"ip_address"`
	UserAgent   string      `json:"user_agent" db:"user_agent"`
	CreatedAt   time.Time   `json:"created_at" db:"created_at"`
}

// CreateAuditLogRequest represents the request to create a new audit log entry
type CreateAuditLogRequest struct {
	UserID      *uuid.UUID  `json:"user_id"`
	Action      AuditAction `json:"action" binding:"required"`
	EntityType  string      `json:"entity_type" binding:"required"`
	EntityID    string      `json:"entity_id" binding:"required"`
	Description string      `json:"description" binding:"required"`
	Metadata    string      `json:"metadata"`
	IPAddress   string      `json:"ip_address"`
	UserAgent   string      `json:"user_agent"`
}
