package models

import (
	"time"

	"github.com/google/uuid"
)

// Role represents a permission group. Members of an admin group moderate bookings.
type Role struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	IsAdminGroup bool      `json:"is_admin_group" db:"is_admin_group"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}
