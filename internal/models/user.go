package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a forum member who can request or moderate bookings
type User struct {
	ID        uuid.UUID  `json:"id"`
	Username  string     `json:"username"`
	Password  string     `json:"-"`
	Email     *string    `json:"email"`
	RoleID    uuid.UUID  `json:"role_id"`
	Role      *Role      `json:"role,omitempty"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CreateUserRequest represents the request to create a new user
type CreateUserRequest struct {
	Username string  `json:"username" binding:"required,min=3,max=50,nospaces"`
	Password string  `json:"password" binding:"required,min=8,max=72"`
	Email    *string `json:"email" binding:"omitempty,email"`
}

// IsAdmin returns true if the user has an admin role
func (u *User) IsAdmin() bool {
	return u.Role != nil && u.Role.IsAdminGroup
}
