package repository

import "errors"

var (
	// Common errors
	ErrNotFound             = errors.New("not found")
	ErrConflict             = errors.New("conflict")
	ErrHasAssociatedRecords = errors.New("has associated records")

	// User errors
	ErrEmailExists    = errors.New("email already exists")
	ErrUsernameExists = errors.New("username already exists")
	ErrUserNotFound   = errors.New("user not found")

	// Role errors
	ErrRoleNotFound = errors.New("role not found")

	// Zone errors
	ErrZoneNotFound = errors.New("zone not found")
	ErrZoneExists   = errors.New("zone already exists")

	// Booking errors
	ErrBookingNotFound = errors.New("booking not found")
	// ErrOverlap is returned when a write would make two approved/active bookings share a day
	ErrOverlap = errors.New("booking overlaps an approved booking")
)
