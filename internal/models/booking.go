package models

import (
	"bannerdesk/internal/banner"
	"time"

	"github.com/google/uuid"
)

// Booking is a request to show a banner in a zone/position for a date range
type Booking struct {
	ID           uuid.UUID       `json:"id"`
	ZoneID       uuid.UUID       `json:"zone_id"`
	Position     banner.Position `json:"position" example:"header"`
	Format       banner.Format   `json:"format" example:"728x90"`
	StartDate    time.Time       `json:"start_date"`
	EndDate      time.Time       `json:"end_date"`
	DurationDays int             `json:"duration_days" example:"30"`
	PriceUSD     int             `json:"price_usd" example:"15"`
	ImageURL     string          `json:"image_url"`
	ClickURL     *string         `json:"click_url,omitempty"`
	Status       banner.Status   `json:"status" example:"pending"`
	RequestedBy  uuid.UUID       `json:"requested_by"`
	ReviewedBy   *uuid.UUID      `json:"reviewed_by,omitempty"`
	ReviewedAt   *time.Time      `json:"reviewed_at,omitempty"`
	AdminNotes   *string         `json:"admin_notes,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// Range returns the booked dates
func (b *Booking) Range() banner.DateRange {
	return banner.DateRange{Start: banner.Day(b.StartDate), End: banner.Day(b.EndDate)}
}

// CreateBookingRequest is the purchase flow payload. Zone type, position and
// format are checked by the booking service after the lead time, so only a
// malformed start date is refused before it.
type CreateBookingRequest struct {
	CountryID    uuid.UUID  `json:"country_id" binding:"required"`
	ZoneType     string     `json:"zone_type" binding:"required" example:"city"`
	RegionID     *uuid.UUID `json:"region_id"`
	Position     string     `json:"position" binding:"required" example:"header"`
	Format       string     `json:"format" binding:"required" example:"728x90"`
	StartDate    string     `json:"start_date" binding:"required,datetime=2006-01-02" example:"2024-03-08"`
	DurationDays int        `json:"duration_days" example:"30"`
	ImageURL     string     `json:"image_url" binding:"required,url"`
	ClickURL     *string    `json:"click_url" binding:"omitempty,url"`
}

// EditBookingRequest holds the fields an admin may change on a booking
type EditBookingRequest struct {
	StartDate *string `json:"start_date" binding:"omitempty,datetime=2006-01-02" example:"2024-03-08"`
	EndDate   *string `json:"end_date" binding:"omitempty,datetime=2006-01-02" example:"2024-03-14"`
	Notes     *string `json:"notes" binding:"omitempty,max=2000"`
}

// ReviewBookingRequest carries optional admin notes for approve/reject
type ReviewBookingRequest struct {
	Notes *string `json:"notes" binding:"omitempty,max=2000"`
}

// ChangeStatusRequest is an admin status override
type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required" example:"cancelled"`
}

// BookingResult is the outcome of the booking creation endpoint
type BookingResult struct {
	Success           bool               `json:"success"`
	BookingID         *uuid.UUID         `json:"booking_id,omitempty"`
	Error             string             `json:"error,omitempty"`
	Code              string             `json:"code,omitempty" example:"slot_unavailable"`
	Occupied          []banner.Occupancy `json:"occupied,omitempty"`
	NextAvailableDate *string            `json:"next_available_date,omitempty" example:"2024-03-15"`
	MinStartDate      *string            `json:"min_start_date,omitempty" example:"2024-03-04"`
}

// OccupancyResponse is the calendar view of a zone/position
type OccupancyResponse struct {
	ZoneID            uuid.UUID          `json:"zone_id"`
	Position          banner.Position    `json:"position"`
	Occupied          []banner.Occupancy `json:"occupied"`
	NextAvailableDate string             `json:"next_available_date" example:"2024-03-15"`
	MinStartDate      string             `json:"min_start_date" example:"2024-03-04"`
}

// AvailabilityResponse answers whether a range is free
type AvailabilityResponse struct {
	Available bool   `json:"available"`
	StartDate string `json:"start_date" example:"2024-03-08"`
	EndDate   string `json:"end_date" example:"2024-03-14"`
	PriceUSD  *int   `json:"price_usd,omitempty" example:"5"`
}

// PricingResponse lists the prices for a zone type
type PricingResponse struct {
	ZoneType banner.ZoneType     `json:"zone_type" example:"city"`
	Prices   []banner.PriceEntry `json:"prices"`
}

// AdvanceResponse reports the result of a scheduled transition run
type AdvanceResponse struct {
	Activated int `json:"activated"`
	Expired   int `json:"expired"`
}

// UploadResponse is returned after a banner image upload
type UploadResponse struct {
	URL    string `json:"url"`
	Key    string `json:"key"`
	Width  int    `json:"width" example:"728"`
	Height int    `json:"height" example:"90"`
}
