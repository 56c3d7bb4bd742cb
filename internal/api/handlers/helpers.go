package handlers

import (
	"bannerdesk/internal/auth"
	"bannerdesk/internal/banner"
	"bannerdesk/internal/booking"
	"bannerdesk/internal/models"
	"bannerdesk/internal/repository"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// actorFromContext describes the authenticated caller for the booking service
func actorFromContext(c *gin.Context) booking.Actor {
	actor := booking.Actor{
		IsAdmin:   c.GetBool("is_admin"),
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}
	if user := auth.GetUserFromContext(c); user != nil {
		actor.UserID = user.ID
	}
	return actor
}

// statusForError maps booking errors to HTTP status codes
func statusForError(err error) int {
	switch {
	case errors.Is(err, booking.ErrSlotUnavailable), errors.Is(err, repository.ErrOverlap):
		return http.StatusConflict
	case errors.Is(err, booking.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, booking.ErrInvalidFormat),
		errors.Is(err, booking.ErrInvalidDuration),
		errors.Is(err, booking.ErrLeadTimeViolation),
		errors.Is(err, booking.ErrInvalidDates),
		errors.Is(err, banner.ErrInvalidStatus),
		errors.Is(err, banner.ErrInvalidZoneType):
		return http.StatusUnprocessableEntity
	case errors.Is(err, booking.ErrZoneNotFound), errors.Is(err, booking.ErrBookingNotFound):
		return http.StatusNotFound
	case errors.Is(err, booking.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, booking.ErrUploadFailure):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// writeError sends err as an ErrorResponse. Unexpected errors are not echoed.
func writeError(c *gin.Context, err error, fallback string) {
	status := statusForError(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
		msg = fallback
	}
	c.JSON(status, models.ErrorResponse{Error: msg})
}

func parseIDParam(c *gin.Context, name, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid " + label + " ID"})
		return uuid.Nil, false
	}
	return id, true
}

// parsePagination reads limit and offset query parameters
func parsePagination(c *gin.Context) (limit, offset *int, ok bool) {
	if limitStr := c.Query("limit"); limitStr != "" {
		l, err := strconv.Atoi(limitStr)
		if err != nil || l < 0 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid limit"})
			return nil, nil, false
		}
		limit = &l
	}
	if offsetStr := c.Query("offset"); offsetStr != "" {
		o, err := strconv.Atoi(offsetStr)
		if err != nil || o < 0 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid offset"})
			return nil, nil, false
		}
		offset = &o
	}
	return limit, offset, true
}

// parseOptionalDate reads a YYYY-MM-DD query parameter; absent yields nil
func parseOptionalDate(c *gin.Context, name string) (*time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	day, err := banner.ParseDate(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid " + name + ", expected YYYY-MM-DD"})
		return nil, false
	}
	return &day, true
}
