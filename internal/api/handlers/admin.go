package handlers

import (
	"bannerdesk/internal/banner"
	"bannerdesk/internal/booking"
	"bannerdesk/internal/models"
	"bannerdesk/internal/repository"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AdminHandler handles booking moderation and the audit trail
type AdminHandler struct {
	bookings  *booking.Service
	auditRepo repository.AuditLogRepository
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(bookings *booking.Service, auditRepo repository.AuditLogRepository) *AdminHandler {
	return &AdminHandler{bookings: bookings, auditRepo: auditRepo}
}

// ListBookings godoc
// @Summary List bookings
// @Description Returns bookings for moderation
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "Comma separated statuses"
// @Param zone_id query string false "Filter by zone"
// @Param position query string false "Filter by position"
// @Param limit query integer false "Limit results"
// @Param offset query integer false "Offset results"
// @Success 200 {array} models.Booking
// @Failure 400 {object} models.ErrorResponse "Invalid parameters"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 403 {object} models.ErrorResponse "Forbidden"
// @Failure 500 {object} models.ErrorResponse "Internal Server Error"
// @Router /admin/bookings [get]
func (h *AdminHandler) ListBookings(c *gin.Context) {
	filter, ok := bookingFilter(c)
	if !ok {
		return
	}
	if raw := c.Query("zone_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid zone ID"})
			return
		}
		filter.ZoneID = &id
	}
	if raw := c.Query("position"); raw != "" {
		position, err := banner.ParsePosition(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid position"})
			return
		}
		filter.Position = &position
	}

	bookings, err := h.bookings.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to fetch bookings"})
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, bookings)
}

// ApproveBooking godoc
// @Summary Approve a booking
// @Description Approves a pending booking after re-checking its dates. Approving an approved or active booking changes nothing.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param review body models.ReviewBookingRequest false "Admin notes"
// @Success 200 {object} models.Booking
// @Failure 400 {object} models.ErrorResponse "Invalid booking ID or request body"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 403 {object} models.ErrorResponse "Forbidden"
// @Failure 404 {object} models.ErrorResponse "Booking not found"
// @Failure 409 {object} models.ErrorResponse "Dates already reserved or booking not pending"
// @Failure 500 {object} models.ErrorResponse "Internal Server Error"
// @Router /admin/bookings/{id}/approve [post]
func (h *AdminHandler) ApproveBooking(c *gin.Context) {
	id, req, ok := reviewRequest(c)
	if !ok {
		return
	}

	b, err := h.bookings.Approve(c.Request.Context(), id, actorFromContext(c), req.Notes)
	if err != nil {
		writeError(c, err, "Failed to approve booking")
		return
	}
	c.JSON(http.StatusOK, b)
}

// RejectBooking godoc
// @Summary Reject a booking
// @Description Rejects a pending booking. Rejecting a rejected booking changes nothing.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param review body models.ReviewBookingRequest false "Admin notes"
// @Success 200 {object} models.Booking
// @Failure 400 {object} models.ErrorResponse "Invalid booking ID or request body"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 403 {object} models.ErrorResponse "Forbidden"
// @Failure 404 {object} models.ErrorResponse "Booking not found"
// @Failure 409 {object} models.ErrorResponse "Booking not pending"
// @Failure 500 {object} models.ErrorResponse "Internal Server Error"
// @Router /admin/bookings/{id}/reject [post]
func (h *AdminHandler) RejectBooking(c *gin.Context) {
	id, req, ok := reviewRequest(c)
	if !ok {
		return
	}

	b, err := h.bookings.Reject(c.Request.Context(), id, actorFromContext(c), req.Notes)
	if err != nil {
		writeError(c, err, "Failed to reject booking")
		return
	}
	c.JSON(http.StatusOK, b)
}

func reviewRequest(c *gin.Context) (uuid.UUID, models.ReviewBookingRequest, bool) {
	var req models.ReviewBookingRequest
	id, ok := parseIDParam(c, "id", "booking")
	if !ok {
		return id, req, false
	}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
			return id, req, false
		}
	}
	return id, req, true
}

// EditBooking godoc
// @Summary Edit a booking
// @Description Changes dates or notes. Changing only the start date keeps the booked length. New dates are checked against approved and active bookings.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param booking body models.EditBookingRequest true "Fields to change"
// @Success 200 {object} models.Booking
// @Failure 400 {object} models.ErrorResponse "Invalid booking ID or request body"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 403 {object} models.ErrorResponse "Forbidden"
// @Failure 404 {object} models.ErrorResponse "Booking not found"
// @Failure 409 {object} models.ErrorResponse "Dates already reserved or booking closed"
// @Failure 422 {object} models.ErrorResponse "End date before start date"
// @Failure 500 {object} models.ErrorResponse "Internal Server Error"
// @Router /admin/bookings/{id} [patch]
func (h *AdminHandler) EditBooking(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "booking")
	if !ok {
		return
	}

	var req models.EditBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	in := booking.EditInput{Notes: req.Notes}
	if req.StartDate != nil {
		start, err := banner.ParseDate(*req.StartDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid start_date"})
			return
		}
		in.StartDate = &start
	}
	if req.EndDate != nil {
		end, err := banner.ParseDate(*req.EndDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid end_date"})
			return
		}
		in.EndDate = &end
	}

	b, err := h.bookings.Edit(c.Request.Context(), id, in, actorFromContext(c))
	if err != nil {
		writeError(c, err, "Failed to update booking")
		return
	}
	c.JSON(http.StatusOK, b)
}

// ChangeStatus godoc
// @Summary Change booking status
// @Description Moves a booking to another status through the booking state machine
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param status body models.ChangeStatusRequest true "Target status"
// @Success 200 {object} models.Booking
// @Failure 400 {object} models.ErrorResponse "Invalid booking ID or status"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 403 {object} models.ErrorResponse "Forbidden"
// @Failure 404 {object} models.ErrorResponse "Booking not found"
// @Failure 409 {object} models.ErrorResponse "Transition not allowed or dates already reserved"
// @Failure 500 {object} models.ErrorResponse "Internal Server Error"
// @Router /admin/bookings/{id}/status [put]
func (h *AdminHandler) ChangeStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "booking")
	if !ok {
		return
	}

	var req models.ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}
	to, err := banner.ParseStatus(req.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid status"})
		return
	}

	b, err := h.bookings.ChangeStatus(c.Request.Context(), id, to, actorFromContext(c))
	if err != nil {
		writeError(c, err, "Failed to change booking status")
		return
	}
	c.JSON(http.StatusOK, b)
}

// AdvanceSchedule godoc
// @Summary Run the scheduled transitions now
// @Description Activates approved bookings that have started and expires active bookings that have ended
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.AdvanceResponse
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 403 {object} models.ErrorResponse "Forbidden"
// @Failure 500 {object} models.ErrorResponse "Internal Server Error"
// @Router /admin/bookings/advance [post]
func (h *AdminHandler) AdvanceSchedule(c *gin.Context) {
	res, err := h.bookings.AdvanceSchedule(c.Request.Context(), h.bookings.Now())
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to advance bookings"})
		return
	}
	c.JSON(http.StatusOK, models.AdvanceResponse{
		Activated: len(res.Activated),
		Expired:   len(res.Expired),
	})
}

// ListAuditLogs godoc
// @Summary List audit logs
// @Description Returns the moderation and account audit trail, newest first
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param user_id query string false "Filter by user"
// @Param action query string false "Comma separated actions"
// @Param entity_type query string false "Filter by entity type"
// @Param entity_id query string false "Filter by entity ID"
// @Param limit query integer false "Limit results"
// @Param offset query integer false "Offset results"
// @Success 200 {array} models.AuditLog
// @Failure 400 {object} models.ErrorResponse "Invalid parameters"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 403 {object} models.ErrorResponse "Forbidden"
// @Failure 500 {object} models.ErrorResponse "Internal Server Error"
// @Router /admin/audit-logs [get]
func (h *AdminHandler) ListAuditLogs(c *gin.Context) {
	filter := repository.AuditLogFilter{}
	if raw := c.Query("user_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid user ID"})
			return
		}
		filter.UserID = &id
	}
	if raw := c.Query("action"); raw != "" {
		for _, action := range strings.Split(raw, ",") {
			filter.Actions = append(filter.Actions, models.AuditAction(strings.TrimSpace(action)))
		}
	}
	if raw := c.Query("entity_type"); raw != "" {
		filter.EntityTypes = []string{raw}
	}
	if raw := c.Query("entity_id"); raw != "" {
		filter.EntityIDs = []string{raw}
	}

	var ok bool
	if filter.Limit, filter.Offset, ok = parsePagination(c); !ok {
		return
	}

	logs, err := h.auditRepo.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to fetch audit logs"})
		return
	}
	if logs == nil {
		logs = []models.AuditLog{}
	}
	c.JSON(http.StatusOK, logs)
}
