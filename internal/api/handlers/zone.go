package handlers

import (
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

// ZoneHandler handles zone resolution, calendars and zone management
type ZoneHandler struct {
	zones    *booking.ZoneResolver
	bookings *booking.Service
}

// NewZoneHandler creates a new ZoneHandler
func NewZoneHandler(bookings *booking.Service) *ZoneHandler {
	return &ZoneHandler{zones: bookings.Zones(), bookings: bookings}
}

// ResolveZone godoc
// @Summary Resolve the zone of a page
// @Description Returns the active zone for a country page (home_country) or a city page (city)
// @Tags zones
// @Produce json
// @Param zone_type query string true "Zone type (home_country, city)"
// @Param country_id query string true "Country ID"
// @Param region_id query string false "Region ID, required for city zones"
// @Success 200 {object} models.Zone
// @Failure 400 {object} models.ErrorResponse "Invalid parameters"
// @Failure 404 {object} models.ErrorResponse "Advertising is not offered here"
// @Failure 500 {object} models.ErrorResponse "Internal Server Error"
// @Router /zones/resolve [get]
func (h *ZoneHandler) ResolveZone(c *gin.Context) {
	zoneType, err := banner.ParseZoneType(c.Query("zone_type"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid zone type"})
		return
	}
	countryID, err := uuid.Parse(c.Query("country_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid country ID"})
		return
	}
	var regionID *uuid.UUID
	if raw := c.Query("region_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid region ID"})
			return
		}
		regionID = &id
	}

	zone, err := h.zones.Resolve(c.Request.Context(), zoneType, countryID, regionID)
	if err != nil {
		writeError(c, err, "Failed to resolve zone")
		return
	}
	c.JSON(http.StatusOK, zone)
}

// GetOccupancy godoc
// @Summary Get the occupancy calendar
// @Description Returns the booked ranges of a zone position with the next available start date and the minimum start date
// @Tags zones
// @Produce json
// @Param id path string true "Zone ID"
// @Param position query string true "Page position"
// @Param from query string false "Only ranges ending on or after this date (YYYY-MM-DD)"
// @Param to query string false "Only ranges starting on or before this date (YYYY-MM-DD)"
// @Param include_pending query boolean false "Include pending requests"
// @Success 200 {object} models.OccupancyResponse
// @Failure 400 {object} models.ErrorResponse "Invalid parameters"
// @Failure 404 {object} models.ErrorResponse "Zone not found"
// @Failure 500 {object} models.ErrorResponse "Internal Server Error"
// @Router /zones/{id}/occupancy [get]
func (h *ZoneHandler) GetOccupancy(c *gin.Context) {
	zone, position, ok := h.zonePosition(c)
	if !ok {
		return
	}
	from, ok := parseOptionalDate(c, "from")
	if !ok {
		return
	}
	to, ok := parseOptionalDate(c, "to")
	if !ok {
		return
	}
	if from != nil && to != nil && to.Before(*from) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "to is before from"})
		return
	}
	includePending, _ := strconv.ParseBool(c.Query("include_pending"))

	view, err := h.bookings.Occupancy(c.Request.Context(), booking.OccupancyQuery{
		ZoneID:         zone.ID,
		Position:       position,
		From:           from,
		To:             to,
		IncludePending: includePending,
	})
	if err != nil {
		writeError(c, err, "Failed to fetch occupancy")
		return
	}

	c.JSON(http.StatusOK, models.OccupancyResponse{
		ZoneID:            view.ZoneID,
		Position:          view.Position,
		Occupied:          view.Occupied,
		NextAvailableDate: view.NextAvailable.Format(banner.DateLayout),
		MinStartDate:      view.MinStart.Format(banner.DateLayout),
	})
}

// CheckAvailability godoc
// @Summary Check whether dates are free
// @Description Checks a start date and duration (or end date) against approved and active bookings. The answer is advisory; booking repeats the check.
// @Tags zones
// @Produce json
// @Param id path string true "Zone ID"
// @Param position query string true "Page position"
// @Param start_date query string true "Start date (YYYY-MM-DD)"
// @Param duration_days query integer false "Duration in days (7, 15, 30, 90, 180)"
// @Param end_date query string false "End date (YYYY-MM-DD), used when duration_days is absent"
// @Success 200 {object} models.AvailabilityResponse
// @Failure 400 {object} models.ErrorResponse "Invalid parameters"
// @Failure 404 {object} models.ErrorResponse "Zone not found"
// @Failure 422 {object} models.ErrorResponse "Invalid duration or dates"
// @Failure 500 {object} models.ErrorResponse "Internal Server Error"
// @Router /zones/{id}/availability [get]
func (h *ZoneHandler) CheckAvailability(c *gin.Context) {
	zone, position, ok := h.zonePosition(c)
	if !ok {
		return
	}
	start, ok := parseOptionalDate(c, "start_date")
	if !ok {
		return
	}
	if start == nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "start_date is required"})
		return
	}

	var end time.Time
	if raw := c.Query("duration_days"); raw != "" {
		days, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid duration_days"})
			return
		}
		d, err := banner.ParseDuration(days)
		if err != nil {
			writeError(c, err, "Failed to check availability")
			return
		}
		end = banner.EndDate(*start, d)
	} else {
		endDate, ok := parseOptionalDate(c, "end_date")
		if !ok {
			return
		}
		if endDate == nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "duration_days or end_date is required"})
			return
		}
		end = *endDate
	}

	res, err := h.bookings.CheckAvailability(c.Request.Context(), zone.ID, position, *start, end)
	if err != nil {
		writeError(c, err, "Failed to check availability")
		return
	}

	c.JSON(http.StatusOK, models.AvailabilityResponse{
		Available: res.Available,
		StartDate: res.Range.Start.Format(banner.DateLayout),
		EndDate:   res.Range.End.Format(banner.DateLayout),
		PriceUSD:  res.PriceUSD,
	})
}

// zonePosition loads the :id zone and the position query parameter
func (h *ZoneHandler) zonePosition(c *gin.Context) (*models.Zone, banner.Position, bool) {
	id, ok := parseIDParam(c, "id", "zone")
	if !ok {
		return nil, "", false
	}
	var q struct {
		Position string `form:"position" binding:"required,bannerposition"`
	}
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid position"})
		return nil, "", false
	}
	position := banner.Position(q.Position)
	zone, err := h.zones.Get(c.Request.Context(), id)
	if errors.Is(err, booking.ErrZoneNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Zone not found"})
		return nil, "", false
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to fetch zone"})
		return nil, "", false
	}
	return zone, position, true
}

// ListZones godoc
// @Summary List zones
// @Description Returns zones for administration
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param search query string false "Search zones by name"
// @Param zone_type query string false "Filter by zone type"
// @Param country_id query string false "Filter by country"
// @Param active query boolean false "Filter by active flag"
// @Param limit query integer false "Limit results"
// @Param offset query integer false "Offset results"
// @Success 200 {array} models.Zone
// @Failure 400 {object} models.ErrorResponse "Invalid parameters"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 403 {object} models.ErrorResponse "Forbidden"
// @Failure 500 {object} models.ErrorResponse "Internal Server Error"
// @Router /admin/zones [get]
func (h *ZoneHandler) ListZones(c *gin.Context) {
	filter := repository.ZoneFilter{}

	if search := c.Query("search"); search != "" {
		filter.Search = &search
	}
	if raw := c.Query("zone_type"); raw != "" {
		zt, err := banner.ParseZoneType(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid zone type"})
			return
		}
		filter.ZoneType = &zt
	}
	if raw := c.Query("country_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid country ID"})
			return
		}
		filter.CountryID = &id
	}
	if raw := c.Query("active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid active flag"})
			return
		}
		filter.Active = &active
	}

	var ok bool
	if filter.Limit, filter.Offset, ok = parsePagination(c); !ok {
		return
	}

	zones, err := h.zones.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to fetch zones"})
		return
	}
	if zones == nil {
		zones = []models.Zone{}
	}
	c.JSON(http.StatusOK, zones)
}

// GetZone godoc
// @Summary Get a zone by ID
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Zone ID"
// @Success 200 {object} models.Zone
// @Failure 400 {object} models.ErrorResponse "Invalid zone ID"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "Zone not found"
// @Failure 500 {object} models.ErrorResponse "Internal Server Error"
// @Router /admin/zones/{id} [get]
func (h *ZoneHandler) GetZone(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "zone")
	if !ok {
		return
	}

	zone, err := h.zones.Get(c.Request.Context(), id)
	if errors.Is(err, booking.ErrZoneNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Zone not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to fetch zone"})
		return
	}

	c.JSON(http.StatusOK, zone)
}

// CreateZone godoc
// @Summary Create a zone
// @Description Creates a sellable zone. City zones need a region; home_country zones never carry one.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param zone body models.CreateZoneRequest true "Zone to create"
// @Success 201 {object} models.Zone
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 409 {object} models.ErrorResponse "An active zone already exists"
// @Failure 500 {object} models.ErrorResponse "Internal Server Error"
// @Router /admin/zones [post]
func (h *ZoneHandler) CreateZone(c *gin.Context) {
	var req models.CreateZoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	zone := models.Zone{
		Name:      req.Name,
		ZoneType:  banner.ZoneType(req.ZoneType),
		CountryID: req.CountryID,
		RegionID:  req.RegionID,
		IsActive:  true,
	}
	if req.IsActive != nil {
		zone.IsActive = *req.IsActive
	}

	if err := h.zones.Create(c.Request.Context(), &zone); err != nil {
		switch {
		case errors.Is(err, repository.ErrZoneExists):
			c.JSON(http.StatusConflict, models.ErrorResponse{Error: "An active zone already exists for this location"})
		case errors.Is(err, repository.ErrConflict), errors.Is(err, banner.ErrInvalidZoneType):
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to create zone"})
		}
		return
	}

	c.JSON(http.StatusCreated, zone)
}

// UpdateZone godoc
// @Summary Update a zone
// @Description Renames or (de)activates a zone
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Zone ID"
// @Param zone body models.UpdateZoneRequest true "Zone fields"
// @Success 200 {object} models.Zone
// @Failure 400 {object} models.ErrorResponse "Invalid zone ID or request body"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "Zone not found"
// @Failure 409 {object} models.ErrorResponse "An active zone already exists"
// @Failure 500 {object} models.ErrorResponse "Internal Server Error"
// @Router /admin/zones/{id} [put]
func (h *ZoneHandler) UpdateZone(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "zone")
	if !ok {
		return
	}

	var req models.UpdateZoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	zone, err := h.zones.Get(c.Request.Context(), id)
	if errors.Is(err, booking.ErrZoneNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Zone not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to fetch zone"})
		return
	}

	zone.Name = req.Name
	zone.IsActive = req.IsActive
	if err := h.zones.Update(c.Request.Context(), zone); err != nil {
		switch {
		case errors.Is(err, booking.ErrZoneNotFound):
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Zone not found"})
		case errors.Is(err, repository.ErrZoneExists):
			c.JSON(http.StatusConflict, models.ErrorResponse{Error: "An active zone already exists for this location"})
		default:
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to update zone"})
		}
		return
	}

	c.JSON(http.StatusOK, zone)
}

// DeleteZone godoc
// @Summary Delete a zone
// @Description Deletes a zone that has never been booked. Deactivate booked zones instead.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Zone ID"
// @Success 204 "No Content"
// @Failure 400 {object} models.ErrorResponse "Invalid zone ID"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "Zone not found"
// @Failure 409 {object} models.ErrorResponse "Zone has bookings"
// @Failure 500 {object} models.ErrorResponse "Internal Server Error"
// @Router /admin/zones/{id} [delete]
func (h *ZoneHandler) DeleteZone(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "zone")
	if !ok {
		return
	}

	err := h.zones.Delete(c.Request.Context(), id)
	switch {
	case err == nil:
		c.Status(http.StatusNoContent)
	case errors.Is(err, booking.ErrZoneNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Zone not found"})
	case errors.Is(err, repository.ErrHasAssociatedRecords):
		c.JSON(http.StatusConflict, models.ErrorResponse{Error: "Zone has bookings, deactivate it instead"})
	default:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to delete zone"})
	}
}
