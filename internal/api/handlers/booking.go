package handlers

import (
	"bannerdesk/internal/auth"
	"bannerdesk/internal/banner"
	"bannerdesk/internal/booking"
	"bannerdesk/internal/models"
	"bannerdesk/internal/repository"
	"bannerdesk/internal/storage"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BookingHandler handles the purchase flow and the requester's bookings
type BookingHandler struct {
	bookings *booking.Service
	uploader *storage.Uploader
	log      *zap.Logger
}

// NewBookingHandler creates a BookingHandler. The uploader is only needed
// for multipart booking requests that carry the banner image.
func NewBookingHandler(bookings *booking.Service, uploader *storage.Uploader, log *zap.Logger) *BookingHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &BookingHandler{bookings: bookings, uploader: uploader, log: log}
}

// CreateBooking godoc
// @Summary Book a banner slot
// @Description Validates the placement, lead time and zone, prices the booking and stores it as pending.
// @Description Send JSON with an image_url from /banners/upload, or multipart/form-data with the image in "file".
// @Tags bookings
// @Accept json
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param booking body models.CreateBookingRequest true "Booking request"
// @Success 201 {object} models.BookingResult
// @Failure 400 {object} models.BookingResult "Malformed request"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.BookingResult "zone_not_found"
// @Failure 409 {object} models.BookingResult "slot_unavailable"
// @Failure 413 {object} models.BookingResult "Image too large"
// @Failure 422 {object} models.BookingResult "invalid_format, invalid_duration or lead_time_violation"
// @Failure 502 {object} models.BookingResult "upload_failure"
// @Failure 500 {object} models.BookingResult "unexpected_error"
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	actor := actorFromContext(c)

	var (
		req  models.CreateBookingRequest
		file *multipart.FileHeader
		err  error
	)
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		file, err = h.bindMultipart(c, &req)
	} else {
		err = c.ShouldBindJSON(&req)
	}
	if err != nil {
		h.bindError(c, err)
		return
	}

	startDate, err := banner.ParseDate(req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.BookingResult{Error: err.Error()})
		return
	}

	in := booking.CreateInput{
		RequesterID:  actor.UserID,
		CountryID:    req.CountryID,
		ZoneType:     banner.ZoneType(req.ZoneType),
		RegionID:     req.RegionID,
		Position:     banner.Position(req.Position),
		Format:       banner.Format(req.Format),
		StartDate:    startDate,
		DurationDays: req.DurationDays,
		ImageURL:     req.ImageURL,
		ClickURL:     req.ClickURL,
	}
	if file != nil {
		if in.ImageURL, err = h.storeImage(c, actor, in, file); err != nil {
			h.bindError(c, err)
			return
		}
	}

	b, err := h.bookings.Create(c.Request.Context(), in, actor)
	if err != nil {
		h.createError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.BookingResult{Success: true, BookingID: &b.ID})
}

// bindMultipart reads the form fields of a multipart booking request and
// returns the attached image, if any. Nothing is uploaded here.
func (h *BookingHandler) bindMultipart(c *gin.Context, req *models.CreateBookingRequest) (*multipart.FileHeader, error) {
	countryID, err := uuid.Parse(c.PostForm("country_id"))
	if err != nil {
		return nil, errors.New("invalid country_id")
	}
	req.CountryID = countryID
	if raw := c.PostForm("region_id"); raw != "" {
		regionID, err := uuid.Parse(raw)
		if err != nil {
			return nil, errors.New("invalid region_id")
		}
		req.RegionID = &regionID
	}
	req.ZoneType = c.PostForm("zone_type")
	req.Position = c.PostForm("position")
	req.Format = c.PostForm("format")
	req.StartDate = c.PostForm("start_date")
	if raw := c.PostForm("duration_days"); raw != "" {
		if req.DurationDays, err = strconv.Atoi(raw); err != nil {
			return nil, errors.New("invalid duration_days")
		}
	}
	if raw := c.PostForm("click_url"); raw != "" {
		req.ClickURL = &raw
	}
	req.ImageURL = c.PostForm("image_url")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return nil, binding.Validator.ValidateStruct(req)
	}
	// image_url is filled in by the upload
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		return fileHeader, v.StructExcept(req, "ImageURL")
	}
	return fileHeader, nil
}

// storeImage uploads the banner image of a multipart request and returns its
// URL. The request is checked first so a rejected booking leaves no object
// behind.
func (h *BookingHandler) storeImage(c *gin.Context, actor booking.Actor, in booking.CreateInput, fileHeader *multipart.FileHeader) (string, error) {
	if h.uploader == nil {
		return "", booking.ErrUploadFailure
	}
	if _, _, err := h.bookings.Validate(c.Request.Context(), in); err != nil {
		return "", err
	}
	if limit := h.uploader.MaxBytes(); limit > 0 && fileHeader.Size > limit {
		return "", storage.ErrTooLarge
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", errors.New("failed to read file")
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		return "", errors.New("failed to read file")
	}

	res, err := h.uploader.Upload(c.Request.Context(), actor.UserID, in.Format, data)
	if err != nil {
		if errors.Is(err, storage.ErrUploadFailed) {
			h.log.Error("banner upload failed", zap.String("user_id", actor.UserID.String()), zap.Error(err))
			return "", booking.ErrUploadFailure
		}
		return "", err
	}
	return res.URL, nil
}

// bindError answers a request that could not be read or whose image was
// refused. Booking failures keep their result codes.
func (h *BookingHandler) bindError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, storage.ErrTooLarge):
		c.JSON(http.StatusRequestEntityTooLarge, models.BookingResult{Error: err.Error()})
	case errors.Is(err, storage.ErrUnsupportedImage), errors.Is(err, storage.ErrDimensionMismatch):
		c.JSON(http.StatusUnprocessableEntity, models.BookingResult{Error: err.Error()})
	case booking.Code(err) != "unexpected_error":
		h.createError(c, err)
	default:
		c.JSON(http.StatusBadRequest, models.BookingResult{Error: err.Error()})
	}
}

// createError writes the failure branch of the booking result
func (h *BookingHandler) createError(c *gin.Context, err error) {
	status := statusForError(err)
	res := models.BookingResult{Success: false, Error: err.Error(), Code: booking.Code(err)}

	var slotErr *booking.SlotUnavailableError
	var leadErr *booking.LeadTimeError
	switch {
	case errors.As(err, &slotErr):
		next := slotErr.NextAvailable.Format(banner.DateLayout)
		res.Occupied = slotErr.Occupied
		res.NextAvailableDate = &next
	case errors.As(err, &leadErr):
		minStart := leadErr.MinStart.Format(banner.DateLayout)
		res.MinStartDate = &minStart
	}
	if status == http.StatusInternalServerError {
		h.log.Error("booking request failed", zap.Error(err))
		res.Error = "unexpected error, please try again"
	}
	c.JSON(status, res)
}

// ListMyBookings godoc
// @Summary List my bookings
// @Description Returns the bookings requested by the authenticated user, newest first
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param status query string false "Comma separated statuses"
// @Param limit query integer false "Limit results"
// @Param offset query integer false "Offset results"
// @Success 200 {array} models.Booking
// @Failure 400 {object} models.ErrorResponse "Invalid parameters"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Internal Server Error"
// @Router /bookings/mine [get]
func (h *BookingHandler) ListMyBookings(c *gin.Context) {
	user := auth.GetUserFromContext(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "Unauthorized"})
		return
	}

	filter, ok := bookingFilter(c)
	if !ok {
		return
	}
	filter.RequestedBy = &user.ID

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

// GetBooking godoc
// @Summary Get a booking
// @Description Returns a booking. Users see their own bookings; admins see all.
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} models.Booking
// @Failure 400 {object} models.ErrorResponse "Invalid booking ID"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 403 {object} models.ErrorResponse "Forbidden"
// @Failure 404 {object} models.ErrorResponse "Booking not found"
// @Failure 500 {object} models.ErrorResponse "Internal Server Error"
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "booking")
	if !ok {
		return
	}

	b, err := h.bookings.Get(c.Request.Context(), id, actorFromContext(c))
	if err != nil {
		writeError(c, err, "Failed to fetch booking")
		return
	}
	c.JSON(http.StatusOK, b)
}

// CancelBooking godoc
// @Summary Cancel a booking
// @Description Cancels a pending, approved or active booking. Requesters may cancel their own bookings.
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} models.Booking
// @Failure 400 {object} models.ErrorResponse "Invalid booking ID"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 403 {object} models.ErrorResponse "Forbidden"
// @Failure 404 {object} models.ErrorResponse "Booking not found"
// @Failure 409 {object} models.ErrorResponse "Booking can no longer be cancelled"
// @Failure 500 {object} models.ErrorResponse "Internal Server Error"
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "booking")
	if !ok {
		return
	}

	b, err := h.bookings.Cancel(c.Request.Context(), id, actorFromContext(c))
	if err != nil {
		writeError(c, err, "Failed to cancel booking")
		return
	}
	c.JSON(http.StatusOK, b)
}

// bookingFilter reads the status list and pagination shared by the list endpoints
func bookingFilter(c *gin.Context) (repository.BookingFilter, bool) {
	filter := repository.BookingFilter{}
	if raw := c.Query("status"); raw != "" {
		for _, item := range strings.Split(raw, ",") {
			st, err := banner.ParseStatus(strings.TrimSpace(item))
			if err != nil {
				c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid status"})
				return filter, false
			}
			filter.Statuses = append(filter.Statuses, st)
		}
	}

	var ok bool
	if filter.Limit, filter.Offset, ok = parsePagination(c); !ok {
		return filter, false
	}
	return filter, true
}
