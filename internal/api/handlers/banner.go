package handlers

import (
	"bannerdesk/internal/auth"
	"bannerdesk/internal/banner"
	"bannerdesk/internal/booking"
	"bannerdesk/internal/models"
	"bannerdesk/internal/storage"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BannerHandler serves the format catalog, the price tables and image uploads
type BannerHandler struct {
	uploader *storage.Uploader
	maxBytes int64
	log      *zap.Logger
}

// NewBannerHandler creates a BannerHandler. A nil uploader disables uploads.
func NewBannerHandler(uploader *storage.Uploader, maxBytes int64, log *zap.Logger) *BannerHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &BannerHandler{uploader: uploader, maxBytes: maxBytes, log: log}
}

// ListFormats godoc
// @Summary List banner formats
// @Description Returns the bookable banner formats and the positions each one may be placed in
// @Tags banners
// @Produce json
// @Success 200 {array} banner.FormatSpec
// @Router /banners/formats [get]
func (h *BannerHandler) ListFormats(c *gin.Context) {
	c.JSON(http.StatusOK, banner.Formats)
}

// GetPricing godoc
// @Summary Get price tables
// @Description Returns the USD price of every sold duration, for one zone type or for all of them
// @Tags banners
// @Produce json
// @Param zone_type query string false "Zone type (home_country, city)"
// @Success 200 {array} models.PricingResponse
// @Failure 400 {object} models.ErrorResponse "Invalid zone type"
// @Router /banners/pricing [get]
func (h *BannerHandler) GetPricing(c *gin.Context) {
	zoneTypes := []banner.ZoneType{banner.ZoneTypeHomeCountry, banner.ZoneTypeCity}
	if raw := c.Query("zone_type"); raw != "" {
		zt, err := banner.ParseZoneType(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid zone type"})
			return
		}
		zoneTypes = []banner.ZoneType{zt}
	}

	resp := make([]models.PricingResponse, 0, len(zoneTypes))
	for _, zt := range zoneTypes {
		resp = append(resp, models.PricingResponse{ZoneType: zt, Prices: banner.PriceTable(zt)})
	}
	c.JSON(http.StatusOK, resp)
}

// Upload godoc
// @Summary Upload a banner image
// @Description Stores a banner image after checking its pixel size against the format. The returned URL is used as image_url when booking.
// @Tags banners
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Banner image (PNG, JPEG or GIF)"
// @Param format formData string true "Banner format (728x90, 300x250)"
// @Success 201 {object} models.UploadResponse
// @Failure 400 {object} models.ErrorResponse "Missing file or format"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 413 {object} models.ErrorResponse "File too large"
// @Failure 422 {object} models.ErrorResponse "Unsupported image or wrong dimensions"
// @Failure 502 {object} models.BookingResult "Upload failure"
// @Failure 503 {object} models.ErrorResponse "Uploads are not configured"
// @Router /banners/upload [post]
func (h *BannerHandler) Upload(c *gin.Context) {
	if h.uploader == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{Error: "uploads are not configured"})
		return
	}

	user := auth.GetUserFromContext(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var form struct {
		Format string `form:"format" binding:"required,bannerformat"`
	}
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid banner format"})
		return
	}
	format := banner.Format(form.Format)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "file is required"})
		return
	}
	if h.maxBytes > 0 && fileHeader.Size > h.maxBytes {
		c.JSON(http.StatusRequestEntityTooLarge, models.ErrorResponse{Error: storage.ErrTooLarge.Error()})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "failed to read file"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "failed to read file"})
		return
	}

	res, err := h.uploader.Upload(c.Request.Context(), user.ID, format, data)
	switch {
	case err == nil:
	case errors.Is(err, storage.ErrTooLarge):
		c.JSON(http.StatusRequestEntityTooLarge, models.ErrorResponse{Error: err.Error()})
		return
	case errors.Is(err, storage.ErrUnsupportedImage), errors.Is(err, storage.ErrDimensionMismatch), errors.Is(err, banner.ErrInvalidFormat):
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{Error: err.Error()})
		return
	default:
		h.log.Error("banner upload failed", zap.String("user_id", user.ID.String()), zap.Error(err))
		c.JSON(http.StatusBadGateway, models.BookingResult{
			Success: false,
			Error:   booking.ErrUploadFailure.Error(),
			Code:    booking.Code(booking.ErrUploadFailure),
		})
		return
	}

	c.JSON(http.StatusCreated, models.UploadResponse{
		URL:    res.URL,
		Key:    res.Key,
		Width:  res.Width,
		Height: res.Height,
	})
}
