package handlers_test

import (
	"bannerdesk/internal/api/handlers"
	"bannerdesk/internal/api/middleware"
	"bannerdesk/internal/banner"
	"bannerdesk/internal/models"
	"bannerdesk/internal/storage"
	"bannerdesk/internal/testutil"
	"bytes"
	"encoding/json"
	"image"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const maxUpload = 1 << 20

// apiFixture wires the public, user and admin routes around a memstore context
type apiFixture struct {
	t      *testing.T
	tc     *testutil.TestContext
	router *gin.Engine
	store  *storage.MemoryStore

	user       *models.User
	other      *models.User
	admin      *models.User
	userToken  string
	otherToken string
	adminToken string

	country  uuid.UUID
	region   uuid.UUID
	city     *models.Zone
	homeZone *models.Zone
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()
	tc := testutil.NewTestContext(t)
	f := &apiFixture{
		t:       t,
		tc:      tc,
		store:   &storage.MemoryStore{BaseURL: "https://cdn.example.com"},
		country: uuid.New(),
		region:  uuid.New(),
	}
	uploader := storage.NewUploader(f.store, maxUpload)

	f.user = tc.CreateTestUser("advertiser", "advertiser@example.com", "password123", false)
	f.other = tc.CreateTestUser("other_advertiser", "other@example.com", "password123", false)
	f.admin = tc.CreateTestUser("forum_admin", "admin@example.com", "password123", true)
	f.userToken = tc.GetTestJWT(f.user.ID)
	f.otherToken = tc.GetTestJWT(f.other.ID)
	f.adminToken = tc.GetTestJWT(f.admin.ID)

	f.city = tc.CreateTestZone(banner.ZoneTypeCity, f.country, &f.region)
	f.homeZone = tc.CreateTestZone(banner.ZoneTypeHomeCountry, f.country, nil)

	f.router = newRouter(tc, uploader)
	return f
}

func newRouter(tc *testutil.TestContext, uploader *storage.Uploader) *gin.Engine {
	authMW := middleware.NewAuthMiddleware(tc.AuthService, tc.UserRepo)
	bannerHandler := handlers.NewBannerHandler(uploader, maxUpload, nil)
	zoneHandler := handlers.NewZoneHandler(tc.Bookings)
	bookingHandler := handlers.NewBookingHandler(tc.Bookings, uploader, nil)
	adminHandler := handlers.NewAdminHandler(tc.Bookings, tc.AuditRepo)

	r := gin.New()
	r.GET("/banners/formats", bannerHandler.ListFormats)
	r.GET("/banners/pricing", bannerHandler.GetPricing)
	r.GET("/zones/resolve", zoneHandler.ResolveZone)
	r.GET("/zones/:id/occupancy", zoneHandler.GetOccupancy)
	r.GET("/zones/:id/availability", zoneHandler.CheckAvailability)

	user := r.Group("/", authMW.AuthRequired())
	user.POST("/banners/upload", bannerHandler.Upload)
	user.POST("/bookings", bookingHandler.CreateBooking)
	user.GET("/bookings/mine", bookingHandler.ListMyBookings)
	user.GET("/bookings/:id", bookingHandler.GetBooking)
	user.POST("/bookings/:id/cancel", bookingHandler.CancelBooking)

	admin := r.Group("/admin", authMW.AuthRequired(), authMW.AdminRequired())
	admin.GET("/zones", zoneHandler.ListZones)
	admin.POST("/zones", zoneHandler.CreateZone)
	admin.GET("/zones/:id", zoneHandler.GetZone)
	admin.PUT("/zones/:id", zoneHandler.UpdateZone)
	admin.DELETE("/zones/:id", zoneHandler.DeleteZone)
	admin.GET("/bookings", adminHandler.ListBookings)
	admin.POST("/bookings/advance", adminHandler.AdvanceSchedule)
	admin.PATCH("/bookings/:id", adminHandler.EditBooking)
	admin.PUT("/bookings/:id/status", adminHandler.ChangeStatus)
	admin.POST("/bookings/:id/approve", adminHandler.ApproveBooking)
	admin.POST("/bookings/:id/reject", adminHandler.RejectBooking)
	admin.GET("/audit-logs", adminHandler.ListAuditLogs)
	return r
}

// do sends body as JSON when it is not nil
func (f *apiFixture) do(method, path, token string, body any) *httptest.ResponseRecorder {
	f.t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(f.t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return f.send(req, token)
}

func (f *apiFixture) send(req *http.Request, token string) *httptest.ResponseRecorder {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

// cityRequest is a valid header booking of the city zone starting on the minimum start date
func (f *apiFixture) cityRequest() models.CreateBookingRequest {
	return models.CreateBookingRequest{
		CountryID:    f.country,
		ZoneType:     string(banner.ZoneTypeCity),
		RegionID:     &f.region,
		Position:     string(banner.PositionHeader),
		Format:       string(banner.FormatLeaderboard),
		StartDate:    "2024-03-04",
		DurationDays: 7,
		ImageURL:     "https://cdn.example.com/banners/header.png",
	}
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func pngOf(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))))
	return buf.Bytes()
}

// multipartRequest builds a form post; file is attached as "file" when not nil
func multipartRequest(t *testing.T, path string, fields map[string]string, file []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if file != nil {
		part, err := mw.CreateFormFile("file", "banner.png")
		require.NoError(t, err)
		_, err = part.Write(file)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}
