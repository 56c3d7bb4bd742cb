// Package routes handles the setup and configuration of API routes
package routes

import (
	_ "bannerdesk/docs" // Import swagger docs
	"bannerdesk/internal/api/handlers"
	"bannerdesk/internal/api/middleware"
	"bannerdesk/internal/auth"
	"bannerdesk/internal/booking"
	"bannerdesk/internal/config"
	"bannerdesk/internal/metrics"
	"bannerdesk/internal/repository"
	"bannerdesk/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Dependencies are the services the routes are wired to
type Dependencies struct {
	Config  *config.Config
	DB      handlers.Pinger
	Log     *zap.Logger
	Metrics *metrics.Metrics
	// Gatherer is exposed on /metrics; nothing is exposed when nil
	Gatherer prometheus.Gatherer
	Limiter  *middleware.RateLimiter

	Users    repository.UserRepository
	Roles    repository.RoleRepository
	Audit    repository.AuditLogRepository
	Auth     *auth.Service
	Bookings *booking.Service
	// Uploader is nil when banner storage is not configured
	Uploader *storage.Uploader
}

// SetupRoutes configures all API routes and their handlers
func SetupRoutes(deps Dependencies) *gin.Engine {
	cfg := deps.Config
	log := deps.Log
	if log == nil {
		log = zap.NewNop()
	}
	m := deps.Metrics
	if m == nil {
		m = metrics.NewNop()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Metrics(m))
	r.Use(gzip.Gzip(gzip.DefaultCompression))
	r.Use(cors.New(corsConfig(cfg.API.AllowedOrigins)))

	// Routes without rate limiting
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if deps.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	// Apply rate limiting to all other routes
	if deps.Limiter != nil {
		r.Use(deps.Limiter.Middleware())
	}

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(deps.Auth, deps.Users)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(deps.DB)
	authHandler := handlers.NewAuthHandler(deps.Users, deps.Roles, deps.Auth, deps.Audit, cfg, log)
	bannerHandler := handlers.NewBannerHandler(deps.Uploader, cfg.Storage.MaxUploadBytes, log)
	zoneHandler := handlers.NewZoneHandler(deps.Bookings)
	bookingHandler := handlers.NewBookingHandler(deps.Bookings, deps.Uploader, log)
	adminHandler := handlers.NewAdminHandler(deps.Bookings, deps.Audit)

	// API v1 routes
	v1 := r.Group("/api/v1")
	{
		// Health check (no authentication required)
		v1.GET("/health", healthHandler.Health)

		// Auth routes
		auth := v1.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/register", authMiddleware.OptionalAuth(), authHandler.Register)
		}

		// Catalog routes (public)
		banners := v1.Group("/banners")
		{
			banners.GET("/formats", bannerHandler.ListFormats)
			banners.GET("/pricing", bannerHandler.GetPricing)
			banners.POST("/upload", authMiddleware.AuthRequired(), bannerHandler.Upload)
		}

		// Zone lookups and calendars (public)
		zones := v1.Group("/zones")
		{
			zones.GET("/resolve", zoneHandler.ResolveZone)
			zones.GET("/:id/occupancy", zoneHandler.GetOccupancy)
			zones.GET("/:id/availability", zoneHandler.CheckAvailability)
		}

		// Booking routes (requires authentication)
		bookings := v1.Group("/bookings")
		bookings.Use(authMiddleware.AuthRequired())
		{
			bookings.POST("", bookingHandler.CreateBooking)
			bookings.GET("/mine", bookingHandler.ListMyBookings)
			bookings.GET("/:id", bookingHandler.GetBooking)
			bookings.POST("/:id/cancel", bookingHandler.CancelBooking)
		}

		// Admin-only routes
		admin := v1.Group("/admin")
		admin.Use(authMiddleware.AuthRequired(), authMiddleware.AdminRequired())
		{
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
		}
	}

	return r
}

func corsConfig(origins []string) cors.Config {
	c := cors.DefaultConfig()
	if len(origins) == 0 {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
	}
	c.AllowHeaders = append(c.AllowHeaders, "Authorization", middleware.RequestIDHeader)
	c.ExposeHeaders = []string{middleware.RequestIDHeader, "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset", "Retry-After"}
	return c
}
