package handlers

import (
	"bannerdesk/internal/auth"
	"bannerdesk/internal/config"
	"bannerdesk/internal/models"
	"bannerdesk/internal/repository"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler handles HTTP requests for authentication and account creation
type AuthHandler struct {
	userRepo    repository.UserRepository
	roleRepo    repository.RoleRepository
	authService *auth.Service
	auditRepo   repository.AuditLogRepository
	config      *config.Config
	log         *zap.Logger
}

// NewAuthHandler creates a new authentication handler with the given dependencies
func NewAuthHandler(
	userRepo repository.UserRepository,
	roleRepo repository.RoleRepository,
	authService *auth.Service,
	auditRepo repository.AuditLogRepository,
	config *config.Config,
	log *zap.Logger,
) *AuthHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &AuthHandler{
		userRepo:    userRepo,
		roleRepo:    roleRepo,
		authService: authService,
		auditRepo:   auditRepo,
		config:      config,
		log:         log,
	}
}

// Login godoc
// @Summary User login
// @Description Authenticate a forum member and return an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login credentials"
// @Success 200 {object} models.LoginResponse "Login successful"
// @Failure 400 {object} models.ErrorResponse "Invalid request format"
// @Failure 401 {object} models.ErrorResponse "Invalid credentials"
// @Failure 429 {object} models.ErrorResponse "Rate limit exceeded"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.userRepo.GetByUsername(c.Request.Context(), req.Username)
	if errors.Is(err, repository.ErrUserNotFound) {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "invalid credentials"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to process login"})
		return
	}

	if user.DeletedAt != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "account is inactive"})
		return
	}

	if err := h.authService.ComparePasswords(user.Password, req.Password); err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "invalid credentials"})
		return
	}

	if user.Role == nil {
		role, err := h.roleRepo.GetByID(c.Request.Context(), user.RoleID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to get user role"})
			return
		}
		user.Role = role
	}

	accessToken, err := h.authService.GenerateToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to generate access token"})
		return
	}

	h.audit(c, user, models.AuditActionLogin, fmt.Sprintf("User %s logged in", user.Username))

	c.JSON(http.StatusOK, models.LoginResponse{
		AccessToken: accessToken,
		ExpiresIn:   int(h.authService.Expiration().Seconds()),
	})
}

// Register godoc
// @Summary Register new user
// @Description Register a new forum account. Admins may register users while registration is closed.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.CreateUserRequest true "User registration details"
// @Success 201 {object} models.User "User created successfully"
// @Failure 400 {object} models.ErrorResponse "Invalid request format or validation error"
// @Failure 403 {object} models.ErrorResponse "Registration is disabled"
// @Failure 409 {object} models.ErrorResponse "Username or email already exists"
// @Failure 429 {object} models.ErrorResponse "Rate limit exceeded"
// @Failure 500 {object} models.ErrorResponse "Failed to create user"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	if !h.config.Auth.RegistrationOpen && !c.GetBool("is_admin") {
		c.JSON(http.StatusForbidden, models.ErrorResponse{Error: "registration is disabled"})
		return
	}

	hashedPassword, err := h.authService.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to process registration"})
		return
	}

	role, err := h.roleRepo.GetByName(c.Request.Context(), "user")
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to get role"})
		return
	}

	user := &models.User{
		Username: req.Username,
		Password: hashedPassword,
		Email:    req.Email,
		RoleID:   role.ID,
	}
	if err := h.userRepo.Create(c.Request.Context(), user); err != nil {
		switch {
		case errors.Is(err, repository.ErrUsernameExists):
			c.JSON(http.StatusConflict, models.ErrorResponse{Error: "username already exists"})
		case errors.Is(err, repository.ErrEmailExists):
			c.JSON(http.StatusConflict, models.ErrorResponse{Error: "email already exists"})
		default:
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to create user"})
		}
		return
	}
	user.Role = role

	h.audit(c, user, models.AuditActionCreate, fmt.Sprintf("User %s registered", user.Username))

	c.JSON(http.StatusCreated, user)
}

// audit records an account event. Failures are logged and never fail the request.
func (h *AuthHandler) audit(c *gin.Context, user *models.User, action models.AuditAction, description string) {
	details, _ := json.Marshal(map[string]any{"username": user.Username})
	entry := &models.CreateAuditLogRequest{
		UserID:      &user.ID,
		Action:      action,
		EntityType:  "user",
		EntityID:    user.ID.String(),
		Description: description,
		Metadata:    string(details),
		IPAddress:   c.ClientIP(),
		UserAgent:   c.Request.UserAgent(),
	}
	if err := h.auditRepo.Create(context.WithoutCancel(c.Request.Context()), entry); err != nil {
		h.log.Warn("failed to create audit log", zap.String("action", string(action)), zap.Error(err))
	}
}
