package auth

import (
	"bannerdesk/internal/config"
	"bannerdesk/internal/models"
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidToken indicates the token is invalid
	ErrInvalidToken = errors.New("invalid token")
	// ErrTokenExpired indicates the token has expired
	ErrTokenExpired = errors.New("token expired")
)

// Service provides authentication functionality
type Service struct {
	secret     []byte
	expiration time.Duration
}

// NewService creates a new authentication service
func NewService(cfg config.AuthConfig) *Service {
	hours := cfg.JWTExpiration
	if hours <= 0 {
		hours = 24
	}
	return &Service{
		secret:     []byte(cfg.JWTSecret),
		expiration: time.Duration(hours) * time.Hour,
	}
}

// Expiration returns the lifetime of issued tokens
func (s *Service) Expiration() time.Duration {
	return s.expiration
}

// GenerateToken generates a new JWT token
func (s *Service) GenerateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  user.ID.String(),
		"username": user.Username,
		"is_admin": user.IsAdmin(),
		"exp":      time.Now().Add(s.expiration).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// HashPassword hashes a password using bcrypt
func (s *Service) HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// ComparePasswords compares a hashed password with a plain text password
func (s *Service) ComparePasswords(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

// ValidateToken validates a JWT token and returns the claims
func (s *Service) ValidateToken(tokenString string) (*jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return &claims, nil
	}

	return nil, ErrInvalidToken
}

// UserIDFromClaims extracts the user id stored by GenerateToken
func UserIDFromClaims(claims *jwt.MapClaims) (uuid.UUID, error) {
	raw, ok := (*claims)["user_id"].(string)
	if !ok {
		return uuid.Nil, fmt.Errorf("%w: missing user_id", ErrInvalidToken)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: bad user_id", ErrInvalidToken)
	}
	return id, nil
}

// GetUserFromContext retrieves the authenticated user from the gin context
func GetUserFromContext(c *gin.Context) *models.User {
	user, exists := c.Get("user")
	if !exists {
		return nil
	}
	if u, ok := user.(*models.User); ok {
		return u
	}
	return nil
}
