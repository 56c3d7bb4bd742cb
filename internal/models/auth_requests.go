package models

// LoginRequest represents a login request
type LoginRequest struct {
	Username string `json:"username" binding:"required,max=50" example:"johndoe"`
	Password string `json:"password" binding:"required" example:"mypassword123"`
}
