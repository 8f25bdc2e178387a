package auth

import "go-logbook/internal/user"

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh"`
}

// ClientMeta is recorded on the session for auditing.
type ClientMeta struct {
	UserAgent string
	IP        string
}

type TokenPair struct {
	AccessToken  string `json:"access"`
	RefreshToken string `json:"refresh"`
	ExpiresIn    int64  `json:"expires_in"`
}

type AuthResponse struct {
	TokenPair
	User user.UserResponse `json:"user"`
}
