package dto

import "time"

// LoginRequest carries the credentials for password login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents the response for a successful login. The refresh
// token travels in an HTTP-only cookie, not in this body.
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
}

// RefreshTokenResponse represents the response for a successful token refresh.
type RefreshTokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// GoogleTokenRequest carries a Google ID token for token-based sign-in.
type GoogleTokenRequest struct {
	IDToken string `json:"id_token" binding:"required"`
}

// GoogleExchangeCodeRequest carries the authorization code returned by
// Google's consent page.
type GoogleExchangeCodeRequest struct {
	Code string `json:"code" binding:"required"`
}
