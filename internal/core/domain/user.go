package domain

import "time"

// AuthProviderType identifies how a user authenticates.
type AuthProviderType string

const (
	ProviderLocal  AuthProviderType = "LOCAL"
	ProviderGoogle AuthProviderType = "GOOGLE"
)

// User represents an account holder. Every Client, Invoice and Settings row
// in the system is scoped to exactly one User.
type User struct {
	UserID                 string
	Username               string
	Name                   string
	Email                  *string
	PasswordHash           string
	AuthProvider           AuthProviderType
	ProviderUserID         *string
	RefreshTokenHash       string
	RefreshTokenExpiryTime *time.Time
	AuditFields
	DeletedAt *time.Time
}

// GoogleUserInfo is the subset of the Google userinfo payload the app consumes.
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}
