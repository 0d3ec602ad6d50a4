package services

import (
	"context"
	"time"

	"github.com/invoiceflow/invoiceflow-backend/internal/core/domain"
	"github.com/invoiceflow/invoiceflow-backend/internal/dto"
)

// UserSvcFacade defines account management operations.
type UserSvcFacade interface {
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error)

	// FindOrCreateOAuthUser resolves an externally-authenticated identity to
	// a local account, creating one on first sign-in.
	FindOrCreateOAuthUser(ctx context.Context, provider domain.AuthProviderType, providerUserID, email, name string) (*domain.User, error)

	// StoreRefreshTokenHash persists the hash of an issued refresh token.
	StoreRefreshTokenHash(ctx context.Context, userID, refreshTokenHash string, expiry time.Time) error

	// ClearRefreshToken invalidates the stored refresh token on logout.
	ClearRefreshToken(ctx context.Context, userID string) error
}
