package services

import (
	"context"

	"github.com/invoiceflow/invoiceflow-backend/internal/core/domain"
	"github.com/invoiceflow/invoiceflow-backend/internal/dto"
)

// SettingsSvcFacade defines the business operations on user settings and
// profiles. Reads lazily create rows with defaults when none exist.
type SettingsSvcFacade interface {
	GetSettings(ctx context.Context, userID string) (*domain.UserSettings, error)
	UpdateSettings(ctx context.Context, userID string, req dto.UpdateSettingsRequest) (*domain.UserSettings, error)
	UpdateBusinessSettings(ctx context.Context, userID string, req dto.UpdateBusinessSettingsRequest) (*domain.UserSettings, error)
	UpdateNotifications(ctx context.Context, userID string, req dto.UpdateNotificationsRequest) (*domain.UserSettings, error)

	GetProfile(ctx context.Context, userID string) (*domain.Profile, error)
	UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*domain.Profile, error)
}
