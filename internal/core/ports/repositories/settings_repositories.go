package repositories

import (
	"context"

	"github.com/invoiceflow/invoiceflow-backend/internal/core/domain"
)

// SettingsRepositoryFacade defines persistence for user settings and
// profiles. Both tables are keyed by the user ID itself.
type SettingsRepositoryFacade interface {
	// FindSettingsByUserID retrieves the user's settings row.
	FindSettingsByUserID(ctx context.Context, userID string) (*domain.UserSettings, error)

	// SaveSettings upserts the user's settings row.
	SaveSettings(ctx context.Context, settings domain.UserSettings) error

	// FindProfileByUserID retrieves the user's profile row.
	FindProfileByUserID(ctx context.Context, userID string) (*domain.Profile, error)

	// SaveProfile upserts the user's profile row.
	SaveProfile(ctx context.Context, profile domain.Profile) error
}
