package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/invoiceflow/invoiceflow-backend/internal/apperrors"
	"github.com/invoiceflow/invoiceflow-backend/internal/core/domain"
	portsrepo "github.com/invoiceflow/invoiceflow-backend/internal/core/ports/repositories"
	portssvc "github.com/invoiceflow/invoiceflow-backend/internal/core/ports/services"
	"github.com/invoiceflow/invoiceflow-backend/internal/dto"
	"github.com/invoiceflow/invoiceflow-backend/internal/utils"
)

type settingsService struct {
	BaseService
	settingsRepo portsrepo.SettingsRepositoryFacade
}

// NewSettingsService creates a new settings service.
func NewSettingsService(settingsRepo portsrepo.SettingsRepositoryFacade) portssvc.SettingsSvcFacade {
	return &settingsService{settingsRepo: settingsRepo}
}

var _ portssvc.SettingsSvcFacade = (*settingsService)(nil)

// GetSettings returns the user's settings, creating a row with defaults on
// first access.
func (s *settingsService) GetSettings(ctx context.Context, userID string) (*domain.UserSettings, error) {
	settings, err := s.settingsRepo.FindSettingsByUserID(ctx, userID)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	defaults := domain.DefaultUserSettings(userID)
	now := time.Now()
	defaults.AuditFields = domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     userID,
		LastUpdatedAt: now,
		LastUpdatedBy: userID,
	}
	if err := s.settingsRepo.SaveSettings(ctx, defaults); err != nil {
		s.LogError(ctx, err, "failed to create default settings", slog.String("user_id", userID))
		return nil, err
	}

	s.LogInfo(ctx, "default settings created", slog.String("user_id", userID))
	return &defaults, nil
}

// UpdateSettings applies a combined business plus notifications update.
func (s *settingsService) UpdateSettings(ctx context.Context, userID string, req dto.UpdateSettingsRequest) (*domain.UserSettings, error) {
	settings, err := s.GetSettings(ctx, userID)
	if err != nil {
		return nil, err
	}

	applyBusinessSettings(settings, req.UpdateBusinessSettingsRequest)
	if req.Notifications != nil {
		applyNotificationSettings(settings, *req.Notifications)
	}

	return s.save(ctx, userID, settings)
}

// UpdateBusinessSettings applies only the invoicing defaults.
func (s *settingsService) UpdateBusinessSettings(ctx context.Context, userID string, req dto.UpdateBusinessSettingsRequest) (*domain.UserSettings, error) {
	settings, err := s.GetSettings(ctx, userID)
	if err != nil {
		return nil, err
	}

	applyBusinessSettings(settings, req)
	return s.save(ctx, userID, settings)
}

// UpdateNotifications applies only the notification toggles.
func (s *settingsService) UpdateNotifications(ctx context.Context, userID string, req dto.UpdateNotificationsRequest) (*domain.UserSettings, error) {
	settings, err := s.GetSettings(ctx, userID)
	if err != nil {
		return nil, err
	}

	applyNotificationSettings(settings, req)
	return s.save(ctx, userID, settings)
}

func (s *settingsService) save(ctx context.Context, userID string, settings *domain.UserSettings) (*domain.UserSettings, error) {
	settings.LastUpdatedAt = time.Now()
	settings.LastUpdatedBy = userID

	if err := s.settingsRepo.SaveSettings(ctx, *settings); err != nil {
		s.LogError(ctx, err, "failed to save settings", slog.String("user_id", userID))
		return nil, err
	}
	return settings, nil
}

func applyBusinessSettings(settings *domain.UserSettings, req dto.UpdateBusinessSettingsRequest) {
	if req.InvoiceTemplate != nil {
		settings.InvoiceTemplate = *req.InvoiceTemplate
	}
	if req.PaymentTermsDays != nil {
		settings.PaymentTermsDays = *req.PaymentTermsDays
	}
	if req.DefaultTaxRate != nil {
		settings.DefaultTaxRate = *req.DefaultTaxRate
	}
	if req.TaxLabel != nil {
		settings.TaxLabel = *req.TaxLabel
	}
	if req.InvoicePrefix != nil {
		settings.InvoicePrefix = *req.InvoicePrefix
	}
	if req.InvoiceFooter != nil {
		settings.InvoiceFooter = utils.NormalizeOptionalString(req.InvoiceFooter)
	}
	if req.DefaultCurrency != nil {
		settings.DefaultCurrency = *req.DefaultCurrency
	}
}

func applyNotificationSettings(settings *domain.UserSettings, req dto.UpdateNotificationsRequest) {
	if req.EmailOnInvoiceSent != nil {
		settings.Notifications.EmailOnInvoiceSent = *req.EmailOnInvoiceSent
	}
	if req.EmailOnPaymentReceived != nil {
		settings.Notifications.EmailOnPaymentReceived = *req.EmailOnPaymentReceived
	}
	if req.EmailOnInvoiceOverdue != nil {
		settings.Notifications.EmailOnInvoiceOverdue = *req.EmailOnInvoiceOverdue
	}
	if req.WeeklySummary != nil {
		settings.Notifications.WeeklySummary = *req.WeeklySummary
	}
}

// GetProfile returns the user's profile, creating an empty row on first
// access.
func (s *settingsService) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	profile, err := s.settingsRepo.FindProfileByUserID(ctx, userID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	now := time.Now()
	empty := domain.Profile{
		UserID: userID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.settingsRepo.SaveProfile(ctx, empty); err != nil {
		s.LogError(ctx, err, "failed to create empty profile", slog.String("user_id", userID))
		return nil, err
	}

	return &empty, nil
}

// UpdateProfile applies the supplied contact fields to the user's profile.
func (s *settingsService) UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*domain.Profile, error) {
	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		profile.FullName = utils.NormalizeOptionalString(req.FullName)
	}
	if req.BusinessName != nil {
		profile.BusinessName = utils.NormalizeOptionalString(req.BusinessName)
	}
	if req.Email != nil {
		profile.Email = utils.NormalizeOptionalString(req.Email)
	}
	if req.Phone != nil {
		profile.Phone = utils.NormalizeOptionalString(req.Phone)
	}
	if req.Website != nil {
		profile.Website = utils.NormalizeOptionalString(req.Website)
	}
	if req.Address != nil {
		profile.Address = utils.NormalizeOptionalString(req.Address)
	}
	profile.LastUpdatedAt = time.Now()
	profile.LastUpdatedBy = userID

	if err := s.settingsRepo.SaveProfile(ctx, *profile); err != nil {
		s.LogError(ctx, err, "failed to save profile", slog.String("user_id", userID))
		return nil, err
	}

	return profile, nil
}
