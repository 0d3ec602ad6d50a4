package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/invoiceflow/invoiceflow-backend/internal/apperrors"
	"github.com/invoiceflow/invoiceflow-backend/internal/core/domain"
	portsrepo "github.com/invoiceflow/invoiceflow-backend/internal/core/ports/repositories"
	"github.com/invoiceflow/invoiceflow-backend/internal/models"
	"github.com/invoiceflow/invoiceflow-backend/internal/utils/mapping"
)

// PgxSettingsRepository implements the settings repository port using
// pgxpool. Settings and profiles are both keyed by user_id, one row each.
type PgxSettingsRepository struct {
	BaseRepository
}

// newPgxSettingsRepository creates a new repository for settings and profile data.
func newPgxSettingsRepository(pool *pgxpool.Pool) portsrepo.SettingsRepositoryFacade {
	return &PgxSettingsRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.SettingsRepositoryFacade = (*PgxSettingsRepository)(nil)

// FindSettingsByUserID retrieves the user's settings row.
func (r *PgxSettingsRepository) FindSettingsByUserID(ctx context.Context, userID string) (*domain.UserSettings, error) {
	query := `
		SELECT user_id, invoice_template, payment_terms_days, default_tax_rate, tax_label,
			invoice_prefix, invoice_footer, default_currency,
			notify_invoice_sent, notify_payment_received, notify_invoice_overdue, notify_weekly_summary,
			created_at, created_by, last_updated_at, last_updated_by
		FROM user_settings
		WHERE user_id = $1;
	`

	var m models.UserSettings
	err := r.Pool.QueryRow(ctx, query, userID).Scan(
		&m.UserID, &m.InvoiceTemplate, &m.PaymentTermsDays, &m.DefaultTaxRate, &m.TaxLabel,
		&m.InvoicePrefix, &m.InvoiceFooter, &m.DefaultCurrency,
		&m.NotifyInvoiceSent, &m.NotifyPaymentReceived, &m.NotifyInvoiceOverdue, &m.NotifyWeeklySummary,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find settings", err)
	}

	d := mapping.ToDomainUserSettings(m)
	return &d, nil
}

// SaveSettings upserts the user's settings row.
func (r *PgxSettingsRepository) SaveSettings(ctx context.Context, settings domain.UserSettings) error {
	m := mapping.ToModelUserSettings(settings)

	query := `
		INSERT INTO user_settings (user_id, invoice_template, payment_terms_days, default_tax_rate, tax_label,
			invoice_prefix, invoice_footer, default_currency,
			notify_invoice_sent, notify_payment_received, notify_invoice_overdue, notify_weekly_summary,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		ON CONFLICT (user_id) DO UPDATE SET
			invoice_template = EXCLUDED.invoice_template,
			payment_terms_days = EXCLUDED.payment_terms_days,
			default_tax_rate = EXCLUDED.default_tax_rate,
			tax_label = EXCLUDED.tax_label,
			invoice_prefix = EXCLUDED.invoice_prefix,
			invoice_footer = EXCLUDED.invoice_footer,
			default_currency = EXCLUDED.default_currency,
			notify_invoice_sent = EXCLUDED.notify_invoice_sent,
			notify_payment_received = EXCLUDED.notify_payment_received,
			notify_invoice_overdue = EXCLUDED.notify_invoice_overdue,
			notify_weekly_summary = EXCLUDED.notify_weekly_summary,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`

	_, err := r.Pool.Exec(ctx, query,
		m.UserID, m.InvoiceTemplate, m.PaymentTermsDays, m.DefaultTaxRate, m.TaxLabel,
		m.InvoicePrefix, m.InvoiceFooter, m.DefaultCurrency,
		m.NotifyInvoiceSent, m.NotifyPaymentReceived, m.NotifyInvoiceOverdue, m.NotifyWeeklySummary,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save settings", err)
	}
	return nil
}

// FindProfileByUserID retrieves the user's profile row.
func (r *PgxSettingsRepository) FindProfileByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	query := `
		SELECT user_id, full_name, business_name, email, phone, website, address,
			created_at, created_by, last_updated_at, last_updated_by
		FROM profiles
		WHERE user_id = $1;
	`

	var m models.Profile
	err := r.Pool.QueryRow(ctx, query, userID).Scan(
		&m.UserID, &m.FullName, &m.BusinessName, &m.Email, &m.Phone, &m.Website, &m.Address,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find profile", err)
	}

	d := mapping.ToDomainProfile(m)
	return &d, nil
}

// SaveProfile upserts the user's profile row.
func (r *PgxSettingsRepository) SaveProfile(ctx context.Context, profile domain.Profile) error {
	m := mapping.ToModelProfile(profile)

	query := `
		INSERT INTO profiles (user_id, full_name, business_name, email, phone, website, address,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (user_id) DO UPDATE SET
			full_name = EXCLUDED.full_name,
			business_name = EXCLUDED.business_name,
			email = EXCLUDED.email,
			phone = EXCLUDED.phone,
			website = EXCLUDED.website,
			address = EXCLUDED.address,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`

	_, err := r.Pool.Exec(ctx, query,
		m.UserID, m.FullName, m.BusinessName, m.Email, m.Phone, m.Website, m.Address,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save profile", err)
	}
	return nil
}
