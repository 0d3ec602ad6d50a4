package dto

import (
	"github.com/shopspring/decimal"

	"github.com/invoiceflow/invoiceflow-backend/internal/core/domain"
)

// NotificationPreferencesDTO mirrors the per-user notification toggles.
type NotificationPreferencesDTO struct {
	EmailOnInvoiceSent     bool `json:"email_on_invoice_sent"`
	EmailOnPaymentReceived bool `json:"email_on_payment_received"`
	EmailOnInvoiceOverdue  bool `json:"email_on_invoice_overdue"`
	WeeklySummary          bool `json:"weekly_summary"`
}

// SettingsResponse defines the full settings payload.
type SettingsResponse struct {
	InvoiceTemplate  string                     `json:"invoice_template"`
	PaymentTermsDays int                        `json:"payment_terms_days"`
	DefaultTaxRate   decimal.Decimal            `json:"default_tax_rate"`
	TaxLabel         string                     `json:"tax_label"`
	InvoicePrefix    string                     `json:"invoice_prefix"`
	InvoiceFooter    *string                    `json:"invoice_footer"`
	DefaultCurrency  string                     `json:"default_currency"`
	Notifications    NotificationPreferencesDTO `json:"notifications"`
}

// UpdateBusinessSettingsRequest updates the business-invoicing defaults.
type UpdateBusinessSettingsRequest struct {
	InvoiceTemplate  *string          `json:"invoice_template" binding:"omitempty,oneof=standard modern minimal"`
	PaymentTermsDays *int             `json:"payment_terms_days" binding:"omitempty,gte=0,lte=365"`
	DefaultTaxRate   *decimal.Decimal `json:"default_tax_rate"`
	TaxLabel         *string          `json:"tax_label" binding:"omitempty,min=1"`
	InvoicePrefix    *string          `json:"invoice_prefix"`
	InvoiceFooter    *string          `json:"invoice_footer"`
	DefaultCurrency  *string          `json:"default_currency" binding:"omitempty,len=3"`
}

// Validate bounds-checks the default tax rate.
func (r *UpdateBusinessSettingsRequest) Validate() []FieldError {
	if r.DefaultTaxRate != nil && r.DefaultTaxRate.IsNegative() {
		return []FieldError{{Field: "default_tax_rate", Message: "must be greater than or equal to 0"}}
	}
	return nil
}

// UpdateNotificationsRequest updates the notification toggles.
type UpdateNotificationsRequest struct {
	EmailOnInvoiceSent     *bool `json:"email_on_invoice_sent"`
	EmailOnPaymentReceived *bool `json:"email_on_payment_received"`
	EmailOnInvoiceOverdue  *bool `json:"email_on_invoice_overdue"`
	WeeklySummary          *bool `json:"weekly_summary"`
}

// UpdateSettingsRequest updates the full settings document in one call.
type UpdateSettingsRequest struct {
	UpdateBusinessSettingsRequest
	Notifications *UpdateNotificationsRequest `json:"notifications"`
}

// ProfileResponse defines the profile payload.
type ProfileResponse struct {
	FullName     *string `json:"full_name"`
	BusinessName *string `json:"business_name"`
	Email        *string `json:"email"`
	Phone        *string `json:"phone"`
	Website      *string `json:"website"`
	Address      *string `json:"address"`
}

// UpdateProfileRequest updates the user's contact details. Empty strings on
// email/website are normalized to null before persistence.
type UpdateProfileRequest struct {
	FullName     *string `json:"full_name"`
	BusinessName *string `json:"business_name"`
	Email        *string `json:"email" binding:"omitempty,email"`
	Phone        *string `json:"phone"`
	Website      *string `json:"website" binding:"omitempty,url"`
	Address      *string `json:"address"`
}

// ToSettingsResponse converts domain settings to the response DTO.
func ToSettingsResponse(s *domain.UserSettings) SettingsResponse {
	return SettingsResponse{
		InvoiceTemplate:  s.InvoiceTemplate,
		PaymentTermsDays: s.PaymentTermsDays,
		DefaultTaxRate:   s.DefaultTaxRate,
		TaxLabel:         s.TaxLabel,
		InvoicePrefix:    s.InvoicePrefix,
		InvoiceFooter:    s.InvoiceFooter,
		DefaultCurrency:  s.DefaultCurrency,
		Notifications: NotificationPreferencesDTO{
			EmailOnInvoiceSent:     s.Notifications.EmailOnInvoiceSent,
			EmailOnPaymentReceived: s.Notifications.EmailOnPaymentReceived,
			EmailOnInvoiceOverdue:  s.Notifications.EmailOnInvoiceOverdue,
			WeeklySummary:          s.Notifications.WeeklySummary,
		},
	}
}

// ToProfileResponse converts a domain profile to the response DTO.
func ToProfileResponse(p *domain.Profile) ProfileResponse {
	return ProfileResponse{
		FullName:     p.FullName,
		BusinessName: p.BusinessName,
		Email:        p.Email,
		Phone:        p.Phone,
		Website:      p.Website,
		Address:      p.Address,
	}
}
