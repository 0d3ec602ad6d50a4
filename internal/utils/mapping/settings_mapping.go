package mapping

import (
	"github.com/invoiceflow/invoiceflow-backend/internal/core/domain"
	"github.com/invoiceflow/invoiceflow-backend/internal/models"
)

// ToModelUserSettings converts domain UserSettings to a model row.
func ToModelUserSettings(d domain.UserSettings) models.UserSettings {
	return models.UserSettings{
		UserID:           d.UserID,
		InvoiceTemplate:  d.InvoiceTemplate,
		PaymentTermsDays: d.PaymentTermsDays,
		DefaultTaxRate:   d.DefaultTaxRate,
		TaxLabel:         d.TaxLabel,
		InvoicePrefix:    d.InvoicePrefix,
		InvoiceFooter:    d.InvoiceFooter,
		DefaultCurrency:  d.DefaultCurrency,

		NotifyInvoiceSent:     d.Notifications.EmailOnInvoiceSent,
		NotifyPaymentReceived: d.Notifications.EmailOnPaymentReceived,
		NotifyInvoiceOverdue:  d.Notifications.EmailOnInvoiceOverdue,
		NotifyWeeklySummary:   d.Notifications.WeeklySummary,

		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainUserSettings converts a model row to domain UserSettings.
func ToDomainUserSettings(m models.UserSettings) domain.UserSettings {
	return domain.UserSettings{
		UserID:           m.UserID,
		InvoiceTemplate:  m.InvoiceTemplate,
		PaymentTermsDays: m.PaymentTermsDays,
		DefaultTaxRate:   m.DefaultTaxRate,
		TaxLabel:         m.TaxLabel,
		InvoicePrefix:    m.InvoicePrefix,
		InvoiceFooter:    m.InvoiceFooter,
		DefaultCurrency:  m.DefaultCurrency,
		Notifications: domain.NotificationPreferences{
			EmailOnInvoiceSent:     m.NotifyInvoiceSent,
			EmailOnPaymentReceived: m.NotifyPaymentReceived,
			EmailOnInvoiceOverdue:  m.NotifyInvoiceOverdue,
			WeeklySummary:          m.NotifyWeeklySummary,
		},
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelProfile converts a domain Profile to a model row.
func ToModelProfile(d domain.Profile) models.Profile {
	return models.Profile{
		UserID:       d.UserID,
		FullName:     d.FullName,
		BusinessName: d.BusinessName,
		Email:        d.Email,
		Phone:        d.Phone,
		Website:      d.Website,
		Address:      d.Address,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainProfile converts a model row to a domain Profile.
func ToDomainProfile(m models.Profile) domain.Profile {
	return domain.Profile{
		UserID:       m.UserID,
		FullName:     m.FullName,
		BusinessName: m.BusinessName,
		Email:        m.Email,
		Phone:        m.Phone,
		Website:      m.Website,
		Address:      m.Address,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}
