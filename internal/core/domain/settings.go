package domain

import "github.com/shopspring/decimal"

// NotificationPreferences holds per-user notification toggles.
type NotificationPreferences struct {
	EmailOnInvoiceSent     bool
	EmailOnPaymentReceived bool
	EmailOnInvoiceOverdue  bool
	WeeklySummary          bool
}

// UserSettings holds a user's invoicing defaults. A row is created lazily
// with these defaults on first read if none exists.
type UserSettings struct {
	UserID           string
	InvoiceTemplate  string
	PaymentTermsDays int
	DefaultTaxRate   decimal.Decimal
	TaxLabel         string
	InvoicePrefix    string
	InvoiceFooter    *string
	DefaultCurrency  string
	Notifications    NotificationPreferences
	AuditFields
}

// DefaultUserSettings returns the hardcoded defaults used when a settings row
// is lazily created.
func DefaultUserSettings(userID string) UserSettings {
	return UserSettings{
		UserID:           userID,
		InvoiceTemplate:  "standard",
		PaymentTermsDays: 30,
		DefaultTaxRate:   decimal.Zero,
		TaxLabel:         "Tax",
		InvoicePrefix:    "INV-",
		DefaultCurrency:  "USD",
		Notifications: NotificationPreferences{
			EmailOnInvoiceSent:     true,
			EmailOnPaymentReceived: true,
			EmailOnInvoiceOverdue:  true,
			WeeklySummary:          false,
		},
	}
}

// Profile holds a user's personal and business contact details, separate from
// the account record itself. Created lazily on first settings read.
type Profile struct {
	UserID       string
	FullName     *string
	BusinessName *string
	Email        *string
	Phone        *string
	Website      *string
	Address      *string
	AuditFields
}
