package models

import (
	"github.com/shopspring/decimal"
)

// UserSettings represents a row in the user_settings table. Notification
// toggles are flattened into boolean columns.
type UserSettings struct {
	UserID           string          `db:"user_id"`
	InvoiceTemplate  string          `db:"invoice_template"`
	PaymentTermsDays int             `db:"payment_terms_days"`
	DefaultTaxRate   decimal.Decimal `db:"default_tax_rate"`
	TaxLabel         string          `db:"tax_label"`
	InvoicePrefix    string          `db:"invoice_prefix"`
	InvoiceFooter    *string         `db:"invoice_footer"`
	DefaultCurrency  string          `db:"default_currency"`

	NotifyInvoiceSent     bool `db:"notify_invoice_sent"`
	NotifyPaymentReceived bool `db:"notify_payment_received"`
	NotifyInvoiceOverdue  bool `db:"notify_invoice_overdue"`
	NotifyWeeklySummary   bool `db:"notify_weekly_summary"`

	AuditFields
}

// Profile represents a row in the profiles table.
type Profile struct {
	UserID       string  `db:"user_id"`
	FullName     *string `db:"full_name"`
	BusinessName *string `db:"business_name"`
	Email        *string `db:"email"`
	Phone        *string `db:"phone"`
	Website      *string `db:"website"`
	Address      *string `db:"address"`
	AuditFields
}
