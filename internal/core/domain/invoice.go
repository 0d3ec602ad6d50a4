package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus enumerates the lifecycle states of an invoice.
type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "draft"
	InvoiceStatusSent      InvoiceStatus = "sent"
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusOverdue   InvoiceStatus = "overdue"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
)

// Invoice belongs to a user and references exactly one of that user's clients.
// Monetary fields are supplied by the caller and bounds-checked only; totals
// are never re-derived from line items server-side.
type Invoice struct {
	InvoiceID     string
	UserID        string
	ClientID      string
	InvoiceNumber string
	IssueDate     time.Time
	DueDate       time.Time
	Status        InvoiceStatus
	Subtotal      decimal.Decimal
	TaxRate       decimal.Decimal
	TaxAmount     decimal.Decimal
	Discount      decimal.Decimal
	TotalAmount   decimal.Decimal
	Currency      string
	Notes         *string
	Terms         *string
	AuditFields
}

// InvoiceItem is a line on an invoice. It has no owner column of its own;
// ownership is transitive through the parent invoice.
type InvoiceItem struct {
	ItemID      string
	InvoiceID   string
	Description string
	Quantity    decimal.Decimal
	Rate        decimal.Decimal
	Amount      decimal.Decimal
	AuditFields
}
