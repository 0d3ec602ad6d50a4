package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice represents a row in the invoices table.
type Invoice struct {
	InvoiceID     string          `db:"invoice_id"`
	UserID        string          `db:"user_id"`
	ClientID      string          `db:"client_id"`
	InvoiceNumber string          `db:"invoice_number"`
	IssueDate     time.Time       `db:"issue_date"`
	DueDate       time.Time       `db:"due_date"`
	Status        string          `db:"status"`
	Subtotal      decimal.Decimal `db:"subtotal"`
	TaxRate       decimal.Decimal `db:"tax_rate"`
	TaxAmount     decimal.Decimal `db:"tax_amount"`
	Discount      decimal.Decimal `db:"discount"`
	TotalAmount   decimal.Decimal `db:"total_amount"`
	Currency      string          `db:"currency"`
	Notes         *string         `db:"notes"`
	Terms         *string         `db:"terms"`
	AuditFields
}

// InvoiceItem represents a row in the invoice_items table. There is no
// user_id column; ownership is resolved through the parent invoice.
type InvoiceItem struct {
	ItemID      string          `db:"item_id"`
	InvoiceID   string          `db:"invoice_id"`
	Description string          `db:"description"`
	Quantity    decimal.Decimal `db:"quantity"`
	Rate        decimal.Decimal `db:"rate"`
	Amount      decimal.Decimal `db:"amount"`
	AuditFields
}
