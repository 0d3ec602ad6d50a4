package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment represents a row in the payments table.
type Payment struct {
	PaymentID   string          `db:"payment_id"`
	InvoiceID   string          `db:"invoice_id"`
	Amount      decimal.Decimal `db:"amount"`
	PaymentDate time.Time       `db:"payment_date"`
	Method      string          `db:"payment_method"`
	Reference   *string         `db:"reference"`
	Notes       *string         `db:"notes"`
	AuditFields
}
