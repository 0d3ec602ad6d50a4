package models

import (
	"github.com/shopspring/decimal"
)

// Client represents a row in the clients table. Optional contact fields are
// nullable; empty strings from the API are normalized to NULL before they
// reach this layer.
type Client struct {
	ClientID           string          `db:"client_id"`
	UserID             string          `db:"user_id"`
	CompanyName        string          `db:"company_name"`
	ContactName        *string         `db:"contact_name"`
	Email              *string         `db:"email"`
	Phone              *string         `db:"phone"`
	Website            *string         `db:"website"`
	Address            *string         `db:"address"`
	Status             string          `db:"status"`
	BillingFrequency   string          `db:"billing_frequency"`
	TotalBilled        decimal.Decimal `db:"total_billed"`
	OutstandingBalance decimal.Decimal `db:"outstanding_balance"`
	Notes              *string         `db:"notes"`
	AuditFields
}
