package domain

import "github.com/shopspring/decimal"

// ClientStatus enumerates the lifecycle states of a client.
type ClientStatus string

const (
	ClientStatusActive   ClientStatus = "active"
	ClientStatusInactive ClientStatus = "inactive"
	ClientStatusPending  ClientStatus = "pending"
)

// BillingFrequency enumerates how often a client is billed.
type BillingFrequency string

const (
	BillingMonthly   BillingFrequency = "monthly"
	BillingQuarterly BillingFrequency = "quarterly"
	BillingAnnually  BillingFrequency = "annually"
	BillingOneTime   BillingFrequency = "one-time"
)

// Client is a customer of a user. The running totals are maintained outside
// this code path and are never recomputed here.
type Client struct {
	ClientID           string
	UserID             string
	CompanyName        string
	ContactName        *string
	Email              *string
	Phone              *string
	Website            *string
	Address            *string
	Status             ClientStatus
	BillingFrequency   BillingFrequency
	TotalBilled        decimal.Decimal
	OutstandingBalance decimal.Decimal
	Notes              *string
	AuditFields
}
