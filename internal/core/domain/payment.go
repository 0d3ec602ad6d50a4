package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod enumerates supported ways of recording a payment.
type PaymentMethod string

const (
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodCreditCard   PaymentMethod = "credit_card"
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodCheck        PaymentMethod = "check"
	PaymentMethodPaypal       PaymentMethod = "paypal"
	PaymentMethodOther        PaymentMethod = "other"
)

// Payment records money received against an invoice. Like InvoiceItem it
// carries no owner column; ownership is resolved through the parent invoice.
type Payment struct {
	PaymentID   string
	InvoiceID   string
	Amount      decimal.Decimal
	PaymentDate time.Time
	Method      PaymentMethod
	Reference   *string
	Notes       *string
	AuditFields
}
