package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/invoiceflow/invoiceflow-backend/internal/core/domain"
	"github.com/invoiceflow/invoiceflow-backend/internal/utils/pagination"
)

// minPaymentAmount is the smallest accepted payment.
var minPaymentAmount = decimal.NewFromFloat(0.01)

// CreatePaymentRequest defines the data needed to record a payment.
type CreatePaymentRequest struct {
	InvoiceID   string          `json:"invoice_id" binding:"required,uuid"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentDate string          `json:"payment_date" binding:"required,datetime=2006-01-02"`
	Method      string          `json:"payment_method" binding:"required,oneof=bank_transfer credit_card cash check paypal other"`
	Reference   *string         `json:"reference"`
	Notes       *string         `json:"notes"`
}

// Validate bounds-checks the payment amount.
func (r *CreatePaymentRequest) Validate() []FieldError {
	if r.Amount.LessThan(minPaymentAmount) {
		return []FieldError{{Field: "amount", Message: "must be at least 0.01"}}
	}
	return nil
}

// UpdatePaymentRequest defines the data allowed for updating a payment.
type UpdatePaymentRequest struct {
	Amount      *decimal.Decimal `json:"amount"`
	PaymentDate *string          `json:"payment_date" binding:"omitempty,datetime=2006-01-02"`
	Method      *string          `json:"payment_method" binding:"omitempty,oneof=bank_transfer credit_card cash check paypal other"`
	Reference   *string          `json:"reference"`
	Notes       *string          `json:"notes"`
}

// Validate bounds-checks the payment amount when present.
func (r *UpdatePaymentRequest) Validate() []FieldError {
	if r.Amount != nil && r.Amount.LessThan(minPaymentAmount) {
		return []FieldError{{Field: "amount", Message: "must be at least 0.01"}}
	}
	return nil
}

// ListPaymentsParams defines the non-pagination query filters for listing
// payments.
type ListPaymentsParams struct {
	InvoiceID *string `form:"invoice_id" binding:"omitempty,uuid"`
	Method    *string `form:"payment_method" binding:"omitempty,oneof=bank_transfer credit_card cash check paypal other"`
	DateFrom  *string `form:"payment_date_from" binding:"omitempty,datetime=2006-01-02"`
	DateTo    *string `form:"payment_date_to" binding:"omitempty,datetime=2006-01-02"`
}

// PaymentResponse defines the data returned for a payment.
type PaymentResponse struct {
	PaymentID   string          `json:"payment_id"`
	InvoiceID   string          `json:"invoice_id"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentDate string          `json:"payment_date"`
	Method      string          `json:"payment_method"`
	Reference   *string         `json:"reference"`
	Notes       *string         `json:"notes"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ListPaymentsResponse wraps the payment list with pagination metadata.
type ListPaymentsResponse struct {
	Payments   []PaymentResponse `json:"payments"`
	Pagination pagination.Meta   `json:"pagination"`
}

// ToPaymentResponse converts a domain.Payment to PaymentResponse DTO
func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:   p.PaymentID,
		InvoiceID:   p.InvoiceID,
		Amount:      p.Amount,
		PaymentDate: p.PaymentDate.Format(DateLayout),
		Method:      string(p.Method),
		Reference:   p.Reference,
		Notes:       p.Notes,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.LastUpdatedAt,
	}
}

// ToListPaymentsResponse converts domain payments plus pagination into the list DTO.
func ToListPaymentsResponse(payments []domain.Payment, meta pagination.Meta) ListPaymentsResponse {
	res := make([]PaymentResponse, len(payments))
	for i, p := range payments {
		res[i] = ToPaymentResponse(&p)
	}
	return ListPaymentsResponse{Payments: res, Pagination: meta}
}
