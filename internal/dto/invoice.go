package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/invoiceflow/invoiceflow-backend/internal/core/domain"
	"github.com/invoiceflow/invoiceflow-backend/internal/utils/pagination"
)

// CreateInvoiceRequest defines the data needed to create a new invoice.
// Monetary fields are supplied by the caller; the server bounds-checks them
// (see Validate) but never recomputes totals from line items.
type CreateInvoiceRequest struct {
	ClientID      string          `json:"client_id" binding:"required,uuid"`
	InvoiceNumber string          `json:"invoice_number" binding:"required,min=1"`
	IssueDate     string          `json:"issue_date" binding:"required,datetime=2006-01-02"`
	DueDate       string          `json:"due_date" binding:"required,datetime=2006-01-02"`
	Status        *string         `json:"status" binding:"omitempty,oneof=draft sent paid overdue cancelled"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	TaxRate       decimal.Decimal `json:"tax_rate"`
	TaxAmount     decimal.Decimal `json:"tax_amount"`
	Discount      decimal.Decimal `json:"discount"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	Currency      *string         `json:"currency" binding:"omitempty,len=3"`
	Notes         *string         `json:"notes"`
	Terms         *string         `json:"terms"`
}

// Validate bounds-checks the monetary fields the binding layer cannot cover.
func (r *CreateInvoiceRequest) Validate() []FieldError {
	return validateInvoiceAmounts(r.Subtotal, r.TaxRate, r.TaxAmount, r.Discount, r.TotalAmount)
}

// UpdateInvoiceRequest defines the data allowed for updating an invoice.
type UpdateInvoiceRequest struct {
	ClientID      *string          `json:"client_id" binding:"omitempty,uuid"`
	InvoiceNumber *string          `json:"invoice_number" binding:"omitempty,min=1"`
	IssueDate     *string          `json:"issue_date" binding:"omitempty,datetime=2006-01-02"`
	DueDate       *string          `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
	Status        *string          `json:"status" binding:"omitempty,oneof=draft sent paid overdue cancelled"`
	Subtotal      *decimal.Decimal `json:"subtotal"`
	TaxRate       *decimal.Decimal `json:"tax_rate"`
	TaxAmount     *decimal.Decimal `json:"tax_amount"`
	Discount      *decimal.Decimal `json:"discount"`
	TotalAmount   *decimal.Decimal `json:"total_amount"`
	Currency      *string          `json:"currency" binding:"omitempty,len=3"`
	Notes         *string          `json:"notes"`
	Terms         *string          `json:"terms"`
}

// Validate bounds-checks whichever monetary fields are present.
func (r *UpdateInvoiceRequest) Validate() []FieldError {
	var issues []FieldError
	check := func(field string, v *decimal.Decimal) {
		if v != nil && v.IsNegative() {
			issues = append(issues, FieldError{Field: field, Message: "must be greater than or equal to 0"})
		}
	}
	check("subtotal", r.Subtotal)
	check("tax_rate", r.TaxRate)
	check("tax_amount", r.TaxAmount)
	check("discount", r.Discount)
	check("total_amount", r.TotalAmount)
	return issues
}

func validateInvoiceAmounts(subtotal, taxRate, taxAmount, discount, total decimal.Decimal) []FieldError {
	var issues []FieldError
	check := func(field string, v decimal.Decimal) {
		if v.IsNegative() {
			issues = append(issues, FieldError{Field: field, Message: "must be greater than or equal to 0"})
		}
	}
	check("subtotal", subtotal)
	check("tax_rate", taxRate)
	check("tax_amount", taxAmount)
	check("discount", discount)
	check("total_amount", total)
	return issues
}

// ListInvoicesParams defines the non-pagination query filters for listing
// invoices. Date bounds are inclusive on both sides.
type ListInvoicesParams struct {
	Status        *string `form:"status" binding:"omitempty,oneof=draft sent paid overdue cancelled"`
	ClientID      *string `form:"client_id" binding:"omitempty,uuid"`
	IssueDateFrom *string `form:"issue_date_from" binding:"omitempty,datetime=2006-01-02"`
	IssueDateTo   *string `form:"issue_date_to" binding:"omitempty,datetime=2006-01-02"`
	DueDateFrom   *string `form:"due_date_from" binding:"omitempty,datetime=2006-01-02"`
	DueDateTo     *string `form:"due_date_to" binding:"omitempty,datetime=2006-01-02"`
	Search        *string `form:"search"`
}

// BulkInvoiceRequest applies one action to a set of the caller's invoices.
// IDs not owned by the caller are skipped; the response reports the count of
// rows actually affected.
type BulkInvoiceRequest struct {
	InvoiceIDs []string `json:"invoice_ids" binding:"required,min=1,dive,uuid"`
	Action     string   `json:"action" binding:"required,oneof=delete update_status"`
	Status     *string  `json:"status" binding:"omitempty,oneof=draft sent paid overdue cancelled"`
}

// BulkInvoiceResponse reports the affected row count of a bulk action.
type BulkInvoiceResponse struct {
	Affected int64 `json:"affected"`
}

// InvoiceResponse defines the data returned for an invoice.
type InvoiceResponse struct {
	InvoiceID     string          `json:"invoice_id"`
	ClientID      string          `json:"client_id"`
	InvoiceNumber string          `json:"invoice_number"`
	IssueDate     string          `json:"issue_date"`
	DueDate       string          `json:"due_date"`
	Status        string          `json:"status"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	TaxRate       decimal.Decimal `json:"tax_rate"`
	TaxAmount     decimal.Decimal `json:"tax_amount"`
	Discount      decimal.Decimal `json:"discount"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	Currency      string          `json:"currency"`
	Notes         *string         `json:"notes"`
	Terms         *string         `json:"terms"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ListInvoicesResponse wraps the invoice list with pagination metadata.
type ListInvoicesResponse struct {
	Invoices   []InvoiceResponse `json:"invoices"`
	Pagination pagination.Meta   `json:"pagination"`
}

// ToInvoiceResponse converts a domain.Invoice to InvoiceResponse DTO
func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	return InvoiceResponse{
		InvoiceID:     inv.InvoiceID,
		ClientID:      inv.ClientID,
		InvoiceNumber: inv.InvoiceNumber,
		IssueDate:     inv.IssueDate.Format(DateLayout),
		DueDate:       inv.DueDate.Format(DateLayout),
		Status:        string(inv.Status),
		Subtotal:      inv.Subtotal,
		TaxRate:       inv.TaxRate,
		TaxAmount:     inv.TaxAmount,
		Discount:      inv.Discount,
		TotalAmount:   inv.TotalAmount,
		Currency:      inv.Currency,
		Notes:         inv.Notes,
		Terms:         inv.Terms,
		CreatedAt:     inv.CreatedAt,
		UpdatedAt:     inv.LastUpdatedAt,
	}
}

// ToListInvoicesResponse converts domain invoices plus pagination into the list DTO.
func ToListInvoicesResponse(invoices []domain.Invoice, meta pagination.Meta) ListInvoicesResponse {
	res := make([]InvoiceResponse, len(invoices))
	for i, inv := range invoices {
		res[i] = ToInvoiceResponse(&inv)
	}
	return ListInvoicesResponse{Invoices: res, Pagination: meta}
}

// CreateInvoiceItemRequest defines the data for one new invoice line item.
// Amount is expected to equal quantity x rate but is not cross-checked.
type CreateInvoiceItemRequest struct {
	Description string          `json:"description" binding:"required,min=1"`
	Quantity    decimal.Decimal `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
	Amount      decimal.Decimal `json:"amount"`
}

// Validate bounds-checks the numeric fields.
func (r *CreateInvoiceItemRequest) Validate() []FieldError {
	var issues []FieldError
	if !r.Quantity.IsPositive() {
		issues = append(issues, FieldError{Field: "quantity", Message: "must be greater than 0"})
	}
	if r.Rate.IsNegative() {
		issues = append(issues, FieldError{Field: "rate", Message: "must be greater than or equal to 0"})
	}
	if r.Amount.IsNegative() {
		issues = append(issues, FieldError{Field: "amount", Message: "must be greater than or equal to 0"})
	}
	return issues
}

// UpdateInvoiceItemRequest defines the data allowed for updating a line item.
type UpdateInvoiceItemRequest struct {
	Description *string          `json:"description" binding:"omitempty,min=1"`
	Quantity    *decimal.Decimal `json:"quantity"`
	Rate        *decimal.Decimal `json:"rate"`
	Amount      *decimal.Decimal `json:"amount"`
}

// Validate bounds-checks whichever numeric fields are present.
func (r *UpdateInvoiceItemRequest) Validate() []FieldError {
	var issues []FieldError
	if r.Quantity != nil && !r.Quantity.IsPositive() {
		issues = append(issues, FieldError{Field: "quantity", Message: "must be greater than 0"})
	}
	if r.Rate != nil && r.Rate.IsNegative() {
		issues = append(issues, FieldError{Field: "rate", Message: "must be greater than or equal to 0"})
	}
	if r.Amount != nil && r.Amount.IsNegative() {
		issues = append(issues, FieldError{Field: "amount", Message: "must be greater than or equal to 0"})
	}
	return issues
}

// InvoiceItemResponse defines the data returned for a line item.
type InvoiceItemResponse struct {
	ItemID      string          `json:"item_id"`
	InvoiceID   string          `json:"invoice_id"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
	Amount      decimal.Decimal `json:"amount"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ListInvoiceItemsResponse wraps the items of one invoice.
type ListInvoiceItemsResponse struct {
	Items []InvoiceItemResponse `json:"items"`
}

// ToInvoiceItemResponse converts a domain.InvoiceItem to its DTO.
func ToInvoiceItemResponse(item *domain.InvoiceItem) InvoiceItemResponse {
	return InvoiceItemResponse{
		ItemID:      item.ItemID,
		InvoiceID:   item.InvoiceID,
		Description: item.Description,
		Quantity:    item.Quantity,
		Rate:        item.Rate,
		Amount:      item.Amount,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.LastUpdatedAt,
	}
}

// ToListInvoiceItemsResponse converts domain items into the list DTO.
func ToListInvoiceItemsResponse(items []domain.InvoiceItem) ListInvoiceItemsResponse {
	res := make([]InvoiceItemResponse, len(items))
	for i, item := range items {
		res[i] = ToInvoiceItemResponse(&item)
	}
	return ListInvoiceItemsResponse{Items: res}
}
