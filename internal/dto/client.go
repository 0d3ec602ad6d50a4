package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/invoiceflow/invoiceflow-backend/internal/core/domain"
	"github.com/invoiceflow/invoiceflow-backend/internal/utils/pagination"
)

// CreateClientRequest defines the data needed to create a new client.
// Optional email/website fields accept the empty string, which is normalized
// to null before persistence.
type CreateClientRequest struct {
	CompanyName      string  `json:"company_name" binding:"required,min=1"`
	ContactName      *string `json:"contact_name"`
	Email            *string `json:"email" binding:"omitempty,email"`
	Phone            *string `json:"phone"`
	Website          *string `json:"website" binding:"omitempty,url"`
	Address          *string `json:"address"`
	Status           *string `json:"status" binding:"omitempty,oneof=active inactive pending"`
	BillingFrequency *string `json:"billing_frequency" binding:"omitempty,oneof=monthly quarterly annually one-time"`
	Notes            *string `json:"notes"`
}

// UpdateClientRequest defines the data allowed for updating a client.
// Pointers distinguish omitted fields from zero-value updates.
type UpdateClientRequest struct {
	CompanyName      *string `json:"company_name" binding:"omitempty,min=1"`
	ContactName      *string `json:"contact_name"`
	Email            *string `json:"email" binding:"omitempty,email"`
	Phone            *string `json:"phone"`
	Website          *string `json:"website" binding:"omitempty,url"`
	Address          *string `json:"address"`
	Status           *string `json:"status" binding:"omitempty,oneof=active inactive pending"`
	BillingFrequency *string `json:"billing_frequency" binding:"omitempty,oneof=monthly quarterly annually one-time"`
	Notes            *string `json:"notes"`
}

// ListClientsParams defines the non-pagination query filters for listing
// clients. page/limit are handled separately with fallback defaults.
type ListClientsParams struct {
	Status *string `form:"status" binding:"omitempty,oneof=active inactive pending"`
	Search *string `form:"search"`
}

// ClientResponse defines the data returned for a client.
type ClientResponse struct {
	ClientID           string          `json:"client_id"`
	CompanyName        string          `json:"company_name"`
	ContactName        *string         `json:"contact_name"`
	Email              *string         `json:"email"`
	Phone              *string         `json:"phone"`
	Website            *string         `json:"website"`
	Address            *string         `json:"address"`
	Status             string          `json:"status"`
	BillingFrequency   string          `json:"billing_frequency"`
	TotalBilled        decimal.Decimal `json:"total_billed"`
	OutstandingBalance decimal.Decimal `json:"outstanding_balance"`
	Notes              *string         `json:"notes"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// ListClientsResponse wraps the client list with pagination metadata.
type ListClientsResponse struct {
	Clients    []ClientResponse `json:"clients"`
	Pagination pagination.Meta  `json:"pagination"`
}

// ToClientResponse converts a domain.Client to ClientResponse DTO
func ToClientResponse(c *domain.Client) ClientResponse {
	return ClientResponse{
		ClientID:           c.ClientID,
		CompanyName:        c.CompanyName,
		ContactName:        c.ContactName,
		Email:              c.Email,
		Phone:              c.Phone,
		Website:            c.Website,
		Address:            c.Address,
		Status:             string(c.Status),
		BillingFrequency:   string(c.BillingFrequency),
		TotalBilled:        c.TotalBilled,
		OutstandingBalance: c.OutstandingBalance,
		Notes:              c.Notes,
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.LastUpdatedAt,
	}
}

// ToListClientsResponse converts domain clients plus pagination into the list DTO.
func ToListClientsResponse(clients []domain.Client, meta pagination.Meta) ListClientsResponse {
	res := make([]ClientResponse, len(clients))
	for i, c := range clients {
		res[i] = ToClientResponse(&c)
	}
	return ListClientsResponse{Clients: res, Pagination: meta}
}
