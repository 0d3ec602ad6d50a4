package services

import (
	"context"

	"github.com/invoiceflow/invoiceflow-backend/internal/core/domain"
	"github.com/invoiceflow/invoiceflow-backend/internal/dto"
	"github.com/invoiceflow/invoiceflow-backend/internal/utils/pagination"
)

// InvoiceSvcFacade defines the business operations on invoices and their
// line items. Line-item operations verify parent invoice ownership before
// touching the child rows.
type InvoiceSvcFacade interface {
	CreateInvoice(ctx context.Context, userID string, req dto.CreateInvoiceRequest) (*domain.Invoice, error)
	GetInvoiceByID(ctx context.Context, userID, invoiceID string) (*domain.Invoice, error)
	ListInvoices(ctx context.Context, userID string, params dto.ListInvoicesParams, page pagination.Params) ([]domain.Invoice, pagination.Meta, error)
	UpdateInvoice(ctx context.Context, userID, invoiceID string, req dto.UpdateInvoiceRequest) (*domain.Invoice, error)
	DeleteInvoice(ctx context.Context, userID, invoiceID string) error
	BulkAction(ctx context.Context, userID string, req dto.BulkInvoiceRequest) (int64, error)

	ListInvoiceItems(ctx context.Context, userID, invoiceID string) ([]domain.InvoiceItem, error)
	CreateInvoiceItem(ctx context.Context, userID, invoiceID string, req dto.CreateInvoiceItemRequest) (*domain.InvoiceItem, error)
	UpdateInvoiceItem(ctx context.Context, userID, invoiceID, itemID string, req dto.UpdateInvoiceItemRequest) (*domain.InvoiceItem, error)
	DeleteInvoiceItem(ctx context.Context, userID, invoiceID, itemID string) error
}
