package repositories

import (
	"context"
	"time"

	"github.com/invoiceflow/invoiceflow-backend/internal/core/domain"
)

// InvoiceListFilter holds the optional filters and pagination window for
// listing a user's invoices. Date bounds are inclusive.
type InvoiceListFilter struct {
	Status        *domain.InvoiceStatus
	ClientID      *string
	IssueDateFrom *time.Time
	IssueDateTo   *time.Time
	DueDateFrom   *time.Time
	DueDateTo     *time.Time
	Search        *string
	Limit         int
	Offset        int
}

// InvoiceReader defines read operations for invoice data.
type InvoiceReader interface {
	// FindInvoiceByID retrieves one invoice owned by userID.
	FindInvoiceByID(ctx context.Context, userID, invoiceID string) (*domain.Invoice, error)

	// FindInvoiceByNumber retrieves the user's invoice with the given number,
	// used for duplicate checks on create.
	FindInvoiceByNumber(ctx context.Context, userID, invoiceNumber string) (*domain.Invoice, error)

	// FindInvoices retrieves a filtered, paginated list of the user's
	// invoices together with the total row count for the filter.
	FindInvoices(ctx context.Context, userID string, filter InvoiceListFilter) ([]domain.Invoice, int, error)
}

// InvoiceWriter defines write operations for invoice data.
type InvoiceWriter interface {
	// SaveInvoice persists a new invoice.
	SaveInvoice(ctx context.Context, invoice domain.Invoice) error

	// UpdateInvoice updates an existing invoice, matching on both invoice ID
	// and owner ID.
	UpdateInvoice(ctx context.Context, invoice domain.Invoice) error

	// DeleteInvoice removes an invoice owned by userID.
	DeleteInvoice(ctx context.Context, userID, invoiceID string) error

	// BulkDeleteInvoices removes every listed invoice that belongs to userID
	// and reports how many rows were actually deleted.
	BulkDeleteInvoices(ctx context.Context, userID string, invoiceIDs []string) (int64, error)

	// BulkUpdateInvoiceStatus sets the status on every listed invoice that
	// belongs to userID and reports how many rows were actually updated.
	BulkUpdateInvoiceStatus(ctx context.Context, userID string, invoiceIDs []string, status domain.InvoiceStatus, updatedBy string) (int64, error)
}

// InvoiceItemRepository defines operations for invoice line items. Items
// carry no owner column; callers must verify parent invoice ownership before
// invoking any of these.
type InvoiceItemRepository interface {
	// FindItemsByInvoiceID lists the items of one invoice.
	FindItemsByInvoiceID(ctx context.Context, invoiceID string) ([]domain.InvoiceItem, error)

	// FindInvoiceItemByID retrieves one item scoped to its parent invoice.
	FindInvoiceItemByID(ctx context.Context, invoiceID, itemID string) (*domain.InvoiceItem, error)

	// SaveInvoiceItem persists a new item.
	SaveInvoiceItem(ctx context.Context, item domain.InvoiceItem) error

	// UpdateInvoiceItem updates an existing item scoped to its parent invoice.
	UpdateInvoiceItem(ctx context.Context, item domain.InvoiceItem) error

	// DeleteInvoiceItem removes an item scoped to its parent invoice.
	DeleteInvoiceItem(ctx context.Context, invoiceID, itemID string) error
}

// InvoiceRepositoryFacade combines all invoice repository interfaces.
type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceWriter
	InvoiceItemRepository
}
