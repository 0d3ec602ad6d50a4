package repositories

import (
	"context"
	"time"

	"github.com/invoiceflow/invoiceflow-backend/internal/core/domain"
)

// PaymentListFilter holds the optional filters and pagination window for
// listing payments. Date bounds are inclusive.
type PaymentListFilter struct {
	InvoiceID *string
	Method    *domain.PaymentMethod
	DateFrom  *time.Time
	DateTo    *time.Time
	Limit     int
	Offset    int
}

// PaymentReader defines read operations for payment data. Payments have no
// owner column; reads join through the parent invoice's user_id.
type PaymentReader interface {
	// FindPaymentByID retrieves one payment whose parent invoice belongs to
	// userID.
	FindPaymentByID(ctx context.Context, userID, paymentID string) (*domain.Payment, error)

	// FindPayments retrieves a filtered, paginated list of the user's
	// payments together with the total row count for the filter.
	FindPayments(ctx context.Context, userID string, filter PaymentListFilter) ([]domain.Payment, int, error)
}

// PaymentWriter defines write operations for payment data.
type PaymentWriter interface {
	// SavePayment persists a new payment. Parent invoice ownership must have
	// been verified by the caller.
	SavePayment(ctx context.Context, payment domain.Payment) error

	// UpdatePayment updates a payment whose parent invoice belongs to userID.
	UpdatePayment(ctx context.Context, userID string, payment domain.Payment) error

	// DeletePayment removes a payment whose parent invoice belongs to userID.
	DeletePayment(ctx context.Context, userID, paymentID string) error
}

// PaymentRepositoryFacade combines all payment repository interfaces.
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
}
