package repositories

import (
	"context"
	"time"

	"github.com/invoiceflow/invoiceflow-backend/internal/core/domain"
)

// ReportingRepositoryFacade defines the read queries backing the reports
// endpoint. Results are aggregated in memory by the reporting service.
type ReportingRepositoryFacade interface {
	// GetInvoicesWithClient retrieves the user's invoices in the inclusive
	// issue-date range, joined with each invoice's client company name.
	GetInvoicesWithClient(ctx context.Context, userID string, from, to time.Time) ([]domain.ReportInvoice, error)

	// GetClientCreationDates retrieves the creation timestamps of all of the
	// user's clients, used for the new/cumulative client growth series.
	GetClientCreationDates(ctx context.Context, userID string) ([]time.Time, error)
}
