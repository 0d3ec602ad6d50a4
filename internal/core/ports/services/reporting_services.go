package services

import (
	"context"

	"github.com/invoiceflow/invoiceflow-backend/internal/core/domain"
)

// ReportingSvcFacade defines the reports aggregation. Everything is
// recomputed per request; there is no caching layer.
type ReportingSvcFacade interface {
	GenerateReport(ctx context.Context, userID string, preset domain.DateRangePreset) (*domain.Report, error)
}
