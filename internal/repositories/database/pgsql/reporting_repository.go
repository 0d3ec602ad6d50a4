package pgsql

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/invoiceflow/invoiceflow-backend/internal/apperrors"
	"github.com/invoiceflow/invoiceflow-backend/internal/core/domain"
	portsrepo "github.com/invoiceflow/invoiceflow-backend/internal/core/ports/repositories"
)

// PgxReportingRepository implements the reporting read queries using pgxpool.
// These return raw rows; all aggregation happens in the reporting service.
type PgxReportingRepository struct {
	BaseRepository
}

// newPgxReportingRepository creates a new repository for report queries.
func newPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepositoryFacade {
	return &PgxReportingRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ReportingRepositoryFacade = (*PgxReportingRepository)(nil)

// GetInvoicesWithClient retrieves the user's invoices in the inclusive
// issue-date range, joined with each invoice's client company name.
func (r *PgxReportingRepository) GetInvoicesWithClient(ctx context.Context, userID string, from, to time.Time) ([]domain.ReportInvoice, error) {
	query := `
		SELECT i.invoice_id, c.company_name, i.status, i.total_amount, i.issue_date
		FROM invoices i
		JOIN clients c ON c.client_id = i.client_id
		WHERE i.user_id = $1 AND i.issue_date >= $2 AND i.issue_date <= $3
		ORDER BY i.issue_date;
	`

	rows, err := r.Pool.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query invoices for report", err)
	}
	defer rows.Close()

	var invoices []domain.ReportInvoice
	for rows.Next() {
		var inv domain.ReportInvoice
		var status string
		if err := rows.Scan(&inv.InvoiceID, &inv.ClientName, &status, &inv.TotalAmount, &inv.IssueDate); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan report invoice", err)
		}
		inv.Status = domain.InvoiceStatus(status)
		invoices = append(invoices, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating report invoices", err)
	}

	return invoices, nil
}

// GetClientCreationDates retrieves the creation timestamps of all of the
// user's clients.
func (r *PgxReportingRepository) GetClientCreationDates(ctx context.Context, userID string) ([]time.Time, error) {
	query := `SELECT created_at FROM clients WHERE user_id = $1 ORDER BY created_at;`

	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query client creation dates", err)
	}
	defer rows.Close()

	var dates []time.Time
	for rows.Next() {
		var t time.Time
		if err := rows.Scan(&t); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan client creation date", err)
		}
		dates = append(dates, t)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating client creation dates", err)
	}

	return dates, nil
}
