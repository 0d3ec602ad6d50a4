package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/invoiceflow/invoiceflow-backend/internal/apperrors"
	"github.com/invoiceflow/invoiceflow-backend/internal/core/domain"
	portsrepo "github.com/invoiceflow/invoiceflow-backend/internal/core/ports/repositories"
	"github.com/invoiceflow/invoiceflow-backend/internal/models"
	"github.com/invoiceflow/invoiceflow-backend/internal/utils/mapping"
)

const paymentColumns = `p.payment_id, p.invoice_id, p.amount, p.payment_date, p.payment_method, p.reference, p.notes,
		p.created_at, p.created_by, p.last_updated_at, p.last_updated_by`

// PgxPaymentRepository implements the payment repository ports using pgxpool.
// The payments table carries no user_id column, so every scoped query joins
// through the parent invoice.
type PgxPaymentRepository struct {
	BaseRepository
}

// newPgxPaymentRepository creates a new repository for payment data.
func newPgxPaymentRepository(pool *pgxpool.Pool) portsrepo.PaymentRepositoryFacade {
	return &PgxPaymentRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.PaymentRepositoryFacade = (*PgxPaymentRepository)(nil)

func scanPayment(row pgx.Row) (models.Payment, error) {
	var m models.Payment
	err := row.Scan(
		&m.PaymentID, &m.InvoiceID, &m.Amount, &m.PaymentDate, &m.Method, &m.Reference, &m.Notes,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

// SavePayment persists a new payment row. Parent invoice ownership must have
// been verified by the caller.
func (r *PgxPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) error {
	m := mapping.ToModelPayment(payment)

	query := `
		INSERT INTO payments (payment_id, invoice_id, amount, payment_date, payment_method, reference, notes,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`

	_, err := r.Pool.Exec(ctx, query,
		m.PaymentID, m.InvoiceID, m.Amount, m.PaymentDate, m.Method, m.Reference, m.Notes,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save payment", err)
	}
	return nil
}

// FindPaymentByID retrieves one payment whose parent invoice belongs to
// userID.
func (r *PgxPaymentRepository) FindPaymentByID(ctx context.Context, userID, paymentID string) (*domain.Payment, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM payments p
		JOIN invoices i ON i.invoice_id = p.invoice_id
		WHERE p.payment_id = $1 AND i.user_id = $2;
	`

	m, err := scanPayment(r.Pool.QueryRow(ctx, query, paymentID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find payment by ID", err)
	}

	d := mapping.ToDomainPayment(m)
	return &d, nil
}

// FindPayments retrieves a filtered, paginated list of the user's payments
// together with the total row count for the filter.
func (r *PgxPaymentRepository) FindPayments(ctx context.Context, userID string, filter portsrepo.PaymentListFilter) ([]domain.Payment, int, error) {
	baseQuery := `FROM payments p JOIN invoices i ON i.invoice_id = p.invoice_id WHERE i.user_id = $1`
	args := []interface{}{userID}
	argNum := 2

	if filter.InvoiceID != nil {
		baseQuery += fmt.Sprintf(" AND p.invoice_id = $%d", argNum)
		args = append(args, *filter.InvoiceID)
		argNum++
	}

	if filter.Method != nil {
		baseQuery += fmt.Sprintf(" AND p.payment_method = $%d", argNum)
		args = append(args, string(*filter.Method))
		argNum++
	}

	if filter.DateFrom != nil {
		baseQuery += fmt.Sprintf(" AND p.payment_date >= $%d", argNum)
		args = append(args, *filter.DateFrom)
		argNum++
	}

	if filter.DateTo != nil {
		baseQuery += fmt.Sprintf(" AND p.payment_date <= $%d", argNum)
		args = append(args, *filter.DateTo)
		argNum++
	}

	var total int
	countQuery := "SELECT COUNT(*) " + baseQuery
	if err := r.Pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to count payments", err)
	}

	if total == 0 {
		return []domain.Payment{}, 0, nil
	}

	baseQuery += " ORDER BY p.payment_date DESC, p.created_at DESC"
	baseQuery += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argNum, argNum+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.Pool.Query(ctx, "SELECT "+paymentColumns+" "+baseQuery, args...)
	if err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to list payments", err)
	}
	defer rows.Close()

	var modelPayments []models.Payment
	for rows.Next() {
		m, err := scanPayment(rows)
		if err != nil {
			return nil, 0, apperrors.NewAppError(500, "failed to scan payment", err)
		}
		modelPayments = append(modelPayments, m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, apperrors.NewAppError(500, "error iterating payments", err)
	}

	return mapping.ToDomainPaymentSlice(modelPayments), total, nil
}

// UpdatePayment updates a payment whose parent invoice belongs to userID.
func (r *PgxPaymentRepository) UpdatePayment(ctx context.Context, userID string, payment domain.Payment) error {
	m := mapping.ToModelPayment(payment)

	query := `
		UPDATE payments p SET
			amount = $1,
			payment_date = $2,
			payment_method = $3,
			reference = $4,
			notes = $5,
			last_updated_at = $6,
			last_updated_by = $7
		FROM invoices i
		WHERE p.invoice_id = i.invoice_id AND p.payment_id = $8 AND i.user_id = $9;
	`

	tag, err := r.Pool.Exec(ctx, query,
		m.Amount, m.PaymentDate, m.Method, m.Reference, m.Notes,
		m.LastUpdatedAt, m.LastUpdatedBy,
		m.PaymentID, userID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update payment", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeletePayment removes a payment whose parent invoice belongs to userID.
func (r *PgxPaymentRepository) DeletePayment(ctx context.Context, userID, paymentID string) error {
	query := `
		DELETE FROM payments p
		USING invoices i
		WHERE p.invoice_id = i.invoice_id AND p.payment_id = $1 AND i.user_id = $2;
	`

	tag, err := r.Pool.Exec(ctx, query, paymentID, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete payment", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
