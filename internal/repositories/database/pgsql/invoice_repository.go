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

const invoiceColumns = `invoice_id, user_id, client_id, invoice_number, issue_date, due_date, status,
		subtotal, tax_rate, tax_amount, discount, total_amount, currency, notes, terms,
		created_at, created_by, last_updated_at, last_updated_by`

const invoiceItemColumns = `item_id, invoice_id, description, quantity, rate, amount,
		created_at, created_by, last_updated_at, last_updated_by`

// PgxInvoiceRepository implements the invoice repository ports using pgxpool.
// Line items live in their own table but are managed here because every item
// operation is scoped to a parent invoice.
type PgxInvoiceRepository struct {
	BaseRepository
}

// newPgxInvoiceRepository creates a new repository for invoice data.
func newPgxInvoiceRepository(pool *pgxpool.Pool) portsrepo.InvoiceRepositoryFacade {
	return &PgxInvoiceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.InvoiceRepositoryFacade = (*PgxInvoiceRepository)(nil)

func scanInvoice(row pgx.Row) (models.Invoice, error) {
	var m models.Invoice
	err := row.Scan(
		&m.InvoiceID, &m.UserID, &m.ClientID, &m.InvoiceNumber, &m.IssueDate, &m.DueDate, &m.Status,
		&m.Subtotal, &m.TaxRate, &m.TaxAmount, &m.Discount, &m.TotalAmount, &m.Currency, &m.Notes, &m.Terms,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

func scanInvoiceItem(row pgx.Row) (models.InvoiceItem, error) {
	var m models.InvoiceItem
	err := row.Scan(
		&m.ItemID, &m.InvoiceID, &m.Description, &m.Quantity, &m.Rate, &m.Amount,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

// SaveInvoice persists a new invoice row.
func (r *PgxInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	m := mapping.ToModelInvoice(invoice)

	query := `
		INSERT INTO invoices (` + invoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19);
	`

	_, err := r.Pool.Exec(ctx, query,
		m.InvoiceID, m.UserID, m.ClientID, m.InvoiceNumber, m.IssueDate, m.DueDate, m.Status,
		m.Subtotal, m.TaxRate, m.TaxAmount, m.Discount, m.TotalAmount, m.Currency, m.Notes, m.Terms,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewDuplicateError("invoice number " + invoice.InvoiceNumber + " already exists")
		}
		return apperrors.NewAppError(500, "failed to save invoice", err)
	}
	return nil
}

// FindInvoiceByID retrieves one invoice owned by userID.
func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, userID, invoiceID string) (*domain.Invoice, error) {
	query := `
		SELECT ` + invoiceColumns + `
		FROM invoices
		WHERE invoice_id = $1 AND user_id = $2;
	`

	m, err := scanInvoice(r.Pool.QueryRow(ctx, query, invoiceID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find invoice by ID", err)
	}

	d := mapping.ToDomainInvoice(m)
	return &d, nil
}

// FindInvoiceByNumber retrieves the user's invoice with the given number.
func (r *PgxInvoiceRepository) FindInvoiceByNumber(ctx context.Context, userID, invoiceNumber string) (*domain.Invoice, error) {
	query := `
		SELECT ` + invoiceColumns + `
		FROM invoices
		WHERE invoice_number = $1 AND user_id = $2;
	`

	m, err := scanInvoice(r.Pool.QueryRow(ctx, query, invoiceNumber, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find invoice by number", err)
	}

	d := mapping.ToDomainInvoice(m)
	return &d, nil
}

// FindInvoices retrieves a filtered, paginated list of the user's invoices
// together with the total row count for the filter.
func (r *PgxInvoiceRepository) FindInvoices(ctx context.Context, userID string, filter portsrepo.InvoiceListFilter) ([]domain.Invoice, int, error) {
	baseQuery := `FROM invoices WHERE user_id = $1`
	args := []interface{}{userID}
	argNum := 2

	if filter.Status != nil {
		baseQuery += fmt.Sprintf(" AND status = $%d", argNum)
		args = append(args, string(*filter.Status))
		argNum++
	}

	if filter.ClientID != nil {
		baseQuery += fmt.Sprintf(" AND client_id = $%d", argNum)
		args = append(args, *filter.ClientID)
		argNum++
	}

	if filter.IssueDateFrom != nil {
		baseQuery += fmt.Sprintf(" AND issue_date >= $%d", argNum)
		args = append(args, *filter.IssueDateFrom)
		argNum++
	}

	if filter.IssueDateTo != nil {
		baseQuery += fmt.Sprintf(" AND issue_date <= $%d", argNum)
		args = append(args, *filter.IssueDateTo)
		argNum++
	}

	if filter.DueDateFrom != nil {
		baseQuery += fmt.Sprintf(" AND due_date >= $%d", argNum)
		args = append(args, *filter.DueDateFrom)
		argNum++
	}

	if filter.DueDateTo != nil {
		baseQuery += fmt.Sprintf(" AND due_date <= $%d", argNum)
		args = append(args, *filter.DueDateTo)
		argNum++
	}

	if filter.Search != nil && *filter.Search != "" {
		baseQuery += fmt.Sprintf(" AND (invoice_number ILIKE $%d OR notes ILIKE $%d)", argNum, argNum)
		args = append(args, "%"+*filter.Search+"%")
		argNum++
	}

	var total int
	countQuery := "SELECT COUNT(*) " + baseQuery
	if err := r.Pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to count invoices", err)
	}

	if total == 0 {
		return []domain.Invoice{}, 0, nil
	}

	baseQuery += " ORDER BY issue_date DESC, invoice_number DESC"
	baseQuery += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argNum, argNum+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.Pool.Query(ctx, "SELECT "+invoiceColumns+" "+baseQuery, args...)
	if err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to list invoices", err)
	}
	defer rows.Close()

	var modelInvoices []models.Invoice
	for rows.Next() {
		m, err := scanInvoice(rows)
		if err != nil {
			return nil, 0, apperrors.NewAppError(500, "failed to scan invoice", err)
		}
		modelInvoices = append(modelInvoices, m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, apperrors.NewAppError(500, "error iterating invoices", err)
	}

	return mapping.ToDomainInvoiceSlice(modelInvoices), total, nil
}

// UpdateInvoice updates an existing invoice, matching on both invoice ID and
// owner ID.
func (r *PgxInvoiceRepository) UpdateInvoice(ctx context.Context, invoice domain.Invoice) error {
	m := mapping.ToModelInvoice(invoice)

	query := `
		UPDATE invoices SET
			client_id = $1,
			invoice_number = $2,
			issue_date = $3,
			due_date = $4,
			status = $5,
			subtotal = $6,
			tax_rate = $7,
			tax_amount = $8,
			discount = $9,
			total_amount = $10,
			currency = $11,
			notes = $12,
			terms = $13,
			last_updated_at = $14,
			last_updated_by = $15
		WHERE invoice_id = $16 AND user_id = $17;
	`

	tag, err := r.Pool.Exec(ctx, query,
		m.ClientID, m.InvoiceNumber, m.IssueDate, m.DueDate, m.Status,
		m.Subtotal, m.TaxRate, m.TaxAmount, m.Discount, m.TotalAmount, m.Currency, m.Notes, m.Terms,
		m.LastUpdatedAt, m.LastUpdatedBy,
		m.InvoiceID, m.UserID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewDuplicateError("invoice number " + invoice.InvoiceNumber + " already exists")
		}
		return apperrors.NewAppError(500, "failed to update invoice", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteInvoice removes an invoice owned by userID. Line items and payments
// go with it via ON DELETE CASCADE.
func (r *PgxInvoiceRepository) DeleteInvoice(ctx context.Context, userID, invoiceID string) error {
	query := `DELETE FROM invoices WHERE invoice_id = $1 AND user_id = $2;`

	tag, err := r.Pool.Exec(ctx, query, invoiceID, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete invoice", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// BulkDeleteInvoices removes every listed invoice that belongs to userID and
// reports how many rows were actually deleted. IDs belonging to other users
// are silently skipped by the ownership filter.
func (r *PgxInvoiceRepository) BulkDeleteInvoices(ctx context.Context, userID string, invoiceIDs []string) (int64, error) {
	query := `DELETE FROM invoices WHERE user_id = $1 AND invoice_id = ANY($2);`

	tag, err := r.Pool.Exec(ctx, query, userID, invoiceIDs)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to bulk delete invoices", err)
	}
	return tag.RowsAffected(), nil
}

// BulkUpdateInvoiceStatus sets the status on every listed invoice that
// belongs to userID and reports how many rows were actually updated.
func (r *PgxInvoiceRepository) BulkUpdateInvoiceStatus(ctx context.Context, userID string, invoiceIDs []string, status domain.InvoiceStatus, updatedBy string) (int64, error) {
	query := `
		UPDATE invoices
		SET status = $1, last_updated_at = now(), last_updated_by = $2
		WHERE user_id = $3 AND invoice_id = ANY($4);
	`

	tag, err := r.Pool.Exec(ctx, query, string(status), updatedBy, userID, invoiceIDs)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to bulk update invoice status", err)
	}
	return tag.RowsAffected(), nil
}

// FindItemsByInvoiceID lists the items of one invoice in insertion order.
func (r *PgxInvoiceRepository) FindItemsByInvoiceID(ctx context.Context, invoiceID string) ([]domain.InvoiceItem, error) {
	query := `
		SELECT ` + invoiceItemColumns + `
		FROM invoice_items
		WHERE invoice_id = $1
		ORDER BY created_at;
	`

	rows, err := r.Pool.Query(ctx, query, invoiceID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list invoice items", err)
	}
	defer rows.Close()

	var modelItems []models.InvoiceItem
	for rows.Next() {
		m, err := scanInvoiceItem(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan invoice item", err)
		}
		modelItems = append(modelItems, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating invoice items", err)
	}

	return mapping.ToDomainInvoiceItemSlice(modelItems), nil
}

// FindInvoiceItemByID retrieves one item scoped to its parent invoice.
func (r *PgxInvoiceRepository) FindInvoiceItemByID(ctx context.Context, invoiceID, itemID string) (*domain.InvoiceItem, error) {
	query := `
		SELECT ` + invoiceItemColumns + `
		FROM invoice_items
		WHERE item_id = $1 AND invoice_id = $2;
	`

	m, err := scanInvoiceItem(r.Pool.QueryRow(ctx, query, itemID, invoiceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find invoice item by ID", err)
	}

	d := mapping.ToDomainInvoiceItem(m)
	return &d, nil
}

// SaveInvoiceItem persists a new line item.
func (r *PgxInvoiceRepository) SaveInvoiceItem(ctx context.Context, item domain.InvoiceItem) error {
	m := mapping.ToModelInvoiceItem(item)

	query := `
		INSERT INTO invoice_items (` + invoiceItemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`

	_, err := r.Pool.Exec(ctx, query,
		m.ItemID, m.InvoiceID, m.Description, m.Quantity, m.Rate, m.Amount,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save invoice item", err)
	}
	return nil
}

// UpdateInvoiceItem updates an existing item scoped to its parent invoice.
func (r *PgxInvoiceRepository) UpdateInvoiceItem(ctx context.Context, item domain.InvoiceItem) error {
	m := mapping.ToModelInvoiceItem(item)

	query := `
		UPDATE invoice_items SET
			description = $1,
			quantity = $2,
			rate = $3,
			amount = $4,
			last_updated_at = $5,
			last_updated_by = $6
		WHERE item_id = $7 AND invoice_id = $8;
	`

	tag, err := r.Pool.Exec(ctx, query,
		m.Description, m.Quantity, m.Rate, m.Amount,
		m.LastUpdatedAt, m.LastUpdatedBy,
		m.ItemID, m.InvoiceID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update invoice item", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteInvoiceItem removes an item scoped to its parent invoice.
func (r *PgxInvoiceRepository) DeleteInvoiceItem(ctx context.Context, invoiceID, itemID string) error {
	query := `DELETE FROM invoice_items WHERE item_id = $1 AND invoice_id = $2;`

	tag, err := r.Pool.Exec(ctx, query, itemID, invoiceID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete invoice item", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
