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

const clientColumns = `client_id, user_id, company_name, contact_name, email, phone, website, address,
		status, billing_frequency, total_billed, outstanding_balance, notes,
		created_at, created_by, last_updated_at, last_updated_by`

// PgxClientRepository implements the client repository ports using pgxpool.
type PgxClientRepository struct {
	BaseRepository
}

// newPgxClientRepository creates a new repository for client data.
func newPgxClientRepository(pool *pgxpool.Pool) portsrepo.ClientRepositoryFacade {
	return &PgxClientRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ClientRepositoryFacade = (*PgxClientRepository)(nil)

func scanClient(row pgx.Row) (models.Client, error) {
	var m models.Client
	err := row.Scan(
		&m.ClientID, &m.UserID, &m.CompanyName, &m.ContactName, &m.Email, &m.Phone, &m.Website, &m.Address,
		&m.Status, &m.BillingFrequency, &m.TotalBilled, &m.OutstandingBalance, &m.Notes,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

// SaveClient persists a new client row.
func (r *PgxClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	m := mapping.ToModelClient(client)

	query := `
		INSERT INTO clients (` + clientColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`

	_, err := r.Pool.Exec(ctx, query,
		m.ClientID, m.UserID, m.CompanyName, m.ContactName, m.Email, m.Phone, m.Website, m.Address,
		m.Status, m.BillingFrequency, m.TotalBilled, m.OutstandingBalance, m.Notes,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save client", err)
	}
	return nil
}

// FindClientByID retrieves one client owned by userID.
func (r *PgxClientRepository) FindClientByID(ctx context.Context, userID, clientID string) (*domain.Client, error) {
	query := `
		SELECT ` + clientColumns + `
		FROM clients
		WHERE client_id = $1 AND user_id = $2;
	`

	m, err := scanClient(r.Pool.QueryRow(ctx, query, clientID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find client by ID", err)
	}

	d := mapping.ToDomainClient(m)
	return &d, nil
}

// FindClients retrieves a filtered, paginated list of the user's clients
// together with the total row count for the filter.
func (r *PgxClientRepository) FindClients(ctx context.Context, userID string, filter portsrepo.ClientListFilter) ([]domain.Client, int, error) {
	baseQuery := `FROM clients WHERE user_id = $1`
	args := []interface{}{userID}
	argNum := 2

	if filter.Status != nil {
		baseQuery += fmt.Sprintf(" AND status = $%d", argNum)
		args = append(args, string(*filter.Status))
		argNum++
	}

	if filter.Search != nil && *filter.Search != "" {
		baseQuery += fmt.Sprintf(" AND (company_name ILIKE $%d OR contact_name ILIKE $%d OR email ILIKE $%d)", argNum, argNum, argNum)
		args = append(args, "%"+*filter.Search+"%")
		argNum++
	}

	var total int
	countQuery := "SELECT COUNT(*) " + baseQuery
	if err := r.Pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to count clients", err)
	}

	if total == 0 {
		return []domain.Client{}, 0, nil
	}

	baseQuery += " ORDER BY company_name"
	baseQuery += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argNum, argNum+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.Pool.Query(ctx, "SELECT "+clientColumns+" "+baseQuery, args...)
	if err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to list clients", err)
	}
	defer rows.Close()

	var modelClients []models.Client
	for rows.Next() {
		m, err := scanClient(rows)
		if err != nil {
			return nil, 0, apperrors.NewAppError(500, "failed to scan client", err)
		}
		modelClients = append(modelClients, m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, apperrors.NewAppError(500, "error iterating clients", err)
	}

	return mapping.ToDomainClientSlice(modelClients), total, nil
}

// UpdateClient updates an existing client, matching on both client ID and
// owner ID.
func (r *PgxClientRepository) UpdateClient(ctx context.Context, client domain.Client) error {
	m := mapping.ToModelClient(client)

	query := `
		UPDATE clients SET
			company_name = $1,
			contact_name = $2,
			email = $3,
			phone = $4,
			website = $5,
			address = $6,
			status = $7,
			billing_frequency = $8,
			total_billed = $9,
			outstanding_balance = $10,
			notes = $11,
			last_updated_at = $12,
			last_updated_by = $13
		WHERE client_id = $14 AND user_id = $15;
	`

	tag, err := r.Pool.Exec(ctx, query,
		m.CompanyName, m.ContactName, m.Email, m.Phone, m.Website, m.Address,
		m.Status, m.BillingFrequency, m.TotalBilled, m.OutstandingBalance, m.Notes,
		m.LastUpdatedAt, m.LastUpdatedBy,
		m.ClientID, m.UserID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update client", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteClient removes a client owned by userID.
func (r *PgxClientRepository) DeleteClient(ctx context.Context, userID, clientID string) error {
	query := `DELETE FROM clients WHERE client_id = $1 AND user_id = $2;`

	tag, err := r.Pool.Exec(ctx, query, clientID, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete client", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
