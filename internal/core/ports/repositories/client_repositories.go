package repositories

import (
	"context"

	"github.com/invoiceflow/invoiceflow-backend/internal/core/domain"
)

// ClientListFilter holds the optional filters and pagination window for
// listing a user's clients.
type ClientListFilter struct {
	Status *domain.ClientStatus
	Search *string
	Limit  int
	Offset int
}

// ClientReader defines read operations for client data. Every query is
// scoped by the owning user's ID.
type ClientReader interface {
	// FindClientByID retrieves one client owned by userID.
	FindClientByID(ctx context.Context, userID, clientID string) (*domain.Client, error)

	// FindClients retrieves a filtered, paginated list of the user's clients
	// together with the total row count for the filter.
	FindClients(ctx context.Context, userID string, filter ClientListFilter) ([]domain.Client, int, error)
}

// ClientWriter defines write operations for client data.
type ClientWriter interface {
	// SaveClient persists a new client.
	SaveClient(ctx context.Context, client domain.Client) error

	// UpdateClient updates an existing client, matching on both client ID and
	// owner ID.
	UpdateClient(ctx context.Context, client domain.Client) error

	// DeleteClient removes a client owned by userID.
	DeleteClient(ctx context.Context, userID, clientID string) error
}

// ClientRepositoryFacade combines all client repository interfaces.
type ClientRepositoryFacade interface {
	ClientReader
	ClientWriter
}
