package services

import (
	"context"

	"github.com/invoiceflow/invoiceflow-backend/internal/core/domain"
	"github.com/invoiceflow/invoiceflow-backend/internal/dto"
	"github.com/invoiceflow/invoiceflow-backend/internal/utils/pagination"
)

// ClientSvcFacade defines the business operations on clients. Every method
// takes the requesting user's ID and scopes all access to it.
type ClientSvcFacade interface {
	CreateClient(ctx context.Context, userID string, req dto.CreateClientRequest) (*domain.Client, error)
	GetClientByID(ctx context.Context, userID, clientID string) (*domain.Client, error)
	ListClients(ctx context.Context, userID string, params dto.ListClientsParams, page pagination.Params) ([]domain.Client, pagination.Meta, error)
	UpdateClient(ctx context.Context, userID, clientID string, req dto.UpdateClientRequest) (*domain.Client, error)
	DeleteClient(ctx context.Context, userID, clientID string) error
}
