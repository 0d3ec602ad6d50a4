package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/invoiceflow/invoiceflow-backend/internal/core/domain"
	portsrepo "github.com/invoiceflow/invoiceflow-backend/internal/core/ports/repositories"
	portssvc "github.com/invoiceflow/invoiceflow-backend/internal/core/ports/services"
	"github.com/invoiceflow/invoiceflow-backend/internal/dto"
	"github.com/invoiceflow/invoiceflow-backend/internal/utils"
	"github.com/invoiceflow/invoiceflow-backend/internal/utils/pagination"
)

type clientService struct {
	BaseService
	clientRepo portsrepo.ClientRepositoryFacade
}

// NewClientService creates a new client service.
func NewClientService(clientRepo portsrepo.ClientRepositoryFacade) portssvc.ClientSvcFacade {
	return &clientService{clientRepo: clientRepo}
}

var _ portssvc.ClientSvcFacade = (*clientService)(nil)

// CreateClient persists a new client for userID. Status and billing
// frequency default to active/monthly when omitted.
func (s *clientService) CreateClient(ctx context.Context, userID string, req dto.CreateClientRequest) (*domain.Client, error) {
	now := time.Now()

	status := domain.ClientStatusActive
	if req.Status != nil {
		status = domain.ClientStatus(*req.Status)
	}
	frequency := domain.BillingMonthly
	if req.BillingFrequency != nil {
		frequency = domain.BillingFrequency(*req.BillingFrequency)
	}

	client := domain.Client{
		ClientID:         uuid.NewString(),
		UserID:           userID,
		CompanyName:      req.CompanyName,
		ContactName:      utils.NormalizeOptionalString(req.ContactName),
		Email:            utils.NormalizeOptionalString(req.Email),
		Phone:            utils.NormalizeOptionalString(req.Phone),
		Website:          utils.NormalizeOptionalString(req.Website),
		Address:          utils.NormalizeOptionalString(req.Address),
		Status:           status,
		BillingFrequency: frequency,
		Notes:            req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.clientRepo.SaveClient(ctx, client); err != nil {
		s.LogError(ctx, err, "failed to create client", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	s.LogInfo(ctx, "client created", slog.String("client_id", client.ClientID))
	return &client, nil
}

// GetClientByID retrieves one client owned by userID.
func (s *clientService) GetClientByID(ctx context.Context, userID, clientID string) (*domain.Client, error) {
	client, err := s.clientRepo.FindClientByID(ctx, userID, clientID)
	if err != nil {
		return nil, err
	}
	return client, nil
}

// ListClients retrieves a filtered page of the user's clients.
func (s *clientService) ListClients(ctx context.Context, userID string, params dto.ListClientsParams, page pagination.Params) ([]domain.Client, pagination.Meta, error) {
	filter := portsrepo.ClientListFilter{
		Search: params.Search,
		Limit:  page.Limit,
		Offset: page.Offset(),
	}
	if params.Status != nil {
		status := domain.ClientStatus(*params.Status)
		filter.Status = &status
	}

	clients, total, err := s.clientRepo.FindClients(ctx, userID, filter)
	if err != nil {
		s.LogError(ctx, err, "failed to list clients", slog.String("user_id", userID))
		return nil, pagination.Meta{}, fmt.Errorf("failed to list clients: %w", err)
	}

	return clients, pagination.NewMeta(page, total), nil
}

// UpdateClient applies the supplied fields to a client owned by userID. The
// client is fetched first so absence maps to ErrNotFound before any write.
func (s *clientService) UpdateClient(ctx context.Context, userID, clientID string, req dto.UpdateClientRequest) (*domain.Client, error) {
	client, err := s.clientRepo.FindClientByID(ctx, userID, clientID)
	if err != nil {
		return nil, err
	}

	if req.CompanyName != nil {
		client.CompanyName = *req.CompanyName
	}
	if req.ContactName != nil {
		client.ContactName = utils.NormalizeOptionalString(req.ContactName)
	}
	if req.Email != nil {
		client.Email = utils.NormalizeOptionalString(req.Email)
	}
	if req.Phone != nil {
		client.Phone = utils.NormalizeOptionalString(req.Phone)
	}
	if req.Website != nil {
		client.Website = utils.NormalizeOptionalString(req.Website)
	}
	if req.Address != nil {
		client.Address = utils.NormalizeOptionalString(req.Address)
	}
	if req.Status != nil {
		client.Status = domain.ClientStatus(*req.Status)
	}
	if req.BillingFrequency != nil {
		client.BillingFrequency = domain.BillingFrequency(*req.BillingFrequency)
	}
	if req.Notes != nil {
		client.Notes = req.Notes
	}
	client.LastUpdatedAt = time.Now()
	client.LastUpdatedBy = userID

	if err := s.clientRepo.UpdateClient(ctx, *client); err != nil {
		s.LogError(ctx, err, "failed to update client", slog.String("client_id", clientID))
		return nil, err
	}

	return client, nil
}

// DeleteClient removes a client owned by userID.
func (s *clientService) DeleteClient(ctx context.Context, userID, clientID string) error {
	if err := s.clientRepo.DeleteClient(ctx, userID, clientID); err != nil {
		return err
	}
	s.LogInfo(ctx, "client deleted", slog.String("client_id", clientID))
	return nil
}
