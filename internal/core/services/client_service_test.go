package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/invoiceflow/invoiceflow-backend/internal/apperrors"
	"github.com/invoiceflow/invoiceflow-backend/internal/core/domain"
	portsrepo "github.com/invoiceflow/invoiceflow-backend/internal/core/ports/repositories"
	portssvc "github.com/invoiceflow/invoiceflow-backend/internal/core/ports/services"
	"github.com/invoiceflow/invoiceflow-backend/internal/core/services"
	"github.com/invoiceflow/invoiceflow-backend/internal/dto"
	"github.com/invoiceflow/invoiceflow-backend/internal/utils/pagination"
)

// --- Mock ClientRepository ---
type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) FindClientByID(ctx context.Context, userID, clientID string) (*domain.Client, error) {
	args := m.Called(ctx, userID, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientRepository) FindClients(ctx context.Context, userID string, filter portsrepo.ClientListFilter) ([]domain.Client, int, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Client), args.Int(1), args.Error(2)
}

func (m *MockClientRepository) UpdateClient(ctx context.Context, client domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) DeleteClient(ctx context.Context, userID, clientID string) error {
	args := m.Called(ctx, userID, clientID)
	return args.Error(0)
}

// --- Test Suite ---
type ClientServiceTestSuite struct {
	suite.Suite
	mockRepo *MockClientRepository
	service  portssvc.ClientSvcFacade
	userID   string
}

func (suite *ClientServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockClientRepository)
	suite.service = services.NewClientService(suite.mockRepo)
	suite.userID = uuid.NewString()
}

func strPtr(s string) *string { return &s }

// --- Test Cases ---

func (suite *ClientServiceTestSuite) TestCreateClient_Success() {
	ctx := context.Background()
	req := dto.CreateClientRequest{
		CompanyName: "Acme Corp",
		ContactName: strPtr("Jane Doe"),
		Email:       strPtr("jane@acme.test"),
	}

	suite.mockRepo.On("SaveClient", ctx, mock.MatchedBy(func(c domain.Client) bool {
		return c.CompanyName == req.CompanyName &&
			c.UserID == suite.userID &&
			c.Status == domain.ClientStatusActive &&
			c.BillingFrequency == domain.BillingMonthly &&
			c.CreatedBy == suite.userID &&
			c.ClientID != ""
	})).Return(nil).Once()

	client, err := suite.service.CreateClient(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(client)
	suite.Equal("Acme Corp", client.CompanyName)
	suite.Equal(domain.ClientStatusActive, client.Status)
	suite.Equal(domain.BillingMonthly, client.BillingFrequency)
	suite.Require().NotNil(client.Email)
	suite.Equal("jane@acme.test", *client.Email)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ClientServiceTestSuite) TestCreateClient_EmptyOptionalStringsBecomeNil() {
	ctx := context.Background()
	req := dto.CreateClientRequest{
		CompanyName: "Acme Corp",
		Email:       strPtr(""),
		Website:     strPtr(""),
	}

	suite.mockRepo.On("SaveClient", ctx, mock.MatchedBy(func(c domain.Client) bool {
		return c.Email == nil && c.Website == nil
	})).Return(nil).Once()

	client, err := suite.service.CreateClient(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.Nil(client.Email)
	suite.Nil(client.Website)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ClientServiceTestSuite) TestCreateClient_ExplicitStatusKept() {
	ctx := context.Background()
	req := dto.CreateClientRequest{
		CompanyName:      "Dormant LLC",
		Status:           strPtr("inactive"),
		BillingFrequency: strPtr("one-time"),
	}

	suite.mockRepo.On("SaveClient", ctx, mock.AnythingOfType("domain.Client")).Return(nil).Once()

	client, err := suite.service.CreateClient(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.Equal(domain.ClientStatusInactive, client.Status)
	suite.Equal(domain.BillingOneTime, client.BillingFrequency)
}

func (suite *ClientServiceTestSuite) TestCreateClient_SaveError() {
	ctx := context.Background()
	req := dto.CreateClientRequest{CompanyName: "Acme Corp"}
	expectedErr := assert.AnError

	suite.mockRepo.On("SaveClient", ctx, mock.AnythingOfType("domain.Client")).Return(expectedErr).Once()

	client, err := suite.service.CreateClient(ctx, suite.userID, req)

	suite.Require().Error(err)
	suite.Nil(client)
	suite.ErrorIs(err, expectedErr)
}

func (suite *ClientServiceTestSuite) TestGetClientByID_NotFound() {
	ctx := context.Background()
	clientID := uuid.NewString()

	suite.mockRepo.On("FindClientByID", ctx, suite.userID, clientID).Return(nil, apperrors.ErrNotFound).Once()

	client, err := suite.service.GetClientByID(ctx, suite.userID, clientID)

	suite.Require().Error(err)
	suite.Nil(client)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ClientServiceTestSuite) TestListClients_BuildsFilter() {
	ctx := context.Background()
	params := dto.ListClientsParams{Status: strPtr("active"), Search: strPtr("acme")}
	page := pagination.Params{Page: 2, Limit: 10}
	expected := []domain.Client{{ClientID: uuid.NewString()}}

	suite.mockRepo.On("FindClients", ctx, suite.userID, mock.MatchedBy(func(f portsrepo.ClientListFilter) bool {
		return f.Status != nil && *f.Status == domain.ClientStatusActive &&
			f.Search != nil && *f.Search == "acme" &&
			f.Limit == 10 && f.Offset == 10
	})).Return(expected, 11, nil).Once()

	clients, meta, err := suite.service.ListClients(ctx, suite.userID, params, page)

	suite.Require().NoError(err)
	suite.Equal(expected, clients)
	suite.Equal(2, meta.Page)
	suite.Equal(11, meta.Total)
	suite.Equal(2, meta.TotalPages)
	suite.False(meta.HasNext)
	suite.True(meta.HasPrev)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ClientServiceTestSuite) TestUpdateClient_PartialPatch() {
	ctx := context.Background()
	clientID := uuid.NewString()
	existing := &domain.Client{
		ClientID:    clientID,
		UserID:      suite.userID,
		CompanyName: "Old Name",
		Email:       strPtr("old@acme.test"),
		Status:      domain.ClientStatusActive,
	}

	suite.mockRepo.On("FindClientByID", ctx, suite.userID, clientID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateClient", ctx, mock.MatchedBy(func(c domain.Client) bool {
		return c.CompanyName == "New Name" &&
			c.Email != nil && *c.Email == "old@acme.test" &&
			c.LastUpdatedBy == suite.userID
	})).Return(nil).Once()

	req := dto.UpdateClientRequest{CompanyName: strPtr("New Name")}
	client, err := suite.service.UpdateClient(ctx, suite.userID, clientID, req)

	suite.Require().NoError(err)
	suite.Equal("New Name", client.CompanyName)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ClientServiceTestSuite) TestUpdateClient_NotFoundSkipsWrite() {
	ctx := context.Background()
	clientID := uuid.NewString()

	suite.mockRepo.On("FindClientByID", ctx, suite.userID, clientID).Return(nil, apperrors.ErrNotFound).Once()

	client, err := suite.service.UpdateClient(ctx, suite.userID, clientID, dto.UpdateClientRequest{})

	suite.Require().Error(err)
	suite.Nil(client)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateClient", mock.Anything, mock.Anything)
}

func (suite *ClientServiceTestSuite) TestDeleteClient_NotFound() {
	ctx := context.Background()
	clientID := uuid.NewString()

	suite.mockRepo.On("DeleteClient", ctx, suite.userID, clientID).Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteClient(ctx, suite.userID, clientID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- Run Suite ---
func TestClientService(t *testing.T) {
	suite.Run(t, new(ClientServiceTestSuite))
}
