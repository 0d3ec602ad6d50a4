package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
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

// --- Mock InvoiceRepository ---
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) FindInvoiceByID(ctx context.Context, userID, invoiceID string) (*domain.Invoice, error) {
	args := m.Called(ctx, userID, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindInvoiceByNumber(ctx context.Context, userID, invoiceNumber string) (*domain.Invoice, error) {
	args := m.Called(ctx, userID, invoiceNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindInvoices(ctx context.Context, userID string, filter portsrepo.InvoiceListFilter) ([]domain.Invoice, int, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Invoice), args.Int(1), args.Error(2)
}

func (m *MockInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) UpdateInvoice(ctx context.Context, invoice domain.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) DeleteInvoice(ctx context.Context, userID, invoiceID string) error {
	args := m.Called(ctx, userID, invoiceID)
	return args.Error(0)
}

func (m *MockInvoiceRepository) BulkDeleteInvoices(ctx context.Context, userID string, invoiceIDs []string) (int64, error) {
	args := m.Called(ctx, userID, invoiceIDs)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInvoiceRepository) BulkUpdateInvoiceStatus(ctx context.Context, userID string, invoiceIDs []string, status domain.InvoiceStatus, updatedBy string) (int64, error) {
	args := m.Called(ctx, userID, invoiceIDs, status, updatedBy)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInvoiceRepository) FindItemsByInvoiceID(ctx context.Context, invoiceID string) ([]domain.InvoiceItem, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InvoiceItem), args.Error(1)
}

func (m *MockInvoiceRepository) FindInvoiceItemByID(ctx context.Context, invoiceID, itemID string) (*domain.InvoiceItem, error) {
	args := m.Called(ctx, invoiceID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InvoiceItem), args.Error(1)
}

func (m *MockInvoiceRepository) SaveInvoiceItem(ctx context.Context, item domain.InvoiceItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockInvoiceRepository) UpdateInvoiceItem(ctx context.Context, item domain.InvoiceItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockInvoiceRepository) DeleteInvoiceItem(ctx context.Context, invoiceID, itemID string) error {
	args := m.Called(ctx, invoiceID, itemID)
	return args.Error(0)
}

// --- Test Suite ---
type InvoiceServiceTestSuite struct {
	suite.Suite
	mockRepo       *MockInvoiceRepository
	mockClientRepo *MockClientRepository
	service        portssvc.InvoiceSvcFacade
	userID         string
}

func (suite *InvoiceServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockInvoiceRepository)
	suite.mockClientRepo = new(MockClientRepository)
	suite.service = services.NewInvoiceService(suite.mockRepo, suite.mockClientRepo)
	suite.userID = uuid.NewString()
}

func (suite *InvoiceServiceTestSuite) createRequest(clientID string) dto.CreateInvoiceRequest {
	return dto.CreateInvoiceRequest{
		ClientID:      clientID,
		InvoiceNumber: "INV-001",
		IssueDate:     "2026-01-15",
		DueDate:       "2026-02-14",
		Subtotal:      decimal.NewFromInt(100),
		TotalAmount:   decimal.NewFromInt(100),
	}
}

// --- Test Cases ---

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_Success() {
	ctx := context.Background()
	clientID := uuid.NewString()
	req := suite.createRequest(clientID)

	suite.mockClientRepo.On("FindClientByID", ctx, suite.userID, clientID).
		Return(&domain.Client{ClientID: clientID, UserID: suite.userID}, nil).Once()
	suite.mockRepo.On("FindInvoiceByNumber", ctx, suite.userID, "INV-001").
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveInvoice", ctx, mock.MatchedBy(func(inv domain.Invoice) bool {
		return inv.UserID == suite.userID &&
			inv.ClientID == clientID &&
			inv.Status == domain.InvoiceStatusDraft &&
			inv.Currency == "USD" &&
			inv.IssueDate.Equal(time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC))
	})).Return(nil).Once()

	invoice, err := suite.service.CreateInvoice(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(invoice)
	suite.Equal("INV-001", invoice.InvoiceNumber)
	suite.Equal(domain.InvoiceStatusDraft, invoice.Status)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockClientRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_ClientNotOwned() {
	ctx := context.Background()
	clientID := uuid.NewString()

	suite.mockClientRepo.On("FindClientByID", ctx, suite.userID, clientID).
		Return(nil, apperrors.ErrNotFound).Once()

	invoice, err := suite.service.CreateInvoice(ctx, suite.userID, suite.createRequest(clientID))

	suite.Require().Error(err)
	suite.Nil(invoice)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Contains(err.Error(), "client not found")
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveInvoice", mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_DuplicateNumber() {
	ctx := context.Background()
	clientID := uuid.NewString()

	suite.mockClientRepo.On("FindClientByID", ctx, suite.userID, clientID).
		Return(&domain.Client{ClientID: clientID}, nil).Once()
	suite.mockRepo.On("FindInvoiceByNumber", ctx, suite.userID, "INV-001").
		Return(&domain.Invoice{InvoiceNumber: "INV-001"}, nil).Once()

	invoice, err := suite.service.CreateInvoice(ctx, suite.userID, suite.createRequest(clientID))

	suite.Require().Error(err)
	suite.Nil(invoice)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveInvoice", mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestUpdateInvoice_ChangedClientVerified() {
	ctx := context.Background()
	invoiceID := uuid.NewString()
	oldClientID := uuid.NewString()
	newClientID := uuid.NewString()
	existing := &domain.Invoice{
		InvoiceID: invoiceID,
		UserID:    suite.userID,
		ClientID:  oldClientID,
		Status:    domain.InvoiceStatusDraft,
	}

	suite.mockRepo.On("FindInvoiceByID", ctx, suite.userID, invoiceID).Return(existing, nil).Once()
	suite.mockClientRepo.On("FindClientByID", ctx, suite.userID, newClientID).
		Return(nil, apperrors.ErrNotFound).Once()

	req := dto.UpdateInvoiceRequest{ClientID: &newClientID}
	invoice, err := suite.service.UpdateInvoice(ctx, suite.userID, invoiceID, req)

	suite.Require().Error(err)
	suite.Nil(invoice)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateInvoice", mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestUpdateInvoice_StatusOnly() {
	ctx := context.Background()
	invoiceID := uuid.NewString()
	existing := &domain.Invoice{
		InvoiceID:     invoiceID,
		UserID:        suite.userID,
		ClientID:      uuid.NewString(),
		InvoiceNumber: "INV-007",
		Status:        domain.InvoiceStatusSent,
	}

	suite.mockRepo.On("FindInvoiceByID", ctx, suite.userID, invoiceID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateInvoice", ctx, mock.MatchedBy(func(inv domain.Invoice) bool {
		return inv.Status == domain.InvoiceStatusPaid && inv.InvoiceNumber == "INV-007"
	})).Return(nil).Once()

	req := dto.UpdateInvoiceRequest{Status: strPtr("paid")}
	invoice, err := suite.service.UpdateInvoice(ctx, suite.userID, invoiceID, req)

	suite.Require().NoError(err)
	suite.Equal(domain.InvoiceStatusPaid, invoice.Status)
	suite.mockClientRepo.AssertNotCalled(suite.T(), "FindClientByID", mock.Anything, mock.Anything, mock.Anything)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestListInvoices_InvalidDateFilter() {
	ctx := context.Background()
	params := dto.ListInvoicesParams{IssueDateFrom: strPtr("not-a-date")}

	invoices, _, err := suite.service.ListInvoices(ctx, suite.userID, params, pagination.Params{Page: 1, Limit: 10})

	suite.Require().Error(err)
	suite.Nil(invoices)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindInvoices", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestBulkAction_Delete() {
	ctx := context.Background()
	ids := []string{uuid.NewString(), uuid.NewString(), uuid.NewString()}

	suite.mockRepo.On("BulkDeleteInvoices", ctx, suite.userID, ids).Return(int64(2), nil).Once()

	affected, err := suite.service.BulkAction(ctx, suite.userID, dto.BulkInvoiceRequest{
		InvoiceIDs: ids,
		Action:     "delete",
	})

	suite.Require().NoError(err)
	suite.Equal(int64(2), affected)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestBulkAction_UpdateStatus() {
	ctx := context.Background()
	ids := []string{uuid.NewString()}

	suite.mockRepo.On("BulkUpdateInvoiceStatus", ctx, suite.userID, ids, domain.InvoiceStatusPaid, suite.userID).
		Return(int64(1), nil).Once()

	affected, err := suite.service.BulkAction(ctx, suite.userID, dto.BulkInvoiceRequest{
		InvoiceIDs: ids,
		Action:     "update_status",
		Status:     strPtr("paid"),
	})

	suite.Require().NoError(err)
	suite.Equal(int64(1), affected)
}

func (suite *InvoiceServiceTestSuite) TestBulkAction_UpdateStatusWithoutStatus() {
	ctx := context.Background()

	affected, err := suite.service.BulkAction(ctx, suite.userID, dto.BulkInvoiceRequest{
		InvoiceIDs: []string{uuid.NewString()},
		Action:     "update_status",
	})

	suite.Require().Error(err)
	suite.Zero(affected)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "BulkUpdateInvoiceStatus",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestListInvoiceItems_ParentNotOwned() {
	ctx := context.Background()
	invoiceID := uuid.NewString()

	suite.mockRepo.On("FindInvoiceByID", ctx, suite.userID, invoiceID).
		Return(nil, apperrors.ErrNotFound).Once()

	items, err := suite.service.ListInvoiceItems(ctx, suite.userID, invoiceID)

	suite.Require().Error(err)
	suite.Nil(items)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindItemsByInvoiceID", mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestListInvoiceItems_EmptyIsNotNil() {
	ctx := context.Background()
	invoiceID := uuid.NewString()

	suite.mockRepo.On("FindInvoiceByID", ctx, suite.userID, invoiceID).
		Return(&domain.Invoice{InvoiceID: invoiceID, UserID: suite.userID}, nil).Once()
	suite.mockRepo.On("FindItemsByInvoiceID", ctx, invoiceID).
		Return(nil, nil).Once()

	items, err := suite.service.ListInvoiceItems(ctx, suite.userID, invoiceID)

	suite.Require().NoError(err)
	suite.NotNil(items)
	suite.Empty(items)
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoiceItem_ParentVerifiedFirst() {
	ctx := context.Background()
	invoiceID := uuid.NewString()
	req := dto.CreateInvoiceItemRequest{
		Description: "Consulting",
		Quantity:    decimal.NewFromInt(2),
		Rate:        decimal.NewFromInt(75),
		Amount:      decimal.NewFromInt(150),
	}

	suite.mockRepo.On("FindInvoiceByID", ctx, suite.userID, invoiceID).
		Return(&domain.Invoice{InvoiceID: invoiceID, UserID: suite.userID}, nil).Once()
	suite.mockRepo.On("SaveInvoiceItem", ctx, mock.MatchedBy(func(item domain.InvoiceItem) bool {
		return item.InvoiceID == invoiceID &&
			item.Description == "Consulting" &&
			item.CreatedBy == suite.userID &&
			item.ItemID != ""
	})).Return(nil).Once()

	item, err := suite.service.CreateInvoiceItem(ctx, suite.userID, invoiceID, req)

	suite.Require().NoError(err)
	suite.Equal("Consulting", item.Description)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestDeleteInvoiceItem_ParentNotOwned() {
	ctx := context.Background()
	invoiceID := uuid.NewString()
	itemID := uuid.NewString()

	suite.mockRepo.On("FindInvoiceByID", ctx, suite.userID, invoiceID).
		Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteInvoiceItem(ctx, suite.userID, invoiceID, itemID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteInvoiceItem", mock.Anything, mock.Anything, mock.Anything)
}

// --- Run Suite ---
func TestInvoiceService(t *testing.T) {
	suite.Run(t, new(InvoiceServiceTestSuite))
}
