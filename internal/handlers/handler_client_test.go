package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/invoiceflow/invoiceflow-backend/internal/apperrors"
	"github.com/invoiceflow/invoiceflow-backend/internal/core/domain"
	portssvc "github.com/invoiceflow/invoiceflow-backend/internal/core/ports/services"
	"github.com/invoiceflow/invoiceflow-backend/internal/dto"
	"github.com/invoiceflow/invoiceflow-backend/internal/handlers"
	"github.com/invoiceflow/invoiceflow-backend/internal/middleware"
	"github.com/invoiceflow/invoiceflow-backend/internal/utils/pagination"
)

// --- Mock ClientService ---
type MockClientService struct {
	mock.Mock
}

func (m *MockClientService) CreateClient(ctx context.Context, userID string, req dto.CreateClientRequest) (*domain.Client, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientService) GetClientByID(ctx context.Context, userID, clientID string) (*domain.Client, error) {
	args := m.Called(ctx, userID, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientService) ListClients(ctx context.Context, userID string, params dto.ListClientsParams, page pagination.Params) ([]domain.Client, pagination.Meta, error) {
	args := m.Called(ctx, userID, params, page)
	if args.Get(0) == nil {
		return nil, args.Get(1).(pagination.Meta), args.Error(2)
	}
	return args.Get(0).([]domain.Client), args.Get(1).(pagination.Meta), args.Error(2)
}

func (m *MockClientService) UpdateClient(ctx context.Context, userID, clientID string, req dto.UpdateClientRequest) (*domain.Client, error) {
	args := m.Called(ctx, userID, clientID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientService) DeleteClient(ctx context.Context, userID, clientID string) error {
	args := m.Called(ctx, userID, clientID)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.ClientSvcFacade = (*MockClientService)(nil)

// --- Test Suite ---
type ClientHandlerTestSuite struct {
	suite.Suite
	router            *gin.Engine
	mockClientService *MockClientService
	jwtSecret         string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *ClientHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "invoiceflow-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *ClientHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockClientService = new(MockClientService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterClientRoutes(v1, suite.mockClientService)
}

// authedRequest builds a request carrying a valid bearer token for userID.
func (suite *ClientHandlerTestSuite) authedRequest(method, url, userID string, body []byte) *http.Request {
	var req *http.Request
	if body != nil {
		req, _ = http.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req, _ = http.NewRequest(method, url, nil)
	}
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	req.Header.Set("Accept", "application/json")
	return req
}

func testClient(clientID, userID string) *domain.Client {
	contact := "Jane Doe"
	return &domain.Client{
		ClientID:           clientID,
		UserID:             userID,
		CompanyName:        "Acme Corp",
		ContactName:        &contact,
		Status:             domain.ClientStatusActive,
		BillingFrequency:   domain.BillingMonthly,
		TotalBilled:        decimal.NewFromInt(1000),
		OutstandingBalance: decimal.NewFromInt(250),
		AuditFields: domain.AuditFields{
			CreatedAt:     time.Now(),
			CreatedBy:     userID,
			LastUpdatedAt: time.Now(),
			LastUpdatedBy: userID,
		},
	}
}

// --- Test Cases ---

func (suite *ClientHandlerTestSuite) TestCreateClient_Success() {
	userID := uuid.NewString()
	clientID := uuid.NewString()

	suite.mockClientService.On("CreateClient",
		mock.Anything,
		userID,
		mock.MatchedBy(func(req dto.CreateClientRequest) bool {
			return req.CompanyName == "Acme Corp"
		}),
	).Return(testClient(clientID, userID), nil).Once()

	body := []byte(`{"company_name":"Acme Corp","contact_name":"Jane Doe"}`)
	req := suite.authedRequest(http.MethodPost, "/api/v1/clients", userID, body)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.ClientResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	suite.NoError(err)
	suite.Equal(clientID, resp.ClientID)
	suite.Equal("Acme Corp", resp.CompanyName)
	suite.Equal("active", resp.Status)

	suite.mockClientService.AssertExpectations(suite.T())
}

func (suite *ClientHandlerTestSuite) TestCreateClient_MissingCompanyName() {
	userID := uuid.NewString()

	body := []byte(`{"contact_name":"Jane Doe"}`)
	req := suite.authedRequest(http.MethodPost, "/api/v1/clients", userID, body)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	suite.NoError(err)
	suite.Equal("Validation failed", resp.Error)
	suite.Require().Len(resp.Details, 1)
	suite.Equal("company_name", resp.Details[0].Field)
	suite.Equal("is required", resp.Details[0].Message)

	suite.mockClientService.AssertNotCalled(suite.T(), "CreateClient")
}

func (suite *ClientHandlerTestSuite) TestCreateClient_InvalidEmail() {
	userID := uuid.NewString()

	body := []byte(`{"company_name":"Acme Corp","email":"not-an-email"}`)
	req := suite.authedRequest(http.MethodPost, "/api/v1/clients", userID, body)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Details, 1)
	suite.Equal("email", resp.Details[0].Field)
	suite.Equal("must be a valid email address", resp.Details[0].Message)
}

func (suite *ClientHandlerTestSuite) TestListClients_ForwardsFiltersAndPagination() {
	userID := uuid.NewString()

	meta := pagination.Meta{Page: 2, Limit: 5, Total: 11, TotalPages: 3, HasNext: true, HasPrev: true}
	suite.mockClientService.On("ListClients",
		mock.Anything,
		userID,
		mock.MatchedBy(func(p dto.ListClientsParams) bool {
			return p.Status != nil && *p.Status == "active" &&
				p.Search != nil && *p.Search == "acme"
		}),
		pagination.Params{Page: 2, Limit: 5},
	).Return([]domain.Client{*testClient(uuid.NewString(), userID)}, meta, nil).Once()

	req := suite.authedRequest(http.MethodGet, "/api/v1/clients?status=active&search=acme&page=2&limit=5", userID, nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ListClientsResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Clients, 1)
	suite.Equal(2, resp.Pagination.Page)
	suite.Equal(11, resp.Pagination.Total)
	suite.True(resp.Pagination.HasNext)

	suite.mockClientService.AssertExpectations(suite.T())
}

func (suite *ClientHandlerTestSuite) TestGetClient_NotFound() {
	userID := uuid.NewString()
	clientID := uuid.NewString()

	suite.mockClientService.On("GetClientByID", mock.Anything, userID, clientID).
		Return(nil, apperrors.NewNotFoundError("client not found")).Once()

	req := suite.authedRequest(http.MethodGet, "/api/v1/clients/"+clientID, userID, nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)

	var resp dto.ErrorResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Client not found", resp.Error)
}

func (suite *ClientHandlerTestSuite) TestGetClient_NoToken() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/clients/"+uuid.NewString(), nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockClientService.AssertNotCalled(suite.T(), "GetClientByID")
}

func (suite *ClientHandlerTestSuite) TestGetClient_ExpiredToken() {
	claims := jwt.RegisteredClaims{
		Subject:   uuid.NewString(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(suite.jwtSecret))
	suite.Require().NoError(err)

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/clients/"+uuid.NewString(), nil)
	req.Header.Set("Authorization", "Bearer "+expired)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)

	var resp dto.ErrorResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Token has expired", resp.Error)
	suite.mockClientService.AssertNotCalled(suite.T(), "GetClientByID")
}

func (suite *ClientHandlerTestSuite) TestUpdateClient_Success() {
	userID := uuid.NewString()
	clientID := uuid.NewString()

	updated := testClient(clientID, userID)
	updated.Status = domain.ClientStatusInactive
	suite.mockClientService.On("UpdateClient",
		mock.Anything,
		userID,
		clientID,
		mock.MatchedBy(func(req dto.UpdateClientRequest) bool {
			return req.Status != nil && *req.Status == "inactive" && req.CompanyName == nil
		}),
	).Return(updated, nil).Once()

	body := []byte(`{"status":"inactive"}`)
	req := suite.authedRequest(http.MethodPut, "/api/v1/clients/"+clientID, userID, body)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ClientResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("inactive", resp.Status)

	suite.mockClientService.AssertExpectations(suite.T())
}

func (suite *ClientHandlerTestSuite) TestDeleteClient_Success() {
	userID := uuid.NewString()
	clientID := uuid.NewString()

	suite.mockClientService.On("DeleteClient", mock.Anything, userID, clientID).Return(nil).Once()

	req := suite.authedRequest(http.MethodDelete, "/api/v1/clients/"+clientID, userID, nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.MessageResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Client deleted successfully", resp.Message)
}

func (suite *ClientHandlerTestSuite) TestDeleteClient_ServiceError() {
	userID := uuid.NewString()
	clientID := uuid.NewString()

	suite.mockClientService.On("DeleteClient", mock.Anything, userID, clientID).
		Return(context.DeadlineExceeded).Once()

	req := suite.authedRequest(http.MethodDelete, "/api/v1/clients/"+clientID, userID, nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusInternalServerError, w.Code)

	var resp dto.ErrorResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Internal server error", resp.Error)
}

// --- Run Test Suite ---
func TestClientHandler(t *testing.T) {
	suite.Run(t, new(ClientHandlerTestSuite))
}
