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
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/invoiceflow/invoiceflow-backend/internal/apperrors"
	"github.com/invoiceflow/invoiceflow-backend/internal/core/domain"
	portssvc "github.com/invoiceflow/invoiceflow-backend/internal/core/ports/services"
	"github.com/invoiceflow/invoiceflow-backend/internal/dto"
	"github.com/invoiceflow/invoiceflow-backend/internal/handlers"
	"github.com/invoiceflow/invoiceflow-backend/internal/platform/config"
	"github.com/invoiceflow/invoiceflow-backend/internal/utils"
)

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) FindOrCreateOAuthUser(ctx context.Context, provider domain.AuthProviderType, providerUserID, email, name string) (*domain.User, error) {
	args := m.Called(ctx, provider, providerUserID, email, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) StoreRefreshTokenHash(ctx context.Context, userID, refreshTokenHash string, expiry time.Time) error {
	args := m.Called(ctx, userID, refreshTokenHash, expiry)
	return args.Error(0)
}

func (m *MockUserService) ClearRefreshToken(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Mock TokenService ---
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockTokenService) GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockTokenService) ValidateAndParseRefreshToken(ctx context.Context, userID string, refreshTokenString string) (*domain.User, error) {
	args := m.Called(ctx, userID, refreshTokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portssvc.TokenSvcFacade = (*MockTokenService)(nil)

// --- Test Suite ---
type AuthHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockUserService  *MockUserService
	mockTokenService *MockTokenService
	cfg              *config.Config
}

func (suite *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.mockUserService = new(MockUserService)
	suite.mockTokenService = new(MockTokenService)
	suite.cfg = &config.Config{
		RefreshTokenCookieName:     "rtid",
		RefreshTokenCookiePath:     "/api/v1/auth",
		RefreshTokenExpiryDuration: 168 * time.Hour,
	}

	h := handlers.NewAuthHandler(suite.mockUserService, suite.mockTokenService, suite.cfg)
	auth := suite.router.Group("/api/v1/auth")
	auth.POST("/register", h.Register)
	auth.POST("/login", h.Login)
	auth.POST("/refresh", h.Refresh)
	auth.POST("/logout", h.Logout)
}

func (suite *AuthHandlerTestSuite) postJSON(url string, body []byte) *http.Request {
	req, _ := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// refreshCookie returns the rtid cookie from a response, or nil.
func refreshCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == "rtid" {
			return c
		}
	}
	return nil
}

// --- Test Cases ---

func (suite *AuthHandlerTestSuite) TestLogin_Success() {
	userID := uuid.NewString()
	hash, err := utils.HashPassword("correct horse battery")
	suite.Require().NoError(err)
	user := &domain.User{UserID: userID, Username: "alice", PasswordHash: hash}

	accessExpiry := time.Now().Add(time.Hour)
	refreshExpiry := time.Now().Add(168 * time.Hour)
	suite.mockUserService.On("GetUserByUsername", mock.Anything, "alice").Return(user, nil).Once()
	suite.mockTokenService.On("GenerateAccessToken", mock.Anything, user).Return("signed.access.token", accessExpiry, nil).Once()
	suite.mockTokenService.On("GenerateRefreshToken", mock.Anything, user).Return("raw-refresh", refreshExpiry, nil).Once()
	suite.mockUserService.On("StoreRefreshTokenHash", mock.Anything, userID, utils.HashRefreshToken("raw-refresh"), refreshExpiry).Return(nil).Once()

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.postJSON("/api/v1/auth/login", []byte(`{"username":"alice","password":"correct horse battery"}`)))

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.LoginResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("signed.access.token", resp.Token)
	suite.Equal(userID, resp.User.UserID)

	cookie := refreshCookie(w)
	suite.Require().NotNil(cookie)
	suite.Equal(userID+":raw-refresh", cookie.Value)
	suite.Equal("/api/v1/auth", cookie.Path)
	suite.True(cookie.HttpOnly)

	suite.mockUserService.AssertExpectations(suite.T())
	suite.mockTokenService.AssertExpectations(suite.T())
}

func (suite *AuthHandlerTestSuite) TestLogin_WrongPassword() {
	hash, err := utils.HashPassword("the real password")
	suite.Require().NoError(err)
	user := &domain.User{UserID: uuid.NewString(), Username: "alice", PasswordHash: hash}
	suite.mockUserService.On("GetUserByUsername", mock.Anything, "alice").Return(user, nil).Once()

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.postJSON("/api/v1/auth/login", []byte(`{"username":"alice","password":"a guess"}`)))

	suite.Equal(http.StatusUnauthorized, w.Code)

	var resp dto.ErrorResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Invalid username or password", resp.Error)
	suite.mockTokenService.AssertNotCalled(suite.T(), "GenerateAccessToken")
}

func (suite *AuthHandlerTestSuite) TestLogin_UnknownUsername() {
	suite.mockUserService.On("GetUserByUsername", mock.Anything, "ghost").
		Return(nil, apperrors.NewNotFoundError("user not found")).Once()

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.postJSON("/api/v1/auth/login", []byte(`{"username":"ghost","password":"whatever"}`)))

	suite.Equal(http.StatusUnauthorized, w.Code)

	var resp dto.ErrorResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Invalid username or password", resp.Error)
}

func (suite *AuthHandlerTestSuite) TestRegister_DuplicateUsername() {
	suite.mockUserService.On("CreateUser", mock.Anything, mock.AnythingOfType("dto.CreateUserRequest")).
		Return(nil, apperrors.NewDuplicateError("username alice already exists")).Once()

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.postJSON("/api/v1/auth/register", []byte(`{"username":"alice","name":"Alice","password":"long-enough-pw"}`)))

	suite.Equal(http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Resource already exists", resp.Error)
}

func (suite *AuthHandlerTestSuite) TestRefresh_RotatesCookie() {
	userID := uuid.NewString()
	user := &domain.User{UserID: userID, Username: "alice"}

	accessExpiry := time.Now().Add(time.Hour)
	refreshExpiry := time.Now().Add(168 * time.Hour)
	suite.mockTokenService.On("ValidateAndParseRefreshToken", mock.Anything, userID, "old-refresh").Return(user, nil).Once()
	suite.mockTokenService.On("GenerateAccessToken", mock.Anything, user).Return("new.access.token", accessExpiry, nil).Once()
	suite.mockTokenService.On("GenerateRefreshToken", mock.Anything, user).Return("new-refresh", refreshExpiry, nil).Once()
	suite.mockUserService.On("StoreRefreshTokenHash", mock.Anything, userID, utils.HashRefreshToken("new-refresh"), refreshExpiry).Return(nil).Once()

	req := suite.postJSON("/api/v1/auth/refresh", nil)
	req.AddCookie(&http.Cookie{Name: "rtid", Value: userID + ":old-refresh"})
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.RefreshTokenResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("new.access.token", resp.Token)

	cookie := refreshCookie(w)
	suite.Require().NotNil(cookie)
	suite.Equal(userID+":new-refresh", cookie.Value)

	suite.mockTokenService.AssertExpectations(suite.T())
}

func (suite *AuthHandlerTestSuite) TestRefresh_MalformedCookie() {
	req := suite.postJSON("/api/v1/auth/refresh", nil)
	req.AddCookie(&http.Cookie{Name: "rtid", Value: "no-separator"})
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockTokenService.AssertNotCalled(suite.T(), "ValidateAndParseRefreshToken")
}

func (suite *AuthHandlerTestSuite) TestRefresh_InvalidToken() {
	userID := uuid.NewString()
	suite.mockTokenService.On("ValidateAndParseRefreshToken", mock.Anything, userID, "stale-refresh").
		Return(nil, apperrors.ErrUnauthorized).Once()

	req := suite.postJSON("/api/v1/auth/refresh", nil)
	req.AddCookie(&http.Cookie{Name: "rtid", Value: userID + ":stale-refresh"})
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)

	// The stale cookie is cleared.
	cookie := refreshCookie(w)
	suite.Require().NotNil(cookie)
	suite.Empty(cookie.Value)
	suite.Less(cookie.MaxAge, 0)
}

func (suite *AuthHandlerTestSuite) TestLogout_ClearsStoredToken() {
	userID := uuid.NewString()
	suite.mockUserService.On("ClearRefreshToken", mock.Anything, userID).Return(nil).Once()

	req := suite.postJSON("/api/v1/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: "rtid", Value: userID + ":raw-refresh"})
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.MessageResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Logged out successfully", resp.Message)

	cookie := refreshCookie(w)
	suite.Require().NotNil(cookie)
	suite.Empty(cookie.Value)
	suite.mockUserService.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestAuthHandler(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}
