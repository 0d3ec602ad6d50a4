package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/invoiceflow/invoiceflow-backend/internal/core/domain"
	portssvc "github.com/invoiceflow/invoiceflow-backend/internal/core/ports/services"
	"github.com/invoiceflow/invoiceflow-backend/internal/dto"
	"github.com/invoiceflow/invoiceflow-backend/internal/middleware"
	"github.com/invoiceflow/invoiceflow-backend/internal/platform/config"
)

// GoogleOAuthHandler handles Google OAuth sign-in requests.
type GoogleOAuthHandler struct {
	googleOAuthService portssvc.GoogleOAuthHandlerSvcFacade
	authHandler        *AuthHandler
	userService        portssvc.UserSvcFacade
}

// NewGoogleOAuthHandler creates a new instance of GoogleOAuthHandler.
func NewGoogleOAuthHandler(gs portssvc.GoogleOAuthHandlerSvcFacade, us portssvc.UserSvcFacade, ah *AuthHandler) *GoogleOAuthHandler {
	return &GoogleOAuthHandler{
		googleOAuthService: gs,
		authHandler:        ah,
		userService:        us,
	}
}

// registerGoogleOAuthRoutes registers the Google OAuth routes. The two token
// endpoints are unauthenticated, so they get the same per-IP rate limit as
// login.
func registerGoogleOAuthRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	ah := NewAuthHandler(services.User, services.Token, cfg)
	h := NewGoogleOAuthHandler(services.GoogleOAuth, services.User, ah)

	rate, _ := limiter.NewRateFromFormatted("5-M")
	ipLimiter := limiter.New(memory.NewStore(), rate)
	limitMiddleware := middleware.RateLimit(ipLimiter)

	googleRoutes := r.Group("/api/v1/auth/google")
	{
		googleRoutes.GET("/login", h.LoginGoogle)
		googleRoutes.POST("/exchange-code", limitMiddleware, h.ExchangeCodeGoogle)
		googleRoutes.POST("/token", limitMiddleware, h.TokenSignInGoogle)
	}
}

const oauthStateCookie = "oauth_state"

// LoginGoogle godoc
// @Summary Start Google sign-in
// @Description Redirects the browser to Google's consent page with a CSRF state cookie.
// @Tags oauth
// @Success 307
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/google/login [get]
func (h *GoogleOAuthHandler) LoginGoogle(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	state, err := h.googleOAuthService.GenerateStateString(ctx)
	if err != nil {
		logger.Error("failed to generate oauth state", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Internal server error"})
		return
	}

	c.SetCookie(oauthStateCookie, state, 600, "/", "", h.authHandler.cfg.IsProduction, true)
	c.Redirect(http.StatusTemporaryRedirect, h.googleOAuthService.GetGoogleLoginURL(ctx, state))
}

// ExchangeCodeGoogle handles the POST from the frontend carrying the
// authorization code returned by Google. It exchanges the code, validates
// the ID token, resolves the account and issues application tokens.
// @Summary Exchange authorization code for tokens
// @Description Exchanges a Google authorization code for an application JWT and refresh cookie.
// @Tags oauth
// @Accept json
// @Produce json
// @Param code body dto.GoogleExchangeCodeRequest true "Authorization code"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/google/exchange-code [post]
func (h *GoogleOAuthHandler) ExchangeCodeGoogle(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	var req dto.GoogleExchangeCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	oauth2Token, err := h.googleOAuthService.ExchangeCodeForToken(ctx, req.Code)
	if err != nil {
		logger.Error("failed to exchange authorization code with Google", slog.String("error", err.Error()))
		if strings.Contains(strings.ToLower(err.Error()), "invalid_grant") {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid or expired authorization code"})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to communicate with Google"})
		return
	}

	idTokenString, ok := oauth2Token.Extra("id_token").(string)
	if !ok || idTokenString == "" {
		logger.Error("id token missing from Google token response")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to retrieve ID token from Google"})
		return
	}

	h.completeGoogleSignIn(c, idTokenString)
}

// TokenSignInGoogle accepts a Google ID token obtained client-side and signs
// the user in directly.
// @Summary Sign in with a Google ID token
// @Description Validates a Google ID token and issues an application JWT and refresh cookie.
// @Tags oauth
// @Accept json
// @Produce json
// @Param token body dto.GoogleTokenRequest true "Google ID token"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/google/token [post]
func (h *GoogleOAuthHandler) TokenSignInGoogle(c *gin.Context) {
	var req dto.GoogleTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	h.completeGoogleSignIn(c, req.IDToken)
}

func (h *GoogleOAuthHandler) completeGoogleSignIn(c *gin.Context, idTokenString string) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	payload, err := h.googleOAuthService.ValidateGoogleIDToken(ctx, idTokenString)
	if err != nil {
		logger.Warn("google id token validation failed", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Invalid Google ID token"})
		return
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	providerUserID := payload.Subject
	if email == "" || providerUserID == "" {
		logger.Error("essential claims missing from Google ID token")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Essential user information missing from Google token"})
		return
	}

	user, err := h.userService.FindOrCreateOAuthUser(ctx, domain.ProviderGoogle, providerUserID, email, name)
	if err != nil {
		respondServiceError(c, err, "User not found")
		return
	}

	resp, ok := h.authHandler.issueTokens(c, user)
	if !ok {
		return
	}

	logger.Info("google sign-in completed", slog.String("user_id", user.UserID))
	c.JSON(http.StatusOK, resp)
}
