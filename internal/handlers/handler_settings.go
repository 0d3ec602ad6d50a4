package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/invoiceflow/invoiceflow-backend/internal/core/ports/services"
	"github.com/invoiceflow/invoiceflow-backend/internal/dto"
)

// settingsHandler handles HTTP requests for settings and profile.
type settingsHandler struct {
	settingsService portssvc.SettingsSvcFacade
}

// newSettingsHandler creates a new settingsHandler.
func newSettingsHandler(ss portssvc.SettingsSvcFacade) *settingsHandler {
	return &settingsHandler{settingsService: ss}
}

// registerSettingsRoutes registers routes related to settings and profile.
func registerSettingsRoutes(rg *gin.RouterGroup, settingsService portssvc.SettingsSvcFacade) {
	h := newSettingsHandler(settingsService)

	settings := rg.Group("/settings")
	{
		settings.GET("", h.getSettings)
		settings.PUT("", h.updateSettings)
		settings.PUT("/business", h.updateBusinessSettings)
		settings.PUT("/notifications", h.updateNotifications)
		settings.GET("/profile", h.getProfile)
		settings.PUT("/profile", h.updateProfile)
	}
}

// getSettings godoc
// @Summary Get settings
// @Description Returns the logged-in user's settings, creating defaults on first access
// @Tags settings
// @Produce json
// @Success 200 {object} dto.SettingsResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /settings [get]
func (h *settingsHandler) getSettings(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	settings, err := h.settingsService.GetSettings(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, "Settings not found")
		return
	}

	c.JSON(http.StatusOK, dto.ToSettingsResponse(settings))
}

// updateSettings godoc
// @Summary Update settings
// @Description Applies a combined business plus notifications update
// @Tags settings
// @Accept json
// @Produce json
// @Param settings body dto.UpdateSettingsRequest true "Fields to update"
// @Success 200 {object} dto.SettingsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /settings [put]
func (h *settingsHandler) updateSettings(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}
	if issues := req.Validate(); len(issues) > 0 {
		respondFieldErrors(c, issues)
		return
	}

	settings, err := h.settingsService.UpdateSettings(c.Request.Context(), userID, req)
	if err != nil {
		respondServiceError(c, err, "Settings not found")
		return
	}

	c.JSON(http.StatusOK, dto.ToSettingsResponse(settings))
}

// updateBusinessSettings godoc
// @Summary Update business settings
// @Description Updates only the invoicing defaults
// @Tags settings
// @Accept json
// @Produce json
// @Param settings body dto.UpdateBusinessSettingsRequest true "Fields to update"
// @Success 200 {object} dto.SettingsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /settings/business [put]
func (h *settingsHandler) updateBusinessSettings(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateBusinessSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}
	if issues := req.Validate(); len(issues) > 0 {
		respondFieldErrors(c, issues)
		return
	}

	settings, err := h.settingsService.UpdateBusinessSettings(c.Request.Context(), userID, req)
	if err != nil {
		respondServiceError(c, err, "Settings not found")
		return
	}

	c.JSON(http.StatusOK, dto.ToSettingsResponse(settings))
}

// updateNotifications godoc
// @Summary Update notification preferences
// @Description Updates only the notification toggles
// @Tags settings
// @Accept json
// @Produce json
// @Param notifications body dto.UpdateNotificationsRequest true "Toggles to update"
// @Success 200 {object} dto.SettingsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /settings/notifications [put]
func (h *settingsHandler) updateNotifications(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateNotificationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	settings, err := h.settingsService.UpdateNotifications(c.Request.Context(), userID, req)
	if err != nil {
		respondServiceError(c, err, "Settings not found")
		return
	}

	c.JSON(http.StatusOK, dto.ToSettingsResponse(settings))
}

// getProfile godoc
// @Summary Get profile
// @Description Returns the logged-in user's profile, creating an empty one on first access
// @Tags profile
// @Produce json
// @Success 200 {object} dto.ProfileResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /settings/profile [get]
func (h *settingsHandler) getProfile(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	profile, err := h.settingsService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, "Profile not found")
		return
	}

	c.JSON(http.StatusOK, dto.ToProfileResponse(profile))
}

// updateProfile godoc
// @Summary Update profile
// @Description Updates the logged-in user's contact details
// @Tags profile
// @Accept json
// @Produce json
// @Param profile body dto.UpdateProfileRequest true "Fields to update"
// @Success 200 {object} dto.ProfileResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /settings/profile [put]
func (h *settingsHandler) updateProfile(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	profile, err := h.settingsService.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		respondServiceError(c, err, "Profile not found")
		return
	}

	c.JSON(http.StatusOK, dto.ToProfileResponse(profile))
}
