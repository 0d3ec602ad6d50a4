package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/invoiceflow/invoiceflow-backend/internal/core/domain"
	portssvc "github.com/invoiceflow/invoiceflow-backend/internal/core/ports/services"
	"github.com/invoiceflow/invoiceflow-backend/internal/dto"
)

// reportsHandler handles the reports endpoint.
type reportsHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// newReportsHandler creates a new reportsHandler.
func newReportsHandler(rs portssvc.ReportingSvcFacade) *reportsHandler {
	return &reportsHandler{reportingService: rs}
}

// registerReportsRoutes registers the reports route.
func registerReportsRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportsHandler(reportingService)
	rg.GET("/reports", h.getReport)
}

// getReport godoc
// @Summary Generate a report
// @Description Aggregates the logged-in user's invoices for a named date range. Recomputed on every request.
// @Tags reports
// @Produce json
// @Param dateRange query string false "Date range preset (default last-6-months)" Enums(last-30-days, last-3-months, last-6-months, last-year)
// @Success 200 {object} dto.ReportResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /reports [get]
func (h *reportsHandler) getReport(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var params dto.ReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindingError(c, err)
		return
	}

	preset := domain.RangeLast6Months
	if params.DateRange != nil {
		preset = domain.DateRangePreset(*params.DateRange)
	}

	report, err := h.reportingService.GenerateReport(c.Request.Context(), userID, preset)
	if err != nil {
		respondServiceError(c, err, "Report not found")
		return
	}

	c.JSON(http.StatusOK, dto.ToReportResponse(report))
}
