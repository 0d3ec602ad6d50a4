package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/invoiceflow/invoiceflow-backend/internal/core/ports/services"
	"github.com/invoiceflow/invoiceflow-backend/internal/dto"
	"github.com/invoiceflow/invoiceflow-backend/internal/utils/pagination"
)

// invoiceHandler handles HTTP requests related to invoices.
type invoiceHandler struct {
	invoiceService portssvc.InvoiceSvcFacade
}

// newInvoiceHandler creates a new invoiceHandler.
func newInvoiceHandler(is portssvc.InvoiceSvcFacade) *invoiceHandler {
	return &invoiceHandler{invoiceService: is}
}

// registerInvoiceRoutes registers routes related to invoices and their line items.
func registerInvoiceRoutes(rg *gin.RouterGroup, invoiceService portssvc.InvoiceSvcFacade) {
	h := newInvoiceHandler(invoiceService)

	invoices := rg.Group("/invoices")
	{
		invoices.POST("", h.createInvoice)
		invoices.GET("", h.listInvoices)
		invoices.POST("/bulk", h.bulkAction)
		invoices.GET("/:id", h.getInvoice)
		invoices.PUT("/:id", h.updateInvoice)
		invoices.DELETE("/:id", h.deleteInvoice)

		invoices.GET("/:id/items", h.listInvoiceItems)
		invoices.POST("/:id/items", h.createInvoiceItem)
		invoices.PUT("/:id/items/:itemID", h.updateInvoiceItem)
		invoices.DELETE("/:id/items/:itemID", h.deleteInvoiceItem)
	}
}

// createInvoice godoc
// @Summary Create a new invoice
// @Description Creates a new invoice referencing one of the logged-in user's clients
// @Tags invoices
// @Accept json
// @Produce json
// @Param invoice body dto.CreateInvoiceRequest true "Invoice details"
// @Success 201 {object} dto.InvoiceResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Referenced client not found"
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /invoices [post]
func (h *invoiceHandler) createInvoice(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}
	if issues := req.Validate(); len(issues) > 0 {
		respondFieldErrors(c, issues)
		return
	}

	invoice, err := h.invoiceService.CreateInvoice(c.Request.Context(), userID, req)
	if err != nil {
		respondServiceError(c, err, "Client not found")
		return
	}

	c.JSON(http.StatusCreated, dto.ToInvoiceResponse(invoice))
}

// listInvoices godoc
// @Summary List invoices
// @Description Lists the logged-in user's invoices with optional filters
// @Tags invoices
// @Produce json
// @Param status query string false "Filter by status" Enums(draft, sent, paid, overdue, cancelled)
// @Param client_id query string false "Filter by client"
// @Param issue_date_from query string false "Inclusive lower issue-date bound (YYYY-MM-DD)"
// @Param issue_date_to query string false "Inclusive upper issue-date bound (YYYY-MM-DD)"
// @Param due_date_from query string false "Inclusive lower due-date bound (YYYY-MM-DD)"
// @Param due_date_to query string false "Inclusive upper due-date bound (YYYY-MM-DD)"
// @Param search query string false "Match against invoice number"
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 10, max 100)"
// @Success 200 {object} dto.ListInvoicesResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /invoices [get]
func (h *invoiceHandler) listInvoices(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var params dto.ListInvoicesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindingError(c, err)
		return
	}
	page := pagination.Parse(c.Query("page"), c.Query("limit"))

	invoices, meta, err := h.invoiceService.ListInvoices(c.Request.Context(), userID, params, page)
	if err != nil {
		respondServiceError(c, err, "Invoice not found")
		return
	}

	c.JSON(http.StatusOK, dto.ToListInvoicesResponse(invoices, meta))
}

// getInvoice godoc
// @Summary Get an invoice by ID
// @Description Retrieves one of the logged-in user's invoices
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /invoices/{id} [get]
func (h *invoiceHandler) getInvoice(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	invoice, err := h.invoiceService.GetInvoiceByID(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Invoice not found")
		return
	}

	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice))
}

// updateInvoice godoc
// @Summary Update an invoice
// @Description Updates one of the logged-in user's invoices
// @Tags invoices
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID"
// @Param invoice body dto.UpdateInvoiceRequest true "Fields to update"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /invoices/{id} [put]
func (h *invoiceHandler) updateInvoice(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}
	if issues := req.Validate(); len(issues) > 0 {
		respondFieldErrors(c, issues)
		return
	}

	invoice, err := h.invoiceService.UpdateInvoice(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err, "Invoice not found")
		return
	}

	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice))
}

// deleteInvoice godoc
// @Summary Delete an invoice
// @Description Deletes one of the logged-in user's invoices together with its line items and payments
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /invoices/{id} [delete]
func (h *invoiceHandler) deleteInvoice(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.invoiceService.DeleteInvoice(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondServiceError(c, err, "Invoice not found")
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Invoice deleted successfully"})
}

// bulkAction godoc
// @Summary Apply a bulk action to invoices
// @Description Deletes or updates the status of a set of the logged-in user's invoices. IDs the user does not own are skipped; the response reports the affected row count.
// @Tags invoices
// @Accept json
// @Produce json
// @Param action body dto.BulkInvoiceRequest true "Bulk action"
// @Success 200 {object} dto.BulkInvoiceResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /invoices/bulk [post]
func (h *invoiceHandler) bulkAction(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.BulkInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}
	if req.Action == "update_status" && req.Status == nil {
		respondFieldErrors(c, []dto.FieldError{{Field: "status", Message: "is required for update_status"}})
		return
	}

	affected, err := h.invoiceService.BulkAction(c.Request.Context(), userID, req)
	if err != nil {
		respondServiceError(c, err, "Invoice not found")
		return
	}

	c.JSON(http.StatusOK, dto.BulkInvoiceResponse{Affected: affected})
}
