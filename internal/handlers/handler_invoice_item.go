package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/invoiceflow/invoiceflow-backend/internal/dto"
)

// Line-item handlers live on invoiceHandler; every operation resolves the
// parent invoice by (id, owner) first, so a foreign invoice is a 404 before
// any item row is touched.

// listInvoiceItems godoc
// @Summary List invoice line items
// @Description Lists the line items of one of the logged-in user's invoices
// @Tags invoice-items
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} dto.ListInvoiceItemsResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /invoices/{id}/items [get]
func (h *invoiceHandler) listInvoiceItems(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	items, err := h.invoiceService.ListInvoiceItems(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Invoice not found")
		return
	}

	c.JSON(http.StatusOK, dto.ToListInvoiceItemsResponse(items))
}

// createInvoiceItem godoc
// @Summary Add an invoice line item
// @Description Adds a line item to one of the logged-in user's invoices
// @Tags invoice-items
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID"
// @Param item body dto.CreateInvoiceItemRequest true "Line item details"
// @Success 201 {object} dto.InvoiceItemResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /invoices/{id}/items [post]
func (h *invoiceHandler) createInvoiceItem(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.CreateInvoiceItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}
	if issues := req.Validate(); len(issues) > 0 {
		respondFieldErrors(c, issues)
		return
	}

	item, err := h.invoiceService.CreateInvoiceItem(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err, "Invoice not found")
		return
	}

	c.JSON(http.StatusCreated, dto.ToInvoiceItemResponse(item))
}

// updateInvoiceItem godoc
// @Summary Update an invoice line item
// @Description Updates a line item on one of the logged-in user's invoices
// @Tags invoice-items
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID"
// @Param itemID path string true "Item ID"
// @Param item body dto.UpdateInvoiceItemRequest true "Fields to update"
// @Success 200 {object} dto.InvoiceItemResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /invoices/{id}/items/{itemID} [put]
func (h *invoiceHandler) updateInvoiceItem(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateInvoiceItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}
	if issues := req.Validate(); len(issues) > 0 {
		respondFieldErrors(c, issues)
		return
	}

	item, err := h.invoiceService.UpdateInvoiceItem(c.Request.Context(), userID, c.Param("id"), c.Param("itemID"), req)
	if err != nil {
		respondServiceError(c, err, "Invoice item not found")
		return
	}

	c.JSON(http.StatusOK, dto.ToInvoiceItemResponse(item))
}

// deleteInvoiceItem godoc
// @Summary Delete an invoice line item
// @Description Deletes a line item from one of the logged-in user's invoices
// @Tags invoice-items
// @Produce json
// @Param id path string true "Invoice ID"
// @Param itemID path string true "Item ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /invoices/{id}/items/{itemID} [delete]
func (h *invoiceHandler) deleteInvoiceItem(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.invoiceService.DeleteInvoiceItem(c.Request.Context(), userID, c.Param("id"), c.Param("itemID")); err != nil {
		respondServiceError(c, err, "Invoice item not found")
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Invoice item deleted successfully"})
}
