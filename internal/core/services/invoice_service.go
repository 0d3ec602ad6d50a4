package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/invoiceflow/invoiceflow-backend/internal/apperrors"
	"github.com/invoiceflow/invoiceflow-backend/internal/core/domain"
	portsrepo "github.com/invoiceflow/invoiceflow-backend/internal/core/ports/repositories"
	portssvc "github.com/invoiceflow/invoiceflow-backend/internal/core/ports/services"
	"github.com/invoiceflow/invoiceflow-backend/internal/dto"
	"github.com/invoiceflow/invoiceflow-backend/internal/utils/pagination"
)

type invoiceService struct {
	BaseService
	invoiceRepo portsrepo.InvoiceRepositoryFacade
	clientRepo  portsrepo.ClientRepositoryFacade
}

// NewInvoiceService creates a new invoice service.
func NewInvoiceService(invoiceRepo portsrepo.InvoiceRepositoryFacade, clientRepo portsrepo.ClientRepositoryFacade) portssvc.InvoiceSvcFacade {
	return &invoiceService{invoiceRepo: invoiceRepo, clientRepo: clientRepo}
}

var _ portssvc.InvoiceSvcFacade = (*invoiceService)(nil)

// CreateInvoice persists a new invoice for userID. The referenced client
// must belong to the same user and the invoice number must be unique within
// the user's invoices.
func (s *invoiceService) CreateInvoice(ctx context.Context, userID string, req dto.CreateInvoiceRequest) (*domain.Invoice, error) {
	if _, err := s.clientRepo.FindClientByID(ctx, userID, req.ClientID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("client not found")
		}
		return nil, err
	}

	if _, err := s.invoiceRepo.FindInvoiceByNumber(ctx, userID, req.InvoiceNumber); err == nil {
		return nil, apperrors.ErrDuplicate
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	issueDate, err := time.Parse(dto.DateLayout, req.IssueDate)
	if err != nil {
		return nil, apperrors.ErrValidation
	}
	dueDate, err := time.Parse(dto.DateLayout, req.DueDate)
	if err != nil {
		return nil, apperrors.ErrValidation
	}

	status := domain.InvoiceStatusDraft
	if req.Status != nil {
		status = domain.InvoiceStatus(*req.Status)
	}
	currency := "USD"
	if req.Currency != nil {
		currency = *req.Currency
	}

	now := time.Now()
	invoice := domain.Invoice{
		InvoiceID:     uuid.NewString(),
		UserID:        userID,
		ClientID:      req.ClientID,
		InvoiceNumber: req.InvoiceNumber,
		IssueDate:     issueDate,
		DueDate:       dueDate,
		Status:        status,
		Subtotal:      req.Subtotal,
		TaxRate:       req.TaxRate,
		TaxAmount:     req.TaxAmount,
		Discount:      req.Discount,
		TotalAmount:   req.TotalAmount,
		Currency:      currency,
		Notes:         req.Notes,
		Terms:         req.Terms,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.invoiceRepo.SaveInvoice(ctx, invoice); err != nil {
		s.LogError(ctx, err, "failed to create invoice", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to create invoice: %w", err)
	}

	s.LogInfo(ctx, "invoice created", slog.String("invoice_id", invoice.InvoiceID), slog.String("invoice_number", invoice.InvoiceNumber))
	return &invoice, nil
}

// GetInvoiceByID retrieves one invoice owned by userID.
func (s *invoiceService) GetInvoiceByID(ctx context.Context, userID, invoiceID string) (*domain.Invoice, error) {
	return s.invoiceRepo.FindInvoiceByID(ctx, userID, invoiceID)
}

// ListInvoices retrieves a filtered page of the user's invoices.
func (s *invoiceService) ListInvoices(ctx context.Context, userID string, params dto.ListInvoicesParams, page pagination.Params) ([]domain.Invoice, pagination.Meta, error) {
	filter := portsrepo.InvoiceListFilter{
		ClientID: params.ClientID,
		Search:   params.Search,
		Limit:    page.Limit,
		Offset:   page.Offset(),
	}
	if params.Status != nil {
		status := domain.InvoiceStatus(*params.Status)
		filter.Status = &status
	}

	var err error
	if filter.IssueDateFrom, err = parseOptionalDate(params.IssueDateFrom); err != nil {
		return nil, pagination.Meta{}, apperrors.ErrValidation
	}
	if filter.IssueDateTo, err = parseOptionalDate(params.IssueDateTo); err != nil {
		return nil, pagination.Meta{}, apperrors.ErrValidation
	}
	if filter.DueDateFrom, err = parseOptionalDate(params.DueDateFrom); err != nil {
		return nil, pagination.Meta{}, apperrors.ErrValidation
	}
	if filter.DueDateTo, err = parseOptionalDate(params.DueDateTo); err != nil {
		return nil, pagination.Meta{}, apperrors.ErrValidation
	}

	invoices, total, err := s.invoiceRepo.FindInvoices(ctx, userID, filter)
	if err != nil {
		s.LogError(ctx, err, "failed to list invoices", slog.String("user_id", userID))
		return nil, pagination.Meta{}, fmt.Errorf("failed to list invoices: %w", err)
	}

	return invoices, pagination.NewMeta(page, total), nil
}

// UpdateInvoice applies the supplied fields to an invoice owned by userID.
// A changed client reference is re-verified against the same user; a changed
// invoice number is re-checked for uniqueness.
func (s *invoiceService) UpdateInvoice(ctx context.Context, userID, invoiceID string, req dto.UpdateInvoiceRequest) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, userID, invoiceID)
	if err != nil {
		return nil, err
	}

	if req.ClientID != nil && *req.ClientID != invoice.ClientID {
		if _, err := s.clientRepo.FindClientByID(ctx, userID, *req.ClientID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.NewNotFoundError("client not found")
			}
			return nil, err
		}
		invoice.ClientID = *req.ClientID
	}

	if req.InvoiceNumber != nil && *req.InvoiceNumber != invoice.InvoiceNumber {
		if _, err := s.invoiceRepo.FindInvoiceByNumber(ctx, userID, *req.InvoiceNumber); err == nil {
			return nil, apperrors.ErrDuplicate
		} else if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		invoice.InvoiceNumber = *req.InvoiceNumber
	}

	if req.IssueDate != nil {
		issueDate, err := time.Parse(dto.DateLayout, *req.IssueDate)
		if err != nil {
			return nil, apperrors.ErrValidation
		}
		invoice.IssueDate = issueDate
	}
	if req.DueDate != nil {
		dueDate, err := time.Parse(dto.DateLayout, *req.DueDate)
		if err != nil {
			return nil, apperrors.ErrValidation
		}
		invoice.DueDate = dueDate
	}
	if req.Status != nil {
		invoice.Status = domain.InvoiceStatus(*req.Status)
	}
	if req.Subtotal != nil {
		invoice.Subtotal = *req.Subtotal
	}
	if req.TaxRate != nil {
		invoice.TaxRate = *req.TaxRate
	}
	if req.TaxAmount != nil {
		invoice.TaxAmount = *req.TaxAmount
	}
	if req.Discount != nil {
		invoice.Discount = *req.Discount
	}
	if req.TotalAmount != nil {
		invoice.TotalAmount = *req.TotalAmount
	}
	if req.Currency != nil {
		invoice.Currency = *req.Currency
	}
	if req.Notes != nil {
		invoice.Notes = req.Notes
	}
	if req.Terms != nil {
		invoice.Terms = req.Terms
	}
	invoice.LastUpdatedAt = time.Now()
	invoice.LastUpdatedBy = userID

	if err := s.invoiceRepo.UpdateInvoice(ctx, *invoice); err != nil {
		s.LogError(ctx, err, "failed to update invoice", slog.String("invoice_id", invoiceID))
		return nil, err
	}

	return invoice, nil
}

// DeleteInvoice removes an invoice owned by userID together with its
// dependent rows.
func (s *invoiceService) DeleteInvoice(ctx context.Context, userID, invoiceID string) error {
	if err := s.invoiceRepo.DeleteInvoice(ctx, userID, invoiceID); err != nil {
		return err
	}
	s.LogInfo(ctx, "invoice deleted", slog.String("invoice_id", invoiceID))
	return nil
}

// BulkAction applies one action to a set of the caller's invoices. IDs the
// caller does not own are skipped by the ownership filter; the returned
// count reflects only the rows actually affected.
func (s *invoiceService) BulkAction(ctx context.Context, userID string, req dto.BulkInvoiceRequest) (int64, error) {
	switch req.Action {
	case "delete":
		affected, err := s.invoiceRepo.BulkDeleteInvoices(ctx, userID, req.InvoiceIDs)
		if err != nil {
			s.LogError(ctx, err, "bulk delete failed", slog.String("user_id", userID))
			return 0, err
		}
		s.LogInfo(ctx, "bulk delete completed", slog.Int64("affected", affected), slog.Int("requested", len(req.InvoiceIDs)))
		return affected, nil
	case "update_status":
		if req.Status == nil {
			return 0, apperrors.ErrValidation
		}
		affected, err := s.invoiceRepo.BulkUpdateInvoiceStatus(ctx, userID, req.InvoiceIDs, domain.InvoiceStatus(*req.Status), userID)
		if err != nil {
			s.LogError(ctx, err, "bulk status update failed", slog.String("user_id", userID))
			return 0, err
		}
		s.LogInfo(ctx, "bulk status update completed", slog.Int64("affected", affected), slog.Int("requested", len(req.InvoiceIDs)))
		return affected, nil
	default:
		return 0, apperrors.ErrValidation
	}
}

// requireInvoice verifies the parent invoice belongs to userID before any
// line-item access. A missing or foreign invoice surfaces as ErrNotFound.
func (s *invoiceService) requireInvoice(ctx context.Context, userID, invoiceID string) (*domain.Invoice, error) {
	return s.invoiceRepo.FindInvoiceByID(ctx, userID, invoiceID)
}

// ListInvoiceItems lists the line items of one of the user's invoices.
func (s *invoiceService) ListInvoiceItems(ctx context.Context, userID, invoiceID string) ([]domain.InvoiceItem, error) {
	if _, err := s.requireInvoice(ctx, userID, invoiceID); err != nil {
		return nil, err
	}

	items, err := s.invoiceRepo.FindItemsByInvoiceID(ctx, invoiceID)
	if err != nil {
		s.LogError(ctx, err, "failed to list invoice items", slog.String("invoice_id", invoiceID))
		return nil, err
	}
	if items == nil {
		items = []domain.InvoiceItem{}
	}
	return items, nil
}

// CreateInvoiceItem adds a line item to one of the user's invoices.
func (s *invoiceService) CreateInvoiceItem(ctx context.Context, userID, invoiceID string, req dto.CreateInvoiceItemRequest) (*domain.InvoiceItem, error) {
	if _, err := s.requireInvoice(ctx, userID, invoiceID); err != nil {
		return nil, err
	}

	now := time.Now()
	item := domain.InvoiceItem{
		ItemID:      uuid.NewString(),
		InvoiceID:   invoiceID,
		Description: req.Description,
		Quantity:    req.Quantity,
		Rate:        req.Rate,
		Amount:      req.Amount,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.invoiceRepo.SaveInvoiceItem(ctx, item); err != nil {
		s.LogError(ctx, err, "failed to create invoice item", slog.String("invoice_id", invoiceID))
		return nil, err
	}

	return &item, nil
}

// UpdateInvoiceItem updates a line item on one of the user's invoices.
func (s *invoiceService) UpdateInvoiceItem(ctx context.Context, userID, invoiceID, itemID string, req dto.UpdateInvoiceItemRequest) (*domain.InvoiceItem, error) {
	if _, err := s.requireInvoice(ctx, userID, invoiceID); err != nil {
		return nil, err
	}

	item, err := s.invoiceRepo.FindInvoiceItemByID(ctx, invoiceID, itemID)
	if err != nil {
		return nil, err
	}

	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Quantity != nil {
		item.Quantity = *req.Quantity
	}
	if req.Rate != nil {
		item.Rate = *req.Rate
	}
	if req.Amount != nil {
		item.Amount = *req.Amount
	}
	item.LastUpdatedAt = time.Now()
	item.LastUpdatedBy = userID

	if err := s.invoiceRepo.UpdateInvoiceItem(ctx, *item); err != nil {
		s.LogError(ctx, err, "failed to update invoice item", slog.String("item_id", itemID))
		return nil, err
	}

	return item, nil
}

// DeleteInvoiceItem removes a line item from one of the user's invoices.
func (s *invoiceService) DeleteInvoiceItem(ctx context.Context, userID, invoiceID, itemID string) error {
	if _, err := s.requireInvoice(ctx, userID, invoiceID); err != nil {
		return err
	}
	return s.invoiceRepo.DeleteInvoiceItem(ctx, invoiceID, itemID)
}

func parseOptionalDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse(dto.DateLayout, *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
