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

type paymentService struct {
	BaseService
	paymentRepo portsrepo.PaymentRepositoryFacade
	invoiceRepo portsrepo.InvoiceRepositoryFacade
}

// NewPaymentService creates a new payment service.
func NewPaymentService(paymentRepo portsrepo.PaymentRepositoryFacade, invoiceRepo portsrepo.InvoiceRepositoryFacade) portssvc.PaymentSvcFacade {
	return &paymentService{paymentRepo: paymentRepo, invoiceRepo: invoiceRepo}
}

var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

// CreatePayment records a payment against one of the user's invoices. The
// parent invoice is fetched first so a missing or foreign invoice surfaces
// as ErrNotFound before anything is written.
func (s *paymentService) CreatePayment(ctx context.Context, userID string, req dto.CreatePaymentRequest) (*domain.Payment, error) {
	if _, err := s.invoiceRepo.FindInvoiceByID(ctx, userID, req.InvoiceID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("invoice not found")
		}
		return nil, err
	}

	paymentDate, err := time.Parse(dto.DateLayout, req.PaymentDate)
	if err != nil {
		return nil, apperrors.ErrValidation
	}

	now := time.Now()
	payment := domain.Payment{
		PaymentID:   uuid.NewString(),
		InvoiceID:   req.InvoiceID,
		Amount:      req.Amount,
		PaymentDate: paymentDate,
		Method:      domain.PaymentMethod(req.Method),
		Reference:   req.Reference,
		Notes:       req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.paymentRepo.SavePayment(ctx, payment); err != nil {
		s.LogError(ctx, err, "failed to create payment", slog.String("invoice_id", req.InvoiceID))
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}

	s.LogInfo(ctx, "payment recorded", slog.String("payment_id", payment.PaymentID), slog.String("invoice_id", payment.InvoiceID))
	return &payment, nil
}

// GetPaymentByID retrieves one payment whose parent invoice belongs to userID.
func (s *paymentService) GetPaymentByID(ctx context.Context, userID, paymentID string) (*domain.Payment, error) {
	return s.paymentRepo.FindPaymentByID(ctx, userID, paymentID)
}

// ListPayments retrieves a filtered page of the user's payments.
func (s *paymentService) ListPayments(ctx context.Context, userID string, params dto.ListPaymentsParams, page pagination.Params) ([]domain.Payment, pagination.Meta, error) {
	filter := portsrepo.PaymentListFilter{
		InvoiceID: params.InvoiceID,
		Limit:     page.Limit,
		Offset:    page.Offset(),
	}
	if params.Method != nil {
		method := domain.PaymentMethod(*params.Method)
		filter.Method = &method
	}

	var err error
	if filter.DateFrom, err = parseOptionalDate(params.DateFrom); err != nil {
		return nil, pagination.Meta{}, apperrors.ErrValidation
	}
	if filter.DateTo, err = parseOptionalDate(params.DateTo); err != nil {
		return nil, pagination.Meta{}, apperrors.ErrValidation
	}

	payments, total, err := s.paymentRepo.FindPayments(ctx, userID, filter)
	if err != nil {
		s.LogError(ctx, err, "failed to list payments", slog.String("user_id", userID))
		return nil, pagination.Meta{}, fmt.Errorf("failed to list payments: %w", err)
	}

	return payments, pagination.NewMeta(page, total), nil
}

// UpdatePayment applies the supplied fields to a payment whose parent
// invoice belongs to userID.
func (s *paymentService) UpdatePayment(ctx context.Context, userID, paymentID string, req dto.UpdatePaymentRequest) (*domain.Payment, error) {
	payment, err := s.paymentRepo.FindPaymentByID(ctx, userID, paymentID)
	if err != nil {
		return nil, err
	}

	if req.Amount != nil {
		payment.Amount = *req.Amount
	}
	if req.PaymentDate != nil {
		paymentDate, err := time.Parse(dto.DateLayout, *req.PaymentDate)
		if err != nil {
			return nil, apperrors.ErrValidation
		}
		payment.PaymentDate = paymentDate
	}
	if req.Method != nil {
		payment.Method = domain.PaymentMethod(*req.Method)
	}
	if req.Reference != nil {
		payment.Reference = req.Reference
	}
	if req.Notes != nil {
		payment.Notes = req.Notes
	}
	payment.LastUpdatedAt = time.Now()
	payment.LastUpdatedBy = userID

	if err := s.paymentRepo.UpdatePayment(ctx, userID, *payment); err != nil {
		s.LogError(ctx, err, "failed to update payment", slog.String("payment_id", paymentID))
		return nil, err
	}

	return payment, nil
}

// DeletePayment removes a payment whose parent invoice belongs to userID.
func (s *paymentService) DeletePayment(ctx context.Context, userID, paymentID string) error {
	if err := s.paymentRepo.DeletePayment(ctx, userID, paymentID); err != nil {
		return err
	}
	s.LogInfo(ctx, "payment deleted", slog.String("payment_id", paymentID))
	return nil
}
