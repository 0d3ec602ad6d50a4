package services

import (
	"context"

	"github.com/invoiceflow/invoiceflow-backend/internal/core/domain"
	"github.com/invoiceflow/invoiceflow-backend/internal/dto"
	"github.com/invoiceflow/invoiceflow-backend/internal/utils/pagination"
)

// PaymentSvcFacade defines the business operations on payments. Ownership is
// resolved through the parent invoice on every operation.
type PaymentSvcFacade interface {
	CreatePayment(ctx context.Context, userID string, req dto.CreatePaymentRequest) (*domain.Payment, error)
	GetPaymentByID(ctx context.Context, userID, paymentID string) (*domain.Payment, error)
	ListPayments(ctx context.Context, userID string, params dto.ListPaymentsParams, page pagination.Params) ([]domain.Payment, pagination.Meta, error)
	UpdatePayment(ctx context.Context, userID, paymentID string, req dto.UpdatePaymentRequest) (*domain.Payment, error)
	DeletePayment(ctx context.Context, userID, paymentID string) error
}
