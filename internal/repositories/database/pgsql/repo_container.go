package pgsql

import (
	portsrepo "github.com/invoiceflow/invoiceflow-backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	clientRepo := newPgxClientRepository(dbPool)
	invoiceRepo := newPgxInvoiceRepository(dbPool)
	paymentRepo := newPgxPaymentRepository(dbPool)
	settingsRepo := newPgxSettingsRepository(dbPool)
	userRepo := newPgxUserRepository(dbPool)
	reportingRepo := newPgxReportingRepository(dbPool)

	return portsrepo.RepositoryProvider{
		ClientRepo:    clientRepo,
		InvoiceRepo:   invoiceRepo,
		PaymentRepo:   paymentRepo,
		SettingsRepo:  settingsRepo,
		UserRepo:      userRepo,
		ReportingRepo: reportingRepo,
	}
}
