package services

import (
	portsrepo "github.com/invoiceflow/invoiceflow-backend/internal/core/ports/repositories"
	portssvc "github.com/invoiceflow/invoiceflow-backend/internal/core/ports/services"
	"github.com/invoiceflow/invoiceflow-backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Client = NewClientService(repos.ClientRepo)
	container.Invoice = NewInvoiceService(repos.InvoiceRepo, repos.ClientRepo)
	container.Payment = NewPaymentService(repos.PaymentRepo, repos.InvoiceRepo)
	container.Settings = NewSettingsService(repos.SettingsRepo)
	container.Reporting = NewReportingService(repos.ReportingRepo)
	container.User = NewUserService(repos.UserRepo)

	container.Token = NewTokenService(cfg, container.User)
	container.GoogleOAuth = NewGoogleOAuthHandlerService(cfg)

	return container
}
