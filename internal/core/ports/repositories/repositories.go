package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	ClientRepo    ClientRepositoryFacade
	InvoiceRepo   InvoiceRepositoryFacade
	PaymentRepo   PaymentRepositoryFacade
	SettingsRepo  SettingsRepositoryFacade
	UserRepo      UserRepositoryFacade
	ReportingRepo ReportingRepositoryFacade
}
