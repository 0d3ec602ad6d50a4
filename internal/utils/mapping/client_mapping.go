package mapping

import (
	"github.com/invoiceflow/invoiceflow-backend/internal/core/domain"
	"github.com/invoiceflow/invoiceflow-backend/internal/models"
)

// ToModelClient converts a domain Client to a model Client
func ToModelClient(d domain.Client) models.Client {
	return models.Client{
		ClientID:           d.ClientID,
		UserID:             d.UserID,
		CompanyName:        d.CompanyName,
		ContactName:        d.ContactName,
		Email:              d.Email,
		Phone:              d.Phone,
		Website:            d.Website,
		Address:            d.Address,
		Status:             string(d.Status),
		BillingFrequency:   string(d.BillingFrequency),
		TotalBilled:        d.TotalBilled,
		OutstandingBalance: d.OutstandingBalance,
		Notes:              d.Notes,
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainClient converts a model Client to a domain Client
func ToDomainClient(m models.Client) domain.Client {
	return domain.Client{
		ClientID:           m.ClientID,
		UserID:             m.UserID,
		CompanyName:        m.CompanyName,
		ContactName:        m.ContactName,
		Email:              m.Email,
		Phone:              m.Phone,
		Website:            m.Website,
		Address:            m.Address,
		Status:             domain.ClientStatus(m.Status),
		BillingFrequency:   domain.BillingFrequency(m.BillingFrequency),
		TotalBilled:        m.TotalBilled,
		OutstandingBalance: m.OutstandingBalance,
		Notes:              m.Notes,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainClientSlice converts a slice of model Clients to a slice of domain Clients
func ToDomainClientSlice(ms []models.Client) []domain.Client {
	ds := make([]domain.Client, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainClient(m)
	}
	return ds
}
