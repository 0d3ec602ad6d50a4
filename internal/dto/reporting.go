package dto

import (
	"github.com/shopspring/decimal"

	"github.com/invoiceflow/invoiceflow-backend/internal/core/domain"
)

// ReportParams defines the query parameters for the reports endpoint. An
// absent dateRange falls back to last-6-months.
type ReportParams struct {
	DateRange *string `form:"dateRange" binding:"omitempty,oneof=last-30-days last-3-months last-6-months last-year"`
}

// MonthlyRevenueDTO is one point of the monthly revenue series.
type MonthlyRevenueDTO struct {
	Month   string          `json:"month"`
	Revenue decimal.Decimal `json:"revenue"`
}

// StatusBreakdownDTO sums invoice totals into paid vs pending buckets.
type StatusBreakdownDTO struct {
	Paid    decimal.Decimal `json:"paid"`
	Pending decimal.Decimal `json:"pending"`
}

// ClientGrowthDTO is one point of the client growth series.
type ClientGrowthDTO struct {
	Month      string `json:"month"`
	NewClients int    `json:"newClients"`
	Cumulative int    `json:"cumulative"`
}

// ClientRollupDTO aggregates one client's invoices.
type ClientRollupDTO struct {
	ClientName   string          `json:"clientName"`
	InvoiceCount int             `json:"invoiceCount"`
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
	AverageValue decimal.Decimal `json:"averageValue"`
	PaymentRate  decimal.Decimal `json:"paymentRate"`
	Outstanding  decimal.Decimal `json:"outstanding"`
}

// ReportResponse is the full reports payload.
type ReportResponse struct {
	DateRange       string              `json:"dateRange"`
	TotalRevenue    decimal.Decimal     `json:"totalRevenue"`
	AverageInvoice  decimal.Decimal     `json:"averageInvoiceValue"`
	CollectionRate  decimal.Decimal     `json:"collectionRate"`
	Outstanding     decimal.Decimal     `json:"outstandingTotal"`
	MonthlyRevenue  []MonthlyRevenueDTO `json:"monthlyRevenue"`
	StatusBreakdown StatusBreakdownDTO  `json:"statusBreakdown"`
	ClientGrowth    []ClientGrowthDTO   `json:"clientGrowth"`
	ClientRollups   []ClientRollupDTO   `json:"clientRollups"`
}

// ToReportResponse converts a domain report to the response DTO.
func ToReportResponse(r *domain.Report) ReportResponse {
	monthly := make([]MonthlyRevenueDTO, len(r.MonthlyRevenue))
	for i, m := range r.MonthlyRevenue {
		monthly[i] = MonthlyRevenueDTO{Month: m.Month, Revenue: m.Revenue}
	}
	growth := make([]ClientGrowthDTO, len(r.ClientGrowth))
	for i, g := range r.ClientGrowth {
		growth[i] = ClientGrowthDTO{Month: g.Month, NewClients: g.NewClients, Cumulative: g.Cumulative}
	}
	rollups := make([]ClientRollupDTO, len(r.ClientRollups))
	for i, c := range r.ClientRollups {
		rollups[i] = ClientRollupDTO{
			ClientName:   c.ClientName,
			InvoiceCount: c.InvoiceCount,
			TotalRevenue: c.TotalRevenue,
			AverageValue: c.AverageValue,
			PaymentRate:  c.PaymentRate,
			Outstanding:  c.Outstanding,
		}
	}
	return ReportResponse{
		DateRange:       string(r.Range),
		TotalRevenue:    r.KPIs.TotalRevenue,
		AverageInvoice:  r.KPIs.AverageInvoice,
		CollectionRate:  r.KPIs.CollectionRate,
		Outstanding:     r.KPIs.Outstanding,
		MonthlyRevenue:  monthly,
		StatusBreakdown: StatusBreakdownDTO{Paid: r.StatusBreakdown.Paid, Pending: r.StatusBreakdown.Pending},
		ClientGrowth:    growth,
		ClientRollups:   rollups,
	}
}
