package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateRangePreset names a report window.
type DateRangePreset string

const (
	RangeLast30Days  DateRangePreset = "last-30-days"
	RangeLast3Months DateRangePreset = "last-3-months"
	RangeLast6Months DateRangePreset = "last-6-months"
	RangeLastYear    DateRangePreset = "last-year"
)

// StartTime maps the preset to its computed lower bound relative to now.
// Unknown presets fall back to the last-6-months default.
func (p DateRangePreset) StartTime(now time.Time) time.Time {
	switch p {
	case RangeLast30Days:
		return now.AddDate(0, 0, -30)
	case RangeLast3Months:
		return now.AddDate(0, -3, 0)
	case RangeLastYear:
		return now.AddDate(-1, 0, 0)
	default:
		return now.AddDate(0, -6, 0)
	}
}

// ReportInvoice is an invoice row joined with its client's company name,
// fetched for in-memory report aggregation.
type ReportInvoice struct {
	InvoiceID   string
	ClientName  string
	Status      InvoiceStatus
	TotalAmount decimal.Decimal
	IssueDate   time.Time
}

// MonthlyRevenuePoint is one bucket of the monthly revenue series.
type MonthlyRevenuePoint struct {
	Month   string
	Revenue decimal.Decimal
}

// StatusBreakdown sums invoice totals into paid vs pending buckets.
type StatusBreakdown struct {
	Paid    decimal.Decimal
	Pending decimal.Decimal
}

// ClientGrowthPoint is one bucket of the new/cumulative client series.
type ClientGrowthPoint struct {
	Month      string
	NewClients int
	Cumulative int
}

// ClientRollup aggregates a single client's invoices.
type ClientRollup struct {
	ClientName   string
	InvoiceCount int
	TotalRevenue decimal.Decimal
	AverageValue decimal.Decimal
	PaymentRate  decimal.Decimal
	Outstanding  decimal.Decimal
}

// ReportKPIs are the scalar headline numbers of a report.
type ReportKPIs struct {
	TotalRevenue   decimal.Decimal
	AverageInvoice decimal.Decimal
	CollectionRate decimal.Decimal
	Outstanding    decimal.Decimal
}

// Report is the full aggregation result for one date range.
type Report struct {
	Range           DateRangePreset
	KPIs            ReportKPIs
	MonthlyRevenue  []MonthlyRevenuePoint
	StatusBreakdown StatusBreakdown
	ClientGrowth    []ClientGrowthPoint
	ClientRollups   []ClientRollup
}
