package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/invoiceflow/invoiceflow-backend/internal/core/domain"
	portsrepo "github.com/invoiceflow/invoiceflow-backend/internal/core/ports/repositories"
	portssvc "github.com/invoiceflow/invoiceflow-backend/internal/core/ports/services"
)

const (
	monthKeyLayout   = "2006-01"
	monthLabelLayout = "Jan 2006"
)

func monthLabel(key string) string {
	t, err := time.Parse(monthKeyLayout, key)
	if err != nil {
		return key
	}
	return t.Format(monthLabelLayout)
}

var oneHundred = decimal.NewFromInt(100)

type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepositoryFacade
	now           func() time.Time
}

// NewReportingService creates a new reporting service.
func NewReportingService(reportingRepo portsrepo.ReportingRepositoryFacade) portssvc.ReportingSvcFacade {
	return &reportingService{reportingRepo: reportingRepo, now: time.Now}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// GenerateReport aggregates the user's invoices in the preset's date range.
// Everything is recomputed per request from two queries; there is no
// caching or precomputed rollup table.
func (s *reportingService) GenerateReport(ctx context.Context, userID string, preset domain.DateRangePreset) (*domain.Report, error) {
	now := s.now()
	from := preset.StartTime(now)

	invoices, err := s.reportingRepo.GetInvoicesWithClient(ctx, userID, from, now)
	if err != nil {
		s.LogError(ctx, err, "failed to fetch invoices for report", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to generate report: %w", err)
	}

	clientDates, err := s.reportingRepo.GetClientCreationDates(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "failed to fetch client dates for report", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to generate report: %w", err)
	}

	report := &domain.Report{
		Range:           preset,
		KPIs:            computeKPIs(invoices),
		MonthlyRevenue:  monthlyRevenue(invoices),
		StatusBreakdown: statusBreakdown(invoices),
		ClientGrowth:    clientGrowth(clientDates, from, now),
		ClientRollups:   clientRollups(invoices),
	}
	return report, nil
}

// cancelled invoices are excluded from every aggregate.
func active(invoices []domain.ReportInvoice) []domain.ReportInvoice {
	out := make([]domain.ReportInvoice, 0, len(invoices))
	for _, inv := range invoices {
		if inv.Status != domain.InvoiceStatusCancelled {
			out = append(out, inv)
		}
	}
	return out
}

func computeKPIs(invoices []domain.ReportInvoice) domain.ReportKPIs {
	kpis := domain.ReportKPIs{
		TotalRevenue:   decimal.Zero,
		AverageInvoice: decimal.Zero,
		CollectionRate: decimal.Zero,
		Outstanding:    decimal.Zero,
	}

	counted := active(invoices)
	if len(counted) == 0 {
		return kpis
	}

	paidCount := 0
	var allAmounts decimal.Decimal
	for _, inv := range counted {
		allAmounts = allAmounts.Add(inv.TotalAmount)
		if inv.Status == domain.InvoiceStatusPaid {
			kpis.TotalRevenue = kpis.TotalRevenue.Add(inv.TotalAmount)
			paidCount++
		} else {
			kpis.Outstanding = kpis.Outstanding.Add(inv.TotalAmount)
		}
	}

	total := decimal.NewFromInt(int64(len(counted)))
	kpis.AverageInvoice = allAmounts.Div(total)
	kpis.CollectionRate = decimal.NewFromInt(int64(paidCount)).Div(total).Mul(oneHundred)
	return kpis
}

// monthlyRevenue buckets paid invoice totals by calendar month.
func monthlyRevenue(invoices []domain.ReportInvoice) []domain.MonthlyRevenuePoint {
	buckets := make(map[string]decimal.Decimal)
	for _, inv := range invoices {
		if inv.Status != domain.InvoiceStatusPaid {
			continue
		}
		key := inv.IssueDate.Format(monthKeyLayout)
		buckets[key] = buckets[key].Add(inv.TotalAmount)
	}

	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	points := make([]domain.MonthlyRevenuePoint, len(keys))
	for i, k := range keys {
		points[i] = domain.MonthlyRevenuePoint{Month: monthLabel(k), Revenue: buckets[k]}
	}
	return points
}

func statusBreakdown(invoices []domain.ReportInvoice) domain.StatusBreakdown {
	breakdown := domain.StatusBreakdown{Paid: decimal.Zero, Pending: decimal.Zero}
	for _, inv := range active(invoices) {
		if inv.Status == domain.InvoiceStatusPaid {
			breakdown.Paid = breakdown.Paid.Add(inv.TotalAmount)
		} else {
			breakdown.Pending = breakdown.Pending.Add(inv.TotalAmount)
		}
	}
	return breakdown
}

// clientGrowth buckets client sign-ups per month inside the window and
// carries the running total from before the window as the starting
// cumulative count.
func clientGrowth(creationDates []time.Time, from, to time.Time) []domain.ClientGrowthPoint {
	cumulativeBefore := 0
	newPerMonth := make(map[string]int)
	for _, d := range creationDates {
		if d.Before(from) {
			cumulativeBefore++
			continue
		}
		if d.After(to) {
			continue
		}
		newPerMonth[d.Format(monthKeyLayout)]++
	}

	var points []domain.ClientGrowthPoint
	cumulative := cumulativeBefore
	for cursor := time.Date(from.Year(), from.Month(), 1, 0, 0, 0, 0, time.UTC); !cursor.After(to); cursor = cursor.AddDate(0, 1, 0) {
		key := cursor.Format(monthKeyLayout)
		cumulative += newPerMonth[key]
		points = append(points, domain.ClientGrowthPoint{
			Month:      monthLabel(key),
			NewClients: newPerMonth[key],
			Cumulative: cumulative,
		})
	}
	return points
}

func clientRollups(invoices []domain.ReportInvoice) []domain.ClientRollup {
	type agg struct {
		count       int
		total       decimal.Decimal
		paid        decimal.Decimal
		paidCount   int
		outstanding decimal.Decimal
	}
	byClient := make(map[string]*agg)
	for _, inv := range active(invoices) {
		a, ok := byClient[inv.ClientName]
		if !ok {
			a = &agg{}
			byClient[inv.ClientName] = a
		}
		a.count++
		a.total = a.total.Add(inv.TotalAmount)
		if inv.Status == domain.InvoiceStatusPaid {
			a.paid = a.paid.Add(inv.TotalAmount)
			a.paidCount++
		} else {
			a.outstanding = a.outstanding.Add(inv.TotalAmount)
		}
	}

	names := make([]string, 0, len(byClient))
	for name := range byClient {
		names = append(names, name)
	}
	sort.Strings(names)

	rollups := make([]domain.ClientRollup, 0, len(names))
	for _, name := range names {
		a := byClient[name]
		rollup := domain.ClientRollup{
			ClientName:   name,
			InvoiceCount: a.count,
			TotalRevenue: a.total,
			AverageValue: decimal.Zero,
			PaymentRate:  decimal.Zero,
			Outstanding:  a.outstanding,
		}
		if a.count > 0 {
			rollup.AverageValue = a.total.Div(decimal.NewFromInt(int64(a.count)))
			rollup.PaymentRate = decimal.NewFromInt(int64(a.paidCount)).Div(decimal.NewFromInt(int64(a.count))).Mul(oneHundred)
		}
		rollups = append(rollups, rollup)
	}
	return rollups
}
