package services

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/invoiceflow/invoiceflow-backend/internal/core/domain"
)

// --- Mock ReportingRepository ---
type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) GetInvoicesWithClient(ctx context.Context, userID string, from, to time.Time) ([]domain.ReportInvoice, error) {
	args := m.Called(ctx, userID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ReportInvoice), args.Error(1)
}

func (m *MockReportingRepository) GetClientCreationDates(ctx context.Context, userID string) ([]time.Time, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]time.Time), args.Error(1)
}

// --- Test Suite ---

// The suite constructs the service directly so the clock can be pinned.
type ReportingServiceTestSuite struct {
	suite.Suite
	mockRepo *MockReportingRepository
	service  *reportingService
	now      time.Time
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockReportingRepository)
	suite.now = time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	suite.service = &reportingService{
		reportingRepo: suite.mockRepo,
		now:           func() time.Time { return suite.now },
	}
}

func (suite *ReportingServiceTestSuite) expectRepo(invoices []domain.ReportInvoice, clientDates []time.Time) {
	suite.mockRepo.On("GetInvoicesWithClient", mock.Anything, "user-1", mock.AnythingOfType("time.Time"), suite.now).
		Return(invoices, nil).Once()
	suite.mockRepo.On("GetClientCreationDates", mock.Anything, "user-1").
		Return(clientDates, nil).Once()
}

func inv(client string, status domain.InvoiceStatus, amount int64, issued time.Time) domain.ReportInvoice {
	return domain.ReportInvoice{
		ClientName:  client,
		Status:      status,
		TotalAmount: decimal.NewFromInt(amount),
		IssueDate:   issued,
	}
}

// --- Test Cases ---

func (suite *ReportingServiceTestSuite) TestGenerateReport_KPIs() {
	ctx := context.Background()
	issued := time.Date(2026, time.February, 10, 0, 0, 0, 0, time.UTC)

	invoices := make([]domain.ReportInvoice, 0, 10)
	for i := 0; i < 7; i++ {
		invoices = append(invoices, inv("Acme", domain.InvoiceStatusPaid, 100, issued))
	}
	invoices = append(invoices,
		inv("Acme", domain.InvoiceStatusSent, 50, issued),
		inv("Acme", domain.InvoiceStatusOverdue, 50, issued),
		inv("Acme", domain.InvoiceStatusDraft, 100, issued),
	)
	suite.expectRepo(invoices, nil)

	report, err := suite.service.GenerateReport(ctx, "user-1", domain.RangeLast6Months)

	suite.Require().NoError(err)
	suite.Require().NotNil(report)
	suite.True(report.KPIs.TotalRevenue.Equal(decimal.NewFromInt(700)))
	suite.True(report.KPIs.Outstanding.Equal(decimal.NewFromInt(200)))
	suite.True(report.KPIs.AverageInvoice.Equal(decimal.NewFromInt(90)))
	suite.True(report.KPIs.CollectionRate.Equal(decimal.NewFromInt(70)))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestGenerateReport_CancelledExcluded() {
	ctx := context.Background()
	issued := time.Date(2026, time.February, 10, 0, 0, 0, 0, time.UTC)

	invoices := []domain.ReportInvoice{
		inv("Acme", domain.InvoiceStatusPaid, 100, issued),
		inv("Acme", domain.InvoiceStatusCancelled, 900, issued),
	}
	suite.expectRepo(invoices, nil)

	report, err := suite.service.GenerateReport(ctx, "user-1", domain.RangeLast6Months)

	suite.Require().NoError(err)
	suite.True(report.KPIs.TotalRevenue.Equal(decimal.NewFromInt(100)))
	suite.True(report.KPIs.Outstanding.IsZero())
	suite.True(report.KPIs.AverageInvoice.Equal(decimal.NewFromInt(100)))
	suite.True(report.KPIs.CollectionRate.Equal(decimal.NewFromInt(100)))
	suite.True(report.StatusBreakdown.Paid.Equal(decimal.NewFromInt(100)))
	suite.True(report.StatusBreakdown.Pending.IsZero())
}

func (suite *ReportingServiceTestSuite) TestGenerateReport_Empty() {
	ctx := context.Background()
	suite.expectRepo([]domain.ReportInvoice{}, []time.Time{})

	report, err := suite.service.GenerateReport(ctx, "user-1", domain.RangeLast30Days)

	suite.Require().NoError(err)
	suite.True(report.KPIs.TotalRevenue.IsZero())
	suite.True(report.KPIs.AverageInvoice.IsZero())
	suite.True(report.KPIs.CollectionRate.IsZero())
	suite.True(report.KPIs.Outstanding.IsZero())
	suite.Empty(report.MonthlyRevenue)
	suite.Empty(report.ClientRollups)
	suite.Equal(domain.RangeLast30Days, report.Range)
}

func (suite *ReportingServiceTestSuite) TestGenerateReport_MonthlyRevenuePaidOnly() {
	ctx := context.Background()
	jan := time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2026, time.February, 20, 0, 0, 0, 0, time.UTC)

	invoices := []domain.ReportInvoice{
		inv("Acme", domain.InvoiceStatusPaid, 100, jan),
		inv("Acme", domain.InvoiceStatusPaid, 200, jan),
		inv("Acme", domain.InvoiceStatusPaid, 300, feb),
		inv("Acme", domain.InvoiceStatusSent, 999, feb),
	}
	suite.expectRepo(invoices, nil)

	report, err := suite.service.GenerateReport(ctx, "user-1", domain.RangeLast6Months)

	suite.Require().NoError(err)
	suite.Require().Len(report.MonthlyRevenue, 2)
	suite.Equal("Jan 2026", report.MonthlyRevenue[0].Month)
	suite.True(report.MonthlyRevenue[0].Revenue.Equal(decimal.NewFromInt(300)))
	suite.Equal("Feb 2026", report.MonthlyRevenue[1].Month)
	suite.True(report.MonthlyRevenue[1].Revenue.Equal(decimal.NewFromInt(300)))
}

func (suite *ReportingServiceTestSuite) TestGenerateReport_ClientGrowthCarriesPriorClients() {
	ctx := context.Background()

	// Window is last-30-days from 2026-03-15, so it starts 2026-02-13.
	clientDates := []time.Time{
		time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, time.February, 20, 0, 0, 0, 0, time.UTC),
		time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC),
	}
	suite.expectRepo(nil, clientDates)

	report, err := suite.service.GenerateReport(ctx, "user-1", domain.RangeLast30Days)

	suite.Require().NoError(err)
	suite.Require().Len(report.ClientGrowth, 2)
	suite.Equal("Feb 2026", report.ClientGrowth[0].Month)
	suite.Equal(1, report.ClientGrowth[0].NewClients)
	suite.Equal(3, report.ClientGrowth[0].Cumulative)
	suite.Equal("Mar 2026", report.ClientGrowth[1].Month)
	suite.Equal(1, report.ClientGrowth[1].NewClients)
	suite.Equal(4, report.ClientGrowth[1].Cumulative)
}

func (suite *ReportingServiceTestSuite) TestGenerateReport_ClientRollups() {
	ctx := context.Background()
	issued := time.Date(2026, time.February, 10, 0, 0, 0, 0, time.UTC)

	invoices := []domain.ReportInvoice{
		inv("Beta Corp", domain.InvoiceStatusPaid, 100, issued),
		inv("Beta Corp", domain.InvoiceStatusSent, 300, issued),
		inv("Acme", domain.InvoiceStatusPaid, 500, issued),
	}
	suite.expectRepo(invoices, nil)

	report, err := suite.service.GenerateReport(ctx, "user-1", domain.RangeLast6Months)

	suite.Require().NoError(err)
	suite.Require().Len(report.ClientRollups, 2)

	acme := report.ClientRollups[0]
	suite.Equal("Acme", acme.ClientName)
	suite.Equal(1, acme.InvoiceCount)
	suite.True(acme.TotalRevenue.Equal(decimal.NewFromInt(500)))
	suite.True(acme.PaymentRate.Equal(decimal.NewFromInt(100)))
	suite.True(acme.Outstanding.IsZero())

	beta := report.ClientRollups[1]
	suite.Equal("Beta Corp", beta.ClientName)
	suite.Equal(2, beta.InvoiceCount)
	suite.True(beta.TotalRevenue.Equal(decimal.NewFromInt(400)))
	suite.True(beta.AverageValue.Equal(decimal.NewFromInt(200)))
	suite.True(beta.PaymentRate.Equal(decimal.NewFromInt(50)))
	suite.True(beta.Outstanding.Equal(decimal.NewFromInt(300)))
}

func (suite *ReportingServiceTestSuite) TestGenerateReport_RepoError() {
	ctx := context.Background()
	suite.mockRepo.On("GetInvoicesWithClient", mock.Anything, "user-1", mock.AnythingOfType("time.Time"), suite.now).
		Return(nil, context.DeadlineExceeded).Once()

	report, err := suite.service.GenerateReport(ctx, "user-1", domain.RangeLast6Months)

	suite.Require().Error(err)
	suite.Nil(report)
	suite.ErrorIs(err, context.DeadlineExceeded)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestReportingService(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
