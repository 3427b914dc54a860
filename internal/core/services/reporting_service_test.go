package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/ledgerline/ledger_backend/internal/core/domain"
	portsrepo "github.com/ledgerline/ledger_backend/internal/core/ports/repositories"
	portssvc "github.com/ledgerline/ledger_backend/internal/core/ports/services"
	"github.com/ledgerline/ledger_backend/internal/core/services"
)

// --- Mock ReportingRepository ---
type MockReportingRepository struct {
	mock.Mock
}

var _ portsrepo.ReportingRepository = (*MockReportingRepository)(nil)

func (m *MockReportingRepository) GetGeneralLedgerData(ctx context.Context, scope domain.Scope, from, to time.Time, includeDraft bool) ([]domain.GeneralLedgerAccount, error) {
	args := m.Called(ctx, scope, from, to, includeDraft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GeneralLedgerAccount), args.Error(1)
}

func (m *MockReportingRepository) GetTrialBalanceData(ctx context.Context, scope domain.Scope, asOf time.Time, includeDraft bool) ([]domain.TrialBalanceRow, error) {
	args := m.Called(ctx, scope, asOf, includeDraft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TrialBalanceRow), args.Error(1)
}

func (m *MockReportingRepository) GetCashFlowData(ctx context.Context, scope domain.Scope, from, to time.Time, includeDraft bool) ([]domain.CashFlowRow, error) {
	args := m.Called(ctx, scope, from, to, includeDraft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CashFlowRow), args.Error(1)
}

// --- Test Suite Setup ---
type ReportingServiceTestSuite struct {
	suite.Suite
	mockRepo *MockReportingRepository
	service  portssvc.ReportingSvcFacade
	scope    domain.Scope
	from     time.Time
	to       time.Time
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockReportingRepository)
	suite.service = services.NewReportingService(suite.mockRepo)
	suite.scope = domain.Scope{TenantID: uuid.NewString(), CompanyID: uuid.NewString()}
	suite.from = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	suite.to = time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)
}

func (suite *ReportingServiceTestSuite) TestTrialBalance_Success() {
	ctx := context.Background()
	asOf := suite.to
	rows := []domain.TrialBalanceRow{
		{AccountID: uuid.NewString(), AccountCode: "1000", AccountType: domain.Asset, Debit: decimal.NewFromInt(500), Credit: decimal.NewFromInt(100)},
		{AccountID: uuid.NewString(), AccountCode: "4000", AccountType: domain.Revenue, Debit: decimal.NewFromInt(100), Credit: decimal.NewFromInt(500)},
	}

	suite.mockRepo.On("GetTrialBalanceData", ctx, suite.scope, asOf, false).Return(rows, nil).Once()

	result, err := suite.service.TrialBalance(ctx, suite.scope, asOf, false)

	suite.Require().NoError(err)
	suite.Len(result, 2)

	// Totals over a set of balanced entries always agree.
	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	for _, row := range result {
		totalDebit = totalDebit.Add(row.Debit)
		totalCredit = totalCredit.Add(row.Credit)
	}
	suite.True(totalDebit.Equal(totalCredit))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestTrialBalance_RepoError() {
	ctx := context.Background()

	suite.mockRepo.On("GetTrialBalanceData", ctx, suite.scope, suite.to, false).
		Return(nil, errors.New("connection refused")).Once()

	_, err := suite.service.TrialBalance(ctx, suite.scope, suite.to, false)

	suite.Require().Error(err)
}

func (suite *ReportingServiceTestSuite) TestGeneralLedger_PassesIncludeDraft() {
	ctx := context.Background()

	suite.mockRepo.On("GetGeneralLedgerData", ctx, suite.scope, suite.from, suite.to, true).
		Return([]domain.GeneralLedgerAccount{}, nil).Once()

	result, err := suite.service.GeneralLedger(ctx, suite.scope, suite.from, suite.to, true)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestCashFlow_ComputesTotals() {
	ctx := context.Background()
	rows := []domain.CashFlowRow{
		{AccountID: uuid.NewString(), AccountCode: "1000", Inflow: decimal.NewFromInt(300), Outflow: decimal.NewFromInt(120)},
		{AccountID: uuid.NewString(), AccountCode: "1010", Inflow: decimal.NewFromInt(50), Outflow: decimal.NewFromInt(80)},
	}

	suite.mockRepo.On("GetCashFlowData", ctx, suite.scope, suite.from, suite.to, false).Return(rows, nil).Once()

	report, err := suite.service.CashFlow(ctx, suite.scope, suite.from, suite.to, false)

	suite.Require().NoError(err)
	suite.True(report.TotalIn.Equal(decimal.NewFromInt(350)))
	suite.True(report.TotalOut.Equal(decimal.NewFromInt(200)))
	suite.True(report.NetChange.Equal(decimal.NewFromInt(150)))
	suite.False(report.IncludeDraft)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
