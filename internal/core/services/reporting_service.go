package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ledgerline/ledger_backend/internal/core/domain"
	portsrepo "github.com/ledgerline/ledger_backend/internal/core/ports/repositories"
	portssvc "github.com/ledgerline/ledger_backend/internal/core/ports/services"
	"github.com/ledgerline/ledger_backend/internal/middleware"
	"github.com/shopspring/decimal"
)

// reportingService exposes read-only projections over posted lines.
// VOID entries are excluded everywhere; DRAFT only on explicit request.
type reportingService struct {
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new reporting service.
func NewReportingService(repo portsrepo.ReportingRepository) portssvc.ReportingSvcFacade {
	return &reportingService{reportingRepo: repo}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// GeneralLedger returns lines grouped by account, ordered by entry date.
func (s *reportingService) GeneralLedger(ctx context.Context, scope domain.Scope, from, to time.Time, includeDraft bool) ([]domain.GeneralLedgerAccount, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	accounts, err := s.reportingRepo.GetGeneralLedgerData(ctx, scope, from, to, includeDraft)
	if err != nil {
		logger.Error("Failed to retrieve general ledger data", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to retrieve general ledger data: %w", err)
	}

	logger.Info("General ledger generated",
		slog.Int("account_count", len(accounts)),
		slog.Bool("include_draft", includeDraft))
	return accounts, nil
}

// TrialBalance returns per-account net debit/credit totals as of a date.
func (s *reportingService) TrialBalance(ctx context.Context, scope domain.Scope, asOf time.Time, includeDraft bool) ([]domain.TrialBalanceRow, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	rows, err := s.reportingRepo.GetTrialBalanceData(ctx, scope, asOf, includeDraft)
	if err != nil {
		logger.Error("Failed to retrieve trial balance data",
			slog.String("error", err.Error()),
			slog.String("as_of", asOf.Format(time.RFC3339)))
		return nil, fmt.Errorf("failed to retrieve trial balance data: %w", err)
	}

	logger.Info("Trial balance generated",
		slog.String("as_of", asOf.Format(time.RFC3339)),
		slog.Int("row_count", len(rows)))
	return rows, nil
}

// CashFlow returns inflow/outflow totals restricted to cash-equivalent accounts.
func (s *reportingService) CashFlow(ctx context.Context, scope domain.Scope, from, to time.Time, includeDraft bool) (*domain.CashFlowReport, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	rows, err := s.reportingRepo.GetCashFlowData(ctx, scope, from, to, includeDraft)
	if err != nil {
		logger.Error("Failed to retrieve cash flow data", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to retrieve cash flow data: %w", err)
	}

	totalIn := decimal.Zero
	totalOut := decimal.Zero
	for _, row := range rows {
		totalIn = totalIn.Add(row.Inflow)
		totalOut = totalOut.Add(row.Outflow)
	}

	report := &domain.CashFlowReport{
		From:         from,
		To:           to,
		Rows:         rows,
		TotalIn:      totalIn,
		TotalOut:     totalOut,
		NetChange:    totalIn.Sub(totalOut),
		IncludeDraft: includeDraft,
	}

	logger.Info("Cash flow report generated",
		slog.Int("row_count", len(rows)),
		slog.String("net_change", report.NetChange.String()))
	return report, nil
}
