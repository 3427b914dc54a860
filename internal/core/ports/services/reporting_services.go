package services

import (
	"context"
	"time"

	"github.com/ledgerline/ledger_backend/internal/core/domain"
)

// ReportingSvcFacade exposes the read-side projections over posted lines.
// Projections never mutate the entry store.
type ReportingSvcFacade interface {
	GeneralLedger(ctx context.Context, scope domain.Scope, from, to time.Time, includeDraft bool) ([]domain.GeneralLedgerAccount, error)
	TrialBalance(ctx context.Context, scope domain.Scope, asOf time.Time, includeDraft bool) ([]domain.TrialBalanceRow, error)
	CashFlow(ctx context.Context, scope domain.Scope, from, to time.Time, includeDraft bool) (*domain.CashFlowReport, error)
}
