package repositories

import (
	"context"
	"time"

	"github.com/ledgerline/ledger_backend/internal/core/domain"
)

// ReportingRepository defines the read-only aggregation queries behind the
// reporting projections. Implementations must never mutate entry data.
// VOID entries are excluded from every query; DRAFT entries are included
// only when includeDraft is set.
type ReportingRepository interface {
	// GetGeneralLedgerData retrieves lines grouped by account and ordered by
	// entry date for the scope and date range.
	GetGeneralLedgerData(ctx context.Context, scope domain.Scope, from, to time.Time, includeDraft bool) ([]domain.GeneralLedgerAccount, error)

	// GetTrialBalanceData retrieves per-account debit/credit totals as of a date.
	GetTrialBalanceData(ctx context.Context, scope domain.Scope, asOf time.Time, includeDraft bool) ([]domain.TrialBalanceRow, error)

	// GetCashFlowData retrieves inflow/outflow totals over cash-equivalent
	// accounts for the date range.
	GetCashFlowData(ctx context.Context, scope domain.Scope, from, to time.Time, includeDraft bool) ([]domain.CashFlowRow, error)
}
