package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ledgerline/ledger_backend/internal/core/domain"
	portsrepo "github.com/ledgerline/ledger_backend/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// PgxReportingRepository implements the read-only reporting aggregations.
// VOID entries are excluded from every query; DRAFT entries appear only when
// includeDraft is set.
type PgxReportingRepository struct {
	BaseRepository
}

// NewReportingRepository creates a new reporting repository.
func NewReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

// statusFilter returns the set of entry statuses visible to a projection.
func statusFilter(includeDraft bool) []string {
	if includeDraft {
		return []string{string(domain.Posted), string(domain.Draft)}
	}
	return []string{string(domain.Posted)}
}

// GetGeneralLedgerData retrieves lines grouped by account and ordered by
// entry date, with a running per-account balance.
func (r *PgxReportingRepository) GetGeneralLedgerData(ctx context.Context, scope domain.Scope, from, to time.Time, includeDraft bool) ([]domain.GeneralLedgerAccount, error) {
	query := `
		SELECT
			a.account_id, a.code, a.name, a.account_type,
			e.entry_id, e.entry_date, e.memo, e.status,
			l.line_id, l.debit, l.credit
		FROM journal_lines l
		JOIN journal_entries e ON l.entry_id = e.entry_id
		JOIN accounts a ON l.account_id = a.account_id
		WHERE e.tenant_id = $1 AND e.company_id = $2
			AND e.entry_date BETWEEN $3 AND $4
			AND e.status = ANY($5)
		ORDER BY a.code, e.entry_date, e.entry_id, l.position;`

	rows, err := r.Pool.Query(ctx, query, scope.TenantID, scope.CompanyID, from, to, statusFilter(includeDraft))
	if err != nil {
		return nil, fmt.Errorf("error querying general ledger data: %w", err)
	}
	defer rows.Close()

	var result []domain.GeneralLedgerAccount
	var current *domain.GeneralLedgerAccount
	for rows.Next() {
		var (
			accountID, accountCode, accountName string
			accountType                         string
			line                                domain.GeneralLedgerLine
			entryStatus                         string
		)
		if err := rows.Scan(
			&accountID, &accountCode, &accountName, &accountType,
			&line.EntryID, &line.EntryDate, &line.EntryMemo, &entryStatus,
			&line.LineID, &line.Debit, &line.Credit,
		); err != nil {
			return nil, fmt.Errorf("error scanning general ledger row: %w", err)
		}
		line.EntryStatus = domain.EntryStatus(entryStatus)

		if current == nil || current.AccountID != accountID {
			result = append(result, domain.GeneralLedgerAccount{
				AccountID:   accountID,
				AccountCode: accountCode,
				AccountName: accountName,
				AccountType: domain.AccountType(accountType),
				TotalDebit:  decimal.Zero,
				TotalCredit: decimal.Zero,
			})
			current = &result[len(result)-1]
		}

		current.TotalDebit = current.TotalDebit.Add(line.Debit)
		current.TotalCredit = current.TotalCredit.Add(line.Credit)
		line.Balance = current.TotalDebit.Sub(current.TotalCredit)
		current.Lines = append(current.Lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating general ledger rows: %w", err)
	}

	if result == nil {
		result = []domain.GeneralLedgerAccount{}
	}
	return result, nil
}

// GetTrialBalanceData retrieves per-account debit/credit totals as of a date.
func (r *PgxReportingRepository) GetTrialBalanceData(ctx context.Context, scope domain.Scope, asOf time.Time, includeDraft bool) ([]domain.TrialBalanceRow, error) {
	query := `
		SELECT
			a.account_id, a.code, a.name, a.account_type,
			COALESCE(SUM(l.debit), 0) AS total_debit,
			COALESCE(SUM(l.credit), 0) AS total_credit
		FROM journal_lines l
		JOIN journal_entries e ON l.entry_id = e.entry_id
		JOIN accounts a ON l.account_id = a.account_id
		WHERE e.tenant_id = $1 AND e.company_id = $2
			AND e.entry_date <= $3
			AND e.status = ANY($4)
		GROUP BY a.account_id, a.code, a.name, a.account_type
		ORDER BY a.code;`

	rows, err := r.Pool.Query(ctx, query, scope.TenantID, scope.CompanyID, asOf, statusFilter(includeDraft))
	if err != nil {
		return nil, fmt.Errorf("error querying trial balance data: %w", err)
	}
	defer rows.Close()

	var result []domain.TrialBalanceRow
	for rows.Next() {
		var row domain.TrialBalanceRow
		var accountType string
		if err := rows.Scan(
			&row.AccountID, &row.AccountCode, &row.AccountName, &accountType,
			&row.Debit, &row.Credit,
		); err != nil {
			return nil, fmt.Errorf("error scanning trial balance row: %w", err)
		}
		row.AccountType = domain.AccountType(accountType)
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating trial balance rows: %w", err)
	}

	if result == nil {
		result = []domain.TrialBalanceRow{}
	}
	return result, nil
}

// GetCashFlowData retrieves inflow/outflow totals over cash-equivalent accounts.
func (r *PgxReportingRepository) GetCashFlowData(ctx context.Context, scope domain.Scope, from, to time.Time, includeDraft bool) ([]domain.CashFlowRow, error) {
	query := `
		SELECT
			a.account_id, a.code, a.name,
			COALESCE(SUM(l.debit), 0) AS inflow,
			COALESCE(SUM(l.credit), 0) AS outflow
		FROM journal_lines l
		JOIN journal_entries e ON l.entry_id = e.entry_id
		JOIN accounts a ON l.account_id = a.account_id
		WHERE e.tenant_id = $1 AND e.company_id = $2
			AND e.entry_date BETWEEN $3 AND $4
			AND e.status = ANY($5)
			AND a.cash_equivalent = TRUE
		GROUP BY a.account_id, a.code, a.name
		ORDER BY a.code;`

	rows, err := r.Pool.Query(ctx, query, scope.TenantID, scope.CompanyID, from, to, statusFilter(includeDraft))
	if err != nil {
		return nil, fmt.Errorf("error querying cash flow data: %w", err)
	}
	defer rows.Close()

	var result []domain.CashFlowRow
	for rows.Next() {
		var row domain.CashFlowRow
		if err := rows.Scan(&row.AccountID, &row.AccountCode, &row.AccountName, &row.Inflow, &row.Outflow); err != nil {
			return nil, fmt.Errorf("error scanning cash flow row: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cash flow rows: %w", err)
	}

	if result == nil {
		result = []domain.CashFlowRow{}
	}
	return result, nil
}
