package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ledgerline/ledger_backend/internal/apperrors"
	"github.com/ledgerline/ledger_backend/internal/core/domain"
	portsrepo "github.com/ledgerline/ledger_backend/internal/core/ports/repositories"
	"github.com/ledgerline/ledger_backend/internal/models"
	"github.com/ledgerline/ledger_backend/internal/utils/mapping"
	"github.com/ledgerline/ledger_backend/internal/utils/pagination"
)

// PgxEntryRepository persists journal entries and their lines.
type PgxEntryRepository struct {
	BaseRepository
}

// NewEntryRepository creates a new repository for journal entry data.
func NewEntryRepository(pool *pgxpool.Pool) portsrepo.EntryRepositoryWithTx {
	return &PgxEntryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.EntryRepositoryWithTx = (*PgxEntryRepository)(nil)

const entryColumns = `
	entry_id, tenant_id, company_id, entry_date, memo, reference, currency_code,
	status, posted_at, posted_by, voided_at, voided_by, void_reason,
	created_at, created_by, last_updated_at, last_updated_by`

const lineInsertQuery = `
	INSERT INTO journal_lines (
		line_id, entry_id, account_id, debit, credit, memo, position,
		created_at, created_by, last_updated_at, last_updated_by
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);`

// SaveEntry persists an entry and its lines atomically.
func (r *PgxEntryRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine) error {
	return r.runInTx(ctx, func(tx pgx.Tx) error {
		m := mapping.ToModelEntry(entry)
		entryQuery := `
		INSERT INTO journal_entries (` + entryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);`
		_, err := tx.Exec(ctx, entryQuery,
			m.EntryID, m.TenantID, m.CompanyID, m.EntryDate, m.Memo, m.Reference, m.CurrencyCode,
			m.Status, m.PostedAt, m.PostedBy, m.VoidedAt, m.VoidedBy, m.VoidReason,
			m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
		)
		if err != nil {
			return apperrors.NewAppError(500, "failed to insert entry "+m.EntryID, err)
		}

		return queueLineInserts(ctx, tx, lines)
	})
}

func queueLineInserts(ctx context.Context, tx pgx.Tx, lines []domain.JournalLine) error {
	batch := &pgx.Batch{}
	for _, line := range lines {
		ml := mapping.ToModelLine(line)
		batch.Queue(lineInsertQuery,
			ml.LineID, ml.EntryID, ml.AccountID, ml.Debit, ml.Credit, ml.Memo, ml.Position,
			ml.CreatedAt, ml.CreatedBy, ml.LastUpdatedAt, ml.LastUpdatedBy,
		)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to execute line insert batch", err)
	}
	return nil
}

// FindEntryByID retrieves an entry and its lines, scoped to tenant+company.
// A row outside the scope is reported as not found.
func (r *PgxEntryRepository) FindEntryByID(ctx context.Context, scope domain.Scope, entryID string) (*domain.JournalEntry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM journal_entries
		WHERE entry_id = $1 AND tenant_id = $2 AND company_id = $3;`

	var m models.JournalEntry
	err := r.Pool.QueryRow(ctx, query, entryID, scope.TenantID, scope.CompanyID).Scan(
		&m.EntryID, &m.TenantID, &m.CompanyID, &m.EntryDate, &m.Memo, &m.Reference, &m.CurrencyCode,
		&m.Status, &m.PostedAt, &m.PostedBy, &m.VoidedAt, &m.VoidedBy, &m.VoidReason,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to query entry "+entryID, err)
	}

	entry := mapping.ToDomainEntry(m)
	lines, err := r.FindLinesByEntryID(ctx, scope, entryID)
	if err != nil {
		return nil, err
	}
	entry.Lines = lines
	return &entry, nil
}

// FindLinesByEntryID retrieves all lines of an entry in position order.
func (r *PgxEntryRepository) FindLinesByEntryID(ctx context.Context, scope domain.Scope, entryID string) ([]domain.JournalLine, error) {
	query := `
		SELECT l.line_id, l.entry_id, l.account_id, l.debit, l.credit, l.memo, l.position,
		       l.created_at, l.created_by, l.last_updated_at, l.last_updated_by
		FROM journal_lines l
		JOIN journal_entries e ON l.entry_id = e.entry_id
		WHERE l.entry_id = $1 AND e.tenant_id = $2 AND e.company_id = $3
		ORDER BY l.position;`

	rows, err := r.Pool.Query(ctx, query, entryID, scope.TenantID, scope.CompanyID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query lines for entry "+entryID, err)
	}
	defer rows.Close()

	var modelLines []models.JournalLine
	for rows.Next() {
		var ml models.JournalLine
		if err := rows.Scan(
			&ml.LineID, &ml.EntryID, &ml.AccountID, &ml.Debit, &ml.Credit, &ml.Memo, &ml.Position,
			&ml.CreatedAt, &ml.CreatedBy, &ml.LastUpdatedAt, &ml.LastUpdatedBy,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan line row", err)
		}
		modelLines = append(modelLines, ml)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate line rows", err)
	}

	return mapping.ToDomainLineSlice(modelLines), nil
}

// ListEntriesByDateRange retrieves entries in [from, to] using keyset
// pagination on (entry_date, created_at) descending. Lines are not populated.
func (r *PgxEntryRepository) ListEntriesByDateRange(ctx context.Context, scope domain.Scope, from, to time.Time, statuses []domain.EntryStatus, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	args := []interface{}{scope.TenantID, scope.CompanyID, from, to}
	query := `
		SELECT ` + entryColumns + `
		FROM journal_entries
		WHERE tenant_id = $1 AND company_id = $2 AND entry_date >= $3 AND entry_date <= $4`

	if len(statuses) > 0 {
		statusStrs := make([]string, len(statuses))
		for i, s := range statuses {
			statusStrs[i] = string(s)
		}
		args = append(args, statusStrs)
		query += fmt.Sprintf(" AND status = ANY($%d)", len(args))
	}

	if nextToken != nil && *nextToken != "" {
		tokenDate, tokenCreated, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		args = append(args, tokenDate, tokenCreated)
		query += fmt.Sprintf(" AND (entry_date, created_at) < ($%d, $%d)", len(args)-1, len(args))
	}

	// Fetch one extra row to know whether another page exists.
	args = append(args, limit+1)
	query += fmt.Sprintf(" ORDER BY entry_date DESC, created_at DESC LIMIT $%d;", len(args))

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query entries", err)
	}
	defer rows.Close()

	var entries []domain.JournalEntry
	for rows.Next() {
		var m models.JournalEntry
		if err := rows.Scan(
			&m.EntryID, &m.TenantID, &m.CompanyID, &m.EntryDate, &m.Memo, &m.Reference, &m.CurrencyCode,
			&m.Status, &m.PostedAt, &m.PostedBy, &m.VoidedAt, &m.VoidedBy, &m.VoidReason,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		); err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan entry row", err)
		}
		entries = append(entries, mapping.ToDomainEntry(m))
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to iterate entry rows", err)
	}

	var token *string
	if len(entries) > limit {
		entries = entries[:limit]
		last := entries[len(entries)-1]
		t := pagination.EncodeToken(last.EntryDate, last.CreatedAt)
		token = &t
	}
	return entries, token, nil
}

// ReplaceEntryLines atomically replaces all lines of a DRAFT entry. The entry
// row is locked so a concurrent post cannot interleave with the rewrite.
func (r *PgxEntryRepository) ReplaceEntryLines(ctx context.Context, scope domain.Scope, entryID string, lines []domain.JournalLine) error {
	return r.runInTx(ctx, func(tx pgx.Tx) error {
		var status models.EntryStatus
		err := tx.QueryRow(ctx, `
		SELECT status FROM journal_entries
		WHERE entry_id = $1 AND tenant_id = $2 AND company_id = $3
		FOR UPDATE;`, entryID, scope.TenantID, scope.CompanyID).Scan(&status)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrNotFound
			}
			return apperrors.NewAppError(500, "failed to lock entry "+entryID, err)
		}
		if status != models.Draft {
			return fmt.Errorf("%w: entry status is %s", apperrors.ErrInvalidState, status)
		}

		if _, err := tx.Exec(ctx, `DELETE FROM journal_lines WHERE entry_id = $1;`, entryID); err != nil {
			return apperrors.NewAppError(500, "failed to delete draft lines for entry "+entryID, err)
		}
		return queueLineInserts(ctx, tx, lines)
	})
}

// UpdateEntryStatus performs the atomic compare-and-set lifecycle transition.
// Exactly one of two concurrent callers can win; the loser observes a
// non-matching status and gets ErrInvalidState.
func (r *PgxEntryRepository) UpdateEntryStatus(ctx context.Context, scope domain.Scope, entryID string, expected, target domain.EntryStatus, update portsrepo.EntryStatusUpdate) error {
	query := `
		UPDATE journal_entries
		SET status = $1,
		    posted_at = CASE WHEN $1 = 'POSTED' THEN $2 ELSE posted_at END,
		    posted_by = CASE WHEN $1 = 'POSTED' THEN $3 ELSE posted_by END,
		    voided_at = CASE WHEN $1 = 'VOID' THEN $2 ELSE voided_at END,
		    voided_by = CASE WHEN $1 = 'VOID' THEN $3 ELSE voided_by END,
		    void_reason = CASE WHEN $1 = 'VOID' THEN NULLIF($4, '') ELSE void_reason END,
		    last_updated_at = $2,
		    last_updated_by = $3
		WHERE entry_id = $5 AND tenant_id = $6 AND company_id = $7 AND status = $8;`

	tag, err := r.Pool.Exec(ctx, query,
		string(target), update.UpdatedAt, update.UpdatedBy, update.VoidReason,
		entryID, scope.TenantID, scope.CompanyID, string(expected),
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update status for entry "+entryID, err)
	}
	if tag.RowsAffected() == 1 {
		return nil
	}

	// CAS missed: distinguish a missing entry from a state conflict.
	var current models.EntryStatus
	err = r.Pool.QueryRow(ctx, `
		SELECT status FROM journal_entries
		WHERE entry_id = $1 AND tenant_id = $2 AND company_id = $3;`,
		entryID, scope.TenantID, scope.CompanyID).Scan(&current)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return apperrors.NewAppError(500, "failed to re-check status for entry "+entryID, err)
	}
	return fmt.Errorf("%w: entry status is %s, expected %s", apperrors.ErrInvalidState, current, expected)
}

// UpdateEntryHeader updates memo/reference/date of a DRAFT entry. The status
// guard is part of the statement, so a concurrent post makes this a no-op
// reported as a state conflict.
func (r *PgxEntryRepository) UpdateEntryHeader(ctx context.Context, entry domain.JournalEntry) error {
	m := mapping.ToModelEntry(entry)
	query := `
		UPDATE journal_entries
		SET entry_date = $1, memo = $2, reference = $3, last_updated_at = $4, last_updated_by = $5
		WHERE entry_id = $6 AND tenant_id = $7 AND company_id = $8 AND status = 'DRAFT';`

	tag, err := r.Pool.Exec(ctx, query,
		m.EntryDate, m.Memo, m.Reference, m.LastUpdatedAt, m.LastUpdatedBy,
		m.EntryID, m.TenantID, m.CompanyID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update entry "+m.EntryID, err)
	}
	if tag.RowsAffected() == 1 {
		return nil
	}

	var current models.EntryStatus
	err = r.Pool.QueryRow(ctx, `
		SELECT status FROM journal_entries
		WHERE entry_id = $1 AND tenant_id = $2 AND company_id = $3;`,
		m.EntryID, m.TenantID, m.CompanyID).Scan(&current)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return apperrors.NewAppError(500, "failed to re-check status for entry "+m.EntryID, err)
	}
	return fmt.Errorf("%w: entry status is %s, expected DRAFT", apperrors.ErrInvalidState, current)
}
