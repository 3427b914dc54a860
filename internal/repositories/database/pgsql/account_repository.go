package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ledgerline/ledger_backend/internal/apperrors"
	"github.com/ledgerline/ledger_backend/internal/core/domain"
	portsrepo "github.com/ledgerline/ledger_backend/internal/core/ports/repositories"
	"github.com/ledgerline/ledger_backend/internal/models"
	"github.com/ledgerline/ledger_backend/internal/utils/mapping"
)

// uniqueViolationCode is the postgres error code for unique constraint violations.
const uniqueViolationCode = "23505"

// PgxAccountRepository persists the chart of accounts.
type PgxAccountRepository struct {
	BaseRepository
}

// NewAccountRepository creates a new repository for account data.
func NewAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

const accountColumns = `
	account_id, tenant_id, company_id, code, name, account_type, parent_account_id,
	description, cash_equivalent, is_active,
	created_at, created_by, last_updated_at, last_updated_by`

func scanAccount(row pgx.Row) (*models.Account, error) {
	var m models.Account
	err := row.Scan(
		&m.AccountID, &m.TenantID, &m.CompanyID, &m.Code, &m.Name, &m.AccountType, &m.ParentAccountID,
		&m.Description, &m.CashEquivalent, &m.IsActive,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveAccount persists a new account. A code conflict within the scope
// surfaces as ErrDuplicate.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	query := `
		INSERT INTO accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);`

	_, err := r.Pool.Exec(ctx, query,
		m.AccountID, m.TenantID, m.CompanyID, m.Code, m.Name, m.AccountType, m.ParentAccountID,
		m.Description, m.CashEquivalent, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to insert account "+m.AccountID, err)
	}
	return nil
}

// FindAccountByID retrieves an account scoped to tenant+company.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, scope domain.Scope, accountID string) (*domain.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE account_id = $1 AND tenant_id = $2 AND company_id = $3;`

	m, err := scanAccount(r.Pool.QueryRow(ctx, query, accountID, scope.TenantID, scope.CompanyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to query account "+accountID, err)
	}
	account := mapping.ToDomainAccount(*m)
	return &account, nil
}

// FindAccountsByIDs retrieves multiple accounts keyed by ID. IDs outside the
// scope are simply absent from the result.
func (r *PgxAccountRepository) FindAccountsByIDs(ctx context.Context, scope domain.Scope, accountIDs []string) (map[string]domain.Account, error) {
	if len(accountIDs) == 0 {
		return map[string]domain.Account{}, nil
	}

	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE account_id = ANY($1) AND tenant_id = $2 AND company_id = $3;`

	rows, err := r.Pool.Query(ctx, query, accountIDs, scope.TenantID, scope.CompanyID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query accounts by IDs", err)
	}
	defer rows.Close()

	result := make(map[string]domain.Account, len(accountIDs))
	for rows.Next() {
		var m models.Account
		if err := rows.Scan(
			&m.AccountID, &m.TenantID, &m.CompanyID, &m.Code, &m.Name, &m.AccountType, &m.ParentAccountID,
			&m.Description, &m.CashEquivalent, &m.IsActive,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan account row", err)
		}
		result[m.AccountID] = mapping.ToDomainAccount(m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate account rows", err)
	}
	return result, nil
}

// ListAccounts retrieves a page of accounts ordered by code.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context, scope domain.Scope, limit int, offset int) ([]domain.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE tenant_id = $1 AND company_id = $2
		ORDER BY code
		LIMIT $3 OFFSET $4;`

	rows, err := r.Pool.Query(ctx, query, scope.TenantID, scope.CompanyID, limit, offset)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query accounts", err)
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		var m models.Account
		if err := rows.Scan(
			&m.AccountID, &m.TenantID, &m.CompanyID, &m.Code, &m.Name, &m.AccountType, &m.ParentAccountID,
			&m.Description, &m.CashEquivalent, &m.IsActive,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan account row", err)
		}
		accounts = append(accounts, mapping.ToDomainAccount(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate account rows", err)
	}
	return accounts, nil
}

// HasPostings reports whether any journal line references the account.
func (r *PgxAccountRepository) HasPostings(ctx context.Context, scope domain.Scope, accountID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1
			FROM journal_lines l
			JOIN journal_entries e ON l.entry_id = e.entry_id
			WHERE l.account_id = $1 AND e.tenant_id = $2 AND e.company_id = $3
		);`

	var exists bool
	if err := r.Pool.QueryRow(ctx, query, accountID, scope.TenantID, scope.CompanyID).Scan(&exists); err != nil {
		return false, apperrors.NewAppError(500, "failed to check postings for account "+accountID, err)
	}
	return exists, nil
}

// UpdateAccount updates an existing account's details.
func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	query := `
		UPDATE accounts
		SET name = $1, account_type = $2, parent_account_id = $3, description = $4,
		    cash_equivalent = $5, is_active = $6, last_updated_at = $7, last_updated_by = $8
		WHERE account_id = $9 AND tenant_id = $10 AND company_id = $11;`

	tag, err := r.Pool.Exec(ctx, query,
		m.Name, m.AccountType, m.ParentAccountID, m.Description,
		m.CashEquivalent, m.IsActive, m.LastUpdatedAt, m.LastUpdatedBy,
		m.AccountID, m.TenantID, m.CompanyID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update account "+m.AccountID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeactivateAccount marks an account as inactive.
func (r *PgxAccountRepository) DeactivateAccount(ctx context.Context, scope domain.Scope, accountID string, userID string, now time.Time) error {
	query := `
		UPDATE accounts
		SET is_active = FALSE, last_updated_at = $1, last_updated_by = $2
		WHERE account_id = $3 AND tenant_id = $4 AND company_id = $5 AND is_active = TRUE;`

	tag, err := r.Pool.Exec(ctx, query, now, userID, accountID, scope.TenantID, scope.CompanyID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to deactivate account "+accountID, err)
	}
	if tag.RowsAffected() == 0 {
		// Either missing in scope or already inactive.
		var isActive bool
		err := r.Pool.QueryRow(ctx, `
			SELECT is_active FROM accounts
			WHERE account_id = $1 AND tenant_id = $2 AND company_id = $3;`,
			accountID, scope.TenantID, scope.CompanyID).Scan(&isActive)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrNotFound
			}
			return apperrors.NewAppError(500, "failed to re-check account "+accountID, err)
		}
		return fmt.Errorf("%w: account is already inactive", apperrors.ErrValidation)
	}
	return nil
}
