package repositories

import (
	"context"
	"time"

	"github.com/ledgerline/ledger_backend/internal/core/domain"
)

// AccountReader defines read operations for chart-of-accounts data.
// Every call is scoped; a row outside the caller's tenant+company is
// indistinguishable from a missing row.
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, scope domain.Scope, accountID string) (*domain.Account, error)

	// FindAccountsByIDs retrieves multiple accounts by their IDs, keyed by ID.
	// IDs missing in the caller's scope are absent from the result.
	FindAccountsByIDs(ctx context.Context, scope domain.Scope, accountIDs []string) (map[string]domain.Account, error)

	// ListAccounts retrieves a paginated list of accounts for the scope.
	ListAccounts(ctx context.Context, scope domain.Scope, limit int, offset int) ([]domain.Account, error)

	// HasPostings reports whether any journal line references the account.
	// Used to enforce account type immutability once referenced.
	HasPostings(ctx context.Context, scope domain.Scope, accountID string) (bool, error)
}

// AccountWriter defines write operations for chart-of-accounts data.
type AccountWriter interface {
	// SaveAccount persists a new account. A (tenant, company, code) conflict
	// surfaces as apperrors.ErrDuplicate.
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpdateAccount updates an existing account's details.
	UpdateAccount(ctx context.Context, account domain.Account) error

	// DeactivateAccount marks an account as inactive.
	DeactivateAccount(ctx context.Context, scope domain.Scope, accountID string, userID string, now time.Time) error
}

// AccountRepositoryFacade combines all account-related repository interfaces.
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
