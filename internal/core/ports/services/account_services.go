package services

import (
	"context"

	"github.com/ledgerline/ledger_backend/internal/core/domain"
	"github.com/ledgerline/ledger_backend/internal/dto"
)

// AccountSvcFacade manages the chart of accounts for a tenant+company scope.
type AccountSvcFacade interface {
	CreateAccount(ctx context.Context, scope domain.Scope, req dto.CreateAccountRequest, userID string) (*domain.Account, error)
	GetAccountByID(ctx context.Context, scope domain.Scope, accountID string) (*domain.Account, error)

	// GetAccountsByIDs returns the subset of requested accounts that exist in
	// scope, keyed by account ID.
	GetAccountsByIDs(ctx context.Context, scope domain.Scope, accountIDs []string) (map[string]domain.Account, error)

	ListAccounts(ctx context.Context, scope domain.Scope, limit int, offset int) ([]domain.Account, error)

	// UpdateAccount updates mutable account fields. The account type is
	// immutable once any journal line references the account.
	UpdateAccount(ctx context.Context, scope domain.Scope, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error)

	DeactivateAccount(ctx context.Context, scope domain.Scope, accountID string, userID string) error
}
