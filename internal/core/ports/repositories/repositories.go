package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TransactionManager defines the contract for repositories that can run
// multiple operations inside a single database transaction.
type TransactionManager interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Commit(ctx context.Context, tx pgx.Tx) error
	Rollback(ctx context.Context, tx pgx.Tx) error
}

// RepositoryContainer aggregates the concrete repositories handed to the
// service layer at wiring time.
type RepositoryContainer struct {
	Account   AccountRepositoryFacade
	Entry     EntryRepositoryWithTx
	Reporting ReportingRepository
	TenantKey TenantKeyRepository
}
