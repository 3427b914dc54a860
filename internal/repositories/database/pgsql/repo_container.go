package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/ledgerline/ledger_backend/internal/core/ports/repositories"
)

// NewRepositoryContainer wires the concrete pgx-backed repositories.
func NewRepositoryContainer(dbPool *pgxpool.Pool) portsrepo.RepositoryContainer {
	return portsrepo.RepositoryContainer{
		Account:   NewAccountRepository(dbPool),
		Entry:     NewEntryRepository(dbPool),
		Reporting: NewReportingRepository(dbPool),
		TenantKey: NewTenantKeyRepository(dbPool),
	}
}
