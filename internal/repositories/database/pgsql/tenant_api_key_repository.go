package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/ledgerline/ledger_backend/internal/core/ports/repositories"
)

// PgxTenantKeyRepository resolves API-key credentials for machine callers.
type PgxTenantKeyRepository struct {
	BaseRepository
}

// NewTenantKeyRepository creates a new repository for tenant API keys.
func NewTenantKeyRepository(pool *pgxpool.Pool) portsrepo.TenantKeyRepository {
	return &PgxTenantKeyRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TenantKeyRepository = (*PgxTenantKeyRepository)(nil)

// FindActiveKeysByPrefix retrieves active keys matching the presented key id.
func (r *PgxTenantKeyRepository) FindActiveKeysByPrefix(ctx context.Context, keyID string) ([]portsrepo.TenantAPIKey, error) {
	query := `
		SELECT key_id, tenant_id, label, key_hash, is_active
		FROM tenant_api_keys
		WHERE key_id = $1 AND is_active = TRUE;`

	rows, err := r.Pool.Query(ctx, query, keyID)
	if err != nil {
		return nil, fmt.Errorf("error querying tenant api keys: %w", err)
	}
	defer rows.Close()

	var keys []portsrepo.TenantAPIKey
	for rows.Next() {
		var k portsrepo.TenantAPIKey
		if err := rows.Scan(&k.KeyID, &k.TenantID, &k.Label, &k.KeyHash, &k.IsActive); err != nil {
			return nil, fmt.Errorf("error scanning tenant api key: %w", err)
		}
		keys = append(keys, k)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tenant api keys: %w", err)
	}
	return keys, nil
}
