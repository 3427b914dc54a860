package repositories

import (
	"context"
)

// TenantAPIKey is a stored machine credential for a tenant. Only the bcrypt
// hash of the secret is persisted.
type TenantAPIKey struct {
	KeyID    string
	TenantID string
	Label    string
	KeyHash  string
	IsActive bool
}

// TenantKeyRepository resolves API-key credentials for machine callers.
type TenantKeyRepository interface {
	// FindActiveKeysByPrefix retrieves active keys whose key id matches the
	// presented credential's id part. The middleware compares the secret part
	// against each returned hash.
	FindActiveKeysByPrefix(ctx context.Context, keyID string) ([]TenantAPIKey, error)
}
