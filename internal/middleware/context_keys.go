package middleware

import (
	"context"

	"github.com/ledgerline/ledger_backend/internal/core/domain"
)

// contextKey is a private type for context keys set by this package.
// Using a custom type prevents collisions.
type contextKey string

const (
	loggerCtxKey = contextKey("logger")
	userIDKey    = contextKey("userID")
	tenantIDKey  = contextKey("tenantID")
	scopeKey     = contextKey("scope")
)

// GetUserIDFromCtx retrieves the authenticated user ID from the context.
func GetUserIDFromCtx(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok && userID != ""
}

// GetTenantIDFromCtx retrieves the authenticated tenant ID from the context.
func GetTenantIDFromCtx(ctx context.Context) (string, bool) {
	tenantID, ok := ctx.Value(tenantIDKey).(string)
	return tenantID, ok && tenantID != ""
}

// GetScopeFromCtx retrieves the tenant+company scope set by ScopeMiddleware.
func GetScopeFromCtx(ctx context.Context) (domain.Scope, bool) {
	scope, ok := ctx.Value(scopeKey).(domain.Scope)
	return scope, ok
}
