package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	portsrepo "github.com/ledgerline/ledger_backend/internal/core/ports/repositories"
	"golang.org/x/crypto/bcrypt"
)

// APIKeyAuthMiddleware authenticates machine callers via the X-API-Key header.
// Keys have the form "<keyID>.<secret>"; only the bcrypt hash of the secret is
// stored. On success the tenant identity lands in the request context and the
// bearer-token middleware is skipped. Requests without the header fall through
// untouched.
func APIKeyAuthMiddleware(keyRepo portsrepo.TenantKeyRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader("X-API-Key")
		if apiKey == "" {
			c.Next()
			return
		}

		logger := GetLoggerFromCtx(c.Request.Context())

		keyID, secret, found := strings.Cut(apiKey, ".")
		if !found || keyID == "" || secret == "" {
			logger.Warn("Malformed API key presented")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid API key"})
			return
		}

		keys, err := keyRepo.FindActiveKeysByPrefix(c.Request.Context(), keyID)
		if err != nil {
			logger.Error("Failed to look up API key", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error during authentication"})
			return
		}

		for _, key := range keys {
			if bcrypt.CompareHashAndPassword([]byte(key.KeyHash), []byte(secret)) == nil {
				ctx := context.WithValue(c.Request.Context(), tenantIDKey, key.TenantID)
				ctx = context.WithValue(ctx, userIDKey, "apikey:"+key.KeyID)

				enrichedLogger := logger.With(
					slog.String("tenant_id", key.TenantID),
					slog.String("api_key_id", key.KeyID),
				)
				ctx = context.WithValue(ctx, loggerCtxKey, enrichedLogger)

				c.Request = c.Request.WithContext(ctx)
				c.Next()
				return
			}
		}

		logger.Warn("API key verification failed", slog.String("api_key_id", keyID))
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid API key"})
	}
}
