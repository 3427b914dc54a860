package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/ledgerline/ledger_backend/internal/apperrors"
	"github.com/ledgerline/ledger_backend/internal/core/domain"
	"github.com/ledgerline/ledger_backend/internal/middleware"
)

// respondServiceError translates the service error taxonomy into HTTP
// responses. Validation failures carry every violated field in the payload.
func respondServiceError(c *gin.Context, logger *slog.Logger, err error, fallbackMsg string) {
	var validationErr *apperrors.ValidationError
	if errors.As(err, &validationErr) {
		logger.Warn("Validation failed", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{
			"error":      "Validation failed",
			"violations": validationErr.Violations,
		})
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrUnbalanced):
		logger.Warn("Entry is unbalanced", slog.String("error", err.Error()))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrInvalidState):
		logger.Warn("Invalid entry state for transition", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Duplicate resource", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
	case errors.Is(err, apperrors.ErrScope):
		logger.Error("Scope mismatch on loaded data", slog.String("error", err.Error()))
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation failed", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger.Error(fallbackMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallbackMsg})
	}
}

// respondBindingError answers a failed ShouldBindJSON. Binding-tag failures
// are reported field by field in the same shape as service-side validation;
// anything else (malformed JSON, wrong types) gets a single error message.
func respondBindingError(c *gin.Context, logger *slog.Logger, err error) {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		violations := make([]apperrors.FieldViolation, len(fieldErrs))
		for i, fe := range fieldErrs {
			violations[i] = apperrors.FieldViolation{
				Field:   bindingFieldPath(fe.Namespace()),
				Message: "failed on rule " + fe.Tag(),
			}
		}
		logger.Warn("Request binding failed validation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{
			"error":      "Validation failed",
			"violations": violations,
		})
		return
	}

	logger.Warn("Failed to bind request body", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
}

// bindingFieldPath strips the request struct name from a validator namespace,
// leaving the field path as the client sees it.
func bindingFieldPath(namespace string) string {
	if _, rest, found := strings.Cut(namespace, "."); found {
		return rest
	}
	return namespace
}

// requestIdentity pulls the scope and acting user from the request context.
// Both are placed there by the auth and scope middleware; a miss means the
// route was wired without them.
func requestIdentity(c *gin.Context) (domain.Scope, string, bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	scope, found := middleware.GetScopeFromCtx(c.Request.Context())
	if !found {
		logger.Error("Scope missing from request context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return domain.Scope{}, "", false
	}

	userID, found := middleware.GetUserIDFromCtx(c.Request.Context())
	if !found {
		logger.Error("User ID missing from request context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return domain.Scope{}, "", false
	}

	return scope, userID, true
}
