package services

import (
	"context"
	"log/slog"

	portssvc "github.com/ledgerline/ledger_backend/internal/core/ports/services"
	"github.com/ledgerline/ledger_backend/internal/middleware"
)

// logNotificationDispatcher is the in-repo NotificationDispatcher: it emits a
// structured log record per lifecycle event. An SMTP or webhook dispatcher
// implements the same port.
type logNotificationDispatcher struct{}

// NewLogNotificationDispatcher creates a dispatcher that logs entry events.
func NewLogNotificationDispatcher() portssvc.NotificationDispatcher {
	return &logNotificationDispatcher{}
}

var _ portssvc.NotificationDispatcher = (*logNotificationDispatcher)(nil)

func (d *logNotificationDispatcher) EntryPosted(ctx context.Context, event portssvc.EntryEvent) {
	middleware.GetLoggerFromCtx(ctx).Info("notification: entry posted",
		slog.String("entry_id", event.EntryID),
		slog.String("tenant_id", event.TenantID),
		slog.String("company_id", event.CompanyID),
		slog.String("currency", event.CurrencyCode),
		slog.String("amount", event.TotalAmount.String()),
		slog.String("actor", event.ActorUserID),
	)
}

func (d *logNotificationDispatcher) EntryVoided(ctx context.Context, event portssvc.EntryEvent) {
	middleware.GetLoggerFromCtx(ctx).Info("notification: entry voided",
		slog.String("entry_id", event.EntryID),
		slog.String("tenant_id", event.TenantID),
		slog.String("company_id", event.CompanyID),
		slog.String("reason", event.VoidReason),
		slog.String("actor", event.ActorUserID),
	)
}
