package services

import (
	"context"
	"time"

	"github.com/ledgerline/ledger_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// EntryEvent is the summary handed to the notification dispatcher after a
// lifecycle transition has durably committed.
type EntryEvent struct {
	EntryID      string             `json:"entryID"`
	TenantID     string             `json:"tenantID"`
	CompanyID    string             `json:"companyID"`
	Status       domain.EntryStatus `json:"status"`
	EntryDate    time.Time          `json:"entryDate"`
	Memo         string             `json:"memo"`
	CurrencyCode string             `json:"currencyCode"`
	TotalAmount  decimal.Decimal    `json:"totalAmount"` // Debit-side sum of the entry
	ActorUserID  string             `json:"actorUserID"`
	OccurredAt   time.Time          `json:"occurredAt"`
	VoidReason   string             `json:"voidReason,omitempty"`
}

// NotificationDispatcher receives entry lifecycle events. It is invoked only
// after the transition has committed, never on DRAFT creation or failed
// transitions, and never while a database transaction is open. Implementations
// must not block the posting path on slow transports.
type NotificationDispatcher interface {
	EntryPosted(ctx context.Context, event EntryEvent)
	EntryVoided(ctx context.Context, event EntryEvent)
}
