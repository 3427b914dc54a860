package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryStatus indicates the lifecycle state of a journal entry.
type EntryStatus string

const (
	Draft  EntryStatus = "DRAFT"
	Posted EntryStatus = "POSTED"
	Void   EntryStatus = "VOID"
)

// CanTransitionTo reports whether the lifecycle edge s -> target is legal.
// The only edges are DRAFT -> POSTED and POSTED -> VOID; VOID is terminal.
func (s EntryStatus) CanTransitionTo(target EntryStatus) bool {
	switch s {
	case Draft:
		return target == Posted
	case Posted:
		return target == Void
	}
	return false
}

// JournalEntry represents a single financial event composed of multiple lines.
// Entries are mutable only while DRAFT; POSTED entries are immutable except for
// the VOID transition, which preserves all lines for the audit trail.
type JournalEntry struct {
	EntryID      string      `json:"entryID"` // Primary Key (UUID)
	TenantID     string      `json:"tenantID"`
	CompanyID    string      `json:"companyID"`
	EntryDate    time.Time   `json:"entryDate"` // Date the event occurred
	Memo         string      `json:"memo"`
	Reference    string      `json:"reference"` // Nullable external reference
	CurrencyCode string      `json:"currencyCode"`
	Status       EntryStatus `json:"status"`
	PostedAt     *time.Time  `json:"postedAt,omitempty"`
	PostedBy     string      `json:"postedBy,omitempty"`
	VoidedAt     *time.Time  `json:"voidedAt,omitempty"`
	VoidedBy     string      `json:"voidedBy,omitempty"`
	VoidReason   string      `json:"voidReason,omitempty"`
	AuditFields

	Lines []JournalLine `json:"lines,omitempty"` // Often loaded separately
}

// Scope returns the tenant/company ownership of the entry.
func (e *JournalEntry) Scope() Scope {
	return Scope{TenantID: e.TenantID, CompanyID: e.CompanyID}
}

// JournalLine represents a single line within a journal entry, affecting one
// account. Exactly one of Debit/Credit is positive; the other is zero.
type JournalLine struct {
	LineID    string          `json:"lineID"` // Primary Key (UUID)
	EntryID   string          `json:"entryID"`
	AccountID string          `json:"accountID"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
	Memo      string          `json:"memo"`
	Position  int             `json:"position"` // Order within the entry
	AuditFields
}
