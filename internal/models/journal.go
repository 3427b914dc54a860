package models

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

// AuditFields holds standard audit columns shared by all tables.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// JournalEntry is the persistence shape of a journal entry row.
type JournalEntry struct {
	EntryID      string      `json:"entryID"`
	TenantID     string      `json:"tenantID"`
	CompanyID    string      `json:"companyID"`
	EntryDate    time.Time   `json:"entryDate"`
	Memo         string      `json:"memo"`
	Reference    *string     `json:"reference"` // NULL when absent
	CurrencyCode string      `json:"currencyCode"`
	Status       EntryStatus `json:"status"`
	PostedAt     *time.Time  `json:"postedAt"`
	PostedBy     *string     `json:"postedBy"`
	VoidedAt     *time.Time  `json:"voidedAt"`
	VoidedBy     *string     `json:"voidedBy"`
	VoidReason   *string     `json:"voidReason"`
	AuditFields
}

// JournalLine is the persistence shape of a journal line row.
type JournalLine struct {
	LineID    string          `json:"lineID"`
	EntryID   string          `json:"entryID"`
	AccountID string          `json:"accountID"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
	Memo      string          `json:"memo"`
	Position  int             `json:"position"`
	AuditFields
}
