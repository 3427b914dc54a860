package dto

import (
	"time"

	"github.com/ledgerline/ledger_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateLineRequest is a single line of a draft entry. Exactly one of
// debit/credit must be positive; the other must be zero or absent.
type CreateLineRequest struct {
	AccountID string          `json:"accountID" binding:"required"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
	Memo      string          `json:"memo"`
}

// CreateEntryRequest is the payload for creating a draft journal entry.
type CreateEntryRequest struct {
	Date         time.Time           `json:"date" binding:"required"`
	Memo         string              `json:"memo" binding:"required"`
	Reference    string              `json:"reference"`
	CurrencyCode string              `json:"currencyCode" binding:"required,len=3"`
	Lines        []CreateLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// UpdateEntryLinesRequest replaces the full line set of a DRAFT entry.
type UpdateEntryLinesRequest struct {
	Lines []CreateLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// UpdateEntryHeaderRequest updates the header fields of a DRAFT entry.
// Nil fields are left unchanged.
type UpdateEntryHeaderRequest struct {
	Date      *time.Time `json:"date"`
	Memo      *string    `json:"memo"`
	Reference *string    `json:"reference"`
}

// VoidEntryRequest carries the mandatory audit reason for voiding.
type VoidEntryRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// ListEntriesParams holds filters for listing entries.
type ListEntriesParams struct {
	From      time.Time
	To        time.Time
	Statuses  []domain.EntryStatus
	Limit     int
	NextToken *string
}

// LineResponse defines the data returned for a journal line.
type LineResponse struct {
	LineID    string          `json:"lineID"`
	AccountID string          `json:"accountID"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
	Memo      string          `json:"memo,omitempty"`
}

// EntryResponse defines the data returned for a journal entry.
type EntryResponse struct {
	EntryID      string         `json:"entryID"`
	Date         time.Time      `json:"date"`
	Memo         string         `json:"memo"`
	Reference    string         `json:"reference,omitempty"`
	CurrencyCode string         `json:"currencyCode"`
	Status       string         `json:"status"`
	PostedAt     *time.Time     `json:"postedAt,omitempty"`
	VoidedAt     *time.Time     `json:"voidedAt,omitempty"`
	VoidReason   string         `json:"voidReason,omitempty"`
	Lines        []LineResponse `json:"lines,omitempty"`
	CreatedAt    time.Time      `json:"createdAt"`
	CreatedBy    string         `json:"createdBy"`
}

// ListEntriesResponse is the paginated listing payload.
type ListEntriesResponse struct {
	Entries   []EntryResponse `json:"entries"`
	NextToken *string         `json:"nextToken,omitempty"`
}

// ToLineResponse converts a domain.JournalLine to its response DTO.
func ToLineResponse(l *domain.JournalLine) LineResponse {
	return LineResponse{
		LineID:    l.LineID,
		AccountID: l.AccountID,
		Debit:     l.Debit,
		Credit:    l.Credit,
		Memo:      l.Memo,
	}
}

// ToEntryResponse converts a domain.JournalEntry to its response DTO.
func ToEntryResponse(e *domain.JournalEntry) EntryResponse {
	resp := EntryResponse{
		EntryID:      e.EntryID,
		Date:         e.EntryDate,
		Memo:         e.Memo,
		Reference:    e.Reference,
		CurrencyCode: e.CurrencyCode,
		Status:       string(e.Status),
		PostedAt:     e.PostedAt,
		VoidedAt:     e.VoidedAt,
		VoidReason:   e.VoidReason,
		CreatedAt:    e.CreatedAt,
		CreatedBy:    e.CreatedBy,
	}
	if len(e.Lines) > 0 {
		resp.Lines = make([]LineResponse, len(e.Lines))
		for i := range e.Lines {
			resp.Lines[i] = ToLineResponse(&e.Lines[i])
		}
	}
	return resp
}
