package services

import (
	"context"

	"github.com/ledgerline/ledger_backend/internal/core/domain"
	"github.com/ledgerline/ledger_backend/internal/dto"
)

// PostingSvcFacade is the posting engine: it owns the DRAFT -> POSTED -> VOID
// lifecycle of journal entries and enforces the balanced-entry invariant.
type PostingSvcFacade interface {
	// CreateDraft validates the request shape and persists a new DRAFT entry
	// with its lines. Validation failures report every violated field.
	CreateDraft(ctx context.Context, scope domain.Scope, req dto.CreateEntryRequest, userID string) (*domain.JournalEntry, error)

	// UpdateDraftLines replaces the lines of a DRAFT entry.
	UpdateDraftLines(ctx context.Context, scope domain.Scope, entryID string, req dto.UpdateEntryLinesRequest, userID string) (*domain.JournalEntry, error)

	// UpdateDraftHeader updates the date, memo or reference of a DRAFT entry.
	UpdateDraftHeader(ctx context.Context, scope domain.Scope, entryID string, req dto.UpdateEntryHeaderRequest, userID string) (*domain.JournalEntry, error)

	// Post transitions a DRAFT entry to POSTED after re-validating the balance
	// invariant. On success the entry becomes visible to projections and a
	// notification is dispatched after the transition has committed.
	Post(ctx context.Context, scope domain.Scope, entryID string, userID string) (*domain.JournalEntry, error)

	// Void transitions a POSTED entry to VOID, recording the reason and
	// timestamp. Lines are preserved unchanged. VOID is terminal.
	Void(ctx context.Context, scope domain.Scope, entryID string, reason string, userID string) (*domain.JournalEntry, error)

	// GetEntry retrieves an entry with its lines within the caller's scope.
	GetEntry(ctx context.Context, scope domain.Scope, entryID string) (*domain.JournalEntry, error)

	// ListEntries retrieves entries in a date range with cursor pagination.
	ListEntries(ctx context.Context, scope domain.Scope, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error)
}
