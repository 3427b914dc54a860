package repositories

import (
	"context"
	"time"

	"github.com/ledgerline/ledger_backend/internal/core/domain"
)

// EntryStatusUpdate carries the audit fields recorded alongside a lifecycle
// transition. Void fields are only set for transitions into VOID.
type EntryStatusUpdate struct {
	UpdatedBy  string
	UpdatedAt  time.Time
	VoidReason string
}

// EntryReader defines read operations for journal entry data.
type EntryReader interface {
	// FindEntryByID retrieves an entry and its lines. An entry outside the
	// caller's scope returns apperrors.ErrNotFound, never the entry.
	FindEntryByID(ctx context.Context, scope domain.Scope, entryID string) (*domain.JournalEntry, error)

	// ListEntriesByDateRange retrieves entries whose entry date falls in
	// [from, to], filtered to the given statuses (all statuses when empty),
	// using token-based pagination. Lines are not populated.
	ListEntriesByDateRange(ctx context.Context, scope domain.Scope, from, to time.Time, statuses []domain.EntryStatus, limit int, nextToken *string) ([]domain.JournalEntry, *string, error)

	// FindLinesByEntryID retrieves all lines of a single entry in position order.
	FindLinesByEntryID(ctx context.Context, scope domain.Scope, entryID string) ([]domain.JournalLine, error)
}

// EntryWriter defines write operations for journal entry data.
type EntryWriter interface {
	// SaveEntry persists an entry and its lines atomically.
	SaveEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine) error

	// ReplaceEntryLines atomically replaces the lines of a DRAFT entry.
	ReplaceEntryLines(ctx context.Context, scope domain.Scope, entryID string, lines []domain.JournalLine) error

	// UpdateEntryStatus performs an atomic compare-and-set of the entry status
	// from expected to target. When the entry exists in scope but is not in the
	// expected status, it returns apperrors.ErrInvalidState; when it does not
	// exist in scope, apperrors.ErrNotFound. This is the single-writer
	// discipline for concurrent post/void calls.
	UpdateEntryStatus(ctx context.Context, scope domain.Scope, entryID string, expected, target domain.EntryStatus, update EntryStatusUpdate) error

	// UpdateEntryHeader updates memo/reference/date of a DRAFT entry.
	UpdateEntryHeader(ctx context.Context, entry domain.JournalEntry) error
}

// EntryRepositoryFacade combines all entry-related repository interfaces.
type EntryRepositoryFacade interface {
	EntryReader
	EntryWriter
}

// EntryRepositoryWithTx extends EntryRepositoryFacade with transaction capabilities.
type EntryRepositoryWithTx interface {
	EntryRepositoryFacade
	TransactionManager
}
