package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/ledgerline/ledger_backend/internal/apperrors"
	"github.com/ledgerline/ledger_backend/internal/core/domain"
	portsrepo "github.com/ledgerline/ledger_backend/internal/core/ports/repositories"
	portssvc "github.com/ledgerline/ledger_backend/internal/core/ports/services"
	"github.com/ledgerline/ledger_backend/internal/dto"
	"github.com/ledgerline/ledger_backend/internal/middleware"
	"github.com/ledgerline/ledger_backend/internal/utils/accounting"
)

// postingService owns the DRAFT -> POSTED -> VOID lifecycle of journal entries.
// It is stateless per call; the atomicity of transitions lives in the
// repository's compare-and-set, so multiple workers can run it concurrently
// against a shared store.
type postingService struct {
	entryRepo  portsrepo.EntryRepositoryWithTx
	accountSvc portssvc.AccountSvcFacade
	dispatcher portssvc.NotificationDispatcher
}

// NewPostingService creates a new posting engine.
func NewPostingService(entryRepo portsrepo.EntryRepositoryWithTx, accountSvc portssvc.AccountSvcFacade, dispatcher portssvc.NotificationDispatcher) portssvc.PostingSvcFacade {
	return &postingService{
		entryRepo:  entryRepo,
		accountSvc: accountSvc,
		dispatcher: dispatcher,
	}
}

var _ portssvc.PostingSvcFacade = (*postingService)(nil)

// validateLines checks every line of a draft and collects all violations
// instead of stopping at the first. accountsMap holds the scope's accounts
// for the referenced IDs; missing IDs are reported as violations.
func (s *postingService) validateLines(lines []dto.CreateLineRequest, accountsMap map[string]domain.Account) []apperrors.FieldViolation {
	var violations []apperrors.FieldViolation
	for i, line := range lines {
		field := "lines[" + strconv.Itoa(i) + "]"
		if !accounting.ValidAmount(line.Debit) {
			violations = append(violations, apperrors.FieldViolation{
				Field:   field + ".debit",
				Message: "must be a non-negative amount with at most 2 decimal places",
			})
		}
		if !accounting.ValidAmount(line.Credit) {
			violations = append(violations, apperrors.FieldViolation{
				Field:   field + ".credit",
				Message: "must be a non-negative amount with at most 2 decimal places",
			})
		}
		if !accounting.OneSided(line.Debit, line.Credit) {
			violations = append(violations, apperrors.FieldViolation{
				Field:   field,
				Message: "exactly one of debit or credit must be positive",
			})
		}
		acc, found := accountsMap[line.AccountID]
		if !found {
			violations = append(violations, apperrors.FieldViolation{
				Field:   field + ".accountID",
				Message: "account " + line.AccountID + " not found",
			})
			continue
		}
		if !acc.IsActive {
			violations = append(violations, apperrors.FieldViolation{
				Field:   field + ".accountID",
				Message: "account " + line.AccountID + " is inactive",
			})
		}
	}
	return violations
}

// fetchLineAccounts resolves the accounts referenced by the lines within the
// caller's scope.
func (s *postingService) fetchLineAccounts(ctx context.Context, scope domain.Scope, lines []dto.CreateLineRequest) (map[string]domain.Account, error) {
	accountIDs := make([]string, 0, len(lines))
	for _, line := range lines {
		accountIDs = append(accountIDs, line.AccountID)
	}
	accountsMap, err := s.accountSvc.GetAccountsByIDs(ctx, scope, uniqueStrings(accountIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch accounts: %w", err)
	}
	return accountsMap, nil
}

// loadEntry fetches an entry in the caller's scope and re-asserts the loaded
// row's ownership. The store already filters by scope, so a mismatch here
// means a row arrived through a path that skipped the filter; that is
// surfaced as a scope fault, never coerced into NotFound.
func (s *postingService) loadEntry(ctx context.Context, scope domain.Scope, entryID string) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	entry, err := s.entryRepo.FindEntryByID(ctx, scope, entryID)
	if err != nil {
		return nil, err
	}
	if !scope.Matches(entry.TenantID, entry.CompanyID) {
		logger.Error("Loaded entry ownership does not match request scope",
			slog.String("entry_id", entryID),
			slog.String("entry_tenant", entry.TenantID),
			slog.String("entry_company", entry.CompanyID),
		)
		return nil, apperrors.ErrScope
	}
	return entry, nil
}

// CreateDraft validates the request and persists a new DRAFT entry with lines.
// Balance is not required at draft time; it is enforced by Post.
func (s *postingService) CreateDraft(ctx context.Context, scope domain.Scope, req dto.CreateEntryRequest, userID string) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	var violations []apperrors.FieldViolation
	if req.Date.IsZero() {
		violations = append(violations, apperrors.FieldViolation{Field: "date", Message: "entry date is required"})
	}
	if req.Memo == "" {
		violations = append(violations, apperrors.FieldViolation{Field: "memo", Message: "memo is required"})
	}
	if len(req.CurrencyCode) != 3 {
		violations = append(violations, apperrors.FieldViolation{Field: "currencyCode", Message: "must be a 3-letter currency code"})
	}
	if len(req.Lines) == 0 {
		violations = append(violations, apperrors.FieldViolation{Field: "lines", Message: "at least one line is required"})
		return nil, apperrors.NewValidationError(violations)
	}

	accountsMap, err := s.fetchLineAccounts(ctx, scope, req.Lines)
	if err != nil {
		logger.Error("Failed to fetch accounts for draft creation", slog.String("error", err.Error()))
		return nil, err
	}
	violations = append(violations, s.validateLines(req.Lines, accountsMap)...)
	if err := apperrors.NewValidationError(violations); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	entryID := uuid.NewString()

	entry := domain.JournalEntry{
		EntryID:      entryID,
		TenantID:     scope.TenantID,
		CompanyID:    scope.CompanyID,
		EntryDate:    req.Date,
		Memo:         req.Memo,
		Reference:    req.Reference,
		CurrencyCode: req.CurrencyCode,
		Status:       domain.Draft,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	lines := s.buildLines(entryID, req.Lines, userID, now)

	if err := s.entryRepo.SaveEntry(ctx, entry, lines); err != nil {
		logger.Error("Failed to save draft entry", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to save entry: %w", err)
	}

	logger.Info("Draft entry created", slog.String("entry_id", entryID), slog.Int("line_count", len(lines)))
	entry.Lines = lines
	return &entry, nil
}

func (s *postingService) buildLines(entryID string, reqLines []dto.CreateLineRequest, userID string, now time.Time) []domain.JournalLine {
	lines := make([]domain.JournalLine, len(reqLines))
	for i, lineReq := range reqLines {
		lines[i] = domain.JournalLine{
			LineID:    uuid.NewString(),
			EntryID:   entryID,
			AccountID: lineReq.AccountID,
			Debit:     lineReq.Debit,
			Credit:    lineReq.Credit,
			Memo:      lineReq.Memo,
			Position:  i,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     userID,
				LastUpdatedAt: now,
				LastUpdatedBy: userID,
			},
		}
	}
	return lines
}

// UpdateDraftLines replaces the full line set of a DRAFT entry. Any status
// other than DRAFT is rejected; POSTED and VOID entries are immutable.
func (s *postingService) UpdateDraftLines(ctx context.Context, scope domain.Scope, entryID string, req dto.UpdateEntryLinesRequest, userID string) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	entry, err := s.loadEntry(ctx, scope, entryID)
	if err != nil {
		return nil, err
	}
	if entry.Status != domain.Draft {
		return nil, fmt.Errorf("%w: entry status is %s, lines may only change while DRAFT", apperrors.ErrInvalidState, entry.Status)
	}

	accountsMap, err := s.fetchLineAccounts(ctx, scope, req.Lines)
	if err != nil {
		logger.Error("Failed to fetch accounts for line update", slog.String("error", err.Error()))
		return nil, err
	}
	if err := apperrors.NewValidationError(s.validateLines(req.Lines, accountsMap)); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	lines := s.buildLines(entryID, req.Lines, userID, now)

	if err := s.entryRepo.ReplaceEntryLines(ctx, scope, entryID, lines); err != nil {
		logger.Error("Failed to replace entry lines", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		return nil, err
	}

	logger.Info("Draft entry lines replaced", slog.String("entry_id", entryID), slog.Int("line_count", len(lines)))
	entry.Lines = lines
	entry.LastUpdatedAt = now
	entry.LastUpdatedBy = userID
	return entry, nil
}

// UpdateDraftHeader updates the header fields of a DRAFT entry. Nil request
// fields keep their current values; lines are untouched.
func (s *postingService) UpdateDraftHeader(ctx context.Context, scope domain.Scope, entryID string, req dto.UpdateEntryHeaderRequest, userID string) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	entry, err := s.loadEntry(ctx, scope, entryID)
	if err != nil {
		return nil, err
	}
	if entry.Status != domain.Draft {
		return nil, fmt.Errorf("%w: entry status is %s, the header may only change while DRAFT", apperrors.ErrInvalidState, entry.Status)
	}

	updated := false
	if req.Date != nil {
		if req.Date.IsZero() {
			return nil, apperrors.NewValidationError([]apperrors.FieldViolation{
				{Field: "date", Message: "entry date must not be zero"},
			})
		}
		entry.EntryDate = *req.Date
		updated = true
	}
	if req.Memo != nil {
		if *req.Memo == "" {
			return nil, apperrors.NewValidationError([]apperrors.FieldViolation{
				{Field: "memo", Message: "memo must not be blank"},
			})
		}
		entry.Memo = *req.Memo
		updated = true
	}
	if req.Reference != nil {
		entry.Reference = *req.Reference
		updated = true
	}
	if !updated {
		logger.Debug("No header fields provided for update", slog.String("entry_id", entryID))
		return entry, nil
	}

	now := time.Now().UTC()
	entry.LastUpdatedAt = now
	entry.LastUpdatedBy = userID

	if err := s.entryRepo.UpdateEntryHeader(ctx, *entry); err != nil {
		logger.Error("Failed to update entry header", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		return nil, err
	}

	logger.Info("Draft entry header updated", slog.String("entry_id", entryID))
	return entry, nil
}

// Post transitions a DRAFT entry to POSTED. The balance invariant is
// re-validated here regardless of what the draft looked like when created.
// The status flip is a compare-and-set in the store, so a concurrent Post on
// the same entry loses with ErrInvalidState rather than double-posting.
func (s *postingService) Post(ctx context.Context, scope domain.Scope, entryID string, userID string) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	entry, err := s.loadEntry(ctx, scope, entryID)
	if err != nil {
		return nil, err
	}
	if entry.Status != domain.Draft {
		return nil, fmt.Errorf("%w: entry status is %s, expected DRAFT", apperrors.ErrInvalidState, entry.Status)
	}
	if len(entry.Lines) == 0 {
		return nil, fmt.Errorf("%w: entry has no lines", apperrors.ErrValidation)
	}

	debits, credits := accounting.SumSides(entry.Lines)
	if !debits.Equal(credits) {
		return nil, fmt.Errorf("%w: debits sum is %s and credits sum is %s",
			apperrors.ErrUnbalanced, debits.String(), credits.String())
	}

	// Accounts may have been deactivated since the draft was created.
	accountIDs := make([]string, 0, len(entry.Lines))
	for _, l := range entry.Lines {
		accountIDs = append(accountIDs, l.AccountID)
	}
	accountsMap, err := s.accountSvc.GetAccountsByIDs(ctx, scope, uniqueStrings(accountIDs))
	if err != nil {
		logger.Error("Failed to fetch accounts for posting", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to fetch accounts: %w", err)
	}
	for _, id := range uniqueStrings(accountIDs) {
		acc, found := accountsMap[id]
		if !found {
			return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, id)
		}
		if !acc.IsActive {
			return nil, fmt.Errorf("%w: account %s is inactive", apperrors.ErrValidation, id)
		}
	}

	now := time.Now().UTC()
	err = s.entryRepo.UpdateEntryStatus(ctx, scope, entryID, domain.Draft, domain.Posted, portsrepo.EntryStatusUpdate{
		UpdatedBy: userID,
		UpdatedAt: now,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidState) {
			logger.Warn("Lost post race or entry no longer DRAFT", slog.String("entry_id", entryID))
		} else {
			logger.Error("Failed to update entry status to POSTED", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		}
		return nil, err
	}

	entry.Status = domain.Posted
	entry.PostedAt = &now
	entry.PostedBy = userID
	entry.LastUpdatedAt = now
	entry.LastUpdatedBy = userID

	logger.Info("Entry posted", slog.String("entry_id", entryID))

	// Dispatched only after the transition has durably committed; never while
	// a store transaction is open.
	if s.dispatcher != nil {
		s.dispatcher.EntryPosted(ctx, s.entryEvent(entry, userID, now, ""))
	}

	return entry, nil
}

// Void transitions a POSTED entry to VOID. The original lines are preserved
// untouched; the reason and timestamp are recorded for the audit trail.
func (s *postingService) Void(ctx context.Context, scope domain.Scope, entryID string, reason string, userID string) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if reason == "" {
		return nil, apperrors.NewValidationError([]apperrors.FieldViolation{
			{Field: "reason", Message: "a void reason is required"},
		})
	}

	entry, err := s.loadEntry(ctx, scope, entryID)
	if err != nil {
		return nil, err
	}
	if entry.Status != domain.Posted {
		return nil, fmt.Errorf("%w: entry status is %s, expected POSTED", apperrors.ErrInvalidState, entry.Status)
	}

	now := time.Now().UTC()
	err = s.entryRepo.UpdateEntryStatus(ctx, scope, entryID, domain.Posted, domain.Void, portsrepo.EntryStatusUpdate{
		UpdatedBy:  userID,
		UpdatedAt:  now,
		VoidReason: reason,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidState) {
			logger.Warn("Lost void race or entry no longer POSTED", slog.String("entry_id", entryID))
		} else {
			logger.Error("Failed to update entry status to VOID", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		}
		return nil, err
	}

	entry.Status = domain.Void
	entry.VoidedAt = &now
	entry.VoidedBy = userID
	entry.VoidReason = reason
	entry.LastUpdatedAt = now
	entry.LastUpdatedBy = userID

	logger.Info("Entry voided", slog.String("entry_id", entryID), slog.String("reason", reason))

	if s.dispatcher != nil {
		s.dispatcher.EntryVoided(ctx, s.entryEvent(entry, userID, now, reason))
	}

	return entry, nil
}

// GetEntry retrieves an entry with its lines within the caller's scope.
func (s *postingService) GetEntry(ctx context.Context, scope domain.Scope, entryID string) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	entry, err := s.loadEntry(ctx, scope, entryID)
	if err != nil {
		return nil, err
	}

	logger.Debug("Entry retrieved", slog.String("entry_id", entryID), slog.Int("line_count", len(entry.Lines)))
	return entry, nil
}

// ListEntries retrieves entries in a date range with cursor pagination.
func (s *postingService) ListEntries(ctx context.Context, scope domain.Scope, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	entries, nextToken, err := s.entryRepo.ListEntriesByDateRange(ctx, scope, params.From, params.To, params.Statuses, limit, params.NextToken)
	if err != nil {
		logger.Error("Failed to list entries", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to retrieve entries: %w", err)
	}

	responses := make([]dto.EntryResponse, len(entries))
	for i := range entries {
		responses[i] = dto.ToEntryResponse(&entries[i])
	}

	logger.Info("Entries listed", slog.Int("count", len(entries)))
	return &dto.ListEntriesResponse{Entries: responses, NextToken: nextToken}, nil
}

func (s *postingService) entryEvent(entry *domain.JournalEntry, userID string, occurredAt time.Time, voidReason string) portssvc.EntryEvent {
	return portssvc.EntryEvent{
		EntryID:      entry.EntryID,
		TenantID:     entry.TenantID,
		CompanyID:    entry.CompanyID,
		Status:       entry.Status,
		EntryDate:    entry.EntryDate,
		Memo:         entry.Memo,
		CurrencyCode: entry.CurrencyCode,
		TotalAmount:  accounting.EntryAmount(entry.Lines),
		ActorUserID:  userID,
		OccurredAt:   occurredAt,
		VoidReason:   voidReason,
	}
}

// uniqueStrings returns a slice containing only the unique strings from the input.
func uniqueStrings(input []string) []string {
	seen := make(map[string]struct{}, len(input))
	result := make([]string, 0, len(input))
	for _, str := range input {
		if _, ok := seen[str]; !ok {
			seen[str] = struct{}{}
			result = append(result, str)
		}
	}
	return result
}
