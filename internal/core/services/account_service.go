package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ledgerline/ledger_backend/internal/apperrors"
	"github.com/ledgerline/ledger_backend/internal/core/domain"
	portsrepo "github.com/ledgerline/ledger_backend/internal/core/ports/repositories"
	portssvc "github.com/ledgerline/ledger_backend/internal/core/ports/services"
	"github.com/ledgerline/ledger_backend/internal/dto"
	"github.com/ledgerline/ledger_backend/internal/middleware"
)

// accountService manages the chart of accounts.
type accountService struct {
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountService creates a new account registry service.
func NewAccountService(repo portsrepo.AccountRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: repo}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) CreateAccount(ctx context.Context, scope domain.Scope, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	accountType := domain.AccountType(req.AccountType)
	if !domain.ValidAccountType(accountType) {
		return nil, apperrors.NewValidationError([]apperrors.FieldViolation{
			{Field: "accountType", Message: "must be one of ASSET, LIABILITY, EQUITY, REVENUE, EXPENSE"},
		})
	}

	parentID := ""
	if req.ParentAccountID != nil && *req.ParentAccountID != "" {
		parent, err := s.accountRepo.FindAccountByID(ctx, scope, *req.ParentAccountID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.NewValidationError([]apperrors.FieldViolation{
					{Field: "parentAccountID", Message: "parent account not found"},
				})
			}
			return nil, err
		}
		parentID = parent.AccountID
	}

	now := time.Now().UTC()
	account := domain.Account{
		AccountID:       uuid.NewString(),
		TenantID:        scope.TenantID,
		CompanyID:       scope.CompanyID,
		Code:            req.Code,
		Name:            req.Name,
		AccountType:     accountType,
		ParentAccountID: parentID,
		Description:     req.Description,
		CashEquivalent:  req.CashEquivalent,
		IsActive:        true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: account code %s already exists", apperrors.ErrDuplicate, req.Code)
		}
		logger.Error("Failed to save account", slog.String("error", err.Error()), slog.String("account_id", account.AccountID))
		return nil, err
	}

	logger.Info("Account created", slog.String("account_id", account.AccountID), slog.String("code", account.Code))
	return &account, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, scope domain.Scope, accountID string) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.accountRepo.FindAccountByID(ctx, scope, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find account by ID", slog.String("error", err.Error()), slog.String("account_id", accountID))
		}
		return nil, err
	}
	return account, nil
}

func (s *accountService) GetAccountsByIDs(ctx context.Context, scope domain.Scope, accountIDs []string) (map[string]domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, scope, accountIDs)
	if err != nil {
		logger.Error("Failed to find accounts by IDs", slog.String("error", err.Error()))
		return nil, err
	}
	return accounts, nil
}

func (s *accountService) ListAccounts(ctx context.Context, scope domain.Scope, limit int, offset int) ([]domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if limit <= 0 {
		limit = 50
	}
	accounts, err := s.accountRepo.ListAccounts(ctx, scope, limit, offset)
	if err != nil {
		logger.Error("Failed to list accounts", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	if accounts == nil {
		return []domain.Account{}, nil
	}
	return accounts, nil
}

// UpdateAccount applies partial updates. A type change is rejected once any
// journal line references the account; the rest of the fields stay mutable.
func (s *accountService) UpdateAccount(ctx context.Context, scope domain.Scope, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.accountRepo.FindAccountByID(ctx, scope, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find account for update", slog.String("error", err.Error()), slog.String("account_id", accountID))
		}
		return nil, err
	}

	updated := false
	if req.AccountType != nil && domain.AccountType(*req.AccountType) != account.AccountType {
		newType := domain.AccountType(*req.AccountType)
		if !domain.ValidAccountType(newType) {
			return nil, apperrors.NewValidationError([]apperrors.FieldViolation{
				{Field: "accountType", Message: "must be one of ASSET, LIABILITY, EQUITY, REVENUE, EXPENSE"},
			})
		}
		hasPostings, err := s.accountRepo.HasPostings(ctx, scope, accountID)
		if err != nil {
			logger.Error("Failed to check account postings", slog.String("error", err.Error()), slog.String("account_id", accountID))
			return nil, err
		}
		if hasPostings {
			return nil, apperrors.NewValidationError([]apperrors.FieldViolation{
				{Field: "accountType", Message: "type is immutable once journal lines reference the account"},
			})
		}
		account.AccountType = newType
		updated = true
	}
	if req.Name != nil {
		account.Name = *req.Name
		updated = true
	}
	if req.ParentAccountID != nil {
		account.ParentAccountID = *req.ParentAccountID
		updated = true
	}
	if req.Description != nil {
		account.Description = *req.Description
		updated = true
	}
	if req.CashEquivalent != nil {
		account.CashEquivalent = *req.CashEquivalent
		updated = true
	}
	if req.IsActive != nil {
		account.IsActive = *req.IsActive
		updated = true
	}

	if !updated {
		return account, nil
	}

	now := time.Now().UTC()
	account.LastUpdatedAt = now
	account.LastUpdatedBy = userID

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		logger.Error("Failed to update account", slog.String("error", err.Error()), slog.String("account_id", accountID))
		return nil, err
	}

	logger.Info("Account updated", slog.String("account_id", accountID))
	return account, nil
}

func (s *accountService) DeactivateAccount(ctx context.Context, scope domain.Scope, accountID string, userID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.accountRepo.DeactivateAccount(ctx, scope, accountID, userID, time.Now().UTC()); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrValidation) {
			logger.Error("Failed to deactivate account", slog.String("error", err.Error()), slog.String("account_id", accountID))
		}
		return err
	}

	logger.Info("Account deactivated", slog.String("account_id", accountID))
	return nil
}
