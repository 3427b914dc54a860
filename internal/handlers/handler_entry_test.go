package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/ledgerline/ledger_backend/internal/apperrors"
	"github.com/ledgerline/ledger_backend/internal/core/domain"
	portsrepo "github.com/ledgerline/ledger_backend/internal/core/ports/repositories"
	portssvc "github.com/ledgerline/ledger_backend/internal/core/ports/services"
	"github.com/ledgerline/ledger_backend/internal/dto"
	"github.com/ledgerline/ledger_backend/internal/handlers"
	"github.com/ledgerline/ledger_backend/internal/middleware"
	"github.com/ledgerline/ledger_backend/internal/platform/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

// --- Mock PostingService ---
type MockPostingService struct {
	mock.Mock
}

func (m *MockPostingService) CreateDraft(ctx context.Context, scope domain.Scope, req dto.CreateEntryRequest, userID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, scope, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}
func (m *MockPostingService) UpdateDraftLines(ctx context.Context, scope domain.Scope, entryID string, req dto.UpdateEntryLinesRequest, userID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, scope, entryID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}
func (m *MockPostingService) UpdateDraftHeader(ctx context.Context, scope domain.Scope, entryID string, req dto.UpdateEntryHeaderRequest, userID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, scope, entryID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}
func (m *MockPostingService) Post(ctx context.Context, scope domain.Scope, entryID string, userID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, scope, entryID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}
func (m *MockPostingService) Void(ctx context.Context, scope domain.Scope, entryID string, reason string, userID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, scope, entryID, reason, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}
func (m *MockPostingService) GetEntry(ctx context.Context, scope domain.Scope, entryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, scope, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}
func (m *MockPostingService) ListEntries(ctx context.Context, scope domain.Scope, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error) {
	args := m.Called(ctx, scope, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListEntriesResponse), args.Error(1)
}

var _ portssvc.PostingSvcFacade = (*MockPostingService)(nil)

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) CreateAccount(ctx context.Context, scope domain.Scope, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	args := m.Called(ctx, scope, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) GetAccountByID(ctx context.Context, scope domain.Scope, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, scope, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) GetAccountsByIDs(ctx context.Context, scope domain.Scope, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, scope, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}
func (m *MockAccountService) ListAccounts(ctx context.Context, scope domain.Scope, limit int, offset int) ([]domain.Account, error) {
	args := m.Called(ctx, scope, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}
func (m *MockAccountService) UpdateAccount(ctx context.Context, scope domain.Scope, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error) {
	args := m.Called(ctx, scope, accountID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) DeactivateAccount(ctx context.Context, scope domain.Scope, accountID string, userID string) error {
	args := m.Called(ctx, scope, accountID, userID)
	return args.Error(0)
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) GeneralLedger(ctx context.Context, scope domain.Scope, from, to time.Time, includeDraft bool) ([]domain.GeneralLedgerAccount, error) {
	args := m.Called(ctx, scope, from, to, includeDraft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GeneralLedgerAccount), args.Error(1)
}
func (m *MockReportingService) TrialBalance(ctx context.Context, scope domain.Scope, asOf time.Time, includeDraft bool) ([]domain.TrialBalanceRow, error) {
	args := m.Called(ctx, scope, asOf, includeDraft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TrialBalanceRow), args.Error(1)
}
func (m *MockReportingService) CashFlow(ctx context.Context, scope domain.Scope, from, to time.Time, includeDraft bool) (*domain.CashFlowReport, error) {
	args := m.Called(ctx, scope, from, to, includeDraft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashFlowReport), args.Error(1)
}

var _ portssvc.ReportingSvcFacade = (*MockReportingService)(nil)

// --- Stub TenantKeyRepository ---
type stubKeyRepo struct {
	keys []portsrepo.TenantAPIKey
}

func (s *stubKeyRepo) FindActiveKeysByPrefix(ctx context.Context, keyID string) ([]portsrepo.TenantAPIKey, error) {
	var matched []portsrepo.TenantAPIKey
	for _, k := range s.keys {
		if k.KeyID == keyID {
			matched = append(matched, k)
		}
	}
	return matched, nil
}

var _ portsrepo.TenantKeyRepository = (*stubKeyRepo)(nil)

// --- Test Suite ---
type EntryHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockPosting *MockPostingService
	keyRepo     *stubKeyRepo
	jwtSecret   string
	tenantID    string
	companyID   string
	userID      string
}

func (suite *EntryHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.tenantID = uuid.NewString()
	suite.companyID = uuid.NewString()
	suite.userID = uuid.NewString()

	suite.mockPosting = new(MockPostingService)
	suite.keyRepo = &stubKeyRepo{}

	cfg := &config.Config{
		JWTSecret:    suite.jwtSecret,
		IsProduction: true, // no swagger routes in tests
	}
	services := &portssvc.ServiceContainer{
		Account:   new(MockAccountService),
		Posting:   suite.mockPosting,
		Reporting: new(MockReportingService),
	}
	handlers.RegisterRoutes(suite.router, cfg, services, suite.keyRepo)
}

// generateTestToken creates a signed JWT carrying the user and tenant identity.
func (suite *EntryHandlerTestSuite) generateTestToken(userID, tenantID string) string {
	claims := middleware.LedgerClaims{
		TenantID: tenantID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "ledger-test",
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *EntryHandlerTestSuite) doRequest(method, url string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			suite.FailNow("Failed to encode request body", err.Error())
		}
	}
	req, _ := http.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(suite.userID, suite.tenantID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *EntryHandlerTestSuite) entriesURL(suffix string) string {
	return fmt.Sprintf("/api/v1/companies/%s/entries%s", suite.companyID, suffix)
}

func (suite *EntryHandlerTestSuite) expectedScope() domain.Scope {
	return domain.Scope{TenantID: suite.tenantID, CompanyID: suite.companyID}
}

func (suite *EntryHandlerTestSuite) sampleCreateRequest() dto.CreateEntryRequest {
	return dto.CreateEntryRequest{
		Date:         time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		Memo:         "Office supplies",
		CurrencyCode: "USD",
		Lines: []dto.CreateLineRequest{
			{AccountID: uuid.NewString(), Debit: decimal.NewFromInt(100)},
			{AccountID: uuid.NewString(), Credit: decimal.NewFromInt(100)},
		},
	}
}

// --- Test Cases ---

func (suite *EntryHandlerTestSuite) TestCreateDraft_Success() {
	req := suite.sampleCreateRequest()
	entry := &domain.JournalEntry{
		EntryID:      uuid.NewString(),
		TenantID:     suite.tenantID,
		CompanyID:    suite.companyID,
		EntryDate:    req.Date,
		Memo:         req.Memo,
		CurrencyCode: req.CurrencyCode,
		Status:       domain.Draft,
	}

	suite.mockPosting.On("CreateDraft",
		mock.Anything,
		suite.expectedScope(),
		mock.AnythingOfType("dto.CreateEntryRequest"),
		suite.userID,
	).Return(entry, nil).Once()

	w := suite.doRequest(http.MethodPost, suite.entriesURL(""), req)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.EntryResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(entry.EntryID, resp.EntryID)
	suite.Equal(string(domain.Draft), resp.Status)
	suite.mockPosting.AssertExpectations(suite.T())
}

func (suite *EntryHandlerTestSuite) TestCreateDraft_ValidationViolationsPayload() {
	validationErr := apperrors.NewValidationError([]apperrors.FieldViolation{
		{Field: "lines[0].debit", Message: "amount must have at most 2 decimal places"},
		{Field: "lines[1]", Message: "exactly one of debit or credit must be positive"},
	})

	suite.mockPosting.On("CreateDraft",
		mock.Anything, suite.expectedScope(), mock.AnythingOfType("dto.CreateEntryRequest"), suite.userID,
	).Return(nil, validationErr).Once()

	w := suite.doRequest(http.MethodPost, suite.entriesURL(""), suite.sampleCreateRequest())

	suite.Equal(http.StatusBadRequest, w.Code)
	var body struct {
		Error      string                     `json:"error"`
		Violations []apperrors.FieldViolation `json:"violations"`
	}
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("Validation failed", body.Error)
	suite.Len(body.Violations, 2)
	suite.Equal("lines[0].debit", body.Violations[0].Field)
	suite.mockPosting.AssertExpectations(suite.T())
}

func (suite *EntryHandlerTestSuite) TestCreateDraft_MalformedBody() {
	req, _ := http.NewRequest(http.MethodPost, suite.entriesURL(""), bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(suite.userID, suite.tenantID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockPosting.AssertNotCalled(suite.T(), "CreateDraft")
}

func (suite *EntryHandlerTestSuite) TestUpdateDraftHeader_Success() {
	entryID := uuid.NewString()
	memo := "Corrected memo"
	entry := &domain.JournalEntry{
		EntryID:   entryID,
		TenantID:  suite.tenantID,
		CompanyID: suite.companyID,
		Memo:      memo,
		Status:    domain.Draft,
	}

	suite.mockPosting.On("UpdateDraftHeader",
		mock.Anything,
		suite.expectedScope(),
		entryID,
		mock.MatchedBy(func(r dto.UpdateEntryHeaderRequest) bool {
			return r.Memo != nil && *r.Memo == memo && r.Date == nil && r.Reference == nil
		}),
		suite.userID,
	).Return(entry, nil).Once()

	w := suite.doRequest(http.MethodPatch, suite.entriesURL("/"+entryID), dto.UpdateEntryHeaderRequest{Memo: &memo})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.EntryResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(memo, resp.Memo)
	suite.mockPosting.AssertExpectations(suite.T())
}

func (suite *EntryHandlerTestSuite) TestUpdateDraftHeader_PostedConflict() {
	entryID := uuid.NewString()
	memo := "too late"

	suite.mockPosting.On("UpdateDraftHeader",
		mock.Anything, suite.expectedScope(), entryID, mock.AnythingOfType("dto.UpdateEntryHeaderRequest"), suite.userID,
	).Return(nil, apperrors.ErrInvalidState).Once()

	w := suite.doRequest(http.MethodPatch, suite.entriesURL("/"+entryID), dto.UpdateEntryHeaderRequest{Memo: &memo})

	suite.Equal(http.StatusConflict, w.Code)
	suite.mockPosting.AssertExpectations(suite.T())
}

func (suite *EntryHandlerTestSuite) TestPostEntry_Unbalanced() {
	entryID := uuid.NewString()
	err := fmt.Errorf("%w: debits 100 != credits 90", apperrors.ErrUnbalanced)

	suite.mockPosting.On("Post",
		mock.Anything, suite.expectedScope(), entryID, suite.userID,
	).Return(nil, err).Once()

	w := suite.doRequest(http.MethodPost, suite.entriesURL("/"+entryID+"/post"), nil)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	suite.mockPosting.AssertExpectations(suite.T())
}

func (suite *EntryHandlerTestSuite) TestPostEntry_AlreadyPosted() {
	entryID := uuid.NewString()

	suite.mockPosting.On("Post",
		mock.Anything, suite.expectedScope(), entryID, suite.userID,
	).Return(nil, apperrors.ErrInvalidState).Once()

	w := suite.doRequest(http.MethodPost, suite.entriesURL("/"+entryID+"/post"), nil)

	suite.Equal(http.StatusConflict, w.Code)
	suite.mockPosting.AssertExpectations(suite.T())
}

func (suite *EntryHandlerTestSuite) TestGetEntry_NotFound() {
	entryID := uuid.NewString()

	suite.mockPosting.On("GetEntry",
		mock.Anything, suite.expectedScope(), entryID,
	).Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doRequest(http.MethodGet, suite.entriesURL("/"+entryID), nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockPosting.AssertExpectations(suite.T())
}

func (suite *EntryHandlerTestSuite) TestVoidEntry_Success() {
	entryID := uuid.NewString()
	now := time.Now().UTC()
	entry := &domain.JournalEntry{
		EntryID:    entryID,
		TenantID:   suite.tenantID,
		CompanyID:  suite.companyID,
		Status:     domain.Void,
		VoidedAt:   &now,
		VoidReason: "duplicate of entry 7",
	}

	suite.mockPosting.On("Void",
		mock.Anything, suite.expectedScope(), entryID, "duplicate of entry 7", suite.userID,
	).Return(entry, nil).Once()

	w := suite.doRequest(http.MethodPost, suite.entriesURL("/"+entryID+"/void"), dto.VoidEntryRequest{Reason: "duplicate of entry 7"})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.EntryResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(string(domain.Void), resp.Status)
	suite.Equal("duplicate of entry 7", resp.VoidReason)
	suite.mockPosting.AssertExpectations(suite.T())
}

func (suite *EntryHandlerTestSuite) TestVoidEntry_MissingReason() {
	entryID := uuid.NewString()

	w := suite.doRequest(http.MethodPost, suite.entriesURL("/"+entryID+"/void"), gin.H{})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockPosting.AssertNotCalled(suite.T(), "Void")
}

func (suite *EntryHandlerTestSuite) TestListEntries_InvalidStatusFilter() {
	w := suite.doRequest(http.MethodGet, suite.entriesURL("?status=PENDING"), nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockPosting.AssertNotCalled(suite.T(), "ListEntries")
}

func (suite *EntryHandlerTestSuite) TestListEntries_FiltersPassedThrough() {
	suite.mockPosting.On("ListEntries",
		mock.Anything,
		suite.expectedScope(),
		mock.MatchedBy(func(p dto.ListEntriesParams) bool {
			return p.Limit == 5 &&
				len(p.Statuses) == 1 && p.Statuses[0] == domain.Void &&
				p.From.Equal(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)) &&
				p.To.Equal(time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC))
		}),
	).Return(&dto.ListEntriesResponse{Entries: []dto.EntryResponse{}}, nil).Once()

	w := suite.doRequest(http.MethodGet, suite.entriesURL("?from=2026-01-01&to=2026-01-31&status=VOID&limit=5"), nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockPosting.AssertExpectations(suite.T())
}

func (suite *EntryHandlerTestSuite) TestMissingToken_Unauthorized() {
	req, _ := http.NewRequest(http.MethodGet, suite.entriesURL(""), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockPosting.AssertNotCalled(suite.T(), "ListEntries")
}

func (suite *EntryHandlerTestSuite) TestAPIKeyAuth_ScopesTenant() {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	suite.Require().NoError(err)
	suite.keyRepo.keys = []portsrepo.TenantAPIKey{
		{KeyID: "key1", TenantID: suite.tenantID, KeyHash: string(hash), IsActive: true},
	}

	entryID := uuid.NewString()
	suite.mockPosting.On("GetEntry",
		mock.Anything, suite.expectedScope(), entryID,
	).Return(&domain.JournalEntry{
		EntryID:   entryID,
		TenantID:  suite.tenantID,
		CompanyID: suite.companyID,
		Status:    domain.Posted,
	}, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, suite.entriesURL("/"+entryID), nil)
	req.Header.Set("X-API-Key", "key1.s3cret")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockPosting.AssertExpectations(suite.T())
}

func (suite *EntryHandlerTestSuite) TestAPIKeyAuth_WrongSecret() {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	suite.Require().NoError(err)
	suite.keyRepo.keys = []portsrepo.TenantAPIKey{
		{KeyID: "key1", TenantID: suite.tenantID, KeyHash: string(hash), IsActive: true},
	}

	req, _ := http.NewRequest(http.MethodGet, suite.entriesURL(""), nil)
	req.Header.Set("X-API-Key", "key1.wrong")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockPosting.AssertNotCalled(suite.T(), "ListEntries")
}

// --- Run Test Suite ---
func TestEntryHandler(t *testing.T) {
	suite.Run(t, new(EntryHandlerTestSuite))
}
