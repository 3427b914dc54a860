package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ledgerline/ledger_backend/internal/core/domain"
	portssvc "github.com/ledgerline/ledger_backend/internal/core/ports/services"
	"github.com/ledgerline/ledger_backend/internal/dto"
	"github.com/ledgerline/ledger_backend/internal/middleware"
)

// entryHandler handles HTTP requests for the journal entry lifecycle.
type entryHandler struct {
	postingService portssvc.PostingSvcFacade
}

func newEntryHandler(postingService portssvc.PostingSvcFacade) *entryHandler {
	return &entryHandler{postingService: postingService}
}

// registerEntryRoutes registers entry routes nested under a specific company.
func registerEntryRoutes(rg *gin.RouterGroup, postingService portssvc.PostingSvcFacade) {
	h := newEntryHandler(postingService)

	entries := rg.Group("/entries")
	{
		entries.POST("", h.createDraft)
		entries.GET("", h.listEntries)
		entries.GET("/:entryID", h.getEntry)
		entries.PATCH("/:entryID", h.updateDraftHeader)
		entries.PUT("/:entryID/lines", h.updateDraftLines)
		entries.POST("/:entryID/post", h.postEntry)
		entries.POST("/:entryID/void", h.voidEntry)
	}
}

// createDraft godoc
// @Summary Create a draft journal entry
// @Description Creates a new DRAFT entry with its lines. Every violated field is reported.
// @Tags entries
// @Accept json
// @Produce json
// @Param companyID path string true "Company ID"
// @Param entry body dto.CreateEntryRequest true "Entry and lines"
// @Success 201 {object} dto.EntryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create entry"
// @Security BearerAuth
// @Router /companies/{companyID}/entries [post]
func (h *entryHandler) createDraft(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, logger, err)
		return
	}

	scope, userID, ok := requestIdentity(c)
	if !ok {
		return
	}

	entry, err := h.postingService.CreateDraft(c.Request.Context(), scope, req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create entry")
		return
	}

	logger.Info("Draft entry created", slog.String("entry_id", entry.EntryID))
	c.JSON(http.StatusCreated, dto.ToEntryResponse(entry))
}

// getEntry godoc
// @Summary Get a journal entry
// @Description Retrieves an entry with its lines within the caller's scope
// @Tags entries
// @Produce json
// @Param companyID path string true "Company ID"
// @Param entryID path string true "Entry ID"
// @Success 200 {object} dto.EntryResponse
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 500 {object} map[string]string "Failed to retrieve entry"
// @Security BearerAuth
// @Router /companies/{companyID}/entries/{entryID} [get]
func (h *entryHandler) getEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("entryID")

	scope, _, ok := requestIdentity(c)
	if !ok {
		return
	}

	entry, err := h.postingService.GetEntry(c.Request.Context(), scope, entryID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve entry")
		return
	}

	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

// listEntries godoc
// @Summary List journal entries
// @Description Lists entries in a date range with cursor pagination. DRAFT and VOID entries appear only when asked for via the status filter.
// @Tags entries
// @Produce json
// @Param companyID path string true "Company ID"
// @Param from query string false "Range start (YYYY-MM-DD)"
// @Param to query string false "Range end (YYYY-MM-DD)"
// @Param status query []string false "Statuses to include (DRAFT, POSTED, VOID)"
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Pagination token from a previous page"
// @Success 200 {object} dto.ListEntriesResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to list entries"
// @Security BearerAuth
// @Router /companies/{companyID}/entries [get]
func (h *entryHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	scope, _, ok := requestIdentity(c)
	if !ok {
		return
	}

	params, err := parseListEntriesParams(c)
	if err != nil {
		logger.Warn("Invalid list parameters", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.postingService.ListEntries(c.Request.Context(), scope, params)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list entries")
		return
	}

	c.JSON(http.StatusOK, result)
}

// updateDraftHeader godoc
// @Summary Update the header of a draft entry
// @Description Updates the date, memo or reference of a DRAFT entry. Fields left out of the body keep their values. Rejected once the entry is POSTED or VOID.
// @Tags entries
// @Accept json
// @Produce json
// @Param companyID path string true "Company ID"
// @Param entryID path string true "Entry ID"
// @Param header body dto.UpdateEntryHeaderRequest true "Header fields to update"
// @Success 200 {object} dto.EntryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 409 {object} map[string]string "Entry is not a draft"
// @Security BearerAuth
// @Router /companies/{companyID}/entries/{entryID} [patch]
func (h *entryHandler) updateDraftHeader(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("entryID")

	var req dto.UpdateEntryHeaderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, logger, err)
		return
	}

	scope, userID, ok := requestIdentity(c)
	if !ok {
		return
	}

	entry, err := h.postingService.UpdateDraftHeader(c.Request.Context(), scope, entryID, req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update entry header")
		return
	}

	logger.Info("Draft header updated", slog.String("entry_id", entryID))
	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

// updateDraftLines godoc
// @Summary Replace the lines of a draft entry
// @Description Replaces the full line set of a DRAFT entry. Rejected once the entry is POSTED or VOID.
// @Tags entries
// @Accept json
// @Produce json
// @Param companyID path string true "Company ID"
// @Param entryID path string true "Entry ID"
// @Param lines body dto.UpdateEntryLinesRequest true "Replacement lines"
// @Success 200 {object} dto.EntryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 409 {object} map[string]string "Entry is not a draft"
// @Security BearerAuth
// @Router /companies/{companyID}/entries/{entryID}/lines [put]
func (h *entryHandler) updateDraftLines(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("entryID")

	var req dto.UpdateEntryLinesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, logger, err)
		return
	}

	scope, userID, ok := requestIdentity(c)
	if !ok {
		return
	}

	entry, err := h.postingService.UpdateDraftLines(c.Request.Context(), scope, entryID, req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update entry lines")
		return
	}

	logger.Info("Draft lines replaced", slog.String("entry_id", entryID))
	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

// postEntry godoc
// @Summary Post a draft entry
// @Description Transitions a DRAFT entry to POSTED after re-validating the balance invariant
// @Tags entries
// @Produce json
// @Param companyID path string true "Company ID"
// @Param entryID path string true "Entry ID"
// @Success 200 {object} dto.EntryResponse
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 409 {object} map[string]string "Entry is not a draft"
// @Failure 422 {object} map[string]string "Entry is unbalanced"
// @Security BearerAuth
// @Router /companies/{companyID}/entries/{entryID}/post [post]
func (h *entryHandler) postEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("entryID")

	scope, userID, ok := requestIdentity(c)
	if !ok {
		return
	}

	entry, err := h.postingService.Post(c.Request.Context(), scope, entryID, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to post entry")
		return
	}

	logger.Info("Entry posted", slog.String("entry_id", entryID))
	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

// voidEntry godoc
// @Summary Void a posted entry
// @Description Transitions a POSTED entry to VOID, recording the mandatory reason. Lines are preserved for audit.
// @Tags entries
// @Accept json
// @Produce json
// @Param companyID path string true "Company ID"
// @Param entryID path string true "Entry ID"
// @Param reason body dto.VoidEntryRequest true "Void reason"
// @Success 200 {object} dto.EntryResponse
// @Failure 400 {object} map[string]string "Reason missing"
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 409 {object} map[string]string "Entry is not posted"
// @Security BearerAuth
// @Router /companies/{companyID}/entries/{entryID}/void [post]
func (h *entryHandler) voidEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("entryID")

	var req dto.VoidEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, logger, err)
		return
	}

	scope, userID, ok := requestIdentity(c)
	if !ok {
		return
	}

	entry, err := h.postingService.Void(c.Request.Context(), scope, entryID, req.Reason, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to void entry")
		return
	}

	logger.Info("Entry voided", slog.String("entry_id", entryID))
	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

func parseListEntriesParams(c *gin.Context) (dto.ListEntriesParams, error) {
	var params dto.ListEntriesParams

	from, to, err := parseDateRange(c)
	if err != nil {
		return params, err
	}
	params.From = from
	params.To = to

	for _, s := range c.QueryArray("status") {
		status := domain.EntryStatus(s)
		if status != domain.Draft && status != domain.Posted && status != domain.Void {
			return params, fmt.Errorf("invalid status %q", s)
		}
		params.Statuses = append(params.Statuses, status)
	}

	if limitStr := c.Query("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit <= 0 {
			return params, fmt.Errorf("invalid limit %q", limitStr)
		}
		params.Limit = limit
	}

	if token := c.Query("nextToken"); token != "" {
		params.NextToken = &token
	}

	return params, nil
}
