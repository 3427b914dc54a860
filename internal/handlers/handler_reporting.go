package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	portssvc "github.com/ledgerline/ledger_backend/internal/core/ports/services"
	"github.com/ledgerline/ledger_backend/internal/middleware"
)

// reportingHandler handles HTTP requests for the read-side projections.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(reportingService portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: reportingService}
}

// registerReportingRoutes registers report routes nested under a specific company.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/general-ledger", h.getGeneralLedger)
		reports.GET("/trial-balance", h.getTrialBalance)
		reports.GET("/cash-flow", h.getCashFlow)
	}
}

// getGeneralLedger godoc
// @Summary Generate a general ledger report
// @Description Lists lines grouped by account with running balances over a date range. VOID entries never appear.
// @Tags reports
// @Produce json
// @Param companyID path string true "Company ID"
// @Param from query string true "Range start (YYYY-MM-DD)"
// @Param to query string true "Range end (YYYY-MM-DD)"
// @Param includeDraft query bool false "Include DRAFT entries" default(false)
// @Success 200 {array} domain.GeneralLedgerAccount
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /companies/{companyID}/reports/general-ledger [get]
func (h *reportingHandler) getGeneralLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	scope, _, ok := requestIdentity(c)
	if !ok {
		return
	}

	from, to, err := parseDateRange(c)
	if err != nil {
		logger.Warn("Invalid report date range", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	includeDraft := c.Query("includeDraft") == "true"

	report, err := h.reportingService.GeneralLedger(c.Request.Context(), scope, from, to, includeDraft)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to generate general ledger")
		return
	}

	c.JSON(http.StatusOK, report)
}

// getTrialBalance godoc
// @Summary Generate a trial balance report
// @Description Per-account debit and credit totals as of a date. Totals are equal when every posted entry balanced.
// @Tags reports
// @Produce json
// @Param companyID path string true "Company ID"
// @Param asOf query string false "Report date (YYYY-MM-DD)" default(current date)
// @Param includeDraft query bool false "Include DRAFT entries" default(false)
// @Success 200 {array} domain.TrialBalanceRow
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /companies/{companyID}/reports/trial-balance [get]
func (h *reportingHandler) getTrialBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	scope, _, ok := requestIdentity(c)
	if !ok {
		return
	}

	asOfStr := c.DefaultQuery("asOf", time.Now().Format("2006-01-02"))
	asOf, err := time.Parse("2006-01-02", asOfStr)
	if err != nil {
		logger.Warn("Invalid asOf date format", slog.String("asOf", asOfStr))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format. Use YYYY-MM-DD"})
		return
	}
	includeDraft := c.Query("includeDraft") == "true"

	report, err := h.reportingService.TrialBalance(c.Request.Context(), scope, asOf, includeDraft)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to generate trial balance")
		return
	}

	c.JSON(http.StatusOK, report)
}

// getCashFlow godoc
// @Summary Generate a cash flow report
// @Description Inflow and outflow totals over cash-equivalent accounts for a date range
// @Tags reports
// @Produce json
// @Param companyID path string true "Company ID"
// @Param from query string true "Range start (YYYY-MM-DD)"
// @Param to query string true "Range end (YYYY-MM-DD)"
// @Param includeDraft query bool false "Include DRAFT entries" default(false)
// @Success 200 {object} domain.CashFlowReport
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /companies/{companyID}/reports/cash-flow [get]
func (h *reportingHandler) getCashFlow(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	scope, _, ok := requestIdentity(c)
	if !ok {
		return
	}

	from, to, err := parseDateRange(c)
	if err != nil {
		logger.Warn("Invalid report date range", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	includeDraft := c.Query("includeDraft") == "true"

	report, err := h.reportingService.CashFlow(c.Request.Context(), scope, from, to, includeDraft)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to generate cash flow report")
		return
	}

	c.JSON(http.StatusOK, report)
}

func parseDateRange(c *gin.Context) (time.Time, time.Time, error) {
	fromStr := c.DefaultQuery("from", time.Now().AddDate(0, -1, 0).Format("2006-01-02"))
	from, err := time.Parse("2006-01-02", fromStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid from date %q, expected YYYY-MM-DD", fromStr)
	}

	toStr := c.DefaultQuery("to", time.Now().Format("2006-01-02"))
	to, err := time.Parse("2006-01-02", toStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid to date %q, expected YYYY-MM-DD", toStr)
	}

	return from, to, nil
}
