package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/kbn_backend/internal/core/domain"
	portssvc "github.com/SscSPs/kbn_backend/internal/core/ports/services"
	"github.com/SscSPs/kbn_backend/internal/dto"
	"github.com/SscSPs/kbn_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type reconciliationHandler struct {
	reconciliationService portssvc.ReconciliationSvc
}

func registerReconciliationRoutes(rg *gin.RouterGroup, reconciliationService portssvc.ReconciliationSvc) {
	h := &reconciliationHandler{reconciliationService: reconciliationService}

	reports := rg.Group("/reports", middleware.RequireRole(domain.RoleAdministrator))
	{
		reports.GET("/reconciliation", h.getReconciliationReport)
	}
}

// getReconciliationReport godoc
// @Summary Reconciliation report
// @Description Aggregates income, costs, expenses, commissions and per-party totals over an inclusive date range
// @Tags reports
// @Produce  json
// @Param   fromDate query string true "Start date (YYYY-MM-DD)"
// @Param   toDate query string true "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.ReconciliationReportResponse
// @Failure 400 {object} map[string]string "Missing or malformed dates"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/reconciliation [get]
func (h *reconciliationHandler) getReconciliationReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	from, err := time.Parse(domain.DateLayout, c.Query("fromDate"))
	if err != nil {
		logger.Warn("Invalid fromDate", slog.String("fromDate", c.Query("fromDate")))
		c.JSON(http.StatusBadRequest, gin.H{"error": "fromDate must be formatted as YYYY-MM-DD"})
		return
	}
	to, err := time.Parse(domain.DateLayout, c.Query("toDate"))
	if err != nil {
		logger.Warn("Invalid toDate", slog.String("toDate", c.Query("toDate")))
		c.JSON(http.StatusBadRequest, gin.H{"error": "toDate must be formatted as YYYY-MM-DD"})
		return
	}

	report, err := h.reconciliationService.ReconciliationReport(c.Request.Context(), from, to)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to generate report")
		return
	}

	logger.Info("Reconciliation report generated",
		slog.String("from", c.Query("fromDate")),
		slog.String("to", c.Query("toDate")),
		slog.Int("entries", report.EntryCount))
	c.JSON(http.StatusOK, dto.ToReconciliationReportResponse(report))
}
