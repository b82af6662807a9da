package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/kbn_backend/internal/core/domain"
	portssvc "github.com/SscSPs/kbn_backend/internal/core/ports/services"
	"github.com/SscSPs/kbn_backend/internal/dto"
	"github.com/SscSPs/kbn_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ledgerHandler handles HTTP requests for income and expense entries.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func newLedgerHandler(ls portssvc.LedgerSvcFacade) *ledgerHandler {
	return &ledgerHandler{ledgerService: ls}
}

// registerLedgerRoutes registers routes related to the ledger.
func registerLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newLedgerHandler(ledgerService)
	adminOnly := middleware.RequireRole(domain.RoleAdministrator)

	ledger := rg.Group("/ledger")
	{
		ledger.POST("", middleware.RequireRole(domain.RoleAdministrator, domain.RoleInstructor, domain.RoleSecretary), h.createLedgerEntry)
		ledger.GET("", adminOnly, h.listLedgerEntries)
		ledger.GET("/:entryID", adminOnly, h.getLedgerEntry)
		ledger.PUT("/:entryID/assignee", adminOnly, h.assignLedgerEntry)
	}
}

// createLedgerEntry godoc
// @Summary Record an income or expense
// @Description Creates a ledger entry. Expenses are stored as reviewed with no assignee.
// @Tags ledger
// @Accept  json
// @Produce  json
// @Param   entry body dto.CreateLedgerEntryRequest true "Entry details"
// @Success 201 {object} dto.LedgerEntryResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 409 {object} map[string]string "Ledger entry already exists"
// @Failure 500 {object} map[string]string "Failed to create ledger entry"
// @Security BearerAuth
// @Router /ledger [post]
func (h *ledgerHandler) createLedgerEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateLedgerEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateLedgerEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger.Info("Received request to create ledger entry", slog.String("kind", req.Kind))

	entry, err := h.ledgerService.CreateLedgerEntry(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create ledger entry")
		return
	}

	logger.Info("Ledger entry created", slog.String("entry_id", entry.EntryID))
	c.JSON(http.StatusCreated, dto.ToLedgerEntryResponse(entry))
}

// listLedgerEntries godoc
// @Summary List ledger entries
// @Description Lists entries newest date first. Without limit every entry is returned.
// @Tags ledger
// @Produce  json
// @Param   limit query int false "Page size (0 returns everything)"
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListLedgerEntriesResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Failed to list ledger entries"
// @Security BearerAuth
// @Router /ledger [get]
func (h *ledgerHandler) listLedgerEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListLedgerEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListLedgerEntries", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	if params.Limit == 0 && params.NextToken == nil {
		entries, err := h.ledgerService.ListLedgerEntries(c.Request.Context())
		if err != nil {
			respondServiceError(c, logger, err, "Failed to list ledger entries")
			return
		}
		c.JSON(http.StatusOK, dto.ToListLedgerEntriesResponse(entries, nil))
		return
	}

	entries, next, err := h.ledgerService.ListLedgerEntriesPage(c.Request.Context(), params.Limit, params.NextToken)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list ledger entries")
		return
	}

	logger.Debug("Ledger page listed", slog.Int("count", len(entries)))
	c.JSON(http.StatusOK, dto.ToListLedgerEntriesResponse(entries, next))
}

// getLedgerEntry godoc
// @Summary Get a ledger entry
// @Tags ledger
// @Produce  json
// @Param   entryID path string true "Entry ID"
// @Success 200 {object} dto.LedgerEntryResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Ledger entry not found"
// @Failure 500 {object} map[string]string "Failed to retrieve ledger entry"
// @Security BearerAuth
// @Router /ledger/{entryID} [get]
func (h *ledgerHandler) getLedgerEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("entry_id", c.Param("entryID")))

	entry, err := h.ledgerService.GetLedgerEntry(c.Request.Context(), c.Param("entryID"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve ledger entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToLedgerEntryResponse(entry))
}

// assignLedgerEntry godoc
// @Summary Assign an income entry
// @Description Credits an income entry to a party and marks it reviewed. Expenses cannot be assigned.
// @Tags ledger
// @Accept  json
// @Produce  json
// @Param   entryID path string true "Entry ID"
// @Param   assignment body dto.AssignLedgerEntryRequest true "Assignee"
// @Success 200 {object} dto.LedgerEntryResponse
// @Failure 400 {object} map[string]string "Invalid assignee"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Ledger entry not found"
// @Failure 409 {object} map[string]string "Entry is an expense"
// @Failure 500 {object} map[string]string "Failed to assign ledger entry"
// @Security BearerAuth
// @Router /ledger/{entryID}/assignee [put]
func (h *ledgerHandler) assignLedgerEntry(c *gin.Context) {
	entryID := c.Param("entryID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("entry_id", entryID))

	var req dto.AssignLedgerEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AssignLedgerEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	entry, err := h.ledgerService.AssignLedgerEntry(c.Request.Context(), entryID, req.Value(), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to assign ledger entry")
		return
	}

	logger.Info("Ledger entry assigned", slog.String("assignee", string(entry.Assignee)))
	c.JSON(http.StatusOK, dto.ToLedgerEntryResponse(entry))
}
