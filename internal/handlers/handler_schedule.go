package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/kbn_backend/internal/core/domain"
	portssvc "github.com/SscSPs/kbn_backend/internal/core/ports/services"
	"github.com/SscSPs/kbn_backend/internal/dto"
	"github.com/SscSPs/kbn_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

const maxStatusBodyBytes = 4 << 10

// scheduleHandler handles HTTP requests for lesson appointments.
type scheduleHandler struct {
	scheduleService portssvc.ScheduleSvcFacade
}

func newScheduleHandler(ss portssvc.ScheduleSvcFacade) *scheduleHandler {
	return &scheduleHandler{scheduleService: ss}
}

// registerScheduleRoutes registers routes related to the schedule.
func registerScheduleRoutes(rg *gin.RouterGroup, scheduleService portssvc.ScheduleSvcFacade) {
	h := newScheduleHandler(scheduleService)
	office := middleware.RequireRole(domain.RoleAdministrator, domain.RoleSecretary)

	schedule := rg.Group("/schedule")
	{
		schedule.POST("", office, h.createScheduleEntry)
		schedule.GET("", office, h.listSchedule)
		schedule.GET("/staff/:staffID", h.listScheduleByStaff)
		schedule.GET("/:scheduleID",
			middleware.RequireRole(domain.RoleAdministrator, domain.RoleSecretary, domain.RoleInstructor),
			h.getScheduleEntry)
		schedule.PUT("/:scheduleID/status",
			middleware.RequireRole(domain.RoleAdministrator, domain.RoleSecretary, domain.RoleInstructor),
			h.setScheduleStatus)
	}
}

// createScheduleEntry godoc
// @Summary Book a lesson
// @Description Creates a schedule entry for a staff member. New entries always start PENDING.
// @Tags schedule
// @Accept  json
// @Produce  json
// @Param   entry body dto.CreateScheduleEntryRequest true "Booking details"
// @Success 201 {object} dto.ScheduleEntryResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Staff member not found"
// @Failure 409 {object} map[string]string "Schedule entry already exists"
// @Failure 500 {object} map[string]string "Failed to create schedule entry"
// @Security BearerAuth
// @Router /schedule [post]
func (h *scheduleHandler) createScheduleEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateScheduleEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateScheduleEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger.Info("Received request to create schedule entry", slog.String("staff_id", req.StaffID), slog.String("lesson_date", req.LessonDate))

	entry, err := h.scheduleService.CreateScheduleEntry(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create schedule entry")
		return
	}

	logger.Info("Schedule entry created", slog.String("schedule_id", entry.ScheduleID))
	c.JSON(http.StatusCreated, dto.ToScheduleEntryResponse(entry))
}

// listSchedule godoc
// @Summary List the schedule
// @Description Lists every appointment ordered by lesson date and time, optionally filtered by status
// @Tags schedule
// @Produce  json
// @Param   status query string false "Status filter (PENDING, CONFIRMED, REJECTED, COMPLETED)"
// @Success 200 {array} dto.ScheduleEntryResponse
// @Failure 400 {object} map[string]string "Unknown status"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Failed to list schedule"
// @Security BearerAuth
// @Router /schedule [get]
func (h *scheduleHandler) listSchedule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var (
		entries []domain.ScheduleEntry
		err     error
	)
	if status, ok := c.GetQuery("status"); ok {
		entries, err = h.scheduleService.ListScheduleByStatus(c.Request.Context(), status)
	} else {
		entries, err = h.scheduleService.ListSchedule(c.Request.Context())
	}
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list schedule")
		return
	}

	c.JSON(http.StatusOK, dto.ToListScheduleEntryResponse(entries))
}

// listScheduleByStaff godoc
// @Summary List a staff member's schedule
// @Tags schedule
// @Produce  json
// @Param   staffID path string true "Staff ID"
// @Success 200 {array} dto.ScheduleEntryResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list schedule"
// @Security BearerAuth
// @Router /schedule/staff/{staffID} [get]
func (h *scheduleHandler) listScheduleByStaff(c *gin.Context) {
	staffID := c.Param("staffID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("staff_id", staffID))

	entries, err := h.scheduleService.ListScheduleByStaff(c.Request.Context(), staffID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list schedule")
		return
	}

	c.JSON(http.StatusOK, dto.ToListScheduleEntryResponse(entries))
}

// getScheduleEntry godoc
// @Summary Get an appointment
// @Tags schedule
// @Produce  json
// @Param   scheduleID path string true "Schedule ID"
// @Success 200 {object} dto.ScheduleEntryResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Schedule entry not found"
// @Failure 500 {object} map[string]string "Failed to retrieve schedule entry"
// @Security BearerAuth
// @Router /schedule/{scheduleID} [get]
func (h *scheduleHandler) getScheduleEntry(c *gin.Context) {
	scheduleID := c.Param("scheduleID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("schedule_id", scheduleID))

	entry, err := h.scheduleService.GetScheduleEntry(c.Request.Context(), scheduleID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve schedule entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToScheduleEntryResponse(entry))
}

// setScheduleStatus godoc
// @Summary Change an appointment's status
// @Description Accepts {"status":"CONFIRMED"}. Older clients may send the bare value or {"estado":"CONFIRMADA"}.
// @Tags schedule
// @Accept  json
// @Produce  json
// @Param   scheduleID path string true "Schedule ID"
// @Param   status body dto.UpdateScheduleStatusRequest true "Target status"
// @Success 200 {object} dto.ScheduleEntryResponse
// @Failure 400 {object} map[string]string "Unknown status"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Schedule entry not found"
// @Failure 409 {object} map[string]string "Transition not allowed"
// @Failure 500 {object} map[string]string "Failed to update schedule status"
// @Security BearerAuth
// @Router /schedule/{scheduleID}/status [put]
func (h *scheduleHandler) setScheduleStatus(c *gin.Context) {
	scheduleID := c.Param("scheduleID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("schedule_id", scheduleID))

	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxStatusBodyBytes))
	if err != nil {
		logger.Warn("Failed to read status body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	entry, err := h.scheduleService.SetScheduleStatus(c.Request.Context(), scheduleID, statusFromBody(body), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update schedule status")
		return
	}

	logger.Info("Schedule status updated", slog.String("status", string(entry.Status)))
	c.JSON(http.StatusOK, dto.ToScheduleEntryResponse(entry))
}

// statusFromBody extracts the target status from a JSON object when possible
// and otherwise hands the raw text to the domain parser.
func statusFromBody(body []byte) string {
	var req dto.UpdateScheduleStatusRequest
	if err := json.Unmarshal(body, &req); err == nil && strings.TrimSpace(req.Value()) != "" {
		return req.Value()
	}
	return string(body)
}
