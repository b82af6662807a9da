package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/kbn_backend/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// respondServiceError maps a service error onto an HTTP status. Unexpected
// errors are logged and hidden behind fallbackMsg.
func respondServiceError(c *gin.Context, logger *slog.Logger, err error, fallbackMsg string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrInvalidOperation), errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Operation not allowed", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.Error(fallbackMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallbackMsg})
	}
}
