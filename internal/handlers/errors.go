package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/household_ledger/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// statusForError maps service errors onto HTTP status codes.
func statusForError(err error) int {
	var appErr *apperrors.AppError
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, apperrors.ErrInsufficientEquity):
		return http.StatusUnprocessableEntity
	case errors.Is(err, apperrors.ErrStoreBusy):
		return http.StatusServiceUnavailable
	case errors.As(err, &appErr) && appErr.Code >= 400 && appErr.Code < 500:
		return appErr.Code
	}
	return http.StatusInternalServerError
}

// respondError writes err as a JSON error body. Server-side failures are
// logged in full and reported to the client with the generic failure message.
func respondError(c *gin.Context, logger *slog.Logger, failure string, err error) {
	status := statusForError(err)
	switch {
	case status >= http.StatusInternalServerError && status != http.StatusServiceUnavailable:
		logger.Error(failure, slog.String("error", err.Error()))
		c.JSON(status, gin.H{"error": failure})
	case status == http.StatusServiceUnavailable:
		logger.Warn(failure, slog.String("error", err.Error()))
		c.Header("Retry-After", "1")
		c.JSON(status, gin.H{"error": "The ledger is busy, please retry"})
	default:
		logger.Warn(failure, slog.String("error", err.Error()))
		c.JSON(status, gin.H{"error": err.Error()})
	}
}

// respondBindError reports a request that failed binding or validation.
func respondBindError(c *gin.Context, logger *slog.Logger, what string, err error) {
	logger.Warn("Failed to bind "+what, slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
}
