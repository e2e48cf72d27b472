package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/staffkhata/staffkhata_backend/internal/apperrors"
	"github.com/staffkhata/staffkhata_backend/internal/dto"
	"github.com/staffkhata/staffkhata_backend/internal/middleware"
)

// respondError maps service errors to HTTP statuses and writes the failure
// envelope. Unknown errors become 500 and are logged with their cause; the
// client only sees a generic message.
func respondError(c *gin.Context, err error, clientMessage string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.Fail(clientMessage))
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.Fail(clientMessage))
	case errors.Is(err, apperrors.ErrDuplicate), errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, dto.Fail(clientMessage))
	case errors.Is(err, apperrors.ErrShiftInProgress):
		c.JSON(http.StatusLocked, dto.Fail("A shift is already in progress for this employee"))
	case errors.Is(err, apperrors.ErrUnauthorized), errors.Is(err, apperrors.ErrRefreshTokenExpired):
		c.JSON(http.StatusUnauthorized, dto.Fail(clientMessage))
	case errors.Is(err, apperrors.ErrPartialArchival):
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Archival left partial state", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.Fail("Archival failed and has been flagged for reconciliation"))
	case errors.Is(err, apperrors.ErrStorageUnavailable):
		c.JSON(http.StatusServiceUnavailable, dto.Fail("Storage temporarily unavailable"))
	default:
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Unhandled service error", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.Fail("Internal server error"))
	}
}

// ownerIDOrAbort extracts the authenticated owner ID set by the auth
// middleware, aborting with 401 when missing.
func ownerIDOrAbort(c *gin.Context) (string, bool) {
	ownerID, ok := middleware.GetOwnerIDFromContext(c)
	if !ok || ownerID == "" {
		c.JSON(http.StatusUnauthorized, dto.Fail("Authentication required"))
		return "", false
	}
	return ownerID, true
}
