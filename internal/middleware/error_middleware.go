package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/courseapproval/internal/app/models/dto"
	"github.com/yigit/courseapproval/internal/pkg/apperrors"
	"github.com/yigit/courseapproval/internal/pkg/logger"
)

// HandleAPIError maps service errors to an HTTP status and a JSON message body
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.ErrorCodeResourceNotFound,
			apperrors.StatusMessage(err, "Resource not found"),
		))
	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(
			dto.ErrorCodeConflict,
			apperrors.StatusMessage(err, "Conflict"),
		))
	case errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.ErrorCodeBadRequest,
			apperrors.StatusMessage(err, "Bad request"),
		))
	default:
		code := dto.ErrorCodeInternalServer
		if errors.Is(err, apperrors.ErrStoreUnavailable) {
			code = dto.ErrorCodeDatabaseError
		}
		logger.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("requestID", RequestID(c)).
			Str("errorCode", string(code)).
			Msg("Request failed")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			code,
			apperrors.StatusMessage(err, "Internal server error"),
		))
	}
}
