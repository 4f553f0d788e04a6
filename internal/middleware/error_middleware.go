package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rushiiaher/CivilPath-sub000/internal/app/models/dto"
	"github.com/rushiiaher/CivilPath-sub000/internal/pkg/apperrors"
	"github.com/rushiiaher/CivilPath-sub000/internal/pkg/logger"
)

type errorMapping struct {
	kind     error
	status   int
	fallback string
}

// Order matters: the first match wins.
var errorMappings = []errorMapping{
	{apperrors.ErrValidationFailed, http.StatusBadRequest, "Validation failed"},
	{apperrors.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid credentials"},
	{apperrors.ErrTokenExpired, http.StatusUnauthorized, "Invalid or expired token"},
	{apperrors.ErrTokenInvalid, http.StatusUnauthorized, "Invalid or expired token"},
	{apperrors.ErrUnauthorized, http.StatusUnauthorized, "Access token required"},
	{apperrors.ErrResourceNotFound, http.StatusNotFound, "Resource not found"},
	{apperrors.ErrConflict, http.StatusConflict, "Resource already exists"},
	{apperrors.ErrTooManyRequests, http.StatusTooManyRequests, "Too many requests"},
}

// HandleAPIError handles common API errors and returns appropriate responses.
// Unknown errors are logged with their stack and answered with a generic 500.
func HandleAPIError(c *gin.Context, err error) {
	for _, m := range errorMappings {
		if errors.Is(err, m.kind) {
			msg := apperrors.PublicMessage(err)
			if msg == "" {
				msg = m.fallback
			}
			c.AbortWithStatusJSON(m.status, dto.ErrorResponse{Error: msg})
			return
		}
	}

	logger.Error().Err(err).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Msg("Unhandled error")
	c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Internal server error"})
}
