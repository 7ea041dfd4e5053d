// Package handler contains HTTP handlers for the API.
package handler

import (
	apperrors "nt-data-lab/internal/errors"
	"nt-data-lab/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// respondError maps a service error to a response. Validation errors are the
// caller's fault (400). Everything else is a 500 carrying the error text;
// errors outside the known groups are also logged.
func respondError(c *gin.Context, err error) {
	switch {
	case apperrors.IsValidation(err):
		response.BadRequest(c, err.Error())
	case apperrors.IsPermission(err), apperrors.IsExternal(err):
		response.ServerError(c, err.Error())
	default:
		_ = c.Error(err)
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("request failed")
		response.ServerError(c, err.Error())
	}
}
