// Package middleware provides HTTP middleware for the API.
package middleware

import (
	"net/http"
	"strings"

	apperrors "nt-data-lab/internal/errors"
	"nt-data-lab/pkg/auth"
	"nt-data-lab/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Context keys for storing request data
const (
	IdentityKey  = "identityEmail"
	RequestIDKey = "requestID"
)

// Identity resolves the caller's email from a bearer token. Without a token
// the request stays anonymous unless required is set. A token that is present
// must be valid either way.
func Identity(tokens auth.TokenManager, required bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, present := bearerToken(c.GetHeader("Authorization"))
		if !present {
			if required {
				response.AbortWithError(c, http.StatusUnauthorized, apperrors.ErrUnauthenticated.Error())
				return
			}
			c.Next()
			return
		}

		claims, err := tokens.ValidateToken(raw)
		if err != nil {
			log.Debug().Err(err).Str("request_id", c.GetString(RequestIDKey)).Msg("token rejected")
			response.AbortWithError(c, http.StatusUnauthorized, apperrors.ErrInvalidToken.Error())
			return
		}

		c.Set(IdentityKey, claims.Email)
		c.Next()
	}
}

// bearerToken extracts the credential of an Authorization header. A header
// with another scheme or no credential counts as present with an empty token.
func bearerToken(header string) (string, bool) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", false
	}
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", true
	}
	return strings.TrimSpace(token), true
}

// GetIdentity returns the authenticated email, or "" for anonymous requests.
func GetIdentity(c *gin.Context) string {
	return c.GetString(IdentityKey)
}
