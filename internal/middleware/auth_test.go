package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apperrors "nt-data-lab/internal/errors"
	"nt-data-lab/pkg/auth"
	"nt-data-lab/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIdentityRouter(tokens auth.TokenManager, required bool) *gin.Engine {
	router := gin.New()
	router.POST("/", Identity(tokens, required), func(c *gin.Context) {
		response.Success(c, gin.H{"email": GetIdentity(c)})
	})
	return router
}

func postWithAuthorization(router http.Handler, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestIdentity(t *testing.T) {
	clock := clockwork.NewFakeClock()
	tokens := auth.NewJWTManager("testsecret", 15*time.Minute, auth.WithClock(clock))

	valid, err := tokens.GenerateToken("coach@example.com")
	require.NoError(t, err)
	foreign, err := auth.NewJWTManager("differentsecret", 15*time.Minute, auth.WithClock(clock)).GenerateToken("coach@example.com")
	require.NoError(t, err)

	tests := []struct {
		name     string
		header   string
		required bool
		status   int
		body     string
	}{
		{"valid token", "Bearer " + valid, true, http.StatusOK, `{"email":"coach@example.com"}`},
		{"scheme is case-insensitive", "bearer " + valid, true, http.StatusOK, `{"email":"coach@example.com"}`},
		{"anonymous when optional", "", false, http.StatusOK, `{"email":""}`},
		{"missing header when required", "", true, http.StatusUnauthorized, `{"error":"unauthenticated"}`},
		{"token without scheme", valid, false, http.StatusUnauthorized, `{"error":"invalid token"}`},
		{"basic scheme", "Basic " + valid, false, http.StatusUnauthorized, `{"error":"invalid token"}`},
		{"empty bearer", "Bearer ", true, http.StatusUnauthorized, `{"error":"invalid token"}`},
		{"garbage token", "Bearer invalid.token.here", false, http.StatusUnauthorized, `{"error":"invalid token"}`},
		{"other secret", "Bearer " + foreign, true, http.StatusUnauthorized, `{"error":"invalid token"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postWithAuthorization(newIdentityRouter(tokens, tt.required), tt.header)

			assert.Equal(t, tt.status, w.Code)
			assert.JSONEq(t, tt.body, w.Body.String())
		})
	}
}

func TestIdentity_ExpiredToken(t *testing.T) {
	clock := clockwork.NewFakeClock()
	tokens := auth.NewJWTManager("testsecret", time.Minute, auth.WithClock(clock))
	token, err := tokens.GenerateToken("coach@example.com")
	require.NoError(t, err)

	clock.Advance(time.Hour)
	w := postWithAuthorization(newIdentityRouter(tokens, false), "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"`+apperrors.ErrInvalidToken.Error()+`"}`, w.Body.String())
}

func TestIdentity_AbortsChain(t *testing.T) {
	reached := false
	router := gin.New()
	router.POST("/",
		Identity(auth.NewJWTManager("testsecret", time.Minute), true),
		func(c *gin.Context) { reached = true },
	)

	w := postWithAuthorization(router, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, reached)
}

func TestGetIdentity(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Empty(t, GetIdentity(c))

	c.Set(IdentityKey, "scout@example.com")
	assert.Equal(t, "scout@example.com", GetIdentity(c))
}
