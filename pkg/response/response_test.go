package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	return c, w
}

func TestSuccess(t *testing.T) {
	c, w := setupTestContext()

	Success(c, map[string]string{"status": "created", "id": "123"})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, map[string]string{"status": "created", "id": "123"}, resp)
}

func TestNoContent(t *testing.T) {
	router := gin.New()
	router.OPTIONS("/test", func(c *gin.Context) {
		NoContent(c)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/test", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestErrorResponses(t *testing.T) {
	tests := []struct {
		name     string
		send     func(c *gin.Context)
		status   int
		expected string
	}{
		{"BadRequest", func(c *gin.Context) { BadRequest(c, "unknown action") }, http.StatusBadRequest, "unknown action"},
		{"Unauthorized", func(c *gin.Context) { Unauthorized(c, "invalid token") }, http.StatusUnauthorized, "invalid token"},
		{"NotFound", func(c *gin.Context) { NotFound(c, "fixture not found") }, http.StatusNotFound, "fixture not found"},
		{"ServerError", func(c *gin.Context) { ServerError(c, "permission denied") }, http.StatusInternalServerError, "permission denied"},
		{"InternalError", InternalError, http.StatusInternalServerError, "internal server error"},
		{"Error", func(c *gin.Context) { Error(c, http.StatusTeapot, "teapot") }, http.StatusTeapot, "teapot"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := setupTestContext()

			tt.send(c)

			assert.Equal(t, tt.status, w.Code)
			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.expected, resp.Error)
		})
	}
}

func TestAbortWithError(t *testing.T) {
	router := gin.New()
	reached := false
	router.GET("/test",
		func(c *gin.Context) { AbortWithError(c, http.StatusUnauthorized, "unauthenticated") },
		func(c *gin.Context) { reached = true },
	)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, reached)
	assert.JSONEq(t, `{"error":"unauthenticated"}`, w.Body.String())
}
