//go:build api

package api

import (
	"net/http"
	"testing"

	"nt-data-lab/test/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthCheck(t *testing.T) {
	w := testutil.MakeRequest(t, testServer.Router, http.MethodGet, "/health", nil)

	require.Equal(t, http.StatusOK, w.Code, "health check should return 200")

	var resp map[string]string
	testutil.ParseResponse(t, w, &resp)
	assert.Equal(t, "ok", resp["status"])
}

func TestPreflight(t *testing.T) {
	w := testutil.MakeRequest(t, testServer.Router, http.MethodOptions, "/", nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestFixtures(t *testing.T) {
	testServer.CleanupBetweenTests(t)
	testServer.UploadFixtures(t, fixtureDir, "nationalplayers.xml")

	t.Run("serves stored fixture", func(t *testing.T) {
		w := testutil.MakeRequest(t, testServer.Router, http.MethodGet, "/fixtures/nationalplayers.xml", nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "application/xml")
		assert.Contains(t, w.Body.String(), "<FetchedDate>2025-03-10 08:15:00</FetchedDate>")
	})

	t.Run("missing fixture", func(t *testing.T) {
		w := testutil.MakeRequest(t, testServer.Router, http.MethodGet, "/fixtures/player_1.xml", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("rejects non xml names", func(t *testing.T) {
		w := testutil.MakeRequest(t, testServer.Router, http.MethodGet, "/fixtures/passwd", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
