package handler

import (
	"context"
	"net/http"
	"testing"

	apperrors "nt-data-lab/internal/errors"
	"nt-data-lab/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func playersBody(method string, extra gin.H) gin.H {
	body := gin.H{"action": "manage_players", "method": method, "requesterEmail": "coach@example.com"}
	for k, v := range extra {
		body[k] = v
	}
	return body
}

func TestPlayerHandler_GetPlayer(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{"found", nil, http.StatusOK},
		{"unmanaged league", apperrors.ErrLeagueNotManaged, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newServiceMocks()
			m.players.GetPlayerFunc = func(ctx context.Context, requester, playerID string) (*models.PlayerResponse, error) {
				assert.Equal(t, "412345678", playerID)
				if tt.err != nil {
					return nil, tt.err
				}
				return &models.PlayerResponse{Status: models.StatusSuccess, Player: &models.Player{ID: models.ExternalID(playerID)}}, nil
			}

			w := postJSON(t, newTestRouter(m, ""), playersBody("get_player", gin.H{"playerId": 412345678}))

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.err != nil {
				assert.Equal(t, tt.err.Error(), errorMessage(t, w))
			}
		})
	}
}

func TestPlayerHandler_SavePlayer(t *testing.T) {
	m := newServiceMocks()
	var got map[string]interface{}
	m.players.SavePlayerFunc = func(ctx context.Context, requester string, data map[string]interface{}) (*models.StatusResponse, error) {
		got = data
		return &models.StatusResponse{Status: models.StatusSaved, ID: "7"}, nil
	}

	w := postJSON(t, newTestRouter(m, ""), playersBody("save_player", gin.H{
		"playerData": gin.H{"PlayerID": 7, "NativeLeagueID": "4", "PlayerName": "Mario Rossi"},
	}))

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, got)
	assert.Equal(t, "Mario Rossi", got["PlayerName"])
}

func TestPlayerHandler_SearchPlayers(t *testing.T) {
	m := newServiceMocks()
	m.players.SearchPlayersFunc = func(ctx context.Context, requester, query, excludeListID string) (*models.PlayersResponse, error) {
		assert.Equal(t, "coach@example.com", requester)
		assert.Equal(t, "Rossi", query)
		assert.Equal(t, "l1", excludeListID)
		return &models.PlayersResponse{Players: []models.Player{}}, nil
	}

	w := postJSON(t, newTestRouter(m, ""), playersBody("search_players", gin.H{"query": "Rossi", "listId": "l1"}))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"players":[]}`, w.Body.String())
}

func TestPlayerHandler_Batches(t *testing.T) {
	m := newServiceMocks()
	m.players.ImportPlayersFunc = func(ctx context.Context, requester string, rows []map[string]interface{}) (*models.BatchResult, error) {
		assert.Len(t, rows, 2)
		return &models.BatchResult{Status: models.StatusSuccess, Count: 1, Skipped: 1}, nil
	}
	m.players.SyncPlayersFunc = func(ctx context.Context, requester string) (*models.BatchResult, error) {
		return nil, apperrors.ErrExternalFetch
	}
	router := newTestRouter(m, "")

	w := postJSON(t, router, playersBody("import_players", gin.H{"players": []gin.H{{"PlayerID": 1}, {"PlayerName": "no id"}}}))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"success","count":1,"skipped":1}`, w.Body.String())

	w = postJSON(t, router, playersBody("sync_players", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, apperrors.ErrExternalFetch.Error(), errorMessage(t, w))
}

func TestPlayerHandler_ListViews(t *testing.T) {
	m := newServiceMocks()
	m.players.GetMyPlayersFunc = func(ctx context.Context, requester string) (*models.PlayersResponse, error) {
		return &models.PlayersResponse{Players: []models.Player{}}, nil
	}
	m.players.GetListPlayersDetailedFunc = func(ctx context.Context, requester, listID string) (*models.PlayersResponse, error) {
		return nil, apperrors.ErrListNotVisible
	}
	router := newTestRouter(m, "")

	w := postJSON(t, router, playersBody("get_my_players", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = postJSON(t, router, playersBody("get_list_players_detailed", gin.H{"listId": "l1"}))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, apperrors.ErrListNotVisible.Error(), errorMessage(t, w))
}
