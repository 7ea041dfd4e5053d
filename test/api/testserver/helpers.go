//go:build api

package testserver

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"nt-data-lab/internal/models"
	"nt-data-lab/test/fixtures"
	"nt-data-lab/test/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// Token mints an identity token for email.
func (ts *TestServer) Token(t *testing.T, email string) string {
	t.Helper()
	token, err := ts.Tokens.GenerateToken(email)
	require.NoError(t, err)
	return token
}

// Act posts an action as email, authenticated with a matching token.
// It fails the test unless the response is 200 and decodes it into out.
func (ts *TestServer) Act(t *testing.T, email string, body gin.H, out interface{}) {
	t.Helper()

	w := testutil.PostAction(t, ts.Router, ts.Token(t, email), body)
	require.Equal(t, http.StatusOK, w.Code, "action %v %v: %s", body["action"], body["method"], w.Body.String())
	if out != nil {
		testutil.ParseResponse(t, w, out)
	}
}

// CreateTeam creates a team through the API as coach.
func (ts *TestServer) CreateTeam(t *testing.T, coach, teamType, name, leagueID string) *models.Team {
	t.Helper()

	var result models.CreateTeamResult
	ts.Act(t, coach, gin.H{
		"action":         "manage_roles",
		"method":         "create_team",
		"requesterEmail": coach,
		"teamName":       name,
		"teamType":       teamType,
		"nativeLeagueId": leagueID,
	}, &result)
	require.NotNil(t, result.Team)
	return result.Team
}

// AssignRole gives email a staff role in teamID through the API.
func (ts *TestServer) AssignRole(t *testing.T, coach, email, role, teamID string) {
	t.Helper()

	ts.Act(t, coach, gin.H{
		"action":         "manage_roles",
		"method":         "set_role",
		"requesterEmail": coach,
		"targetEmail":    email,
		"newRole":        role,
		"teamId":         teamID,
	}, nil)
}

// CreateList creates a list in teamID as email.
func (ts *TestServer) CreateList(t *testing.T, email, name, teamID string) *models.List {
	t.Helper()

	var list models.List
	ts.Act(t, email, gin.H{
		"action": "manage_lists",
		"method": "create_list",
		"email":  email,
		"name":   name,
		"teamId": teamID,
	}, &list)
	return &list
}

// SeedPlayers stores players directly, owned by owner.
func (ts *TestServer) SeedPlayers(t *testing.T, owner string, players ...*fixtures.PlayerBuilder) {
	t.Helper()

	batch := make([]*models.Player, 0, len(players))
	for _, p := range players {
		batch = append(batch, p.Build())
	}
	_, err := ts.PlayerRepo.BulkUpsert(context.Background(), batch, owner, time.Now().UTC())
	require.NoError(t, err, "failed to seed players")
}

// UploadFixtures copies the repository's XML fixtures into the bucket.
func (ts *TestServer) UploadFixtures(t *testing.T, dir string, names ...string) {
	t.Helper()
	ctx := context.Background()

	for _, name := range names {
		body, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		require.NoError(t, ts.MinIO.Store.Put(ctx, name, body))
	}
}
