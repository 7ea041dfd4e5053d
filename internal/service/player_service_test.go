package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	authzmocks "nt-data-lab/internal/authz/mocks"
	apperrors "nt-data-lab/internal/errors"
	"nt-data-lab/internal/hattrick"
	hattrickmocks "nt-data-lab/internal/hattrick/mocks"
	"nt-data-lab/internal/models"
	"nt-data-lab/internal/repository"
	repomocks "nt-data-lab/internal/repository/mocks"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var playerNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

type playerServiceMocks struct {
	players  *repomocks.MockPlayerRepository
	lists    *repomocks.MockListRepository
	resolver *authzmocks.MockResolver
	source   *hattrickmocks.MockSource
}

func newPlayerServiceUnderTest(t *testing.T) (*PlayerService, playerServiceMocks) {
	ctrl := gomock.NewController(t)
	m := playerServiceMocks{
		players:  repomocks.NewMockPlayerRepository(ctrl),
		lists:    repomocks.NewMockListRepository(ctrl),
		resolver: authzmocks.NewMockResolver(ctrl),
		source:   hattrickmocks.NewMockSource(ctrl),
	}
	service := NewPlayerService(m.players, m.lists, m.resolver, m.source, clockwork.NewFakeClockAt(playerNow))
	return service, m
}

const playerRequester = "scout@example.com"

func TestPlayerService_GetPlayer(t *testing.T) {
	t.Run("owner can always read", func(t *testing.T) {
		service, m := newPlayerServiceUnderTest(t)
		m.players.EXPECT().FindByID(gomock.Any(), "7").Return(&models.Player{ID: "7", OwnerEmail: playerRequester}, nil)

		resp, err := service.GetPlayer(context.Background(), playerRequester, "7")

		require.NoError(t, err)
		assert.Equal(t, models.StatusSuccess, resp.Status)
		assert.Equal(t, models.ExternalID("7"), resp.Player.ID)
	})

	t.Run("managed league grants access", func(t *testing.T) {
		service, m := newPlayerServiceUnderTest(t)
		m.players.EXPECT().FindByID(gomock.Any(), "7").Return(&models.Player{ID: "7", NativeLeagueID: "4"}, nil)
		m.resolver.EXPECT().ManagedLeagueIDs(gomock.Any(), playerRequester).Return(models.NewIDSet("4"), nil)

		resp, err := service.GetPlayer(context.Background(), playerRequester, "7")

		require.NoError(t, err)
		assert.NotNil(t, resp.Player)
	})

	t.Run("other leagues are denied", func(t *testing.T) {
		service, m := newPlayerServiceUnderTest(t)
		m.players.EXPECT().FindByID(gomock.Any(), "7").Return(&models.Player{ID: "7", NativeLeagueID: "5"}, nil)
		m.resolver.EXPECT().ManagedLeagueIDs(gomock.Any(), playerRequester).Return(models.NewIDSet("4"), nil)

		_, err := service.GetPlayer(context.Background(), playerRequester, "7")

		assert.ErrorIs(t, err, apperrors.ErrLeagueNotManaged)
	})

	t.Run("missing player is reported as data", func(t *testing.T) {
		service, m := newPlayerServiceUnderTest(t)
		m.players.EXPECT().FindByID(gomock.Any(), "7").Return(nil, apperrors.ErrPlayerNotFound)

		resp, err := service.GetPlayer(context.Background(), playerRequester, "7")

		require.NoError(t, err)
		assert.Equal(t, models.StatusNotFound, resp.Status)
		assert.Nil(t, resp.Player)
	})
}

func TestPlayerService_SavePlayer(t *testing.T) {
	t.Run("saves with owner and clock time", func(t *testing.T) {
		service, m := newPlayerServiceUnderTest(t)
		m.players.EXPECT().FindByID(gomock.Any(), "412345678").Return(nil, apperrors.ErrPlayerNotFound)
		m.resolver.EXPECT().ManagedLeagueIDs(gomock.Any(), playerRequester).Return(models.NewIDSet("4"), nil)
		m.players.EXPECT().
			Upsert(gomock.Any(), gomock.Any(), playerRequester, playerNow).
			DoAndReturn(func(ctx context.Context, p *models.Player, owner string, at time.Time) error {
				assert.Equal(t, models.ExternalID("412345678"), p.ID)
				assert.Equal(t, "Rossi", p.Attributes["LastName"])
				return nil
			})

		resp, err := service.SavePlayer(context.Background(), playerRequester, map[string]interface{}{
			"PlayerID":       float64(412345678),
			"NativeLeagueID": 4,
			"LastName":       "Rossi",
		})

		require.NoError(t, err)
		assert.Equal(t, &models.StatusResponse{Status: models.StatusSaved, ID: "412345678"}, resp)
	})

	t.Run("new player may be saved without a league", func(t *testing.T) {
		service, m := newPlayerServiceUnderTest(t)
		m.players.EXPECT().FindByID(gomock.Any(), "9").Return(nil, apperrors.ErrPlayerNotFound)
		m.resolver.EXPECT().ManagedLeagueIDs(gomock.Any(), playerRequester).Return(models.NewIDSet(), nil)
		m.players.EXPECT().Upsert(gomock.Any(), gomock.Any(), playerRequester, playerNow).Return(nil)

		_, err := service.SavePlayer(context.Background(), playerRequester, map[string]interface{}{"id": "9"})

		require.NoError(t, err)
	})

	t.Run("owner may update their player without a league", func(t *testing.T) {
		service, m := newPlayerServiceUnderTest(t)
		m.players.EXPECT().FindByID(gomock.Any(), "9").Return(&models.Player{ID: "9", OwnerEmail: playerRequester, NativeLeagueID: "5"}, nil)
		m.resolver.EXPECT().ManagedLeagueIDs(gomock.Any(), playerRequester).Return(models.NewIDSet("4"), nil)
		m.players.EXPECT().Upsert(gomock.Any(), gomock.Any(), playerRequester, playerNow).Return(nil)

		_, err := service.SavePlayer(context.Background(), playerRequester, map[string]interface{}{"id": "9", "FirstName": "Marco"})

		require.NoError(t, err)
	})

	tests := []struct {
		name    string
		stored  *models.Player
		managed models.IDSet
		data    map[string]interface{}
	}{
		{
			name:    "unmanaged league in the payload",
			managed: models.NewIDSet("4"),
			data:    map[string]interface{}{"PlayerID": "500", "NativeLeagueID": "5"},
		},
		{
			name:    "other owner's player from another league without a league in the payload",
			stored:  &models.Player{ID: "500", OwnerEmail: "coach@france.example", NativeLeagueID: "5"},
			managed: models.NewIDSet("4"),
			data:    map[string]interface{}{"PlayerID": "500", "FirstName": "Hijacked"},
		},
		{
			name:    "other owner's player moved into a managed league",
			stored:  &models.Player{ID: "500", OwnerEmail: "coach@france.example", NativeLeagueID: "5"},
			managed: models.NewIDSet("4"),
			data:    map[string]interface{}{"PlayerID": "500", "NativeLeagueID": "4"},
		},
		{
			name:    "other owner's player without a stored league",
			stored:  &models.Player{ID: "500", OwnerEmail: "coach@france.example"},
			managed: models.NewIDSet("4"),
			data:    map[string]interface{}{"PlayerID": "500", "FirstName": "Hijacked"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := newPlayerServiceUnderTest(t)
			if tt.stored != nil {
				m.players.EXPECT().FindByID(gomock.Any(), "500").Return(tt.stored, nil)
			} else {
				m.players.EXPECT().FindByID(gomock.Any(), "500").Return(nil, apperrors.ErrPlayerNotFound)
			}
			m.resolver.EXPECT().ManagedLeagueIDs(gomock.Any(), playerRequester).Return(tt.managed, nil)

			_, err := service.SavePlayer(context.Background(), playerRequester, tt.data)

			assert.ErrorIs(t, err, apperrors.ErrLeagueNotManaged)
		})
	}

	t.Run("staff of the stored league may update it", func(t *testing.T) {
		service, m := newPlayerServiceUnderTest(t)
		m.players.EXPECT().FindByID(gomock.Any(), "500").Return(&models.Player{ID: "500", OwnerEmail: "coach@example.com", NativeLeagueID: "4"}, nil)
		m.resolver.EXPECT().ManagedLeagueIDs(gomock.Any(), playerRequester).Return(models.NewIDSet("4"), nil)
		m.players.EXPECT().Upsert(gomock.Any(), gomock.Any(), playerRequester, playerNow).Return(nil)

		_, err := service.SavePlayer(context.Background(), playerRequester, map[string]interface{}{"PlayerID": "500", "FirstName": "Marco"})

		require.NoError(t, err)
	})

	t.Run("lookup failure is returned", func(t *testing.T) {
		service, m := newPlayerServiceUnderTest(t)
		m.players.EXPECT().FindByID(gomock.Any(), "500").Return(nil, errors.New("database error"))

		_, err := service.SavePlayer(context.Background(), playerRequester, map[string]interface{}{"PlayerID": "500"})

		assert.Error(t, err)
	})

	t.Run("validates payload", func(t *testing.T) {
		service, _ := newPlayerServiceUnderTest(t)

		_, err := service.SavePlayer(context.Background(), playerRequester, nil)
		assert.ErrorIs(t, err, apperrors.ErrMissingPayload)

		_, err = service.SavePlayer(context.Background(), playerRequester, map[string]interface{}{"LastName": "Rossi"})
		assert.ErrorIs(t, err, apperrors.ErrPlayerIDRequired)
	})
}

func TestPlayerService_GetListPlayersDetailed(t *testing.T) {
	t.Run("visible list", func(t *testing.T) {
		service, m := newPlayerServiceUnderTest(t)
		m.lists.EXPECT().FindByID(gomock.Any(), "l1").Return(&models.List{ID: "l1", TeamID: "NT_Italia"}, nil)
		m.resolver.EXPECT().VisibleTeamIDs(gomock.Any(), playerRequester).Return(models.NewIDSet("NT_Italia"), nil)
		m.players.EXPECT().FindByListID(gomock.Any(), "l1").Return([]models.Player{{ID: "7"}}, nil)

		resp, err := service.GetListPlayersDetailed(context.Background(), playerRequester, "l1")

		require.NoError(t, err)
		assert.Len(t, resp.Players, 1)
	})

	t.Run("invisible list is denied", func(t *testing.T) {
		service, m := newPlayerServiceUnderTest(t)
		m.lists.EXPECT().FindByID(gomock.Any(), "l1").Return(&models.List{ID: "l1", TeamID: "NT_France"}, nil)
		m.resolver.EXPECT().VisibleTeamIDs(gomock.Any(), playerRequester).Return(models.NewIDSet("NT_Italia"), nil)

		_, err := service.GetListPlayersDetailed(context.Background(), playerRequester, "l1")

		assert.ErrorIs(t, err, apperrors.ErrListNotVisible)
	})

	t.Run("unknown list is empty", func(t *testing.T) {
		service, m := newPlayerServiceUnderTest(t)
		m.lists.EXPECT().FindByID(gomock.Any(), "l1").Return(nil, apperrors.ErrListNotFound)

		resp, err := service.GetListPlayersDetailed(context.Background(), playerRequester, "l1")

		require.NoError(t, err)
		assert.Empty(t, resp.Players)
	})
}

func TestPlayerService_SearchPlayers(t *testing.T) {
	t.Run("scopes the search to managed leagues", func(t *testing.T) {
		service, m := newPlayerServiceUnderTest(t)
		m.resolver.EXPECT().ManagedLeagueIDs(gomock.Any(), playerRequester).Return(models.NewIDSet("4", "12"), nil)
		m.players.EXPECT().
			Search(gomock.Any(), repository.PlayerSearch{
				LeagueIDs:     []string{"12", "4"},
				Query:         "rossi",
				ExcludeListID: "l1",
				Limit:         searchLimit,
			}).
			Return([]models.Player{{ID: "7"}}, nil)

		resp, err := service.SearchPlayers(context.Background(), playerRequester, " rossi ", "l1")

		require.NoError(t, err)
		assert.Len(t, resp.Players, 1)
	})

	t.Run("no managed league returns nothing without querying", func(t *testing.T) {
		service, m := newPlayerServiceUnderTest(t)
		m.resolver.EXPECT().ManagedLeagueIDs(gomock.Any(), playerRequester).Return(models.NewIDSet(), nil)

		resp, err := service.SearchPlayers(context.Background(), playerRequester, "rossi", "")

		require.NoError(t, err)
		assert.NotNil(t, resp.Players)
		assert.Empty(t, resp.Players)
	})
}

func TestPlayerService_GetMyPlayers(t *testing.T) {
	service, m := newPlayerServiceUnderTest(t)
	m.players.EXPECT().FindByOwner(gomock.Any(), playerRequester).Return(nil, nil)

	resp, err := service.GetMyPlayers(context.Background(), playerRequester)

	require.NoError(t, err)
	assert.NotNil(t, resp.Players)
}

func TestPlayerService_ImportPlayers(t *testing.T) {
	t.Run("skips rows without id", func(t *testing.T) {
		service, m := newPlayerServiceUnderTest(t)
		m.resolver.EXPECT().ManagedLeagueIDs(gomock.Any(), playerRequester).Return(models.NewIDSet("4"), nil)
		m.players.EXPECT().FindByIDs(gomock.Any(), []string{"1", "3"}).Return(nil, nil)
		m.players.EXPECT().
			BulkUpsert(gomock.Any(), gomock.Len(2), playerRequester, playerNow).
			Return(int64(2), nil)

		result, err := service.ImportPlayers(context.Background(), playerRequester, []map[string]interface{}{
			{"PlayerID": "1", "NativeLeagueID": "4", "LastName": "Rossi"},
			{"LastName": "Bianchi", "NativeLeagueID": "4"},
			{"id": 3, "NativeLeagueID": 4},
		})

		require.NoError(t, err)
		assert.Equal(t, models.StatusSuccess, result.Status)
		assert.Equal(t, 2, result.Count)
		assert.Equal(t, 1, result.Skipped)
	})

	t.Run("rows outside the managed leagues never reach the store", func(t *testing.T) {
		service, m := newPlayerServiceUnderTest(t)
		m.resolver.EXPECT().ManagedLeagueIDs(gomock.Any(), playerRequester).Return(models.NewIDSet("4"), nil)
		m.players.EXPECT().
			FindByIDs(gomock.Any(), []string{"1", "500", "501", "502", "503"}).
			Return([]models.Player{
				{ID: "502", OwnerEmail: "coach@france.example", NativeLeagueID: "5"},
				{ID: "503", OwnerEmail: playerRequester, NativeLeagueID: "5"},
			}, nil)
		m.players.EXPECT().
			BulkUpsert(gomock.Any(), gomock.Any(), playerRequester, playerNow).
			DoAndReturn(func(ctx context.Context, players []*models.Player, owner string, at time.Time) (int64, error) {
				ids := make([]string, 0, len(players))
				for _, p := range players {
					ids = append(ids, p.ID.String())
				}
				assert.Equal(t, []string{"1", "503"}, ids)
				return int64(len(players)), nil
			})

		result, err := service.ImportPlayers(context.Background(), playerRequester, []map[string]interface{}{
			{"PlayerID": "1", "NativeLeagueID": "4"},
			{"PlayerID": "500", "NativeLeagueID": "99"},
			{"PlayerID": "501"},
			{"PlayerID": "502", "NativeLeagueID": "4"},
			{"PlayerID": "503", "NativeLeagueID": "4"},
		})

		require.NoError(t, err)
		assert.Equal(t, 2, result.Count)
		assert.Equal(t, 3, result.Skipped)
		assert.Equal(t, []string{
			"player 500: " + apperrors.ErrLeagueNotManaged.Error(),
			"player 501: no native league",
			"player 502: " + apperrors.ErrLeagueNotManaged.Error(),
		}, result.Warnings)
	})

	t.Run("no managed league skips every row", func(t *testing.T) {
		service, m := newPlayerServiceUnderTest(t)
		m.resolver.EXPECT().ManagedLeagueIDs(gomock.Any(), playerRequester).Return(models.NewIDSet(), nil)
		m.players.EXPECT().FindByIDs(gomock.Any(), []string{"500"}).Return(nil, nil)

		result, err := service.ImportPlayers(context.Background(), playerRequester, []map[string]interface{}{
			{"PlayerID": "500", "NativeLeagueID": "99"},
		})

		require.NoError(t, err)
		assert.Zero(t, result.Count)
		assert.Equal(t, 1, result.Skipped)
	})

	t.Run("resolver failure aborts the import", func(t *testing.T) {
		service, m := newPlayerServiceUnderTest(t)
		m.resolver.EXPECT().ManagedLeagueIDs(gomock.Any(), playerRequester).Return(nil, errors.New("database error"))

		_, err := service.ImportPlayers(context.Background(), playerRequester, []map[string]interface{}{
			{"PlayerID": "1", "NativeLeagueID": "4"},
		})

		assert.Error(t, err)
	})

	t.Run("writes in chunks and skips failing ones", func(t *testing.T) {
		service, m := newPlayerServiceUnderTest(t)

		rows := make([]map[string]interface{}, 0, 1201)
		for i := 0; i < 1201; i++ {
			rows = append(rows, map[string]interface{}{"PlayerID": fmt.Sprint(i + 1), "NativeLeagueID": "4"})
		}

		m.resolver.EXPECT().ManagedLeagueIDs(gomock.Any(), playerRequester).Return(models.NewIDSet("4"), nil)
		m.players.EXPECT().FindByIDs(gomock.Any(), gomock.Len(1201)).Return(nil, nil)
		gomock.InOrder(
			m.players.EXPECT().BulkUpsert(gomock.Any(), gomock.Len(500), playerRequester, playerNow).Return(int64(500), nil),
			m.players.EXPECT().BulkUpsert(gomock.Any(), gomock.Len(500), playerRequester, playerNow).Return(int64(0), errors.New("write conflict")),
			m.players.EXPECT().BulkUpsert(gomock.Any(), gomock.Len(201), playerRequester, playerNow).Return(int64(201), nil),
		)

		result, err := service.ImportPlayers(context.Background(), playerRequester, rows)

		require.NoError(t, err)
		assert.Equal(t, 701, result.Count)
		assert.Equal(t, 500, result.Skipped)
		assert.Equal(t, []string{"rows 500-999 not imported"}, result.Warnings)
	})

	t.Run("empty import writes nothing", func(t *testing.T) {
		service, _ := newPlayerServiceUnderTest(t)

		result, err := service.ImportPlayers(context.Background(), playerRequester, nil)

		require.NoError(t, err)
		assert.Zero(t, result.Count)
	})
}

func TestPlayerService_SyncPlayers(t *testing.T) {
	fetched := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	older := fetched.Add(-24 * time.Hour)
	newer := fetched.Add(time.Hour)

	detail := func(id, league string) *hattrick.PlayerDetail {
		return &hattrick.PlayerDetail{
			FetchedAt: fetched,
			Record:    map[string]interface{}{"PlayerID": id, "NativeLeagueID": league, "LastName": "P" + id},
		}
	}

	t.Run("stores newer players of managed leagues", func(t *testing.T) {
		service, m := newPlayerServiceUnderTest(t)
		m.resolver.EXPECT().ManagedLeagueIDs(gomock.Any(), playerRequester).Return(models.NewIDSet("4"), nil)
		m.source.EXPECT().NationalPlayers(gomock.Any()).Return(&hattrick.PlayerList{
			FetchedAt: fetched,
			PlayerIDs: []string{"1", "2", "3", "4", "5"},
		}, nil)

		// 1: new player, stored
		m.source.EXPECT().PlayerDetail(gomock.Any(), "1").Return(detail("1", "4"), nil)
		m.players.EXPECT().FindByID(gomock.Any(), "1").Return(nil, apperrors.ErrPlayerNotFound)
		m.players.EXPECT().Upsert(gomock.Any(), gomock.Any(), playerRequester, fetched).Return(nil)

		// 2: local copy is older, stored
		m.source.EXPECT().PlayerDetail(gomock.Any(), "2").Return(detail("2", "4"), nil)
		m.players.EXPECT().FindByID(gomock.Any(), "2").Return(&models.Player{ID: "2", UpdatedAt: &older}, nil)
		m.players.EXPECT().Upsert(gomock.Any(), gomock.Any(), playerRequester, fetched).Return(nil)

		// 3: local copy is newer, skipped
		m.source.EXPECT().PlayerDetail(gomock.Any(), "3").Return(detail("3", "4"), nil)
		m.players.EXPECT().FindByID(gomock.Any(), "3").Return(&models.Player{ID: "3", UpdatedAt: &newer}, nil)

		// 4: unmanaged league, skipped
		m.source.EXPECT().PlayerDetail(gomock.Any(), "4").Return(detail("4", "99"), nil)

		// 5: fetch failure, warning
		m.source.EXPECT().PlayerDetail(gomock.Any(), "5").Return(nil, apperrors.ErrExternalFetch)

		result, err := service.SyncPlayers(context.Background(), playerRequester)

		require.NoError(t, err)
		assert.Equal(t, 2, result.Count)
		assert.Equal(t, 2, result.Skipped)
		require.Len(t, result.Warnings, 1)
		assert.Contains(t, result.Warnings[0], "player 5")
	})

	t.Run("equal timestamps are not overwritten", func(t *testing.T) {
		service, m := newPlayerServiceUnderTest(t)
		m.resolver.EXPECT().ManagedLeagueIDs(gomock.Any(), playerRequester).Return(models.NewIDSet("4"), nil)
		m.source.EXPECT().NationalPlayers(gomock.Any()).Return(&hattrick.PlayerList{PlayerIDs: []string{"1"}}, nil)
		m.source.EXPECT().PlayerDetail(gomock.Any(), "1").Return(detail("1", "4"), nil)
		same := fetched
		m.players.EXPECT().FindByID(gomock.Any(), "1").Return(&models.Player{ID: "1", UpdatedAt: &same}, nil)

		result, err := service.SyncPlayers(context.Background(), playerRequester)

		require.NoError(t, err)
		assert.Zero(t, result.Count)
		assert.Equal(t, 1, result.Skipped)
	})

	t.Run("list fetch failure fails the sync", func(t *testing.T) {
		service, m := newPlayerServiceUnderTest(t)
		m.resolver.EXPECT().ManagedLeagueIDs(gomock.Any(), playerRequester).Return(models.NewIDSet("4"), nil)
		m.source.EXPECT().NationalPlayers(gomock.Any()).Return(nil, fmt.Errorf("%w: status 503", apperrors.ErrExternalFetch))

		_, err := service.SyncPlayers(context.Background(), playerRequester)

		assert.True(t, apperrors.IsExternal(err))
	})

	t.Run("no managed league does not call the source", func(t *testing.T) {
		service, m := newPlayerServiceUnderTest(t)
		m.resolver.EXPECT().ManagedLeagueIDs(gomock.Any(), playerRequester).Return(models.NewIDSet(), nil)

		result, err := service.SyncPlayers(context.Background(), playerRequester)

		require.NoError(t, err)
		assert.Zero(t, result.Count)
	})
}
