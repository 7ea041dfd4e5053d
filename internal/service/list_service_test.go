package service

import (
	"context"
	"errors"
	"testing"

	authzmocks "nt-data-lab/internal/authz/mocks"
	apperrors "nt-data-lab/internal/errors"
	"nt-data-lab/internal/models"
	repomocks "nt-data-lab/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type listServiceMocks struct {
	lists    *repomocks.MockListRepository
	players  *repomocks.MockPlayerRepository
	resolver *authzmocks.MockResolver
}

func newListServiceUnderTest(t *testing.T) (*ListService, listServiceMocks) {
	ctrl := gomock.NewController(t)
	m := listServiceMocks{
		lists:    repomocks.NewMockListRepository(ctrl),
		players:  repomocks.NewMockPlayerRepository(ctrl),
		resolver: authzmocks.NewMockResolver(ctrl),
	}
	return NewListService(m.lists, m.players, m.resolver), m
}

const (
	listCoach = "coach@example.com"
	listScout = "scout@example.com"
)

func TestListService_GetLists(t *testing.T) {
	t.Run("empty visibility short-circuits", func(t *testing.T) {
		service, m := newListServiceUnderTest(t)
		m.resolver.EXPECT().VisibleTeamIDs(gomock.Any(), "nobody@example.com").Return(models.NewIDSet(), nil)

		resp, err := service.GetLists(context.Background(), "nobody@example.com")

		require.NoError(t, err)
		assert.NotNil(t, resp.Lists)
		assert.Empty(t, resp.Lists)
	})

	t.Run("queries visible teams", func(t *testing.T) {
		service, m := newListServiceUnderTest(t)
		m.resolver.EXPECT().VisibleTeamIDs(gomock.Any(), listScout).Return(models.NewIDSet("U21_Italia", "NT_Italia"), nil)
		m.lists.EXPECT().FindByTeamIDs(gomock.Any(), []string{"NT_Italia", "U21_Italia"}).Return([]models.List{{ID: "l1", TeamID: "NT_Italia"}}, nil)

		resp, err := service.GetLists(context.Background(), listScout)

		require.NoError(t, err)
		assert.Len(t, resp.Lists, 1)
	})
}

func TestListService_CreateList(t *testing.T) {
	t.Run("creates in an explicit visible team", func(t *testing.T) {
		service, m := newListServiceUnderTest(t)
		m.resolver.EXPECT().VisibleTeamIDs(gomock.Any(), listScout).Return(models.NewIDSet("NT_Italia", "U21_Italia"), nil)
		m.lists.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, list *models.List) error {
				assert.Equal(t, "Prospects", list.Name)
				assert.Equal(t, listScout, list.Owner)
				assert.Equal(t, "U21_Italia", list.TeamID)
				list.ID = "l1"
				return nil
			})

		list, err := service.CreateList(context.Background(), listScout, " Prospects ", "U21_Italia")

		require.NoError(t, err)
		assert.Equal(t, "l1", list.ID)
	})

	t.Run("defaults to the only visible team", func(t *testing.T) {
		service, m := newListServiceUnderTest(t)
		m.resolver.EXPECT().VisibleTeamIDs(gomock.Any(), listScout).Return(models.NewIDSet("NT_Italia"), nil)
		m.lists.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		list, err := service.CreateList(context.Background(), listScout, "Prospects", "")

		require.NoError(t, err)
		assert.Equal(t, "NT_Italia", list.TeamID)
	})

	tests := []struct {
		name    string
		visible models.IDSet
		teamID  string
		wantErr error
	}{
		{"several visible teams need a team", models.NewIDSet("NT_Italia", "U21_Italia"), "", apperrors.ErrAmbiguousListTarget},
		{"no visible team", models.NewIDSet(), "", apperrors.ErrTeamNotVisible},
		{"invisible team", models.NewIDSet("NT_Italia"), "NT_France", apperrors.ErrTeamNotVisible},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := newListServiceUnderTest(t)
			m.resolver.EXPECT().VisibleTeamIDs(gomock.Any(), listScout).Return(tt.visible, nil)

			list, err := service.CreateList(context.Background(), listScout, "Prospects", tt.teamID)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, list)
		})
	}

	t.Run("requires a name", func(t *testing.T) {
		service, _ := newListServiceUnderTest(t)

		_, err := service.CreateList(context.Background(), listScout, "   ", "NT_Italia")

		assert.ErrorIs(t, err, apperrors.ErrNameRequired)
	})
}

func TestListService_DeleteList(t *testing.T) {
	list := &models.List{ID: "l1", TeamID: "NT_Italia"}

	t.Run("deletes and detaches players", func(t *testing.T) {
		service, m := newListServiceUnderTest(t)
		m.lists.EXPECT().FindByID(gomock.Any(), "l1").Return(list, nil)
		m.resolver.EXPECT().VisibleTeamIDs(gomock.Any(), listCoach).Return(models.NewIDSet("NT_Italia"), nil)
		m.lists.EXPECT().Delete(gomock.Any(), "l1").Return(nil)
		m.players.EXPECT().RemoveListFromAll(gomock.Any(), "l1").Return(int64(3), nil)

		resp, err := service.DeleteList(context.Background(), listCoach, "l1")

		require.NoError(t, err)
		assert.Equal(t, models.StatusDeleted, resp.Status)
	})

	t.Run("fan-out failure does not fail the delete", func(t *testing.T) {
		service, m := newListServiceUnderTest(t)
		m.lists.EXPECT().FindByID(gomock.Any(), "l1").Return(list, nil)
		m.resolver.EXPECT().VisibleTeamIDs(gomock.Any(), listCoach).Return(models.NewIDSet("NT_Italia"), nil)
		m.lists.EXPECT().Delete(gomock.Any(), "l1").Return(nil)
		m.players.EXPECT().RemoveListFromAll(gomock.Any(), "l1").Return(int64(0), errors.New("timeout"))

		resp, err := service.DeleteList(context.Background(), listCoach, "l1")

		require.NoError(t, err)
		assert.Equal(t, models.StatusDeleted, resp.Status)
	})

	t.Run("missing list is reported as data", func(t *testing.T) {
		service, m := newListServiceUnderTest(t)
		m.lists.EXPECT().FindByID(gomock.Any(), "l1").Return(nil, apperrors.ErrListNotFound)

		resp, err := service.DeleteList(context.Background(), listCoach, "l1")

		require.NoError(t, err)
		assert.Equal(t, models.StatusNotFound, resp.Status)
	})

	t.Run("invisible list is denied", func(t *testing.T) {
		service, m := newListServiceUnderTest(t)
		m.lists.EXPECT().FindByID(gomock.Any(), "l1").Return(list, nil)
		m.resolver.EXPECT().VisibleTeamIDs(gomock.Any(), "other@example.com").Return(models.NewIDSet("NT_France"), nil)

		_, err := service.DeleteList(context.Background(), "other@example.com", "l1")

		assert.ErrorIs(t, err, apperrors.ErrListNotVisible)
	})
}

func TestListService_AddPlayer(t *testing.T) {
	list := &models.List{ID: "l1", TeamID: "NT_Italia"}

	t.Run("adds a player from a managed league", func(t *testing.T) {
		service, m := newListServiceUnderTest(t)
		m.lists.EXPECT().FindByID(gomock.Any(), "l1").Return(list, nil)
		m.resolver.EXPECT().VisibleTeamIDs(gomock.Any(), listScout).Return(models.NewIDSet("NT_Italia"), nil)
		m.players.EXPECT().FindByID(gomock.Any(), "412345678").Return(&models.Player{ID: "412345678", NativeLeagueID: "4"}, nil)
		m.resolver.EXPECT().ManagedLeagueIDs(gomock.Any(), listScout).Return(models.NewIDSet("4"), nil)
		m.players.EXPECT().AddToList(gomock.Any(), "412345678", "l1").Return(nil)

		resp, err := service.AddPlayer(context.Background(), listScout, "l1", " 412345678 ")

		require.NoError(t, err)
		assert.Equal(t, &models.StatusResponse{Status: models.StatusAdded, ID: "412345678"}, resp)
	})

	t.Run("player from an unmanaged league is denied", func(t *testing.T) {
		service, m := newListServiceUnderTest(t)
		m.lists.EXPECT().FindByID(gomock.Any(), "l1").Return(list, nil)
		m.resolver.EXPECT().VisibleTeamIDs(gomock.Any(), listScout).Return(models.NewIDSet("NT_Italia"), nil)
		m.players.EXPECT().FindByID(gomock.Any(), "7").Return(&models.Player{ID: "7", NativeLeagueID: "5"}, nil)
		m.resolver.EXPECT().ManagedLeagueIDs(gomock.Any(), listScout).Return(models.NewIDSet("4"), nil)

		_, err := service.AddPlayer(context.Background(), listScout, "l1", "7")

		assert.ErrorIs(t, err, apperrors.ErrLeagueNotManaged)
	})

	t.Run("invisible list is denied before the player is read", func(t *testing.T) {
		service, m := newListServiceUnderTest(t)
		m.lists.EXPECT().FindByID(gomock.Any(), "l1").Return(list, nil)
		m.resolver.EXPECT().VisibleTeamIDs(gomock.Any(), listScout).Return(models.NewIDSet(), nil)

		_, err := service.AddPlayer(context.Background(), listScout, "l1", "7")

		assert.ErrorIs(t, err, apperrors.ErrListNotVisible)
	})

	t.Run("unknown player is reported as data", func(t *testing.T) {
		service, m := newListServiceUnderTest(t)
		m.lists.EXPECT().FindByID(gomock.Any(), "l1").Return(list, nil)
		m.resolver.EXPECT().VisibleTeamIDs(gomock.Any(), listScout).Return(models.NewIDSet("NT_Italia"), nil)
		m.players.EXPECT().FindByID(gomock.Any(), "7").Return(nil, apperrors.ErrPlayerNotFound)

		resp, err := service.AddPlayer(context.Background(), listScout, "l1", "7")

		require.NoError(t, err)
		assert.Equal(t, models.StatusNotFound, resp.Status)
	})

	t.Run("requires ids", func(t *testing.T) {
		service, _ := newListServiceUnderTest(t)

		_, err := service.AddPlayer(context.Background(), listScout, "", "7")
		assert.ErrorIs(t, err, apperrors.ErrListIDRequired)

		_, err = service.AddPlayer(context.Background(), listScout, "l1", "")
		assert.ErrorIs(t, err, apperrors.ErrPlayerIDRequired)
	})
}

func TestListService_RemovePlayer(t *testing.T) {
	t.Run("removal is idempotent and ungated", func(t *testing.T) {
		service, m := newListServiceUnderTest(t)
		m.players.EXPECT().RemoveFromList(gomock.Any(), "7", "l1").Return(nil).Times(2)

		for i := 0; i < 2; i++ {
			resp, err := service.RemovePlayer(context.Background(), "l1", "7")
			require.NoError(t, err)
			assert.Equal(t, models.StatusRemoved, resp.Status)
		}
	})
}

func TestListService_GetListPlayers(t *testing.T) {
	t.Run("returns list members", func(t *testing.T) {
		service, m := newListServiceUnderTest(t)
		m.players.EXPECT().FindByListID(gomock.Any(), "l1").Return([]models.Player{{ID: "7", ListIDs: []string{"l1"}}}, nil)

		resp, err := service.GetListPlayers(context.Background(), "l1")

		require.NoError(t, err)
		assert.Len(t, resp.Players, 1)
	})

	t.Run("requires list id", func(t *testing.T) {
		service, _ := newListServiceUnderTest(t)

		_, err := service.GetListPlayers(context.Background(), "")

		assert.ErrorIs(t, err, apperrors.ErrListIDRequired)
	})
}
