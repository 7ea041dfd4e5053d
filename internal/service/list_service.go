package service

import (
	"context"
	"errors"
	"strings"

	"nt-data-lab/internal/authz"
	apperrors "nt-data-lab/internal/errors"
	"nt-data-lab/internal/models"
	"nt-data-lab/internal/repository"

	"github.com/rs/zerolog/log"
)

// ListService gates every list and list membership operation on the caller's
// visible teams and managed leagues.
type ListService struct {
	lists    repository.ListRepository
	players  repository.PlayerRepository
	resolver authz.Resolver
}

// NewListService creates a new ListService.
func NewListService(lists repository.ListRepository, players repository.PlayerRepository, resolver authz.Resolver) *ListService {
	return &ListService{
		lists:    lists,
		players:  players,
		resolver: resolver,
	}
}

// GetLists returns the lists of every team visible to email.
func (s *ListService) GetLists(ctx context.Context, email string) (*models.ListsResponse, error) {
	if email == "" {
		return nil, apperrors.ErrEmailRequired
	}

	visible, err := s.resolver.VisibleTeamIDs(ctx, email)
	if err != nil {
		return nil, err
	}
	if visible.Len() == 0 {
		return &models.ListsResponse{Lists: []models.List{}}, nil
	}

	lists, err := s.lists.FindByTeamIDs(ctx, visible.Sorted())
	if err != nil {
		return nil, err
	}
	if lists == nil {
		lists = []models.List{}
	}
	return &models.ListsResponse{Lists: lists}, nil
}

// CreateList creates a list in teamID. Without teamID the caller's only
// visible team is used.
func (s *ListService) CreateList(ctx context.Context, email, name, teamID string) (*models.List, error) {
	if email == "" {
		return nil, apperrors.ErrEmailRequired
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.ErrNameRequired
	}

	visible, err := s.resolver.VisibleTeamIDs(ctx, email)
	if err != nil {
		return nil, err
	}

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		switch visible.Len() {
		case 0:
			return nil, apperrors.ErrTeamNotVisible
		case 1:
			teamID = visible.Sorted()[0]
		default:
			return nil, apperrors.ErrAmbiguousListTarget
		}
	}
	if !visible.Has(teamID) {
		return nil, apperrors.ErrTeamNotVisible
	}

	list := &models.List{
		Name:   name,
		Owner:  email,
		TeamID: teamID,
	}
	if err := s.lists.Create(ctx, list); err != nil {
		return nil, err
	}

	log.Info().Str("list_id", list.ID).Str("team_id", teamID).Str("owner", email).Msg("list created")
	return list, nil
}

// DeleteList deletes a visible list and detaches it from its players.
func (s *ListService) DeleteList(ctx context.Context, email, listID string) (*models.StatusResponse, error) {
	if email == "" {
		return nil, apperrors.ErrEmailRequired
	}
	if listID == "" {
		return nil, apperrors.ErrListIDRequired
	}

	list, err := s.lists.FindByID(ctx, listID)
	if err != nil {
		if errors.Is(err, apperrors.ErrListNotFound) {
			return &models.StatusResponse{Status: models.StatusNotFound, ID: listID}, nil
		}
		return nil, err
	}
	if err := s.checkVisible(ctx, email, list); err != nil {
		return nil, err
	}

	if err := s.lists.Delete(ctx, listID); err != nil {
		if errors.Is(err, apperrors.ErrListNotFound) {
			return &models.StatusResponse{Status: models.StatusNotFound, ID: listID}, nil
		}
		return nil, err
	}

	// Not transactional: the list is already gone, stale ids only cost a filter.
	if _, err := s.players.RemoveListFromAll(ctx, listID); err != nil {
		log.Warn().Err(err).Str("list_id", listID).Msg("failed to detach deleted list from players")
	}

	return &models.StatusResponse{Status: models.StatusDeleted, ID: listID}, nil
}

// AddPlayer adds playerID to a visible list. The player's league must be one
// the caller manages.
func (s *ListService) AddPlayer(ctx context.Context, email, listID, playerID string) (*models.StatusResponse, error) {
	if email == "" {
		return nil, apperrors.ErrEmailRequired
	}
	if listID == "" {
		return nil, apperrors.ErrListIDRequired
	}
	playerID = models.NormalizeID(playerID)
	if playerID == "" {
		return nil, apperrors.ErrPlayerIDRequired
	}

	list, err := s.lists.FindByID(ctx, listID)
	if err != nil {
		if errors.Is(err, apperrors.ErrListNotFound) {
			return &models.StatusResponse{Status: models.StatusNotFound, ID: listID}, nil
		}
		return nil, err
	}
	if err := s.checkVisible(ctx, email, list); err != nil {
		return nil, err
	}

	player, err := s.players.FindByID(ctx, playerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrPlayerNotFound) {
			return &models.StatusResponse{Status: models.StatusNotFound, ID: playerID}, nil
		}
		return nil, err
	}

	leagues, err := s.resolver.ManagedLeagueIDs(ctx, email)
	if err != nil {
		return nil, err
	}
	if !leagues.Has(player.NativeLeagueID.String()) {
		return nil, apperrors.ErrLeagueNotManaged
	}

	if err := s.players.AddToList(ctx, playerID, listID); err != nil {
		if errors.Is(err, apperrors.ErrPlayerNotFound) {
			return &models.StatusResponse{Status: models.StatusNotFound, ID: playerID}, nil
		}
		return nil, err
	}
	return &models.StatusResponse{Status: models.StatusAdded, ID: playerID}, nil
}

// RemovePlayer removes playerID from listID. It is idempotent and, unlike
// AddPlayer, not gated on visibility.
func (s *ListService) RemovePlayer(ctx context.Context, listID, playerID string) (*models.StatusResponse, error) {
	if listID == "" {
		return nil, apperrors.ErrListIDRequired
	}
	playerID = models.NormalizeID(playerID)
	if playerID == "" {
		return nil, apperrors.ErrPlayerIDRequired
	}

	if err := s.players.RemoveFromList(ctx, playerID, listID); err != nil {
		return nil, err
	}
	return &models.StatusResponse{Status: models.StatusRemoved, ID: playerID}, nil
}

// GetListPlayers returns the players on listID.
func (s *ListService) GetListPlayers(ctx context.Context, listID string) (*models.PlayersResponse, error) {
	if listID == "" {
		return nil, apperrors.ErrListIDRequired
	}
	players, err := s.players.FindByListID(ctx, listID)
	if err != nil {
		return nil, err
	}
	if players == nil {
		players = []models.Player{}
	}
	return &models.PlayersResponse{Players: players}, nil
}

func (s *ListService) checkVisible(ctx context.Context, email string, list *models.List) error {
	visible, err := s.resolver.VisibleTeamIDs(ctx, email)
	if err != nil {
		return err
	}
	if !visible.Has(list.TeamID) {
		return apperrors.ErrListNotVisible
	}
	return nil
}
