package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"nt-data-lab/internal/authz"
	apperrors "nt-data-lab/internal/errors"
	"nt-data-lab/internal/hattrick"
	"nt-data-lab/internal/models"
	"nt-data-lab/internal/repository"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

const searchLimit = 100

// PlayerService handles player records, search, import and sync.
type PlayerService struct {
	players  repository.PlayerRepository
	lists    repository.ListRepository
	resolver authz.Resolver
	source   hattrick.Source
	clock    clockwork.Clock
}

// NewPlayerService creates a new PlayerService.
func NewPlayerService(
	players repository.PlayerRepository,
	lists repository.ListRepository,
	resolver authz.Resolver,
	source hattrick.Source,
	clock clockwork.Clock,
) *PlayerService {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &PlayerService{
		players:  players,
		lists:    lists,
		resolver: resolver,
		source:   source,
		clock:    clock,
	}
}

// GetPlayer returns a player owned by requester or playing in a league
// requester manages.
func (s *PlayerService) GetPlayer(ctx context.Context, requester, playerID string) (*models.PlayerResponse, error) {
	playerID = models.NormalizeID(playerID)
	if playerID == "" {
		return nil, apperrors.ErrPlayerIDRequired
	}

	player, err := s.players.FindByID(ctx, playerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrPlayerNotFound) {
			return &models.PlayerResponse{Status: models.StatusNotFound}, nil
		}
		return nil, err
	}

	if player.OwnerEmail != requester {
		leagues, err := s.resolver.ManagedLeagueIDs(ctx, requester)
		if err != nil {
			return nil, err
		}
		if !leagues.Has(player.NativeLeagueID.String()) {
			return nil, apperrors.ErrLeagueNotManaged
		}
	}
	return &models.PlayerResponse{Status: models.StatusSuccess, Player: player}, nil
}

// SavePlayer merges a manually entered player. A new player may be saved
// without a league; a stored player owned by someone else may only be changed
// from a league requester manages.
func (s *PlayerService) SavePlayer(ctx context.Context, requester string, data map[string]interface{}) (*models.StatusResponse, error) {
	if requester == "" {
		return nil, apperrors.ErrEmailRequired
	}
	if len(data) == 0 {
		return nil, apperrors.ErrMissingPayload
	}

	player, err := models.NewPlayerFromRecord(data)
	if err != nil {
		return nil, err
	}

	stored, err := s.players.FindByID(ctx, player.ID.String())
	if err != nil {
		if !errors.Is(err, apperrors.ErrPlayerNotFound) {
			return nil, err
		}
		stored = nil
	}

	leagues, err := s.resolver.ManagedLeagueIDs(ctx, requester)
	if err != nil {
		return nil, err
	}
	if err := checkPlayerWrite(requester, player, stored, leagues); err != nil {
		return nil, err
	}

	if err := s.players.Upsert(ctx, player, requester, s.clock.Now().UTC()); err != nil {
		return nil, err
	}
	return &models.StatusResponse{Status: models.StatusSaved, ID: player.ID.String()}, nil
}

// GetMyPlayers returns the players requester entered or imported.
func (s *PlayerService) GetMyPlayers(ctx context.Context, requester string) (*models.PlayersResponse, error) {
	if requester == "" {
		return nil, apperrors.ErrEmailRequired
	}
	players, err := s.players.FindByOwner(ctx, requester)
	if err != nil {
		return nil, err
	}
	return playersResponse(players), nil
}

// GetListPlayersDetailed returns the players of a list visible to requester.
// An unknown list yields no players.
func (s *PlayerService) GetListPlayersDetailed(ctx context.Context, requester, listID string) (*models.PlayersResponse, error) {
	if listID == "" {
		return nil, apperrors.ErrListIDRequired
	}

	list, err := s.lists.FindByID(ctx, listID)
	if err != nil {
		if errors.Is(err, apperrors.ErrListNotFound) {
			return playersResponse(nil), nil
		}
		return nil, err
	}

	visible, err := s.resolver.VisibleTeamIDs(ctx, requester)
	if err != nil {
		return nil, err
	}
	if !visible.Has(list.TeamID) {
		return nil, apperrors.ErrListNotVisible
	}

	players, err := s.players.FindByListID(ctx, listID)
	if err != nil {
		return nil, err
	}
	return playersResponse(players), nil
}

// SearchPlayers matches query against the players of requester's managed
// leagues, leaving out those already on excludeListID.
func (s *PlayerService) SearchPlayers(ctx context.Context, requester, query, excludeListID string) (*models.PlayersResponse, error) {
	if requester == "" {
		return nil, apperrors.ErrEmailRequired
	}

	leagues, err := s.resolver.ManagedLeagueIDs(ctx, requester)
	if err != nil {
		return nil, err
	}
	if leagues.Len() == 0 {
		return playersResponse(nil), nil
	}

	players, err := s.players.Search(ctx, repository.PlayerSearch{
		LeagueIDs:     leagues.Sorted(),
		Query:         strings.TrimSpace(query),
		ExcludeListID: excludeListID,
		Limit:         searchLimit,
	})
	if err != nil {
		return nil, err
	}
	return playersResponse(players), nil
}

// ImportPlayers upserts rows in chunks. Rows without an id or a managed
// league are skipped, as are stored players requester may not change. A chunk
// that fails to write is logged and counted as skipped.
func (s *PlayerService) ImportPlayers(ctx context.Context, requester string, rows []map[string]interface{}) (*models.BatchResult, error) {
	if requester == "" {
		return nil, apperrors.ErrEmailRequired
	}

	result := &models.BatchResult{Status: models.StatusSuccess}
	parsed := make([]*models.Player, 0, len(rows))
	for i, row := range rows {
		player, err := models.NewPlayerFromRecord(row)
		if err != nil {
			result.Skipped++
			log.Warn().Err(err).Int("row", i).Msg("skipping import row")
			continue
		}
		parsed = append(parsed, player)
	}
	if len(parsed) == 0 {
		return result, nil
	}

	valid, err := s.authorizeImport(ctx, requester, parsed, result)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now().UTC()
	for start := 0; start < len(valid); start += repository.MaxBatchWrites {
		end := start + repository.MaxBatchWrites
		if end > len(valid) {
			end = len(valid)
		}
		batch := valid[start:end]

		written, err := s.players.BulkUpsert(ctx, batch, requester, now)
		if err != nil {
			result.Skipped += len(batch)
			result.Warnings = append(result.Warnings, fmt.Sprintf("rows %d-%d not imported", start, end-1))
			log.Warn().Err(err).Int("from", start).Int("to", end-1).Msg("import chunk failed")
			continue
		}
		result.Count += int(written)
	}

	log.Info().
		Str("requester", requester).
		Int("count", result.Count).
		Int("skipped", result.Skipped).
		Msg("players imported")
	return result, nil
}

// authorizeImport keeps the players requester may write and records the rest
// in result as skipped.
func (s *PlayerService) authorizeImport(ctx context.Context, requester string, players []*models.Player, result *models.BatchResult) ([]*models.Player, error) {
	leagues, err := s.resolver.ManagedLeagueIDs(ctx, requester)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(players))
	for _, p := range players {
		ids = append(ids, p.ID.String())
	}
	existing, err := s.players.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	stored := make(map[string]*models.Player, len(existing))
	for i := range existing {
		stored[existing[i].ID.String()] = &existing[i]
	}

	allowed := make([]*models.Player, 0, len(players))
	for _, p := range players {
		id := p.ID.String()
		if p.NativeLeagueID.IsZero() {
			result.Skipped++
			result.Warnings = append(result.Warnings, fmt.Sprintf("player %s: no native league", id))
			continue
		}
		if err := checkPlayerWrite(requester, p, stored[id], leagues); err != nil {
			result.Skipped++
			result.Warnings = append(result.Warnings, fmt.Sprintf("player %s: %v", id, err))
			log.Warn().Str("requester", requester).Str("player_id", id).Msg("import row outside managed leagues")
			continue
		}
		allowed = append(allowed, p)
	}
	return allowed, nil
}

// checkPlayerWrite enforces the league scope of a player write. The incoming
// league, when present, must be managed. A stored player owned by someone else
// must already sit in a managed league.
func checkPlayerWrite(requester string, incoming, stored *models.Player, leagues models.IDSet) error {
	if !incoming.NativeLeagueID.IsZero() && !leagues.Has(incoming.NativeLeagueID.String()) {
		return apperrors.ErrLeagueNotManaged
	}
	if stored != nil && stored.OwnerEmail != requester && !leagues.Has(stored.NativeLeagueID.String()) {
		return apperrors.ErrLeagueNotManaged
	}
	return nil
}

// SyncPlayers pulls the national player list from the source and stores the
// players of requester's managed leagues. A stored player is overwritten only
// when the source snapshot is strictly newer.
func (s *PlayerService) SyncPlayers(ctx context.Context, requester string) (*models.BatchResult, error) {
	if requester == "" {
		return nil, apperrors.ErrEmailRequired
	}
	if s.source == nil {
		return nil, fmt.Errorf("%w: no source configured", apperrors.ErrExternalFetch)
	}

	leagues, err := s.resolver.ManagedLeagueIDs(ctx, requester)
	if err != nil {
		return nil, err
	}

	result := &models.BatchResult{Status: models.StatusSuccess}
	if leagues.Len() == 0 {
		return result, nil
	}

	list, err := s.source.NationalPlayers(ctx)
	if err != nil {
		return nil, err
	}

	for _, id := range list.PlayerIDs {
		stored, warning := s.syncPlayer(ctx, requester, id, leagues)
		switch {
		case warning != "":
			result.Warnings = append(result.Warnings, warning)
		case stored:
			result.Count++
		default:
			result.Skipped++
		}
	}

	log.Info().
		Str("requester", requester).
		Int("synced", result.Count).
		Int("skipped", result.Skipped).
		Int("warnings", len(result.Warnings)).
		Msg("players synced")
	return result, nil
}

// syncPlayer returns whether the player was stored, or a warning when it
// could not be processed.
func (s *PlayerService) syncPlayer(ctx context.Context, requester, playerID string, leagues models.IDSet) (bool, string) {
	detail, err := s.source.PlayerDetail(ctx, playerID)
	if err != nil {
		log.Warn().Err(err).Str("player_id", playerID).Msg("player fetch failed")
		return false, fmt.Sprintf("player %s: %v", playerID, err)
	}

	player, err := models.NewPlayerFromRecord(detail.Record)
	if err != nil {
		log.Warn().Err(err).Str("player_id", playerID).Msg("invalid player document")
		return false, fmt.Sprintf("player %s: %v", playerID, err)
	}
	if !leagues.Has(player.NativeLeagueID.String()) {
		return false, ""
	}

	existing, err := s.players.FindByID(ctx, player.ID.String())
	switch {
	case err == nil:
		if existing.UpdatedAt != nil && !detail.FetchedAt.After(*existing.UpdatedAt) {
			return false, ""
		}
	case !errors.Is(err, apperrors.ErrPlayerNotFound):
		log.Warn().Err(err).Str("player_id", playerID).Msg("player lookup failed")
		return false, fmt.Sprintf("player %s: %v", playerID, err)
	}

	if err := s.players.Upsert(ctx, player, requester, detail.FetchedAt.UTC()); err != nil {
		log.Warn().Err(err).Str("player_id", playerID).Msg("player write failed")
		return false, fmt.Sprintf("player %s: %v", playerID, err)
	}
	return true, ""
}

func playersResponse(players []models.Player) *models.PlayersResponse {
	if players == nil {
		players = []models.Player{}
	}
	return &models.PlayersResponse{Players: players}
}
