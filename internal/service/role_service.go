package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"nt-data-lab/internal/authz"
	"nt-data-lab/internal/cache"
	apperrors "nt-data-lab/internal/errors"
	"nt-data-lab/internal/models"
	"nt-data-lab/internal/repository"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

// RoleService handles teams, memberships and the roles derived from them.
type RoleService struct {
	teams       repository.TeamRepository
	memberships repository.MembershipRepository
	users       repository.UserRepository
	resolver    authz.Resolver
	cache       cache.Cache
	clock       clockwork.Clock
}

// NewRoleService creates a new RoleService. The cache may be nil.
func NewRoleService(
	teams repository.TeamRepository,
	memberships repository.MembershipRepository,
	users repository.UserRepository,
	resolver authz.Resolver,
	c cache.Cache,
	clock clockwork.Clock,
) *RoleService {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &RoleService{
		teams:       teams,
		memberships: memberships,
		users:       users,
		resolver:    resolver,
		cache:       c,
		clock:       clock,
	}
}

// GetRole returns coach when the user owns a team, else the first membership
// role, else the role stored on the user record.
func (s *RoleService) GetRole(ctx context.Context, email string) (*models.RoleResponse, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, apperrors.ErrEmailRequired
	}

	owned, err := s.teams.FindByOwner(ctx, email)
	if err != nil {
		return nil, err
	}
	if len(owned) > 0 {
		return &models.RoleResponse{Email: email, Role: models.RoleCoach}, nil
	}

	memberships, err := s.memberships.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if len(memberships) > 0 {
		return &models.RoleResponse{Email: email, Role: memberships[0].Role}, nil
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return &models.RoleResponse{Email: email}, nil
		}
		return nil, err
	}
	return &models.RoleResponse{Email: email, Role: user.Role}, nil
}

// CreateTeam creates the team {type}_{name} owned by requester.
// An existing team owned by requester is reported as exists.
func (s *RoleService) CreateTeam(ctx context.Context, requester, name, teamType string, nativeLeagueID models.ExternalID) (*models.CreateTeamResult, error) {
	requester = strings.TrimSpace(requester)
	name = strings.TrimSpace(name)
	teamType = strings.TrimSpace(teamType)
	if requester == "" {
		return nil, apperrors.ErrEmailRequired
	}
	if name == "" {
		return nil, apperrors.ErrNameRequired
	}
	if teamType == "" {
		return nil, apperrors.ErrTeamRequired
	}

	teamID := models.TeamKey(teamType, name)
	existing, err := s.teams.FindByID(ctx, teamID)
	switch {
	case err == nil:
		return existingTeamResult(existing, requester)
	case !errors.Is(err, apperrors.ErrTeamNotFound):
		return nil, err
	}

	team := &models.Team{
		ID:             teamID,
		Name:           name,
		Type:           teamType,
		Owner:          requester,
		NativeLeagueID: nativeLeagueID,
		CreatedAt:      s.clock.Now().UTC(),
	}
	if err := s.teams.Create(ctx, team); err != nil {
		if !errors.Is(err, apperrors.ErrTeamAlreadyExists) {
			return nil, err
		}
		// Lost an insert race; report whoever won.
		existing, err := s.teams.FindByID(ctx, teamID)
		if err != nil {
			return nil, fmt.Errorf("re-read team %s: %w", teamID, err)
		}
		return existingTeamResult(existing, requester)
	}

	if err := s.users.UpsertRole(ctx, requester, models.RoleCoach); err != nil {
		return nil, fmt.Errorf("mark coach: %w", err)
	}
	invalidateProfiles(ctx, s.cache, requester)

	log.Info().Str("team_id", teamID).Str("owner", requester).Msg("team created")
	return &models.CreateTeamResult{Status: models.StatusCreated, Team: team}, nil
}

func existingTeamResult(team *models.Team, requester string) (*models.CreateTeamResult, error) {
	if team.Owner != requester {
		return nil, apperrors.ErrTeamOwnedByOther
	}
	return &models.CreateTeamResult{Status: models.StatusExists, Team: team}, nil
}

// SetRole changes the role of a user. Claiming coach creates a team for the
// requester; staff roles require the requester to coach the target team.
func (s *RoleService) SetRole(ctx context.Context, req *models.RoleRequest) (*models.SetRoleResponse, error) {
	requester := strings.TrimSpace(req.RequesterEmail)
	target := strings.TrimSpace(req.TargetEmail)
	if target == "" {
		target = strings.TrimSpace(req.Email)
	}
	if requester == "" || target == "" {
		return nil, apperrors.ErrEmailRequired
	}

	switch req.NewRole {
	case models.RoleCoach:
		if target != requester {
			return nil, apperrors.ErrCoachRoleSelfOnly
		}
		result, err := s.CreateTeam(ctx, requester, req.TeamName, req.TeamType, req.NativeLeagueID)
		if err != nil {
			return nil, err
		}
		return &models.SetRoleResponse{Status: result.Status, Role: models.RoleCoach, Team: result.Team}, nil

	case models.RoleAssistant, models.RoleScout:
		teamID, err := s.defaultTeamID(ctx, requester, req.ResolveTeamID())
		if err != nil {
			return nil, err
		}
		membership, err := s.resolver.AssignRole(ctx, requester, target, req.NewRole, teamID)
		if err != nil {
			return nil, err
		}
		if err := s.users.UpsertRole(ctx, target, req.NewRole); err != nil {
			return nil, fmt.Errorf("update user role: %w", err)
		}
		invalidateProfiles(ctx, s.cache, target)

		log.Info().
			Str("requester", requester).
			Str("target", target).
			Str("role", req.NewRole).
			Str("team_id", teamID).
			Msg("role assigned")
		return &models.SetRoleResponse{Status: models.StatusUpdated, Role: req.NewRole, Membership: membership}, nil

	default:
		return nil, apperrors.ErrInvalidRole
	}
}

// defaultTeamID falls back to the only team the requester owns.
func (s *RoleService) defaultTeamID(ctx context.Context, requester, teamID string) (string, error) {
	if teamID != "" {
		return teamID, nil
	}
	owned, err := s.teams.FindByOwner(ctx, requester)
	if err != nil {
		return "", err
	}
	if len(owned) != 1 {
		return "", apperrors.ErrTeamRequired
	}
	return owned[0].ID, nil
}

// GetCoachTeams returns the teams owned by requester.
func (s *RoleService) GetCoachTeams(ctx context.Context, requester string) (*models.TeamsResponse, error) {
	if requester == "" {
		return nil, apperrors.ErrEmailRequired
	}
	teams, err := s.teams.FindByOwner(ctx, requester)
	if err != nil {
		return nil, err
	}
	if teams == nil {
		teams = []models.Team{}
	}
	return &models.TeamsResponse{Teams: teams}, nil
}

// GetTeamMembers returns the memberships of every team requester owns.
func (s *RoleService) GetTeamMembers(ctx context.Context, requester string) (*models.MembersResponse, error) {
	if requester == "" {
		return nil, apperrors.ErrEmailRequired
	}
	owned, err := s.teams.FindByOwner(ctx, requester)
	if err != nil {
		return nil, err
	}
	members := []models.MembershipView{}
	if len(owned) == 0 {
		return &models.MembersResponse{Members: members}, nil
	}

	byID := make(map[string]models.Team, len(owned))
	teamIDs := make([]string, 0, len(owned))
	for _, t := range owned {
		byID[t.ID] = t
		teamIDs = append(teamIDs, t.ID)
	}

	memberships, err := s.memberships.FindByTeamIDs(ctx, teamIDs)
	if err != nil {
		return nil, err
	}
	for _, m := range memberships {
		view := models.MembershipView{Membership: m}
		if t, ok := byID[m.TeamID]; ok {
			team := t
			view.Team = &team
		}
		members = append(members, view)
	}
	return &models.MembersResponse{Members: members}, nil
}

// GetContext returns the access context of requester.
func (s *RoleService) GetContext(ctx context.Context, requester string) (*models.AccessContext, error) {
	return s.resolver.ResolveContext(ctx, requester)
}
