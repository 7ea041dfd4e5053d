package authz

import (
	"context"
	"errors"
	"fmt"
	"strings"

	apperrors "nt-data-lab/internal/errors"
	"nt-data-lab/internal/models"

	"github.com/jonboulle/clockwork"
)

// TeamFinder is the team lookup required by LocalResolver.
type TeamFinder interface {
	FindByID(ctx context.Context, id string) (*models.Team, error)
	FindByOwner(ctx context.Context, owner string) ([]models.Team, error)
	FindByIDs(ctx context.Context, ids []string) ([]models.Team, error)
}

// MembershipStore is the membership access required by LocalResolver.
type MembershipStore interface {
	FindByEmail(ctx context.Context, email string) ([]models.Membership, error)
	Upsert(ctx context.Context, membership *models.Membership) error
}

// LocalResolver implements Resolver using database lookups.
type LocalResolver struct {
	teams       TeamFinder
	memberships MembershipStore
	clock       clockwork.Clock
}

var _ Resolver = (*LocalResolver)(nil)

// NewLocalResolver creates a new LocalResolver.
func NewLocalResolver(teams TeamFinder, memberships MembershipStore, clock clockwork.Clock) *LocalResolver {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &LocalResolver{
		teams:       teams,
		memberships: memberships,
		clock:       clock,
	}
}

// ResolveContext returns the access context of email.
func (r *LocalResolver) ResolveContext(ctx context.Context, email string) (*models.AccessContext, error) {
	access := models.EmptyAccessContext()
	email = strings.TrimSpace(email)
	if email == "" {
		return &access, nil
	}

	owned, err := r.teams.FindByOwner(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("find owned teams: %w", err)
	}
	access.OwnedTeams = owned
	access.IsAnyCoach = len(owned) > 0

	memberships, err := r.memberships.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("find memberships: %w", err)
	}
	if len(memberships) == 0 {
		return &access, nil
	}

	teamIDs := make([]string, 0, len(memberships))
	for _, m := range memberships {
		teamIDs = append(teamIDs, m.TeamID)
	}
	teams, err := r.teams.FindByIDs(ctx, teamIDs)
	if err != nil {
		return nil, fmt.Errorf("find membership teams: %w", err)
	}
	byID := make(map[string]models.Team, len(teams))
	for _, t := range teams {
		byID[t.ID] = t
	}

	for _, m := range memberships {
		view := models.MembershipView{Membership: m}
		if t, ok := byID[m.TeamID]; ok {
			team := t
			view.Team = &team
		}
		access.Memberships = append(access.Memberships, view)
	}
	return &access, nil
}

// IsCoachOf reports whether email owns teamID. A missing team denies.
func (r *LocalResolver) IsCoachOf(ctx context.Context, email, teamID string) (bool, error) {
	if email == "" || teamID == "" {
		return false, nil
	}

	team, err := r.teams.FindByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, apperrors.ErrTeamNotFound) {
			return false, nil
		}
		return false, err
	}
	return team.Owner == email, nil
}

// ManagedLeagueIDs returns the canonical league ids of the teams email can reach.
func (r *LocalResolver) ManagedLeagueIDs(ctx context.Context, email string) (models.IDSet, error) {
	access, err := r.ResolveContext(ctx, email)
	if err != nil {
		return nil, err
	}

	leagues := models.NewIDSet()
	for _, t := range access.OwnedTeams {
		leagues.Add(t.NativeLeagueID.String())
	}
	for _, m := range access.Memberships {
		if m.Team != nil {
			leagues.Add(m.Team.NativeLeagueID.String())
		}
	}
	return leagues, nil
}

// VisibleTeamIDs returns owned team ids and membership team ids.
func (r *LocalResolver) VisibleTeamIDs(ctx context.Context, email string) (models.IDSet, error) {
	access, err := r.ResolveContext(ctx, email)
	if err != nil {
		return nil, err
	}

	ids := models.NewIDSet()
	for _, t := range access.OwnedTeams {
		ids.Add(t.ID)
	}
	for _, m := range access.Memberships {
		ids.Add(m.Membership.TeamID)
	}
	return ids, nil
}

// AssignRole upserts the membership of targetEmail in teamID.
// Only the coach of the team may assign roles.
func (r *LocalResolver) AssignRole(ctx context.Context, requester, targetEmail, role, teamID string) (*models.Membership, error) {
	targetEmail = strings.TrimSpace(targetEmail)
	if targetEmail == "" {
		return nil, apperrors.ErrEmailRequired
	}
	if teamID == "" {
		return nil, apperrors.ErrTeamRequired
	}
	if !models.IsStaffRole(role) {
		return nil, apperrors.ErrInvalidRole
	}

	isCoach, err := r.IsCoachOf(ctx, requester, teamID)
	if err != nil {
		return nil, err
	}
	if !isCoach {
		return nil, apperrors.ErrNotCoach
	}

	membership := &models.Membership{
		ID:        models.MembershipKey(targetEmail, teamID),
		Email:     targetEmail,
		TeamID:    teamID,
		Role:      role,
		UpdatedAt: r.clock.Now().UTC(),
	}
	if err := r.memberships.Upsert(ctx, membership); err != nil {
		return nil, fmt.Errorf("upsert membership: %w", err)
	}
	return membership, nil
}
