// Package authz resolves which teams, leagues and lists an identity may act on.
package authz

import (
	"context"

	"nt-data-lab/internal/models"
)

//go:generate mockgen -destination=mocks/mock_resolver.go -package=mocks nt-data-lab/internal/authz Resolver

// Resolver answers visibility questions for an identity.
// Results are derived from the store on every call and never cached.
type Resolver interface {
	// ResolveContext returns the teams the user owns and the memberships it holds.
	// Unknown or empty identities yield an empty context, not an error.
	ResolveContext(ctx context.Context, email string) (*models.AccessContext, error)

	// IsCoachOf reports whether a team with teamID exists and is owned by email.
	IsCoachOf(ctx context.Context, email, teamID string) (bool, error)

	// ManagedLeagueIDs returns the native league ids of every team reachable by email.
	ManagedLeagueIDs(ctx context.Context, email string) (models.IDSet, error)

	// VisibleTeamIDs returns owned team ids and membership team ids.
	VisibleTeamIDs(ctx context.Context, email string) (models.IDSet, error)

	// AssignRole gives targetEmail a staff role in a team the requester coaches.
	AssignRole(ctx context.Context, requester, targetEmail, role, teamID string) (*models.Membership, error)
}
