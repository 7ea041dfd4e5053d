package models

import "time"

// Membership is a user's non-owning association with a team.
type Membership struct {
	ID        string    `json:"id" bson:"_id" example:"scout@example.com_NT_Italia"`
	Email     string    `json:"email" bson:"email" example:"scout@example.com"`
	TeamID    string    `json:"team_id" bson:"team_id" example:"NT_Italia"`
	Role      string    `json:"role" bson:"role" example:"scout"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at" example:"2025-01-15T09:30:00Z"`
}

// MembershipKey derives the deterministic membership id, one row per (user, team).
func MembershipKey(email, teamID string) string {
	return email + "_" + teamID
}

// MembershipView joins a membership with the team it points to.
// Team is nil when the team record is missing.
type MembershipView struct {
	Membership Membership `json:"membership"`
	Team       *Team      `json:"team,omitempty"`
}

// AccessContext describes which teams an identity can act on.
type AccessContext struct {
	OwnedTeams  []Team           `json:"owned_teams"`
	Memberships []MembershipView `json:"memberships"`
	IsAnyCoach  bool             `json:"is_any_coach"`
}

// EmptyAccessContext returns a context with non-nil, empty collections.
func EmptyAccessContext() AccessContext {
	return AccessContext{
		OwnedTeams:  []Team{},
		Memberships: []MembershipView{},
	}
}
