// Package fixtures provides test data builders for unit and API tests.
package fixtures

import (
	"fmt"
	"time"

	"nt-data-lab/internal/models"

	"github.com/google/uuid"
)

// UniqueEmail returns an address that does not collide across tests.
func UniqueEmail(prefix string) string {
	return fmt.Sprintf("%s-%s@example.com", prefix, uuid.NewString()[:8])
}

// ===== Team Fixtures =====

// TeamBuilder provides fluent API for building test teams.
type TeamBuilder struct {
	team models.Team
}

// NewTeam creates a team of the given type and name owned by owner.
func NewTeam(teamType, name, owner string) *TeamBuilder {
	return &TeamBuilder{
		team: models.Team{
			ID:        models.TeamKey(teamType, name),
			Name:      name,
			Type:      teamType,
			Owner:     owner,
			CreatedAt: time.Now().UTC(),
		},
	}
}

func (b *TeamBuilder) WithLeague(id string) *TeamBuilder {
	b.team.NativeLeagueID = models.ExternalID(id)
	return b
}

func (b *TeamBuilder) Build() models.Team {
	return b.team
}

func (b *TeamBuilder) BuildPtr() *models.Team {
	t := b.team
	return &t
}

// ===== Membership Fixtures =====

// NewMembership builds the membership of email in teamID.
func NewMembership(email, teamID, role string) *models.Membership {
	return &models.Membership{
		ID:        models.MembershipKey(email, teamID),
		Email:     email,
		TeamID:    teamID,
		Role:      role,
		UpdatedAt: time.Now().UTC(),
	}
}

// ===== Player Fixtures =====

// PlayerBuilder provides fluent API for building player records.
type PlayerBuilder struct {
	record map[string]interface{}
}

// NewPlayer creates a player record with an id and a league.
func NewPlayer(id, leagueID string) *PlayerBuilder {
	return &PlayerBuilder{
		record: map[string]interface{}{
			models.FieldPlayerID:       id,
			models.FieldNativeLeagueID: leagueID,
			"FirstName":                "Test",
			"LastName":                 "Player " + id,
		},
	}
}

func (b *PlayerBuilder) WithName(first, last string) *PlayerBuilder {
	b.record["FirstName"] = first
	b.record["LastName"] = last
	return b
}

func (b *PlayerBuilder) WithSkill(name string, level int) *PlayerBuilder {
	b.record[name] = level
	return b
}

// Record returns the flat record accepted by save_player and import_players.
func (b *PlayerBuilder) Record() map[string]interface{} {
	out := make(map[string]interface{}, len(b.record))
	for k, v := range b.record {
		out[k] = v
	}
	return out
}

// Build returns the player model.
func (b *PlayerBuilder) Build() *models.Player {
	p, err := models.NewPlayerFromRecord(b.Record())
	if err != nil {
		panic(err)
	}
	return p
}

// ===== Target Fixtures =====

// NewTarget builds a saved skill target.
func NewTarget(email, role, name string, stats map[string]float64) *models.Target {
	return &models.Target{
		UserEmail: email,
		Role:      role,
		Name:      &name,
		Variant:   "Normal",
		Stats:     stats,
	}
}
