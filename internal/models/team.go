package models

import (
	"strings"
	"time"
)

// Team is a squad (e.g. a national U21 or NT team) exclusively owned by one coach.
type Team struct {
	ID             string     `json:"id" bson:"_id" example:"NT_Italia"`
	Name           string     `json:"name" bson:"name" example:"Italia"`
	Type           string     `json:"type" bson:"type" example:"NT"`
	Owner          string     `json:"owner" bson:"owner" example:"coach@example.com"`
	NativeLeagueID ExternalID `json:"NativeLeagueID,omitempty" bson:"NativeLeagueID,omitempty" example:"4"`
	CreatedAt      time.Time  `json:"created_at" bson:"created_at" example:"2025-01-15T09:30:00Z"`
}

// TeamKey derives the deterministic team id from its type and name.
func TeamKey(teamType, name string) string {
	return strings.TrimSpace(teamType) + "_" + strings.TrimSpace(name)
}

// CreateTeamResult is returned by team creation.
type CreateTeamResult struct {
	Status string `json:"status" example:"created"`
	Team   *Team  `json:"team"`
}
