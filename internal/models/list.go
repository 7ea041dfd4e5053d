package models

import "time"

// List is a named selection of players scoped to one team.
type List struct {
	ID        string    `json:"id" bson:"_id" example:"65a4f1c2e4b0a1b2c3d4e5f6"`
	Name      string    `json:"name" bson:"name" example:"Midfield prospects"`
	Owner     string    `json:"owner" bson:"owner" example:"coach@example.com"`
	TeamID    string    `json:"team_id" bson:"team_id" example:"NT_Italia"`
	CreatedAt time.Time `json:"created_at" bson:"created_at" example:"2025-01-15T09:30:00Z"`
}

// ListsResponse wraps a collection of lists.
type ListsResponse struct {
	Lists []List `json:"lists"`
}
