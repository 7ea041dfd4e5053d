package models

import "time"

// Role values.
const (
	RoleCoach     = "coach"
	RoleAssistant = "assistant"
	RoleScout     = "scout"
)

// IsStaffRole reports whether role can be held through a team membership.
func IsStaffRole(role string) bool {
	return role == RoleAssistant || role == RoleScout
}

// User represents a user of the tool, keyed by email.
type User struct {
	Email      string    `json:"email" bson:"_id" example:"coach@example.com"`
	Role       string    `json:"role,omitempty" bson:"role,omitempty" example:"coach"`
	CoachEmail string    `json:"coach_email,omitempty" bson:"coach_email,omitempty" example:"coach@example.com"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at" example:"2025-01-15T09:30:00Z"`
	UpdatedAt  time.Time `json:"updated_at" bson:"updated_at" example:"2025-01-15T09:30:00Z"`
}

// Profile is a user record together with everything the user can act on.
type Profile struct {
	User    User          `json:"user"`
	Context AccessContext `json:"context"`
}
