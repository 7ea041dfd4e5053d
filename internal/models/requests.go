package models

import (
	"strings"

	"nt-data-lab/internal/advisor"
)

// Action selects the resource a POST / request targets.
type Action string

// Supported actions. The empty action runs the player analysis.
const (
	ActionAnalyze       Action = ""
	ActionManageUsers   Action = "manage_users"
	ActionManageTargets Action = "manage_targets"
	ActionManageRoles   Action = "manage_roles"
	ActionManageLists   Action = "manage_lists"
	ActionManagePlayers Action = "manage_players"
)

// Method selects the operation within an action.
type Method string

// Supported methods.
const (
	MethodGetProfile Method = "get_profile"

	MethodGetTargets   Method = "get"
	MethodSaveTarget   Method = "save"
	MethodDeleteTarget Method = "delete"

	MethodGetRole       Method = "get_role"
	MethodSetRole       Method = "set_role"
	MethodCreateTeam    Method = "create_team"
	MethodGetAll        Method = "get_all"
	MethodGetCoachTeams Method = "get_coach_teams"
	MethodGetContext    Method = "get_context"

	MethodGetLists       Method = "get_lists"
	MethodCreateList     Method = "create_list"
	MethodDeleteList     Method = "delete_list"
	MethodAddPlayer      Method = "add_player"
	MethodRemovePlayer   Method = "remove_player"
	MethodGetListPlayers Method = "get_list_players"

	MethodGetPlayer              Method = "get_player"
	MethodSavePlayer             Method = "save_player"
	MethodGetMyPlayers           Method = "get_my_players"
	MethodGetListPlayersDetailed Method = "get_list_players_detailed"
	MethodSearchPlayers          Method = "search_players"
	MethodImportPlayers          Method = "import_players"
	MethodSyncPlayers            Method = "sync_players"
)

var actionMethods = map[Action][]Method{
	ActionManageUsers:   {MethodGetProfile},
	ActionManageTargets: {MethodGetTargets, MethodSaveTarget, MethodDeleteTarget},
	ActionManageRoles:   {MethodGetRole, MethodSetRole, MethodCreateTeam, MethodGetAll, MethodGetCoachTeams, MethodGetContext},
	ActionManageLists:   {MethodGetLists, MethodCreateList, MethodDeleteList, MethodAddPlayer, MethodRemovePlayer, MethodGetListPlayers},
	ActionManagePlayers: {MethodGetPlayer, MethodSavePlayer, MethodGetMyPlayers, MethodGetListPlayersDetailed, MethodSearchPlayers, MethodImportPlayers, MethodSyncPlayers},
}

// Valid reports whether the action is known.
func (a Action) Valid() bool {
	if a == ActionAnalyze {
		return true
	}
	_, ok := actionMethods[a]
	return ok
}

// Supports reports whether m belongs to the action.
func (a Action) Supports(m Method) bool {
	for _, method := range actionMethods[a] {
		if method == m {
			return true
		}
	}
	return false
}

// Envelope holds the routing fields shared by every POST / body.
type Envelope struct {
	Action         Action `json:"action"`
	Method         Method `json:"method"`
	Email          string `json:"email"`
	RequesterEmail string `json:"requesterEmail"`
}

// Identity returns the email the request acts as.
func (e Envelope) Identity() string {
	if e.RequesterEmail != "" {
		return strings.TrimSpace(e.RequesterEmail)
	}
	return strings.TrimSpace(e.Email)
}

// ProfileRequest is the manage_users payload.
type ProfileRequest struct {
	Email string `json:"email" binding:"required,email" example:"coach@example.com"`
}

// TargetInput is a target as sent by the client.
type TargetInput struct {
	ID      string             `json:"id,omitempty"`
	Role    string             `json:"role" binding:"required" example:"midfielder"`
	Name    *string            `json:"name,omitempty" example:"MyU21"`
	Variant string             `json:"variant" example:"Normal"`
	Stats   map[string]float64 `json:"stats"`
}

// TargetRequest is the manage_targets payload.
type TargetRequest struct {
	Email    string       `json:"email" binding:"required,email" example:"coach@example.com"`
	Target   *TargetInput `json:"target,omitempty"`
	TargetID string       `json:"targetId,omitempty"`
}

// RoleRequest is the manage_roles payload.
type RoleRequest struct {
	RequesterEmail string     `json:"requesterEmail" binding:"required,email" example:"coach@example.com"`
	Email          string     `json:"email,omitempty" binding:"omitempty,email" example:"scout@example.com"`
	TargetEmail    string     `json:"targetEmail,omitempty" binding:"omitempty,email" example:"scout@example.com"`
	NewRole        string     `json:"newRole,omitempty" binding:"omitempty,teamrole" example:"scout"`
	TeamID         string     `json:"teamId,omitempty" example:"NT_Italia"`
	TeamName       string     `json:"teamName,omitempty" example:"Italia"`
	TeamType       string     `json:"teamType,omitempty" example:"NT"`
	NativeLeagueID ExternalID `json:"nativeLeagueId,omitempty" swaggertype:"string" example:"4"`
}

// ResolveTeamID returns the explicit team id or derives it from type and name.
func (r RoleRequest) ResolveTeamID() string {
	if r.TeamID != "" {
		return strings.TrimSpace(r.TeamID)
	}
	if r.TeamName == "" || r.TeamType == "" {
		return ""
	}
	return TeamKey(r.TeamType, r.TeamName)
}

// ListRequest is the manage_lists payload.
type ListRequest struct {
	Email    string     `json:"email" binding:"required,email" example:"coach@example.com"`
	Name     string     `json:"name,omitempty" example:"Midfield prospects"`
	ListID   string     `json:"listId,omitempty" example:"65a4f1c2e4b0a1b2c3d4e5f6"`
	PlayerID ExternalID `json:"playerId,omitempty" swaggertype:"string" example:"412345678"`
	TeamID   string     `json:"teamId,omitempty" example:"NT_Italia"`
}

// PlayerRequest is the manage_players payload.
type PlayerRequest struct {
	RequesterEmail string                   `json:"requesterEmail" binding:"required,email" example:"coach@example.com"`
	PlayerID       ExternalID               `json:"playerId,omitempty" swaggertype:"string" example:"412345678"`
	PlayerData     map[string]interface{}   `json:"playerData,omitempty"`
	Players        []map[string]interface{} `json:"players,omitempty"`
	Query          string                   `json:"query,omitempty" example:"Rossi"`
	ListID         string                   `json:"listId,omitempty" example:"65a4f1c2e4b0a1b2c3d4e5f6"`
}

// AnalysisRequest is the payload of a request without action. When Email is
// set the user's saved targets are merged before evaluation.
type AnalysisRequest struct {
	advisor.Request
	Email string `json:"email,omitempty" example:"coach@example.com"`
}

// TeamsResponse wraps a collection of teams.
type TeamsResponse struct {
	Teams []Team `json:"teams"`
}

// MembersResponse wraps the memberships of the teams a coach owns.
type MembersResponse struct {
	Members []MembershipView `json:"members"`
}

// RoleResponse reports a user's effective role.
type RoleResponse struct {
	Email string `json:"email" example:"scout@example.com"`
	Role  string `json:"role" example:"scout"`
}

// SetRoleResponse is returned by set_role.
type SetRoleResponse struct {
	Status     string      `json:"status" example:"updated"`
	Role       string      `json:"role" example:"scout"`
	Team       *Team       `json:"team,omitempty"`
	Membership *Membership `json:"membership,omitempty"`
}
