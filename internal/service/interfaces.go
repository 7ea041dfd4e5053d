// Package service contains business logic for the application.
package service

import (
	"context"

	"nt-data-lab/internal/advisor"
	"nt-data-lab/internal/models"
)

// UserServicer defines the interface for user operations.
type UserServicer interface {
	GetProfile(ctx context.Context, email string) (*models.Profile, error)
}

// RoleServicer defines the interface for team and role operations.
type RoleServicer interface {
	GetRole(ctx context.Context, email string) (*models.RoleResponse, error)
	SetRole(ctx context.Context, req *models.RoleRequest) (*models.SetRoleResponse, error)
	CreateTeam(ctx context.Context, requester, name, teamType string, nativeLeagueID models.ExternalID) (*models.CreateTeamResult, error)
	GetCoachTeams(ctx context.Context, requester string) (*models.TeamsResponse, error)
	GetTeamMembers(ctx context.Context, requester string) (*models.MembersResponse, error)
	GetContext(ctx context.Context, requester string) (*models.AccessContext, error)
}

// TargetServicer defines the interface for skill target operations.
type TargetServicer interface {
	GetTargets(ctx context.Context, email string) (*models.TargetsResponse, error)
	SaveTarget(ctx context.Context, email string, input *models.TargetInput) (*models.StatusResponse, error)
	DeleteTarget(ctx context.Context, email, targetID string) (*models.StatusResponse, error)
}

// ListServicer defines the interface for list operations.
type ListServicer interface {
	GetLists(ctx context.Context, email string) (*models.ListsResponse, error)
	CreateList(ctx context.Context, email, name, teamID string) (*models.List, error)
	DeleteList(ctx context.Context, email, listID string) (*models.StatusResponse, error)
	AddPlayer(ctx context.Context, email, listID, playerID string) (*models.StatusResponse, error)
	RemovePlayer(ctx context.Context, listID, playerID string) (*models.StatusResponse, error)
	GetListPlayers(ctx context.Context, listID string) (*models.PlayersResponse, error)
}

// PlayerServicer defines the interface for player operations.
type PlayerServicer interface {
	GetPlayer(ctx context.Context, requester, playerID string) (*models.PlayerResponse, error)
	SavePlayer(ctx context.Context, requester string, data map[string]interface{}) (*models.StatusResponse, error)
	GetMyPlayers(ctx context.Context, requester string) (*models.PlayersResponse, error)
	GetListPlayersDetailed(ctx context.Context, requester, listID string) (*models.PlayersResponse, error)
	SearchPlayers(ctx context.Context, requester, query, excludeListID string) (*models.PlayersResponse, error)
	ImportPlayers(ctx context.Context, requester string, rows []map[string]interface{}) (*models.BatchResult, error)
	SyncPlayers(ctx context.Context, requester string) (*models.BatchResult, error)
}

// AnalysisServicer defines the interface for skill snapshot analysis.
type AnalysisServicer interface {
	Analyze(ctx context.Context, req *models.AnalysisRequest) (*advisor.Report, error)
}

// Ensure concrete types implement interfaces
var (
	_ UserServicer     = (*UserService)(nil)
	_ RoleServicer     = (*RoleService)(nil)
	_ TargetServicer   = (*TargetService)(nil)
	_ ListServicer     = (*ListService)(nil)
	_ PlayerServicer   = (*PlayerService)(nil)
	_ AnalysisServicer = (*AnalysisService)(nil)
)
