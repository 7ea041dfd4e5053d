// Package mocks provides mock implementations of service interfaces for testing.
package mocks

import (
	"context"

	"nt-data-lab/internal/advisor"
	"nt-data-lab/internal/models"
)

// MockUserService is a mock implementation of UserServicer.
type MockUserService struct {
	GetProfileFunc func(ctx context.Context, email string) (*models.Profile, error)
}

func (m *MockUserService) GetProfile(ctx context.Context, email string) (*models.Profile, error) {
	if m.GetProfileFunc != nil {
		return m.GetProfileFunc(ctx, email)
	}
	return nil, nil
}

// MockRoleService is a mock implementation of RoleServicer.
type MockRoleService struct {
	GetRoleFunc        func(ctx context.Context, email string) (*models.RoleResponse, error)
	SetRoleFunc        func(ctx context.Context, req *models.RoleRequest) (*models.SetRoleResponse, error)
	CreateTeamFunc     func(ctx context.Context, requester, name, teamType string, nativeLeagueID models.ExternalID) (*models.CreateTeamResult, error)
	GetCoachTeamsFunc  func(ctx context.Context, requester string) (*models.TeamsResponse, error)
	GetTeamMembersFunc func(ctx context.Context, requester string) (*models.MembersResponse, error)
	GetContextFunc     func(ctx context.Context, requester string) (*models.AccessContext, error)
}

func (m *MockRoleService) GetRole(ctx context.Context, email string) (*models.RoleResponse, error) {
	if m.GetRoleFunc != nil {
		return m.GetRoleFunc(ctx, email)
	}
	return nil, nil
}

func (m *MockRoleService) SetRole(ctx context.Context, req *models.RoleRequest) (*models.SetRoleResponse, error) {
	if m.SetRoleFunc != nil {
		return m.SetRoleFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockRoleService) CreateTeam(ctx context.Context, requester, name, teamType string, nativeLeagueID models.ExternalID) (*models.CreateTeamResult, error) {
	if m.CreateTeamFunc != nil {
		return m.CreateTeamFunc(ctx, requester, name, teamType, nativeLeagueID)
	}
	return nil, nil
}

func (m *MockRoleService) GetCoachTeams(ctx context.Context, requester string) (*models.TeamsResponse, error) {
	if m.GetCoachTeamsFunc != nil {
		return m.GetCoachTeamsFunc(ctx, requester)
	}
	return nil, nil
}

func (m *MockRoleService) GetTeamMembers(ctx context.Context, requester string) (*models.MembersResponse, error) {
	if m.GetTeamMembersFunc != nil {
		return m.GetTeamMembersFunc(ctx, requester)
	}
	return nil, nil
}

func (m *MockRoleService) GetContext(ctx context.Context, requester string) (*models.AccessContext, error) {
	if m.GetContextFunc != nil {
		return m.GetContextFunc(ctx, requester)
	}
	return nil, nil
}

// MockTargetService is a mock implementation of TargetServicer.
type MockTargetService struct {
	GetTargetsFunc   func(ctx context.Context, email string) (*models.TargetsResponse, error)
	SaveTargetFunc   func(ctx context.Context, email string, input *models.TargetInput) (*models.StatusResponse, error)
	DeleteTargetFunc func(ctx context.Context, email, targetID string) (*models.StatusResponse, error)
}

func (m *MockTargetService) GetTargets(ctx context.Context, email string) (*models.TargetsResponse, error) {
	if m.GetTargetsFunc != nil {
		return m.GetTargetsFunc(ctx, email)
	}
	return nil, nil
}

func (m *MockTargetService) SaveTarget(ctx context.Context, email string, input *models.TargetInput) (*models.StatusResponse, error) {
	if m.SaveTargetFunc != nil {
		return m.SaveTargetFunc(ctx, email, input)
	}
	return nil, nil
}

func (m *MockTargetService) DeleteTarget(ctx context.Context, email, targetID string) (*models.StatusResponse, error) {
	if m.DeleteTargetFunc != nil {
		return m.DeleteTargetFunc(ctx, email, targetID)
	}
	return nil, nil
}

// MockListService is a mock implementation of ListServicer.
type MockListService struct {
	GetListsFunc       func(ctx context.Context, email string) (*models.ListsResponse, error)
	CreateListFunc     func(ctx context.Context, email, name, teamID string) (*models.List, error)
	DeleteListFunc     func(ctx context.Context, email, listID string) (*models.StatusResponse, error)
	AddPlayerFunc      func(ctx context.Context, email, listID, playerID string) (*models.StatusResponse, error)
	RemovePlayerFunc   func(ctx context.Context, listID, playerID string) (*models.StatusResponse, error)
	GetListPlayersFunc func(ctx context.Context, listID string) (*models.PlayersResponse, error)
}

func (m *MockListService) GetLists(ctx context.Context, email string) (*models.ListsResponse, error) {
	if m.GetListsFunc != nil {
		return m.GetListsFunc(ctx, email)
	}
	return nil, nil
}

func (m *MockListService) CreateList(ctx context.Context, email, name, teamID string) (*models.List, error) {
	if m.CreateListFunc != nil {
		return m.CreateListFunc(ctx, email, name, teamID)
	}
	return nil, nil
}

func (m *MockListService) DeleteList(ctx context.Context, email, listID string) (*models.StatusResponse, error) {
	if m.DeleteListFunc != nil {
		return m.DeleteListFunc(ctx, email, listID)
	}
	return nil, nil
}

func (m *MockListService) AddPlayer(ctx context.Context, email, listID, playerID string) (*models.StatusResponse, error) {
	if m.AddPlayerFunc != nil {
		return m.AddPlayerFunc(ctx, email, listID, playerID)
	}
	return nil, nil
}

func (m *MockListService) RemovePlayer(ctx context.Context, listID, playerID string) (*models.StatusResponse, error) {
	if m.RemovePlayerFunc != nil {
		return m.RemovePlayerFunc(ctx, listID, playerID)
	}
	return nil, nil
}

func (m *MockListService) GetListPlayers(ctx context.Context, listID string) (*models.PlayersResponse, error) {
	if m.GetListPlayersFunc != nil {
		return m.GetListPlayersFunc(ctx, listID)
	}
	return nil, nil
}

// MockPlayerService is a mock implementation of PlayerServicer.
type MockPlayerService struct {
	GetPlayerFunc              func(ctx context.Context, requester, playerID string) (*models.PlayerResponse, error)
	SavePlayerFunc             func(ctx context.Context, requester string, data map[string]interface{}) (*models.StatusResponse, error)
	GetMyPlayersFunc           func(ctx context.Context, requester string) (*models.PlayersResponse, error)
	GetListPlayersDetailedFunc func(ctx context.Context, requester, listID string) (*models.PlayersResponse, error)
	SearchPlayersFunc          func(ctx context.Context, requester, query, excludeListID string) (*models.PlayersResponse, error)
	ImportPlayersFunc          func(ctx context.Context, requester string, rows []map[string]interface{}) (*models.BatchResult, error)
	SyncPlayersFunc            func(ctx context.Context, requester string) (*models.BatchResult, error)
}

func (m *MockPlayerService) GetPlayer(ctx context.Context, requester, playerID string) (*models.PlayerResponse, error) {
	if m.GetPlayerFunc != nil {
		return m.GetPlayerFunc(ctx, requester, playerID)
	}
	return nil, nil
}

func (m *MockPlayerService) SavePlayer(ctx context.Context, requester string, data map[string]interface{}) (*models.StatusResponse, error) {
	if m.SavePlayerFunc != nil {
		return m.SavePlayerFunc(ctx, requester, data)
	}
	return nil, nil
}

func (m *MockPlayerService) GetMyPlayers(ctx context.Context, requester string) (*models.PlayersResponse, error) {
	if m.GetMyPlayersFunc != nil {
		return m.GetMyPlayersFunc(ctx, requester)
	}
	return nil, nil
}

func (m *MockPlayerService) GetListPlayersDetailed(ctx context.Context, requester, listID string) (*models.PlayersResponse, error) {
	if m.GetListPlayersDetailedFunc != nil {
		return m.GetListPlayersDetailedFunc(ctx, requester, listID)
	}
	return nil, nil
}

func (m *MockPlayerService) SearchPlayers(ctx context.Context, requester, query, excludeListID string) (*models.PlayersResponse, error) {
	if m.SearchPlayersFunc != nil {
		return m.SearchPlayersFunc(ctx, requester, query, excludeListID)
	}
	return nil, nil
}

func (m *MockPlayerService) ImportPlayers(ctx context.Context, requester string, rows []map[string]interface{}) (*models.BatchResult, error) {
	if m.ImportPlayersFunc != nil {
		return m.ImportPlayersFunc(ctx, requester, rows)
	}
	return nil, nil
}

func (m *MockPlayerService) SyncPlayers(ctx context.Context, requester string) (*models.BatchResult, error) {
	if m.SyncPlayersFunc != nil {
		return m.SyncPlayersFunc(ctx, requester)
	}
	return nil, nil
}

// MockAnalysisService is a mock implementation of AnalysisServicer.
type MockAnalysisService struct {
	AnalyzeFunc func(ctx context.Context, req *models.AnalysisRequest) (*advisor.Report, error)
}

func (m *MockAnalysisService) Analyze(ctx context.Context, req *models.AnalysisRequest) (*advisor.Report, error) {
	if m.AnalyzeFunc != nil {
		return m.AnalyzeFunc(ctx, req)
	}
	return nil, nil
}
