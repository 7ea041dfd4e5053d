package handler

import (
	apperrors "nt-data-lab/internal/errors"
	"nt-data-lab/internal/models"
	"nt-data-lab/internal/service"

	"github.com/gin-gonic/gin"
)

// RoleHandler serves manage_roles.
type RoleHandler struct {
	service service.RoleServicer
}

// NewRoleHandler creates a new RoleHandler.
func NewRoleHandler(service service.RoleServicer) *RoleHandler {
	return &RoleHandler{service: service}
}

// Handle serves the team and role methods. Every method needs requesterEmail.
func (h *RoleHandler) Handle(c *gin.Context, method models.Method) {
	var req models.RoleRequest
	if !bind(c, &req) {
		return
	}
	ctx := c.Request.Context()

	switch method {
	case models.MethodGetRole:
		resp, err := h.service.GetRole(ctx, roleSubject(&req))
		respond(c, resp, err)
	case models.MethodSetRole:
		resp, err := h.service.SetRole(ctx, &req)
		respond(c, resp, err)
	case models.MethodCreateTeam:
		resp, err := h.service.CreateTeam(ctx, req.RequesterEmail, req.TeamName, req.TeamType, req.NativeLeagueID)
		respond(c, resp, err)
	case models.MethodGetAll:
		resp, err := h.service.GetTeamMembers(ctx, req.RequesterEmail)
		respond(c, resp, err)
	case models.MethodGetCoachTeams:
		resp, err := h.service.GetCoachTeams(ctx, req.RequesterEmail)
		respond(c, resp, err)
	case models.MethodGetContext:
		resp, err := h.service.GetContext(ctx, req.RequesterEmail)
		respond(c, resp, err)
	default:
		respondError(c, apperrors.ErrUnknownMethod)
	}
}

// roleSubject is the user get_role reports on: the target when given,
// otherwise the requester.
func roleSubject(req *models.RoleRequest) string {
	switch {
	case req.TargetEmail != "":
		return req.TargetEmail
	case req.Email != "":
		return req.Email
	default:
		return req.RequesterEmail
	}
}
