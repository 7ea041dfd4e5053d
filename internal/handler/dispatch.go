package handler

import (
	"strings"

	apperrors "nt-data-lab/internal/errors"
	"nt-data-lab/internal/middleware"
	"nt-data-lab/internal/models"
	"nt-data-lab/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// ResourceHandler serves the methods of one action.
type ResourceHandler interface {
	Handle(c *gin.Context, method models.Method)
}

// Dispatcher routes POST / requests by their action and method.
type Dispatcher struct {
	analysis  *AnalysisHandler
	resources map[models.Action]ResourceHandler
}

// NewDispatcher creates a new Dispatcher.
func NewDispatcher(
	analysis *AnalysisHandler,
	users *UserHandler,
	targets *TargetHandler,
	roles *RoleHandler,
	lists *ListHandler,
	players *PlayerHandler,
) *Dispatcher {
	return &Dispatcher{
		analysis: analysis,
		resources: map[models.Action]ResourceHandler{
			models.ActionManageUsers:   users,
			models.ActionManageTargets: targets,
			models.ActionManageRoles:   roles,
			models.ActionManageLists:   lists,
			models.ActionManagePlayers: players,
		},
	}
}

// Dispatch godoc
// @Summary      Run an action
// @Description  Single entry point. The body's action and method select the operation;
// @Description  a body without action is a skill analysis (see advisor.Request).
// @Description  Actions: manage_users, manage_targets, manage_roles, manage_lists, manage_players.
// @Tags         actions
// @Accept       json
// @Produce      json
// @Param        request  body      models.Envelope  true  "Action, method and the method's fields"
// @Success      200      {object}  advisor.Report
// @Failure      400      {object}  response.ErrorResponse
// @Failure      401      {object}  response.ErrorResponse
// @Failure      500      {object}  response.ErrorResponse
// @Security     BearerAuth
// @Router       / [post]
func (d *Dispatcher) Dispatch(c *gin.Context) {
	var env models.Envelope
	if err := c.ShouldBindBodyWith(&env, binding.JSON); err != nil {
		response.BadRequest(c, apperrors.ErrMissingPayload.Error())
		return
	}

	if !env.Action.Valid() {
		response.BadRequest(c, apperrors.ErrUnknownAction.Error())
		return
	}

	if identity := middleware.GetIdentity(c); identity != "" {
		if claimed := env.Identity(); claimed != "" && !strings.EqualFold(claimed, identity) {
			response.BadRequest(c, apperrors.ErrIdentityMismatch.Error())
			return
		}
	}

	if env.Action == models.ActionAnalyze {
		d.analysis.Analyze(c)
		return
	}

	if !env.Action.Supports(env.Method) {
		response.BadRequest(c, apperrors.ErrUnknownMethod.Error())
		return
	}
	d.resources[env.Action].Handle(c, env.Method)
}

// bind decodes the cached request body into req. It writes the 400 response
// and returns false on failure.
func bind(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindBodyWith(req, binding.JSON); err != nil {
		response.BadRequest(c, err.Error())
		return false
	}
	return true
}

// respond writes result or maps err.
func respond(c *gin.Context, result interface{}, err error) {
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, result)
}
