package handler

import (
	apperrors "nt-data-lab/internal/errors"
	"nt-data-lab/internal/models"
	"nt-data-lab/internal/service"

	"github.com/gin-gonic/gin"
)

// ListHandler serves manage_lists.
type ListHandler struct {
	service service.ListServicer
}

// NewListHandler creates a new ListHandler.
func NewListHandler(service service.ListServicer) *ListHandler {
	return &ListHandler{service: service}
}

// Handle serves the list methods.
func (h *ListHandler) Handle(c *gin.Context, method models.Method) {
	var req models.ListRequest
	if !bind(c, &req) {
		return
	}
	ctx := c.Request.Context()
	playerID := req.PlayerID.String()

	switch method {
	case models.MethodGetLists:
		resp, err := h.service.GetLists(ctx, req.Email)
		respond(c, resp, err)
	case models.MethodCreateList:
		resp, err := h.service.CreateList(ctx, req.Email, req.Name, req.TeamID)
		respond(c, resp, err)
	case models.MethodDeleteList:
		resp, err := h.service.DeleteList(ctx, req.Email, req.ListID)
		respond(c, resp, err)
	case models.MethodAddPlayer:
		resp, err := h.service.AddPlayer(ctx, req.Email, req.ListID, playerID)
		respond(c, resp, err)
	case models.MethodRemovePlayer:
		resp, err := h.service.RemovePlayer(ctx, req.ListID, playerID)
		respond(c, resp, err)
	case models.MethodGetListPlayers:
		resp, err := h.service.GetListPlayers(ctx, req.ListID)
		respond(c, resp, err)
	default:
		respondError(c, apperrors.ErrUnknownMethod)
	}
}
