package handler

import (
	apperrors "nt-data-lab/internal/errors"
	"nt-data-lab/internal/models"
	"nt-data-lab/internal/service"

	"github.com/gin-gonic/gin"
)

// PlayerHandler serves manage_players.
type PlayerHandler struct {
	service service.PlayerServicer
}

// NewPlayerHandler creates a new PlayerHandler.
func NewPlayerHandler(service service.PlayerServicer) *PlayerHandler {
	return &PlayerHandler{service: service}
}

// Handle serves the player methods.
func (h *PlayerHandler) Handle(c *gin.Context, method models.Method) {
	var req models.PlayerRequest
	if !bind(c, &req) {
		return
	}
	ctx := c.Request.Context()
	requester := req.RequesterEmail

	switch method {
	case models.MethodGetPlayer:
		resp, err := h.service.GetPlayer(ctx, requester, req.PlayerID.String())
		respond(c, resp, err)
	case models.MethodSavePlayer:
		resp, err := h.service.SavePlayer(ctx, requester, req.PlayerData)
		respond(c, resp, err)
	case models.MethodGetMyPlayers:
		resp, err := h.service.GetMyPlayers(ctx, requester)
		respond(c, resp, err)
	case models.MethodGetListPlayersDetailed:
		resp, err := h.service.GetListPlayersDetailed(ctx, requester, req.ListID)
		respond(c, resp, err)
	case models.MethodSearchPlayers:
		resp, err := h.service.SearchPlayers(ctx, requester, req.Query, req.ListID)
		respond(c, resp, err)
	case models.MethodImportPlayers:
		resp, err := h.service.ImportPlayers(ctx, requester, req.Players)
		respond(c, resp, err)
	case models.MethodSyncPlayers:
		resp, err := h.service.SyncPlayers(ctx, requester)
		respond(c, resp, err)
	default:
		respondError(c, apperrors.ErrUnknownMethod)
	}
}
