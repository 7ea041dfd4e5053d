package handler

import (
	"nt-data-lab/internal/models"
	"nt-data-lab/internal/service"

	"github.com/gin-gonic/gin"
)

// TargetHandler serves manage_targets.
type TargetHandler struct {
	service service.TargetServicer
}

// NewTargetHandler creates a new TargetHandler.
func NewTargetHandler(service service.TargetServicer) *TargetHandler {
	return &TargetHandler{service: service}
}

// Handle serves get, save and delete.
func (h *TargetHandler) Handle(c *gin.Context, method models.Method) {
	var req models.TargetRequest
	if !bind(c, &req) {
		return
	}
	ctx := c.Request.Context()

	switch method {
	case models.MethodSaveTarget:
		resp, err := h.service.SaveTarget(ctx, req.Email, req.Target)
		respond(c, resp, err)
	case models.MethodDeleteTarget:
		resp, err := h.service.DeleteTarget(ctx, req.Email, req.TargetID)
		respond(c, resp, err)
	default:
		resp, err := h.service.GetTargets(ctx, req.Email)
		respond(c, resp, err)
	}
}
