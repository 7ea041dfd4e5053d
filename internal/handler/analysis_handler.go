package handler

import (
	"nt-data-lab/internal/models"
	"nt-data-lab/internal/service"

	"github.com/gin-gonic/gin"
)

// AnalysisHandler serves requests without an action.
type AnalysisHandler struct {
	service service.AnalysisServicer
}

// NewAnalysisHandler creates a new AnalysisHandler.
func NewAnalysisHandler(service service.AnalysisServicer) *AnalysisHandler {
	return &AnalysisHandler{service: service}
}

// Analyze evaluates the skill snapshot in the body.
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	var req models.AnalysisRequest
	if !bind(c, &req) {
		return
	}

	report, err := h.service.Analyze(c.Request.Context(), &req)
	respond(c, report, err)
}
