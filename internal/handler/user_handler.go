package handler

import (
	"nt-data-lab/internal/models"
	"nt-data-lab/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler serves manage_users.
type UserHandler struct {
	service service.UserServicer
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service service.UserServicer) *UserHandler {
	return &UserHandler{service: service}
}

// Handle serves get_profile.
func (h *UserHandler) Handle(c *gin.Context, method models.Method) {
	var req models.ProfileRequest
	if !bind(c, &req) {
		return
	}

	profile, err := h.service.GetProfile(c.Request.Context(), req.Email)
	respond(c, profile, err)
}
