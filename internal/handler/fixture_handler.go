package handler

import (
	"errors"
	"net/http"

	apperrors "nt-data-lab/internal/errors"
	"nt-data-lab/internal/storage"
	"nt-data-lab/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// FixtureHandler serves the XML documents the sync client reads.
type FixtureHandler struct {
	store storage.FixtureStore
}

// NewFixtureHandler creates a new FixtureHandler.
func NewFixtureHandler(store storage.FixtureStore) *FixtureHandler {
	return &FixtureHandler{store: store}
}

type fixtureURI struct {
	Name string `uri:"name" binding:"required,fixturename"`
}

// Get godoc
// @Summary      Get a fixture
// @Description  Serve an XML fixture by file name
// @Tags         fixtures
// @Produce      xml
// @Param        name  path      string  true  "Fixture file name"  example(nationalplayers.xml)
// @Success      200   {string}  string  "XML document"
// @Failure      400   {object}  response.ErrorResponse
// @Failure      404   {object}  response.ErrorResponse
// @Router       /fixtures/{name} [get]
func (h *FixtureHandler) Get(c *gin.Context) {
	var uri fixtureURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, apperrors.ErrInvalidFixtureName.Error())
		return
	}

	body, err := h.store.Get(c.Request.Context(), uri.Name)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrFixtureNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, apperrors.ErrInvalidFixtureName):
			response.BadRequest(c, err.Error())
		default:
			log.Error().Err(err).Str("fixture", uri.Name).Msg("failed to read fixture")
			response.InternalError(c)
		}
		return
	}

	c.Data(http.StatusOK, "application/xml; charset=utf-8", body)
}
