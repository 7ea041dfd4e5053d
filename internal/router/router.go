// Package router sets up HTTP routes for the API.
package router

import (
	"net/http"

	_ "nt-data-lab/swagger" // Import generated swagger docs

	"nt-data-lab/internal/handler"
	"nt-data-lab/internal/middleware"
	"nt-data-lab/pkg/auth"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Config holds all dependencies needed to set up routes.
type Config struct {
	Dispatcher     *handler.Dispatcher
	FixtureHandler *handler.FixtureHandler
	// TokenManager validates bearer tokens. Nil disables identity checks.
	TokenManager auth.TokenManager
	AuthRequired bool
}

// Setup creates and configures the Gin router.
func Setup(cfg *Config) *gin.Engine {
	r := gin.New()

	// Global middleware. CORS runs first so preflights never reach a handler.
	r.Use(middleware.CORS())
	r.Use(middleware.RequestLogger())
	r.Use(gin.Recovery())

	// Swagger docs at /docs
	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Sync source documents
	r.GET("/fixtures/:name", cfg.FixtureHandler.Get)

	// Action endpoint
	actions := []gin.HandlerFunc{}
	if cfg.TokenManager != nil {
		actions = append(actions, middleware.Identity(cfg.TokenManager, cfg.AuthRequired))
	}
	actions = append(actions, cfg.Dispatcher.Dispatch)
	r.POST("/", actions...)

	return r
}
