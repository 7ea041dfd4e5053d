package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nt-data-lab/internal/advisor"
	"nt-data-lab/internal/authz"
	"nt-data-lab/internal/cache"
	"nt-data-lab/internal/config"
	"nt-data-lab/internal/database"
	"nt-data-lab/internal/handler"
	"nt-data-lab/internal/hattrick"
	"nt-data-lab/internal/logger"
	"nt-data-lab/internal/repository"
	"nt-data-lab/internal/router"
	"nt-data-lab/internal/service"
	"nt-data-lab/internal/storage"
	"nt-data-lab/internal/validator"
	"nt-data-lab/pkg/auth"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

// @title           NT Data Lab API
// @version         1.0
// @description     Backend for national team scouting: teams, roles, player lists, targets and skill analysis.

// @contact.name    API Support
// @contact.email   support@example.com

// @host            localhost:8080
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter your bearer token in the format: Bearer {token}

func main() {
	// Load configuration
	cfg := config.Load()
	logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().Msg("configuration loaded")

	// Register custom validators
	validator.RegisterCustomValidators()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	clock := clockwork.NewRealClock()

	// Database
	mongoDB, err := database.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}
	defer mongoDB.Close()

	// Redis profile cache, optional
	var profileCache cache.Cache
	redisCache, err := cache.NewRedis(ctx, cfg.RedisURI)
	if err != nil {
		log.Warn().Err(err).Msg("profile cache disabled")
	} else {
		defer redisCache.Close()
		profileCache = redisCache
	}

	// Fixture storage
	fixtures, err := newFixtureStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up fixture storage")
	}

	// Skill targets
	table := advisor.DefaultTable()
	if cfg.TargetsFile != "" {
		table, err = advisor.LoadTable(cfg.TargetsFile)
		if err != nil {
			log.Fatal().Err(err).Str("file", cfg.TargetsFile).Msg("failed to load targets")
		}
	}

	// Identity tokens
	var tokens auth.TokenManager
	if cfg.JWTSecret != "" {
		tokens = auth.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiry)
	} else {
		log.Warn().Msg("JWT_SECRET not set, requests are not authenticated")
	}

	// Repository layer
	userRepo := repository.NewUserRepository(mongoDB.Database)
	teamRepo := repository.NewTeamRepository(mongoDB.Database)
	membershipRepo := repository.NewMembershipRepository(mongoDB.Database)
	listRepo := repository.NewListRepository(mongoDB.Database)
	playerRepo := repository.NewPlayerRepository(mongoDB.Database)
	targetRepo := repository.NewTargetRepository(mongoDB.Database)

	// Authorization
	resolver := authz.NewLocalResolver(teamRepo, membershipRepo, clock)

	// Sync source
	source := hattrick.NewClient(cfg.SourceBaseURL, cfg.SourceTimeout, cfg.SourceRateLimit)

	// Service layer
	userService := service.NewUserService(userRepo, resolver, profileCache, cfg.ProfileCacheTTL)
	roleService := service.NewRoleService(teamRepo, membershipRepo, userRepo, resolver, profileCache, clock)
	targetService := service.NewTargetService(targetRepo)
	listService := service.NewListService(listRepo, playerRepo, resolver)
	playerService := service.NewPlayerService(playerRepo, listRepo, resolver, source, clock)
	analysisService := service.NewAnalysisService(advisor.New(table, clock), targetRepo)

	// Handler layer
	dispatcher := handler.NewDispatcher(
		handler.NewAnalysisHandler(analysisService),
		handler.NewUserHandler(userService),
		handler.NewTargetHandler(targetService),
		handler.NewRoleHandler(roleService),
		handler.NewListHandler(listService),
		handler.NewPlayerHandler(playerService),
	)

	// Router
	r := router.Setup(&router.Config{
		Dispatcher:     dispatcher,
		FixtureHandler: handler.NewFixtureHandler(fixtures),
		TokenManager:   tokens,
		AuthRequired:   cfg.AuthRequired,
	})

	// Create HTTP server for graceful shutdown support
	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	log.Info().Msg("shutdown signal received")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("server shutdown complete")
}

func newFixtureStore(ctx context.Context, cfg *config.Config) (storage.FixtureStore, error) {
	if cfg.FixtureBackend == config.FixtureBackendS3 {
		return storage.NewS3Store(ctx, storage.S3Options{
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			Bucket:    cfg.S3Bucket,
			UseSSL:    cfg.S3UseSSL,
		})
	}
	log.Info().Str("dir", cfg.FixtureDir).Msg("using local fixture store")
	return storage.NewDirStore(cfg.FixtureDir), nil
}
