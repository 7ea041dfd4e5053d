//go:build api

// Package testserver provides a fully wired test server for API integration tests.
package testserver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"time"

	"nt-data-lab/internal/advisor"
	"nt-data-lab/internal/authz"
	"nt-data-lab/internal/cache"
	"nt-data-lab/internal/handler"
	"nt-data-lab/internal/hattrick"
	"nt-data-lab/internal/repository"
	"nt-data-lab/internal/router"
	"nt-data-lab/internal/service"
	"nt-data-lab/pkg/auth"
	"nt-data-lab/test/api/testdb"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
)

const (
	// TestJWTSecret is the identity token secret used in tests.
	TestJWTSecret = "test-secret-key-for-api-tests"
	// TestJWTExpiry is the identity token lifetime used in tests.
	TestJWTExpiry = 15 * time.Minute
	// TestDBName is the database name used in tests.
	TestDBName = "test_api"
)

// TestServer holds all dependencies for API integration tests.
type TestServer struct {
	// Router is the Gin engine for making HTTP requests.
	Router *gin.Engine
	// HTTP serves Router on a real port so the sync client can read the
	// fixture endpoint over the network.
	HTTP *httptest.Server

	// Containers
	MongoDB *testdb.MongoContainer
	Redis   *testdb.RedisContainer
	MinIO   *testdb.MinIOContainer

	// Repositories (for direct database access in tests)
	UserRepo       repository.UserRepository
	TeamRepo       repository.TeamRepository
	MembershipRepo repository.MembershipRepository
	ListRepo       repository.ListRepository
	PlayerRepo     repository.PlayerRepository
	TargetRepo     repository.TargetRepository

	// Auth
	Tokens *auth.JWTManager
}

// New creates a new test server with all dependencies wired up.
func New(ctx context.Context) (*TestServer, error) {
	gin.SetMode(gin.TestMode)

	mongoDB, err := testdb.SetupMongoDB(ctx, TestDBName)
	if err != nil {
		return nil, err
	}

	redisContainer, err := testdb.SetupRedis(ctx)
	if err != nil {
		_ = mongoDB.Cleanup(ctx)
		return nil, err
	}

	minioContainer, err := testdb.SetupMinIO(ctx)
	if err != nil {
		_ = mongoDB.Cleanup(ctx)
		_ = redisContainer.Cleanup(ctx)
		return nil, err
	}

	redisCache, err := cache.NewRedis(ctx, redisContainer.URI)
	if err != nil {
		_ = mongoDB.Cleanup(ctx)
		_ = redisContainer.Cleanup(ctx)
		_ = minioContainer.Cleanup(ctx)
		return nil, err
	}

	// The router is only known after the services exist, and the sync
	// source needs the server URL first.
	var engine http.Handler
	httpServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		engine.ServeHTTP(w, r)
	}))

	clock := clockwork.NewRealClock()
	tokens := auth.NewJWTManager(TestJWTSecret, TestJWTExpiry)

	// Repository layer
	userRepo := repository.NewUserRepository(mongoDB.Database)
	teamRepo := repository.NewTeamRepository(mongoDB.Database)
	membershipRepo := repository.NewMembershipRepository(mongoDB.Database)
	listRepo := repository.NewListRepository(mongoDB.Database)
	playerRepo := repository.NewPlayerRepository(mongoDB.Database)
	targetRepo := repository.NewTargetRepository(mongoDB.Database)

	resolver := authz.NewLocalResolver(teamRepo, membershipRepo, clock)
	source := hattrick.NewClient(httpServer.URL+"/fixtures/", 5*time.Second, 0)

	// Service layer
	userService := service.NewUserService(userRepo, resolver, redisCache, time.Minute)
	roleService := service.NewRoleService(teamRepo, membershipRepo, userRepo, resolver, redisCache, clock)
	targetService := service.NewTargetService(targetRepo)
	listService := service.NewListService(listRepo, playerRepo, resolver)
	playerService := service.NewPlayerService(playerRepo, listRepo, resolver, source, clock)
	analysisService := service.NewAnalysisService(advisor.New(advisor.DefaultTable(), clock), targetRepo)

	r := router.Setup(&router.Config{
		Dispatcher: handler.NewDispatcher(
			handler.NewAnalysisHandler(analysisService),
			handler.NewUserHandler(userService),
			handler.NewTargetHandler(targetService),
			handler.NewRoleHandler(roleService),
			handler.NewListHandler(listService),
			handler.NewPlayerHandler(playerService),
		),
		FixtureHandler: handler.NewFixtureHandler(minioContainer.Store),
		TokenManager:   tokens,
	})
	engine = r

	return &TestServer{
		Router:         r,
		HTTP:           httpServer,
		MongoDB:        mongoDB,
		Redis:          redisContainer,
		MinIO:          minioContainer,
		UserRepo:       userRepo,
		TeamRepo:       teamRepo,
		MembershipRepo: membershipRepo,
		ListRepo:       listRepo,
		PlayerRepo:     playerRepo,
		TargetRepo:     targetRepo,
		Tokens:         tokens,
	}, nil
}

// Cleanup stops the HTTP server and terminates all containers.
func (ts *TestServer) Cleanup(ctx context.Context) {
	if ts.HTTP != nil {
		ts.HTTP.Close()
	}
	if ts.MinIO != nil {
		_ = ts.MinIO.Cleanup(ctx)
	}
	if ts.Redis != nil {
		_ = ts.Redis.Cleanup(ctx)
	}
	if ts.MongoDB != nil {
		_ = ts.MongoDB.Cleanup(ctx)
	}
}
