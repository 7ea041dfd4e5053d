//go:build api

// Package api contains API integration tests for NT Data Lab.
// These tests run against real MongoDB, Redis, and MinIO instances using testcontainers.
//
// Run tests with:
//
//	go test -tags=api -v ./test/api/...
package api

import (
	"context"
	"os"
	"testing"

	"nt-data-lab/internal/validator"
	"nt-data-lab/test/api/testserver"

	"github.com/rs/zerolog/log"
)

// testServer is the global test server instance shared across all tests.
var testServer *testserver.TestServer

// fixtureDir holds the sample XML documents of the sync source.
const fixtureDir = "../../fixtures"

// TestMain sets up the test server and runs all tests.
func TestMain(m *testing.M) {
	validator.RegisterCustomValidators()

	ctx := context.Background()

	log.Info().Msg("starting test containers")
	var err error
	testServer, err = testserver.New(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create test server")
	}

	code := m.Run()

	log.Info().Msg("stopping test containers")
	testServer.Cleanup(ctx)

	os.Exit(code)
}
