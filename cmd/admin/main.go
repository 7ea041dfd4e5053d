// Command admin runs maintenance tasks against the NT Data Lab store.
//
// Usage:
//
//	admin index
//	admin seed --fixtures ./fixtures
//	admin token --email coach@example.com
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"nt-data-lab/internal/config"
	"nt-data-lab/internal/database"
	"nt-data-lab/internal/logger"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func main() {
	logger.Setup(os.Getenv("LOG_LEVEL"), "console")

	root := &cobra.Command{
		Use:           "admin",
		Short:         "NT Data Lab maintenance CLI",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(indexCmd())
	root.AddCommand(seedCmd())
	root.AddCommand(tokenCmd())

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// runWithStore loads the configuration, connects to MongoDB and runs fn.
func runWithStore(fn func(ctx context.Context, cfg *config.Config, db *database.MongoDB) error) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg := config.Load()

	mongoDB, err := database.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		return err
	}
	defer mongoDB.Close()

	return fn(ctx, cfg, mongoDB)
}
