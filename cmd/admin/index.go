package main

import (
	"context"
	"fmt"

	"nt-data-lab/internal/config"
	"nt-data-lab/internal/database"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type indexSpec struct {
	collection string
	keys       bson.D
}

// indexes covers every lookup the repositories run besides _id.
var indexes = []indexSpec{
	{"teams", bson.D{{Key: "owner", Value: 1}}},
	{"memberships", bson.D{{Key: "email", Value: 1}}},
	{"memberships", bson.D{{Key: "team_id", Value: 1}}},
	{"lists", bson.D{{Key: "team_id", Value: 1}}},
	{"players", bson.D{{Key: "list_ids", Value: 1}}},
	{"players", bson.D{{Key: "owner_email", Value: 1}}},
	{"players", bson.D{{Key: "NativeLeagueID", Value: 1}}},
	{"user_targets", bson.D{{Key: "user_email", Value: 1}}},
}

func indexCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "index",
		Short: "Create MongoDB indexes",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithStore(func(ctx context.Context, _ *config.Config, db *database.MongoDB) error {
				return createIndexes(ctx, db.Database)
			})
		},
	}
}

func createIndexes(ctx context.Context, db *mongo.Database) error {
	failed := 0
	for _, spec := range indexes {
		name, err := db.Collection(spec.collection).Indexes().CreateOne(ctx, mongo.IndexModel{Keys: spec.keys})
		if err != nil {
			failed++
			log.Warn().Err(err).Str("collection", spec.collection).Msg("failed to create index")
			continue
		}
		log.Info().Str("collection", spec.collection).Str("index", name).Msg("index created")
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d indexes failed", failed, len(indexes))
	}
	return nil
}
