package main

import (
	"context"
	"fmt"

	"nt-data-lab/internal/authz"
	"nt-data-lab/internal/config"
	"nt-data-lab/internal/database"
	"nt-data-lab/internal/models"
	"nt-data-lab/internal/repository"
	"nt-data-lab/internal/service"
	"nt-data-lab/internal/storage"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	seedCoach     = "coach@example.com"
	seedAssistant = "assistant@example.com"
	seedScout     = "scout@example.com"
)

var seedCollections = []string{"users", "teams", "memberships", "lists", "players", "user_targets"}

var seedPlayers = []map[string]interface{}{
	{"PlayerID": 412345678, "FirstName": "Marco", "LastName": "Rossi", "Age": 19, "NativeLeagueID": 4, "PlaymakerSkill": 12, "PassingSkill": 8},
	{"PlayerID": 412345679, "FirstName": "Luca", "LastName": "Bianchi", "Age": 20, "NativeLeagueID": 4, "ScorerSkill": 11, "PassingSkill": 9},
	{"PlayerID": 412345680, "FirstName": "Andrea", "LastName": "Conti", "Age": 18, "NativeLeagueID": "4", "DefenderSkill": 10},
	{"PlayerID": 398765432, "FirstName": "Pierre", "LastName": "Martin", "Age": 21, "NativeLeagueID": 5, "WingerSkill": 11},
}

func seedCmd() *cobra.Command {
	var fixtureDir string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Reset the store with sample teams, staff, lists and players",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithStore(func(ctx context.Context, cfg *config.Config, db *database.MongoDB) error {
				if err := clearCollections(ctx, db.Database); err != nil {
					return err
				}
				if err := seedData(ctx, db.Database); err != nil {
					return err
				}
				if cfg.FixtureBackend != config.FixtureBackendS3 {
					return nil
				}
				if fixtureDir == "" {
					fixtureDir = cfg.FixtureDir
				}
				return uploadFixtures(ctx, cfg, fixtureDir)
			})
		},
	}
	cmd.Flags().StringVar(&fixtureDir, "fixtures", "", "Directory of XML fixtures to upload (defaults to FIXTURE_DIR)")
	return cmd
}

func clearCollections(ctx context.Context, db *mongo.Database) error {
	for _, name := range seedCollections {
		if _, err := db.Collection(name).DeleteMany(ctx, bson.M{}); err != nil {
			return fmt.Errorf("clear %s: %w", name, err)
		}
	}
	return nil
}

// seedData goes through the services so the seeded records follow the same
// rules as the API.
func seedData(ctx context.Context, db *mongo.Database) error {
	clock := clockwork.NewRealClock()
	teamRepo := repository.NewTeamRepository(db)
	membershipRepo := repository.NewMembershipRepository(db)
	userRepo := repository.NewUserRepository(db)
	listRepo := repository.NewListRepository(db)
	playerRepo := repository.NewPlayerRepository(db)
	resolver := authz.NewLocalResolver(teamRepo, membershipRepo, clock)

	roles := service.NewRoleService(teamRepo, membershipRepo, userRepo, resolver, nil, clock)
	lists := service.NewListService(listRepo, playerRepo, resolver)
	players := service.NewPlayerService(playerRepo, listRepo, resolver, nil, clock)

	for _, team := range []struct{ name, teamType string }{{"Italia", "NT"}, {"Italia", "U21"}} {
		result, err := roles.CreateTeam(ctx, seedCoach, team.name, team.teamType, "4")
		if err != nil {
			return fmt.Errorf("create team %s %s: %w", team.teamType, team.name, err)
		}
		log.Info().Str("team", result.Team.ID).Str("status", result.Status).Msg("seeded team")
	}

	staff := []*models.RoleRequest{
		{RequesterEmail: seedCoach, TargetEmail: seedAssistant, NewRole: models.RoleAssistant, TeamID: "NT_Italia"},
		{RequesterEmail: seedCoach, TargetEmail: seedScout, NewRole: models.RoleScout, TeamID: "U21_Italia"},
	}
	for _, req := range staff {
		if _, err := roles.SetRole(ctx, req); err != nil {
			return fmt.Errorf("assign %s: %w", req.TargetEmail, err)
		}
		log.Info().Str("email", req.TargetEmail).Str("role", req.NewRole).Str("team", req.TeamID).Msg("seeded staff")
	}

	imported, err := players.ImportPlayers(ctx, seedCoach, seedPlayers)
	if err != nil {
		return fmt.Errorf("import players: %w", err)
	}
	log.Info().Int("count", imported.Count).Int("skipped", imported.Skipped).Msg("seeded players")

	list, err := lists.CreateList(ctx, seedScout, "U21 prospects", "U21_Italia")
	if err != nil {
		return fmt.Errorf("create list: %w", err)
	}
	for _, id := range []string{"412345678", "412345680"} {
		resp, err := lists.AddPlayer(ctx, seedScout, list.ID, id)
		if err != nil {
			return fmt.Errorf("add player %s: %w", id, err)
		}
		log.Info().Str("list", list.ID).Str("player", id).Str("status", resp.Status).Msg("seeded list entry")
	}
	return nil
}

func uploadFixtures(ctx context.Context, cfg *config.Config, dir string) error {
	local := storage.NewDirStore(dir)
	remote, err := storage.NewS3Store(ctx, storage.S3Options{
		Endpoint:  cfg.S3Endpoint,
		AccessKey: cfg.S3AccessKey,
		SecretKey: cfg.S3SecretKey,
		Bucket:    cfg.S3Bucket,
		UseSSL:    cfg.S3UseSSL,
	})
	if err != nil {
		return err
	}

	names, err := local.List(ctx)
	if err != nil {
		return err
	}
	for _, name := range names {
		body, err := local.Get(ctx, name)
		if err != nil {
			return err
		}
		if err := remote.Put(ctx, name, body); err != nil {
			return fmt.Errorf("upload %s: %w", name, err)
		}
		log.Info().Str("fixture", name).Int("bytes", len(body)).Msg("uploaded fixture")
	}
	return nil
}
