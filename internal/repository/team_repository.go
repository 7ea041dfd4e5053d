package repository

import (
	"context"
	"errors"
	"time"

	apperrors "nt-data-lab/internal/errors"
	"nt-data-lab/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

//go:generate mockgen -destination=mocks/mock_team_repository.go -package=mocks nt-data-lab/internal/repository TeamRepository

// TeamRepository defines the interface for team data operations.
type TeamRepository interface {
	Create(ctx context.Context, team *models.Team) error
	FindByID(ctx context.Context, id string) (*models.Team, error)
	FindByOwner(ctx context.Context, owner string) ([]models.Team, error)
	FindByIDs(ctx context.Context, ids []string) ([]models.Team, error)
}

// teamRepository implements TeamRepository using MongoDB.
type teamRepository struct {
	collection *mongo.Collection
}

// NewTeamRepository creates a new TeamRepository.
func NewTeamRepository(db *mongo.Database) TeamRepository {
	return &teamRepository{
		collection: db.Collection("teams"),
	}
}

// Create inserts a team under its deterministic id.
// Returns ErrTeamAlreadyExists when the id is taken.
func (r *teamRepository) Create(ctx context.Context, team *models.Team) error {
	team.ID = models.TeamKey(team.Type, team.Name)
	if team.CreatedAt.IsZero() {
		team.CreatedAt = time.Now().UTC()
	}

	_, err := r.collection.InsertOne(ctx, team)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrTeamAlreadyExists
		}
		return err
	}
	return nil
}

// FindByID retrieves a team by id.
func (r *teamRepository) FindByID(ctx context.Context, id string) (*models.Team, error) {
	var team models.Team
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&team)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, err
	}

	return &team, nil
}

// FindByOwner returns the teams owned by a coach, oldest first.
func (r *teamRepository) FindByOwner(ctx context.Context, owner string) ([]models.Team, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"owner": owner}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var teams []models.Team
	if err := cursor.All(ctx, &teams); err != nil {
		return nil, err
	}

	if teams == nil {
		teams = []models.Team{}
	}

	return teams, nil
}

// FindByIDs returns the teams with the given ids. Missing ids are ignored.
func (r *teamRepository) FindByIDs(ctx context.Context, ids []string) ([]models.Team, error) {
	teams := []models.Team{}
	for _, batch := range chunk(uniqueStrings(ids), MaxInQueryValues) {
		cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": batch}})
		if err != nil {
			return nil, err
		}

		var found []models.Team
		err = cursor.All(ctx, &found)
		cursor.Close(ctx)
		if err != nil {
			return nil, err
		}
		teams = append(teams, found...)
	}

	return teams, nil
}
