package repository

import (
	"context"
	"errors"
	"time"

	apperrors "nt-data-lab/internal/errors"
	"nt-data-lab/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

//go:generate mockgen -destination=mocks/mock_list_repository.go -package=mocks nt-data-lab/internal/repository ListRepository

// ListRepository defines the interface for list data operations.
type ListRepository interface {
	Create(ctx context.Context, list *models.List) error
	FindByID(ctx context.Context, id string) (*models.List, error)
	FindByTeamIDs(ctx context.Context, teamIDs []string) ([]models.List, error)
	Delete(ctx context.Context, id string) error
}

// listRepository implements ListRepository using MongoDB.
type listRepository struct {
	collection *mongo.Collection
}

// NewListRepository creates a new ListRepository.
func NewListRepository(db *mongo.Database) ListRepository {
	return &listRepository{
		collection: db.Collection("lists"),
	}
}

// Create inserts a new list with a generated id.
func (r *listRepository) Create(ctx context.Context, list *models.List) error {
	list.ID = primitive.NewObjectID().Hex()
	list.CreatedAt = time.Now().UTC()

	_, err := r.collection.InsertOne(ctx, list)
	return err
}

// FindByID retrieves a list by id.
func (r *listRepository) FindByID(ctx context.Context, id string) (*models.List, error) {
	var list models.List
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&list)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrListNotFound
		}
		return nil, err
	}

	return &list, nil
}

// FindByTeamIDs returns the lists scoped to the given teams, newest first.
func (r *listRepository) FindByTeamIDs(ctx context.Context, teamIDs []string) ([]models.List, error) {
	lists := []models.List{}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	for _, batch := range chunk(uniqueStrings(teamIDs), MaxInQueryValues) {
		cursor, err := r.collection.Find(ctx, bson.M{"team_id": bson.M{"$in": batch}}, opts)
		if err != nil {
			return nil, err
		}

		var found []models.List
		err = cursor.All(ctx, &found)
		cursor.Close(ctx)
		if err != nil {
			return nil, err
		}
		lists = append(lists, found...)
	}

	return lists, nil
}

// Delete removes a list.
func (r *listRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return apperrors.ErrListNotFound
	}

	return nil
}
