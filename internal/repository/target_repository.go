package repository

import (
	"context"
	"errors"

	apperrors "nt-data-lab/internal/errors"
	"nt-data-lab/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

//go:generate mockgen -destination=mocks/mock_target_repository.go -package=mocks nt-data-lab/internal/repository TargetRepository

// TargetRepository defines the interface for user target data operations.
type TargetRepository interface {
	FindByEmail(ctx context.Context, email string) ([]models.Target, error)
	FindByID(ctx context.Context, id string) (*models.Target, error)
	Create(ctx context.Context, target *models.Target) error
	Save(ctx context.Context, target *models.Target) error
	Delete(ctx context.Context, id string) error
}

// targetRepository implements TargetRepository using MongoDB.
type targetRepository struct {
	collection *mongo.Collection
}

// NewTargetRepository creates a new TargetRepository.
func NewTargetRepository(db *mongo.Database) TargetRepository {
	return &targetRepository{
		collection: db.Collection("user_targets"),
	}
}

// FindByEmail returns the targets saved by a user, in insertion order.
func (r *targetRepository) FindByEmail(ctx context.Context, email string) ([]models.Target, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"user_email": email}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var targets []models.Target
	if err := cursor.All(ctx, &targets); err != nil {
		return nil, err
	}

	if targets == nil {
		targets = []models.Target{}
	}

	return targets, nil
}

// FindByID retrieves a target by id.
func (r *targetRepository) FindByID(ctx context.Context, id string) (*models.Target, error) {
	var target models.Target
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&target)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrTargetNotFound
		}
		return nil, err
	}

	return &target, nil
}

// Create inserts a target with a generated id.
func (r *targetRepository) Create(ctx context.Context, target *models.Target) error {
	target.ID = primitive.NewObjectID().Hex()

	_, err := r.collection.InsertOne(ctx, target)
	return err
}

// Save merges the target into the document with its id, creating it if needed.
// A target without a name drops any stored one.
func (r *targetRepository) Save(ctx context.Context, target *models.Target) error {
	set := bson.M{
		"user_email": target.UserEmail,
		"role":       target.Role,
		"variant":    target.Variant,
		"stats":      target.Stats,
	}
	update := bson.M{"$set": set}
	if target.Name != nil {
		set["name"] = *target.Name
	} else {
		update["$unset"] = bson.M{"name": ""}
	}

	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": target.ID}, update, options.Update().SetUpsert(true))
	return err
}

// Delete removes a target.
func (r *targetRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return apperrors.ErrTargetNotFound
	}

	return nil
}
