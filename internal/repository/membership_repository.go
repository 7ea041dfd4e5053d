package repository

import (
	"context"

	"nt-data-lab/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

//go:generate mockgen -destination=mocks/mock_membership_repository.go -package=mocks nt-data-lab/internal/repository MembershipRepository

// MembershipRepository defines the interface for membership data operations.
type MembershipRepository interface {
	FindByEmail(ctx context.Context, email string) ([]models.Membership, error)
	FindByTeamIDs(ctx context.Context, teamIDs []string) ([]models.Membership, error)
	Upsert(ctx context.Context, membership *models.Membership) error
}

// membershipRepository implements MembershipRepository using MongoDB.
type membershipRepository struct {
	collection *mongo.Collection
}

// NewMembershipRepository creates a new MembershipRepository.
func NewMembershipRepository(db *mongo.Database) MembershipRepository {
	return &membershipRepository{
		collection: db.Collection("memberships"),
	}
}

// FindByEmail returns every membership held by email, oldest update first.
func (r *membershipRepository) FindByEmail(ctx context.Context, email string) ([]models.Membership, error) {
	opts := options.Find().SetSort(bson.D{{Key: "updated_at", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"email": email}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var memberships []models.Membership
	if err := cursor.All(ctx, &memberships); err != nil {
		return nil, err
	}

	if memberships == nil {
		memberships = []models.Membership{}
	}

	return memberships, nil
}

// FindByTeamIDs returns the memberships of the given teams.
func (r *membershipRepository) FindByTeamIDs(ctx context.Context, teamIDs []string) ([]models.Membership, error) {
	memberships := []models.Membership{}
	for _, batch := range chunk(uniqueStrings(teamIDs), MaxInQueryValues) {
		cursor, err := r.collection.Find(ctx, bson.M{"team_id": bson.M{"$in": batch}})
		if err != nil {
			return nil, err
		}

		var found []models.Membership
		err = cursor.All(ctx, &found)
		cursor.Close(ctx)
		if err != nil {
			return nil, err
		}
		memberships = append(memberships, found...)
	}

	return memberships, nil
}

// Upsert writes the membership under its deterministic key. Last write wins.
func (r *membershipRepository) Upsert(ctx context.Context, membership *models.Membership) error {
	membership.ID = models.MembershipKey(membership.Email, membership.TeamID)

	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": membership.ID}, membership, options.Replace().SetUpsert(true))
	return err
}
