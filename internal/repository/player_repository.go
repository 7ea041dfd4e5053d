package repository

import (
	"context"
	"errors"
	"regexp"
	"time"

	apperrors "nt-data-lab/internal/errors"
	"nt-data-lab/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

//go:generate mockgen -destination=mocks/mock_player_repository.go -package=mocks nt-data-lab/internal/repository PlayerRepository

// PlayerSearch describes a league-scoped player search.
type PlayerSearch struct {
	LeagueIDs     []string
	Query         string
	ExcludeListID string
	Limit         int64
}

// PlayerRepository defines the interface for player data operations.
type PlayerRepository interface {
	FindByID(ctx context.Context, id string) (*models.Player, error)
	FindByIDs(ctx context.Context, ids []string) ([]models.Player, error)
	FindByListID(ctx context.Context, listID string) ([]models.Player, error)
	FindByOwner(ctx context.Context, owner string) ([]models.Player, error)
	Search(ctx context.Context, search PlayerSearch) ([]models.Player, error)
	Upsert(ctx context.Context, player *models.Player, owner string, at time.Time) error
	BulkUpsert(ctx context.Context, players []*models.Player, owner string, at time.Time) (int64, error)
	AddToList(ctx context.Context, playerID, listID string) error
	RemoveFromList(ctx context.Context, playerID, listID string) error
	RemoveListFromAll(ctx context.Context, listID string) (int64, error)
}

// playerRepository implements PlayerRepository using MongoDB.
type playerRepository struct {
	collection *mongo.Collection
}

// NewPlayerRepository creates a new PlayerRepository.
func NewPlayerRepository(db *mongo.Database) PlayerRepository {
	return &playerRepository{
		collection: db.Collection("players"),
	}
}

// FindByID retrieves a player by external id.
func (r *playerRepository) FindByID(ctx context.Context, id string) (*models.Player, error) {
	var player models.Player
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&player)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrPlayerNotFound
		}
		return nil, err
	}

	return &player, nil
}

// FindByIDs returns the stored players among ids. Unknown ids are left out.
func (r *playerRepository) FindByIDs(ctx context.Context, ids []string) ([]models.Player, error) {
	players := []models.Player{}
	for _, batch := range chunk(uniqueStrings(ids), MaxInQueryValues) {
		found, err := r.find(ctx, bson.M{"_id": bson.M{"$in": batch}}, nil)
		if err != nil {
			return nil, err
		}
		players = append(players, found...)
	}
	return players, nil
}

// FindByListID returns the players whose list_ids contain listID.
func (r *playerRepository) FindByListID(ctx context.Context, listID string) ([]models.Player, error) {
	return r.find(ctx, bson.M{models.FieldListIDs: listID}, nil)
}

// FindByOwner returns the players first entered by owner.
func (r *playerRepository) FindByOwner(ctx context.Context, owner string) ([]models.Player, error) {
	return r.find(ctx, bson.M{models.FieldOwnerEmail: owner}, nil)
}

// Search returns players of the given leagues matching the query on id or names.
// Both the string and numeric forms of each league id are matched.
func (r *playerRepository) Search(ctx context.Context, search PlayerSearch) ([]models.Player, error) {
	players := []models.Player{}

	var textFilter bson.M
	if search.Query != "" {
		pattern := primitiveRegex(search.Query)
		textFilter = bson.M{"$or": bson.A{
			bson.M{"_id": pattern},
			bson.M{"FirstName": pattern},
			bson.M{"LastName": pattern},
			bson.M{"NickName": pattern},
		}}
	}

	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	for _, batch := range chunk(leagueValues(search.LeagueIDs), MaxInQueryValues) {
		filter := bson.M{models.FieldNativeLeagueID: bson.M{"$in": batch}}
		if textFilter != nil {
			filter = bson.M{"$and": bson.A{filter, textFilter}}
		}
		if search.ExcludeListID != "" {
			filter[models.FieldListIDs] = bson.M{"$ne": search.ExcludeListID}
		}
		if search.Limit > 0 {
			remaining := search.Limit - int64(len(players))
			if remaining <= 0 {
				break
			}
			opts.SetLimit(remaining)
		}

		found, err := r.find(ctx, filter, opts)
		if err != nil {
			return nil, err
		}
		players = append(players, found...)
	}

	return players, nil
}

// Upsert merges the player into its stored document. owner is only recorded
// when the document is created.
func (r *playerRepository) Upsert(ctx context.Context, player *models.Player, owner string, at time.Time) error {
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": player.ID.String()}, playerUpdate(player, owner, at), options.Update().SetUpsert(true))
	return err
}

// BulkUpsert merges up to MaxBatchWrites players in one unordered bulk write.
func (r *playerRepository) BulkUpsert(ctx context.Context, players []*models.Player, owner string, at time.Time) (int64, error) {
	if len(players) == 0 {
		return 0, nil
	}
	if len(players) > MaxBatchWrites {
		return 0, errors.New("bulk upsert exceeds the batch write limit")
	}

	writes := make([]mongo.WriteModel, 0, len(players))
	for _, p := range players {
		writes = append(writes, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"_id": p.ID.String()}).
			SetUpdate(playerUpdate(p, owner, at)).
			SetUpsert(true))
	}

	result, err := r.collection.BulkWrite(ctx, writes, options.BulkWrite().SetOrdered(false))
	if err != nil {
		return 0, err
	}
	return result.UpsertedCount + result.MatchedCount, nil
}

// AddToList adds listID to the player's list_ids set.
func (r *playerRepository) AddToList(ctx context.Context, playerID, listID string) error {
	update := bson.M{"$addToSet": bson.M{models.FieldListIDs: listID}}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": playerID}, update)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return apperrors.ErrPlayerNotFound
	}

	return nil
}

// RemoveFromList removes listID from the player's list_ids set. Removing an
// absent id, or from an unknown player, is a no-op.
func (r *playerRepository) RemoveFromList(ctx context.Context, playerID, listID string) error {
	update := bson.M{"$pull": bson.M{models.FieldListIDs: listID}}
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": playerID}, update)
	return err
}

// RemoveListFromAll pulls listID from every player carrying it.
func (r *playerRepository) RemoveListFromAll(ctx context.Context, listID string) (int64, error) {
	update := bson.M{"$pull": bson.M{models.FieldListIDs: listID}}
	result, err := r.collection.UpdateMany(ctx, bson.M{models.FieldListIDs: listID}, update)
	if err != nil {
		return 0, err
	}
	return result.ModifiedCount, nil
}

func (r *playerRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Player, error) {
	if opts == nil {
		opts = options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	}
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var players []models.Player
	if err := cursor.All(ctx, &players); err != nil {
		return nil, err
	}

	if players == nil {
		players = []models.Player{}
	}

	return players, nil
}

func playerUpdate(p *models.Player, owner string, at time.Time) bson.M {
	set := bson.M{models.FieldUpdatedAt: at.UTC()}
	for k, v := range p.Attributes {
		set[k] = v
	}
	if !p.NativeLeagueID.IsZero() {
		set[models.FieldNativeLeagueID] = p.NativeLeagueID.String()
	}
	if !p.CountryID.IsZero() {
		set[models.FieldCountryID] = p.CountryID.String()
	}

	update := bson.M{"$set": set}
	if owner != "" {
		update["$setOnInsert"] = bson.M{models.FieldOwnerEmail: owner}
	}
	return update
}

func primitiveRegex(query string) bson.M {
	return bson.M{"$regex": regexp.QuoteMeta(query), "$options": "i"}
}
