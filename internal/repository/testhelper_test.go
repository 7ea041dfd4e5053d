package repository

import (
	"context"
	"testing"

	"nt-data-lab/internal/database"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// TestDB is a throwaway MongoDB database backed by a container.
type TestDB struct {
	Container *mongodb.MongoDBContainer
	Client    *mongo.Client
	Database  *mongo.Database
}

// SetupTestDB starts a MongoDB container and registers its teardown.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping container-backed repository test in short mode")
	}

	ctx := context.Background()

	container, err := mongodb.Run(ctx, "mongo:7.0")
	require.NoError(t, err, "start MongoDB container")

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err, "container connection string")

	client, err := mongo.Connect(ctx, database.ClientOptions(uri))
	require.NoError(t, err, "connect to MongoDB")
	require.NoError(t, client.Ping(ctx, nil), "ping MongoDB")

	tdb := &TestDB{
		Container: container,
		Client:    client,
		Database:  client.Database("test_" + uuid.NewString()[:8]),
	}
	t.Cleanup(func() { tdb.teardown() })
	return tdb
}

func (tdb *TestDB) teardown() {
	ctx := context.Background()
	_ = tdb.Database.Drop(ctx)
	_ = tdb.Client.Disconnect(ctx)
	_ = tdb.Container.Terminate(ctx)
}

// ClearCollections removes all documents from the named collections.
func (tdb *TestDB) ClearCollections(t *testing.T, names ...string) {
	t.Helper()

	for _, name := range names {
		_, err := tdb.Database.Collection(name).DeleteMany(context.Background(), bson.M{})
		require.NoError(t, err, "clear collection %s", name)
	}
}

// InsertRaw writes documents as-is, bypassing the repositories.
func (tdb *TestDB) InsertRaw(t *testing.T, collection string, docs ...interface{}) {
	t.Helper()

	_, err := tdb.Database.Collection(collection).InsertMany(context.Background(), docs)
	require.NoError(t, err, "insert into %s", collection)
}
