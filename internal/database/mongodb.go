// Package database connects to the MongoDB document store.
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	connectTimeout    = 10 * time.Second
	disconnectTimeout = 5 * time.Second
)

// MongoDB is a connected client and its selected database.
type MongoDB struct {
	Client   *mongo.Client
	Database *mongo.Database
}

// ClientOptions returns the options shared by every client of the store.
// Nested documents decode into bson.M so flattened player attributes stay maps.
func ClientOptions(uri string) *options.ClientOptions {
	return options.Client().
		ApplyURI(uri).
		SetServerSelectionTimeout(connectTimeout).
		SetBSONOptions(&options.BSONOptions{DefaultDocumentM: true})
}

// Connect opens a client and verifies the primary is reachable.
func Connect(ctx context.Context, uri, dbName string) (*MongoDB, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, ClientOptions(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	log.Info().Str("database", dbName).Msg("connected to MongoDB")
	return &MongoDB{Client: client, Database: client.Database(dbName)}, nil
}

// Close disconnects the client. Errors are logged.
func (m *MongoDB) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), disconnectTimeout)
	defer cancel()

	if err := m.Client.Disconnect(ctx); err != nil {
		log.Error().Err(err).Msg("error disconnecting from MongoDB")
		return
	}
	log.Info().Msg("disconnected from MongoDB")
}
