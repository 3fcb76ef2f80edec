// Package mongo implements record.Store on MongoDB.
//
// Users live in the "users" collection, file metadata in "files". Documents
// are keyed by ObjectID; the domain layer only ever sees the hex form, and a
// hex string that does not parse is treated as a missing record.
package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/depotlabs/filedepot/internal/logger"
)

const (
	usersCollection = "users"
	filesCollection = "files"
)

// MongoRecordStore implements record.Store backed by a MongoDB database.
//
// Thread Safety: the underlying mongo.Client is safe for concurrent use; the
// store adds no state of its own.
type MongoRecordStore struct {
	client *mongo.Client
	db     *mongo.Database
}

// MongoRecordStoreConfig contains connection settings for the record store.
type MongoRecordStoreConfig struct {
	// Host and Port locate the MongoDB server.
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`

	// Database is the database name holding the users and files collections.
	Database string `mapstructure:"database"`
}

// NewMongoRecordStore connects to MongoDB, verifies the connection with a
// ping, and ensures the unique email index on the users collection.
//
// The returned store is ready for concurrent use. Callers own the lifecycle
// and must Close the store on shutdown.
func NewMongoRecordStore(ctx context.Context, config MongoRecordStoreConfig) (*MongoRecordStore, error) {
	uri := fmt.Sprintf("mongodb://%s:%d", config.Host, config.Port)

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB at %s: %w", uri, err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping MongoDB at %s: %w", uri, err)
	}

	store := &MongoRecordStore{
		client: client,
		db:     client.Database(config.Database),
	}

	if err := store.ensureIndexes(ctx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	logger.Info("Connected to MongoDB at %s (database %q)", uri, config.Database)

	return store, nil
}

// ensureIndexes creates the unique index on users.email. Registration relies
// on this to reject duplicate emails under concurrency.
func (s *MongoRecordStore) ensureIndexes(ctx context.Context) error {
	_, err := s.db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create unique email index: %w", err)
	}
	return nil
}

// Ping probes the MongoDB connection.
func (s *MongoRecordStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

// Close disconnects from MongoDB. The store must not be used afterwards.
func (s *MongoRecordStore) Close(ctx context.Context) error {
	if err := s.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect from MongoDB: %w", err)
	}
	return nil
}
