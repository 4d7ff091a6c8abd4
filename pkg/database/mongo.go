package database

import (
	"context"
	"fmt"
	"time"

	"movie-graph/pkg/utils"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// InitMongo connects to MongoDB and returns the configured database handle.
// The client is shared by every request; close it with Disconnect on shutdown.
func InitMongo(config utils.MongoConfig) (*mongo.Database, error) {
	opts := options.Client().
		ApplyURI(config.URI).
		SetConnectTimeout(5 * time.Second)

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo failed: %w", err)
	}

	return client.Database(config.Database), nil
}

// EnsureMongoIndexes indexes movies.directorId, the field the
// director-to-movies lookup filters on.
func EnsureMongoIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("movies").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "directorId", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("create movies.directorId index: %w", err)
	}
	return nil
}
