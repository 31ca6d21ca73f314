package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mkamara9/herdsman/internal/domain/models"
)

// Repository defines the interface for snapshot storage.
type Repository interface {
	SaveSnapshot(ctx context.Context, snapshot models.BreedingSnapshot) error
	LatestSnapshot(ctx context.Context, farmID string) (*models.BreedingSnapshot, error)
}

// MongoDBRepository implements the Repository interface for MongoDB.
type MongoDBRepository struct {
	client   *mongo.Client
	dbName   string
	collName string
}

// NewMongoDBRepository creates a new MongoDB repository.
func NewMongoDBRepository(ctx context.Context, uri string, dbName string) (*MongoDBRepository, error) {
	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	// Ping the database to verify connection
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &MongoDBRepository{
		client:   client,
		dbName:   dbName,
		collName: "breeding_snapshots",
	}, nil
}

// SaveSnapshot stores a daily breeding snapshot.
func (r *MongoDBRepository) SaveSnapshot(ctx context.Context, snapshot models.BreedingSnapshot) error {
	collection := r.client.Database(r.dbName).Collection(r.collName)
	if _, err := collection.InsertOne(ctx, snapshot); err != nil {
		return fmt.Errorf("failed to insert breeding snapshot: %w", err)
	}
	return nil
}

// LatestSnapshot returns the most recent snapshot stored for a farm, or nil
// when none exists yet.
func (r *MongoDBRepository) LatestSnapshot(ctx context.Context, farmID string) (*models.BreedingSnapshot, error) {
	collection := r.client.Database(r.dbName).Collection(r.collName)

	opts := options.FindOne().SetSort(bson.D{{Key: "date", Value: -1}})
	result := collection.FindOne(ctx, bson.M{"farm_id": farmID}, opts)

	snapshot := new(models.BreedingSnapshot)
	if err := result.Decode(snapshot); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to decode breeding snapshot: %w", err)
	}

	return snapshot, nil
}

// Close closes the MongoDB connection.
func (r *MongoDBRepository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}
