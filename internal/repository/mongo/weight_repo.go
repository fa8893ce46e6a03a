package mongo

import (
	"alcyxob/gym-tracker/internal/domain"
	"alcyxob/gym-tracker/internal/repository"
	"context"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const weightCollectionName = "weights"

// mongoWeightRepository implements repository.WeightRepository using MongoDB.
type mongoWeightRepository struct {
	collection *mongo.Collection
}

// NewMongoWeightRepository creates a new instance of mongoWeightRepository.
func NewMongoWeightRepository(db *mongo.Database) repository.WeightRepository {
	return &mongoWeightRepository{
		collection: db.Collection(weightCollectionName),
	}
}

// Upsert stores the entry, replacing any existing entry for the same user
// and date. The unique index on (userId, date) backs the one-entry-per-day
// rule.
func (r *mongoWeightRepository) Upsert(ctx context.Context, entry *domain.WeightEntry) error {
	filter := bson.M{"userId": entry.UserID, "date": entry.Date}
	update := bson.M{
		"$set": bson.M{
			"weight": entry.Weight,
			"notes":  entry.Notes,
		},
		"$setOnInsert": bson.M{
			"userId":    entry.UserID,
			"date":      entry.Date,
			"createdAt": entry.CreatedAt,
		},
	}
	opts := options.Update().SetUpsert(true)

	_, err := r.collection.UpdateOne(ctx, filter, update, opts)
	return err
}

// GetByUser retrieves all weight entries for a user, newest first.
func (r *mongoWeightRepository) GetByUser(ctx context.Context, userID string) ([]domain.WeightEntry, error) {
	filter := bson.M{"userId": userID}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx) // Ensure cursor is closed

	entries := []domain.WeightEntry{}
	if err = cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Delete removes the entry for the given user and date.
func (r *mongoWeightRepository) Delete(ctx context.Context, userID string, date string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"userId": userID, "date": date})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureWeightIndexes creates necessary indexes for the weights collection.
// Call this once during application startup.
func EnsureWeightIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: -1}},
			Options: options.Index().SetUnique(true), // One entry per user per day
		},
	}

	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		log.Printf("WARN: Failed to create indexes for collection %s: %v", collection.Name(), err)
	}
}
