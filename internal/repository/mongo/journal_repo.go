package mongo

import (
	"alcyxob/gym-tracker/internal/domain"
	"alcyxob/gym-tracker/internal/repository"
	"context"
	"errors"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const journalCollectionName = "journal_entries"

// mongoJournalRepository implements repository.JournalRepository using MongoDB.
type mongoJournalRepository struct {
	collection *mongo.Collection
}

// NewMongoJournalRepository creates a new instance of mongoJournalRepository.
func NewMongoJournalRepository(db *mongo.Database) repository.JournalRepository {
	return &mongoJournalRepository{
		collection: db.Collection(journalCollectionName),
	}
}

func (r *mongoJournalRepository) Create(ctx context.Context, entry *domain.JournalEntry) (primitive.ObjectID, error) {
	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	now := time.Now().UTC()
	entry.CreatedAt = now
	entry.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, entry)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

func (r *mongoJournalRepository) GetByID(ctx context.Context, userID string, id primitive.ObjectID) (*domain.JournalEntry, error) {
	var entry domain.JournalEntry
	filter := bson.M{"_id": id, "userId": userID}

	err := r.collection.FindOne(ctx, filter).Decode(&entry)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

// GetByUser retrieves all journal entries for a user, newest first.
func (r *mongoJournalRepository) GetByUser(ctx context.Context, userID string) ([]domain.JournalEntry, error) {
	filter := bson.M{"userId": userID}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	entries := []domain.JournalEntry{}
	if err = cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *mongoJournalRepository) Update(ctx context.Context, entry *domain.JournalEntry) error {
	entry.UpdatedAt = time.Now().UTC()
	filter := bson.M{"_id": entry.ID, "userId": entry.UserID}
	update := bson.M{"$set": bson.M{
		"title":     entry.Title,
		"content":   entry.Content,
		"date":      entry.Date,
		"mood":      entry.Mood,
		"updatedAt": entry.UpdatedAt,
	}}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *mongoJournalRepository) Delete(ctx context.Context, userID string, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id, "userId": userID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureJournalIndexes creates necessary indexes for the journal_entries collection.
// Call this once during application startup.
func EnsureJournalIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: -1}},
		},
		{
			// One entry per user per day per title
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: 1}, {Key: "title", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		log.Printf("WARN: Failed to create indexes for collection %s: %v", collection.Name(), err)
	}
}
