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

const restTimerCollectionName = "rest_timers"

// mongoRestTimerRepository implements repository.RestTimerRepository using MongoDB.
type mongoRestTimerRepository struct {
	collection *mongo.Collection
}

// NewMongoRestTimerRepository creates a new instance of mongoRestTimerRepository.
func NewMongoRestTimerRepository(db *mongo.Database) repository.RestTimerRepository {
	return &mongoRestTimerRepository{
		collection: db.Collection(restTimerCollectionName),
	}
}

func (r *mongoRestTimerRepository) Create(ctx context.Context, timer *domain.RestTimer) (primitive.ObjectID, error) {
	if timer.ID.IsZero() {
		timer.ID = primitive.NewObjectID()
	}
	now := time.Now().UTC()
	timer.CreatedAt = now
	timer.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, timer)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

func (r *mongoRestTimerRepository) GetByID(ctx context.Context, userID string, id primitive.ObjectID) (*domain.RestTimer, error) {
	var timer domain.RestTimer
	filter := bson.M{"_id": id, "userId": userID}

	err := r.collection.FindOne(ctx, filter).Decode(&timer)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &timer, nil
}

// GetByUser retrieves all rest timers for a user, the default one first.
func (r *mongoRestTimerRepository) GetByUser(ctx context.Context, userID string) ([]domain.RestTimer, error) {
	filter := bson.M{"userId": userID}
	opts := options.Find().SetSort(bson.D{{Key: "isDefault", Value: -1}, {Key: "name", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	timers := []domain.RestTimer{}
	if err = cursor.All(ctx, &timers); err != nil {
		return nil, err
	}
	return timers, nil
}

func (r *mongoRestTimerRepository) Update(ctx context.Context, timer *domain.RestTimer) error {
	timer.UpdatedAt = time.Now().UTC()
	filter := bson.M{"_id": timer.ID, "userId": timer.UserID}
	update := bson.M{"$set": bson.M{
		"name":      timer.Name,
		"duration":  timer.Duration,
		"isDefault": timer.IsDefault,
		"updatedAt": timer.UpdatedAt,
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

// ClearDefault unmarks any timer currently flagged as the user's default.
func (r *mongoRestTimerRepository) ClearDefault(ctx context.Context, userID string) error {
	filter := bson.M{"userId": userID, "isDefault": true}
	update := bson.M{"$set": bson.M{"isDefault": false}}

	_, err := r.collection.UpdateMany(ctx, filter, update)
	return err
}

func (r *mongoRestTimerRepository) Delete(ctx context.Context, userID string, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id, "userId": userID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureRestTimerIndexes creates necessary indexes for the rest_timers collection.
// Call this once during application startup.
func EnsureRestTimerIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			// One timer per user per name
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "name", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		log.Printf("WARN: Failed to create indexes for collection %s: %v", collection.Name(), err)
	}
}
