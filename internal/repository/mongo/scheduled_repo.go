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

const scheduledCollectionName = "scheduled_workouts"

// mongoScheduledWorkoutRepository implements repository.ScheduledWorkoutRepository using MongoDB.
type mongoScheduledWorkoutRepository struct {
	collection *mongo.Collection
}

// NewMongoScheduledWorkoutRepository creates a new instance of mongoScheduledWorkoutRepository.
func NewMongoScheduledWorkoutRepository(db *mongo.Database) repository.ScheduledWorkoutRepository {
	return &mongoScheduledWorkoutRepository{
		collection: db.Collection(scheduledCollectionName),
	}
}

func (r *mongoScheduledWorkoutRepository) Create(ctx context.Context, workout *domain.ScheduledWorkout) (primitive.ObjectID, error) {
	if workout.ID.IsZero() {
		workout.ID = primitive.NewObjectID()
	}
	now := time.Now().UTC()
	workout.CreatedAt = now
	workout.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, workout)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

func (r *mongoScheduledWorkoutRepository) GetByID(ctx context.Context, userID string, id primitive.ObjectID) (*domain.ScheduledWorkout, error) {
	var workout domain.ScheduledWorkout
	filter := bson.M{"_id": id, "userId": userID}

	err := r.collection.FindOne(ctx, filter).Decode(&workout)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &workout, nil
}

// GetByUser retrieves all scheduled workouts for a user, earliest date first.
func (r *mongoScheduledWorkoutRepository) GetByUser(ctx context.Context, userID string) ([]domain.ScheduledWorkout, error) {
	filter := bson.M{"userId": userID}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	workouts := []domain.ScheduledWorkout{}
	if err = cursor.All(ctx, &workouts); err != nil {
		return nil, err
	}
	return workouts, nil
}

func (r *mongoScheduledWorkoutRepository) Update(ctx context.Context, workout *domain.ScheduledWorkout) error {
	workout.UpdatedAt = time.Now().UTC()
	filter := bson.M{"_id": workout.ID, "userId": workout.UserID}
	update := bson.M{"$set": bson.M{
		"title":       workout.Title,
		"description": workout.Description,
		"date":        workout.Date,
		"status":      workout.Status,
		"notes":       workout.Notes,
		"updatedAt":   workout.UpdatedAt,
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

func (r *mongoScheduledWorkoutRepository) Delete(ctx context.Context, userID string, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id, "userId": userID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureScheduledWorkoutIndexes creates necessary indexes for the scheduled_workouts collection.
// Call this once during application startup.
func EnsureScheduledWorkoutIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: 1}},
		},
		{
			// One plan per user per day per title
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: 1}, {Key: "title", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		log.Printf("WARN: Failed to create indexes for collection %s: %v", collection.Name(), err)
	}
}
