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

const personalBestCollectionName = "personal_bests"

// mongoPersonalBestRepository implements repository.PersonalBestRepository using MongoDB.
type mongoPersonalBestRepository struct {
	collection *mongo.Collection
}

// NewMongoPersonalBestRepository creates a new instance of mongoPersonalBestRepository.
func NewMongoPersonalBestRepository(db *mongo.Database) repository.PersonalBestRepository {
	return &mongoPersonalBestRepository{
		collection: db.Collection(personalBestCollectionName),
	}
}

func (r *mongoPersonalBestRepository) Create(ctx context.Context, pb *domain.PersonalBest) (primitive.ObjectID, error) {
	if pb.ID.IsZero() {
		pb.ID = primitive.NewObjectID()
	}
	pb.CreatedAt = time.Now().UTC()

	result, err := r.collection.InsertOne(ctx, pb)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

func (r *mongoPersonalBestRepository) GetByID(ctx context.Context, userID string, id primitive.ObjectID) (*domain.PersonalBest, error) {
	var pb domain.PersonalBest
	filter := bson.M{"_id": id, "userId": userID}

	err := r.collection.FindOne(ctx, filter).Decode(&pb)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &pb, nil
}

// GetCurrentByUser retrieves the user's standing records, ordered by exercise.
func (r *mongoPersonalBestRepository) GetCurrentByUser(ctx context.Context, userID string) ([]domain.PersonalBest, error) {
	filter := bson.M{"userId": userID, "isCurrent": true}
	opts := options.Find().SetSort(bson.D{{Key: "exercise", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	records := []domain.PersonalBest{}
	if err = cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *mongoPersonalBestRepository) GetCurrentByExercise(ctx context.Context, userID string, exercise string) (*domain.PersonalBest, error) {
	var pb domain.PersonalBest
	filter := bson.M{"userId": userID, "exercise": exercise, "isCurrent": true}

	err := r.collection.FindOne(ctx, filter).Decode(&pb)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &pb, nil
}

func (r *mongoPersonalBestRepository) Update(ctx context.Context, pb *domain.PersonalBest) error {
	filter := bson.M{"_id": pb.ID, "userId": pb.UserID}
	update := bson.M{"$set": bson.M{
		"exercise":     pb.Exercise,
		"category":     pb.Category,
		"value":        pb.Value,
		"unit":         pb.Unit,
		"dateAchieved": pb.DateAchieved,
		"notes":        pb.Notes,
		"isCurrent":    pb.IsCurrent,
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

func (r *mongoPersonalBestRepository) Delete(ctx context.Context, userID string, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id, "userId": userID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsurePersonalBestIndexes creates necessary indexes for the personal_bests collection.
// Call this once during application startup.
func EnsurePersonalBestIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "userId", Value: 1}, {Key: "isCurrent", Value: 1}, {Key: "exercise", Value: 1}},
		},
	}

	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		log.Printf("WARN: Failed to create indexes for collection %s: %v", collection.Name(), err)
	}
}
