package mongo

import (
	"alcyxob/gym-tracker/internal/domain"
	"alcyxob/gym-tracker/internal/repository" // Import the repository interfaces package
	"context"
	"errors" // Import the standard errors package
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const profileCollectionName = "profiles"

// mongoProfileRepository implements repository.ProfileRepository using MongoDB.
// The record's version field carries the optimistic concurrency check: every
// write filters on {_id, version} and bumps version in the same update, so a
// concurrent writer that got there first makes the filter match nothing.
type mongoProfileRepository struct {
	collection *mongo.Collection
}

// NewMongoProfileRepository creates a new instance of mongoProfileRepository.
// It expects a connected *mongo.Database instance.
func NewMongoProfileRepository(db *mongo.Database) repository.ProfileRepository {
	return &mongoProfileRepository{
		collection: db.Collection(profileCollectionName),
	}
}

// Get retrieves the raw stored record for a user. No normalization happens
// here; legacy rows may come back with missing embedded keys.
func (r *mongoProfileRepository) Get(ctx context.Context, userID string) (*domain.ProfileRecord, error) {
	var record domain.ProfileRecord
	filter := bson.M{"_id": userID}

	err := r.collection.FindOne(ctx, filter).Decode(&record)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

// CreateIfAbsent inserts a fresh valid-shaped record unless one already
// exists. Implemented as an upsert with $setOnInsert so two concurrent
// creates for the same user still produce exactly one stored record.
func (r *mongoProfileRepository) CreateIfAbsent(ctx context.Context, userID string) (*domain.ProfileRecord, bool, error) {
	fresh := domain.NewProfileRecord(userID, time.Now().UTC())

	filter := bson.M{"_id": userID}
	update := bson.M{"$setOnInsert": fresh}
	opts := options.Update().SetUpsert(true)

	result, err := r.collection.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		// A duplicate key error can slip through when two upserts race on
		// the same _id; the record exists, so fall through to Get.
		if !mongo.IsDuplicateKeyError(err) {
			return nil, false, err
		}
	} else if result.UpsertedCount == 1 {
		return fresh, true, nil
	}

	existing, err := r.Get(ctx, userID)
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

// CompareAndSwap persists the record's mutable fields only if the stored
// version still equals expectedVersion. MatchedCount == 0 means either a
// concurrent writer won or the record is gone; both report false and the
// caller re-reads.
func (r *mongoProfileRepository) CompareAndSwap(ctx context.Context, userID string, expectedVersion int64, record *domain.ProfileRecord) (bool, error) {
	filter := bson.M{"_id": userID, "version": expectedVersion}

	set := bson.M{
		"workout_info": record.WorkoutInfo,
		"updatedAt":    record.UpdatedAt,
	}
	update := bson.M{
		"$set": set,
		"$inc": bson.M{"version": 1},
	}
	if record.DateOfBirth != nil {
		set["dob"] = record.DateOfBirth
	} else {
		update["$unset"] = bson.M{"dob": ""}
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, err
	}
	return result.MatchedCount == 1, nil
}

// Exists reports whether a record is stored for the user.
func (r *mongoProfileRepository) Exists(ctx context.Context, userID string) (bool, error) {
	filter := bson.M{"_id": userID}
	count, err := r.collection.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Delete removes the record entirely. Deleting an absent record is fine.
func (r *mongoProfileRepository) Delete(ctx context.Context, userID string) (bool, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": userID})
	if err != nil {
		return false, err
	}
	return result.DeletedCount == 1, nil
}
