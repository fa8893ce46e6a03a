package memory

import (
	"alcyxob/gym-tracker/internal/domain"
	"alcyxob/gym-tracker/internal/repository"
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ScheduledWorkoutRepository is a map-backed repository.ScheduledWorkoutRepository
// keyed by workout ID.
type ScheduledWorkoutRepository struct {
	mu       sync.Mutex
	workouts map[primitive.ObjectID]domain.ScheduledWorkout
}

// NewScheduledWorkoutRepository creates an empty in-memory scheduled workout repository.
func NewScheduledWorkoutRepository() *ScheduledWorkoutRepository {
	return &ScheduledWorkoutRepository{workouts: make(map[primitive.ObjectID]domain.ScheduledWorkout)}
}

var _ repository.ScheduledWorkoutRepository = (*ScheduledWorkoutRepository)(nil)

func (r *ScheduledWorkoutRepository) Create(ctx context.Context, workout *domain.ScheduledWorkout) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if workout.ID.IsZero() {
		workout.ID = primitive.NewObjectID()
	}
	now := time.Now().UTC()
	workout.CreatedAt = now
	workout.UpdatedAt = now
	r.workouts[workout.ID] = *workout
	return workout.ID, nil
}

func (r *ScheduledWorkoutRepository) GetByID(ctx context.Context, userID string, id primitive.ObjectID) (*domain.ScheduledWorkout, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	workout, ok := r.workouts[id]
	if !ok || workout.UserID != userID {
		return nil, repository.ErrNotFound
	}
	return &workout, nil
}

func (r *ScheduledWorkoutRepository) GetByUser(ctx context.Context, userID string) ([]domain.ScheduledWorkout, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := []domain.ScheduledWorkout{}
	for _, workout := range r.workouts {
		if workout.UserID == userID {
			result = append(result, workout)
		}
	}
	// Earliest date first, matching the Mongo sort.
	sort.Slice(result, func(i, j int) bool { return result[i].Date < result[j].Date })
	return result, nil
}

func (r *ScheduledWorkoutRepository) Update(ctx context.Context, workout *domain.ScheduledWorkout) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.workouts[workout.ID]
	if !ok || stored.UserID != workout.UserID {
		return repository.ErrNotFound
	}
	workout.CreatedAt = stored.CreatedAt
	workout.UpdatedAt = time.Now().UTC()
	r.workouts[workout.ID] = *workout
	return nil
}

func (r *ScheduledWorkoutRepository) Delete(ctx context.Context, userID string, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	workout, ok := r.workouts[id]
	if !ok || workout.UserID != userID {
		return repository.ErrNotFound
	}
	delete(r.workouts, id)
	return nil
}
