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

// RestTimerRepository is a map-backed repository.RestTimerRepository keyed
// by timer ID.
type RestTimerRepository struct {
	mu     sync.Mutex
	timers map[primitive.ObjectID]domain.RestTimer
}

// NewRestTimerRepository creates an empty in-memory rest timer repository.
func NewRestTimerRepository() *RestTimerRepository {
	return &RestTimerRepository{timers: make(map[primitive.ObjectID]domain.RestTimer)}
}

var _ repository.RestTimerRepository = (*RestTimerRepository)(nil)

func (r *RestTimerRepository) Create(ctx context.Context, timer *domain.RestTimer) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if timer.ID.IsZero() {
		timer.ID = primitive.NewObjectID()
	}
	now := time.Now().UTC()
	timer.CreatedAt = now
	timer.UpdatedAt = now
	r.timers[timer.ID] = *timer
	return timer.ID, nil
}

func (r *RestTimerRepository) GetByID(ctx context.Context, userID string, id primitive.ObjectID) (*domain.RestTimer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	timer, ok := r.timers[id]
	if !ok || timer.UserID != userID {
		return nil, repository.ErrNotFound
	}
	return &timer, nil
}

func (r *RestTimerRepository) GetByUser(ctx context.Context, userID string) ([]domain.RestTimer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := []domain.RestTimer{}
	for _, timer := range r.timers {
		if timer.UserID == userID {
			result = append(result, timer)
		}
	}
	// Default first, then by name, matching the Mongo sort.
	sort.Slice(result, func(i, j int) bool {
		if result[i].IsDefault != result[j].IsDefault {
			return result[i].IsDefault
		}
		return result[i].Name < result[j].Name
	})
	return result, nil
}

func (r *RestTimerRepository) Update(ctx context.Context, timer *domain.RestTimer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.timers[timer.ID]
	if !ok || stored.UserID != timer.UserID {
		return repository.ErrNotFound
	}
	timer.CreatedAt = stored.CreatedAt
	timer.UpdatedAt = time.Now().UTC()
	r.timers[timer.ID] = *timer
	return nil
}

func (r *RestTimerRepository) ClearDefault(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, timer := range r.timers {
		if timer.UserID == userID && timer.IsDefault {
			timer.IsDefault = false
			r.timers[id] = timer
		}
	}
	return nil
}

func (r *RestTimerRepository) Delete(ctx context.Context, userID string, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	timer, ok := r.timers[id]
	if !ok || timer.UserID != userID {
		return repository.ErrNotFound
	}
	delete(r.timers, id)
	return nil
}
