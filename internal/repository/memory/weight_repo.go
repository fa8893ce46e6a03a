package memory

import (
	"alcyxob/gym-tracker/internal/domain"
	"alcyxob/gym-tracker/internal/repository"
	"context"
	"sort"
	"sync"
)

// WeightRepository is a map-backed repository.WeightRepository keyed by
// user, then by date.
type WeightRepository struct {
	mu      sync.Mutex
	entries map[string]map[string]domain.WeightEntry
}

// NewWeightRepository creates an empty in-memory weight repository.
func NewWeightRepository() *WeightRepository {
	return &WeightRepository{entries: make(map[string]map[string]domain.WeightEntry)}
}

var _ repository.WeightRepository = (*WeightRepository)(nil)

func (r *WeightRepository) Upsert(ctx context.Context, entry *domain.WeightEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	byDate, ok := r.entries[entry.UserID]
	if !ok {
		byDate = make(map[string]domain.WeightEntry)
		r.entries[entry.UserID] = byDate
	}
	if existing, ok := byDate[entry.Date]; ok {
		entry.CreatedAt = existing.CreatedAt
	}
	byDate[entry.Date] = *entry
	return nil
}

func (r *WeightRepository) GetByUser(ctx context.Context, userID string) ([]domain.WeightEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := []domain.WeightEntry{}
	for _, entry := range r.entries[userID] {
		result = append(result, entry)
	}
	// Newest first, matching the Mongo sort.
	sort.Slice(result, func(i, j int) bool { return result[i].Date > result[j].Date })
	return result, nil
}

func (r *WeightRepository) Delete(ctx context.Context, userID string, date string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	byDate, ok := r.entries[userID]
	if !ok {
		return repository.ErrNotFound
	}
	if _, ok := byDate[date]; !ok {
		return repository.ErrNotFound
	}
	delete(byDate, date)
	return nil
}
