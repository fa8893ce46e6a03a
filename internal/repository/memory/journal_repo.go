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

// JournalRepository is a map-backed repository.JournalRepository keyed by
// entry ID.
type JournalRepository struct {
	mu      sync.Mutex
	entries map[primitive.ObjectID]domain.JournalEntry
}

// NewJournalRepository creates an empty in-memory journal repository.
func NewJournalRepository() *JournalRepository {
	return &JournalRepository{entries: make(map[primitive.ObjectID]domain.JournalEntry)}
}

var _ repository.JournalRepository = (*JournalRepository)(nil)

func (r *JournalRepository) Create(ctx context.Context, entry *domain.JournalEntry) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	now := time.Now().UTC()
	entry.CreatedAt = now
	entry.UpdatedAt = now
	r.entries[entry.ID] = *entry
	return entry.ID, nil
}

func (r *JournalRepository) GetByID(ctx context.Context, userID string, id primitive.ObjectID) (*domain.JournalEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[id]
	if !ok || entry.UserID != userID {
		return nil, repository.ErrNotFound
	}
	return &entry, nil
}

func (r *JournalRepository) GetByUser(ctx context.Context, userID string) ([]domain.JournalEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := []domain.JournalEntry{}
	for _, entry := range r.entries {
		if entry.UserID == userID {
			result = append(result, entry)
		}
	}
	// Newest first, matching the Mongo sort.
	sort.Slice(result, func(i, j int) bool { return result[i].Date > result[j].Date })
	return result, nil
}

func (r *JournalRepository) Update(ctx context.Context, entry *domain.JournalEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.entries[entry.ID]
	if !ok || stored.UserID != entry.UserID {
		return repository.ErrNotFound
	}
	entry.CreatedAt = stored.CreatedAt
	entry.UpdatedAt = time.Now().UTC()
	r.entries[entry.ID] = *entry
	return nil
}

func (r *JournalRepository) Delete(ctx context.Context, userID string, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[id]
	if !ok || entry.UserID != userID {
		return repository.ErrNotFound
	}
	delete(r.entries, id)
	return nil
}
