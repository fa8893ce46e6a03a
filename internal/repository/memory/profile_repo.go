// Package memory provides in-memory repository implementations with the
// same compare-and-swap semantics as the Mongo backend. Used by tests and
// for running the server without a database.
package memory

import (
	"alcyxob/gym-tracker/internal/domain"
	"alcyxob/gym-tracker/internal/repository"
	"context"
	"sync"
	"time"
)

// ProfileRepository is a map-backed repository.ProfileRepository. Records
// are deep-copied on the way in and out so the only way to change stored
// state is a successful CompareAndSwap, same as with a real database.
type ProfileRepository struct {
	mu      sync.Mutex
	records map[string]*domain.ProfileRecord
}

// NewProfileRepository creates an empty in-memory profile repository.
func NewProfileRepository() *ProfileRepository {
	return &ProfileRepository{records: make(map[string]*domain.ProfileRecord)}
}

var _ repository.ProfileRepository = (*ProfileRepository)(nil)

// Seed stores a record verbatim, bypassing the valid-shape guarantee of
// CreateIfAbsent. Lets tests set up legacy rows with missing embedded keys.
func (r *ProfileRepository) Seed(record *domain.ProfileRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[record.UserID] = record.Clone()
}

func (r *ProfileRepository) Get(ctx context.Context, userID string) (*domain.ProfileRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.records[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return record.Clone(), nil
}

func (r *ProfileRepository) CreateIfAbsent(ctx context.Context, userID string) (*domain.ProfileRecord, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.records[userID]; ok {
		return existing.Clone(), false, nil
	}
	fresh := domain.NewProfileRecord(userID, time.Now().UTC())
	r.records[userID] = fresh.Clone()
	return fresh, true, nil
}

func (r *ProfileRepository) CompareAndSwap(ctx context.Context, userID string, expectedVersion int64, record *domain.ProfileRecord) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.records[userID]
	if !ok || current.Version != expectedVersion {
		return false, nil
	}
	stored := record.Clone()
	stored.Version = expectedVersion + 1
	r.records[userID] = stored
	return true, nil
}

func (r *ProfileRepository) Exists(ctx context.Context, userID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.records[userID]
	return ok, nil
}

func (r *ProfileRepository) Delete(ctx context.Context, userID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.records[userID]
	delete(r.records, userID)
	return ok, nil
}
