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

// PersonalBestRepository is a map-backed repository.PersonalBestRepository
// keyed by record ID.
type PersonalBestRepository struct {
	mu      sync.Mutex
	records map[primitive.ObjectID]domain.PersonalBest
}

// NewPersonalBestRepository creates an empty in-memory personal best repository.
func NewPersonalBestRepository() *PersonalBestRepository {
	return &PersonalBestRepository{records: make(map[primitive.ObjectID]domain.PersonalBest)}
}

var _ repository.PersonalBestRepository = (*PersonalBestRepository)(nil)

func (r *PersonalBestRepository) Create(ctx context.Context, pb *domain.PersonalBest) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if pb.ID.IsZero() {
		pb.ID = primitive.NewObjectID()
	}
	pb.CreatedAt = time.Now().UTC()
	r.records[pb.ID] = *pb
	return pb.ID, nil
}

func (r *PersonalBestRepository) GetByID(ctx context.Context, userID string, id primitive.ObjectID) (*domain.PersonalBest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	pb, ok := r.records[id]
	if !ok || pb.UserID != userID {
		return nil, repository.ErrNotFound
	}
	return &pb, nil
}

func (r *PersonalBestRepository) GetCurrentByUser(ctx context.Context, userID string) ([]domain.PersonalBest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := []domain.PersonalBest{}
	for _, pb := range r.records {
		if pb.UserID == userID && pb.IsCurrent {
			result = append(result, pb)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Exercise < result[j].Exercise })
	return result, nil
}

func (r *PersonalBestRepository) GetCurrentByExercise(ctx context.Context, userID string, exercise string) (*domain.PersonalBest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, pb := range r.records {
		if pb.UserID == userID && pb.Exercise == exercise && pb.IsCurrent {
			return &pb, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *PersonalBestRepository) Update(ctx context.Context, pb *domain.PersonalBest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.records[pb.ID]
	if !ok || stored.UserID != pb.UserID {
		return repository.ErrNotFound
	}
	pb.CreatedAt = stored.CreatedAt
	r.records[pb.ID] = *pb
	return nil
}

func (r *PersonalBestRepository) Delete(ctx context.Context, userID string, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	pb, ok := r.records[id]
	if !ok || pb.UserID != userID {
		return repository.ErrNotFound
	}
	delete(r.records, id)
	return nil
}
