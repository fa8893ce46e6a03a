package service

import (
	"alcyxob/gym-tracker/internal/domain"
	"alcyxob/gym-tracker/internal/repository"
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrInvalidCategory = errors.New("invalid personal best category")
)

// PersonalBestService manages personal records. Each exercise has at most
// one current record; submitting a value that doesn't beat it is accepted
// but recorded as not-a-new-record, leaving the standing PR untouched.
type PersonalBestService interface {
	// Record submits a result for an exercise. The bool reports whether it
	// became the new record; when it did not, the returned entry is the
	// standing record it failed to beat.
	Record(ctx context.Context, userID string, pb domain.PersonalBest) (*domain.PersonalBest, bool, error)

	ListCurrent(ctx context.Context, userID string) ([]domain.PersonalBest, error)
	Edit(ctx context.Context, userID string, id primitive.ObjectID, patch domain.PersonalBestPatch) (*domain.PersonalBest, error)
	Delete(ctx context.Context, userID string, id primitive.ObjectID) error
}

// personalBestService implements the PersonalBestService interface.
type personalBestService struct {
	personalBestRepo repository.PersonalBestRepository
}

// NewPersonalBestService creates a new instance of personalBestService.
func NewPersonalBestService(personalBestRepo repository.PersonalBestRepository) PersonalBestService {
	return &personalBestService{personalBestRepo: personalBestRepo}
}

// Record submits a result. A standing record with an equal or higher
// value wins; otherwise the old record is demoted and the new one stored
// as current.
func (s *personalBestService) Record(ctx context.Context, userID string, pb domain.PersonalBest) (*domain.PersonalBest, bool, error) {
	if pb.Exercise == "" || pb.Unit == "" || pb.Value <= 0 {
		return nil, false, ErrMissingRequiredFields
	}
	if pb.Category == "" {
		pb.Category = domain.CategoryOther
	}
	if !pb.Category.IsValid() {
		return nil, false, ErrInvalidCategory
	}
	if pb.DateAchieved == "" {
		pb.DateAchieved = time.Now().UTC().Format(dateLayout)
	} else if _, err := time.Parse(dateLayout, pb.DateAchieved); err != nil {
		return nil, false, ErrInvalidDate
	}

	current, err := s.personalBestRepo.GetCurrentByExercise(ctx, userID, pb.Exercise)
	switch {
	case err == nil:
		if current.Value >= pb.Value {
			return current, false, nil
		}
		current.IsCurrent = false
		if err := s.personalBestRepo.Update(ctx, current); err != nil {
			return nil, false, err
		}
	case errors.Is(err, repository.ErrNotFound):
		// First record for this exercise.
	default:
		return nil, false, err
	}

	pb.UserID = userID
	pb.IsCurrent = true
	if _, err := s.personalBestRepo.Create(ctx, &pb); err != nil {
		return nil, false, err
	}
	return &pb, true, nil
}

// ListCurrent returns the user's standing records, one per exercise.
func (s *personalBestService) ListCurrent(ctx context.Context, userID string) ([]domain.PersonalBest, error) {
	return s.personalBestRepo.GetCurrentByUser(ctx, userID)
}

// Edit applies a partial correction to one record (a typo in the value or
// date, not a new attempt; use Record for those).
func (s *personalBestService) Edit(ctx context.Context, userID string, id primitive.ObjectID, patch domain.PersonalBestPatch) (*domain.PersonalBest, error) {
	if patch.DateAchieved != nil {
		if _, err := time.Parse(dateLayout, *patch.DateAchieved); err != nil {
			return nil, ErrInvalidDate
		}
	}

	pb, err := s.personalBestRepo.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, err
	}
	patch.Apply(pb)
	if err := s.personalBestRepo.Update(ctx, pb); err != nil {
		return nil, err
	}
	return pb, nil
}

// Delete removes one record.
func (s *personalBestService) Delete(ctx context.Context, userID string, id primitive.ObjectID) error {
	err := s.personalBestRepo.Delete(ctx, userID, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrEntryNotFound
	}
	return err
}
