package service

import (
	"alcyxob/gym-tracker/internal/domain"
	"alcyxob/gym-tracker/internal/repository"
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrRestDurationOutOfRange = errors.New("rest duration is outside the accepted range")
)

// RestTimerService manages rest timer presets. A user has at most one
// default timer; marking a timer default unmarks the previous one.
type RestTimerService interface {
	Create(ctx context.Context, userID string, name string, durationSeconds int, isDefault bool) (*domain.RestTimer, error)
	List(ctx context.Context, userID string) ([]domain.RestTimer, error)
	Edit(ctx context.Context, userID string, id primitive.ObjectID, patch domain.RestTimerPatch) (*domain.RestTimer, error)
	Delete(ctx context.Context, userID string, id primitive.ObjectID) error
}

// restTimerService implements the RestTimerService interface.
type restTimerService struct {
	restTimerRepo repository.RestTimerRepository
}

// NewRestTimerService creates a new instance of restTimerService.
func NewRestTimerService(restTimerRepo repository.RestTimerRepository) RestTimerService {
	return &restTimerService{restTimerRepo: restTimerRepo}
}

// Create stores a preset. An empty duration gets the standard 90 seconds;
// an empty name gets a generic one.
func (s *restTimerService) Create(ctx context.Context, userID string, name string, durationSeconds int, isDefault bool) (*domain.RestTimer, error) {
	if name == "" {
		name = "Custom Timer"
	}
	if durationSeconds == 0 {
		durationSeconds = domain.DefaultRestSeconds
	}
	if !domain.RestDurationInRange(durationSeconds) {
		return nil, ErrRestDurationOutOfRange
	}

	if isDefault {
		if err := s.restTimerRepo.ClearDefault(ctx, userID); err != nil {
			return nil, err
		}
	}

	timer := &domain.RestTimer{
		UserID:    userID,
		Name:      name,
		Duration:  durationSeconds,
		IsDefault: isDefault,
	}
	if _, err := s.restTimerRepo.Create(ctx, timer); err != nil {
		return nil, err
	}
	return timer, nil
}

// List returns the user's presets, the default one first.
func (s *restTimerService) List(ctx context.Context, userID string) ([]domain.RestTimer, error) {
	return s.restTimerRepo.GetByUser(ctx, userID)
}

// Edit applies a partial edit to one preset. Setting IsDefault clears the
// flag from whichever timer held it.
func (s *restTimerService) Edit(ctx context.Context, userID string, id primitive.ObjectID, patch domain.RestTimerPatch) (*domain.RestTimer, error) {
	if patch.Duration != nil && !domain.RestDurationInRange(*patch.Duration) {
		return nil, ErrRestDurationOutOfRange
	}
	if patch.Name != nil && *patch.Name == "" {
		return nil, ErrMissingRequiredFields
	}

	timer, err := s.restTimerRepo.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, err
	}

	if patch.IsDefault != nil && *patch.IsDefault && !timer.IsDefault {
		if err := s.restTimerRepo.ClearDefault(ctx, userID); err != nil {
			return nil, err
		}
	}
	patch.Apply(timer)
	if err := s.restTimerRepo.Update(ctx, timer); err != nil {
		return nil, err
	}
	return timer, nil
}

// Delete removes one preset.
func (s *restTimerService) Delete(ctx context.Context, userID string, id primitive.ObjectID) error {
	err := s.restTimerRepo.Delete(ctx, userID, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrEntryNotFound
	}
	return err
}
