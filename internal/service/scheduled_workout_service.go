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
	ErrInvalidWorkoutStatus = errors.New("invalid workout status")
)

// ScheduledWorkoutService manages the workout calendar: workouts planned
// for a day and later marked completed or missed. Completed entries feed
// the streak calculation alongside the logged workout history.
type ScheduledWorkoutService interface {
	Schedule(ctx context.Context, userID string, workout domain.ScheduledWorkout) (*domain.ScheduledWorkout, error)
	List(ctx context.Context, userID string) ([]domain.ScheduledWorkout, error)
	Edit(ctx context.Context, userID string, id primitive.ObjectID, patch domain.ScheduledWorkoutPatch) (*domain.ScheduledWorkout, error)
	Delete(ctx context.Context, userID string, id primitive.ObjectID) error

	// CompletedDates returns the distinct dates (YYYY-MM-DD) of completed
	// workouts, for streak and dashboard aggregation.
	CompletedDates(ctx context.Context, userID string) ([]string, error)
}

// scheduledWorkoutService implements the ScheduledWorkoutService interface.
type scheduledWorkoutService struct {
	scheduledRepo repository.ScheduledWorkoutRepository
}

// NewScheduledWorkoutService creates a new instance of scheduledWorkoutService.
func NewScheduledWorkoutService(scheduledRepo repository.ScheduledWorkoutRepository) ScheduledWorkoutService {
	return &scheduledWorkoutService{scheduledRepo: scheduledRepo}
}

// Schedule plans a workout for a day. New workouts start planned unless
// the caller sets a status explicitly.
func (s *scheduledWorkoutService) Schedule(ctx context.Context, userID string, workout domain.ScheduledWorkout) (*domain.ScheduledWorkout, error) {
	if workout.Title == "" || workout.Date == "" {
		return nil, ErrMissingRequiredFields
	}
	if _, err := time.Parse(dateLayout, workout.Date); err != nil {
		return nil, ErrInvalidDate
	}
	if workout.Status == "" {
		workout.Status = domain.WorkoutStatusPlanned
	}
	if !workout.Status.IsValid() {
		return nil, ErrInvalidWorkoutStatus
	}

	workout.UserID = userID
	if _, err := s.scheduledRepo.Create(ctx, &workout); err != nil {
		return nil, err
	}
	return &workout, nil
}

// List returns the user's scheduled workouts, earliest date first.
func (s *scheduledWorkoutService) List(ctx context.Context, userID string) ([]domain.ScheduledWorkout, error) {
	return s.scheduledRepo.GetByUser(ctx, userID)
}

// Edit applies a partial edit to one scheduled workout, typically the
// status transition when a plan is completed or missed.
func (s *scheduledWorkoutService) Edit(ctx context.Context, userID string, id primitive.ObjectID, patch domain.ScheduledWorkoutPatch) (*domain.ScheduledWorkout, error) {
	if patch.Status != nil && !patch.Status.IsValid() {
		return nil, ErrInvalidWorkoutStatus
	}
	if patch.Date != nil {
		if _, err := time.Parse(dateLayout, *patch.Date); err != nil {
			return nil, ErrInvalidDate
		}
	}
	if patch.Title != nil && *patch.Title == "" {
		return nil, ErrMissingRequiredFields
	}

	workout, err := s.scheduledRepo.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, err
	}
	patch.Apply(workout)
	if err := s.scheduledRepo.Update(ctx, workout); err != nil {
		return nil, err
	}
	return workout, nil
}

// Delete removes one scheduled workout.
func (s *scheduledWorkoutService) Delete(ctx context.Context, userID string, id primitive.ObjectID) error {
	err := s.scheduledRepo.Delete(ctx, userID, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrEntryNotFound
	}
	return err
}

// CompletedDates returns the distinct dates on which the user completed a
// scheduled workout.
func (s *scheduledWorkoutService) CompletedDates(ctx context.Context, userID string) ([]string, error) {
	workouts, err := s.scheduledRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	seen := map[string]bool{}
	dates := []string{}
	for _, w := range workouts {
		if w.Status != domain.WorkoutStatusCompleted || seen[w.Date] {
			continue
		}
		seen[w.Date] = true
		dates = append(dates, w.Date)
	}
	return dates, nil
}
