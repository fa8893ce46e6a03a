package service

import (
	"alcyxob/gym-tracker/internal/domain"
	"alcyxob/gym-tracker/internal/repository"
	"context"
	"errors"
	"time"

	"github.com/google/uuid" // For generating workout/goal entry identifiers
)

// --- Error Definitions ---
var (
	ErrEntryNotFound         = errors.New("entry not found")
	ErrConflictExceeded      = errors.New("profile was updated concurrently too many times, try again")
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidGoalStatus     = errors.New("invalid goal status")
)

// DefaultMaxRetries bounds how often a mutation is retried after losing a
// compare-and-swap race before giving up with ErrConflictExceeded.
const DefaultMaxRetries = 5

// ProfileService is the single entry point for reading and mutating
// profile records. Reads always return normalized records; mutations are
// applied through an optimistic compare-and-swap loop so concurrent edits
// on the same user never lose an update, and edits on different users
// never contend.
type ProfileService interface {
	// CreateIfAbsent sets up the profile for a newly observed user.
	// Calling it again for the same user succeeds without change.
	CreateIfAbsent(ctx context.Context, userID string) (*domain.ProfileRecord, error)

	// Read returns the user's record, repaired to valid shape. A user
	// without a stored record (never created, or account deleted) gets a
	// fresh empty record rather than an error.
	Read(ctx context.Context, userID string) (*domain.ProfileRecord, error)

	AppendWorkout(ctx context.Context, userID string, entry domain.WorkoutEntry) (*domain.ProfileRecord, error)
	EditWorkout(ctx context.Context, userID, entryID string, patch domain.WorkoutPatch) (*domain.ProfileRecord, error)
	DeleteWorkout(ctx context.Context, userID, entryID string) (*domain.ProfileRecord, error)

	AppendGoal(ctx context.Context, userID string, entry domain.GoalEntry) (*domain.ProfileRecord, error)
	EditGoal(ctx context.Context, userID, entryID string, patch domain.GoalPatch) (*domain.ProfileRecord, error)
	DeleteGoal(ctx context.Context, userID, entryID string) (*domain.ProfileRecord, error)

	SetDateOfBirth(ctx context.Context, userID string, dob time.Time) (*domain.ProfileRecord, error)

	// DeleteAccount removes the record entirely. Idempotent. The next
	// Read or mutation transparently recreates an empty profile.
	DeleteAccount(ctx context.Context, userID string) error
}

// profileService implements the ProfileService interface.
type profileService struct {
	profileRepo repository.ProfileRepository
	maxRetries  int
}

// NewProfileService creates a new instance of profileService. maxRetries
// bounds the compare-and-swap retry loop; values < 1 fall back to the
// default.
func NewProfileService(profileRepo repository.ProfileRepository, maxRetries int) ProfileService {
	if maxRetries < 1 {
		maxRetries = DefaultMaxRetries
	}
	return &profileService{
		profileRepo: profileRepo,
		maxRetries:  maxRetries,
	}
}

// mutate is the concurrency coordinator every mutation runs through:
// read, normalize, apply the pure operation, then write conditionally on
// the version observed at read time. Losing the race means someone else's
// write landed; re-read and try again, up to the retry bound. An error
// from op aborts without writing anything: a user with no stored record
// gets one only if the operation itself succeeds, so a failed edit on an
// unknown user leaves nothing behind.
func (s *profileService) mutate(ctx context.Context, userID string, op func(*domain.ProfileRecord) error) (*domain.ProfileRecord, error) {
	for attempt := 0; attempt < s.maxRetries; attempt++ {
		fresh := false
		record, err := s.profileRepo.Get(ctx, userID)
		if errors.Is(err, repository.ErrNotFound) {
			// Profiles are recreated on first touch, deleted accounts
			// included. Built locally here, persisted below only after
			// op succeeds.
			record = domain.NewProfileRecord(userID, time.Now().UTC())
			fresh = true
			err = nil
		}
		if err != nil {
			return nil, err
		}

		record = domain.Normalize(record)
		if err := op(record); err != nil {
			return nil, err
		}
		record.UpdatedAt = time.Now().UTC()

		if fresh {
			stored, created, err := s.profileRepo.CreateIfAbsent(ctx, userID)
			if err != nil {
				return nil, err
			}
			if !created && stored.Version != record.Version {
				// Someone else created and already advanced the record
				// between our read and now. Start over from their state.
				continue
			}
		}

		ok, err := s.profileRepo.CompareAndSwap(ctx, userID, record.Version, record)
		if err != nil {
			return nil, err
		}
		if ok {
			record.Version++
			return record, nil
		}
	}
	return nil, ErrConflictExceeded
}

// CreateIfAbsent sets up the profile for a new user. Idempotent.
func (s *profileService) CreateIfAbsent(ctx context.Context, userID string) (*domain.ProfileRecord, error) {
	record, _, err := s.profileRepo.CreateIfAbsent(ctx, userID)
	if err != nil {
		return nil, err
	}
	return domain.Normalize(record), nil
}

// Read returns the normalized record, creating it when absent.
func (s *profileService) Read(ctx context.Context, userID string) (*domain.ProfileRecord, error) {
	record, err := s.profileRepo.Get(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		record, _, err = s.profileRepo.CreateIfAbsent(ctx, userID)
	}
	if err != nil {
		return nil, err
	}
	return domain.Normalize(record), nil
}

// === Workout log ===

// AppendWorkout adds a workout entry to the end of the user's log.
func (s *profileService) AppendWorkout(ctx context.Context, userID string, entry domain.WorkoutEntry) (*domain.ProfileRecord, error) {
	if entry.ExerciseName == "" {
		return nil, ErrMissingRequiredFields
	}
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.PerformedAt.IsZero() {
		entry.PerformedAt = time.Now().UTC()
	}
	if entry.Sets == nil {
		entry.Sets = []domain.SetEntry{}
	}

	return s.mutate(ctx, userID, func(record *domain.ProfileRecord) error {
		record.WorkoutInfo.Workouts = append(record.WorkoutInfo.Workouts, entry)
		return nil
	})
}

// EditWorkout applies a partial edit to one workout entry by id.
func (s *profileService) EditWorkout(ctx context.Context, userID, entryID string, patch domain.WorkoutPatch) (*domain.ProfileRecord, error) {
	return s.mutate(ctx, userID, func(record *domain.ProfileRecord) error {
		i, ok := record.WorkoutInfo.FindWorkout(entryID)
		if !ok {
			return ErrEntryNotFound
		}
		patch.Apply(&record.WorkoutInfo.Workouts[i])
		return nil
	})
}

// DeleteWorkout removes one workout entry by id, preserving the order of
// the remaining entries.
func (s *profileService) DeleteWorkout(ctx context.Context, userID, entryID string) (*domain.ProfileRecord, error) {
	return s.mutate(ctx, userID, func(record *domain.ProfileRecord) error {
		i, ok := record.WorkoutInfo.FindWorkout(entryID)
		if !ok {
			return ErrEntryNotFound
		}
		record.WorkoutInfo.Workouts = append(record.WorkoutInfo.Workouts[:i], record.WorkoutInfo.Workouts[i+1:]...)
		return nil
	})
}

// === Goals ===

// AppendGoal adds a goal to the user's goal list. New goals start active
// unless the caller sets a status explicitly.
func (s *profileService) AppendGoal(ctx context.Context, userID string, entry domain.GoalEntry) (*domain.ProfileRecord, error) {
	if entry.Description == "" {
		return nil, ErrMissingRequiredFields
	}
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.Status == "" {
		entry.Status = domain.GoalStatusActive
	}
	if !entry.Status.IsValid() {
		return nil, ErrInvalidGoalStatus
	}

	return s.mutate(ctx, userID, func(record *domain.ProfileRecord) error {
		record.WorkoutInfo.Goals = append(record.WorkoutInfo.Goals, entry)
		return nil
	})
}

// EditGoal applies a partial edit to one goal by id.
func (s *profileService) EditGoal(ctx context.Context, userID, entryID string, patch domain.GoalPatch) (*domain.ProfileRecord, error) {
	if patch.Status != nil && !patch.Status.IsValid() {
		return nil, ErrInvalidGoalStatus
	}
	return s.mutate(ctx, userID, func(record *domain.ProfileRecord) error {
		i, ok := record.WorkoutInfo.FindGoal(entryID)
		if !ok {
			return ErrEntryNotFound
		}
		patch.Apply(&record.WorkoutInfo.Goals[i])
		return nil
	})
}

// DeleteGoal removes one goal by id.
func (s *profileService) DeleteGoal(ctx context.Context, userID, entryID string) (*domain.ProfileRecord, error) {
	return s.mutate(ctx, userID, func(record *domain.ProfileRecord) error {
		i, ok := record.WorkoutInfo.FindGoal(entryID)
		if !ok {
			return ErrEntryNotFound
		}
		record.WorkoutInfo.Goals = append(record.WorkoutInfo.Goals[:i], record.WorkoutInfo.Goals[i+1:]...)
		return nil
	})
}

// SetDateOfBirth records the user's date of birth.
func (s *profileService) SetDateOfBirth(ctx context.Context, userID string, dob time.Time) (*domain.ProfileRecord, error) {
	return s.mutate(ctx, userID, func(record *domain.ProfileRecord) error {
		record.DateOfBirth = &dob
		return nil
	})
}

// DeleteAccount removes the user's record. Deleting a record that was
// never created (or already deleted) is not an error.
func (s *profileService) DeleteAccount(ctx context.Context, userID string) error {
	_, err := s.profileRepo.Delete(ctx, userID)
	return err
}
