package repository

import (
	"alcyxob/gym-tracker/internal/domain" // Import our defined domain models
	"context"                             // Standard for request-scoped deadlines, cancellation signals, etc.

	"go.mongodb.org/mongo-driver/bson/primitive" // For using ObjectIDs
)

// Error constants for repository layer
var (
	ErrNotFound = RepositoryError("not found")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// ProfileRepository defines the interface for interacting with profile records.
//
// Writes go through CompareAndSwap exclusively; there is no unconditional
// update on purpose. Each method is individually atomic but no cross-record
// transactions are assumed.
type ProfileRepository interface {
	// Get returns the stored record as-is, which may be missing embedded
	// keys (legacy rows). Returns ErrNotFound when no record exists.
	Get(ctx context.Context, userID string) (*domain.ProfileRecord, error)

	// CreateIfAbsent stores a fresh, valid-shaped record unless one already
	// exists. The second return value reports whether a record was created.
	// Calling it for an existing user is a no-op, not an error.
	CreateIfAbsent(ctx context.Context, userID string) (*domain.ProfileRecord, bool, error)

	// CompareAndSwap persists record only if the stored version still equals
	// expectedVersion, incrementing the stored version in the same write.
	// Returns false (and no error) on a version mismatch or missing record.
	CompareAndSwap(ctx context.Context, userID string, expectedVersion int64, record *domain.ProfileRecord) (bool, error)

	Exists(ctx context.Context, userID string) (bool, error)

	// Delete removes the record entirely. Idempotent; the return value
	// reports whether anything was stored.
	Delete(ctx context.Context, userID string) (bool, error)
}

// WeightRepository defines the interface for interacting with weight log entries.
type WeightRepository interface {
	// Upsert stores the entry, replacing any existing entry for the same
	// user and date.
	Upsert(ctx context.Context, entry *domain.WeightEntry) error
	GetByUser(ctx context.Context, userID string) ([]domain.WeightEntry, error)
	Delete(ctx context.Context, userID string, date string) error
}

// ScheduledWorkoutRepository defines the interface for interacting with
// planned workout data. All lookups are scoped to the owning user.
type ScheduledWorkoutRepository interface {
	Create(ctx context.Context, workout *domain.ScheduledWorkout) (primitive.ObjectID, error)
	GetByID(ctx context.Context, userID string, id primitive.ObjectID) (*domain.ScheduledWorkout, error)
	GetByUser(ctx context.Context, userID string) ([]domain.ScheduledWorkout, error) // Ordered by date
	Update(ctx context.Context, workout *domain.ScheduledWorkout) error
	Delete(ctx context.Context, userID string, id primitive.ObjectID) error
}

// PersonalBestRepository defines the interface for interacting with
// personal record data.
type PersonalBestRepository interface {
	Create(ctx context.Context, pb *domain.PersonalBest) (primitive.ObjectID, error)
	GetByID(ctx context.Context, userID string, id primitive.ObjectID) (*domain.PersonalBest, error)
	// GetCurrentByUser returns the user's standing records, one per
	// exercise, ordered by exercise name.
	GetCurrentByUser(ctx context.Context, userID string) ([]domain.PersonalBest, error)
	GetCurrentByExercise(ctx context.Context, userID string, exercise string) (*domain.PersonalBest, error)
	Update(ctx context.Context, pb *domain.PersonalBest) error
	Delete(ctx context.Context, userID string, id primitive.ObjectID) error
}

// RestTimerRepository defines the interface for interacting with rest
// timer presets.
type RestTimerRepository interface {
	Create(ctx context.Context, timer *domain.RestTimer) (primitive.ObjectID, error)
	GetByID(ctx context.Context, userID string, id primitive.ObjectID) (*domain.RestTimer, error)
	GetByUser(ctx context.Context, userID string) ([]domain.RestTimer, error) // Default first, then by name
	Update(ctx context.Context, timer *domain.RestTimer) error
	// ClearDefault unmarks any timer currently flagged as the default so
	// a user has at most one.
	ClearDefault(ctx context.Context, userID string) error
	Delete(ctx context.Context, userID string, id primitive.ObjectID) error
}

// JournalRepository defines the interface for interacting with journal entries.
type JournalRepository interface {
	Create(ctx context.Context, entry *domain.JournalEntry) (primitive.ObjectID, error)
	GetByID(ctx context.Context, userID string, id primitive.ObjectID) (*domain.JournalEntry, error)
	GetByUser(ctx context.Context, userID string) ([]domain.JournalEntry, error) // Newest first
	Update(ctx context.Context, entry *domain.JournalEntry) error
	Delete(ctx context.Context, userID string, id primitive.ObjectID) error
}
