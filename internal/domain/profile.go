package domain

import (
	"time"
)

// Keys the embedded workout_info document must always contain.
const (
	KeyWorkouts = "workouts"
	KeyGoals    = "goals"
)

// ProfileRecord is the per-user persisted entity: fixed identity and
// timestamp fields plus the flexible workout_info document. The version
// counter increments on every successful write and backs the optimistic
// concurrency check in the repository layer.
type ProfileRecord struct {
	UserID      string      `bson:"_id" json:"userId"`
	DateOfBirth *time.Time  `bson:"dob,omitempty" json:"dob,omitempty"`
	WorkoutInfo WorkoutInfo `bson:"workout_info" json:"workoutInfo"`
	Version     int64       `bson:"version" json:"version"`
	CreatedAt   time.Time   `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time   `bson:"updatedAt" json:"updatedAt"`
}

// NewProfileRecord constructs a fresh record already in valid shape:
// both embedded sequences exist and are empty.
func NewProfileRecord(userID string, now time.Time) *ProfileRecord {
	return &ProfileRecord{
		UserID: userID,
		WorkoutInfo: WorkoutInfo{
			Workouts: []WorkoutEntry{},
			Goals:    []GoalEntry{},
		},
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Clone returns a deep copy of the record. Repositories hand out clones
// so callers can never mutate stored state behind the version check.
func (r *ProfileRecord) Clone() *ProfileRecord {
	cp := *r
	if r.DateOfBirth != nil {
		dob := *r.DateOfBirth
		cp.DateOfBirth = &dob
	}
	if r.WorkoutInfo.Workouts != nil {
		cp.WorkoutInfo.Workouts = make([]WorkoutEntry, len(r.WorkoutInfo.Workouts))
		for i, w := range r.WorkoutInfo.Workouts {
			w.Sets = append([]SetEntry(nil), w.Sets...)
			cp.WorkoutInfo.Workouts[i] = w
		}
	}
	if r.WorkoutInfo.Goals != nil {
		cp.WorkoutInfo.Goals = append([]GoalEntry(nil), r.WorkoutInfo.Goals...)
	}
	return &cp
}

// ValidationResult reports whether a record's embedded document has the
// required shape, and which keys are missing when it does not.
type ValidationResult struct {
	Valid       bool
	MissingKeys []string
}

// Validate checks invariant: workout_info contains exactly the keys
// {workouts, goals}. It never mutates the record. A document stored
// without one of the keys (or stored as {} entirely) decodes to nil
// slices, which is what is checked here.
func Validate(r *ProfileRecord) ValidationResult {
	var missing []string
	if r.WorkoutInfo.Workouts == nil {
		missing = append(missing, KeyWorkouts)
	}
	if r.WorkoutInfo.Goals == nil {
		missing = append(missing, KeyGoals)
	}
	return ValidationResult{Valid: len(missing) == 0, MissingKeys: missing}
}

// Normalize repairs a record that fails Validate by setting every
// missing key to an empty sequence. Valid records are returned as-is;
// invalid ones come back as a repaired copy with all present data
// preserved. Idempotent. Every read path runs records through here so
// callers never trip over a missing key in a half-initialized document.
func Normalize(r *ProfileRecord) *ProfileRecord {
	if Validate(r).Valid {
		return r
	}
	repaired := r.Clone()
	if repaired.WorkoutInfo.Workouts == nil {
		repaired.WorkoutInfo.Workouts = []WorkoutEntry{}
	}
	if repaired.WorkoutInfo.Goals == nil {
		repaired.WorkoutInfo.Goals = []GoalEntry{}
	}
	return repaired
}
