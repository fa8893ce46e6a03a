package domain

import (
	"time"
)

// GoalStatus type for the lifecycle of a fitness goal
type GoalStatus string

// Define constants for goal statuses
const (
	GoalStatusActive    GoalStatus = "active"
	GoalStatusAchieved  GoalStatus = "achieved"
	GoalStatusAbandoned GoalStatus = "abandoned"
)

// IsValid reports whether s is one of the known goal statuses.
func (s GoalStatus) IsValid() bool {
	return s == GoalStatusActive || s == GoalStatusAchieved || s == GoalStatusAbandoned
}

// SetEntry is one set performed within a workout (e.g. 10 reps at 60kg).
type SetEntry struct {
	Reps   int     `bson:"reps" json:"reps"`
	Weight float64 `bson:"weight" json:"weight"`
	Unit   string  `bson:"unit" json:"unit"` // kg, lbs, seconds, km, etc.
}

// WorkoutEntry is one logged workout inside a user's profile document.
// Field names are snake_case on the wire to stay compatible with the
// documents already stored by earlier versions of the app.
type WorkoutEntry struct {
	ID           string     `bson:"id" json:"id"`
	ExerciseName string     `bson:"exercise_name" json:"exercise_name"`
	Sets         []SetEntry `bson:"sets" json:"sets"`
	PerformedAt  time.Time  `bson:"performed_at" json:"performed_at"`
	Note         string     `bson:"note,omitempty" json:"note,omitempty"`
}

// GoalEntry is one fitness goal inside a user's profile document.
type GoalEntry struct {
	ID           string     `bson:"id" json:"id"`
	Description  string     `bson:"description" json:"description"`
	TargetValue  float64    `bson:"target_value" json:"target_value"`
	CurrentValue float64    `bson:"current_value" json:"current_value"`
	Status       GoalStatus `bson:"status" json:"status"`
}

// WorkoutInfo is the flexible embedded document on a ProfileRecord.
// Its wire shape is exactly {"workouts": [...], "goals": [...]}.
// A nil slice means the key was absent in the stored document; Normalize
// repairs that before any caller sees the record.
type WorkoutInfo struct {
	Workouts []WorkoutEntry `bson:"workouts" json:"workouts"`
	Goals    []GoalEntry    `bson:"goals" json:"goals"`
}

// FindWorkout returns the index of the workout with the given id.
func (wi *WorkoutInfo) FindWorkout(id string) (int, bool) {
	for i := range wi.Workouts {
		if wi.Workouts[i].ID == id {
			return i, true
		}
	}
	return -1, false
}

// FindGoal returns the index of the goal with the given id.
func (wi *WorkoutInfo) FindGoal(id string) (int, bool) {
	for i := range wi.Goals {
		if wi.Goals[i].ID == id {
			return i, true
		}
	}
	return -1, false
}

// WorkoutPatch describes a partial in-place edit of a WorkoutEntry.
// Nil fields are left untouched.
type WorkoutPatch struct {
	ExerciseName *string    `json:"exercise_name"`
	Sets         []SetEntry `json:"sets"`
	PerformedAt  *time.Time `json:"performed_at"`
	Note         *string    `json:"note"`
}

// Apply copies the non-nil patch fields onto the entry.
func (p WorkoutPatch) Apply(e *WorkoutEntry) {
	if p.ExerciseName != nil {
		e.ExerciseName = *p.ExerciseName
	}
	if p.Sets != nil {
		e.Sets = append([]SetEntry(nil), p.Sets...)
	}
	if p.PerformedAt != nil {
		e.PerformedAt = *p.PerformedAt
	}
	if p.Note != nil {
		e.Note = *p.Note
	}
}

// GoalPatch describes a partial in-place edit of a GoalEntry.
type GoalPatch struct {
	Description  *string     `json:"description"`
	TargetValue  *float64    `json:"target_value"`
	CurrentValue *float64    `json:"current_value"`
	Status       *GoalStatus `json:"status"`
}

// Apply copies the non-nil patch fields onto the goal.
func (p GoalPatch) Apply(g *GoalEntry) {
	if p.Description != nil {
		g.Description = *p.Description
	}
	if p.TargetValue != nil {
		g.TargetValue = *p.TargetValue
	}
	if p.CurrentValue != nil {
		g.CurrentValue = *p.CurrentValue
	}
	if p.Status != nil {
		g.Status = *p.Status
	}
}
