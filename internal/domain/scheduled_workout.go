package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WorkoutStatus type for the lifecycle of a scheduled workout
type WorkoutStatus string

// Define constants for workout statuses
const (
	WorkoutStatusPlanned   WorkoutStatus = "planned"
	WorkoutStatusCompleted WorkoutStatus = "completed"
	WorkoutStatusMissed    WorkoutStatus = "missed"
)

// IsValid reports whether s is one of the known workout statuses.
func (s WorkoutStatus) IsValid() bool {
	return s == WorkoutStatusPlanned || s == WorkoutStatusCompleted || s == WorkoutStatusMissed
}

// ScheduledWorkout is a workout planned for a calendar day. Completed
// scheduled workouts count toward the workout streak alongside the
// logged entries in the profile document.
type ScheduledWorkout struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      string             `bson:"userId" json:"userId"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Date        string             `bson:"date" json:"date"` // YYYY-MM-DD
	Status      WorkoutStatus      `bson:"status" json:"status"`
	Notes       string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ScheduledWorkoutPatch describes a partial edit of a ScheduledWorkout.
// Nil fields are left untouched.
type ScheduledWorkoutPatch struct {
	Title       *string        `json:"title"`
	Description *string        `json:"description"`
	Date        *string        `json:"date"`
	Status      *WorkoutStatus `json:"status"`
	Notes       *string        `json:"notes"`
}

// Apply copies the non-nil patch fields onto the workout.
func (p ScheduledWorkoutPatch) Apply(w *ScheduledWorkout) {
	if p.Title != nil {
		w.Title = *p.Title
	}
	if p.Description != nil {
		w.Description = *p.Description
	}
	if p.Date != nil {
		w.Date = *p.Date
	}
	if p.Status != nil {
		w.Status = *p.Status
	}
	if p.Notes != nil {
		w.Notes = *p.Notes
	}
}
