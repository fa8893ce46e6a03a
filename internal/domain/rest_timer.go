package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Accepted rest timer durations in seconds.
const (
	MinRestSeconds     = 10
	MaxRestSeconds     = 3600 // 1 hour
	DefaultRestSeconds = 90
)

// RestTimer is a named rest duration preset. A user has at most one
// timer flagged as default.
type RestTimer struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    string             `bson:"userId" json:"userId"`
	Name      string             `bson:"name" json:"name"`
	Duration  int                `bson:"duration" json:"duration"` // Rest time in seconds
	IsDefault bool               `bson:"isDefault" json:"isDefault"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// RestDurationInRange reports whether seconds is an accepted rest time.
func RestDurationInRange(seconds int) bool {
	return seconds >= MinRestSeconds && seconds <= MaxRestSeconds
}

// RestTimerPatch describes a partial edit of a RestTimer.
type RestTimerPatch struct {
	Name      *string `json:"name"`
	Duration  *int    `json:"duration"`
	IsDefault *bool   `json:"isDefault"`
}

// Apply copies the non-nil patch fields onto the timer.
func (p RestTimerPatch) Apply(t *RestTimer) {
	if p.Name != nil {
		t.Name = *p.Name
	}
	if p.Duration != nil {
		t.Duration = *p.Duration
	}
	if p.IsDefault != nil {
		t.IsDefault = *p.IsDefault
	}
}
