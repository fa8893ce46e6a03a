package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PersonalBestCategory type to group personal records
type PersonalBestCategory string

// Define constants for personal best categories
const (
	CategoryStrength    PersonalBestCategory = "strength"
	CategoryCardio      PersonalBestCategory = "cardio"
	CategoryFlexibility PersonalBestCategory = "flexibility"
	CategoryOther       PersonalBestCategory = "other"
)

// IsValid reports whether c is one of the known categories.
func (c PersonalBestCategory) IsValid() bool {
	return c == CategoryStrength || c == CategoryCardio || c == CategoryFlexibility || c == CategoryOther
}

// PersonalBest is one personal record for an exercise. At most one
// record per (user, exercise) carries IsCurrent; recording a better
// value demotes the previous one rather than deleting it, keeping the
// PR history intact.
type PersonalBest struct {
	ID           primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	UserID       string               `bson:"userId" json:"userId"`
	Exercise     string               `bson:"exercise" json:"exercise"`
	Category     PersonalBestCategory `bson:"category" json:"category"`
	Value        float64              `bson:"value" json:"value"` // Weight, time, distance, etc.
	Unit         string               `bson:"unit" json:"unit"`   // kg, lbs, seconds, minutes, km, etc.
	DateAchieved string               `bson:"dateAchieved" json:"dateAchieved"` // YYYY-MM-DD
	Notes        string               `bson:"notes,omitempty" json:"notes,omitempty"`
	IsCurrent    bool                 `bson:"isCurrent" json:"isCurrent"`
	CreatedAt    time.Time            `bson:"createdAt" json:"createdAt"`
}

// PersonalBestPatch describes a partial edit of a PersonalBest.
type PersonalBestPatch struct {
	Exercise     *string  `json:"exercise"`
	Value        *float64 `json:"value"`
	Unit         *string  `json:"unit"`
	DateAchieved *string  `json:"dateAchieved"`
	Notes        *string  `json:"notes"`
}

// Apply copies the non-nil patch fields onto the record.
func (p PersonalBestPatch) Apply(pb *PersonalBest) {
	if p.Exercise != nil {
		pb.Exercise = *p.Exercise
	}
	if p.Value != nil {
		pb.Value = *p.Value
	}
	if p.Unit != nil {
		pb.Unit = *p.Unit
	}
	if p.DateAchieved != nil {
		pb.DateAchieved = *p.DateAchieved
	}
	if p.Notes != nil {
		pb.Notes = *p.Notes
	}
}
