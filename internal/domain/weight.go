package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Accepted body weight range in kilograms.
const (
	MinBodyWeightKg = 20.0
	MaxBodyWeightKg = 500.0
)

// WeightEntry is one body-weight measurement. At most one entry exists
// per user per calendar day; logging twice on the same day replaces the
// earlier value.
type WeightEntry struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    string             `bson:"userId" json:"userId"`
	Weight    float64            `bson:"weight" json:"weight"` // kilograms
	Date      string             `bson:"date" json:"date"`     // YYYY-MM-DD
	Notes     string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// WeightInRange reports whether kg is a plausible body weight.
func WeightInRange(kg float64) bool {
	return kg >= MinBodyWeightKg && kg <= MaxBodyWeightKg
}
