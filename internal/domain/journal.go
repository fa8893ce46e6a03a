package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// JournalEntry is a dated training diary entry with an optional mood tag.
type JournalEntry struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    string             `bson:"userId" json:"userId"`
	Title     string             `bson:"title" json:"title"`
	Content   string             `bson:"content" json:"content"`
	Date      string             `bson:"date" json:"date"` // YYYY-MM-DD
	Mood      string             `bson:"mood,omitempty" json:"mood,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// JournalPatch describes a partial edit of a JournalEntry.
type JournalPatch struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
	Date    *string `json:"date"`
	Mood    *string `json:"mood"`
}

// Apply copies the non-nil patch fields onto the entry.
func (p JournalPatch) Apply(e *JournalEntry) {
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.Content != nil {
		e.Content = *p.Content
	}
	if p.Date != nil {
		e.Date = *p.Date
	}
	if p.Mood != nil {
		e.Mood = *p.Mood
	}
}
