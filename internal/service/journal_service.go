package service

import (
	"alcyxob/gym-tracker/internal/domain"
	"alcyxob/gym-tracker/internal/repository"
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// JournalService manages the training diary.
type JournalService interface {
	Write(ctx context.Context, userID string, entry domain.JournalEntry) (*domain.JournalEntry, error)
	List(ctx context.Context, userID string) ([]domain.JournalEntry, error)
	Edit(ctx context.Context, userID string, id primitive.ObjectID, patch domain.JournalPatch) (*domain.JournalEntry, error)
	Delete(ctx context.Context, userID string, id primitive.ObjectID) error
}

// journalService implements the JournalService interface.
type journalService struct {
	journalRepo repository.JournalRepository
}

// NewJournalService creates a new instance of journalService.
func NewJournalService(journalRepo repository.JournalRepository) JournalService {
	return &journalService{journalRepo: journalRepo}
}

// Write stores a diary entry, dated today when no date is given.
func (s *journalService) Write(ctx context.Context, userID string, entry domain.JournalEntry) (*domain.JournalEntry, error) {
	if entry.Title == "" || entry.Content == "" {
		return nil, ErrMissingRequiredFields
	}
	if entry.Date == "" {
		entry.Date = time.Now().UTC().Format(dateLayout)
	} else if _, err := time.Parse(dateLayout, entry.Date); err != nil {
		return nil, ErrInvalidDate
	}

	entry.UserID = userID
	if _, err := s.journalRepo.Create(ctx, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// List returns the user's diary entries, newest first.
func (s *journalService) List(ctx context.Context, userID string) ([]domain.JournalEntry, error) {
	return s.journalRepo.GetByUser(ctx, userID)
}

// Edit applies a partial edit to one diary entry.
func (s *journalService) Edit(ctx context.Context, userID string, id primitive.ObjectID, patch domain.JournalPatch) (*domain.JournalEntry, error) {
	if patch.Date != nil {
		if _, err := time.Parse(dateLayout, *patch.Date); err != nil {
			return nil, ErrInvalidDate
		}
	}
	if patch.Title != nil && *patch.Title == "" {
		return nil, ErrMissingRequiredFields
	}
	if patch.Content != nil && *patch.Content == "" {
		return nil, ErrMissingRequiredFields
	}

	entry, err := s.journalRepo.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, err
	}
	patch.Apply(entry)
	if err := s.journalRepo.Update(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// Delete removes one diary entry.
func (s *journalService) Delete(ctx context.Context, userID string, id primitive.ObjectID) error {
	err := s.journalRepo.Delete(ctx, userID, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrEntryNotFound
	}
	return err
}
