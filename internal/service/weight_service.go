package service

import (
	"alcyxob/gym-tracker/internal/domain"
	"alcyxob/gym-tracker/internal/repository"
	"context"
	"errors"
	"time"
)

// --- Error Definitions ---
var (
	ErrWeightOutOfRange   = errors.New("weight is outside the accepted range")
	ErrInvalidDate        = errors.New("date must be in YYYY-MM-DD format")
	ErrWeightEntryMissing = errors.New("no weight entry for that date")
)

const dateLayout = "2006-01-02"

// WeightService manages the body-weight log: one entry per user per day,
// logging twice on a day replaces the earlier value.
type WeightService interface {
	LogWeight(ctx context.Context, userID string, weightKg float64, date string, notes string) (*domain.WeightEntry, error)
	GetHistory(ctx context.Context, userID string) ([]domain.WeightEntry, error)
	DeleteEntry(ctx context.Context, userID string, date string) error
}

// weightService implements the WeightService interface.
type weightService struct {
	weightRepo repository.WeightRepository
}

// NewWeightService creates a new instance of weightService.
func NewWeightService(weightRepo repository.WeightRepository) WeightService {
	return &weightService{weightRepo: weightRepo}
}

// LogWeight stores a measurement for the given day (today when date is
// empty), replacing any measurement already logged that day.
func (s *weightService) LogWeight(ctx context.Context, userID string, weightKg float64, date string, notes string) (*domain.WeightEntry, error) {
	if !domain.WeightInRange(weightKg) {
		return nil, ErrWeightOutOfRange
	}
	if date == "" {
		date = time.Now().UTC().Format(dateLayout)
	} else if _, err := time.Parse(dateLayout, date); err != nil {
		return nil, ErrInvalidDate
	}

	entry := &domain.WeightEntry{
		UserID:    userID,
		Weight:    weightKg,
		Date:      date,
		Notes:     notes,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.weightRepo.Upsert(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// GetHistory returns all measurements for the user, newest first.
func (s *weightService) GetHistory(ctx context.Context, userID string) ([]domain.WeightEntry, error) {
	return s.weightRepo.GetByUser(ctx, userID)
}

// DeleteEntry removes the measurement for one day.
func (s *weightService) DeleteEntry(ctx context.Context, userID string, date string) error {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return ErrInvalidDate
	}
	err := s.weightRepo.Delete(ctx, userID, date)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrWeightEntryMissing
	}
	return err
}
