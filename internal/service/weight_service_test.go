package service

import (
	"context"
	"testing"
	"time"

	"alcyxob/gym-tracker/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogWeight_DefaultsToToday(t *testing.T) {
	svc := NewWeightService(memory.NewWeightRepository())

	entry, err := svc.LogWeight(context.Background(), "u1", 82.5, "", "")
	require.NoError(t, err)
	assert.Equal(t, time.Now().UTC().Format("2006-01-02"), entry.Date)
	assert.Equal(t, 82.5, entry.Weight)
}

func TestLogWeight_ReplacesSameDay(t *testing.T) {
	svc := NewWeightService(memory.NewWeightRepository())
	ctx := context.Background()

	_, err := svc.LogWeight(ctx, "u1", 82.5, "2025-06-01", "morning")
	require.NoError(t, err)
	_, err = svc.LogWeight(ctx, "u1", 81.9, "2025-06-01", "evening")
	require.NoError(t, err)

	history, err := svc.GetHistory(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, 81.9, history[0].Weight)
	assert.Equal(t, "evening", history[0].Notes)
}

func TestLogWeight_Validation(t *testing.T) {
	svc := NewWeightService(memory.NewWeightRepository())
	ctx := context.Background()

	_, err := svc.LogWeight(ctx, "u1", 10, "", "")
	assert.ErrorIs(t, err, ErrWeightOutOfRange)

	_, err = svc.LogWeight(ctx, "u1", 900, "", "")
	assert.ErrorIs(t, err, ErrWeightOutOfRange)

	_, err = svc.LogWeight(ctx, "u1", 80, "01/06/2025", "")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestWeightHistory_NewestFirst(t *testing.T) {
	svc := NewWeightService(memory.NewWeightRepository())
	ctx := context.Background()

	for _, d := range []string{"2025-06-01", "2025-06-03", "2025-06-02"} {
		_, err := svc.LogWeight(ctx, "u1", 80, d, "")
		require.NoError(t, err)
	}

	history, err := svc.GetHistory(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, "2025-06-03", history[0].Date)
	assert.Equal(t, "2025-06-01", history[2].Date)
}

func TestDeleteWeightEntry(t *testing.T) {
	svc := NewWeightService(memory.NewWeightRepository())
	ctx := context.Background()

	_, err := svc.LogWeight(ctx, "u1", 80, "2025-06-01", "")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteEntry(ctx, "u1", "2025-06-01"))
	assert.ErrorIs(t, svc.DeleteEntry(ctx, "u1", "2025-06-01"), ErrWeightEntryMissing)
	assert.ErrorIs(t, svc.DeleteEntry(ctx, "u1", "not-a-date"), ErrInvalidDate)
}
