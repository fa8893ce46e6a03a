package service

import (
	"context"
	"testing"

	"alcyxob/gym-tracker/internal/domain"
	"alcyxob/gym-tracker/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newRestTimerService(t *testing.T) RestTimerService {
	t.Helper()
	return NewRestTimerService(memory.NewRestTimerRepository())
}

func TestCreateRestTimer_Defaults(t *testing.T) {
	svc := newRestTimerService(t)

	timer, err := svc.Create(context.Background(), "u1", "", 0, false)
	require.NoError(t, err)
	assert.Equal(t, "Custom Timer", timer.Name)
	assert.Equal(t, domain.DefaultRestSeconds, timer.Duration)
	assert.False(t, timer.IsDefault)
}

func TestCreateRestTimer_DurationRange(t *testing.T) {
	svc := newRestTimerService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "u1", "Too short", 5, false)
	assert.ErrorIs(t, err, ErrRestDurationOutOfRange)

	_, err = svc.Create(ctx, "u1", "Too long", 3601, false)
	assert.ErrorIs(t, err, ErrRestDurationOutOfRange)

	_, err = svc.Create(ctx, "u1", "Boundary", 3600, false)
	require.NoError(t, err)
}

func TestRestTimer_SingleDefault(t *testing.T) {
	svc := newRestTimerService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, "u1", "Heavy sets", 180, true)
	require.NoError(t, err)
	assert.True(t, first.IsDefault)

	// Creating a second default demotes the first.
	second, err := svc.Create(ctx, "u1", "Supersets", 45, true)
	require.NoError(t, err)
	assert.True(t, second.IsDefault)

	timers, err := svc.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, timers, 2)
	assert.Equal(t, "Supersets", timers[0].Name) // Default sorts first
	assert.True(t, timers[0].IsDefault)
	assert.False(t, timers[1].IsDefault)

	// Promoting via edit moves the flag again.
	makeDefault := true
	_, err = svc.Edit(ctx, "u1", first.ID, domain.RestTimerPatch{IsDefault: &makeDefault})
	require.NoError(t, err)

	timers, err = svc.List(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Heavy sets", timers[0].Name)
	assert.True(t, timers[0].IsDefault)
	assert.False(t, timers[1].IsDefault)
}

func TestRestTimer_DefaultsDoNotCrossUsers(t *testing.T) {
	svc := newRestTimerService(t)
	ctx := context.Background()

	mine, err := svc.Create(ctx, "u1", "Mine", 120, true)
	require.NoError(t, err)
	_, err = svc.Create(ctx, "u2", "Theirs", 60, true)
	require.NoError(t, err)

	timers, err := svc.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, timers, 1)
	assert.Equal(t, mine.ID, timers[0].ID)
	assert.True(t, timers[0].IsDefault)
}

func TestEditRestTimer(t *testing.T) {
	svc := newRestTimerService(t)
	ctx := context.Background()

	timer, err := svc.Create(ctx, "u1", "Heavy sets", 180, false)
	require.NoError(t, err)

	duration := 200
	edited, err := svc.Edit(ctx, "u1", timer.ID, domain.RestTimerPatch{Duration: &duration})
	require.NoError(t, err)
	assert.Equal(t, 200, edited.Duration)
	assert.Equal(t, "Heavy sets", edited.Name)

	bad := 4000
	_, err = svc.Edit(ctx, "u1", timer.ID, domain.RestTimerPatch{Duration: &bad})
	assert.ErrorIs(t, err, ErrRestDurationOutOfRange)

	_, err = svc.Edit(ctx, "u1", primitive.NewObjectID(), domain.RestTimerPatch{Duration: &duration})
	assert.ErrorIs(t, err, ErrEntryNotFound)
}

func TestDeleteRestTimer(t *testing.T) {
	svc := newRestTimerService(t)
	ctx := context.Background()

	timer, err := svc.Create(ctx, "u1", "Heavy sets", 180, false)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "u1", timer.ID))
	assert.ErrorIs(t, svc.Delete(ctx, "u1", timer.ID), ErrEntryNotFound)
}
