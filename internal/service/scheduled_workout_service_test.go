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

func newScheduledService(t *testing.T) ScheduledWorkoutService {
	t.Helper()
	return NewScheduledWorkoutService(memory.NewScheduledWorkoutRepository())
}

func TestSchedule_DefaultsToPlanned(t *testing.T) {
	svc := newScheduledService(t)

	workout, err := svc.Schedule(context.Background(), "u1", domain.ScheduledWorkout{
		Title: "Leg day",
		Date:  "2025-06-20",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.WorkoutStatusPlanned, workout.Status)
	assert.False(t, workout.ID.IsZero())
	assert.Equal(t, "u1", workout.UserID)
}

func TestSchedule_Validation(t *testing.T) {
	svc := newScheduledService(t)
	ctx := context.Background()

	_, err := svc.Schedule(ctx, "u1", domain.ScheduledWorkout{Date: "2025-06-20"})
	assert.ErrorIs(t, err, ErrMissingRequiredFields)

	_, err = svc.Schedule(ctx, "u1", domain.ScheduledWorkout{Title: "Leg day"})
	assert.ErrorIs(t, err, ErrMissingRequiredFields)

	_, err = svc.Schedule(ctx, "u1", domain.ScheduledWorkout{Title: "Leg day", Date: "20-06-2025"})
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = svc.Schedule(ctx, "u1", domain.ScheduledWorkout{
		Title: "Leg day", Date: "2025-06-20", Status: domain.WorkoutStatus("cancelled"),
	})
	assert.ErrorIs(t, err, ErrInvalidWorkoutStatus)
}

func TestSchedule_ListOrderedByDate(t *testing.T) {
	svc := newScheduledService(t)
	ctx := context.Background()

	for _, d := range []string{"2025-06-22", "2025-06-20", "2025-06-21"} {
		_, err := svc.Schedule(ctx, "u1", domain.ScheduledWorkout{Title: "Session " + d, Date: d})
		require.NoError(t, err)
	}

	workouts, err := svc.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, workouts, 3)
	assert.Equal(t, "2025-06-20", workouts[0].Date)
	assert.Equal(t, "2025-06-21", workouts[1].Date)
	assert.Equal(t, "2025-06-22", workouts[2].Date)
}

func TestEditScheduledWorkout_StatusTransition(t *testing.T) {
	svc := newScheduledService(t)
	ctx := context.Background()

	workout, err := svc.Schedule(ctx, "u1", domain.ScheduledWorkout{Title: "Leg day", Date: "2025-06-20"})
	require.NoError(t, err)

	completed := domain.WorkoutStatusCompleted
	notes := "felt strong"
	edited, err := svc.Edit(ctx, "u1", workout.ID, domain.ScheduledWorkoutPatch{Status: &completed, Notes: &notes})
	require.NoError(t, err)
	assert.Equal(t, domain.WorkoutStatusCompleted, edited.Status)
	assert.Equal(t, "felt strong", edited.Notes)
	// Untouched fields survive the patch.
	assert.Equal(t, "Leg day", edited.Title)

	bogus := domain.WorkoutStatus("done")
	_, err = svc.Edit(ctx, "u1", workout.ID, domain.ScheduledWorkoutPatch{Status: &bogus})
	assert.ErrorIs(t, err, ErrInvalidWorkoutStatus)
}

func TestEditScheduledWorkout_UnknownID(t *testing.T) {
	svc := newScheduledService(t)

	title := "Push day"
	_, err := svc.Edit(context.Background(), "u1", primitive.NewObjectID(), domain.ScheduledWorkoutPatch{Title: &title})
	assert.ErrorIs(t, err, ErrEntryNotFound)
}

func TestDeleteScheduledWorkout(t *testing.T) {
	svc := newScheduledService(t)
	ctx := context.Background()

	workout, err := svc.Schedule(ctx, "u1", domain.ScheduledWorkout{Title: "Leg day", Date: "2025-06-20"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "u1", workout.ID))
	assert.ErrorIs(t, svc.Delete(ctx, "u1", workout.ID), ErrEntryNotFound)

	workouts, err := svc.List(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, workouts)
}

func TestDeleteScheduledWorkout_OtherUsersWorkoutInvisible(t *testing.T) {
	svc := newScheduledService(t)
	ctx := context.Background()

	workout, err := svc.Schedule(ctx, "u1", domain.ScheduledWorkout{Title: "Leg day", Date: "2025-06-20"})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(ctx, "u2", workout.ID), ErrEntryNotFound)

	workouts, err := svc.List(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, workouts, 1)
}

func TestCompletedDates_DistinctCompletedOnly(t *testing.T) {
	svc := newScheduledService(t)
	ctx := context.Background()

	completed := domain.WorkoutStatusCompleted
	for _, w := range []domain.ScheduledWorkout{
		{Title: "AM run", Date: "2025-06-20", Status: completed},
		{Title: "PM lift", Date: "2025-06-20", Status: completed}, // Same day, counted once
		{Title: "Leg day", Date: "2025-06-21", Status: completed},
		{Title: "Rest walk", Date: "2025-06-22"}, // Planned, not counted
		{Title: "Skipped", Date: "2025-06-19", Status: domain.WorkoutStatusMissed},
	} {
		_, err := svc.Schedule(ctx, "u1", w)
		require.NoError(t, err)
	}

	dates, err := svc.CompletedDates(ctx, "u1")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"2025-06-20", "2025-06-21"}, dates)
}
