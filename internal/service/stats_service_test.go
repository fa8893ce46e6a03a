package service

import (
	"context"
	"testing"
	"time"

	"alcyxob/gym-tracker/internal/domain"
	"alcyxob/gym-tracker/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateBMI(t *testing.T) {
	bmi, ok := CalculateBMI(70, 175)
	require.True(t, ok)
	assert.Equal(t, 22.86, bmi)

	_, ok = CalculateBMI(5, 175) // implausible weight
	assert.False(t, ok)
	_, ok = CalculateBMI(70, 40) // implausible height
	assert.False(t, ok)
}

func TestBMICategory(t *testing.T) {
	assert.Equal(t, "Underweight", BMICategory(17.0))
	assert.Equal(t, "Normal weight", BMICategory(22.0))
	assert.Equal(t, "Overweight", BMICategory(27.5))
	assert.Equal(t, "Obese", BMICategory(31.0))
}

func TestEstimateCaloriesBurned(t *testing.T) {
	assert.Equal(t, 360, EstimateCaloriesBurned(30, "cardio"))
	assert.Equal(t, 240, EstimateCaloriesBurned(30, "strength"))
	// Unknown types fall back to the general rate.
	assert.Equal(t, 180, EstimateCaloriesBurned(30, "underwater basket weaving"))
	// Invalid durations yield zero.
	assert.Equal(t, 0, EstimateCaloriesBurned(0, "cardio"))
	assert.Equal(t, 0, EstimateCaloriesBurned(301, "cardio"))
}

func TestAgeFromDateOfBirth(t *testing.T) {
	today := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 35, AgeFromDateOfBirth(time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC), today))
	// Birthday later this year.
	assert.Equal(t, 34, AgeFromDateOfBirth(time.Date(1990, 8, 12, 0, 0, 0, 0, time.UTC), today))
	// Birthday today counts.
	assert.Equal(t, 35, AgeFromDateOfBirth(time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC), today))
	assert.Equal(t, 0, AgeFromDateOfBirth(today.AddDate(1, 0, 0), today))
}

func TestWorkoutStreak(t *testing.T) {
	today := time.Date(2025, 6, 15, 18, 0, 0, 0, time.UTC)
	day := func(offset int) time.Time { return today.AddDate(0, 0, offset) }

	workoutsOn := func(offsets ...int) []domain.WorkoutEntry {
		var entries []domain.WorkoutEntry
		for _, o := range offsets {
			entries = append(entries, domain.WorkoutEntry{PerformedAt: day(o)})
		}
		return entries
	}

	assert.Equal(t, 0, WorkoutStreak(nil, nil, today))
	assert.Equal(t, 1, WorkoutStreak(workoutsOn(0), nil, today))
	assert.Equal(t, 3, WorkoutStreak(workoutsOn(0, -1, -2), nil, today))
	// A workout yesterday keeps the streak alive without one today.
	assert.Equal(t, 2, WorkoutStreak(workoutsOn(-1, -2), nil, today))
	// A two day gap breaks the streak.
	assert.Equal(t, 1, WorkoutStreak(workoutsOn(0, -3, -4), nil, today))
	// Multiple workouts the same day count once.
	assert.Equal(t, 1, WorkoutStreak(workoutsOn(0, 0, 0), nil, today))
}

func TestWorkoutStreak_CompletedScheduledDaysCount(t *testing.T) {
	today := time.Date(2025, 6, 15, 18, 0, 0, 0, time.UTC)
	workouts := []domain.WorkoutEntry{{PerformedAt: today}}

	// A completed scheduled workout fills the gap day.
	assert.Equal(t, 1, WorkoutStreak(workouts, nil, today))
	assert.Equal(t, 3, WorkoutStreak(workouts, []string{"2025-06-14", "2025-06-13"}, today))
	// Scheduled days alone carry a streak too.
	assert.Equal(t, 2, WorkoutStreak(nil, []string{"2025-06-15", "2025-06-14"}, today))
	// A logged workout and a completed plan on the same day count once.
	assert.Equal(t, 1, WorkoutStreak(workouts, []string{"2025-06-15"}, today))
}

func TestDashboard(t *testing.T) {
	profileRepo := memory.NewProfileRepository()
	weightRepo := memory.NewWeightRepository()
	profileSvc := NewProfileService(profileRepo, DefaultMaxRetries)
	weightSvc := NewWeightService(weightRepo)
	scheduledSvc := NewScheduledWorkoutService(memory.NewScheduledWorkoutRepository())
	svc := NewStatsService(profileSvc, weightSvc, scheduledSvc)
	ctx := context.Background()

	now := time.Now().UTC()
	_, err := profileSvc.AppendWorkout(ctx, "u1", domain.WorkoutEntry{ExerciseName: "Squat", PerformedAt: now})
	require.NoError(t, err)
	_, err = profileSvc.AppendWorkout(ctx, "u1", domain.WorkoutEntry{ExerciseName: "Run", PerformedAt: now.AddDate(0, 0, -1)})
	require.NoError(t, err)
	_, err = profileSvc.AppendGoal(ctx, "u1", domain.GoalEntry{Description: "Run 10k"})
	require.NoError(t, err)

	status := domain.GoalStatusAbandoned
	record, err := profileSvc.AppendGoal(ctx, "u1", domain.GoalEntry{Description: "Bench 100kg"})
	require.NoError(t, err)
	_, err = profileSvc.EditGoal(ctx, "u1", record.WorkoutInfo.Goals[1].ID, domain.GoalPatch{Status: &status})
	require.NoError(t, err)

	_, err = weightSvc.LogWeight(ctx, "u1", 82.5, "", "")
	require.NoError(t, err)

	// A completed plan two days ago extends the streak and the count; a
	// planned one does not.
	completed := domain.WorkoutStatusCompleted
	_, err = scheduledSvc.Schedule(ctx, "u1", domain.ScheduledWorkout{
		Title: "Leg day", Date: now.AddDate(0, 0, -2).Format("2006-01-02"), Status: completed,
	})
	require.NoError(t, err)
	_, err = scheduledSvc.Schedule(ctx, "u1", domain.ScheduledWorkout{
		Title: "Rest day run", Date: now.AddDate(0, 0, 1).Format("2006-01-02"),
	})
	require.NoError(t, err)

	summary, err := svc.Dashboard(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 3, summary.WorkoutCount)
	assert.Equal(t, 1, summary.ActiveGoals)
	assert.Equal(t, 3, summary.StreakDays)
	require.NotNil(t, summary.LatestWeight)
	assert.Equal(t, 82.5, *summary.LatestWeight)
	assert.Nil(t, summary.Age)
}

func TestDashboard_EmptyProfile(t *testing.T) {
	profileSvc := NewProfileService(memory.NewProfileRepository(), DefaultMaxRetries)
	weightSvc := NewWeightService(memory.NewWeightRepository())
	scheduledSvc := NewScheduledWorkoutService(memory.NewScheduledWorkoutRepository())
	svc := NewStatsService(profileSvc, weightSvc, scheduledSvc)

	summary, err := svc.Dashboard(context.Background(), "fresh")
	require.NoError(t, err)
	assert.Equal(t, 0, summary.WorkoutCount)
	assert.Equal(t, 0, summary.ActiveGoals)
	assert.Equal(t, 0, summary.StreakDays)
	assert.Nil(t, summary.LatestWeight)
}
