package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		info        WorkoutInfo
		wantValid   bool
		wantMissing []string
	}{
		{
			name:        "fully empty document",
			info:        WorkoutInfo{},
			wantValid:   false,
			wantMissing: []string{KeyWorkouts, KeyGoals},
		},
		{
			name:        "missing goals only",
			info:        WorkoutInfo{Workouts: []WorkoutEntry{}},
			wantValid:   false,
			wantMissing: []string{KeyGoals},
		},
		{
			name:        "missing workouts only",
			info:        WorkoutInfo{Goals: []GoalEntry{}},
			wantValid:   false,
			wantMissing: []string{KeyWorkouts},
		},
		{
			name:      "valid empty sequences",
			info:      WorkoutInfo{Workouts: []WorkoutEntry{}, Goals: []GoalEntry{}},
			wantValid: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Validate(&ProfileRecord{UserID: "u1", WorkoutInfo: tt.info})
			assert.Equal(t, tt.wantValid, result.Valid)
			assert.Equal(t, tt.wantMissing, result.MissingKeys)
		})
	}
}

func TestNormalize_RepairsMissingKeys(t *testing.T) {
	existing := []WorkoutEntry{{ID: "w1", ExerciseName: "Squat"}}
	record := &ProfileRecord{
		UserID:      "u1",
		WorkoutInfo: WorkoutInfo{Workouts: existing},
		Version:     3,
	}

	normalized := Normalize(record)

	require.True(t, Validate(normalized).Valid)
	// Present data survives untouched, missing keys become empty sequences.
	assert.Equal(t, existing, normalized.WorkoutInfo.Workouts)
	assert.Equal(t, []GoalEntry{}, normalized.WorkoutInfo.Goals)
	assert.Equal(t, int64(3), normalized.Version)
	// The malformed input itself is not mutated.
	assert.Nil(t, record.WorkoutInfo.Goals)
}

func TestNormalize_Idempotent(t *testing.T) {
	record := &ProfileRecord{UserID: "u1"}

	once := Normalize(record)
	twice := Normalize(once)

	assert.Equal(t, once, twice)
	// A valid record passes through without copying.
	assert.Same(t, once, twice)
}

func TestNormalize_ValidRecordUnchanged(t *testing.T) {
	record := NewProfileRecord("u1", time.Now().UTC())
	record.WorkoutInfo.Workouts = append(record.WorkoutInfo.Workouts, WorkoutEntry{ID: "w1", ExerciseName: "Deadlift"})

	assert.Same(t, record, Normalize(record))
}

func TestWorkoutInfo_WireShape(t *testing.T) {
	normalized := Normalize(&ProfileRecord{UserID: "u1"})

	data, err := json.Marshal(normalized.WorkoutInfo)
	require.NoError(t, err)
	assert.JSONEq(t, `{"workouts":[],"goals":[]}`, string(data))

	entry := WorkoutEntry{
		ID:           "w1",
		ExerciseName: "Bench Press",
		Sets:         []SetEntry{{Reps: 5, Weight: 80, Unit: "kg"}},
		PerformedAt:  time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
	}
	data, err = json.Marshal(entry)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": "w1",
		"exercise_name": "Bench Press",
		"sets": [{"reps": 5, "weight": 80, "unit": "kg"}],
		"performed_at": "2025-06-01T10:00:00Z"
	}`, string(data))
}

func TestClone_Independence(t *testing.T) {
	record := NewProfileRecord("u1", time.Now().UTC())
	record.WorkoutInfo.Workouts = append(record.WorkoutInfo.Workouts, WorkoutEntry{
		ID:           "w1",
		ExerciseName: "Squat",
		Sets:         []SetEntry{{Reps: 5, Weight: 100, Unit: "kg"}},
	})

	clone := record.Clone()
	clone.WorkoutInfo.Workouts[0].ExerciseName = "Front Squat"
	clone.WorkoutInfo.Workouts[0].Sets[0].Reps = 3
	clone.WorkoutInfo.Goals = append(clone.WorkoutInfo.Goals, GoalEntry{ID: "g1"})

	assert.Equal(t, "Squat", record.WorkoutInfo.Workouts[0].ExerciseName)
	assert.Equal(t, 5, record.WorkoutInfo.Workouts[0].Sets[0].Reps)
	assert.Empty(t, record.WorkoutInfo.Goals)
}

func TestPatches_ApplyOnlySetFields(t *testing.T) {
	entry := WorkoutEntry{ID: "w1", ExerciseName: "Squat", Note: "heavy"}
	name := "Box Squat"
	WorkoutPatch{ExerciseName: &name}.Apply(&entry)
	assert.Equal(t, "Box Squat", entry.ExerciseName)
	assert.Equal(t, "heavy", entry.Note)

	goal := GoalEntry{ID: "g1", Description: "Run 10k", Status: GoalStatusActive}
	status := GoalStatusAchieved
	current := 10.0
	GoalPatch{Status: &status, CurrentValue: &current}.Apply(&goal)
	assert.Equal(t, GoalStatusAchieved, goal.Status)
	assert.Equal(t, 10.0, goal.CurrentValue)
	assert.Equal(t, "Run 10k", goal.Description)
}

func TestGoalStatus_IsValid(t *testing.T) {
	assert.True(t, GoalStatusActive.IsValid())
	assert.True(t, GoalStatusAchieved.IsValid())
	assert.True(t, GoalStatusAbandoned.IsValid())
	assert.False(t, GoalStatus("paused").IsValid())
}
