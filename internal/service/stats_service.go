package service

import (
	"alcyxob/gym-tracker/internal/domain"
	"context"
	"math"
	"sort"
	"strings"
	"time"
)

// Input ranges for the health calculations.
const (
	minHeightCm       = 50.0
	maxHeightCm       = 300.0
	minWorkoutMinutes = 1
	maxWorkoutMinutes = 300 // 5 hours maximum workout duration
	minAge            = 13
	maxAge            = 120
)

// DashboardSummary aggregates profile, goal, schedule and weight data
// for the dashboard endpoint. WorkoutCount covers both logged workouts
// and completed scheduled ones.
type DashboardSummary struct {
	WorkoutCount int      `json:"workoutCount"`
	ActiveGoals  int      `json:"activeGoals"`
	StreakDays   int      `json:"streakDays"`
	LatestWeight *float64 `json:"latestWeight,omitempty"`
	Age          *int     `json:"age,omitempty"`
}

// StatsService computes fitness metrics from the data the other services
// manage. All calculations are pure; Dashboard is the only method that
// touches storage (through the other services).
type StatsService interface {
	Dashboard(ctx context.Context, userID string) (*DashboardSummary, error)
}

// statsService implements the StatsService interface.
type statsService struct {
	profileService   ProfileService
	weightService    WeightService
	scheduledService ScheduledWorkoutService
}

// NewStatsService creates a new instance of statsService.
func NewStatsService(profileService ProfileService, weightService WeightService, scheduledService ScheduledWorkoutService) StatsService {
	return &statsService{
		profileService:   profileService,
		weightService:    weightService,
		scheduledService: scheduledService,
	}
}

// Dashboard assembles the summary for one user.
func (s *statsService) Dashboard(ctx context.Context, userID string) (*DashboardSummary, error) {
	record, err := s.profileService.Read(ctx, userID)
	if err != nil {
		return nil, err
	}
	completedDates, err := s.scheduledService.CompletedDates(ctx, userID)
	if err != nil {
		return nil, err
	}

	summary := &DashboardSummary{
		WorkoutCount: len(record.WorkoutInfo.Workouts) + len(completedDates),
		StreakDays:   WorkoutStreak(record.WorkoutInfo.Workouts, completedDates, time.Now().UTC()),
	}
	for _, goal := range record.WorkoutInfo.Goals {
		if goal.Status == domain.GoalStatusActive {
			summary.ActiveGoals++
		}
	}
	if record.DateOfBirth != nil {
		age := AgeFromDateOfBirth(*record.DateOfBirth, time.Now().UTC())
		summary.Age = &age
	}

	weights, err := s.weightService.GetHistory(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(weights) > 0 {
		latest := weights[0].Weight // history is newest first
		summary.LatestWeight = &latest
	}

	return summary, nil
}

// CalculateBMI computes the body mass index from weight in kilograms and
// height in centimeters, rounded to two decimals. Returns false when an
// input is outside the plausible range.
func CalculateBMI(weightKg, heightCm float64) (float64, bool) {
	if !domain.WeightInRange(weightKg) || heightCm < minHeightCm || heightCm > maxHeightCm {
		return 0, false
	}
	heightM := heightCm / 100.0
	bmi := weightKg / (heightM * heightM)
	return math.Round(bmi*100) / 100, true
}

// BMICategory classifies a BMI value.
func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25:
		return "Normal weight"
	case bmi < 30:
		return "Overweight"
	default:
		return "Obese"
	}
}

// Calorie burn rates per minute by workout type.
var calorieRates = map[string]float64{
	"strength":    8.0,
	"cardio":      12.0,
	"flexibility": 4.0,
	"hiit":        15.0,
	"general":     6.0,
}

// EstimateCaloriesBurned estimates calories burned for a workout of the
// given duration and type. Unknown types use the general rate; an invalid
// duration yields 0.
func EstimateCaloriesBurned(durationMinutes int, workoutType string) int {
	if durationMinutes < minWorkoutMinutes || durationMinutes > maxWorkoutMinutes {
		return 0
	}
	rate, ok := calorieRates[strings.ToLower(workoutType)]
	if !ok {
		rate = calorieRates["general"]
	}
	return int(float64(durationMinutes) * rate)
}

// AgeFromDateOfBirth computes age in whole years as of the given day.
func AgeFromDateOfBirth(dob, today time.Time) int {
	age := today.Year() - dob.Year()
	if today.Month() < dob.Month() || (today.Month() == dob.Month() && today.Day() < dob.Day()) {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}

// AgeInRange reports whether age is plausible for a gym membership.
func AgeInRange(age int) bool {
	return age >= minAge && age <= maxAge
}

// WorkoutStreak counts consecutive days with at least one workout, ending
// today or yesterday (a workout logged yesterday keeps today's streak
// alive). extraDates are additional YYYY-MM-DD days that count as workout
// days, such as completed scheduled workouts.
func WorkoutStreak(workouts []domain.WorkoutEntry, extraDates []string, today time.Time) int {
	dates := map[string]bool{}
	for _, w := range workouts {
		if !w.PerformedAt.IsZero() {
			dates[w.PerformedAt.UTC().Format(dateLayout)] = true
		}
	}
	for _, d := range extraDates {
		dates[d] = true
	}
	if len(dates) == 0 {
		return 0
	}

	sorted := make([]string, 0, len(dates))
	for d := range dates {
		sorted = append(sorted, d)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(sorted)))

	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	streak := 0
	for _, d := range sorted {
		switch d {
		case day.Format(dateLayout):
			streak++
			day = day.AddDate(0, 0, -1)
		case day.AddDate(0, 0, -1).Format(dateLayout):
			// Allow a one day gap so a streak survives until end of today.
			streak++
			day = day.AddDate(0, 0, -2)
		default:
			return streak
		}
	}
	return streak
}
