package api

import (
	"alcyxob/gym-tracker/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

// SetupRoutes wires the HTTP surface. User identity arrives as a path
// parameter; authenticating that identity is the job of whatever sits in
// front of this service.
func SetupRoutes(
	router *gin.Engine,
	profileService service.ProfileService,
	weightService service.WeightService,
	scheduledService service.ScheduledWorkoutService,
	personalBestService service.PersonalBestService,
	restTimerService service.RestTimerService,
	journalService service.JournalService,
	statsService service.StatsService,
) {
	profileHandler := NewProfileHandler(profileService, statsService)
	weightHandler := NewWeightHandler(weightService)
	scheduleHandler := NewScheduleHandler(scheduledService)
	personalBestHandler := NewPersonalBestHandler(personalBestService)
	restTimerHandler := NewRestTimerHandler(restTimerService)
	journalHandler := NewJournalHandler(journalService)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		userGroup := apiV1.Group("/users/:userId")
		{
			userGroup.POST("/profile", profileHandler.CreateProfile)
			userGroup.GET("/profile", profileHandler.GetProfile)
			userGroup.PUT("/profile/dob", profileHandler.SetDateOfBirth)
			userGroup.DELETE("/account", profileHandler.DeleteAccount)

			// --- Workout Log ---
			userGroup.POST("/workouts", profileHandler.LogWorkout)
			userGroup.PUT("/workouts/:entryId", profileHandler.EditWorkout)
			userGroup.DELETE("/workouts/:entryId", profileHandler.DeleteWorkout)

			// --- Goals ---
			userGroup.POST("/goals", profileHandler.LogGoal)
			userGroup.PUT("/goals/:entryId", profileHandler.EditGoal)
			userGroup.DELETE("/goals/:entryId", profileHandler.DeleteGoal)

			// --- Weight Log ---
			userGroup.POST("/weights", weightHandler.LogWeight)
			userGroup.GET("/weights", weightHandler.GetWeightHistory)
			userGroup.DELETE("/weights/:date", weightHandler.DeleteWeightEntry)

			// --- Workout Calendar ---
			userGroup.POST("/schedule", scheduleHandler.ScheduleWorkout)
			userGroup.GET("/schedule", scheduleHandler.GetSchedule)
			userGroup.PATCH("/schedule/:workoutId", scheduleHandler.EditScheduledWorkout)
			userGroup.DELETE("/schedule/:workoutId", scheduleHandler.DeleteScheduledWorkout)

			// --- Personal Bests ---
			userGroup.POST("/personal-bests", personalBestHandler.RecordPersonalBest)
			userGroup.GET("/personal-bests", personalBestHandler.GetPersonalBests)
			userGroup.PATCH("/personal-bests/:recordId", personalBestHandler.EditPersonalBest)
			userGroup.DELETE("/personal-bests/:recordId", personalBestHandler.DeletePersonalBest)

			// --- Rest Timers ---
			userGroup.POST("/rest-timers", restTimerHandler.CreateRestTimer)
			userGroup.GET("/rest-timers", restTimerHandler.GetRestTimers)
			userGroup.PATCH("/rest-timers/:timerId", restTimerHandler.EditRestTimer)
			userGroup.DELETE("/rest-timers/:timerId", restTimerHandler.DeleteRestTimer)

			// --- Journal ---
			userGroup.POST("/journal", journalHandler.WriteJournalEntry)
			userGroup.GET("/journal", journalHandler.GetJournal)
			userGroup.PATCH("/journal/:entryId", journalHandler.EditJournalEntry)
			userGroup.DELETE("/journal/:entryId", journalHandler.DeleteJournalEntry)

			// --- Dashboard ---
			userGroup.GET("/stats", profileHandler.GetDashboard)
		}
	}
}
