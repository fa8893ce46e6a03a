package api

import (
	"alcyxob/gym-tracker/internal/domain"
	"alcyxob/gym-tracker/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ScheduleHandler struct {
	scheduledService service.ScheduledWorkoutService
}

func NewScheduleHandler(scheduledService service.ScheduledWorkoutService) *ScheduleHandler {
	return &ScheduleHandler{scheduledService: scheduledService}
}

type scheduleWorkoutRequest struct {
	Title       string               `json:"title" binding:"required"`
	Description string               `json:"description"`
	Date        string               `json:"date" binding:"required"` // YYYY-MM-DD
	Status      domain.WorkoutStatus `json:"status"`
	Notes       string               `json:"notes"`
}

// ScheduleWorkout plans a workout for a calendar day.
func (h *ScheduleHandler) ScheduleWorkout(c *gin.Context) {
	userID, ok := getUserIDParam(c)
	if !ok {
		return
	}

	var req scheduleWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	workout, err := h.scheduledService.Schedule(c.Request.Context(), userID, domain.ScheduledWorkout{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Status:      req.Status,
		Notes:       req.Notes,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, workout)
}

// GetSchedule returns the user's scheduled workouts, earliest first.
func (h *ScheduleHandler) GetSchedule(c *gin.Context) {
	userID, ok := getUserIDParam(c)
	if !ok {
		return
	}

	workouts, err := h.scheduledService.List(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, workouts)
}

// EditScheduledWorkout applies a partial edit, typically the status
// transition to completed or missed.
func (h *ScheduleHandler) EditScheduledWorkout(c *gin.Context) {
	userID, ok := getUserIDParam(c)
	if !ok {
		return
	}
	id, ok := getObjectIDParam(c, "workoutId")
	if !ok {
		return
	}

	var patch domain.ScheduledWorkoutPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	workout, err := h.scheduledService.Edit(c.Request.Context(), userID, id, patch)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, workout)
}

// DeleteScheduledWorkout removes one scheduled workout.
func (h *ScheduleHandler) DeleteScheduledWorkout(c *gin.Context) {
	userID, ok := getUserIDParam(c)
	if !ok {
		return
	}
	id, ok := getObjectIDParam(c, "workoutId")
	if !ok {
		return
	}

	if err := h.scheduledService.Delete(c.Request.Context(), userID, id); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
