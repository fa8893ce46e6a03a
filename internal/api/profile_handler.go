package api

import (
	"alcyxob/gym-tracker/internal/domain"
	"alcyxob/gym-tracker/internal/service"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileService service.ProfileService
	statsService   service.StatsService
}

func NewProfileHandler(profileService service.ProfileService, statsService service.StatsService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		statsService:   statsService,
	}
}

// --- DTOs ---

type logWorkoutRequest struct {
	ExerciseName string            `json:"exercise_name" binding:"required"`
	Sets         []domain.SetEntry `json:"sets"`
	PerformedAt  *time.Time        `json:"performed_at"`
	Note         string            `json:"note"`
}

type logGoalRequest struct {
	Description  string            `json:"description" binding:"required"`
	TargetValue  float64           `json:"target_value"`
	CurrentValue float64           `json:"current_value"`
	Status       domain.GoalStatus `json:"status"`
}

type setDateOfBirthRequest struct {
	DateOfBirth time.Time `json:"dob" binding:"required"`
}

// --- Handler Methods ---

// CreateProfile sets up the profile for a user. Calling it for a user who
// already has one responds 200 with the existing record.
func (h *ProfileHandler) CreateProfile(c *gin.Context) {
	userID, ok := getUserIDParam(c)
	if !ok {
		return
	}

	record, err := h.profileService.CreateIfAbsent(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// GetProfile returns the user's profile record, always in valid shape.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := getUserIDParam(c)
	if !ok {
		return
	}

	record, err := h.profileService.Read(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// LogWorkout appends a workout entry to the user's log.
func (h *ProfileHandler) LogWorkout(c *gin.Context) {
	userID, ok := getUserIDParam(c)
	if !ok {
		return
	}

	var req logWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	entry := domain.WorkoutEntry{
		ExerciseName: req.ExerciseName,
		Sets:         req.Sets,
		Note:         req.Note,
	}
	if req.PerformedAt != nil {
		entry.PerformedAt = *req.PerformedAt
	}

	record, err := h.profileService.AppendWorkout(c.Request.Context(), userID, entry)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

// EditWorkout applies a partial edit to one workout entry.
func (h *ProfileHandler) EditWorkout(c *gin.Context) {
	userID, ok := getUserIDParam(c)
	if !ok {
		return
	}
	entryID := c.Param("entryId")

	var patch domain.WorkoutPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	record, err := h.profileService.EditWorkout(c.Request.Context(), userID, entryID, patch)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// DeleteWorkout removes one workout entry.
func (h *ProfileHandler) DeleteWorkout(c *gin.Context) {
	userID, ok := getUserIDParam(c)
	if !ok {
		return
	}
	entryID := c.Param("entryId")

	record, err := h.profileService.DeleteWorkout(c.Request.Context(), userID, entryID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// LogGoal appends a fitness goal to the user's goal list.
func (h *ProfileHandler) LogGoal(c *gin.Context) {
	userID, ok := getUserIDParam(c)
	if !ok {
		return
	}

	var req logGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	entry := domain.GoalEntry{
		Description:  req.Description,
		TargetValue:  req.TargetValue,
		CurrentValue: req.CurrentValue,
		Status:       req.Status,
	}

	record, err := h.profileService.AppendGoal(c.Request.Context(), userID, entry)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

// EditGoal applies a partial edit to one goal.
func (h *ProfileHandler) EditGoal(c *gin.Context) {
	userID, ok := getUserIDParam(c)
	if !ok {
		return
	}
	entryID := c.Param("entryId")

	var patch domain.GoalPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	record, err := h.profileService.EditGoal(c.Request.Context(), userID, entryID, patch)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// DeleteGoal removes one goal.
func (h *ProfileHandler) DeleteGoal(c *gin.Context) {
	userID, ok := getUserIDParam(c)
	if !ok {
		return
	}
	entryID := c.Param("entryId")

	record, err := h.profileService.DeleteGoal(c.Request.Context(), userID, entryID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// SetDateOfBirth records the user's date of birth.
func (h *ProfileHandler) SetDateOfBirth(c *gin.Context) {
	userID, ok := getUserIDParam(c)
	if !ok {
		return
	}

	var req setDateOfBirthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	record, err := h.profileService.SetDateOfBirth(c.Request.Context(), userID, req.DateOfBirth)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// DeleteAccount removes the user's profile record entirely.
func (h *ProfileHandler) DeleteAccount(c *gin.Context) {
	userID, ok := getUserIDParam(c)
	if !ok {
		return
	}

	if err := h.profileService.DeleteAccount(c.Request.Context(), userID); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// GetDashboard returns aggregated stats for the user.
func (h *ProfileHandler) GetDashboard(c *gin.Context) {
	userID, ok := getUserIDParam(c)
	if !ok {
		return
	}

	summary, err := h.statsService.Dashboard(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
