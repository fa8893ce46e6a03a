package api

import (
	"alcyxob/gym-tracker/internal/domain"
	"alcyxob/gym-tracker/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

type RestTimerHandler struct {
	restTimerService service.RestTimerService
}

func NewRestTimerHandler(restTimerService service.RestTimerService) *RestTimerHandler {
	return &RestTimerHandler{restTimerService: restTimerService}
}

type createRestTimerRequest struct {
	Name      string `json:"name"`
	Duration  int    `json:"duration"` // Seconds, defaults to 90
	IsDefault bool   `json:"isDefault"`
}

// CreateRestTimer stores a rest timer preset.
func (h *RestTimerHandler) CreateRestTimer(c *gin.Context) {
	userID, ok := getUserIDParam(c)
	if !ok {
		return
	}

	var req createRestTimerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	timer, err := h.restTimerService.Create(c.Request.Context(), userID, req.Name, req.Duration, req.IsDefault)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, timer)
}

// GetRestTimers returns the user's presets, the default one first.
func (h *RestTimerHandler) GetRestTimers(c *gin.Context) {
	userID, ok := getUserIDParam(c)
	if !ok {
		return
	}

	timers, err := h.restTimerService.List(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, timers)
}

// EditRestTimer applies a partial edit to one preset.
func (h *RestTimerHandler) EditRestTimer(c *gin.Context) {
	userID, ok := getUserIDParam(c)
	if !ok {
		return
	}
	id, ok := getObjectIDParam(c, "timerId")
	if !ok {
		return
	}

	var patch domain.RestTimerPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	timer, err := h.restTimerService.Edit(c.Request.Context(), userID, id, patch)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, timer)
}

// DeleteRestTimer removes one preset.
func (h *RestTimerHandler) DeleteRestTimer(c *gin.Context) {
	userID, ok := getUserIDParam(c)
	if !ok {
		return
	}
	id, ok := getObjectIDParam(c, "timerId")
	if !ok {
		return
	}

	if err := h.restTimerService.Delete(c.Request.Context(), userID, id); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
