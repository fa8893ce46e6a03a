package api

import (
	"alcyxob/gym-tracker/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

type WeightHandler struct {
	weightService service.WeightService
}

func NewWeightHandler(weightService service.WeightService) *WeightHandler {
	return &WeightHandler{weightService: weightService}
}

type logWeightRequest struct {
	Weight float64 `json:"weight" binding:"required"`
	Date   string  `json:"date"` // YYYY-MM-DD, defaults to today
	Notes  string  `json:"notes"`
}

// LogWeight records a body-weight measurement for a day.
func (h *WeightHandler) LogWeight(c *gin.Context) {
	userID, ok := getUserIDParam(c)
	if !ok {
		return
	}

	var req logWeightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	entry, err := h.weightService.LogWeight(c.Request.Context(), userID, req.Weight, req.Date, req.Notes)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// GetWeightHistory returns all measurements for the user, newest first.
func (h *WeightHandler) GetWeightHistory(c *gin.Context) {
	userID, ok := getUserIDParam(c)
	if !ok {
		return
	}

	entries, err := h.weightService.GetHistory(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// DeleteWeightEntry removes the measurement for one day.
func (h *WeightHandler) DeleteWeightEntry(c *gin.Context) {
	userID, ok := getUserIDParam(c)
	if !ok {
		return
	}
	date := c.Param("date")

	if err := h.weightService.DeleteEntry(c.Request.Context(), userID, date); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
