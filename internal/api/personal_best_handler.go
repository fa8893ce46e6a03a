package api

import (
	"alcyxob/gym-tracker/internal/domain"
	"alcyxob/gym-tracker/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

type PersonalBestHandler struct {
	personalBestService service.PersonalBestService
}

func NewPersonalBestHandler(personalBestService service.PersonalBestService) *PersonalBestHandler {
	return &PersonalBestHandler{personalBestService: personalBestService}
}

type recordPersonalBestRequest struct {
	Exercise     string                      `json:"exercise" binding:"required"`
	Category     domain.PersonalBestCategory `json:"category"`
	Value        float64                     `json:"value" binding:"required"`
	Unit         string                      `json:"unit" binding:"required"`
	DateAchieved string                      `json:"dateAchieved"` // YYYY-MM-DD, defaults to today
	Notes        string                      `json:"notes"`
}

// RecordPersonalBest submits a result. The response reports whether it
// beat the standing record for that exercise.
func (h *PersonalBestHandler) RecordPersonalBest(c *gin.Context) {
	userID, ok := getUserIDParam(c)
	if !ok {
		return
	}

	var req recordPersonalBestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	pb, isNewRecord, err := h.personalBestService.Record(c.Request.Context(), userID, domain.PersonalBest{
		Exercise:     req.Exercise,
		Category:     req.Category,
		Value:        req.Value,
		Unit:         req.Unit,
		DateAchieved: req.DateAchieved,
		Notes:        req.Notes,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	status := http.StatusOK
	if isNewRecord {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{"record": pb, "isNewRecord": isNewRecord})
}

// GetPersonalBests returns the user's standing records, one per exercise.
func (h *PersonalBestHandler) GetPersonalBests(c *gin.Context) {
	userID, ok := getUserIDParam(c)
	if !ok {
		return
	}

	records, err := h.personalBestService.ListCurrent(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

// EditPersonalBest applies a partial correction to one record.
func (h *PersonalBestHandler) EditPersonalBest(c *gin.Context) {
	userID, ok := getUserIDParam(c)
	if !ok {
		return
	}
	id, ok := getObjectIDParam(c, "recordId")
	if !ok {
		return
	}

	var patch domain.PersonalBestPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	pb, err := h.personalBestService.Edit(c.Request.Context(), userID, id, patch)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, pb)
}

// DeletePersonalBest removes one record.
func (h *PersonalBestHandler) DeletePersonalBest(c *gin.Context) {
	userID, ok := getUserIDParam(c)
	if !ok {
		return
	}
	id, ok := getObjectIDParam(c, "recordId")
	if !ok {
		return
	}

	if err := h.personalBestService.Delete(c.Request.Context(), userID, id); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
