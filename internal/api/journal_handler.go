package api

import (
	"alcyxob/gym-tracker/internal/domain"
	"alcyxob/gym-tracker/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

type JournalHandler struct {
	journalService service.JournalService
}

func NewJournalHandler(journalService service.JournalService) *JournalHandler {
	return &JournalHandler{journalService: journalService}
}

type writeJournalRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
	Date    string `json:"date"` // YYYY-MM-DD, defaults to today
	Mood    string `json:"mood"`
}

// WriteJournalEntry stores a diary entry.
func (h *JournalHandler) WriteJournalEntry(c *gin.Context) {
	userID, ok := getUserIDParam(c)
	if !ok {
		return
	}

	var req writeJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	entry, err := h.journalService.Write(c.Request.Context(), userID, domain.JournalEntry{
		Title:   req.Title,
		Content: req.Content,
		Date:    req.Date,
		Mood:    req.Mood,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// GetJournal returns the user's diary entries, newest first.
func (h *JournalHandler) GetJournal(c *gin.Context) {
	userID, ok := getUserIDParam(c)
	if !ok {
		return
	}

	entries, err := h.journalService.List(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// EditJournalEntry applies a partial edit to one diary entry.
func (h *JournalHandler) EditJournalEntry(c *gin.Context) {
	userID, ok := getUserIDParam(c)
	if !ok {
		return
	}
	id, ok := getObjectIDParam(c, "entryId")
	if !ok {
		return
	}

	var patch domain.JournalPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	entry, err := h.journalService.Edit(c.Request.Context(), userID, id, patch)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// DeleteJournalEntry removes one diary entry.
func (h *JournalHandler) DeleteJournalEntry(c *gin.Context) {
	userID, ok := getUserIDParam(c)
	if !ok {
		return
	}
	id, ok := getObjectIDParam(c, "entryId")
	if !ok {
		return
	}

	if err := h.journalService.Delete(c.Request.Context(), userID, id); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
