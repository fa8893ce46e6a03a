package api

import (
	"alcyxob/gym-tracker/internal/service"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Helper to return JSON error response and abort request
func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}

// handleServiceError maps service-layer errors to HTTP responses so every
// handler branches the same way. Unknown errors (storage failures
// included) surface as 500 without being swallowed or retried here.
func handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrEntryNotFound):
		abortWithError(c, http.StatusNotFound, "Entry not found.")
	case errors.Is(err, service.ErrWeightEntryMissing):
		abortWithError(c, http.StatusNotFound, "No weight entry for that date.")
	case errors.Is(err, service.ErrConflictExceeded):
		// Transient; the edit was not lost silently, the caller just needs
		// to resubmit it.
		abortWithError(c, http.StatusConflict, "Profile is being updated by another request, please try again.")
	case errors.Is(err, service.ErrMissingRequiredFields),
		errors.Is(err, service.ErrInvalidGoalStatus),
		errors.Is(err, service.ErrInvalidWorkoutStatus),
		errors.Is(err, service.ErrInvalidCategory),
		errors.Is(err, service.ErrWeightOutOfRange),
		errors.Is(err, service.ErrRestDurationOutOfRange),
		errors.Is(err, service.ErrInvalidDate):
		abortWithError(c, http.StatusBadRequest, err.Error())
	default:
		abortWithError(c, http.StatusInternalServerError, "Internal server error.")
	}
}

// getUserIDParam extracts the user id path parameter.
func getUserIDParam(c *gin.Context) (string, bool) {
	userID := c.Param("userId")
	if userID == "" {
		abortWithError(c, http.StatusBadRequest, "User ID is required.")
		return "", false
	}
	return userID, true
}

// getObjectIDParam extracts and parses an ObjectID path parameter.
func getObjectIDParam(c *gin.Context, name string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(name))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid ID format.")
		return primitive.NilObjectID, false
	}
	return id, true
}
