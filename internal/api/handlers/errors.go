package handlers

import (
	"errors"
	"net/http"

	apperrors "club-stats-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// respondError maps service errors to HTTP responses
func respondError(c *gin.Context, err error) {
	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsAlreadyExists(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrGameHasResults):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperrors.IsValidation(err),
		errors.Is(err, apperrors.ErrDuplicateTeamMembers),
		errors.Is(err, apperrors.ErrTeamNotInClub),
		errors.Is(err, apperrors.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrSaveFailed):
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		// Unrecognized errors are server faults; never echo driver text to clients.
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
