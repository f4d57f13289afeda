package handlers

import (
	"net/http"
	"strconv"

	"club-stats-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CooperativeResultHandler handles HTTP requests for cooperative game results
type CooperativeResultHandler struct {
	resultService *service.CooperativeResultService
}

// NewCooperativeResultHandler creates a new cooperative result handler
func NewCooperativeResultHandler(resultService *service.CooperativeResultService) *CooperativeResultHandler {
	return &CooperativeResultHandler{
		resultService: resultService,
	}
}

// CreateCoopResult records a new cooperative result
// @Summary Record a cooperative result
// @Description Record a session played with or against the game itself. Participants are either member_ids (participant_type "members") or team_id (participant_type "team").
// @Tags coop-results
// @Accept json
// @Produce json
// @Param result body service.CreateCoopResultRequest true "Result data"
// @Success 201 {object} service.CoopResultResponse "Successfully recorded result"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 500 {object} map[string]interface{} "Save failed"
// @Security BearerAuth
// @Router /coop-results [post]
func (h *CooperativeResultHandler) CreateCoopResult(c *gin.Context) {
	var req service.CreateCoopResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.resultService.CreateCoopResult(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// GetCoopResult retrieves a cooperative result by ID
// @Summary Get cooperative result by ID
// @Tags coop-results
// @Produce json
// @Param id path string true "Result ID (UUID)"
// @Success 200 {object} service.CoopResultResponse
// @Failure 400 {object} map[string]interface{} "Invalid result ID"
// @Failure 404 {object} map[string]interface{} "Result not found"
// @Security BearerAuth
// @Router /coop-results/{id} [get]
func (h *CooperativeResultHandler) GetCoopResult(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid result ID"})
		return
	}

	result, err := h.resultService.GetCoopResultByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListCoopResults retrieves cooperative results for a game or a club
// @Summary List cooperative results
// @Tags coop-results
// @Produce json
// @Param game_id query string false "Game ID (UUID)"
// @Param club_id query string false "Club ID (UUID)"
// @Param limit query int false "Number of items to return" default(20)
// @Param offset query int false "Number of items to skip" default(0)
// @Success 200 {object} map[string]interface{} "Successfully retrieved results list"
// @Failure 400 {object} map[string]interface{} "Invalid parameters"
// @Security BearerAuth
// @Router /coop-results [get]
func (h *CooperativeResultHandler) ListCoopResults(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	var results []service.CoopResultResponse
	var total int64

	switch {
	case c.Query("game_id") != "":
		gameID, err := uuid.Parse(c.Query("game_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game ID"})
			return
		}
		results, total, err = h.resultService.GetCoopResultsByGame(gameID, limit, offset)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list cooperative results"})
			return
		}
	case c.Query("club_id") != "":
		clubID, err := uuid.Parse(c.Query("club_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid club ID"})
			return
		}
		results, total, err = h.resultService.GetCoopResultsByClub(clubID, limit, offset)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list cooperative results"})
			return
		}
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "game_id or club_id query parameter is required"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"results": results,
		"total":   total,
		"limit":   limit,
		"offset":  offset,
	})
}

// UpdateCoopResult rewrites a recorded cooperative result
// @Summary Update cooperative result
// @Description Rewrite a recorded cooperative result. The participant shape cannot change.
// @Tags coop-results
// @Accept json
// @Produce json
// @Param id path string true "Result ID (UUID)"
// @Param result body service.UpdateCoopResultRequest true "Result data"
// @Success 200 {object} service.CoopResultResponse
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Result not found"
// @Security BearerAuth
// @Router /coop-results/{id} [put]
func (h *CooperativeResultHandler) UpdateCoopResult(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid result ID"})
		return
	}

	var req service.UpdateCoopResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.resultService.UpdateCoopResult(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// DeleteCoopResult deletes a recorded cooperative result
// @Summary Delete cooperative result
// @Tags coop-results
// @Produce json
// @Param id path string true "Result ID (UUID)"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]interface{} "Result not found"
// @Security BearerAuth
// @Router /coop-results/{id} [delete]
func (h *CooperativeResultHandler) DeleteCoopResult(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid result ID"})
		return
	}

	if err := h.resultService.DeleteCoopResult(id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Result deleted successfully"})
}
