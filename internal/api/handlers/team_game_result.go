package handlers

import (
	"net/http"
	"strconv"

	"club-stats-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TeamGameResultHandler handles HTTP requests for team game results
type TeamGameResultHandler struct {
	resultService *service.TeamGameResultService
}

// NewTeamGameResultHandler creates a new team game result handler
func NewTeamGameResultHandler(resultService *service.TeamGameResultService) *TeamGameResultHandler {
	return &TeamGameResultHandler{
		resultService: resultService,
	}
}

// CreateTeamGameResult records a new team result
// @Summary Record a team result
// @Description Record one played session between teams. Places holds the teams behind the winner in finishing order, up to 7.
// @Tags team-results
// @Accept json
// @Produce json
// @Param result body service.CreateTeamGameResultRequest true "Result data"
// @Success 201 {object} service.TeamGameResultResponse "Successfully recorded result"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 500 {object} map[string]interface{} "Save failed"
// @Security BearerAuth
// @Router /team-results [post]
func (h *TeamGameResultHandler) CreateTeamGameResult(c *gin.Context) {
	var req service.CreateTeamGameResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.resultService.CreateTeamGameResult(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// GetTeamGameResult retrieves a team result by ID
// @Summary Get team result by ID
// @Tags team-results
// @Produce json
// @Param id path string true "Result ID (UUID)"
// @Success 200 {object} service.TeamGameResultResponse
// @Failure 400 {object} map[string]interface{} "Invalid result ID"
// @Failure 404 {object} map[string]interface{} "Result not found"
// @Security BearerAuth
// @Router /team-results/{id} [get]
func (h *TeamGameResultHandler) GetTeamGameResult(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid result ID"})
		return
	}

	result, err := h.resultService.GetTeamGameResultByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListTeamGameResults retrieves team results for a game or a club
// @Summary List team results
// @Tags team-results
// @Produce json
// @Param game_id query string false "Game ID (UUID)"
// @Param club_id query string false "Club ID (UUID)"
// @Param limit query int false "Number of items to return" default(20)
// @Param offset query int false "Number of items to skip" default(0)
// @Success 200 {object} map[string]interface{} "Successfully retrieved results list"
// @Failure 400 {object} map[string]interface{} "Invalid parameters"
// @Security BearerAuth
// @Router /team-results [get]
func (h *TeamGameResultHandler) ListTeamGameResults(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	var results []service.TeamGameResultResponse
	var total int64

	switch {
	case c.Query("game_id") != "":
		gameID, err := uuid.Parse(c.Query("game_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game ID"})
			return
		}
		results, total, err = h.resultService.GetTeamGameResultsByGame(gameID, limit, offset)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list team results"})
			return
		}
	case c.Query("club_id") != "":
		clubID, err := uuid.Parse(c.Query("club_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid club ID"})
			return
		}
		results, total, err = h.resultService.GetTeamGameResultsByClub(clubID, limit, offset)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list team results"})
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

// UpdateTeamGameResult rewrites a recorded team result
// @Summary Update team result
// @Tags team-results
// @Accept json
// @Produce json
// @Param id path string true "Result ID (UUID)"
// @Param result body service.UpdateTeamGameResultRequest true "Result data"
// @Success 200 {object} service.TeamGameResultResponse
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Result not found"
// @Security BearerAuth
// @Router /team-results/{id} [put]
func (h *TeamGameResultHandler) UpdateTeamGameResult(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid result ID"})
		return
	}

	var req service.UpdateTeamGameResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.resultService.UpdateTeamGameResult(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// DeleteTeamGameResult deletes a recorded team result
// @Summary Delete team result
// @Tags team-results
// @Produce json
// @Param id path string true "Result ID (UUID)"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]interface{} "Result not found"
// @Security BearerAuth
// @Router /team-results/{id} [delete]
func (h *TeamGameResultHandler) DeleteTeamGameResult(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid result ID"})
		return
	}

	if err := h.resultService.DeleteTeamGameResult(id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Result deleted successfully"})
}
