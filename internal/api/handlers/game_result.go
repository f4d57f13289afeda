package handlers

import (
	"net/http"
	"strconv"

	"club-stats-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GameResultHandler handles HTTP requests for individual game results
type GameResultHandler struct {
	resultService *service.GameResultService
}

// NewGameResultHandler creates a new game result handler
func NewGameResultHandler(resultService *service.GameResultService) *GameResultHandler {
	return &GameResultHandler{
		resultService: resultService,
	}
}

// CreateGameResult records a new individual result
// @Summary Record an individual result
// @Description Record one played session. Mode "ranked" takes places (ordered members behind the winner, up to 7); mode "winner_losers" takes loser_ids (unordered).
// @Tags results
// @Accept json
// @Produce json
// @Param result body service.CreateGameResultRequest true "Result data"
// @Success 201 {object} service.GameResultResponse "Successfully recorded result"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 500 {object} map[string]interface{} "Save failed"
// @Security BearerAuth
// @Router /results [post]
func (h *GameResultHandler) CreateGameResult(c *gin.Context) {
	var req service.CreateGameResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.resultService.CreateGameResult(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// GetGameResult retrieves a result by ID
// @Summary Get result by ID
// @Tags results
// @Produce json
// @Param id path string true "Result ID (UUID)"
// @Success 200 {object} service.GameResultResponse
// @Failure 400 {object} map[string]interface{} "Invalid result ID"
// @Failure 404 {object} map[string]interface{} "Result not found"
// @Security BearerAuth
// @Router /results/{id} [get]
func (h *GameResultHandler) GetGameResult(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid result ID"})
		return
	}

	result, err := h.resultService.GetGameResultByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetGameResultBySession retrieves a result by its session identifier
// @Summary Get result by session ID
// @Tags results
// @Produce json
// @Param session_id path string true "Session identifier"
// @Success 200 {object} service.GameResultResponse
// @Failure 404 {object} map[string]interface{} "Result not found"
// @Security BearerAuth
// @Router /results/by-session/{session_id} [get]
func (h *GameResultHandler) GetGameResultBySession(c *gin.Context) {
	result, err := h.resultService.GetGameResultBySession(c.Param("session_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListGameResults retrieves results for a game or a club
// @Summary List results
// @Description List results filtered by game_id or club_id, newest first
// @Tags results
// @Produce json
// @Param game_id query string false "Game ID (UUID)"
// @Param club_id query string false "Club ID (UUID)"
// @Param limit query int false "Number of items to return" default(20)
// @Param offset query int false "Number of items to skip" default(0)
// @Success 200 {object} map[string]interface{} "Successfully retrieved results list"
// @Failure 400 {object} map[string]interface{} "Invalid parameters"
// @Security BearerAuth
// @Router /results [get]
func (h *GameResultHandler) ListGameResults(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	var results []service.GameResultResponse
	var total int64

	switch {
	case c.Query("game_id") != "":
		gameID, err := uuid.Parse(c.Query("game_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game ID"})
			return
		}
		results, total, err = h.resultService.GetGameResultsByGame(gameID, limit, offset)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list results"})
			return
		}
	case c.Query("club_id") != "":
		clubID, err := uuid.Parse(c.Query("club_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid club ID"})
			return
		}
		results, total, err = h.resultService.GetGameResultsByClub(clubID, limit, offset)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list results"})
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

// UpdateGameResult rewrites a recorded result
// @Summary Update result
// @Description Rewrite a recorded result. The mode cannot change; participant lists are replaced wholesale.
// @Tags results
// @Accept json
// @Produce json
// @Param id path string true "Result ID (UUID)"
// @Param result body service.UpdateGameResultRequest true "Result data"
// @Success 200 {object} service.GameResultResponse
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Result not found"
// @Security BearerAuth
// @Router /results/{id} [put]
func (h *GameResultHandler) UpdateGameResult(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid result ID"})
		return
	}

	var req service.UpdateGameResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.resultService.UpdateGameResult(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// DeleteGameResult deletes a recorded result
// @Summary Delete result
// @Tags results
// @Produce json
// @Param id path string true "Result ID (UUID)"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]interface{} "Result not found"
// @Security BearerAuth
// @Router /results/{id} [delete]
func (h *GameResultHandler) DeleteGameResult(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid result ID"})
		return
	}

	if err := h.resultService.DeleteGameResult(id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Result deleted successfully"})
}
