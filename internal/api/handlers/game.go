package handlers

import (
	"net/http"
	"strconv"

	"club-stats-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GameHandler handles HTTP requests for a club's game catalog
type GameHandler struct {
	gameService *service.GameService
}

// NewGameHandler creates a new game handler
func NewGameHandler(gameService *service.GameService) *GameHandler {
	return &GameHandler{
		gameService: gameService,
	}
}

// CreateGame creates a new game
// @Summary Create a new game
// @Tags games
// @Accept json
// @Produce json
// @Param game body service.CreateGameRequest true "Game data"
// @Success 201 {object} service.GameResponse "Successfully created game"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Security BearerAuth
// @Router /games [post]
func (h *GameHandler) CreateGame(c *gin.Context) {
	var req service.CreateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	game, err := h.gameService.CreateGame(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, game)
}

// GetGame retrieves a game by ID
// @Summary Get game by ID
// @Tags games
// @Produce json
// @Param id path string true "Game ID (UUID)"
// @Success 200 {object} service.GameResponse
// @Failure 400 {object} map[string]interface{} "Invalid game ID"
// @Failure 404 {object} map[string]interface{} "Game not found"
// @Security BearerAuth
// @Router /games/{id} [get]
func (h *GameHandler) GetGame(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game ID"})
		return
	}

	game, err := h.gameService.GetGameByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, game)
}

// GetGamesByClub retrieves a club's game catalog
// @Summary List games by club
// @Tags games
// @Produce json
// @Param club_id query string false "Club ID (UUID) - used when accessing via /games endpoint"
// @Param limit query int false "Number of items to return" default(20)
// @Param offset query int false "Number of items to skip" default(0)
// @Success 200 {object} map[string]interface{} "Successfully retrieved games list"
// @Failure 400 {object} map[string]interface{} "Invalid club ID"
// @Security BearerAuth
// @Router /games [get]
func (h *GameHandler) GetGamesByClub(c *gin.Context) {
	clubIDStr := c.Param("id")
	if clubIDStr == "" {
		clubIDStr = c.Query("club_id")
	}
	if clubIDStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Club ID is required (provide as query parameter 'club_id' or path parameter 'id')"})
		return
	}

	clubID, err := uuid.Parse(clubIDStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid club ID"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	games, total, err := h.gameService.GetGamesByClub(clubID, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list games"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"games":  games,
		"total":  total,
		"limit":  limit,
		"offset": offset,
	})
}

// SearchGames searches a club's catalog
// @Summary Search games
// @Tags games
// @Produce json
// @Param club_id query string true "Club ID (UUID)"
// @Param q query string true "Search query"
// @Param limit query int false "Number of items to return" default(20)
// @Param offset query int false "Number of items to skip" default(0)
// @Success 200 {object} map[string]interface{} "Successfully retrieved games list"
// @Failure 400 {object} map[string]interface{} "Invalid parameters"
// @Security BearerAuth
// @Router /games/search [get]
func (h *GameHandler) SearchGames(c *gin.Context) {
	clubID, err := uuid.Parse(c.Query("club_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid club ID"})
		return
	}

	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Search query is required"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	games, total, err := h.gameService.SearchGames(clubID, query, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to search games"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"games":  games,
		"total":  total,
		"limit":  limit,
		"offset": offset,
		"query":  query,
	})
}

// UpdateGame updates an existing game
// @Summary Update game
// @Tags games
// @Accept json
// @Produce json
// @Param id path string true "Game ID (UUID)"
// @Param game body service.UpdateGameRequest true "Game data"
// @Success 200 {object} service.GameResponse
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Game not found"
// @Security BearerAuth
// @Router /games/{id} [put]
func (h *GameHandler) UpdateGame(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game ID"})
		return
	}

	var req service.UpdateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	game, err := h.gameService.UpdateGame(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, game)
}

// DeleteGame deletes a game
// @Summary Delete game
// @Description Delete a game. Refused with 409 while any recorded result references it.
// @Tags games
// @Produce json
// @Param id path string true "Game ID (UUID)"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]interface{} "Game not found"
// @Failure 409 {object} map[string]interface{} "Game still has recorded results"
// @Security BearerAuth
// @Router /games/{id} [delete]
func (h *GameHandler) DeleteGame(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game ID"})
		return
	}

	if err := h.gameService.DeleteGame(id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Game deleted successfully"})
}
