package handlers

import (
	"net/http"

	"club-stats-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// StatsHandler handles HTTP requests for statistics
type StatsHandler struct {
	statsService *service.StatsService
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(statsService *service.StatsService) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
	}
}

// GetMemberStats retrieves a member's statistics
// @Summary Get member statistics
// @Description Wins, games played, win rate and average placement for one member. Average placement is null until the member has at least one ranked placement.
// @Tags stats
// @Produce json
// @Param id path string true "Member ID (UUID)"
// @Success 200 {object} service.MemberStatsResponse
// @Failure 400 {object} map[string]interface{} "Invalid member ID"
// @Failure 404 {object} map[string]interface{} "Member not found"
// @Security BearerAuth
// @Router /members/{id}/stats [get]
func (h *StatsHandler) GetMemberStats(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid member ID"})
		return
	}

	stats, err := h.statsService.GetMemberStats(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetClubStandings retrieves a club's standings table
// @Summary Get club standings
// @Description Standings for every member of a club, ordered by wins, then win rate, then name
// @Tags stats
// @Produce json
// @Param id path string true "Club ID (UUID)"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{} "Invalid club ID"
// @Security BearerAuth
// @Router /clubs/{id}/standings [get]
func (h *StatsHandler) GetClubStandings(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid club ID"})
		return
	}

	standings, err := h.statsService.GetClubStandings(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"standings": standings,
		"total":     len(standings),
	})
}

// GetGameCoopRecord retrieves a game's cooperative win/loss record
// @Summary Get game cooperative record
// @Tags stats
// @Produce json
// @Param id path string true "Game ID (UUID)"
// @Success 200 {object} service.GameCoopRecordResponse
// @Failure 400 {object} map[string]interface{} "Invalid game ID"
// @Failure 404 {object} map[string]interface{} "Game not found"
// @Security BearerAuth
// @Router /games/{id}/coop-record [get]
func (h *StatsHandler) GetGameCoopRecord(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game ID"})
		return
	}

	record, err := h.statsService.GetGameCoopRecord(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}
