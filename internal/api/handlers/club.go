package handlers

import (
	"net/http"
	"strconv"

	"club-stats-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ClubHandler handles HTTP requests for clubs
type ClubHandler struct {
	clubService *service.ClubService
}

// NewClubHandler creates a new club handler
func NewClubHandler(clubService *service.ClubService) *ClubHandler {
	return &ClubHandler{
		clubService: clubService,
	}
}

// CreateClub creates a new club
// @Summary Create a new club
// @Description Create a new club. The URL slug is derived from the name when not provided.
// @Tags clubs
// @Accept json
// @Produce json
// @Param club body service.CreateClubRequest true "Club data"
// @Success 201 {object} service.ClubResponse "Successfully created club"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Club with this slug already exists"
// @Security BearerAuth
// @Router /clubs [post]
func (h *ClubHandler) CreateClub(c *gin.Context) {
	var req service.CreateClubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	club, err := h.clubService.CreateClub(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, club)
}

// ListClubs retrieves clubs with pagination
// @Summary List clubs
// @Tags clubs
// @Produce json
// @Param limit query int false "Number of items to return" default(20)
// @Param offset query int false "Number of items to skip" default(0)
// @Success 200 {object} map[string]interface{} "Successfully retrieved clubs list"
// @Security BearerAuth
// @Router /clubs [get]
func (h *ClubHandler) ListClubs(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	clubs, total, err := h.clubService.GetAllClubs(limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list clubs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"clubs":  clubs,
		"total":  total,
		"limit":  limit,
		"offset": offset,
	})
}

// GetClub retrieves a club by ID
// @Summary Get club by ID
// @Tags clubs
// @Produce json
// @Param id path string true "Club ID (UUID)"
// @Success 200 {object} service.ClubResponse
// @Failure 400 {object} map[string]interface{} "Invalid club ID"
// @Failure 404 {object} map[string]interface{} "Club not found"
// @Security BearerAuth
// @Router /clubs/{id} [get]
func (h *ClubHandler) GetClub(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid club ID"})
		return
	}

	club, err := h.clubService.GetClubByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, club)
}

// GetClubBySlug retrieves a club by its URL slug
// @Summary Get club by slug
// @Tags clubs
// @Produce json
// @Param slug path string true "Club slug"
// @Success 200 {object} service.ClubResponse
// @Failure 404 {object} map[string]interface{} "Club not found"
// @Security BearerAuth
// @Router /clubs/by-slug/{slug} [get]
func (h *ClubHandler) GetClubBySlug(c *gin.Context) {
	club, err := h.clubService.GetClubBySlug(c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, club)
}

// UpdateClub updates an existing club
// @Summary Update club
// @Tags clubs
// @Accept json
// @Produce json
// @Param id path string true "Club ID (UUID)"
// @Param club body service.UpdateClubRequest true "Club data"
// @Success 200 {object} service.ClubResponse
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Club not found"
// @Security BearerAuth
// @Router /clubs/{id} [put]
func (h *ClubHandler) UpdateClub(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid club ID"})
		return
	}

	var req service.UpdateClubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	club, err := h.clubService.UpdateClub(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, club)
}

// DeleteClub deletes a club and everything under it
// @Summary Delete club
// @Tags clubs
// @Produce json
// @Param id path string true "Club ID (UUID)"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]interface{} "Club not found"
// @Security BearerAuth
// @Router /clubs/{id} [delete]
func (h *ClubHandler) DeleteClub(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid club ID"})
		return
	}

	if err := h.clubService.DeleteClub(id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Club deleted successfully"})
}
