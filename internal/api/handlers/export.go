package handlers

import (
	"net/http"

	"club-stats-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ExportHandler handles HTTP requests for club data exports
type ExportHandler struct {
	exportService *service.ExportService
}

// NewExportHandler creates a new export handler
func NewExportHandler(exportService *service.ExportService) *ExportHandler {
	return &ExportHandler{
		exportService: exportService,
	}
}

// ExportClub exports a club's full data set
// @Summary Export club data
// @Description Write a JSON snapshot of the club's members, teams, games and results to the export directory, mirrored to the object store when one is configured
// @Tags exports
// @Produce json
// @Param id path string true "Club ID (UUID)"
// @Success 200 {object} service.ExportResponse
// @Failure 400 {object} map[string]interface{} "Invalid club ID"
// @Failure 404 {object} map[string]interface{} "Club not found"
// @Security BearerAuth
// @Router /clubs/{id}/export [post]
func (h *ExportHandler) ExportClub(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid club ID"})
		return
	}

	response, err := h.exportService.ExportClub(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
