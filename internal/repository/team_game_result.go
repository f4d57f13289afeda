package repository

import (
	"club-stats-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamGameResultRepository handles database operations for team game results
type TeamGameResultRepository struct {
	db *gorm.DB
}

// NewTeamGameResultRepository creates a new team game result repository
func NewTeamGameResultRepository(db *gorm.DB) *TeamGameResultRepository {
	return &TeamGameResultRepository{db: db}
}

// Create creates a new team game result
func (r *TeamGameResultRepository) Create(result *models.TeamGameResult) error {
	return r.db.Create(result).Error
}

// GetByID retrieves a team result with every place slot resolved
func (r *TeamGameResultRepository) GetByID(id uuid.UUID) (*models.TeamGameResult, error) {
	var result models.TeamGameResult
	err := r.withTeams().First(&result, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// GetByGameID retrieves team results for a game, newest first, with pagination
func (r *TeamGameResultRepository) GetByGameID(gameID uuid.UUID, limit, offset int) ([]models.TeamGameResult, int64, error) {
	var results []models.TeamGameResult
	var total int64

	if err := r.db.Model(&models.TeamGameResult{}).Where("game_id = ?", gameID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.withTeams().Where("game_id = ?", gameID).
		Order("played_at DESC").Limit(limit).Offset(offset).Find(&results).Error
	if err != nil {
		return nil, 0, err
	}

	return results, total, nil
}

// GetByClubID retrieves team results for a club, newest first, with pagination
func (r *TeamGameResultRepository) GetByClubID(clubID uuid.UUID, limit, offset int) ([]models.TeamGameResult, int64, error) {
	var results []models.TeamGameResult
	var total int64

	if err := r.db.Model(&models.TeamGameResult{}).Where("club_id = ?", clubID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.withTeams().Where("club_id = ?", clubID).
		Order("played_at DESC").Limit(limit).Offset(offset).Find(&results).Error
	if err != nil {
		return nil, 0, err
	}

	return results, total, nil
}

// Update saves the team result row, replacing all place columns
func (r *TeamGameResultRepository) Update(result *models.TeamGameResult) error {
	return r.db.Omit("WinnerTeam", "Place2Team", "Place3Team", "Place4Team", "Place5Team",
		"Place6Team", "Place7Team", "Place8Team", "Game", "Club").
		Save(result).Error
}

// Delete deletes a team game result
func (r *TeamGameResultRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.TeamGameResult{}, "id = ?", id).Error
}

func (r *TeamGameResultRepository) withTeams() *gorm.DB {
	return r.db.
		Preload("Game").
		Preload("WinnerTeam").
		Preload("Place2Team").Preload("Place3Team").Preload("Place4Team").Preload("Place5Team").
		Preload("Place6Team").Preload("Place7Team").Preload("Place8Team")
}
