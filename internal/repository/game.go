package repository

import (
	"club-stats-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GameRepository handles database operations for games
type GameRepository struct {
	db *gorm.DB
}

// NewGameRepository creates a new game repository
func NewGameRepository(db *gorm.DB) *GameRepository {
	return &GameRepository{db: db}
}

// Create creates a new game
func (r *GameRepository) Create(game *models.Game) error {
	return r.db.Create(game).Error
}

// GetByID retrieves a game by ID
func (r *GameRepository) GetByID(id uuid.UUID) (*models.Game, error) {
	var game models.Game
	err := r.db.First(&game, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &game, nil
}

// GetByClubID retrieves all games for a club with pagination
func (r *GameRepository) GetByClubID(clubID uuid.UUID, limit, offset int) ([]models.Game, int64, error) {
	var games []models.Game
	var total int64

	if err := r.db.Model(&models.Game{}).Where("club_id = ?", clubID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("club_id = ?", clubID).Order("name").Limit(limit).Offset(offset).Find(&games).Error
	if err != nil {
		return nil, 0, err
	}

	return games, total, nil
}

// Search searches for games by name within a club
func (r *GameRepository) Search(clubID uuid.UUID, query string, limit, offset int) ([]models.Game, int64, error) {
	var games []models.Game
	var total int64

	searchQuery := r.db.Model(&models.Game{}).Where("club_id = ? AND name ILIKE ?", clubID, "%"+query+"%")

	if err := searchQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := searchQuery.Order("name").Limit(limit).Offset(offset).Find(&games).Error
	if err != nil {
		return nil, 0, err
	}

	return games, total, nil
}

// Update updates a game
func (r *GameRepository) Update(game *models.Game) error {
	return r.db.Save(game).Error
}

// Delete deletes a game
func (r *GameRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Game{}, "id = ?", id).Error
}

// CountResults counts every result row referencing the game across the three
// result tables. Used by the delete guard.
func (r *GameRepository) CountResults(gameID uuid.UUID) (int64, error) {
	var total, count int64

	if err := r.db.Model(&models.GameResult{}).Where("game_id = ?", gameID).Count(&count).Error; err != nil {
		return 0, err
	}
	total += count

	if err := r.db.Model(&models.TeamGameResult{}).Where("game_id = ?", gameID).Count(&count).Error; err != nil {
		return 0, err
	}
	total += count

	if err := r.db.Model(&models.CooperativeGameResult{}).Where("game_id = ?", gameID).Count(&count).Error; err != nil {
		return 0, err
	}
	total += count

	return total, nil
}
