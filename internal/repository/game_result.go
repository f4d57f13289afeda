package repository

import (
	"club-stats-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GameResultRepository handles database operations for individual game results
// and their loser side table
type GameResultRepository struct {
	db *gorm.DB
}

// NewGameResultRepository creates a new game result repository
func NewGameResultRepository(db *gorm.DB) *GameResultRepository {
	return &GameResultRepository{db: db}
}

// Create inserts the result row and one loser row per loser in a single transaction
func (r *GameResultRepository) Create(result *models.GameResult, loserIDs []uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(result).Error; err != nil {
			return err
		}
		for _, memberID := range loserIDs {
			loser := models.GameResultLoser{ResultID: result.ID, MemberID: memberID}
			if err := tx.Create(&loser).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// GetByID retrieves a result with every place slot and the loser list resolved
func (r *GameResultRepository) GetByID(id uuid.UUID) (*models.GameResult, error) {
	var result models.GameResult
	err := r.withParticipants().First(&result, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// GetBySessionID retrieves a result by its public session token
func (r *GameResultRepository) GetBySessionID(sessionID string) (*models.GameResult, error) {
	var result models.GameResult
	err := r.withParticipants().First(&result, "session_id = ?", sessionID).Error
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// GetByGameID retrieves results for a game, newest first, with pagination
func (r *GameResultRepository) GetByGameID(gameID uuid.UUID, limit, offset int) ([]models.GameResult, int64, error) {
	var results []models.GameResult
	var total int64

	if err := r.db.Model(&models.GameResult{}).Where("game_id = ?", gameID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.withParticipants().Where("game_id = ?", gameID).
		Order("played_at DESC").Limit(limit).Offset(offset).Find(&results).Error
	if err != nil {
		return nil, 0, err
	}

	return results, total, nil
}

// GetByClubID retrieves results for a club, newest first, with pagination
func (r *GameResultRepository) GetByClubID(clubID uuid.UUID, limit, offset int) ([]models.GameResult, int64, error) {
	var results []models.GameResult
	var total int64

	if err := r.db.Model(&models.GameResult{}).Where("club_id = ?", clubID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.withParticipants().Where("club_id = ?", clubID).
		Order("played_at DESC").Limit(limit).Offset(offset).Find(&results).Error
	if err != nil {
		return nil, 0, err
	}

	return results, total, nil
}

// Update saves the result row and fully replaces the loser side table
// (delete-all then re-insert) in a single transaction
func (r *GameResultRepository) Update(result *models.GameResult, loserIDs []uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Winner", "Place2", "Place3", "Place4", "Place5", "Place6", "Place7", "Place8", "Losers", "Game", "Club").
			Save(result).Error; err != nil {
			return err
		}
		if err := tx.Where("result_id = ?", result.ID).Delete(&models.GameResultLoser{}).Error; err != nil {
			return err
		}
		for _, memberID := range loserIDs {
			loser := models.GameResultLoser{ResultID: result.ID, MemberID: memberID}
			if err := tx.Create(&loser).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete deletes a result; loser rows are removed by foreign-key cascade
func (r *GameResultRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.GameResult{}, "id = ?", id).Error
}

func (r *GameResultRepository) withParticipants() *gorm.DB {
	return r.db.
		Preload("Game").
		Preload("Winner").
		Preload("Place2").Preload("Place3").Preload("Place4").Preload("Place5").
		Preload("Place6").Preload("Place7").Preload("Place8").
		Preload("Losers.Member")
}
