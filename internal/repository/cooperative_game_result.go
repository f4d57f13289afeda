package repository

import (
	"club-stats-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CooperativeResultRepository handles database operations for cooperative game
// results and their participant side table
type CooperativeResultRepository struct {
	db *gorm.DB
}

// NewCooperativeResultRepository creates a new cooperative result repository
func NewCooperativeResultRepository(db *gorm.DB) *CooperativeResultRepository {
	return &CooperativeResultRepository{db: db}
}

// Create inserts the result row and one participant row per member in a single transaction
func (r *CooperativeResultRepository) Create(result *models.CooperativeGameResult, memberIDs []uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(result).Error; err != nil {
			return err
		}
		for _, memberID := range memberIDs {
			participant := models.CooperativeResultParticipant{ResultID: result.ID, MemberID: memberID}
			if err := tx.Create(&participant).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// GetByID retrieves a cooperative result with participants (or the team) resolved
func (r *CooperativeResultRepository) GetByID(id uuid.UUID) (*models.CooperativeGameResult, error) {
	var result models.CooperativeGameResult
	err := r.withParticipants().First(&result, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// GetByGameID retrieves cooperative results for a game, newest first, with pagination
func (r *CooperativeResultRepository) GetByGameID(gameID uuid.UUID, limit, offset int) ([]models.CooperativeGameResult, int64, error) {
	var results []models.CooperativeGameResult
	var total int64

	if err := r.db.Model(&models.CooperativeGameResult{}).Where("game_id = ?", gameID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.withParticipants().Where("game_id = ?", gameID).
		Order("played_at DESC").Limit(limit).Offset(offset).Find(&results).Error
	if err != nil {
		return nil, 0, err
	}

	return results, total, nil
}

// GetByClubID retrieves cooperative results for a club, newest first, with pagination
func (r *CooperativeResultRepository) GetByClubID(clubID uuid.UUID, limit, offset int) ([]models.CooperativeGameResult, int64, error) {
	var results []models.CooperativeGameResult
	var total int64

	if err := r.db.Model(&models.CooperativeGameResult{}).Where("club_id = ?", clubID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.withParticipants().Where("club_id = ?", clubID).
		Order("played_at DESC").Limit(limit).Offset(offset).Find(&results).Error
	if err != nil {
		return nil, 0, err
	}

	return results, total, nil
}

// Update saves the result row and fully replaces the participant side table
// (delete-all then re-insert) in a single transaction
func (r *CooperativeResultRepository) Update(result *models.CooperativeGameResult, memberIDs []uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Participants", "Team", "Game", "Club").Save(result).Error; err != nil {
			return err
		}
		if err := tx.Where("result_id = ?", result.ID).Delete(&models.CooperativeResultParticipant{}).Error; err != nil {
			return err
		}
		for _, memberID := range memberIDs {
			participant := models.CooperativeResultParticipant{ResultID: result.ID, MemberID: memberID}
			if err := tx.Create(&participant).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete deletes a cooperative result; participant rows are removed by foreign-key cascade
func (r *CooperativeResultRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.CooperativeGameResult{}, "id = ?", id).Error
}

func (r *CooperativeResultRepository) withParticipants() *gorm.DB {
	return r.db.
		Preload("Game").
		Preload("Team.Member1").Preload("Team.Member2").Preload("Team.Member3").Preload("Team.Member4").
		Preload("Participants.Member")
}
