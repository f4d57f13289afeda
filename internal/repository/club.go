package repository

import (
	"club-stats-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClubRepository handles database operations for clubs
type ClubRepository struct {
	db *gorm.DB
}

// NewClubRepository creates a new club repository
func NewClubRepository(db *gorm.DB) *ClubRepository {
	return &ClubRepository{db: db}
}

// Create creates a new club
func (r *ClubRepository) Create(club *models.Club) error {
	return r.db.Create(club).Error
}

// GetByID retrieves a club by ID
func (r *ClubRepository) GetByID(id uuid.UUID) (*models.Club, error) {
	var club models.Club
	err := r.db.First(&club, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &club, nil
}

// GetBySlug retrieves a club by its public slug
func (r *ClubRepository) GetBySlug(slug string) (*models.Club, error) {
	var club models.Club
	err := r.db.First(&club, "slug = ?", slug).Error
	if err != nil {
		return nil, err
	}
	return &club, nil
}

// GetAll retrieves all clubs with pagination
func (r *ClubRepository) GetAll(limit, offset int) ([]models.Club, int64, error) {
	var clubs []models.Club
	var total int64

	if err := r.db.Model(&models.Club{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("name").Limit(limit).Offset(offset).Find(&clubs).Error
	if err != nil {
		return nil, 0, err
	}

	return clubs, total, nil
}

// Update updates a club
func (r *ClubRepository) Update(club *models.Club) error {
	return r.db.Save(club).Error
}

// Delete deletes a club; dependent rows are removed by foreign-key cascade
func (r *ClubRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Club{}, "id = ?", id).Error
}

// GetWithMembers retrieves a club with its members
func (r *ClubRepository) GetWithMembers(id uuid.UUID) (*models.Club, error) {
	var club models.Club
	err := r.db.Preload("Members").First(&club, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &club, nil
}

// GetWithGames retrieves a club with its games
func (r *ClubRepository) GetWithGames(id uuid.UUID) (*models.Club, error) {
	var club models.Club
	err := r.db.Preload("Games").First(&club, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &club, nil
}

// GetWithTeams retrieves a club with its teams
func (r *ClubRepository) GetWithTeams(id uuid.UUID) (*models.Club, error) {
	var club models.Club
	err := r.db.Preload("Teams").First(&club, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &club, nil
}
