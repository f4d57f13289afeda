package repository

import (
	"club-stats-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MemberRepository handles database operations for members
type MemberRepository struct {
	db *gorm.DB
}

// NewMemberRepository creates a new member repository
func NewMemberRepository(db *gorm.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

// Create creates a new member
func (r *MemberRepository) Create(member *models.Member) error {
	return r.db.Create(member).Error
}

// GetByID retrieves a member by ID
func (r *MemberRepository) GetByID(id uuid.UUID) (*models.Member, error) {
	var member models.Member
	err := r.db.First(&member, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetByEmail retrieves a member by email within a club
func (r *MemberRepository) GetByEmail(clubID uuid.UUID, email string) (*models.Member, error) {
	var member models.Member
	err := r.db.First(&member, "club_id = ? AND email = ?", clubID, email).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetByClubID retrieves all members for a club with pagination
func (r *MemberRepository) GetByClubID(clubID uuid.UUID, limit, offset int) ([]models.Member, int64, error) {
	var members []models.Member
	var total int64

	if err := r.db.Model(&models.Member{}).Where("club_id = ?", clubID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("club_id = ?", clubID).Order("full_name").Limit(limit).Offset(offset).Find(&members).Error
	if err != nil {
		return nil, 0, err
	}

	return members, total, nil
}

// GetActiveByClub retrieves all active members for a club
func (r *MemberRepository) GetActiveByClub(clubID uuid.UUID, limit, offset int) ([]models.Member, int64, error) {
	var members []models.Member
	var total int64

	query := r.db.Model(&models.Member{}).Where("club_id = ? AND status = ?", clubID, models.MemberStatusActive)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("full_name").Limit(limit).Offset(offset).Find(&members).Error
	if err != nil {
		return nil, 0, err
	}

	return members, total, nil
}

// Search searches for members by name, nickname or email within a club
func (r *MemberRepository) Search(clubID uuid.UUID, query string, limit, offset int) ([]models.Member, int64, error) {
	var members []models.Member
	var total int64

	pattern := "%" + query + "%"
	searchQuery := r.db.Model(&models.Member{}).
		Where("club_id = ? AND (full_name ILIKE ? OR nickname ILIKE ? OR email ILIKE ?)", clubID, pattern, pattern, pattern)

	if err := searchQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := searchQuery.Order("full_name").Limit(limit).Offset(offset).Find(&members).Error
	if err != nil {
		return nil, 0, err
	}

	return members, total, nil
}

// Update updates a member
func (r *MemberRepository) Update(member *models.Member) error {
	return r.db.Save(member).Error
}

// Delete deletes a member. Fails with a foreign-key error while result rows
// still reference the member.
func (r *MemberRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Member{}, "id = ?", id).Error
}
