package service

import (
	"fmt"

	"club-stats-backend/internal/database/models"
	apperrors "club-stats-backend/internal/errors"
	"club-stats-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// MemberService handles business logic for club members
type MemberService struct {
	repo      repository.MemberRepositoryInterface
	clubRepo  repository.ClubRepositoryInterface
	validator *validator.Validate
}

// NewMemberService creates a new member service
func NewMemberService(repo repository.MemberRepositoryInterface, clubRepo repository.ClubRepositoryInterface, validator *validator.Validate) *MemberService {
	return &MemberService{
		repo:      repo,
		clubRepo:  clubRepo,
		validator: validator,
	}
}

// CreateMemberRequest represents the data needed to create a member
type CreateMemberRequest struct {
	ClubID   uuid.UUID `json:"club_id" validate:"required"`
	FullName string    `json:"full_name" validate:"required,max=200"`
	Nickname string    `json:"nickname" validate:"max=100"`
	Email    string    `json:"email" validate:"required,email,max=255"`
	Status   *string   `json:"status" example:"active" default:"active"` // Optional: defaults to "active" if not provided. Valid values: active, inactive
}

// UpdateMemberRequest represents the data needed to update a member
type UpdateMemberRequest struct {
	FullName *string `json:"full_name" validate:"omitempty,max=200"`
	Nickname *string `json:"nickname" validate:"omitempty,max=100"`
	Email    *string `json:"email" validate:"omitempty,email,max=255"`
	Status   *string `json:"status"`
}

// MemberResponse represents the response data for a member
type MemberResponse struct {
	ID          uuid.UUID `json:"id"`
	ClubID      uuid.UUID `json:"club_id"`
	FullName    string    `json:"full_name"`
	Nickname    string    `json:"nickname,omitempty"`
	DisplayName string    `json:"display_name"`
	Email       string    `json:"email"`
	Status      string    `json:"status"`
	CreatedAt   string    `json:"created_at"`
	UpdatedAt   string    `json:"updated_at"`
}

// CreateMember creates a new member in a club
func (s *MemberService) CreateMember(req *CreateMemberRequest) (*MemberResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.clubRepo.GetByID(req.ClubID); err != nil {
		return nil, apperrors.ErrClubNotFound
	}

	if existing, err := s.repo.GetByEmail(req.ClubID, req.Email); err == nil && existing != nil {
		return nil, apperrors.ErrMemberExists
	}

	status := models.MemberStatusActive
	if req.Status != nil {
		status = models.MemberStatus(*req.Status)
		if !status.IsValid() {
			return nil, apperrors.ErrInvalidStatus
		}
	}

	member := &models.Member{
		ClubID:   req.ClubID,
		FullName: req.FullName,
		Nickname: req.Nickname,
		Email:    req.Email,
		Status:   status,
	}

	if err := s.repo.Create(member); err != nil {
		return nil, fmt.Errorf("failed to create member: %w", err)
	}

	return s.convertToResponse(member), nil
}

// GetMemberByID retrieves a member by ID
func (s *MemberService) GetMemberByID(id uuid.UUID) (*MemberResponse, error) {
	member, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrMemberNotFound
	}

	return s.convertToResponse(member), nil
}

// GetMembersByClub retrieves members of a club
func (s *MemberService) GetMembersByClub(clubID uuid.UUID, limit, offset int) ([]MemberResponse, int64, error) {
	members, total, err := s.repo.GetByClubID(clubID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get members: %w", err)
	}

	responses := make([]MemberResponse, len(members))
	for i, member := range members {
		responses[i] = *s.convertToResponse(&member)
	}

	return responses, total, nil
}

// GetActiveMembers retrieves active members of a club
func (s *MemberService) GetActiveMembers(clubID uuid.UUID, limit, offset int) ([]MemberResponse, int64, error) {
	members, total, err := s.repo.GetActiveByClub(clubID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get active members: %w", err)
	}

	responses := make([]MemberResponse, len(members))
	for i, member := range members {
		responses[i] = *s.convertToResponse(&member)
	}

	return responses, total, nil
}

// SearchMembers searches a club's members by name, nickname or email
func (s *MemberService) SearchMembers(clubID uuid.UUID, query string, limit, offset int) ([]MemberResponse, int64, error) {
	members, total, err := s.repo.Search(clubID, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search members: %w", err)
	}

	responses := make([]MemberResponse, len(members))
	for i, member := range members {
		responses[i] = *s.convertToResponse(&member)
	}

	return responses, total, nil
}

// UpdateMember updates an existing member
func (s *MemberService) UpdateMember(id uuid.UUID, req *UpdateMemberRequest) (*MemberResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	member, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrMemberNotFound
	}

	if req.Email != nil && *req.Email != member.Email {
		existing, err := s.repo.GetByEmail(member.ClubID, *req.Email)
		if err == nil && existing != nil && existing.ID != id {
			return nil, apperrors.ErrMemberExists
		}
	}

	if req.FullName != nil {
		member.FullName = *req.FullName
	}
	if req.Nickname != nil {
		member.Nickname = *req.Nickname
	}
	if req.Email != nil {
		member.Email = *req.Email
	}
	if req.Status != nil {
		status := models.MemberStatus(*req.Status)
		if !status.IsValid() {
			return nil, apperrors.ErrInvalidStatus
		}
		member.Status = status
	}

	if err := s.repo.Update(member); err != nil {
		return nil, fmt.Errorf("failed to update member: %w", err)
	}

	return s.convertToResponse(member), nil
}

// DeleteMember deletes a member
func (s *MemberService) DeleteMember(id uuid.UUID) error {
	_, err := s.repo.GetByID(id)
	if err != nil {
		return apperrors.ErrMemberNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete member: %w", err)
	}

	return nil
}

// convertToResponse converts a member model to response
func (s *MemberService) convertToResponse(member *models.Member) *MemberResponse {
	return &MemberResponse{
		ID:          member.ID,
		ClubID:      member.ClubID,
		FullName:    member.FullName,
		Nickname:    member.Nickname,
		DisplayName: member.DisplayName(),
		Email:       member.Email,
		Status:      string(member.Status),
		CreatedAt:   member.CreatedAt.Format(timeFormat),
		UpdatedAt:   member.UpdatedAt.Format(timeFormat),
	}
}
