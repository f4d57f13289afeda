package service

import (
	"fmt"

	"club-stats-backend/internal/database/models"
	apperrors "club-stats-backend/internal/errors"
	"club-stats-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// ClubService handles business logic for clubs
type ClubService struct {
	repo      repository.ClubRepositoryInterface
	validator *validator.Validate
}

// NewClubService creates a new club service
func NewClubService(repo repository.ClubRepositoryInterface, validator *validator.Validate) *ClubService {
	return &ClubService{
		repo:      repo,
		validator: validator,
	}
}

// CreateClubRequest represents the data needed to create a club
type CreateClubRequest struct {
	Name            string  `json:"name" validate:"required,min=1,max=100"`
	Slug            string  `json:"slug" validate:"omitempty,max=120"`
	Status          *string `json:"status" example:"active" default:"active"` // Optional: defaults to "active" if not provided. Valid values: active, suspended, inactive
	MeetingDay      string  `json:"meeting_day" validate:"max=50"`
	MeetingLocation string  `json:"meeting_location" validate:"max=200"`
	Description     string  `json:"description"`
}

// UpdateClubRequest represents the data needed to update a club
type UpdateClubRequest struct {
	Name            *string `json:"name" validate:"omitempty,min=1,max=100"`
	Status          *string `json:"status"`
	MeetingDay      *string `json:"meeting_day" validate:"omitempty,max=50"`
	MeetingLocation *string `json:"meeting_location" validate:"omitempty,max=200"`
	Description     *string `json:"description"`
}

// ClubResponse represents the response data for a club
type ClubResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Slug            string    `json:"slug"`
	Status          string    `json:"status"`
	MeetingDay      string    `json:"meeting_day,omitempty"`
	MeetingLocation string    `json:"meeting_location,omitempty"`
	Description     string    `json:"description,omitempty"`
	MemberCount     int       `json:"member_count,omitempty"`
	CreatedAt       string    `json:"created_at"`
	UpdatedAt       string    `json:"updated_at"`
}

// CreateClub creates a new club. The slug is derived from the name when not
// provided explicitly.
func (s *ClubService) CreateClub(req *CreateClubRequest) (*ClubResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	clubSlug := req.Slug
	if clubSlug == "" {
		clubSlug = slug.Make(req.Name)
	}

	if existing, err := s.repo.GetBySlug(clubSlug); err == nil && existing != nil {
		return nil, apperrors.ErrClubExists
	}

	status := models.ClubStatusActive
	if req.Status != nil {
		status = models.ClubStatus(*req.Status)
		if !status.IsValid() {
			return nil, apperrors.ErrInvalidStatus
		}
	}

	club := &models.Club{
		Name:            req.Name,
		Slug:            clubSlug,
		Status:          status,
		MeetingDay:      req.MeetingDay,
		MeetingLocation: req.MeetingLocation,
		Description:     req.Description,
	}

	if err := s.repo.Create(club); err != nil {
		return nil, fmt.Errorf("failed to create club: %w", err)
	}

	return s.convertToResponse(club), nil
}

// GetClubByID retrieves a club by ID
func (s *ClubService) GetClubByID(id uuid.UUID) (*ClubResponse, error) {
	club, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrClubNotFound
	}

	return s.convertToResponse(club), nil
}

// GetClubBySlug retrieves a club by its URL slug
func (s *ClubService) GetClubBySlug(clubSlug string) (*ClubResponse, error) {
	club, err := s.repo.GetBySlug(clubSlug)
	if err != nil {
		return nil, apperrors.ErrClubNotFound
	}

	return s.convertToResponse(club), nil
}

// GetAllClubs retrieves clubs with pagination
func (s *ClubService) GetAllClubs(limit, offset int) ([]ClubResponse, int64, error) {
	clubs, total, err := s.repo.GetAll(limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get clubs: %w", err)
	}

	responses := make([]ClubResponse, len(clubs))
	for i, club := range clubs {
		responses[i] = *s.convertToResponse(&club)
	}

	return responses, total, nil
}

// UpdateClub updates an existing club
func (s *ClubService) UpdateClub(id uuid.UUID, req *UpdateClubRequest) (*ClubResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	club, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrClubNotFound
	}

	if req.Name != nil {
		club.Name = *req.Name
	}
	if req.Status != nil {
		status := models.ClubStatus(*req.Status)
		if !status.IsValid() {
			return nil, apperrors.ErrInvalidStatus
		}
		club.Status = status
	}
	if req.MeetingDay != nil {
		club.MeetingDay = *req.MeetingDay
	}
	if req.MeetingLocation != nil {
		club.MeetingLocation = *req.MeetingLocation
	}
	if req.Description != nil {
		club.Description = *req.Description
	}

	if err := s.repo.Update(club); err != nil {
		return nil, fmt.Errorf("failed to update club: %w", err)
	}

	return s.convertToResponse(club), nil
}

// DeleteClub deletes a club and everything under it
func (s *ClubService) DeleteClub(id uuid.UUID) error {
	_, err := s.repo.GetByID(id)
	if err != nil {
		return apperrors.ErrClubNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete club: %w", err)
	}

	return nil
}

// GetClubWithMembers retrieves a club with its member roster preloaded
func (s *ClubService) GetClubWithMembers(id uuid.UUID) (*ClubResponse, error) {
	club, err := s.repo.GetWithMembers(id)
	if err != nil {
		return nil, apperrors.ErrClubNotFound
	}

	response := s.convertToResponse(club)
	response.MemberCount = len(club.Members)
	return response, nil
}

// convertToResponse converts a club model to response
func (s *ClubService) convertToResponse(club *models.Club) *ClubResponse {
	return &ClubResponse{
		ID:              club.ID,
		Name:            club.Name,
		Slug:            club.Slug,
		Status:          string(club.Status),
		MeetingDay:      club.MeetingDay,
		MeetingLocation: club.MeetingLocation,
		Description:     club.Description,
		CreatedAt:       club.CreatedAt.Format(timeFormat),
		UpdatedAt:       club.UpdatedAt.Format(timeFormat),
	}
}
