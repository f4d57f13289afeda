package service

import (
	"fmt"

	"club-stats-backend/internal/database/models"
	apperrors "club-stats-backend/internal/errors"
	"club-stats-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// TeamService handles business logic for teams
type TeamService struct {
	repo       repository.TeamRepositoryInterface
	memberRepo repository.MemberRepositoryInterface
	validator  *validator.Validate
}

// NewTeamService creates a new team service
func NewTeamService(repo repository.TeamRepositoryInterface, memberRepo repository.MemberRepositoryInterface, validator *validator.Validate) *TeamService {
	return &TeamService{
		repo:       repo,
		memberRepo: memberRepo,
		validator:  validator,
	}
}

// CreateTeamRequest represents the data needed to create a team
type CreateTeamRequest struct {
	ClubID    uuid.UUID  `json:"club_id" validate:"required"`
	Name      string     `json:"name" validate:"required,max=100"`
	Member1ID uuid.UUID  `json:"member1_id" validate:"required"`
	Member2ID *uuid.UUID `json:"member2_id"`
	Member3ID *uuid.UUID `json:"member3_id"`
	Member4ID *uuid.UUID `json:"member4_id"`
}

// UpdateTeamRequest represents the data needed to update a team. Member slots are
// replaced wholesale so a slot can be cleared.
type UpdateTeamRequest struct {
	Name      *string    `json:"name" validate:"omitempty,max=100"`
	Member1ID *uuid.UUID `json:"member1_id"`
	Member2ID *uuid.UUID `json:"member2_id"`
	Member3ID *uuid.UUID `json:"member3_id"`
	Member4ID *uuid.UUID `json:"member4_id"`
}

// TeamResponse represents the response data for a team
type TeamResponse struct {
	ID          uuid.UUID   `json:"id"`
	ClubID      uuid.UUID   `json:"club_id"`
	Name        string      `json:"name"`
	MemberIDs   []uuid.UUID `json:"member_ids"`
	MemberNames []string    `json:"member_names,omitempty"`
	CreatedAt   string      `json:"created_at"`
	UpdatedAt   string      `json:"updated_at"`
}

// CreateTeam creates a new team of one to four club members
func (s *TeamService) CreateTeam(req *CreateTeamRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	team := &models.Team{
		ClubID:    req.ClubID,
		Name:      req.Name,
		Member1ID: req.Member1ID,
		Member2ID: req.Member2ID,
		Member3ID: req.Member3ID,
		Member4ID: req.Member4ID,
	}

	if err := s.validateRoster(team); err != nil {
		return nil, err
	}

	if err := s.repo.Create(team); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	return s.convertToResponse(team), nil
}

// GetTeamByID retrieves a team by ID with its members preloaded
func (s *TeamService) GetTeamByID(id uuid.UUID) (*TeamResponse, error) {
	team, err := s.repo.GetWithMembers(id)
	if err != nil {
		return nil, apperrors.ErrTeamNotFound
	}

	return s.convertToResponse(team), nil
}

// GetTeamsByClub retrieves teams of a club
func (s *TeamService) GetTeamsByClub(clubID uuid.UUID, limit, offset int) ([]TeamResponse, int64, error) {
	teams, total, err := s.repo.GetByClubID(clubID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get teams: %w", err)
	}

	responses := make([]TeamResponse, len(teams))
	for i, team := range teams {
		responses[i] = *s.convertToResponse(&team)
	}

	return responses, total, nil
}

// UpdateTeam updates an existing team
func (s *TeamService) UpdateTeam(id uuid.UUID, req *UpdateTeamRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	team, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrTeamNotFound
	}

	if req.Name != nil {
		team.Name = *req.Name
	}
	if req.Member1ID != nil {
		team.Member1ID = *req.Member1ID
	}
	// A roster update replaces slots 2..4 entirely
	if req.Member1ID != nil || req.Member2ID != nil || req.Member3ID != nil || req.Member4ID != nil {
		team.Member2ID = req.Member2ID
		team.Member3ID = req.Member3ID
		team.Member4ID = req.Member4ID
	}

	if err := s.validateRoster(team); err != nil {
		return nil, err
	}

	if err := s.repo.Update(team); err != nil {
		return nil, fmt.Errorf("failed to update team: %w", err)
	}

	updated, err := s.repo.GetWithMembers(id)
	if err != nil {
		return nil, apperrors.ErrTeamNotFound
	}
	return s.convertToResponse(updated), nil
}

// DeleteTeam deletes a team
func (s *TeamService) DeleteTeam(id uuid.UUID) error {
	_, err := s.repo.GetByID(id)
	if err != nil {
		return apperrors.ErrTeamNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}

	return nil
}

// validateRoster rejects repeated members and members from other clubs
func (s *TeamService) validateRoster(team *models.Team) error {
	ids := team.MemberIDs()

	seen := make(map[uuid.UUID]bool, len(ids))
	for _, memberID := range ids {
		if seen[memberID] {
			return apperrors.ErrDuplicateTeamMembers
		}
		seen[memberID] = true
	}

	for _, memberID := range ids {
		member, err := s.memberRepo.GetByID(memberID)
		if err != nil {
			return apperrors.ErrMemberNotFound
		}
		if member.ClubID != team.ClubID {
			return apperrors.ErrTeamNotInClub
		}
	}

	return nil
}

// convertToResponse converts a team model to response
func (s *TeamService) convertToResponse(team *models.Team) *TeamResponse {
	return &TeamResponse{
		ID:          team.ID,
		ClubID:      team.ClubID,
		Name:        team.Name,
		MemberIDs:   team.MemberIDs(),
		MemberNames: team.MemberNames(),
		CreatedAt:   team.CreatedAt.Format(timeFormat),
		UpdatedAt:   team.UpdatedAt.Format(timeFormat),
	}
}
