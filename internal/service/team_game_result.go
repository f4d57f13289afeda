package service

import (
	"fmt"

	"club-stats-backend/internal/database/models"
	apperrors "club-stats-backend/internal/errors"
	"club-stats-backend/internal/logger"
	"club-stats-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// TeamGameResultService handles business logic for team game results
type TeamGameResultService struct {
	repo      repository.TeamGameResultRepositoryInterface
	gameRepo  repository.GameRepositoryInterface
	teamRepo  repository.TeamRepositoryInterface
	validator *validator.Validate
	log       *logger.Logger
}

// NewTeamGameResultService creates a new team game result service
func NewTeamGameResultService(
	repo repository.TeamGameResultRepositoryInterface,
	gameRepo repository.GameRepositoryInterface,
	teamRepo repository.TeamRepositoryInterface,
	validator *validator.Validate,
	log *logger.Logger,
) *TeamGameResultService {
	return &TeamGameResultService{
		repo:      repo,
		gameRepo:  gameRepo,
		teamRepo:  teamRepo,
		validator: validator,
		log:       log,
	}
}

// CreateTeamGameResultRequest represents the data needed to record a team
// result. Places holds the teams behind the winner in finishing order.
type CreateTeamGameResultRequest struct {
	GameID          uuid.UUID   `json:"game_id" validate:"required"`
	WinnerTeamID    uuid.UUID   `json:"winner_team_id" validate:"required"`
	Places          []uuid.UUID `json:"places"`
	DurationMinutes int         `json:"duration_minutes"`
	Notes           string      `json:"notes"`
	PlayedAt        string      `json:"played_at" validate:"required"`
}

// UpdateTeamGameResultRequest represents the data needed to rewrite a team result
type UpdateTeamGameResultRequest struct {
	WinnerTeamID    *uuid.UUID  `json:"winner_team_id"`
	Places          []uuid.UUID `json:"places"`
	DurationMinutes *int        `json:"duration_minutes"`
	Notes           *string     `json:"notes"`
	PlayedAt        *string     `json:"played_at"`
}

// TeamResultParticipant is one team's line in a team result response
type TeamResultParticipant struct {
	TeamID      uuid.UUID `json:"team_id"`
	Name        string    `json:"name"`
	MemberNames []string  `json:"member_names,omitempty"`
	Place       int       `json:"place"`
}

// TeamGameResultResponse represents the response data for a team result
type TeamGameResultResponse struct {
	ID              uuid.UUID               `json:"id"`
	ClubID          uuid.UUID               `json:"club_id"`
	GameID          uuid.UUID               `json:"game_id"`
	GameName        string                  `json:"game_name,omitempty"`
	SessionID       string                  `json:"session_id"`
	Winner          TeamResultParticipant   `json:"winner"`
	Placements      []TeamResultParticipant `json:"placements,omitempty"`
	NumTeams        int                     `json:"num_teams"`
	DurationMinutes int                     `json:"duration_minutes"`
	Notes           string                  `json:"notes,omitempty"`
	PlayedAt        string                  `json:"played_at"`
	CreatedAt       string                  `json:"created_at"`
}

// CreateTeamGameResult validates and records a new team result
func (s *TeamGameResultService) CreateTeamGameResult(req *CreateTeamGameResultRequest) (*TeamGameResultResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	game, err := s.gameRepo.GetByID(req.GameID)
	if err != nil {
		return nil, apperrors.ErrGameNotFound
	}

	if req.DurationMinutes <= 0 {
		return nil, apperrors.ErrDurationRequired
	}

	playedAt, err := parsePlayedAt(req.PlayedAt)
	if err != nil {
		return nil, err
	}

	result := &models.TeamGameResult{
		ClubID:          game.ClubID,
		GameID:          game.ID,
		SessionID:       uuid.NewString(),
		WinnerTeamID:    req.WinnerTeamID,
		NumTeams:        1 + len(req.Places),
		DurationMinutes: req.DurationMinutes,
		Notes:           req.Notes,
		PlayedAt:        playedAt,
	}

	if err := s.applyPlaces(result, req.Places); err != nil {
		return nil, err
	}

	if err := s.checkTeamsInClub(game.ClubID, result.ParticipantTeamIDs()); err != nil {
		return nil, err
	}

	if err := s.repo.Create(result); err != nil {
		s.log.WithError(err).WithField("game_id", game.ID).Error("failed to save team game result")
		return nil, apperrors.ErrSaveFailed
	}

	saved, err := s.repo.GetByID(result.ID)
	if err != nil {
		return nil, apperrors.ErrTeamResultNotFound
	}
	return s.convertToResponse(saved), nil
}

// GetTeamGameResultByID retrieves a team result by ID
func (s *TeamGameResultService) GetTeamGameResultByID(id uuid.UUID) (*TeamGameResultResponse, error) {
	result, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrTeamResultNotFound
	}

	return s.convertToResponse(result), nil
}

// GetTeamGameResultsByGame retrieves team results recorded for a game
func (s *TeamGameResultService) GetTeamGameResultsByGame(gameID uuid.UUID, limit, offset int) ([]TeamGameResultResponse, int64, error) {
	results, total, err := s.repo.GetByGameID(gameID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get team results: %w", err)
	}

	responses := make([]TeamGameResultResponse, len(results))
	for i, result := range results {
		responses[i] = *s.convertToResponse(&result)
	}

	return responses, total, nil
}

// GetTeamGameResultsByClub retrieves team results recorded in a club
func (s *TeamGameResultService) GetTeamGameResultsByClub(clubID uuid.UUID, limit, offset int) ([]TeamGameResultResponse, int64, error) {
	results, total, err := s.repo.GetByClubID(clubID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get team results: %w", err)
	}

	responses := make([]TeamGameResultResponse, len(results))
	for i, result := range results {
		responses[i] = *s.convertToResponse(&result)
	}

	return responses, total, nil
}

// UpdateTeamGameResult rewrites a recorded team result
func (s *TeamGameResultService) UpdateTeamGameResult(id uuid.UUID, req *UpdateTeamGameResultRequest) (*TeamGameResultResponse, error) {
	result, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrTeamResultNotFound
	}

	if req.WinnerTeamID != nil {
		result.WinnerTeamID = *req.WinnerTeamID
	}
	if req.DurationMinutes != nil {
		result.DurationMinutes = *req.DurationMinutes
	}
	if result.DurationMinutes <= 0 {
		return nil, apperrors.ErrDurationRequired
	}
	if req.Notes != nil {
		result.Notes = *req.Notes
	}
	if req.PlayedAt != nil {
		playedAt, err := parsePlayedAt(*req.PlayedAt)
		if err != nil {
			return nil, err
		}
		result.PlayedAt = playedAt
	}

	if req.Places != nil {
		for _, slot := range result.PlaceSlots() {
			*slot = nil
		}
		if err := s.applyPlaces(result, req.Places); err != nil {
			return nil, err
		}
		result.NumTeams = 1 + len(req.Places)
	} else if err := validateTeams(result.ParticipantTeamIDs()); err != nil {
		return nil, err
	}

	if err := s.checkTeamsInClub(result.ClubID, result.ParticipantTeamIDs()); err != nil {
		return nil, err
	}

	if err := s.repo.Update(result); err != nil {
		s.log.WithError(err).WithField("result_id", id).Error("failed to save team game result")
		return nil, apperrors.ErrSaveFailed
	}

	saved, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrTeamResultNotFound
	}
	return s.convertToResponse(saved), nil
}

// DeleteTeamGameResult deletes a recorded team result
func (s *TeamGameResultService) DeleteTeamGameResult(id uuid.UUID) error {
	_, err := s.repo.GetByID(id)
	if err != nil {
		return apperrors.ErrTeamResultNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		s.log.WithError(err).WithField("result_id", id).Error("failed to delete team game result")
		return apperrors.ErrSaveFailed
	}

	return nil
}

// applyPlaces writes the ordered teams behind the winner into the place
// columns, rejecting overflow past place 8 and repeated teams
func (s *TeamGameResultService) applyPlaces(result *models.TeamGameResult, places []uuid.UUID) error {
	if len(places) > models.MaxPlaces-1 {
		return apperrors.ErrPlaceLimitExceeded
	}

	slots := result.PlaceSlots()
	for i, teamID := range places {
		id := teamID
		*slots[i] = &id
	}

	return validateTeams(result.ParticipantTeamIDs())
}

// checkTeamsInClub verifies every referenced team exists and belongs to the
// result's club
func (s *TeamGameResultService) checkTeamsInClub(clubID uuid.UUID, teamIDs []uuid.UUID) error {
	for _, teamID := range teamIDs {
		team, err := s.teamRepo.GetByID(teamID)
		if err != nil {
			return apperrors.ErrTeamNotFound
		}
		if team.ClubID != clubID {
			return apperrors.ErrTeamNotInClub
		}
	}
	return nil
}

// validateTeams rejects a participant list containing the same team twice
func validateTeams(ids []uuid.UUID) error {
	seen := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			return apperrors.ErrDuplicateTeams
		}
		seen[id] = true
	}
	return nil
}

// convertToResponse converts a team result model to response
func (s *TeamGameResultService) convertToResponse(result *models.TeamGameResult) *TeamGameResultResponse {
	response := &TeamGameResultResponse{
		ID:        result.ID,
		ClubID:    result.ClubID,
		GameID:    result.GameID,
		GameName:  result.Game.Name,
		SessionID: result.SessionID,
		Winner: TeamResultParticipant{
			TeamID:      result.WinnerTeamID,
			Name:        result.WinnerTeam.Name,
			MemberNames: result.WinnerTeam.MemberNames(),
			Place:       1,
		},
		NumTeams:        result.NumTeams,
		DurationMinutes: result.DurationMinutes,
		Notes:           result.Notes,
		PlayedAt:        result.PlayedAt.Format(timeFormat),
		CreatedAt:       result.CreatedAt.Format(timeFormat),
	}

	placed := []*models.Team{
		result.Place2Team, result.Place3Team, result.Place4Team, result.Place5Team,
		result.Place6Team, result.Place7Team, result.Place8Team,
	}
	for i, team := range placed {
		if team == nil {
			continue
		}
		response.Placements = append(response.Placements, TeamResultParticipant{
			TeamID:      team.ID,
			Name:        team.Name,
			MemberNames: team.MemberNames(),
			Place:       i + 2,
		})
	}

	return response
}
