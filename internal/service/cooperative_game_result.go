package service

import (
	"fmt"
	"strings"

	"club-stats-backend/internal/database/models"
	apperrors "club-stats-backend/internal/errors"
	"club-stats-backend/internal/logger"
	"club-stats-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// CooperativeResultService handles business logic for cooperative game results
type CooperativeResultService struct {
	repo       repository.CooperativeResultRepositoryInterface
	gameRepo   repository.GameRepositoryInterface
	memberRepo repository.MemberRepositoryInterface
	teamRepo   repository.TeamRepositoryInterface
	validator  *validator.Validate
	log        *logger.Logger
}

// NewCooperativeResultService creates a new cooperative result service
func NewCooperativeResultService(
	repo repository.CooperativeResultRepositoryInterface,
	gameRepo repository.GameRepositoryInterface,
	memberRepo repository.MemberRepositoryInterface,
	teamRepo repository.TeamRepositoryInterface,
	validator *validator.Validate,
	log *logger.Logger,
) *CooperativeResultService {
	return &CooperativeResultService{
		repo:       repo,
		gameRepo:   gameRepo,
		memberRepo: memberRepo,
		teamRepo:   teamRepo,
		validator:  validator,
		log:        log,
	}
}

// CreateCoopResultRequest represents the data needed to record a cooperative
// session. Participants are either MemberIDs or TeamID depending on
// ParticipantType; the two are mutually exclusive.
type CreateCoopResultRequest struct {
	GameID          uuid.UUID   `json:"game_id" validate:"required"`
	Outcome         string      `json:"outcome" validate:"required"`
	Score           *int        `json:"score"`
	Difficulty      string      `json:"difficulty" validate:"max=100"`
	Scenario        string      `json:"scenario" validate:"max=200"`
	ParticipantType string      `json:"participant_type" validate:"required"`
	MemberIDs       []uuid.UUID `json:"member_ids"`
	TeamID          *uuid.UUID  `json:"team_id"`
	DurationMinutes int         `json:"duration_minutes"`
	Notes           string      `json:"notes"`
	PlayedAt        string      `json:"played_at" validate:"required"`
}

// UpdateCoopResultRequest represents the data needed to rewrite a cooperative
// result. The participant shape cannot change.
type UpdateCoopResultRequest struct {
	Outcome         *string     `json:"outcome"`
	Score           *int        `json:"score"`
	Difficulty      *string     `json:"difficulty" validate:"omitempty,max=100"`
	Scenario        *string     `json:"scenario" validate:"omitempty,max=200"`
	MemberIDs       []uuid.UUID `json:"member_ids"`
	TeamID          *uuid.UUID  `json:"team_id"`
	DurationMinutes *int        `json:"duration_minutes"`
	Notes           *string     `json:"notes"`
	PlayedAt        *string     `json:"played_at"`
}

// CoopResultResponse represents the response data for a cooperative result
type CoopResultResponse struct {
	ID              uuid.UUID           `json:"id"`
	ClubID          uuid.UUID           `json:"club_id"`
	GameID          uuid.UUID           `json:"game_id"`
	GameName        string              `json:"game_name,omitempty"`
	SessionID       string              `json:"session_id"`
	Outcome         string              `json:"outcome"`
	Score           *int                `json:"score,omitempty"`
	Difficulty      *string             `json:"difficulty,omitempty"`
	Scenario        string              `json:"scenario,omitempty"`
	ParticipantType string              `json:"participant_type"`
	TeamID          *uuid.UUID          `json:"team_id,omitempty"`
	TeamName        string              `json:"team_name,omitempty"`
	Participants    []ResultParticipant `json:"participants,omitempty"`
	NumParticipants int                 `json:"num_participants"`
	DurationMinutes int                 `json:"duration_minutes"`
	Notes           string              `json:"notes,omitempty"`
	PlayedAt        string              `json:"played_at"`
	CreatedAt       string              `json:"created_at"`
}

// CreateCoopResult validates and records a new cooperative result
func (s *CooperativeResultService) CreateCoopResult(req *CreateCoopResultRequest) (*CoopResultResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	outcome := models.CoopOutcome(req.Outcome)
	if !outcome.IsValid() {
		return nil, apperrors.NewValidationError("outcome", "must be win or loss")
	}

	participantType := models.ParticipantType(req.ParticipantType)
	if !participantType.IsValid() {
		return nil, apperrors.NewValidationError("participant_type", "must be members or team")
	}

	game, err := s.gameRepo.GetByID(req.GameID)
	if err != nil {
		return nil, apperrors.ErrGameNotFound
	}

	if req.DurationMinutes <= 0 {
		return nil, apperrors.ErrDurationRequired
	}
	if req.Score != nil && *req.Score < 0 {
		return nil, apperrors.ErrNegativeScore
	}

	playedAt, err := parsePlayedAt(req.PlayedAt)
	if err != nil {
		return nil, err
	}

	result := &models.CooperativeGameResult{
		ClubID:          game.ClubID,
		GameID:          game.ID,
		SessionID:       uuid.NewString(),
		Outcome:         outcome,
		Score:           req.Score,
		Difficulty:      normalizeDifficulty(req.Difficulty),
		Scenario:        req.Scenario,
		ParticipantType: participantType,
		DurationMinutes: req.DurationMinutes,
		Notes:           req.Notes,
		PlayedAt:        playedAt,
	}

	var memberIDs []uuid.UUID
	switch participantType {
	case models.ParticipantTypeMembers:
		if len(req.MemberIDs) == 0 {
			return nil, apperrors.ErrParticipantsRequired
		}
		if err := validateParticipants(req.MemberIDs); err != nil {
			return nil, err
		}
		if err := s.checkMembersInClub(game.ClubID, req.MemberIDs); err != nil {
			return nil, err
		}
		memberIDs = req.MemberIDs
		result.NumParticipants = len(memberIDs)
	case models.ParticipantTypeTeam:
		if req.TeamID == nil {
			return nil, apperrors.ErrTeamRequired
		}
		team, err := s.teamRepo.GetByID(*req.TeamID)
		if err != nil {
			return nil, apperrors.ErrTeamNotFound
		}
		if team.ClubID != game.ClubID {
			return nil, apperrors.ErrTeamNotInClub
		}
		result.TeamID = req.TeamID
		result.NumParticipants = len(team.MemberIDs())
	}

	if err := s.repo.Create(result, memberIDs); err != nil {
		s.log.WithError(err).WithField("game_id", game.ID).Error("failed to save cooperative result")
		return nil, apperrors.ErrSaveFailed
	}

	saved, err := s.repo.GetByID(result.ID)
	if err != nil {
		return nil, apperrors.ErrCoopResultNotFound
	}
	return s.convertToResponse(saved), nil
}

// GetCoopResultByID retrieves a cooperative result by ID
func (s *CooperativeResultService) GetCoopResultByID(id uuid.UUID) (*CoopResultResponse, error) {
	result, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrCoopResultNotFound
	}

	return s.convertToResponse(result), nil
}

// GetCoopResultsByGame retrieves cooperative results recorded for a game
func (s *CooperativeResultService) GetCoopResultsByGame(gameID uuid.UUID, limit, offset int) ([]CoopResultResponse, int64, error) {
	results, total, err := s.repo.GetByGameID(gameID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get cooperative results: %w", err)
	}

	responses := make([]CoopResultResponse, len(results))
	for i, result := range results {
		responses[i] = *s.convertToResponse(&result)
	}

	return responses, total, nil
}

// GetCoopResultsByClub retrieves cooperative results recorded in a club
func (s *CooperativeResultService) GetCoopResultsByClub(clubID uuid.UUID, limit, offset int) ([]CoopResultResponse, int64, error) {
	results, total, err := s.repo.GetByClubID(clubID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get cooperative results: %w", err)
	}

	responses := make([]CoopResultResponse, len(results))
	for i, result := range results {
		responses[i] = *s.convertToResponse(&result)
	}

	return responses, total, nil
}

// UpdateCoopResult rewrites a recorded cooperative result
func (s *CooperativeResultService) UpdateCoopResult(id uuid.UUID, req *UpdateCoopResultRequest) (*CoopResultResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	result, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrCoopResultNotFound
	}

	if req.Outcome != nil {
		outcome := models.CoopOutcome(*req.Outcome)
		if !outcome.IsValid() {
			return nil, apperrors.NewValidationError("outcome", "must be win or loss")
		}
		result.Outcome = outcome
	}
	if req.Score != nil {
		if *req.Score < 0 {
			return nil, apperrors.ErrNegativeScore
		}
		result.Score = req.Score
	}
	if req.Difficulty != nil {
		result.Difficulty = normalizeDifficulty(*req.Difficulty)
	}
	if req.Scenario != nil {
		result.Scenario = *req.Scenario
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

	var memberIDs []uuid.UUID
	switch result.ParticipantType {
	case models.ParticipantTypeMembers:
		memberIDs = req.MemberIDs
		if memberIDs == nil {
			for _, participant := range result.Participants {
				memberIDs = append(memberIDs, participant.MemberID)
			}
		}
		if len(memberIDs) == 0 {
			return nil, apperrors.ErrParticipantsRequired
		}
		if err := validateParticipants(memberIDs); err != nil {
			return nil, err
		}
		if err := s.checkMembersInClub(result.ClubID, memberIDs); err != nil {
			return nil, err
		}
		result.NumParticipants = len(memberIDs)
	case models.ParticipantTypeTeam:
		if req.TeamID != nil {
			result.TeamID = req.TeamID
		}
		if result.TeamID == nil {
			return nil, apperrors.ErrTeamRequired
		}
		team, err := s.teamRepo.GetByID(*result.TeamID)
		if err != nil {
			return nil, apperrors.ErrTeamNotFound
		}
		if team.ClubID != result.ClubID {
			return nil, apperrors.ErrTeamNotInClub
		}
		result.NumParticipants = len(team.MemberIDs())
	}

	if err := s.repo.Update(result, memberIDs); err != nil {
		s.log.WithError(err).WithField("result_id", id).Error("failed to save cooperative result")
		return nil, apperrors.ErrSaveFailed
	}

	saved, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrCoopResultNotFound
	}
	return s.convertToResponse(saved), nil
}

// DeleteCoopResult deletes a recorded cooperative result
func (s *CooperativeResultService) DeleteCoopResult(id uuid.UUID) error {
	_, err := s.repo.GetByID(id)
	if err != nil {
		return apperrors.ErrCoopResultNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		s.log.WithError(err).WithField("result_id", id).Error("failed to delete cooperative result")
		return apperrors.ErrSaveFailed
	}

	return nil
}

// checkMembersInClub verifies every referenced member exists and belongs to
// the result's club
func (s *CooperativeResultService) checkMembersInClub(clubID uuid.UUID, memberIDs []uuid.UUID) error {
	for _, memberID := range memberIDs {
		member, err := s.memberRepo.GetByID(memberID)
		if err != nil {
			return apperrors.ErrMemberNotFound
		}
		if member.ClubID != clubID {
			return apperrors.NewValidationError("member_ids", "member belongs to a different club")
		}
	}
	return nil
}

// normalizeDifficulty folds preset levels to their canonical lowercase form
// and keeps free text as submitted. An empty value is stored as null.
func normalizeDifficulty(difficulty string) *string {
	if difficulty == "" {
		return nil
	}
	d := difficulty
	if lower := strings.ToLower(difficulty); models.IsPresetDifficulty(lower) || lower == models.DifficultyCustom {
		d = lower
	}
	return &d
}

// convertToResponse converts a cooperative result model to response
func (s *CooperativeResultService) convertToResponse(result *models.CooperativeGameResult) *CoopResultResponse {
	response := &CoopResultResponse{
		ID:              result.ID,
		ClubID:          result.ClubID,
		GameID:          result.GameID,
		GameName:        result.Game.Name,
		SessionID:       result.SessionID,
		Outcome:         string(result.Outcome),
		Score:           result.Score,
		Difficulty:      result.Difficulty,
		Scenario:        result.Scenario,
		ParticipantType: string(result.ParticipantType),
		TeamID:          result.TeamID,
		NumParticipants: result.NumParticipants,
		DurationMinutes: result.DurationMinutes,
		Notes:           result.Notes,
		PlayedAt:        result.PlayedAt.Format(timeFormat),
		CreatedAt:       result.CreatedAt.Format(timeFormat),
	}

	if result.Team != nil {
		response.TeamName = result.Team.Name
		for _, name := range result.Team.MemberNames() {
			response.Participants = append(response.Participants, ResultParticipant{Name: name})
		}
	}

	for _, participant := range result.Participants {
		response.Participants = append(response.Participants, ResultParticipant{
			MemberID: participant.MemberID,
			Name:     participant.Member.DisplayName(),
		})
	}

	return response
}
