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

// GameResultService handles business logic for individual game results
type GameResultService struct {
	repo       repository.GameResultRepositoryInterface
	gameRepo   repository.GameRepositoryInterface
	memberRepo repository.MemberRepositoryInterface
	validator  *validator.Validate
	log        *logger.Logger
}

// NewGameResultService creates a new game result service
func NewGameResultService(
	repo repository.GameResultRepositoryInterface,
	gameRepo repository.GameRepositoryInterface,
	memberRepo repository.MemberRepositoryInterface,
	validator *validator.Validate,
	log *logger.Logger,
) *GameResultService {
	return &GameResultService{
		repo:       repo,
		gameRepo:   gameRepo,
		memberRepo: memberRepo,
		validator:  validator,
		log:        log,
	}
}

// CreateGameResultRequest represents the data needed to record an individual
// result. In ranked mode Places holds the members behind the winner in
// finishing order; in winner/losers mode LoserIDs holds the unordered rest of
// the table.
type CreateGameResultRequest struct {
	GameID          uuid.UUID   `json:"game_id" validate:"required"`
	Mode            string      `json:"mode" validate:"required"`
	WinnerID        uuid.UUID   `json:"winner_id" validate:"required"`
	Places          []uuid.UUID `json:"places"`
	LoserIDs        []uuid.UUID `json:"loser_ids"`
	DurationMinutes int         `json:"duration_minutes"`
	Notes           string      `json:"notes"`
	PlayedAt        string      `json:"played_at" validate:"required"`
}

// UpdateGameResultRequest represents the data needed to rewrite a recorded
// result. The participant lists are replaced wholesale.
type UpdateGameResultRequest struct {
	WinnerID        *uuid.UUID  `json:"winner_id"`
	Places          []uuid.UUID `json:"places"`
	LoserIDs        []uuid.UUID `json:"loser_ids"`
	DurationMinutes *int        `json:"duration_minutes"`
	Notes           *string     `json:"notes"`
	PlayedAt        *string     `json:"played_at"`
}

// ResultParticipant is one member's line in a result response
type ResultParticipant struct {
	MemberID uuid.UUID `json:"member_id"`
	Name     string    `json:"name"`
	Place    *int      `json:"place,omitempty"`
}

// GameResultResponse represents the response data for an individual result
type GameResultResponse struct {
	ID              uuid.UUID           `json:"id"`
	ClubID          uuid.UUID           `json:"club_id"`
	GameID          uuid.UUID           `json:"game_id"`
	GameName        string              `json:"game_name,omitempty"`
	SessionID       string              `json:"session_id"`
	Mode            string              `json:"mode"`
	Winner          ResultParticipant   `json:"winner"`
	Placements      []ResultParticipant `json:"placements,omitempty"`
	Losers          []ResultParticipant `json:"losers,omitempty"`
	NumPlayers      int                 `json:"num_players"`
	DurationMinutes int                 `json:"duration_minutes"`
	Notes           string              `json:"notes,omitempty"`
	PlayedAt        string              `json:"played_at"`
	CreatedAt       string              `json:"created_at"`
}

// CreateGameResult validates and records a new individual result. Validation
// runs entirely before the first write, so a rejected result leaves nothing
// behind.
func (s *GameResultService) CreateGameResult(req *CreateGameResultRequest) (*GameResultResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	mode := models.ResultMode(req.Mode)
	if !mode.IsValid() {
		return nil, apperrors.NewValidationError("mode", "must be ranked or winner_losers")
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

	result := &models.GameResult{
		ClubID:          game.ClubID,
		GameID:          game.ID,
		SessionID:       uuid.NewString(),
		Mode:            mode,
		WinnerID:        req.WinnerID,
		DurationMinutes: req.DurationMinutes,
		Notes:           req.Notes,
		PlayedAt:        playedAt,
	}

	var loserIDs []uuid.UUID
	switch mode {
	case models.ResultModeRanked:
		if err := s.applyPlaces(result, req.Places); err != nil {
			return nil, err
		}
		result.NumPlayers = 1 + len(req.Places)
	case models.ResultModeWinnerLosers:
		if err := validateLosers(req.WinnerID, req.LoserIDs); err != nil {
			return nil, err
		}
		loserIDs = req.LoserIDs
		result.NumPlayers = 1 + len(req.LoserIDs)
	}

	if err := s.checkMembersInClub(game.ClubID, append([]uuid.UUID{req.WinnerID}, append(req.Places, loserIDs...)...)); err != nil {
		return nil, err
	}

	if err := s.repo.Create(result, loserIDs); err != nil {
		s.log.WithError(err).WithField("game_id", game.ID).Error("failed to save game result")
		return nil, apperrors.ErrSaveFailed
	}

	saved, err := s.repo.GetByID(result.ID)
	if err != nil {
		return nil, apperrors.ErrResultNotFound
	}
	return s.convertToResponse(saved), nil
}

// GetGameResultByID retrieves a result by ID
func (s *GameResultService) GetGameResultByID(id uuid.UUID) (*GameResultResponse, error) {
	result, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrResultNotFound
	}

	return s.convertToResponse(result), nil
}

// GetGameResultBySession retrieves a result by its public session identifier
func (s *GameResultService) GetGameResultBySession(sessionID string) (*GameResultResponse, error) {
	result, err := s.repo.GetBySessionID(sessionID)
	if err != nil {
		return nil, apperrors.ErrResultNotFound
	}

	return s.convertToResponse(result), nil
}

// GetGameResultsByGame retrieves results recorded for a game
func (s *GameResultService) GetGameResultsByGame(gameID uuid.UUID, limit, offset int) ([]GameResultResponse, int64, error) {
	results, total, err := s.repo.GetByGameID(gameID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get results: %w", err)
	}

	responses := make([]GameResultResponse, len(results))
	for i, result := range results {
		responses[i] = *s.convertToResponse(&result)
	}

	return responses, total, nil
}

// GetGameResultsByClub retrieves results recorded in a club
func (s *GameResultService) GetGameResultsByClub(clubID uuid.UUID, limit, offset int) ([]GameResultResponse, int64, error) {
	results, total, err := s.repo.GetByClubID(clubID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get results: %w", err)
	}

	responses := make([]GameResultResponse, len(results))
	for i, result := range results {
		responses[i] = *s.convertToResponse(&result)
	}

	return responses, total, nil
}

// UpdateGameResult rewrites a recorded result. The mode cannot change.
func (s *GameResultService) UpdateGameResult(id uuid.UUID, req *UpdateGameResultRequest) (*GameResultResponse, error) {
	result, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrResultNotFound
	}

	if req.WinnerID != nil {
		result.WinnerID = *req.WinnerID
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

	var loserIDs []uuid.UUID
	switch result.Mode {
	case models.ResultModeRanked:
		if req.Places != nil {
			for _, slot := range result.PlaceSlots() {
				*slot = nil
			}
			if err := s.applyPlaces(result, req.Places); err != nil {
				return nil, err
			}
			result.NumPlayers = 1 + len(req.Places)
		} else if err := validateParticipants(result.ParticipantIDs()); err != nil {
			return nil, err
		}
	case models.ResultModeWinnerLosers:
		loserIDs = req.LoserIDs
		if loserIDs == nil {
			for _, loser := range result.Losers {
				loserIDs = append(loserIDs, loser.MemberID)
			}
		}
		if err := validateLosers(result.WinnerID, loserIDs); err != nil {
			return nil, err
		}
		result.NumPlayers = 1 + len(loserIDs)
	}

	if err := s.checkMembersInClub(result.ClubID, append(result.ParticipantIDs(), loserIDs...)); err != nil {
		return nil, err
	}

	if err := s.repo.Update(result, loserIDs); err != nil {
		s.log.WithError(err).WithField("result_id", id).Error("failed to save game result")
		return nil, apperrors.ErrSaveFailed
	}

	saved, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrResultNotFound
	}
	return s.convertToResponse(saved), nil
}

// DeleteGameResult deletes a recorded result
func (s *GameResultService) DeleteGameResult(id uuid.UUID) error {
	_, err := s.repo.GetByID(id)
	if err != nil {
		return apperrors.ErrResultNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		s.log.WithError(err).WithField("result_id", id).Error("failed to delete game result")
		return apperrors.ErrSaveFailed
	}

	return nil
}

// applyPlaces writes the ordered places behind the winner into the place
// columns, rejecting overflow past place 8 and repeated members.
func (s *GameResultService) applyPlaces(result *models.GameResult, places []uuid.UUID) error {
	if len(places) > models.MaxPlaces-1 {
		return apperrors.ErrPlaceLimitExceeded
	}

	slots := result.PlaceSlots()
	for i, memberID := range places {
		id := memberID
		*slots[i] = &id
	}

	return validateParticipants(result.ParticipantIDs())
}

// checkMembersInClub verifies every referenced member exists and belongs to
// the result's club
func (s *GameResultService) checkMembersInClub(clubID uuid.UUID, memberIDs []uuid.UUID) error {
	seen := make(map[uuid.UUID]bool, len(memberIDs))
	for _, memberID := range memberIDs {
		if seen[memberID] {
			continue
		}
		seen[memberID] = true
		member, err := s.memberRepo.GetByID(memberID)
		if err != nil {
			return apperrors.ErrMemberNotFound
		}
		if member.ClubID != clubID {
			return apperrors.NewValidationError("participants", "member belongs to a different club")
		}
	}
	return nil
}

// validateParticipants rejects a participant list containing the same member twice
func validateParticipants(ids []uuid.UUID) error {
	seen := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			return apperrors.ErrDuplicateParticipants
		}
		seen[id] = true
	}
	return nil
}

// validateLosers rejects repeated losers and a winner that also appears on the
// losing side
func validateLosers(winnerID uuid.UUID, loserIDs []uuid.UUID) error {
	seen := make(map[uuid.UUID]bool, len(loserIDs))
	for _, id := range loserIDs {
		if id == winnerID {
			return apperrors.ErrWinnerInLosers
		}
		if seen[id] {
			return apperrors.ErrDuplicateParticipants
		}
		seen[id] = true
	}
	return nil
}

// convertToResponse converts a result model to response. Placements and losers
// rely on the repository preloading the member associations.
func (s *GameResultService) convertToResponse(result *models.GameResult) *GameResultResponse {
	response := &GameResultResponse{
		ID:        result.ID,
		ClubID:    result.ClubID,
		GameID:    result.GameID,
		GameName:  result.Game.Name,
		SessionID: result.SessionID,
		Mode:      string(result.Mode),
		Winner: ResultParticipant{
			MemberID: result.WinnerID,
			Name:     result.Winner.DisplayName(),
			Place:    intPtr(1),
		},
		NumPlayers:      result.NumPlayers,
		DurationMinutes: result.DurationMinutes,
		Notes:           result.Notes,
		PlayedAt:        result.PlayedAt.Format(timeFormat),
		CreatedAt:       result.CreatedAt.Format(timeFormat),
	}

	placed := []*models.Member{
		result.Place2, result.Place3, result.Place4, result.Place5,
		result.Place6, result.Place7, result.Place8,
	}
	for i, member := range placed {
		if member == nil {
			continue
		}
		response.Placements = append(response.Placements, ResultParticipant{
			MemberID: member.ID,
			Name:     member.DisplayName(),
			Place:    intPtr(i + 2),
		})
	}

	for _, loser := range result.Losers {
		response.Losers = append(response.Losers, ResultParticipant{
			MemberID: loser.MemberID,
			Name:     loser.Member.DisplayName(),
		})
	}

	return response
}

func intPtr(v int) *int {
	return &v
}
