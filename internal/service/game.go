package service

import (
	"fmt"

	"club-stats-backend/internal/database/models"
	apperrors "club-stats-backend/internal/errors"
	"club-stats-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// GameService handles business logic for a club's game catalog
type GameService struct {
	repo      repository.GameRepositoryInterface
	validator *validator.Validate
}

// NewGameService creates a new game service
func NewGameService(repo repository.GameRepositoryInterface, validator *validator.Validate) *GameService {
	return &GameService{
		repo:      repo,
		validator: validator,
	}
}

// CreateGameRequest represents the data needed to create a game
type CreateGameRequest struct {
	ClubID     uuid.UUID `json:"club_id" validate:"required"`
	Name       string    `json:"name" validate:"required,max=200"`
	MinPlayers int       `json:"min_players" validate:"required,min=1"`
	MaxPlayers int       `json:"max_players" validate:"required,min=1,gtefield=MinPlayers"`
	ImageURL   string    `json:"image_url" validate:"omitempty,url,max=500"`
}

// UpdateGameRequest represents the data needed to update a game
type UpdateGameRequest struct {
	Name       *string `json:"name" validate:"omitempty,max=200"`
	MinPlayers *int    `json:"min_players" validate:"omitempty,min=1"`
	MaxPlayers *int    `json:"max_players" validate:"omitempty,min=1"`
	ImageURL   *string `json:"image_url" validate:"omitempty,url,max=500"`
}

// GameResponse represents the response data for a game
type GameResponse struct {
	ID         uuid.UUID `json:"id"`
	ClubID     uuid.UUID `json:"club_id"`
	Name       string    `json:"name"`
	MinPlayers int       `json:"min_players"`
	MaxPlayers int       `json:"max_players"`
	ImageURL   string    `json:"image_url,omitempty"`
	CreatedAt  string    `json:"created_at"`
	UpdatedAt  string    `json:"updated_at"`
}

// CreateGame creates a new game in a club's catalog
func (s *GameService) CreateGame(req *CreateGameRequest) (*GameResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	game := &models.Game{
		ClubID:     req.ClubID,
		Name:       req.Name,
		MinPlayers: req.MinPlayers,
		MaxPlayers: req.MaxPlayers,
		ImageURL:   req.ImageURL,
	}

	if err := s.repo.Create(game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	return s.convertToResponse(game), nil
}

// GetGameByID retrieves a game by ID
func (s *GameService) GetGameByID(id uuid.UUID) (*GameResponse, error) {
	game, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrGameNotFound
	}

	return s.convertToResponse(game), nil
}

// GetGamesByClub retrieves a club's game catalog
func (s *GameService) GetGamesByClub(clubID uuid.UUID, limit, offset int) ([]GameResponse, int64, error) {
	games, total, err := s.repo.GetByClubID(clubID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get games: %w", err)
	}

	responses := make([]GameResponse, len(games))
	for i, game := range games {
		responses[i] = *s.convertToResponse(&game)
	}

	return responses, total, nil
}

// SearchGames searches a club's catalog by name
func (s *GameService) SearchGames(clubID uuid.UUID, query string, limit, offset int) ([]GameResponse, int64, error) {
	games, total, err := s.repo.Search(clubID, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search games: %w", err)
	}

	responses := make([]GameResponse, len(games))
	for i, game := range games {
		responses[i] = *s.convertToResponse(&game)
	}

	return responses, total, nil
}

// UpdateGame updates an existing game
func (s *GameService) UpdateGame(id uuid.UUID, req *UpdateGameRequest) (*GameResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	game, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrGameNotFound
	}

	if req.Name != nil {
		game.Name = *req.Name
	}
	if req.MinPlayers != nil {
		game.MinPlayers = *req.MinPlayers
	}
	if req.MaxPlayers != nil {
		game.MaxPlayers = *req.MaxPlayers
	}
	if req.ImageURL != nil {
		game.ImageURL = *req.ImageURL
	}

	if game.MaxPlayers < game.MinPlayers {
		return nil, apperrors.NewValidationError("max_players", "must not be smaller than min_players")
	}

	if err := s.repo.Update(game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	return s.convertToResponse(game), nil
}

// DeleteGame deletes a game unless any recorded result still references it
func (s *GameService) DeleteGame(id uuid.UUID) error {
	_, err := s.repo.GetByID(id)
	if err != nil {
		return apperrors.ErrGameNotFound
	}

	count, err := s.repo.CountResults(id)
	if err != nil {
		return fmt.Errorf("failed to count results: %w", err)
	}
	if count > 0 {
		return apperrors.ErrGameHasResults
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	return nil
}

// convertToResponse converts a game model to response
func (s *GameService) convertToResponse(game *models.Game) *GameResponse {
	return &GameResponse{
		ID:         game.ID,
		ClubID:     game.ClubID,
		Name:       game.Name,
		MinPlayers: game.MinPlayers,
		MaxPlayers: game.MaxPlayers,
		ImageURL:   game.ImageURL,
		CreatedAt:  game.CreatedAt.Format(timeFormat),
		UpdatedAt:  game.UpdatedAt.Format(timeFormat),
	}
}
