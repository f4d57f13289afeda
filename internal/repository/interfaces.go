package repository

import (
	"club-stats-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// ClubRepositoryInterface defines the interface for club repository operations
type ClubRepositoryInterface interface {
	Create(club *models.Club) error
	GetByID(id uuid.UUID) (*models.Club, error)
	GetBySlug(slug string) (*models.Club, error)
	GetAll(limit, offset int) ([]models.Club, int64, error)
	Update(club *models.Club) error
	Delete(id uuid.UUID) error
	GetWithMembers(id uuid.UUID) (*models.Club, error)
	GetWithGames(id uuid.UUID) (*models.Club, error)
	GetWithTeams(id uuid.UUID) (*models.Club, error)
}

// MemberRepositoryInterface defines the interface for member repository operations
type MemberRepositoryInterface interface {
	Create(member *models.Member) error
	GetByID(id uuid.UUID) (*models.Member, error)
	GetByEmail(clubID uuid.UUID, email string) (*models.Member, error)
	GetByClubID(clubID uuid.UUID, limit, offset int) ([]models.Member, int64, error)
	GetActiveByClub(clubID uuid.UUID, limit, offset int) ([]models.Member, int64, error)
	Search(clubID uuid.UUID, query string, limit, offset int) ([]models.Member, int64, error)
	Update(member *models.Member) error
	Delete(id uuid.UUID) error
}

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	Create(team *models.Team) error
	GetByID(id uuid.UUID) (*models.Team, error)
	GetWithMembers(id uuid.UUID) (*models.Team, error)
	GetByClubID(clubID uuid.UUID, limit, offset int) ([]models.Team, int64, error)
	Update(team *models.Team) error
	Delete(id uuid.UUID) error
}

// GameRepositoryInterface defines the interface for game repository operations
type GameRepositoryInterface interface {
	Create(game *models.Game) error
	GetByID(id uuid.UUID) (*models.Game, error)
	GetByClubID(clubID uuid.UUID, limit, offset int) ([]models.Game, int64, error)
	Search(clubID uuid.UUID, query string, limit, offset int) ([]models.Game, int64, error)
	Update(game *models.Game) error
	Delete(id uuid.UUID) error
	CountResults(gameID uuid.UUID) (int64, error)
}

// GameResultRepositoryInterface defines the interface for individual result operations.
// Create and Update run in one transaction together with the loser side table.
type GameResultRepositoryInterface interface {
	Create(result *models.GameResult, loserIDs []uuid.UUID) error
	GetByID(id uuid.UUID) (*models.GameResult, error)
	GetBySessionID(sessionID string) (*models.GameResult, error)
	GetByGameID(gameID uuid.UUID, limit, offset int) ([]models.GameResult, int64, error)
	GetByClubID(clubID uuid.UUID, limit, offset int) ([]models.GameResult, int64, error)
	Update(result *models.GameResult, loserIDs []uuid.UUID) error
	Delete(id uuid.UUID) error
}

// TeamGameResultRepositoryInterface defines the interface for team result operations
type TeamGameResultRepositoryInterface interface {
	Create(result *models.TeamGameResult) error
	GetByID(id uuid.UUID) (*models.TeamGameResult, error)
	GetByGameID(gameID uuid.UUID, limit, offset int) ([]models.TeamGameResult, int64, error)
	GetByClubID(clubID uuid.UUID, limit, offset int) ([]models.TeamGameResult, int64, error)
	Update(result *models.TeamGameResult) error
	Delete(id uuid.UUID) error
}

// CooperativeResultRepositoryInterface defines the interface for cooperative result
// operations. Create and Update replace the participant side table in one transaction.
type CooperativeResultRepositoryInterface interface {
	Create(result *models.CooperativeGameResult, memberIDs []uuid.UUID) error
	GetByID(id uuid.UUID) (*models.CooperativeGameResult, error)
	GetByGameID(gameID uuid.UUID, limit, offset int) ([]models.CooperativeGameResult, int64, error)
	GetByClubID(clubID uuid.UUID, limit, offset int) ([]models.CooperativeGameResult, int64, error)
	Update(result *models.CooperativeGameResult, memberIDs []uuid.UUID) error
	Delete(id uuid.UUID) error
}

// StatsRepositoryInterface defines the aggregate queries behind member statistics
// and club standings
type StatsRepositoryInterface interface {
	MemberAggregate(memberID uuid.UUID) (*MemberAggregate, error)
	ClubStandings(clubID uuid.UUID) ([]StandingRow, error)
	GameCoopRecord(gameID uuid.UUID) (*CoopRecord, error)
}
