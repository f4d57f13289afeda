package service

import (
	"sort"

	apperrors "club-stats-backend/internal/errors"
	"club-stats-backend/internal/repository"

	"github.com/google/uuid"
)

// StatsService turns the raw aggregate counters into member statistics,
// club standings and per-game cooperative records
type StatsService struct {
	repo       repository.StatsRepositoryInterface
	memberRepo repository.MemberRepositoryInterface
	gameRepo   repository.GameRepositoryInterface
}

// NewStatsService creates a new stats service
func NewStatsService(
	repo repository.StatsRepositoryInterface,
	memberRepo repository.MemberRepositoryInterface,
	gameRepo repository.GameRepositoryInterface,
) *StatsService {
	return &StatsService{
		repo:       repo,
		memberRepo: memberRepo,
		gameRepo:   gameRepo,
	}
}

// MemberStatsResponse represents a member's computed statistics. AvgPlacement
// is null until the member has at least one ranked placement.
type MemberStatsResponse struct {
	MemberID     uuid.UUID `json:"member_id"`
	Name         string    `json:"name"`
	Wins         int64     `json:"wins"`
	GamesPlayed  int64     `json:"games_played"`
	WinRate      float64   `json:"win_rate"`
	AvgPlacement *float64  `json:"avg_placement,omitempty"`
	CoopWins     int64     `json:"coop_wins"`
	CoopLosses   int64     `json:"coop_losses"`
}

// StandingsEntry is one line of the club standings
type StandingsEntry struct {
	Rank int `json:"rank"`
	MemberStatsResponse
}

// GameCoopRecordResponse is a game's cooperative win/loss record
type GameCoopRecordResponse struct {
	GameID      uuid.UUID `json:"game_id"`
	GameName    string    `json:"game_name"`
	Wins        int64     `json:"wins"`
	Losses      int64     `json:"losses"`
	SuccessRate float64   `json:"success_rate"`
}

// GetMemberStats computes statistics for one member
func (s *StatsService) GetMemberStats(memberID uuid.UUID) (*MemberStatsResponse, error) {
	member, err := s.memberRepo.GetByID(memberID)
	if err != nil {
		return nil, apperrors.ErrMemberNotFound
	}

	agg, err := s.repo.MemberAggregate(memberID)
	if err != nil {
		return nil, err
	}

	stats := computeMemberStats(agg)
	stats.MemberID = member.ID
	stats.Name = member.DisplayName()
	return stats, nil
}

// GetClubStandings computes the standings table for a club, ordered by wins,
// then win rate, then name
func (s *StatsService) GetClubStandings(clubID uuid.UUID) ([]StandingsEntry, error) {
	rows, err := s.repo.ClubStandings(clubID)
	if err != nil {
		return nil, err
	}

	entries := make([]StandingsEntry, len(rows))
	for i, row := range rows {
		stats := computeMemberStats(&row.MemberAggregate)
		stats.MemberID = row.MemberID
		stats.Name = row.FullName
		if row.Nickname != "" {
			stats.Name = row.Nickname
		}
		entries[i] = StandingsEntry{MemberStatsResponse: *stats}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Wins != entries[j].Wins {
			return entries[i].Wins > entries[j].Wins
		}
		if entries[i].WinRate != entries[j].WinRate {
			return entries[i].WinRate > entries[j].WinRate
		}
		return entries[i].Name < entries[j].Name
	})

	for i := range entries {
		entries[i].Rank = i + 1
	}

	return entries, nil
}

// GetGameCoopRecord computes a game's cooperative win/loss record
func (s *StatsService) GetGameCoopRecord(gameID uuid.UUID) (*GameCoopRecordResponse, error) {
	game, err := s.gameRepo.GetByID(gameID)
	if err != nil {
		return nil, apperrors.ErrGameNotFound
	}

	record, err := s.repo.GameCoopRecord(gameID)
	if err != nil {
		return nil, err
	}

	response := &GameCoopRecordResponse{
		GameID:   game.ID,
		GameName: game.Name,
		Wins:     record.Wins,
		Losses:   record.Losses,
	}
	if total := record.Wins + record.Losses; total > 0 {
		response.SuccessRate = float64(record.Wins) / float64(total)
	}

	return response, nil
}

// computeMemberStats derives the presented numbers from the raw counters.
// Win rate covers competitive plays only; cooperative sessions count toward
// games played but not toward the win rate.
func computeMemberStats(agg *repository.MemberAggregate) *MemberStatsResponse {
	wins := agg.RankedWins + agg.WinnerLosersWins
	competitivePlays := agg.RankedPlays + agg.WinnerLosersWins + agg.LoserPlays

	stats := &MemberStatsResponse{
		Wins:        wins,
		GamesPlayed: competitivePlays + agg.CoopWins + agg.CoopLosses,
		CoopWins:    agg.CoopWins,
		CoopLosses:  agg.CoopLosses,
	}

	if competitivePlays > 0 {
		stats.WinRate = float64(wins) / float64(competitivePlays)
	}
	if agg.RankedPlays > 0 {
		avg := float64(agg.PlacementSum) / float64(agg.RankedPlays)
		stats.AvgPlacement = &avg
	}

	return stats
}
