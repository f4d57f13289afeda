package repository

import (
	"club-stats-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MemberAggregate holds the raw per-member counters behind win rate, games
// played and average placement. Interpretation of the counters happens in the
// stats service.
type MemberAggregate struct {
	RankedWins       int64 `json:"ranked_wins"`
	RankedPlays      int64 `json:"ranked_plays"`
	PlacementSum     int64 `json:"placement_sum"`
	WinnerLosersWins int64 `json:"winner_losers_wins"`
	LoserPlays       int64 `json:"loser_plays"`
	CoopWins         int64 `json:"coop_wins"`
	CoopLosses       int64 `json:"coop_losses"`
}

// StandingRow is one member's line in the club standings
type StandingRow struct {
	MemberID uuid.UUID `json:"member_id"`
	FullName string    `json:"full_name"`
	Nickname string    `json:"nickname"`
	MemberAggregate
}

// CoopRecord is a game's cooperative win/loss tally
type CoopRecord struct {
	Wins   int64 `json:"wins"`
	Losses int64 `json:"losses"`
}

// StatsRepository runs the aggregate queries behind statistics endpoints
type StatsRepository struct {
	db *gorm.DB
}

// NewStatsRepository creates a new stats repository
func NewStatsRepository(db *gorm.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

// MemberAggregate collects every counter for one member
func (r *StatsRepository) MemberAggregate(memberID uuid.UUID) (*MemberAggregate, error) {
	agg := &MemberAggregate{}

	if err := r.db.Model(&models.GameResult{}).
		Where("mode = ? AND winner_id = ?", models.ResultModeRanked, memberID).
		Count(&agg.RankedWins).Error; err != nil {
		return nil, err
	}

	if err := r.db.Model(&models.GameResult{}).
		Where("mode = ? AND winner_id = ?", models.ResultModeWinnerLosers, memberID).
		Count(&agg.WinnerLosersWins).Error; err != nil {
		return nil, err
	}

	if err := r.db.Model(&models.GameResultLoser{}).
		Where("member_id = ?", memberID).
		Count(&agg.LoserPlays).Error; err != nil {
		return nil, err
	}

	// Every occupied place slot yields one row with its position; the winner of a
	// ranked result counts as place 1.
	placementQuery := `
		SELECT COUNT(*) AS ranked_plays, COALESCE(SUM(place), 0) AS placement_sum FROM (
			SELECT 1 AS place FROM game_results WHERE mode = 'ranked' AND winner_id = @member
			UNION ALL SELECT 2 FROM game_results WHERE place2_id = @member
			UNION ALL SELECT 3 FROM game_results WHERE place3_id = @member
			UNION ALL SELECT 4 FROM game_results WHERE place4_id = @member
			UNION ALL SELECT 5 FROM game_results WHERE place5_id = @member
			UNION ALL SELECT 6 FROM game_results WHERE place6_id = @member
			UNION ALL SELECT 7 FROM game_results WHERE place7_id = @member
			UNION ALL SELECT 8 FROM game_results WHERE place8_id = @member
		) q`
	var placement struct {
		RankedPlays  int64
		PlacementSum int64
	}
	if err := r.db.Raw(placementQuery, map[string]interface{}{"member": memberID}).
		Scan(&placement).Error; err != nil {
		return nil, err
	}
	agg.RankedPlays = placement.RankedPlays
	agg.PlacementSum = placement.PlacementSum

	coopQuery := `
		SELECT
			COUNT(*) FILTER (WHERE r.outcome = 'win') AS coop_wins,
			COUNT(*) FILTER (WHERE r.outcome = 'loss') AS coop_losses
		FROM cooperative_result_participants p
		JOIN cooperative_game_results r ON r.id = p.result_id
		WHERE p.member_id = @member`
	var coop struct {
		CoopWins   int64
		CoopLosses int64
	}
	if err := r.db.Raw(coopQuery, map[string]interface{}{"member": memberID}).
		Scan(&coop).Error; err != nil {
		return nil, err
	}
	agg.CoopWins = coop.CoopWins
	agg.CoopLosses = coop.CoopLosses

	return agg, nil
}

// ClubStandings collects aggregates for every member of a club. Ordering is
// applied by the stats service.
func (r *StatsRepository) ClubStandings(clubID uuid.UUID) ([]StandingRow, error) {
	var members []models.Member
	if err := r.db.Where("club_id = ?", clubID).Order("full_name").Find(&members).Error; err != nil {
		return nil, err
	}

	rows := make([]StandingRow, 0, len(members))
	for _, member := range members {
		agg, err := r.MemberAggregate(member.ID)
		if err != nil {
			return nil, err
		}
		rows = append(rows, StandingRow{
			MemberID:        member.ID,
			FullName:        member.FullName,
			Nickname:        member.Nickname,
			MemberAggregate: *agg,
		})
	}

	return rows, nil
}

// GameCoopRecord tallies a game's cooperative outcomes
func (r *StatsRepository) GameCoopRecord(gameID uuid.UUID) (*CoopRecord, error) {
	record := &CoopRecord{}

	if err := r.db.Model(&models.CooperativeGameResult{}).
		Where("game_id = ? AND outcome = ?", gameID, models.CoopOutcomeWin).
		Count(&record.Wins).Error; err != nil {
		return nil, err
	}

	if err := r.db.Model(&models.CooperativeGameResult{}).
		Where("game_id = ? AND outcome = ?", gameID, models.CoopOutcomeLoss).
		Count(&record.Losses).Error; err != nil {
		return nil, err
	}

	return record, nil
}
