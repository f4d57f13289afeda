package models

import (
	"time"

	"github.com/google/uuid"
)

// MaxPlaces is the total number of place slots in a ranked result
// (the winner plus seven additional places).
const MaxPlaces = 8

// GameResult is one played session of a game in individual mode. The mode column
// discriminates between a fully ranked result (place2..place8 populated as needed)
// and a winner/losers result (places null, losers held in the side table).
type GameResult struct {
	BaseModel
	ClubID    uuid.UUID  `json:"club_id" gorm:"type:uuid;not null;index" validate:"required"`
	GameID    uuid.UUID  `json:"game_id" gorm:"type:uuid;not null;index" validate:"required"`
	SessionID string     `json:"session_id" gorm:"not null;size:64;uniqueIndex"`
	Mode      ResultMode `json:"mode" gorm:"type:varchar(20);not null;default:'ranked'"`
	WinnerID  uuid.UUID  `json:"winner_id" gorm:"type:uuid;not null" validate:"required"`
	Place2ID  *uuid.UUID `json:"place2_id,omitempty" gorm:"type:uuid"`
	Place3ID  *uuid.UUID `json:"place3_id,omitempty" gorm:"type:uuid"`
	Place4ID  *uuid.UUID `json:"place4_id,omitempty" gorm:"type:uuid"`
	Place5ID  *uuid.UUID `json:"place5_id,omitempty" gorm:"type:uuid"`
	Place6ID  *uuid.UUID `json:"place6_id,omitempty" gorm:"type:uuid"`
	Place7ID  *uuid.UUID `json:"place7_id,omitempty" gorm:"type:uuid"`
	Place8ID  *uuid.UUID `json:"place8_id,omitempty" gorm:"type:uuid"`

	NumPlayers      int       `json:"num_players" gorm:"not null"`
	DurationMinutes int       `json:"duration_minutes" gorm:"not null"`
	Notes           string    `json:"notes" gorm:"type:text"`
	PlayedAt        time.Time `json:"played_at" gorm:"not null;index"`

	// Relationships. Game and member references use the default NO ACTION check,
	// which runs at statement end: a club cascade removes results together with
	// the members and games they reference, while a direct delete of a still
	// referenced member or game is rejected.
	Club   Club    `json:"club,omitempty" gorm:"foreignKey:ClubID;constraint:OnDelete:CASCADE"`
	Game   Game    `json:"game,omitempty" gorm:"foreignKey:GameID"`
	Winner Member  `json:"winner,omitempty" gorm:"foreignKey:WinnerID"`
	Place2 *Member `json:"place2,omitempty" gorm:"foreignKey:Place2ID"`
	Place3 *Member `json:"place3,omitempty" gorm:"foreignKey:Place3ID"`
	Place4 *Member `json:"place4,omitempty" gorm:"foreignKey:Place4ID"`
	Place5 *Member `json:"place5,omitempty" gorm:"foreignKey:Place5ID"`
	Place6 *Member `json:"place6,omitempty" gorm:"foreignKey:Place6ID"`
	Place7 *Member `json:"place7,omitempty" gorm:"foreignKey:Place7ID"`
	Place8 *Member `json:"place8,omitempty" gorm:"foreignKey:Place8ID"`

	Losers []GameResultLoser `json:"losers,omitempty" gorm:"foreignKey:ResultID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GameResult
func (GameResult) TableName() string {
	return "game_results"
}

// PlaceSlots returns pointers to the additional place columns in order (place 2..8)
func (r *GameResult) PlaceSlots() []**uuid.UUID {
	return []**uuid.UUID{
		&r.Place2ID, &r.Place3ID, &r.Place4ID, &r.Place5ID,
		&r.Place6ID, &r.Place7ID, &r.Place8ID,
	}
}

// PlaceIDs returns the additional place columns in order (place 2..8)
func (r *GameResult) PlaceIDs() []*uuid.UUID {
	return []*uuid.UUID{
		r.Place2ID, r.Place3ID, r.Place4ID, r.Place5ID,
		r.Place6ID, r.Place7ID, r.Place8ID,
	}
}

// ParticipantIDs collects the winner plus every populated place slot
func (r *GameResult) ParticipantIDs() []uuid.UUID {
	ids := []uuid.UUID{r.WinnerID}
	for _, id := range r.PlaceIDs() {
		if id != nil {
			ids = append(ids, *id)
		}
	}
	return ids
}

// GameResultLoser is one non-winning participant of a winner/losers result
type GameResultLoser struct {
	BaseModel
	ResultID uuid.UUID `json:"result_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_result_losers_member" validate:"required"`
	MemberID uuid.UUID `json:"member_id" gorm:"type:uuid;not null;uniqueIndex:idx_result_losers_member" validate:"required"`

	// Relationships
	Member Member `json:"member,omitempty" gorm:"foreignKey:MemberID"`
}

// TableName returns the table name for GameResultLoser
func (GameResultLoser) TableName() string {
	return "game_result_losers"
}
