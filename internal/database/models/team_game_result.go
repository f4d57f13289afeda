package models

import (
	"time"

	"github.com/google/uuid"
)

// TeamGameResult is one played session of a game in team mode. It mirrors the
// ranked individual result but place slots reference teams. There is no team
// winner/losers mode and no loser side table.
type TeamGameResult struct {
	BaseModel
	ClubID       uuid.UUID  `json:"club_id" gorm:"type:uuid;not null;index" validate:"required"`
	GameID       uuid.UUID  `json:"game_id" gorm:"type:uuid;not null;index" validate:"required"`
	SessionID    string     `json:"session_id" gorm:"not null;size:64;uniqueIndex"`
	WinnerTeamID uuid.UUID  `json:"winner_team_id" gorm:"type:uuid;not null" validate:"required"`
	Place2TeamID *uuid.UUID `json:"place2_team_id,omitempty" gorm:"type:uuid"`
	Place3TeamID *uuid.UUID `json:"place3_team_id,omitempty" gorm:"type:uuid"`
	Place4TeamID *uuid.UUID `json:"place4_team_id,omitempty" gorm:"type:uuid"`
	Place5TeamID *uuid.UUID `json:"place5_team_id,omitempty" gorm:"type:uuid"`
	Place6TeamID *uuid.UUID `json:"place6_team_id,omitempty" gorm:"type:uuid"`
	Place7TeamID *uuid.UUID `json:"place7_team_id,omitempty" gorm:"type:uuid"`
	Place8TeamID *uuid.UUID `json:"place8_team_id,omitempty" gorm:"type:uuid"`

	NumTeams        int       `json:"num_teams" gorm:"not null"`
	DurationMinutes int       `json:"duration_minutes" gorm:"not null"`
	Notes           string    `json:"notes" gorm:"type:text"`
	PlayedAt        time.Time `json:"played_at" gorm:"not null;index"`

	// Relationships
	Club       Club  `json:"club,omitempty" gorm:"foreignKey:ClubID;constraint:OnDelete:CASCADE"`
	Game       Game  `json:"game,omitempty" gorm:"foreignKey:GameID"`
	WinnerTeam Team  `json:"winner_team,omitempty" gorm:"foreignKey:WinnerTeamID"`
	Place2Team *Team `json:"place2_team,omitempty" gorm:"foreignKey:Place2TeamID"`
	Place3Team *Team `json:"place3_team,omitempty" gorm:"foreignKey:Place3TeamID"`
	Place4Team *Team `json:"place4_team,omitempty" gorm:"foreignKey:Place4TeamID"`
	Place5Team *Team `json:"place5_team,omitempty" gorm:"foreignKey:Place5TeamID"`
	Place6Team *Team `json:"place6_team,omitempty" gorm:"foreignKey:Place6TeamID"`
	Place7Team *Team `json:"place7_team,omitempty" gorm:"foreignKey:Place7TeamID"`
	Place8Team *Team `json:"place8_team,omitempty" gorm:"foreignKey:Place8TeamID"`
}

// TableName returns the table name for TeamGameResult
func (TeamGameResult) TableName() string {
	return "team_game_results"
}

// PlaceSlots returns pointers to the additional place columns in order (place 2..8)
func (r *TeamGameResult) PlaceSlots() []**uuid.UUID {
	return []**uuid.UUID{
		&r.Place2TeamID, &r.Place3TeamID, &r.Place4TeamID, &r.Place5TeamID,
		&r.Place6TeamID, &r.Place7TeamID, &r.Place8TeamID,
	}
}

// PlaceTeamIDs returns the additional place columns in order (place 2..8)
func (r *TeamGameResult) PlaceTeamIDs() []*uuid.UUID {
	return []*uuid.UUID{
		r.Place2TeamID, r.Place3TeamID, r.Place4TeamID, r.Place5TeamID,
		r.Place6TeamID, r.Place7TeamID, r.Place8TeamID,
	}
}

// ParticipantTeamIDs collects the winning team plus every populated place slot
func (r *TeamGameResult) ParticipantTeamIDs() []uuid.UUID {
	ids := []uuid.UUID{r.WinnerTeamID}
	for _, id := range r.PlaceTeamIDs() {
		if id != nil {
			ids = append(ids, *id)
		}
	}
	return ids
}
