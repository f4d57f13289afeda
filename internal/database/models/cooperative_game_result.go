package models

import (
	"time"

	"github.com/google/uuid"
)

// CooperativeGameResult is a non-competitive session played with or against the
// game itself. Participants are either an explicit member list (side table) or a
// single team; ParticipantType discriminates, the two are mutually exclusive.
type CooperativeGameResult struct {
	BaseModel
	ClubID          uuid.UUID       `json:"club_id" gorm:"type:uuid;not null;index" validate:"required"`
	GameID          uuid.UUID       `json:"game_id" gorm:"type:uuid;not null;index" validate:"required"`
	SessionID       string          `json:"session_id" gorm:"not null;size:64;uniqueIndex"`
	Outcome         CoopOutcome     `json:"outcome" gorm:"type:varchar(10);not null" validate:"required"`
	Score           *int            `json:"score,omitempty"`
	Difficulty      *string         `json:"difficulty,omitempty" gorm:"size:100"`
	Scenario        string          `json:"scenario" gorm:"size:200"`
	ParticipantType ParticipantType `json:"participant_type" gorm:"type:varchar(20);not null" validate:"required"`
	TeamID          *uuid.UUID      `json:"team_id,omitempty" gorm:"type:uuid"`

	// NumParticipants is derived at write time from the member list length or the
	// team's populated slots; it is not re-validated on read.
	NumParticipants int       `json:"num_participants" gorm:"not null"`
	DurationMinutes int       `json:"duration_minutes" gorm:"not null"`
	Notes           string    `json:"notes" gorm:"type:text"`
	PlayedAt        time.Time `json:"played_at" gorm:"not null;index"`

	// Relationships
	Club Club  `json:"club,omitempty" gorm:"foreignKey:ClubID;constraint:OnDelete:CASCADE"`
	Game Game  `json:"game,omitempty" gorm:"foreignKey:GameID"`
	Team *Team `json:"team,omitempty" gorm:"foreignKey:TeamID"`

	Participants []CooperativeResultParticipant `json:"participants,omitempty" gorm:"foreignKey:ResultID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for CooperativeGameResult
func (CooperativeGameResult) TableName() string {
	return "cooperative_game_results"
}

// CooperativeResultParticipant is one member-row participant of a cooperative result
type CooperativeResultParticipant struct {
	BaseModel
	ResultID uuid.UUID `json:"result_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_coop_participants_member" validate:"required"`
	MemberID uuid.UUID `json:"member_id" gorm:"type:uuid;not null;uniqueIndex:idx_coop_participants_member" validate:"required"`

	// Relationships
	Member Member `json:"member,omitempty" gorm:"foreignKey:MemberID"`
}

// TableName returns the table name for CooperativeResultParticipant
func (CooperativeResultParticipant) TableName() string {
	return "cooperative_result_participants"
}
