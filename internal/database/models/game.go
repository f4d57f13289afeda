package models

import (
	"github.com/google/uuid"
)

// Game is a board game owned by a club. A game cannot be deleted while any
// result row references it; the service checks result counts before deleting.
type Game struct {
	BaseModel
	ClubID     uuid.UUID `json:"club_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name       string    `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	MinPlayers int       `json:"min_players" gorm:"not null;default:1" validate:"min=1"`
	MaxPlayers int       `json:"max_players" gorm:"not null;default:1" validate:"min=1"`
	ImageURL   string    `json:"image_url" gorm:"size:500"`

	// Relationships
	Club Club `json:"club,omitempty" gorm:"foreignKey:ClubID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Game
func (Game) TableName() string {
	return "games"
}
