package models

import (
	"github.com/google/uuid"
)

// Team is a fixed roster of one to four club members. The first slot is required.
type Team struct {
	BaseModel
	ClubID    uuid.UUID  `json:"club_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name      string     `json:"name" gorm:"not null;size:100" validate:"required,max=100"`
	Member1ID uuid.UUID  `json:"member1_id" gorm:"type:uuid;not null" validate:"required"`
	Member2ID *uuid.UUID `json:"member2_id,omitempty" gorm:"type:uuid"`
	Member3ID *uuid.UUID `json:"member3_id,omitempty" gorm:"type:uuid"`
	Member4ID *uuid.UUID `json:"member4_id,omitempty" gorm:"type:uuid"`

	// Relationships
	Club    Club    `json:"club,omitempty" gorm:"foreignKey:ClubID;constraint:OnDelete:CASCADE"`
	Member1 Member  `json:"member1,omitempty" gorm:"foreignKey:Member1ID"`
	Member2 *Member `json:"member2,omitempty" gorm:"foreignKey:Member2ID"`
	Member3 *Member `json:"member3,omitempty" gorm:"foreignKey:Member3ID"`
	Member4 *Member `json:"member4,omitempty" gorm:"foreignKey:Member4ID"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}

// MemberIDs returns the populated member slots in order
func (t *Team) MemberIDs() []uuid.UUID {
	ids := []uuid.UUID{t.Member1ID}
	for _, id := range []*uuid.UUID{t.Member2ID, t.Member3ID, t.Member4ID} {
		if id != nil {
			ids = append(ids, *id)
		}
	}
	return ids
}

// MemberNames returns the display names of the populated member slots, for
// rendering team participants as "(member, member, ...)". Relies on the
// member associations being preloaded; unloaded slots are skipped.
func (t *Team) MemberNames() []string {
	names := make([]string, 0, 4)
	if t.Member1.ID != uuid.Nil {
		names = append(names, t.Member1.DisplayName())
	}
	for _, m := range []*Member{t.Member2, t.Member3, t.Member4} {
		if m != nil {
			names = append(names, m.DisplayName())
		}
	}
	return names
}
