package models

import (
	"github.com/google/uuid"
)

// Member represents a person in a club. Members are referenced by result rows as
// winners or placed participants; the foreign keys there are RESTRICT, so a member
// cannot be deleted while any result references them.
type Member struct {
	BaseModel
	ClubID   uuid.UUID    `json:"club_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_members_club_email" validate:"required"`
	FullName string       `json:"full_name" gorm:"not null;size:200" validate:"required,max=200"`
	Nickname string       `json:"nickname" gorm:"size:100" validate:"max=100"`
	Email    string       `json:"email" gorm:"not null;size:255;uniqueIndex:idx_members_club_email" validate:"required,email,max=255"`
	Status   MemberStatus `json:"status" gorm:"type:varchar(20);not null;default:'active'"`

	// Relationships
	Club Club `json:"club,omitempty" gorm:"foreignKey:ClubID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Member
func (Member) TableName() string {
	return "members"
}

// DisplayName prefers the public nickname over the full name
func (m *Member) DisplayName() string {
	if m.Nickname != "" {
		return m.Nickname
	}
	return m.FullName
}
