package models

// Club represents the tenant boundary; every other entity belongs to exactly one club
type Club struct {
	BaseModel
	Name            string     `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	Slug            string     `json:"slug" gorm:"uniqueIndex;not null;size:120" validate:"required,max=120"`
	Status          ClubStatus `json:"status" gorm:"type:varchar(20);not null;default:'active'"`
	MeetingDay      string     `json:"meeting_day" gorm:"size:50"`
	MeetingLocation string     `json:"meeting_location" gorm:"size:200"`
	Description     string     `json:"description" gorm:"type:text"`

	// Relationships
	Members []Member `json:"members,omitempty" gorm:"foreignKey:ClubID;constraint:OnDelete:CASCADE"`
	Teams   []Team   `json:"teams,omitempty" gorm:"foreignKey:ClubID;constraint:OnDelete:CASCADE"`
	Games   []Game   `json:"games,omitempty" gorm:"foreignKey:ClubID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Club
func (Club) TableName() string {
	return "clubs"
}
