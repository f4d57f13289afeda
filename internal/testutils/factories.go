package testutils

import (
	"fmt"
	"time"

	"club-stats-backend/internal/database/models"

	"github.com/google/uuid"
)

// ClubFactory provides methods to create test Club data
type ClubFactory struct{}

// NewClubFactory creates a new ClubFactory
func NewClubFactory() *ClubFactory {
	return &ClubFactory{}
}

// Create creates a test Club with default values
func (f *ClubFactory) Create() *models.Club {
	id := uuid.New()
	return &models.Club{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:            "Test Club",
		Slug:            "test-club-" + id.String()[:8],
		Status:          models.ClubStatusActive,
		MeetingDay:      "Thursday",
		MeetingLocation: "Community Hall",
		Description:     "A test club for testing purposes",
	}
}

// WithName sets a custom name and matching slug for the club
func (f *ClubFactory) WithName(name, slug string) *models.Club {
	club := f.Create()
	club.Name = name
	club.Slug = slug
	return club
}

// WithStatus sets a custom status for the club
func (f *ClubFactory) WithStatus(status models.ClubStatus) *models.Club {
	club := f.Create()
	club.Status = status
	return club
}

// MemberFactory provides methods to create test Member data
type MemberFactory struct{}

// NewMemberFactory creates a new MemberFactory
func NewMemberFactory() *MemberFactory {
	return &MemberFactory{}
}

// Create creates a test Member with default values. The email embeds part of
// the UUID so members within one club never collide on the unique index.
func (f *MemberFactory) Create() *models.Member {
	id := uuid.New()
	return &models.Member{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ClubID:   uuid.New(),
		FullName: "John Doe",
		Nickname: "",
		Email:    fmt.Sprintf("john.doe+%s@test.com", id.String()[:8]),
		Status:   models.MemberStatusActive,
	}
}

// WithClub sets the club ID for the member
func (f *MemberFactory) WithClub(clubID uuid.UUID) *models.Member {
	member := f.Create()
	member.ClubID = clubID
	return member
}

// WithName sets a custom full name for the member
func (f *MemberFactory) WithName(clubID uuid.UUID, fullName string) *models.Member {
	member := f.WithClub(clubID)
	member.FullName = fullName
	return member
}

// WithEmail sets a custom email for the member
func (f *MemberFactory) WithEmail(clubID uuid.UUID, email string) *models.Member {
	member := f.WithClub(clubID)
	member.Email = email
	return member
}

// WithStatus sets a custom status for the member
func (f *MemberFactory) WithStatus(clubID uuid.UUID, status models.MemberStatus) *models.Member {
	member := f.WithClub(clubID)
	member.Status = status
	return member
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team with a single filled roster slot
func (f *TeamFactory) Create() *models.Team {
	return &models.Team{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ClubID:    uuid.New(),
		Name:      "Test Team",
		Member1ID: uuid.New(),
	}
}

// WithClub sets the club ID for the team
func (f *TeamFactory) WithClub(clubID uuid.UUID) *models.Team {
	team := f.Create()
	team.ClubID = clubID
	return team
}

// WithRoster fills the team slots from the given member IDs, up to four
func (f *TeamFactory) WithRoster(clubID uuid.UUID, memberIDs ...uuid.UUID) *models.Team {
	team := f.WithClub(clubID)
	slots := []**uuid.UUID{&team.Member2ID, &team.Member3ID, &team.Member4ID}
	for i, id := range memberIDs {
		if i == 0 {
			team.Member1ID = id
			continue
		}
		if i-1 < len(slots) {
			v := id
			*slots[i-1] = &v
		}
	}
	return team
}

// GameFactory provides methods to create test Game data
type GameFactory struct{}

// NewGameFactory creates a new GameFactory
func NewGameFactory() *GameFactory {
	return &GameFactory{}
}

// Create creates a test Game with default values
func (f *GameFactory) Create() *models.Game {
	return &models.Game{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ClubID:     uuid.New(),
		Name:       "Test Game",
		MinPlayers: 2,
		MaxPlayers: 4,
	}
}

// WithClub sets the club ID for the game
func (f *GameFactory) WithClub(clubID uuid.UUID) *models.Game {
	game := f.Create()
	game.ClubID = clubID
	return game
}

// WithName sets a custom name for the game
func (f *GameFactory) WithName(clubID uuid.UUID, name string) *models.Game {
	game := f.WithClub(clubID)
	game.Name = name
	return game
}

// GameResultFactory provides methods to create test GameResult data
type GameResultFactory struct{}

// NewGameResultFactory creates a new GameResultFactory
func NewGameResultFactory() *GameResultFactory {
	return &GameResultFactory{}
}

// Ranked creates a ranked result with the given ordered participants.
// The first member is the winner, the rest fill place2 onwards.
func (f *GameResultFactory) Ranked(clubID, gameID uuid.UUID, memberIDs ...uuid.UUID) *models.GameResult {
	result := &models.GameResult{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ClubID:          clubID,
		GameID:          gameID,
		SessionID:       uuid.NewString(),
		Mode:            models.ResultModeRanked,
		NumPlayers:      len(memberIDs),
		DurationMinutes: 60,
		PlayedAt:        time.Now(),
	}
	slots := result.PlaceSlots()
	for i, id := range memberIDs {
		if i == 0 {
			result.WinnerID = id
			continue
		}
		if i-1 < len(slots) {
			v := id
			*slots[i-1] = &v
		}
	}
	return result
}

// WinnerLosers creates a winner/losers result for the given winner. Loser rows
// are returned separately so tests can pass them to the repository Create.
func (f *GameResultFactory) WinnerLosers(clubID, gameID, winnerID uuid.UUID, loserIDs ...uuid.UUID) *models.GameResult {
	return &models.GameResult{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ClubID:          clubID,
		GameID:          gameID,
		SessionID:       uuid.NewString(),
		Mode:            models.ResultModeWinnerLosers,
		WinnerID:        winnerID,
		NumPlayers:      1 + len(loserIDs),
		DurationMinutes: 60,
		PlayedAt:        time.Now(),
	}
}

// TeamGameResultFactory provides methods to create test TeamGameResult data
type TeamGameResultFactory struct{}

// NewTeamGameResultFactory creates a new TeamGameResultFactory
func NewTeamGameResultFactory() *TeamGameResultFactory {
	return &TeamGameResultFactory{}
}

// Ranked creates a team result with the given ordered teams.
// The first team is the winner, the rest fill place2 onwards.
func (f *TeamGameResultFactory) Ranked(clubID, gameID uuid.UUID, teamIDs ...uuid.UUID) *models.TeamGameResult {
	result := &models.TeamGameResult{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ClubID:          clubID,
		GameID:          gameID,
		SessionID:       uuid.NewString(),
		NumTeams:        len(teamIDs),
		DurationMinutes: 90,
		PlayedAt:        time.Now(),
	}
	slots := result.PlaceSlots()
	for i, id := range teamIDs {
		if i == 0 {
			result.WinnerTeamID = id
			continue
		}
		if i-1 < len(slots) {
			v := id
			*slots[i-1] = &v
		}
	}
	return result
}

// CoopResultFactory provides methods to create test CooperativeGameResult data
type CoopResultFactory struct{}

// NewCoopResultFactory creates a new CoopResultFactory
func NewCoopResultFactory() *CoopResultFactory {
	return &CoopResultFactory{}
}

// WithMembers creates a cooperative result with member-list participants.
// Participant rows are created by the repository from the ID list.
func (f *CoopResultFactory) WithMembers(clubID, gameID uuid.UUID, outcome models.CoopOutcome, memberCount int) *models.CooperativeGameResult {
	return &models.CooperativeGameResult{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ClubID:          clubID,
		GameID:          gameID,
		SessionID:       uuid.NewString(),
		Outcome:         outcome,
		ParticipantType: models.ParticipantTypeMembers,
		NumParticipants: memberCount,
		DurationMinutes: 120,
		PlayedAt:        time.Now(),
	}
}

// WithTeam creates a cooperative result played by a single team
func (f *CoopResultFactory) WithTeam(clubID, gameID, teamID uuid.UUID, outcome models.CoopOutcome, numParticipants int) *models.CooperativeGameResult {
	result := f.WithMembers(clubID, gameID, outcome, numParticipants)
	result.ParticipantType = models.ParticipantTypeTeam
	result.TeamID = &teamID
	return result
}

// FactorySet provides access to all factories
type FactorySet struct {
	Club           *ClubFactory
	Member         *MemberFactory
	Team           *TeamFactory
	Game           *GameFactory
	GameResult     *GameResultFactory
	TeamGameResult *TeamGameResultFactory
	CoopResult     *CoopResultFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Club:           NewClubFactory(),
		Member:         NewMemberFactory(),
		Team:           NewTeamFactory(),
		Game:           NewGameFactory(),
		GameResult:     NewGameResultFactory(),
		TeamGameResult: NewTeamGameResultFactory(),
		CoopResult:     NewCoopResultFactory(),
	}
}

// CreateClubFixture creates a club with the given number of members and one game
func (fs *FactorySet) CreateClubFixture(memberCount int) (*models.Club, []*models.Member, *models.Game) {
	club := fs.Club.Create()
	members := make([]*models.Member, 0, memberCount)
	for i := 0; i < memberCount; i++ {
		m := fs.Member.WithClub(club.ID)
		m.FullName = fmt.Sprintf("Member %d", i+1)
		members = append(members, m)
	}
	game := fs.Game.WithClub(club.ID)
	return club, members, game
}
