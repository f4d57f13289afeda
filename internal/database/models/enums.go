package models

// ClubStatus represents the lifecycle status of a club
type ClubStatus string

const (
	ClubStatusActive    ClubStatus = "active"
	ClubStatusSuspended ClubStatus = "suspended"
	ClubStatusInactive  ClubStatus = "inactive"
)

// MemberStatus represents whether a member is currently active in their club
type MemberStatus string

const (
	MemberStatusActive   MemberStatus = "active"
	MemberStatusInactive MemberStatus = "inactive"
)

// ResultMode discriminates between the two shapes an individual result can take:
// a full 1st..8th placement order, or a single winner with an unordered loser set.
type ResultMode string

const (
	ResultModeRanked       ResultMode = "ranked"
	ResultModeWinnerLosers ResultMode = "winner_losers"
)

// CoopOutcome is the outcome of a cooperative session against the game itself
type CoopOutcome string

const (
	CoopOutcomeWin  CoopOutcome = "win"
	CoopOutcomeLoss CoopOutcome = "loss"
)

// ParticipantType discriminates cooperative result participants:
// an explicit member list or a single team
type ParticipantType string

const (
	ParticipantTypeMembers ParticipantType = "members"
	ParticipantTypeTeam    ParticipantType = "team"
)

// Difficulty levels for cooperative results. Submitted values matching a
// preset fold to these lowercase forms; anything else is kept as free text.
const (
	DifficultyEasy   = "easy"
	DifficultyNormal = "normal"
	DifficultyHard   = "hard"
	DifficultyExpert = "expert"
	DifficultyCustom = "custom"
)

// IsValid checks if the ClubStatus is valid
func (s ClubStatus) IsValid() bool {
	switch s {
	case ClubStatusActive, ClubStatusSuspended, ClubStatusInactive:
		return true
	}
	return false
}

// IsValid checks if the MemberStatus is valid
func (s MemberStatus) IsValid() bool {
	switch s {
	case MemberStatusActive, MemberStatusInactive:
		return true
	}
	return false
}

// IsValid checks if the ResultMode is valid
func (m ResultMode) IsValid() bool {
	switch m {
	case ResultModeRanked, ResultModeWinnerLosers:
		return true
	}
	return false
}

// IsValid checks if the CoopOutcome is valid
func (o CoopOutcome) IsValid() bool {
	switch o {
	case CoopOutcomeWin, CoopOutcomeLoss:
		return true
	}
	return false
}

// IsValid checks if the ParticipantType is valid
func (p ParticipantType) IsValid() bool {
	switch p {
	case ParticipantTypeMembers, ParticipantTypeTeam:
		return true
	}
	return false
}

// IsPresetDifficulty reports whether the value is one of the fixed difficulty levels
func IsPresetDifficulty(d string) bool {
	switch d {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyExpert:
		return true
	}
	return false
}
