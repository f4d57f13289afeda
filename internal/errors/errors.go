package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "in club"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Is enables errors.Is() comparison for ValidationError
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	if !ok {
		return false
	}
	return e.Field == t.Field && e.Message == t.Message
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrClubNotFound       = &NotFoundError{Entity: "club"}
	ErrMemberNotFound     = &NotFoundError{Entity: "member"}
	ErrTeamNotFound       = &NotFoundError{Entity: "team"}
	ErrGameNotFound       = &NotFoundError{Entity: "game"}
	ErrResultNotFound     = &NotFoundError{Entity: "game result"}
	ErrTeamResultNotFound = &NotFoundError{Entity: "team game result"}
	ErrCoopResultNotFound = &NotFoundError{Entity: "cooperative game result"}
)

// Already Exists Errors
var (
	ErrClubExists   = &AlreadyExistsError{Entity: "club", Context: "with this slug"}
	ErrMemberExists = &AlreadyExistsError{Entity: "member", Context: "with this email in the club"}
)

// Result Validation Errors
var (
	ErrDuplicateParticipants = &ValidationError{Field: "participants", Message: "duplicate members selected for this result"}
	ErrDuplicateTeams        = &ValidationError{Field: "teams", Message: "duplicate teams selected for this result"}
	ErrWinnerInLosers        = &ValidationError{Field: "losers", Message: "winner cannot also be listed as a loser"}
	ErrPlaceLimitExceeded    = &ValidationError{Field: "places", Message: "at most 8 placed participants are allowed"}
	ErrDurationRequired      = &ValidationError{Field: "duration_minutes", Message: "duration must be a positive number of minutes"}
	ErrParticipantsRequired  = &ValidationError{Field: "member_ids", Message: "at least one participant is required"}
	ErrTeamRequired          = &ValidationError{Field: "team_id", Message: "a team is required for team participants"}
	ErrNegativeScore         = &ValidationError{Field: "score", Message: "score must not be negative"}
	ErrInvalidPlayedAt       = &ValidationError{Field: "played_at", Message: "played_at must be RFC 3339 or YYYY-MM-DDTHH:MM"}
)

// Business Logic Errors
var (
	ErrGameHasResults       = errors.New("game cannot be deleted while results reference it")
	ErrDuplicateTeamMembers = errors.New("a member cannot appear twice on the same team")
	ErrTeamNotInClub        = errors.New("team belongs to a different club")
	ErrInvalidStatus        = errors.New("invalid status")
	ErrSaveFailed           = errors.New("save failed, please retry")
)

// Authentication Errors
var (
	ErrInvalidCredentials = &AuthenticationError{Message: "invalid email or password"}
	ErrInvalidToken       = &AuthenticationError{Message: "invalid or expired token"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
