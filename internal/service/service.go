package service

import (
	"time"

	apperrors "club-stats-backend/internal/errors"
)

const timeFormat = time.RFC3339

// parsePlayedAt accepts RFC 3339 timestamps and the shorter
// "YYYY-MM-DDTHH:MM" form that datetime-local inputs submit.
func parsePlayedAt(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02T15:04", value); err == nil {
		return t, nil
	}
	return time.Time{}, apperrors.ErrInvalidPlayedAt
}
