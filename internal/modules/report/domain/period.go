package domain

import (
	"time"

	apperrors "worklog/internal/platform/errors"
)

// Period is a UTC calendar bucket used to filter sessions.
type Period string

const (
	Daily   Period = "daily"
	Weekly  Period = "weekly"
	Monthly Period = "monthly"
)

func ParsePeriod(raw string) (Period, error) {
	switch Period(raw) {
	case Daily, Weekly, Monthly:
		return Period(raw), nil
	}
	return "", apperrors.ErrUnknownPeriod
}

// Contains reports whether ts falls in the same calendar bucket as now.
// Weeks follow ISO-8601 numbering: both the week number and the week
// year must match, so a timestamp in the last days of December can
// belong to week 1 of the next year. Unrecognized periods match
// nothing; the CLI rejects them before they get here.
func (p Period) Contains(ts int64, now time.Time) bool {
	t := time.Unix(ts, 0).UTC()
	now = now.UTC()
	switch p {
	case Daily:
		return t.Year() == now.Year() && t.YearDay() == now.YearDay()
	case Weekly:
		ty, tw := t.ISOWeek()
		ny, nw := now.ISOWeek()
		return ty == ny && tw == nw
	case Monthly:
		return t.Year() == now.Year() && t.Month() == now.Month()
	}
	return false
}
