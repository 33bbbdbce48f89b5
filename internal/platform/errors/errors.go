package apperrors

import "errors"

var (
	ErrSessionRunning   = errors.New("a session is already running")
	ErrNoActiveSession  = errors.New("no active session")
	ErrInvalidHours     = errors.New("hours must be positive")
	ErrCorruptLog       = errors.New("work log file is corrupt")
	ErrUnknownPeriod    = errors.New("unknown report period")
	ErrExporterNotFound = errors.New("exporter not found")
	ErrExporterTimeout  = errors.New("exporter timed out")
)
