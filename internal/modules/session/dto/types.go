package dto

import "time"

type StartInput struct {
	Tag string
}

type StartOutput struct {
	Tag       string
	StartedAt time.Time
}

type StopOutput struct {
	Tag      string
	Duration time.Duration
}

type StatusOutput struct {
	Active    bool
	Tag       string
	StartedAt time.Time
	Elapsed   time.Duration
}

type ResetOutput struct {
	Tag string
}

type LogInput struct {
	Tag   string
	Hours float64
}

type LogOutput struct {
	Tag   string
	Hours float64
}

// SessionOutput mirrors one stored session for read-side consumers.
type SessionOutput struct {
	Tag       string
	Start     int64
	End       int64
	Completed bool
}

type HistoryInput struct {
	Tag   string
	Limit int
}

type HistoryEntry struct {
	Tag      string
	Start    time.Time
	End      time.Time
	Duration time.Duration
}
