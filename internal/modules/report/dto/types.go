package dto

import "time"

type ReportInput struct {
	Period string
}

type ReportLine struct {
	Tag     string
	Seconds int64
	Hours   float64
}

type ReportOutput struct {
	Period      string
	GeneratedAt time.Time
	Lines       []ReportLine
	Empty       bool
}
