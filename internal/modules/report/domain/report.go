package domain

import (
	"sort"
	"time"
)

// Interval is one tracked session as seen by the report engine.
// End is nil for a still-running session, which reports ignore.
type Interval struct {
	Tag   string
	Start int64
	End   *int64
}

// Line is one aggregated report row.
type Line struct {
	Tag     string
	Seconds int64
}

func (l Line) Hours() float64 {
	return float64(l.Seconds) / 3600.0
}

// Aggregate sums completed durations per tag for the period. A session
// is counted when its start OR its end falls inside the period, so a
// session spanning a boundary is credited in both adjacent periods.
func Aggregate(intervals []Interval, period Period, now time.Time) map[string]int64 {
	totals := map[string]int64{}
	for _, iv := range intervals {
		if iv.End == nil {
			continue
		}
		if period.Contains(iv.Start, now) || period.Contains(*iv.End, now) {
			totals[iv.Tag] += *iv.End - iv.Start
		}
	}
	return totals
}

// BuildReport orders aggregated totals by descending duration.
// Tie order between equal totals is unspecified. An empty slice means
// no tag had any time in the period.
func BuildReport(intervals []Interval, period Period, now time.Time) []Line {
	totals := Aggregate(intervals, period, now)
	if len(totals) == 0 {
		return nil
	}
	lines := make([]Line, 0, len(totals))
	for tag, seconds := range totals {
		lines = append(lines, Line{Tag: tag, Seconds: seconds})
	}
	sort.SliceStable(lines, func(a, b int) bool {
		return lines[a].Seconds > lines[b].Seconds
	})
	return lines
}
