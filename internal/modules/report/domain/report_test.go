package domain_test

import (
	"errors"
	"testing"
	"time"

	"worklog/internal/modules/report/domain"
	apperrors "worklog/internal/platform/errors"
)

var noon = time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)

func ptr(v int64) *int64 { return &v }

func TestParsePeriod(t *testing.T) {
	t.Parallel()
	for _, raw := range []string{"daily", "weekly", "monthly"} {
		period, err := domain.ParsePeriod(raw)
		if err != nil {
			t.Fatalf("parse %q: %v", raw, err)
		}
		if string(period) != raw {
			t.Fatalf("expected %q, got %q", raw, period)
		}
	}
	if _, err := domain.ParsePeriod("yearly"); !errors.Is(err, apperrors.ErrUnknownPeriod) {
		t.Fatalf("expected ErrUnknownPeriod, got %v", err)
	}
}

func TestDailyMembership(t *testing.T) {
	t.Parallel()
	sameDay := time.Date(2026, 8, 27, 0, 0, 1, 0, time.UTC)
	prevDay := time.Date(2026, 8, 26, 23, 59, 59, 0, time.UTC)
	if !domain.Daily.Contains(sameDay.Unix(), noon) {
		t.Fatalf("same UTC day must match")
	}
	if domain.Daily.Contains(prevDay.Unix(), noon) {
		t.Fatalf("previous day must not match")
	}
}

func TestWeeklyMembershipUsesISOWeekYear(t *testing.T) {
	t.Parallel()
	// 2024-12-30 and 2025-01-02 both fall in ISO week 1 of 2025.
	dec30 := time.Date(2024, 12, 30, 10, 0, 0, 0, time.UTC)
	jan2 := time.Date(2025, 1, 2, 10, 0, 0, 0, time.UTC)
	if !domain.Weekly.Contains(dec30.Unix(), jan2) {
		t.Fatalf("ISO week must span the calendar year boundary")
	}
	// 2024-12-29 is still ISO week 52 of 2024.
	dec29 := time.Date(2024, 12, 29, 10, 0, 0, 0, time.UTC)
	if domain.Weekly.Contains(dec29.Unix(), jan2) {
		t.Fatalf("week 52 of 2024 must not match week 1 of 2025")
	}
}

func TestMonthlyMembership(t *testing.T) {
	t.Parallel()
	aug1 := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	jul31 := time.Date(2026, 7, 31, 23, 59, 59, 0, time.UTC)
	augLastYear := time.Date(2025, 8, 27, 12, 0, 0, 0, time.UTC)
	if !domain.Monthly.Contains(aug1.Unix(), noon) {
		t.Fatalf("same month must match")
	}
	if domain.Monthly.Contains(jul31.Unix(), noon) {
		t.Fatalf("previous month must not match")
	}
	if domain.Monthly.Contains(augLastYear.Unix(), noon) {
		t.Fatalf("same month of another year must not match")
	}
}

func TestUnknownPeriodMatchesNothing(t *testing.T) {
	t.Parallel()
	if domain.Period("yearly").Contains(noon.Unix(), noon) {
		t.Fatalf("unrecognized period must match nothing")
	}
}

func TestAggregateSkipsRunningSessions(t *testing.T) {
	t.Parallel()
	start := noon.Add(-2 * time.Hour).Unix()
	intervals := []domain.Interval{
		{Tag: "done", Start: start, End: ptr(start + 3600)},
		{Tag: "running", Start: start},
	}
	totals := domain.Aggregate(intervals, domain.Daily, noon)
	if totals["done"] != 3600 {
		t.Fatalf("expected 3600s for done, got %d", totals["done"])
	}
	if _, ok := totals["running"]; ok {
		t.Fatalf("running sessions must not be aggregated")
	}
}

func TestBoundarySpanningSessionCountsInBothDays(t *testing.T) {
	t.Parallel()
	// Starts 23:00 yesterday, ends 01:00 today.
	start := time.Date(2026, 8, 26, 23, 0, 0, 0, time.UTC).Unix()
	end := time.Date(2026, 8, 27, 1, 0, 0, 0, time.UTC).Unix()
	intervals := []domain.Interval{{Tag: "night", Start: start, End: ptr(end)}}

	today := domain.Aggregate(intervals, domain.Daily, noon)
	yesterday := domain.Aggregate(intervals, domain.Daily, noon.AddDate(0, 0, -1))
	if today["night"] != 7200 || yesterday["night"] != 7200 {
		t.Fatalf("boundary session must be credited in both periods, got today=%d yesterday=%d",
			today["night"], yesterday["night"])
	}
}

func TestBuildReportOrdersByDescendingTotal(t *testing.T) {
	t.Parallel()
	start := noon.Add(-3 * time.Hour).Unix()
	intervals := []domain.Interval{
		{Tag: "b", Start: start, End: ptr(start + 1800)},
		{Tag: "a", Start: start, End: ptr(start + 3600)},
	}
	lines := domain.BuildReport(intervals, domain.Daily, noon)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0].Tag != "a" || lines[0].Hours() != 1.0 {
		t.Fatalf("expected a=1.0h first, got %+v", lines[0])
	}
	if lines[1].Tag != "b" || lines[1].Hours() != 0.5 {
		t.Fatalf("expected b=0.5h second, got %+v", lines[1])
	}
}

func TestBuildReportMergesTagsAcrossSessions(t *testing.T) {
	t.Parallel()
	start := noon.Add(-4 * time.Hour).Unix()
	intervals := []domain.Interval{
		{Tag: "a", Start: start, End: ptr(start + 3600)},
		{Tag: "a", Start: start + 3600, End: ptr(start + 5400)},
	}
	lines := domain.BuildReport(intervals, domain.Daily, noon)
	if len(lines) != 1 || lines[0].Seconds != 5400 {
		t.Fatalf("expected one merged line of 5400s, got %+v", lines)
	}
}

func TestBuildReportEmptySignal(t *testing.T) {
	t.Parallel()
	lastWeek := noon.AddDate(0, 0, -10).Unix()
	intervals := []domain.Interval{{Tag: "old", Start: lastWeek, End: ptr(lastWeek + 3600)}}
	if lines := domain.BuildReport(intervals, domain.Daily, noon); lines != nil {
		t.Fatalf("expected nil for empty report, got %+v", lines)
	}
	if lines := domain.BuildReport(nil, domain.Daily, noon); lines != nil {
		t.Fatalf("expected nil for no sessions, got %+v", lines)
	}
}
