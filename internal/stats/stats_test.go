package stats

import (
	"testing"
	"time"

	"app/internal/model"
)

func strPtr(s string) *string { return &s }

func session(courseID *string, date time.Time, duration int) model.StudySession {
	return model.StudySession{CourseID: courseID, Date: date, Duration: duration}
}

func course(id, name string) model.Course {
	return model.Course{ID: id, Name: name}
}

func TestComputePerCourseTotals(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	algo := strPtr("algo")
	db := strPtr("db")

	sessions := []model.StudySession{
		session(algo, now.AddDate(0, 0, -2), 30),
		session(algo, now.AddDate(0, 0, -1), 45),
		session(db, now, 120),
		session(nil, now, 10), // no course: counts toward total only
	}
	courses := []model.Course{course("algo", "Algorithms"), course("db", "Databases"), course("idle", "Idle")}

	s := Compute(sessions, courses, RangeAll, now)

	if s.TotalSessions != 4 {
		t.Fatalf("expected 4 sessions, got %d", s.TotalSessions)
	}
	if s.TotalMinutes != 205 {
		t.Fatalf("expected 205 total minutes, got %d", s.TotalMinutes)
	}
	// Zero-minute course excluded; remaining sorted by minutes descending.
	if len(s.CourseStats) != 2 {
		t.Fatalf("expected 2 course stats, got %d", len(s.CourseStats))
	}
	if s.CourseStats[0].ID != "db" || s.CourseStats[0].Minutes != 120 || s.CourseStats[0].Sessions != 1 {
		t.Fatalf("unexpected top course: %+v", s.CourseStats[0])
	}
	if s.CourseStats[1].ID != "algo" || s.CourseStats[1].Minutes != 75 || s.CourseStats[1].Sessions != 2 {
		t.Fatalf("unexpected second course: %+v", s.CourseStats[1])
	}

	// Per-course minutes never exceed the total.
	perCourse := 0
	for _, cs := range s.CourseStats {
		perCourse += cs.Minutes
	}
	if perCourse > s.TotalMinutes {
		t.Fatalf("per-course sum %d exceeds total %d", perCourse, s.TotalMinutes)
	}

	// Percentages across courses stay within 100.
	pct := 0.0
	for _, cs := range s.CourseStats {
		pct += cs.Percentage
	}
	if pct > 100.0001 {
		t.Fatalf("percentages sum to %f", pct)
	}
}

func TestFilterByRange(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	sessions := []model.StudySession{
		session(nil, now.AddDate(0, 0, -1), 10),
		session(nil, now.AddDate(0, 0, -10), 20),
		session(nil, now.AddDate(0, 0, -40), 30),
	}

	if got := len(FilterByRange(sessions, RangeAll, now)); got != 3 {
		t.Fatalf("all: expected 3, got %d", got)
	}
	if got := len(FilterByRange(sessions, RangeWeek, now)); got != 1 {
		t.Fatalf("week: expected 1, got %d", got)
	}
	if got := len(FilterByRange(sessions, RangeMonth, now)); got != 2 {
		t.Fatalf("month: expected 2, got %d", got)
	}
}

func TestParseRange(t *testing.T) {
	if ParseRange("week") != RangeWeek {
		t.Error("week not parsed")
	}
	if ParseRange("month") != RangeMonth {
		t.Error("month not parsed")
	}
	if ParseRange("") != RangeAll {
		t.Error("empty should default to all")
	}
	if ParseRange("bogus") != RangeAll {
		t.Error("unknown should default to all")
	}
}

func TestLastSevenDays(t *testing.T) {
	now := time.Date(2026, 3, 10, 23, 30, 0, 0, time.UTC) // a Tuesday
	sessions := []model.StudySession{
		session(nil, time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC), 30),  // today
		session(nil, time.Date(2026, 3, 10, 21, 0, 0, 0, time.UTC), 15), // today, different time
		session(nil, time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC), 60),  // oldest bucket
		session(nil, time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC), 99),  // out of window
	}

	series := LastSevenDays(sessions, now)

	if len(series.Data) != 7 || len(series.Labels) != 7 {
		t.Fatalf("expected fixed length 7, got %d/%d", len(series.Data), len(series.Labels))
	}
	if series.Data[6] != 45 {
		t.Fatalf("expected 45 minutes today, got %d", series.Data[6])
	}
	if series.Data[0] != 60 {
		t.Fatalf("expected 60 minutes in oldest bucket, got %d", series.Data[0])
	}
	if series.Labels[6] != "Tue" {
		t.Fatalf("expected today labeled Tue, got %s", series.Labels[6])
	}
	if series.Labels[0] != "Wed" {
		t.Fatalf("expected oldest day labeled Wed, got %s", series.Labels[0])
	}
	total := 0
	for _, d := range series.Data {
		total += d
	}
	if total != 105 {
		t.Fatalf("expected 105 minutes in window, got %d", total)
	}
}

func TestDailyAverage(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	if got := DailyAverage(nil); got != 0 {
		t.Fatalf("zero sessions: expected 0, got %d", got)
	}

	// Single session of duration D averages exactly D.
	single := []model.StudySession{session(nil, now.AddDate(0, 0, -3), 42)}
	if got := DailyAverage(single); got != 42 {
		t.Fatalf("single session: expected 42, got %d", got)
	}

	// 30+45+25 over 3 distinct days: 100/3 rounds to 33.
	spread := []model.StudySession{
		session(nil, time.Date(2026, 3, 8, 9, 0, 0, 0, time.UTC), 30),
		session(nil, time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC), 45),
		session(nil, time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC), 25),
	}
	if got := DailyAverage(spread); got != 33 {
		t.Fatalf("three days: expected 33, got %d", got)
	}
}

func TestDailyAverageSpansSessionDatesOnly(t *testing.T) {
	// Dates are taken as stored, so a session dated ahead of the clock still
	// spans a single day on its own.
	future := []model.StudySession{
		session(nil, time.Now().AddDate(0, 0, 1), 40),
	}
	if got := DailyAverage(future); got != 40 {
		t.Fatalf("single future session: expected 40, got %d", got)
	}

	// Two future sessions a day apart: 60/2 = 30.
	pair := []model.StudySession{
		session(nil, time.Now().AddDate(0, 0, 1), 20),
		session(nil, time.Now().AddDate(0, 0, 2), 40),
	}
	if got := DailyAverage(pair); got != 30 {
		t.Fatalf("two future sessions: expected 30, got %d", got)
	}
}

func TestPercentage(t *testing.T) {
	if got := Percentage(50, 200); got != 25 {
		t.Fatalf("expected 25, got %f", got)
	}
	if got := Percentage(10, 0); got != 0 {
		t.Fatalf("zero total: expected 0, got %f", got)
	}
}

func TestComputeWeekRangeExcludesOldSessions(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	algo := strPtr("algo")
	sessions := []model.StudySession{
		session(algo, now.AddDate(0, 0, -1), 30),
		session(algo, now.AddDate(0, 0, -20), 500),
	}
	courses := []model.Course{course("algo", "Algorithms")}

	s := Compute(sessions, courses, RangeWeek, now)

	if s.TotalMinutes != 30 {
		t.Fatalf("expected 30 minutes in week range, got %d", s.TotalMinutes)
	}
	if s.TotalSessions != 1 {
		t.Fatalf("expected 1 session in week range, got %d", s.TotalSessions)
	}
}
