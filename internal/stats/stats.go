// Package stats computes study-time statistics from sessions and courses.
// All functions are pure: output depends only on the inputs and the supplied
// reference time, which keeps them trivially testable and safe for concurrent
// reads.
package stats

import (
	"math"
	"sort"
	"time"

	"app/internal/model"
)

// Range selects how far back sessions are considered.
type Range string

const (
	RangeAll   Range = "all"
	RangeWeek  Range = "week"  // last 7 days
	RangeMonth Range = "month" // last 30 days
)

// ParseRange maps a query-string value onto a Range, defaulting to RangeAll.
func ParseRange(s string) Range {
	switch Range(s) {
	case RangeWeek:
		return RangeWeek
	case RangeMonth:
		return RangeMonth
	default:
		return RangeAll
	}
}

// CourseStat is the per-course aggregate. Percentage is the course's share of
// the total minutes across all filtered sessions.
type CourseStat struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Color      string  `json:"color"`
	Credits    int     `json:"credits"`
	Minutes    int     `json:"minutes"`
	Sessions   int     `json:"sessions"`
	Percentage float64 `json:"percentage"`
}

// WeeklySeries is a fixed-length-7 series of study minutes for the calendar
// days ending today, oldest first.
type WeeklySeries struct {
	Labels []string `json:"labels"`
	Data   []int    `json:"data"`
}

// Summary is the full statistics payload.
type Summary struct {
	TotalSessions int          `json:"total_sessions"`
	TotalMinutes  int          `json:"total_minutes"`
	CourseStats   []CourseStat `json:"course_stats"`
	LastWeek      WeeklySeries `json:"last_week"`
	DailyAverage  int          `json:"daily_average"`
}

// Compute aggregates the sessions (restricted to rng, measured against now)
// into a Summary.
func Compute(sessions []model.StudySession, courses []model.Course, rng Range, now time.Time) Summary {
	filtered := FilterByRange(sessions, rng, now)

	byCourse := make(map[string]*CourseStat, len(courses))
	for _, c := range courses {
		byCourse[c.ID] = &CourseStat{
			ID:      c.ID,
			Name:    c.Name,
			Color:   c.Color,
			Credits: c.Credits,
		}
	}

	totalMinutes := 0
	for _, s := range filtered {
		totalMinutes += s.Duration
		if s.CourseID == nil {
			continue
		}
		if cs, ok := byCourse[*s.CourseID]; ok {
			cs.Minutes += s.Duration
			cs.Sessions++
		}
	}

	courseStats := []CourseStat{}
	for _, c := range courses {
		cs := byCourse[c.ID]
		if cs.Minutes == 0 {
			continue
		}
		cs.Percentage = Percentage(cs.Minutes, totalMinutes)
		courseStats = append(courseStats, *cs)
	}
	sort.SliceStable(courseStats, func(i, j int) bool {
		return courseStats[i].Minutes > courseStats[j].Minutes
	})

	return Summary{
		TotalSessions: len(filtered),
		TotalMinutes:  totalMinutes,
		CourseStats:   courseStats,
		LastWeek:      LastSevenDays(filtered, now),
		DailyAverage:  DailyAverage(filtered),
	}
}

// FilterByRange keeps sessions whose date is on or after now minus the range.
// RangeAll keeps everything.
func FilterByRange(sessions []model.StudySession, rng Range, now time.Time) []model.StudySession {
	var cutoff time.Time
	switch rng {
	case RangeWeek:
		cutoff = now.AddDate(0, 0, -7)
	case RangeMonth:
		cutoff = now.AddDate(0, 0, -30)
	default:
		return sessions
	}

	out := []model.StudySession{}
	for _, s := range sessions {
		if !s.Date.Before(cutoff) {
			out = append(out, s)
		}
	}
	return out
}

// LastSevenDays sums session minutes per calendar day for the 7 days ending
// today, oldest first. Matching is by year/month/day, not by 24h windows.
func LastSevenDays(sessions []model.StudySession, now time.Time) WeeklySeries {
	labels := make([]string, 7)
	data := make([]int, 7)
	days := make([]time.Time, 7)

	for i := 0; i < 7; i++ {
		day := now.AddDate(0, 0, i-6)
		days[i] = day
		labels[i] = day.Weekday().String()[:3]
	}

	for _, s := range sessions {
		y, m, d := s.Date.Date()
		for i, day := range days {
			dy, dm, dd := day.Date()
			if y == dy && m == dm && d == dd {
				data[i] += s.Duration
				break
			}
		}
	}

	return WeeklySeries{Labels: labels, Data: data}
}

// DailyAverage is total minutes divided by the inclusive day span between the
// earliest and latest session, rounded to the nearest integer. Zero sessions
// yield zero.
func DailyAverage(sessions []model.StudySession) int {
	if len(sessions) == 0 {
		return 0
	}

	earliest := sessions[0].Date
	latest := sessions[0].Date
	total := 0
	for _, s := range sessions {
		if s.Date.Before(earliest) {
			earliest = s.Date
		}
		if s.Date.After(latest) {
			latest = s.Date
		}
		total += s.Duration
	}

	days := int(latest.Sub(earliest).Hours()/24) + 1
	if days < 1 {
		days = 1
	}

	return int(math.Round(float64(total) / float64(days)))
}

// Percentage is courseMinutes as a share of totalMinutes, in percent.
// Zero total yields zero.
func Percentage(courseMinutes, totalMinutes int) float64 {
	if totalMinutes <= 0 {
		return 0
	}
	return float64(courseMinutes) / float64(totalMinutes) * 100
}
