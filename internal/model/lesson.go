package model

import "time"

// Lesson represents a single study or class event belonging to a course.
// Duration is in minutes.
type Lesson struct {
	ID        string    `db:"id" json:"id"`
	CourseID  string    `db:"course_id" json:"course_id"`
	Title     string    `db:"title" json:"title"`
	Duration  int       `db:"duration" json:"duration"`
	Completed bool      `db:"completed" json:"completed"`
	Notes     string    `db:"notes" json:"notes"`
	Date      time.Time `db:"date" json:"date"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
