package model

import "time"

// StudySession is a logged interval of study time, optionally tied to a course.
// No back-reference is kept on the course side.
type StudySession struct {
	ID        string    `db:"id" json:"id"`
	CourseID  *string   `db:"course_id" json:"course_id"`
	Date      time.Time `db:"date" json:"date"`
	Duration  int       `db:"duration" json:"duration"`
	Topic     string    `db:"topic" json:"topic"`
	Notes     string    `db:"notes" json:"notes"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// CourseRef is the resolved course reference attached to a study session
// when listing sessions.
type CourseRef struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Color   string `json:"color"`
	Credits int    `json:"credits"`
}

// StudySessionWithCourse pairs a session with its resolved course, if any.
type StudySessionWithCourse struct {
	StudySession
	Course *CourseRef `json:"course"`
}
