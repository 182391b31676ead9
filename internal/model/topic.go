package model

import "time"

// Topic is one node in a course's syllabus. ParentID is nil for root topics;
// Order determines the position among siblings.
type Topic struct {
	ID        string    `db:"id" json:"id"`
	CourseID  string    `db:"course_id" json:"course_id"`
	Title     string    `db:"title" json:"title"`
	ParentID  *string   `db:"parent_id" json:"parent_id"`
	Completed bool      `db:"completed" json:"completed"`
	Order     int       `db:"sort_order" json:"order"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
