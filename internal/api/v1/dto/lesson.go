package dto

import "time"

// LessonCreateDTO is used for incoming lesson creation requests. The owning
// course id comes from the URL, not the body.
type LessonCreateDTO struct {
	Title    string     `json:"title" validate:"required"`
	Duration *int       `json:"duration,omitempty" validate:"omitempty,min=0"`
	Notes    *string    `json:"notes,omitempty"`
	Date     *time.Time `json:"date,omitempty"`
}

// LessonUpdateDTO is used for incoming partial lesson updates
type LessonUpdateDTO struct {
	Title     *string    `json:"title,omitempty" validate:"omitempty,min=1"`
	Duration  *int       `json:"duration,omitempty" validate:"omitempty,min=0"`
	Completed *bool      `json:"completed,omitempty"`
	Notes     *string    `json:"notes,omitempty"`
	Date      *time.Time `json:"date,omitempty"`
}
