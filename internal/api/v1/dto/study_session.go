package dto

import "time"

// StudySessionCreateDTO is used for incoming study session creation requests
type StudySessionCreateDTO struct {
	CourseID *string    `json:"course_id,omitempty"`
	Date     *time.Time `json:"date,omitempty"`
	Duration *int       `json:"duration,omitempty" validate:"omitempty,min=0"`
	Topic    *string    `json:"topic,omitempty"`
	Notes    *string    `json:"notes,omitempty"`
}
