package dto

import "time"

// CourseCreateDTO is used for incoming course creation requests
type CourseCreateDTO struct {
	Name        string     `json:"name" validate:"required"`
	Description *string    `json:"description,omitempty"`
	Professor   *string    `json:"professor,omitempty"`
	Credits     *int       `json:"credits,omitempty" validate:"omitempty,min=0"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	Color       *string    `json:"color,omitempty"`
}

// CourseUpdateDTO is used for incoming partial course updates
type CourseUpdateDTO struct {
	Name        *string    `json:"name,omitempty" validate:"omitempty,min=1"`
	Description *string    `json:"description,omitempty"`
	Professor   *string    `json:"professor,omitempty"`
	Credits     *int       `json:"credits,omitempty" validate:"omitempty,min=0"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	Color       *string    `json:"color,omitempty"`
}
