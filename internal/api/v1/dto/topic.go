package dto

// TopicCreateDTO is used for incoming topic creation requests. The owning
// course id comes from the URL. A nil ParentID creates a root topic.
type TopicCreateDTO struct {
	Title    string  `json:"title" validate:"required"`
	ParentID *string `json:"parent_id,omitempty"`
	Order    *int    `json:"order,omitempty"`
}

// TopicUpdateDTO is used for incoming partial topic updates
type TopicUpdateDTO struct {
	Title     *string `json:"title,omitempty" validate:"omitempty,min=1"`
	ParentID  *string `json:"parent_id,omitempty"`
	Completed *bool   `json:"completed,omitempty"`
	Order     *int    `json:"order,omitempty"`
}

// GenerateTopicsDTO carries the free-form program text for the bulk import.
type GenerateTopicsDTO struct {
	ProgramText string `json:"programText" validate:"required"`
}
