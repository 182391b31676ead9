package service

import "errors"

// Sentinel errors returned by the services. Handlers map these to 404
// responses; anything else is treated as a store failure.
var (
	ErrCourseNotFound  = errors.New("course not found")
	ErrLessonNotFound  = errors.New("lesson not found")
	ErrTopicNotFound   = errors.New("topic not found")
	ErrSessionNotFound = errors.New("study session not found")
)
