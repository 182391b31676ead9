package service

import (
	"context"

	"app/internal/model"
	"app/internal/repository"
)

// CourseService defines the interface for course operations
type CourseService interface {
	ListCourses(ctx context.Context) ([]model.Course, error)
	CreateCourse(ctx context.Context, c *model.Course) (*model.Course, error)
	// GetCourseByID retrieves a course by its ID
	GetCourseByID(ctx context.Context, courseID string) (*model.Course, error)
	// UpdateCourse updates an existing course
	UpdateCourse(ctx context.Context, c *model.Course) (*model.Course, error)
	// DeleteCourse deletes a course by its ID
	DeleteCourse(ctx context.Context, courseID string) error
}

// courseService is the implementation of CourseService
type courseService struct {
	repo repository.CourseRepository
}

// NewCourseService creates a new CourseService
func NewCourseService(repo repository.CourseRepository) CourseService {
	return &courseService{repo: repo}
}

// ListCourses retrieves all courses
func (s *courseService) ListCourses(ctx context.Context) ([]model.Course, error) {
	return s.repo.ListCourses(ctx)
}

// CreateCourse creates a new course record
func (s *courseService) CreateCourse(ctx context.Context, c *model.Course) (*model.Course, error) {
	err := s.repo.CreateCourse(ctx, c)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// GetCourseByID retrieves a course by its ID
func (s *courseService) GetCourseByID(ctx context.Context, courseID string) (*model.Course, error) {
	return s.repo.GetCourseByID(ctx, courseID)
}

// UpdateCourse updates an existing course record
func (s *courseService) UpdateCourse(ctx context.Context, c *model.Course) (*model.Course, error) {
	existingCourse, err := s.repo.GetCourseByID(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	if existingCourse == nil {
		return nil, ErrCourseNotFound
	}

	if err := s.repo.UpdateCourse(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// DeleteCourse deletes a course by its ID. Lessons, topics and study sessions
// referencing the course are not cascaded; they remain addressable by id.
func (s *courseService) DeleteCourse(ctx context.Context, courseID string) error {
	existingCourse, err := s.repo.GetCourseByID(ctx, courseID)
	if err != nil {
		return err
	}
	if existingCourse == nil {
		return ErrCourseNotFound
	}
	return s.repo.DeleteCourse(ctx, courseID)
}
