package service

import (
	"context"
	"time"

	"app/internal/model"
	"app/internal/repository"

	"github.com/rs/zerolog"
)

// LessonService defines the interface for lesson operations. Create and
// Delete also maintain the owning course's lesson-id list.
type LessonService interface {
	ListLessonsByCourse(ctx context.Context, courseID string) ([]model.Lesson, error)
	CreateLesson(ctx context.Context, l *model.Lesson) (*model.Lesson, error)
	GetLessonByID(ctx context.Context, lessonID string) (*model.Lesson, error)
	UpdateLesson(ctx context.Context, l *model.Lesson) (*model.Lesson, error)
	DeleteLesson(ctx context.Context, lessonID, courseID string) error
}

type lessonService struct {
	repo       repository.LessonRepository
	courseRepo repository.CourseRepository
	logger     zerolog.Logger
}

// NewLessonService creates a new LessonService
func NewLessonService(repo repository.LessonRepository, courseRepo repository.CourseRepository, logger zerolog.Logger) LessonService {
	return &lessonService{repo: repo, courseRepo: courseRepo, logger: logger}
}

// ListLessonsByCourse retrieves all lessons owned by a course
func (s *lessonService) ListLessonsByCourse(ctx context.Context, courseID string) ([]model.Lesson, error) {
	return s.repo.ListLessonsByCourse(ctx, courseID)
}

// CreateLesson persists a new lesson and appends its id to the owning
// course's lesson list. If the append fails the lesson is deleted again so a
// successful reply always implies a consistent pair.
func (s *lessonService) CreateLesson(ctx context.Context, l *model.Lesson) (*model.Lesson, error) {
	course, err := s.courseRepo.GetCourseByID(ctx, l.CourseID)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, ErrCourseNotFound
	}

	if l.Date.IsZero() {
		l.Date = time.Now()
	}

	if err := s.repo.CreateLesson(ctx, l); err != nil {
		return nil, err
	}

	if err := s.courseRepo.AppendLessonRef(ctx, l.CourseID, l.ID); err != nil {
		// Roll back the orphaned lesson, best effort.
		if delErr := s.repo.DeleteLesson(ctx, l.ID); delErr != nil {
			s.logger.Error().Err(delErr).Str("lesson_id", l.ID).Msg("Failed to remove orphaned lesson after reference update failure")
		}
		return nil, err
	}

	return l, nil
}

// GetLessonByID retrieves a lesson by its ID
func (s *lessonService) GetLessonByID(ctx context.Context, lessonID string) (*model.Lesson, error) {
	return s.repo.GetLessonByID(ctx, lessonID)
}

// UpdateLesson updates an existing lesson record
func (s *lessonService) UpdateLesson(ctx context.Context, l *model.Lesson) (*model.Lesson, error) {
	existing, err := s.repo.GetLessonByID(ctx, l.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrLessonNotFound
	}

	if err := s.repo.UpdateLesson(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

// DeleteLesson deletes a lesson and removes its id from the owning course's
// lesson list.
func (s *lessonService) DeleteLesson(ctx context.Context, lessonID, courseID string) error {
	existing, err := s.repo.GetLessonByID(ctx, lessonID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrLessonNotFound
	}

	if err := s.repo.DeleteLesson(ctx, lessonID); err != nil {
		return err
	}

	return s.courseRepo.RemoveLessonRef(ctx, courseID, lessonID)
}
