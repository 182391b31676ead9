package service

import (
	"context"
	"time"

	"app/internal/model"
	"app/internal/repository"
)

// StudySessionService defines the interface for study session operations
type StudySessionService interface {
	ListStudySessions(ctx context.Context) ([]model.StudySessionWithCourse, error)
	CreateStudySession(ctx context.Context, s *model.StudySession) (*model.StudySession, error)
	DeleteStudySession(ctx context.Context, sessionID string) error
}

type studySessionService struct {
	repo repository.StudySessionRepository
}

// NewStudySessionService creates a new StudySessionService
func NewStudySessionService(repo repository.StudySessionRepository) StudySessionService {
	return &studySessionService{repo: repo}
}

// ListStudySessions retrieves all sessions with their course reference resolved
func (s *studySessionService) ListStudySessions(ctx context.Context) ([]model.StudySessionWithCourse, error) {
	return s.repo.ListStudySessions(ctx)
}

// CreateStudySession creates a new study session record
func (s *studySessionService) CreateStudySession(ctx context.Context, sess *model.StudySession) (*model.StudySession, error) {
	if sess.Date.IsZero() {
		sess.Date = time.Now()
	}
	if err := s.repo.CreateStudySession(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// DeleteStudySession deletes a study session by its ID
func (s *studySessionService) DeleteStudySession(ctx context.Context, sessionID string) error {
	existing, err := s.repo.GetStudySessionByID(ctx, sessionID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrSessionNotFound
	}
	return s.repo.DeleteStudySession(ctx, sessionID)
}
