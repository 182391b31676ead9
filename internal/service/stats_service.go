package service

import (
	"context"
	"time"

	"app/internal/model"
	"app/internal/repository"
	"app/internal/stats"
)

// StatsService computes study-time statistics from sessions and courses.
type StatsService interface {
	GetStatistics(ctx context.Context, rng stats.Range) (*stats.Summary, error)
}

type statsService struct {
	sessionRepo repository.StudySessionRepository
	courseRepo  repository.CourseRepository
}

// NewStatsService creates a new StatsService
func NewStatsService(sessionRepo repository.StudySessionRepository, courseRepo repository.CourseRepository) StatsService {
	return &statsService{sessionRepo: sessionRepo, courseRepo: courseRepo}
}

// GetStatistics runs the pure aggregator over the current sessions and
// courses. Nothing is persisted; every call recomputes from a full scan.
func (s *statsService) GetStatistics(ctx context.Context, rng stats.Range) (*stats.Summary, error) {
	withCourse, err := s.sessionRepo.ListStudySessions(ctx)
	if err != nil {
		return nil, err
	}
	sessions := make([]model.StudySession, len(withCourse))
	for i, sc := range withCourse {
		sessions[i] = sc.StudySession
	}

	courses, err := s.courseRepo.ListCourses(ctx)
	if err != nil {
		return nil, err
	}

	summary := stats.Compute(sessions, courses, rng, time.Now())
	return &summary, nil
}
