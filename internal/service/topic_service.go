package service

import (
	"context"
	"strings"

	"app/internal/hierarchy"
	"app/internal/model"
	"app/internal/repository"

	"github.com/rs/zerolog"
)

// TopicService defines the interface for topic operations. Create, Delete and
// GenerateTopics also maintain the owning course's topic-id list.
type TopicService interface {
	ListTopicsByCourse(ctx context.Context, courseID string) ([]model.Topic, error)
	// GetTopicTree returns the course's topics as an ordered forest.
	GetTopicTree(ctx context.Context, courseID string) ([]*hierarchy.Node, error)
	CreateTopic(ctx context.Context, t *model.Topic) (*model.Topic, error)
	GetTopicByID(ctx context.Context, topicID string) (*model.Topic, error)
	UpdateTopic(ctx context.Context, t *model.Topic) (*model.Topic, error)
	DeleteTopic(ctx context.Context, topicID, courseID string) error
	// GenerateTopics creates one root topic per non-empty line of programText,
	// ordered 0..N-1 in input order.
	GenerateTopics(ctx context.Context, courseID, programText string) ([]model.Topic, error)
}

type topicService struct {
	repo       repository.TopicRepository
	courseRepo repository.CourseRepository
	logger     zerolog.Logger
}

// NewTopicService creates a new TopicService
func NewTopicService(repo repository.TopicRepository, courseRepo repository.CourseRepository, logger zerolog.Logger) TopicService {
	return &topicService{repo: repo, courseRepo: courseRepo, logger: logger}
}

// ListTopicsByCourse retrieves the flat list of topics owned by a course
func (s *topicService) ListTopicsByCourse(ctx context.Context, courseID string) ([]model.Topic, error) {
	return s.repo.ListTopicsByCourse(ctx, courseID)
}

// GetTopicTree retrieves a course's topics and rebuilds the parent/child
// forest. The tree is recomputed on every call; it is never persisted.
func (s *topicService) GetTopicTree(ctx context.Context, courseID string) ([]*hierarchy.Node, error) {
	topics, err := s.repo.ListTopicsByCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}
	return hierarchy.Build(topics), nil
}

// CreateTopic persists a new topic and appends its id to the owning course's
// topic list, rolling the topic back if the append fails.
func (s *topicService) CreateTopic(ctx context.Context, t *model.Topic) (*model.Topic, error) {
	course, err := s.courseRepo.GetCourseByID(ctx, t.CourseID)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, ErrCourseNotFound
	}

	if err := s.repo.CreateTopic(ctx, t); err != nil {
		return nil, err
	}

	if err := s.courseRepo.AppendTopicRef(ctx, t.CourseID, t.ID); err != nil {
		if delErr := s.repo.DeleteTopic(ctx, t.ID); delErr != nil {
			s.logger.Error().Err(delErr).Str("topic_id", t.ID).Msg("Failed to remove orphaned topic after reference update failure")
		}
		return nil, err
	}

	return t, nil
}

// GetTopicByID retrieves a topic by its ID
func (s *topicService) GetTopicByID(ctx context.Context, topicID string) (*model.Topic, error) {
	return s.repo.GetTopicByID(ctx, topicID)
}

// UpdateTopic updates an existing topic record
func (s *topicService) UpdateTopic(ctx context.Context, t *model.Topic) (*model.Topic, error) {
	existing, err := s.repo.GetTopicByID(ctx, t.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrTopicNotFound
	}

	if err := s.repo.UpdateTopic(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// DeleteTopic deletes a topic and removes its id from the owning course's
// topic list.
func (s *topicService) DeleteTopic(ctx context.Context, topicID, courseID string) error {
	existing, err := s.repo.GetTopicByID(ctx, topicID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrTopicNotFound
	}

	if err := s.repo.DeleteTopic(ctx, topicID); err != nil {
		return err
	}

	return s.courseRepo.RemoveTopicRef(ctx, courseID, topicID)
}

// GenerateTopics splits programText into non-empty trimmed lines and creates
// one root-level topic per line. The import is flat: indentation or numbering
// in the text does not produce nesting. A failure stops the import; topics
// created before the failure are kept.
func (s *topicService) GenerateTopics(ctx context.Context, courseID, programText string) ([]model.Topic, error) {
	course, err := s.courseRepo.GetCourseByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, ErrCourseNotFound
	}

	created := []model.Topic{}
	order := 0
	for _, line := range strings.Split(programText, "\n") {
		title := strings.TrimSpace(line)
		if title == "" {
			continue
		}

		t := model.Topic{
			CourseID: courseID,
			Title:    title,
			Order:    order,
		}
		if err := s.repo.CreateTopic(ctx, &t); err != nil {
			return nil, err
		}
		if err := s.courseRepo.AppendTopicRef(ctx, courseID, t.ID); err != nil {
			return nil, err
		}
		created = append(created, t)
		order++
	}

	return created, nil
}
