package repository

import (
	"context"
	"database/sql"

	"app/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// TopicRepository defines the interface for interacting with topic data
type TopicRepository interface {
	// ListTopicsByCourse retrieves the flat list of topics owned by a course
	ListTopicsByCourse(ctx context.Context, courseID string) ([]model.Topic, error)
	CreateTopic(ctx context.Context, t *model.Topic) error
	GetTopicByID(ctx context.Context, topicID string) (*model.Topic, error)
	UpdateTopic(ctx context.Context, t *model.Topic) error
	DeleteTopic(ctx context.Context, topicID string) error
}

type topicRepo struct {
	db     *sql.DB
	logger zerolog.Logger
}

// NewTopicRepository creates a new TopicRepository
func NewTopicRepository(db *sql.DB, logger zerolog.Logger) TopicRepository {
	return &topicRepo{db: db, logger: logger}
}

const topicColumns = `id, course_id, title, parent_id, completed, sort_order, created_at, updated_at`

func scanTopic(row rowScanner, t *model.Topic) error {
	return row.Scan(
		&t.ID,
		&t.CourseID,
		&t.Title,
		&t.ParentID,
		&t.Completed,
		&t.Order,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
}

// ListTopicsByCourse retrieves all topics whose owning course id matches.
// Insertion order is preserved so the hierarchy builder's stable sort keeps
// equal-order siblings in creation order.
func (r *topicRepo) ListTopicsByCourse(ctx context.Context, courseID string) ([]model.Topic, error) {
	query := `
		SELECT ` + topicColumns + `
		FROM topics
		WHERE course_id = $1
		ORDER BY created_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var topics []model.Topic
	for rows.Next() {
		var t model.Topic
		if err := scanTopic(rows, &t); err != nil {
			return nil, err
		}
		topics = append(topics, t)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(topics) == 0 {
		return []model.Topic{}, nil
	}

	return topics, nil
}

// CreateTopic inserts a new topic and returns the created record
func (r *topicRepo) CreateTopic(ctx context.Context, t *model.Topic) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	query := `
		INSERT INTO topics (id, course_id, title, parent_id, completed, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + topicColumns + `
	`
	row := r.db.QueryRowContext(ctx, query,
		t.ID, t.CourseID, t.Title, t.ParentID, t.Completed, t.Order)
	return scanTopic(row, t)
}

// GetTopicByID retrieves a topic by its ID
func (r *topicRepo) GetTopicByID(ctx context.Context, topicID string) (*model.Topic, error) {
	query := `
		SELECT ` + topicColumns + `
		FROM topics
		WHERE id = $1
	`
	var t model.Topic
	err := scanTopic(r.db.QueryRowContext(ctx, query, topicID), &t)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

// UpdateTopic updates an existing topic record
func (r *topicRepo) UpdateTopic(ctx context.Context, t *model.Topic) error {
	query := `
		UPDATE topics
		SET title = $1, parent_id = $2, completed = $3, sort_order = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING ` + topicColumns + `
	`
	row := r.db.QueryRowContext(ctx, query,
		t.Title, t.ParentID, t.Completed, t.Order, t.ID)
	return scanTopic(row, t)
}

// DeleteTopic deletes a topic by its ID
func (r *topicRepo) DeleteTopic(ctx context.Context, topicID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM topics WHERE id = $1`, topicID)
	if err != nil {
		r.logger.Error().Err(err).Str("topic_id", topicID).Msg("Failed to delete topic")
	}
	return err
}
