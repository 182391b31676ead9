package repository

import (
	"context"
	"database/sql"

	"app/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// LessonRepository defines the interface for interacting with lesson data
type LessonRepository interface {
	// ListLessonsByCourse retrieves all lessons owned by a course
	ListLessonsByCourse(ctx context.Context, courseID string) ([]model.Lesson, error)
	CreateLesson(ctx context.Context, l *model.Lesson) error
	GetLessonByID(ctx context.Context, lessonID string) (*model.Lesson, error)
	UpdateLesson(ctx context.Context, l *model.Lesson) error
	DeleteLesson(ctx context.Context, lessonID string) error
}

type lessonRepo struct {
	db     *sql.DB
	logger zerolog.Logger
}

// NewLessonRepository creates a new LessonRepository
func NewLessonRepository(db *sql.DB, logger zerolog.Logger) LessonRepository {
	return &lessonRepo{db: db, logger: logger}
}

const lessonColumns = `id, course_id, title, duration, completed, notes, date, created_at, updated_at`

func scanLesson(row rowScanner, l *model.Lesson) error {
	return row.Scan(
		&l.ID,
		&l.CourseID,
		&l.Title,
		&l.Duration,
		&l.Completed,
		&l.Notes,
		&l.Date,
		&l.CreatedAt,
		&l.UpdatedAt,
	)
}

// ListLessonsByCourse retrieves all lessons whose owning course id matches
func (r *lessonRepo) ListLessonsByCourse(ctx context.Context, courseID string) ([]model.Lesson, error) {
	query := `
		SELECT ` + lessonColumns + `
		FROM lessons
		WHERE course_id = $1
		ORDER BY date ASC
	`

	rows, err := r.db.QueryContext(ctx, query, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lessons []model.Lesson
	for rows.Next() {
		var l model.Lesson
		if err := scanLesson(rows, &l); err != nil {
			return nil, err
		}
		lessons = append(lessons, l)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(lessons) == 0 {
		return []model.Lesson{}, nil
	}

	return lessons, nil
}

// CreateLesson inserts a new lesson and returns the created record
func (r *lessonRepo) CreateLesson(ctx context.Context, l *model.Lesson) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	query := `
		INSERT INTO lessons (id, course_id, title, duration, completed, notes, date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + lessonColumns + `
	`
	row := r.db.QueryRowContext(ctx, query,
		l.ID, l.CourseID, l.Title, l.Duration, l.Completed, l.Notes, l.Date)
	return scanLesson(row, l)
}

// GetLessonByID retrieves a lesson by its ID
func (r *lessonRepo) GetLessonByID(ctx context.Context, lessonID string) (*model.Lesson, error) {
	query := `
		SELECT ` + lessonColumns + `
		FROM lessons
		WHERE id = $1
	`
	var l model.Lesson
	err := scanLesson(r.db.QueryRowContext(ctx, query, lessonID), &l)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &l, nil
}

// UpdateLesson updates an existing lesson record. The owning course id is
// immutable and is not part of the update.
func (r *lessonRepo) UpdateLesson(ctx context.Context, l *model.Lesson) error {
	query := `
		UPDATE lessons
		SET title = $1, duration = $2, completed = $3, notes = $4, date = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING ` + lessonColumns + `
	`
	row := r.db.QueryRowContext(ctx, query,
		l.Title, l.Duration, l.Completed, l.Notes, l.Date, l.ID)
	return scanLesson(row, l)
}

// DeleteLesson deletes a lesson by its ID
func (r *lessonRepo) DeleteLesson(ctx context.Context, lessonID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM lessons WHERE id = $1`, lessonID)
	if err != nil {
		r.logger.Error().Err(err).Str("lesson_id", lessonID).Msg("Failed to delete lesson")
	}
	return err
}
