package repository

import (
	"context"
	"database/sql"

	"app/internal/model"

	"github.com/google/uuid"
)

// CourseRepository defines the interface for interacting with course data
type CourseRepository interface {
	ListCourses(ctx context.Context) ([]model.Course, error)
	CreateCourse(ctx context.Context, c *model.Course) error
	// GetCourseByID retrieves a course by its ID
	GetCourseByID(ctx context.Context, courseID string) (*model.Course, error)
	// UpdateCourse updates an existing course
	UpdateCourse(ctx context.Context, c *model.Course) error
	// DeleteCourse deletes a course by its ID
	DeleteCourse(ctx context.Context, courseID string) error

	// Reference-list maintenance: append/remove a child id on the course's
	// denormalized lesson/topic lists.
	AppendLessonRef(ctx context.Context, courseID, lessonID string) error
	RemoveLessonRef(ctx context.Context, courseID, lessonID string) error
	AppendTopicRef(ctx context.Context, courseID, topicID string) error
	RemoveTopicRef(ctx context.Context, courseID, topicID string) error
}

type courseRepo struct {
	db *sql.DB
}

// NewCourseRepo creates a new CourseRepository
func NewCourseRepo(db *sql.DB) CourseRepository {
	return &courseRepo{db: db}
}

const courseColumns = `id, name, description, professor, credits, start_date, end_date, color, lesson_ids, topic_ids, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCourse(row rowScanner, c *model.Course) error {
	return row.Scan(
		&c.ID,
		&c.Name,
		&c.Description,
		&c.Professor,
		&c.Credits,
		&c.StartDate,
		&c.EndDate,
		&c.Color,
		&c.LessonIDs,
		&c.TopicIDs,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
}

// ListCourses retrieves all courses
func (r *courseRepo) ListCourses(ctx context.Context) ([]model.Course, error) {
	query := `
		SELECT ` + courseColumns + `
		FROM courses
		ORDER BY created_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []model.Course
	for rows.Next() {
		var c model.Course
		if err := scanCourse(rows, &c); err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	// If no courses found, return an empty slice, not nil
	if len(courses) == 0 {
		return []model.Course{}, nil
	}

	return courses, nil
}

// CreateCourse inserts a new course and returns the created record
func (r *courseRepo) CreateCourse(ctx context.Context, c *model.Course) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	query := `
		INSERT INTO courses (id, name, description, professor, credits, start_date, end_date, color)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + courseColumns + `
	`
	row := r.db.QueryRowContext(ctx, query,
		c.ID, c.Name, c.Description, c.Professor, c.Credits, c.StartDate, c.EndDate, c.Color)
	return scanCourse(row, c)
}

// GetCourseByID retrieves a course by its ID
func (r *courseRepo) GetCourseByID(ctx context.Context, courseID string) (*model.Course, error) {
	query := `
		SELECT ` + courseColumns + `
		FROM courses
		WHERE id = $1
	`
	var c model.Course
	err := scanCourse(r.db.QueryRowContext(ctx, query, courseID), &c)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

// UpdateCourse updates an existing course record and returns updated timestamps
func (r *courseRepo) UpdateCourse(ctx context.Context, c *model.Course) error {
	query := `
		UPDATE courses
		SET name = $1, description = $2, professor = $3, credits = $4,
		    start_date = $5, end_date = $6, color = $7, updated_at = NOW()
		WHERE id = $8
		RETURNING ` + courseColumns + `
	`
	row := r.db.QueryRowContext(ctx, query,
		c.Name, c.Description, c.Professor, c.Credits, c.StartDate, c.EndDate, c.Color, c.ID)
	return scanCourse(row, c)
}

// DeleteCourse deletes a course by its ID. Lessons, topics and sessions that
// reference the course are left in place (no cascade).
func (r *courseRepo) DeleteCourse(ctx context.Context, courseID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM courses WHERE id = $1`, courseID)
	return err
}

// AppendLessonRef appends a lesson id to the course's lesson list.
func (r *courseRepo) AppendLessonRef(ctx context.Context, courseID, lessonID string) error {
	query := `
		UPDATE courses
		SET lesson_ids = lesson_ids || to_jsonb($2::text), updated_at = NOW()
		WHERE id = $1
	`
	_, err := r.db.ExecContext(ctx, query, courseID, lessonID)
	return err
}

// RemoveLessonRef removes a lesson id from the course's lesson list.
func (r *courseRepo) RemoveLessonRef(ctx context.Context, courseID, lessonID string) error {
	query := `
		UPDATE courses
		SET lesson_ids = lesson_ids - $2, updated_at = NOW()
		WHERE id = $1
	`
	_, err := r.db.ExecContext(ctx, query, courseID, lessonID)
	return err
}

// AppendTopicRef appends a topic id to the course's topic list.
func (r *courseRepo) AppendTopicRef(ctx context.Context, courseID, topicID string) error {
	query := `
		UPDATE courses
		SET topic_ids = topic_ids || to_jsonb($2::text), updated_at = NOW()
		WHERE id = $1
	`
	_, err := r.db.ExecContext(ctx, query, courseID, topicID)
	return err
}

// RemoveTopicRef removes a topic id from the course's topic list.
func (r *courseRepo) RemoveTopicRef(ctx context.Context, courseID, topicID string) error {
	query := `
		UPDATE courses
		SET topic_ids = topic_ids - $2, updated_at = NOW()
		WHERE id = $1
	`
	_, err := r.db.ExecContext(ctx, query, courseID, topicID)
	return err
}
