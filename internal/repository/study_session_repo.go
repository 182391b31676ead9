package repository

import (
	"context"
	"database/sql"

	"app/internal/model"

	"github.com/google/uuid"
)

// StudySessionRepository defines the interface for interacting with study session data
type StudySessionRepository interface {
	// ListStudySessions retrieves all sessions with their course reference
	// resolved (LEFT JOIN, so sessions without a course are included).
	ListStudySessions(ctx context.Context) ([]model.StudySessionWithCourse, error)
	CreateStudySession(ctx context.Context, s *model.StudySession) error
	GetStudySessionByID(ctx context.Context, sessionID string) (*model.StudySession, error)
	DeleteStudySession(ctx context.Context, sessionID string) error
}

type studySessionRepo struct {
	db *sql.DB
}

// NewStudySessionRepo creates a new StudySessionRepository
func NewStudySessionRepo(db *sql.DB) StudySessionRepository {
	return &studySessionRepo{db: db}
}

const sessionColumns = `id, course_id, date, duration, topic, notes, created_at`

func scanStudySession(row rowScanner, s *model.StudySession) error {
	return row.Scan(
		&s.ID,
		&s.CourseID,
		&s.Date,
		&s.Duration,
		&s.Topic,
		&s.Notes,
		&s.CreatedAt,
	)
}

// ListStudySessions retrieves all study sessions, each with its course resolved
func (r *studySessionRepo) ListStudySessions(ctx context.Context) ([]model.StudySessionWithCourse, error) {
	query := `
		SELECT s.id, s.course_id, s.date, s.duration, s.topic, s.notes, s.created_at,
		       c.id, c.name, c.color, c.credits
		FROM study_sessions s
		LEFT JOIN courses c ON c.id = s.course_id
		ORDER BY s.date DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []model.StudySessionWithCourse
	for rows.Next() {
		var s model.StudySessionWithCourse
		var courseID, courseName, courseColor sql.NullString
		var courseCredits sql.NullInt64
		if err := rows.Scan(
			&s.ID,
			&s.CourseID,
			&s.Date,
			&s.Duration,
			&s.Topic,
			&s.Notes,
			&s.CreatedAt,
			&courseID,
			&courseName,
			&courseColor,
			&courseCredits,
		); err != nil {
			return nil, err
		}
		if courseID.Valid {
			s.Course = &model.CourseRef{
				ID:      courseID.String,
				Name:    courseName.String,
				Color:   courseColor.String,
				Credits: int(courseCredits.Int64),
			}
		}
		sessions = append(sessions, s)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(sessions) == 0 {
		return []model.StudySessionWithCourse{}, nil
	}

	return sessions, nil
}

// CreateStudySession inserts a new study session and returns the created record
func (r *studySessionRepo) CreateStudySession(ctx context.Context, s *model.StudySession) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	query := `
		INSERT INTO study_sessions (id, course_id, date, duration, topic, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + sessionColumns + `
	`
	row := r.db.QueryRowContext(ctx, query,
		s.ID, s.CourseID, s.Date, s.Duration, s.Topic, s.Notes)
	return scanStudySession(row, s)
}

// GetStudySessionByID retrieves a study session by its ID
func (r *studySessionRepo) GetStudySessionByID(ctx context.Context, sessionID string) (*model.StudySession, error) {
	query := `
		SELECT ` + sessionColumns + `
		FROM study_sessions
		WHERE id = $1
	`
	var s model.StudySession
	err := scanStudySession(r.db.QueryRowContext(ctx, query, sessionID), &s)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

// DeleteStudySession deletes a study session by its ID
func (r *studySessionRepo) DeleteStudySession(ctx context.Context, sessionID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM study_sessions WHERE id = $1`, sessionID)
	return err
}
