package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Course represents a course (academic subject) in the system. It is the
// aggregate root for lessons and topics: their ids are kept in the denormalized
// LessonIDs/TopicIDs lists, maintained by the service layer.
type Course struct {
	ID          string     `db:"id" json:"id"`
	Name        string     `db:"name" json:"name"`
	Description string     `db:"description" json:"description"`
	Professor   string     `db:"professor" json:"professor"`
	Credits     int        `db:"credits" json:"credits"`
	StartDate   *time.Time `db:"start_date" json:"start_date"`
	EndDate     *time.Time `db:"end_date" json:"end_date"`
	Color       string     `db:"color" json:"color"`
	LessonIDs   IDList     `db:"lesson_ids" json:"lessons"`
	TopicIDs    IDList     `db:"topic_ids" json:"topics"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updated_at"`
}

// IDList is an ordered list of record ids stored as a JSONB column.
type IDList []string

// Value implements the driver.Valuer interface for JSONB
func (l IDList) Value() (driver.Value, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l)
}

// Scan implements the sql.Scanner interface for JSONB
func (l *IDList) Scan(value interface{}) error {
	if value == nil {
		*l = IDList{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into IDList", value)
	}

	if len(bytes) == 0 {
		*l = IDList{}
		return nil
	}

	return json.Unmarshal(bytes, l)
}

// Contains reports whether id is present in the list.
func (l IDList) Contains(id string) bool {
	for _, v := range l {
		if v == id {
			return true
		}
	}
	return false
}
