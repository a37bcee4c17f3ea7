package models

import "time"

// Course represents an entry in the institute's course catalog.
// Students and certificates reference a course by name, not by ID,
// which mirrors how the admission forms are filled in.
type Course struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name" binding:"required"`
	Duration  string    `json:"duration" db:"duration"`
	Fee       float64   `json:"fee" db:"fee"`
	Subjects  []string  `json:"subjects" db:"subjects"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
