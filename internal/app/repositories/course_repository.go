package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/skillpoint/institute-backend/internal/app/models"
	"github.com/skillpoint/institute-backend/internal/pkg/apperrors"
	"github.com/skillpoint/institute-backend/internal/pkg/dberrors"
)

// CourseRepository handles database operations for the course catalog
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
	}
}

func scanCourse(row pgx.Row) (*models.Course, error) {
	var c models.Course
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Duration,
		&c.Fee,
		&c.Subjects,
		&c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create creates a new course
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	query := `
		INSERT INTO courses (name, duration, fee, subjects)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		course.Name,
		course.Duration,
		course.Fee,
		course.Subjects,
	).Scan(&course.ID, &course.CreatedAt)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "courses_name_key") {
			return apperrors.ErrCourseAlreadyExists
		}
		return fmt.Errorf("error creating course: %w", err)
	}

	return nil
}

// GetByID retrieves a course by ID
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	query := `
		SELECT id, name, duration, fee, subjects, created_at
		FROM courses
		WHERE id = $1
	`

	course, err := scanCourse(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	return course, nil
}

// GetByName retrieves a course by case-insensitive exact name match,
// ignoring surrounding whitespace on both sides of the comparison.
func (r *CourseRepository) GetByName(ctx context.Context, name string) (*models.Course, error) {
	query := `
		SELECT id, name, duration, fee, subjects, created_at
		FROM courses
		WHERE LOWER(TRIM(name)) = LOWER(TRIM($1))
	`

	course, err := scanCourse(r.db.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course by name: %w", err)
	}

	return course, nil
}

// GetAll retrieves all courses
func (r *CourseRepository) GetAll(ctx context.Context) ([]*models.Course, error) {
	query := `
		SELECT id, name, duration, fee, subjects, created_at
		FROM courses
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing courses: %w", err)
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

// Update updates an existing course
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	query := `
		UPDATE courses
		SET name = $1, duration = $2, fee = $3, subjects = $4
		WHERE id = $5
	`

	cmdTag, err := r.db.Exec(ctx, query,
		course.Name,
		course.Duration,
		course.Fee,
		course.Subjects,
		course.ID,
	)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "courses_name_key") {
			return apperrors.ErrCourseAlreadyExists
		}
		return fmt.Errorf("error updating course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// Delete deletes a course by ID
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}
