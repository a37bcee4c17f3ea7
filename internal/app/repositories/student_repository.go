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

const studentColumns = `
	id, enrollment_no, password_hash, name, father_name, dob, contact,
	address, qualification, course_name, batch, session_start, session_end,
	admission_date, photo, paid_fee, status, created_at
`

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	var s models.Student
	err := row.Scan(
		&s.ID,
		&s.EnrollmentNo,
		&s.PasswordHash,
		&s.Name,
		&s.FatherName,
		&s.DOB,
		&s.Contact,
		&s.Address,
		&s.Qualification,
		&s.CourseName,
		&s.Batch,
		&s.SessionStart,
		&s.SessionEnd,
		&s.AdmissionDate,
		&s.Photo,
		&s.PaidFee,
		&s.Status,
		&s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create creates a new student record
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (
			enrollment_no, password_hash, name, father_name, dob, contact,
			address, qualification, course_name, batch, session_start,
			session_end, admission_date, photo, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id, paid_fee, created_at
	`

	err := r.db.QueryRow(ctx, query,
		student.EnrollmentNo,
		student.PasswordHash,
		student.Name,
		student.FatherName,
		student.DOB,
		student.Contact,
		student.Address,
		student.Qualification,
		student.CourseName,
		student.Batch,
		student.SessionStart,
		student.SessionEnd,
		student.AdmissionDate,
		student.Photo,
		student.Status,
	).Scan(&student.ID, &student.PaidFee, &student.CreatedAt)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "students_enrollment_no_key") {
			return apperrors.ErrEnrollmentNoExists
		}
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// GetByID retrieves a student by ID
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query := `SELECT` + studentColumns + `FROM students WHERE id = $1`

	student, err := scanStudent(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return student, nil
}

// GetByEnrollmentNo retrieves a student by enrollment number
func (r *StudentRepository) GetByEnrollmentNo(ctx context.Context, enrollmentNo string) (*models.Student, error) {
	query := `SELECT` + studentColumns + `FROM students WHERE enrollment_no = $1`

	student, err := scanStudent(r.db.QueryRow(ctx, query, enrollmentNo))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student by enrollment number: %w", err)
	}

	return student, nil
}

// List retrieves students ordered newest first, with offset/limit paging
func (r *StudentRepository) List(ctx context.Context, offset uint64, limit int) ([]*models.Student, error) {
	query := `SELECT` + studentColumns + `
		FROM students
		ORDER BY created_at DESC, id DESC
		OFFSET $1 LIMIT $2`

	rows, err := r.db.Query(ctx, query, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// Count returns the total number of students
func (r *StudentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM students`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting students: %w", err)
	}
	return count, nil
}

// Search performs a case-insensitive substring match on name and
// enrollment number, capped at limit results.
func (r *StudentRepository) Search(ctx context.Context, term string, limit int) ([]*models.Student, error) {
	query := `SELECT` + studentColumns + `
		FROM students
		WHERE name ILIKE '%' || $1 || '%' OR enrollment_no ILIKE '%' || $1 || '%'
		ORDER BY created_at DESC, id DESC
		LIMIT $2`

	rows, err := r.db.Query(ctx, query, term, limit)
	if err != nil {
		return nil, fmt.Errorf("error searching students: %w", err)
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// Update updates a student's profile fields. The enrollment number,
// password hash and paid-fee total are deliberately left out: the first
// two are immutable here and the last belongs to the fee ledger.
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	query := `
		UPDATE students
		SET name = $1, father_name = $2, dob = $3, contact = $4, address = $5,
			qualification = $6, course_name = $7, batch = $8, session_start = $9,
			session_end = $10, admission_date = $11, status = $12
		WHERE id = $13
	`

	cmdTag, err := r.db.Exec(ctx, query,
		student.Name,
		student.FatherName,
		student.DOB,
		student.Contact,
		student.Address,
		student.Qualification,
		student.CourseName,
		student.Batch,
		student.SessionStart,
		student.SessionEnd,
		student.AdmissionDate,
		student.Status,
		student.ID,
	)

	if err != nil {
		return fmt.Errorf("error updating student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// UpdatePhoto stores the URL of an uploaded student photo
func (r *StudentRepository) UpdatePhoto(ctx context.Context, id int64, photoURL string) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE students SET photo = $1 WHERE id = $2`, photoURL, id)
	if err != nil {
		return fmt.Errorf("error updating student photo: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// Delete deletes a student and, through ON DELETE CASCADE, the
// student's fee transactions.
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}
