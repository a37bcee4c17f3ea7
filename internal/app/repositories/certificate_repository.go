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

const certificateColumns = `
	id, certificate_no, enrollment_no, student_name, course_name, issue_date,
	theory_marks, practical_marks, project_marks, viva_marks, percentage,
	grade, batch, admission_date, father_name, dob, created_at
`

// CertificateRepository handles database operations for certificates
type CertificateRepository struct {
	db *pgxpool.Pool
}

// NewCertificateRepository creates a new certificate repository
func NewCertificateRepository(db *pgxpool.Pool) *CertificateRepository {
	return &CertificateRepository{
		db: db,
	}
}

func scanCertificate(row pgx.Row) (*models.Certificate, error) {
	var c models.Certificate
	err := row.Scan(
		&c.ID,
		&c.CertificateNo,
		&c.EnrollmentNo,
		&c.StudentName,
		&c.CourseName,
		&c.IssueDate,
		&c.TheoryMarks,
		&c.PracticalMarks,
		&c.ProjectMarks,
		&c.VivaMarks,
		&c.Percentage,
		&c.Grade,
		&c.Batch,
		&c.AdmissionDate,
		&c.FatherName,
		&c.DOB,
		&c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create persists a new certificate. The UNIQUE constraints on
// certificate_no and enrollment_no are the actual enforcement of
// one-certificate-per-enrollment; the service-level existence check is
// only a pre-flight for a friendlier message.
func (r *CertificateRepository) Create(ctx context.Context, cert *models.Certificate) error {
	query := `
		INSERT INTO certificates (
			certificate_no, enrollment_no, student_name, course_name, issue_date,
			theory_marks, practical_marks, project_marks, viva_marks, percentage,
			grade, batch, admission_date, father_name, dob
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		cert.CertificateNo,
		cert.EnrollmentNo,
		cert.StudentName,
		cert.CourseName,
		cert.IssueDate,
		cert.TheoryMarks,
		cert.PracticalMarks,
		cert.ProjectMarks,
		cert.VivaMarks,
		cert.Percentage,
		cert.Grade,
		cert.Batch,
		cert.AdmissionDate,
		cert.FatherName,
		cert.DOB,
	).Scan(&cert.ID, &cert.CreatedAt)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "certificates_enrollment_no_key") {
			return apperrors.ErrCertificateExists
		}
		if dberrors.IsDuplicateConstraintError(err, "certificates_certificate_no_key") {
			return apperrors.ErrCertificateNoExists
		}
		return fmt.Errorf("error creating certificate: %w", err)
	}

	return nil
}

// GetByCertificateNo retrieves a certificate by its certificate number
func (r *CertificateRepository) GetByCertificateNo(ctx context.Context, certificateNo string) (*models.Certificate, error) {
	query := `SELECT` + certificateColumns + `FROM certificates WHERE certificate_no = $1`

	cert, err := scanCertificate(r.db.QueryRow(ctx, query, certificateNo))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCertificateNotFound
		}
		return nil, fmt.Errorf("error retrieving certificate: %w", err)
	}

	return cert, nil
}

// ExistsByEnrollmentNo checks whether a certificate was already issued
// for the given enrollment number.
func (r *CertificateRepository) ExistsByEnrollmentNo(ctx context.Context, enrollmentNo string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM certificates WHERE enrollment_no = $1)`,
		enrollmentNo).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking certificate existence: %w", err)
	}

	return exists, nil
}

// List retrieves all certificates, newest first by store-assigned ID
func (r *CertificateRepository) List(ctx context.Context) ([]*models.Certificate, error) {
	query := `SELECT` + certificateColumns + `FROM certificates ORDER BY id DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing certificates: %w", err)
	}
	defer rows.Close()

	var certs []*models.Certificate
	for rows.Next() {
		cert, err := scanCertificate(rows)
		if err != nil {
			return nil, err
		}
		certs = append(certs, cert)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return certs, nil
}

// Delete deletes a certificate by ID
func (r *CertificateRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM certificates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting certificate: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCertificateNotFound
	}

	return nil
}
