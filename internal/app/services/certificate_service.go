package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/skillpoint/institute-backend/internal/app/models"
	"github.com/skillpoint/institute-backend/internal/app/models/dto"
	"github.com/skillpoint/institute-backend/internal/pkg/apperrors"
)

// valueNA is the placeholder used on the public verification view for
// fields neither the certificate nor the student record can supply.
const valueNA = "N/A"

// CertificateStore is the persistence contract for certificates.
type CertificateStore interface {
	Create(ctx context.Context, cert *models.Certificate) error
	GetByCertificateNo(ctx context.Context, certificateNo string) (*models.Certificate, error)
	ExistsByEnrollmentNo(ctx context.Context, enrollmentNo string) (bool, error)
	List(ctx context.Context) ([]*models.Certificate, error)
	Delete(ctx context.Context, id int64) error
}

// StudentReader is the slice of the student store the verification path
// needs: certificates reference students by enrollment number only.
type StudentReader interface {
	GetByEnrollmentNo(ctx context.Context, enrollmentNo string) (*models.Student, error)
}

// CertificateService handles certificate issuance and the public
// verification view.
type CertificateService struct {
	certs    CertificateStore
	students StudentReader
	logger   zerolog.Logger
}

// NewCertificateService creates a new certificate service instance
func NewCertificateService(certs CertificateStore, students StudentReader, logger zerolog.Logger) *CertificateService {
	return &CertificateService{
		certs:    certs,
		students: students,
		logger:   logger,
	}
}

// Issue persists a new certificate. At most one certificate may exist
// per enrollment number: the existence check here only produces a
// friendlier Conflict up front, the store's unique constraint is what
// actually enforces it under concurrent issuance.
func (s *CertificateService) Issue(ctx context.Context, req *dto.IssueCertificateRequest) (*models.Certificate, error) {
	enrollmentNo := strings.TrimSpace(req.EnrollmentNo)
	if enrollmentNo == "" {
		return nil, apperrors.NewValidationError("enrollment number is required")
	}

	exists, err := s.certs.ExistsByEnrollmentNo(ctx, enrollmentNo)
	if err != nil {
		return nil, fmt.Errorf("error checking certificate existence: %w", err)
	}
	if exists {
		return nil, apperrors.NewCustomError(apperrors.ErrCertificateExists,
			"a certificate has already been issued for enrollment number "+enrollmentNo)
	}

	cert := &models.Certificate{
		CertificateNo:  strings.TrimSpace(req.CertificateNo),
		EnrollmentNo:   enrollmentNo,
		StudentName:    req.StudentName,
		CourseName:     req.CourseName,
		IssueDate:      req.IssueDate,
		TheoryMarks:    req.TheoryMarks,
		PracticalMarks: req.PracticalMarks,
		ProjectMarks:   req.ProjectMarks,
		VivaMarks:      req.VivaMarks,
		Percentage:     req.Percentage,
		Grade:          req.Grade,
		Batch:          req.Batch,
		AdmissionDate:  req.AdmissionDate,
		FatherName:     req.FatherName,
		DOB:            req.DOB,
	}

	if cert.CertificateNo == "" {
		cert.CertificateNo = generateCertificateNo()
	}
	if cert.IssueDate == "" {
		cert.IssueDate = time.Now().Format("2006-01-02")
	}
	if cert.Grade == "" {
		cert.Grade = GradeForPercentage(cert.Percentage)
	}

	if err := s.certs.Create(ctx, cert); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("certificateNo", cert.CertificateNo).
		Str("enrollmentNo", cert.EnrollmentNo).
		Msg("Certificate issued")

	return cert, nil
}

// Verify produces the enriched public view for a certificate number.
// The issuing student may no longer exist; the merge degrades to the
// certificate's own snapshot fields and then to "N/A".
func (s *CertificateService) Verify(ctx context.Context, certificateNo string) (*dto.VerificationResponse, error) {
	certificateNo = strings.TrimSpace(certificateNo)
	if certificateNo == "" {
		return nil, apperrors.NewValidationError("certificate number is required")
	}

	cert, err := s.certs.GetByCertificateNo(ctx, certificateNo)
	if err != nil {
		return nil, err
	}

	student, err := s.students.GetByEnrollmentNo(ctx, cert.EnrollmentNo)
	if err != nil {
		if !errors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, err
		}
		student = nil
	}

	return mergeVerification(cert, student), nil
}

// List retrieves all certificates, newest first
func (s *CertificateService) List(ctx context.Context) ([]*models.Certificate, error) {
	return s.certs.List(ctx)
}

// Delete deletes a certificate by ID
func (s *CertificateService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.NewValidationError("certificate ID must be positive")
	}
	return s.certs.Delete(ctx, id)
}

// mergeVerification merges a certificate with the issuing student's
// current profile, field by field: certificate value first, then the
// student's, then "N/A". Pure; mutates neither input.
func mergeVerification(cert *models.Certificate, student *models.Student) *dto.VerificationResponse {
	res := &dto.VerificationResponse{
		CertificateNo:  cert.CertificateNo,
		EnrollmentNo:   cert.EnrollmentNo,
		StudentName:    cert.StudentName,
		CourseName:     cert.CourseName,
		IssueDate:      cert.IssueDate,
		TheoryMarks:    cert.TheoryMarks,
		PracticalMarks: cert.PracticalMarks,
		ProjectMarks:   cert.ProjectMarks,
		VivaMarks:      cert.VivaMarks,
		Percentage:     cert.Percentage,
		Grade:          cert.Grade,
		Session:        valueNA,
	}

	var studentBatch, studentAdmission, studentFather, studentDOB string
	if student != nil {
		res.StudentPhoto = student.Photo
		studentBatch = student.Batch
		studentAdmission = student.AdmissionDate
		studentFather = student.FatherName
		studentDOB = student.DOB

		if student.SessionStart != "" && student.SessionEnd != "" {
			res.Session = student.SessionStart + " - " + student.SessionEnd
		}
	}

	res.Batch = firstNonEmpty(cert.Batch, studentBatch, valueNA)
	res.AdmissionDate = firstNonEmpty(cert.AdmissionDate, studentAdmission, valueNA)
	res.FatherName = firstNonEmpty(cert.FatherName, studentFather, valueNA)
	res.DOB = firstNonEmpty(cert.DOB, studentDOB, valueNA)

	return res
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// GradeForPercentage maps a percentage to the letter grade printed on
// certificates. Used only when the examiner does not supply a grade.
func GradeForPercentage(percentage float64) string {
	switch {
	case percentage >= 85:
		return "A+"
	case percentage >= 70:
		return "A"
	case percentage >= 60:
		return "B"
	case percentage >= 50:
		return "C"
	case percentage >= 40:
		return "D"
	default:
		return "F"
	}
}

// generateCertificateNo builds a server-assigned certificate number for
// issue requests that omit one.
func generateCertificateNo() string {
	return "CERT-" + strings.ToUpper(uuid.New().String()[:8])
}
