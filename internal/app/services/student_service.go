package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/skillpoint/institute-backend/internal/app/models"
	"github.com/skillpoint/institute-backend/internal/app/models/dto"
	"github.com/skillpoint/institute-backend/internal/pkg/apperrors"
	"github.com/skillpoint/institute-backend/internal/pkg/auth"
	"github.com/skillpoint/institute-backend/internal/pkg/helpers"
	"github.com/skillpoint/institute-backend/internal/pkg/validation"
)

// MaxSearchResults caps the student search endpoint.
const MaxSearchResults = 10

// StudentStore is the persistence contract for student records.
type StudentStore interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetByEnrollmentNo(ctx context.Context, enrollmentNo string) (*models.Student, error)
	List(ctx context.Context, offset uint64, limit int) ([]*models.Student, error)
	Count(ctx context.Context) (int64, error)
	Search(ctx context.Context, term string, limit int) ([]*models.Student, error)
	Update(ctx context.Context, student *models.Student) error
	UpdatePhoto(ctx context.Context, id int64, photoURL string) error
	Delete(ctx context.Context, id int64) error
}

// StudentService handles student enrollment records
type StudentService struct {
	students StudentStore
	logger   zerolog.Logger
}

// NewStudentService creates a new student service instance
func NewStudentService(students StudentStore, logger zerolog.Logger) *StudentService {
	return &StudentService{
		students: students,
		logger:   logger,
	}
}

// Create admits a new student. The enrollment number must be unique;
// the password is stored only as a bcrypt hash.
func (s *StudentService) Create(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error) {
	enrollmentNo := strings.TrimSpace(req.EnrollmentNo)
	if !validation.IsValidEnrollmentNo(enrollmentNo) {
		return nil, apperrors.NewValidationError("enrollment number is missing or malformed")
	}
	if !validation.IsValidName(strings.TrimSpace(req.Name)) {
		return nil, apperrors.NewValidationError("name is required")
	}
	if !validation.IsValidContact(strings.TrimSpace(req.Contact)) {
		return nil, apperrors.NewValidationError("contact number is malformed")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	status := models.StudentStatus(req.Status)
	if status == "" {
		status = models.StudentStatusActive
	}

	student := &models.Student{
		EnrollmentNo:  enrollmentNo,
		PasswordHash:  hash,
		Name:          req.Name,
		FatherName:    req.FatherName,
		DOB:           req.DOB,
		Contact:       req.Contact,
		Address:       req.Address,
		Qualification: req.Qualification,
		CourseName:    req.CourseName,
		Batch:         req.Batch,
		SessionStart:  req.SessionStart,
		SessionEnd:    req.SessionEnd,
		AdmissionDate: req.AdmissionDate,
		Status:        status,
	}

	if err := s.students.Create(ctx, student); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("studentId", student.ID).
		Str("enrollmentNo", student.EnrollmentNo).
		Msg("Student admitted")

	return student, nil
}

// GetByID retrieves a student by ID
func (s *StudentService) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("student ID must be positive")
	}
	return s.students.GetByID(ctx, id)
}

// List retrieves students newest first, one page at a time
func (s *StudentService) List(ctx context.Context, page, size int) ([]*models.Student, dto.PaginationInfo, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	students, err := s.students.List(ctx, offset, limit)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	total, err := s.students.Count(ctx)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	return students, helpers.NewPaginationInfo(total, page, limit), nil
}

// Search performs a case-insensitive substring match against student
// names and enrollment numbers, capped at MaxSearchResults. A blank
// term matches nothing.
func (s *StudentService) Search(ctx context.Context, term string) ([]*models.Student, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return []*models.Student{}, nil
	}
	return s.students.Search(ctx, term, MaxSearchResults)
}

// Update applies profile changes to an existing student. The paid-fee
// total is never touched here; only the fee ledger writes it.
func (s *StudentService) Update(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*models.Student, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("student ID must be positive")
	}

	// Profile updates obey the same rules as admission.
	if !validation.IsValidName(strings.TrimSpace(req.Name)) {
		return nil, apperrors.NewValidationError("name is required")
	}
	if !validation.IsValidContact(strings.TrimSpace(req.Contact)) {
		return nil, apperrors.NewValidationError("contact number is malformed")
	}

	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	student.Name = req.Name
	student.FatherName = req.FatherName
	student.DOB = req.DOB
	student.Contact = req.Contact
	student.Address = req.Address
	student.Qualification = req.Qualification
	student.CourseName = req.CourseName
	student.Batch = req.Batch
	student.SessionStart = req.SessionStart
	student.SessionEnd = req.SessionEnd
	student.AdmissionDate = req.AdmissionDate
	if req.Status != "" {
		student.Status = models.StudentStatus(req.Status)
	}

	if err := s.students.Update(ctx, student); err != nil {
		return nil, err
	}

	return student, nil
}

// SetPhoto stores the URL of an uploaded student photo
func (s *StudentService) SetPhoto(ctx context.Context, id int64, photoURL string) error {
	if id <= 0 {
		return apperrors.NewValidationError("student ID must be positive")
	}
	return s.students.UpdatePhoto(ctx, id, photoURL)
}

// Delete removes a student record and its fee transactions
func (s *StudentService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.NewValidationError("student ID must be positive")
	}

	if err := s.students.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("studentId", id).Msg("Student deleted")
	return nil
}
