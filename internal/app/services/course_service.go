package services

import (
	"context"
	"strings"

	"github.com/skillpoint/institute-backend/internal/app/models"
	"github.com/skillpoint/institute-backend/internal/app/models/dto"
	"github.com/skillpoint/institute-backend/internal/pkg/apperrors"
)

// CourseStore is the persistence contract for the course catalog.
type CourseStore interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	GetByName(ctx context.Context, name string) (*models.Course, error)
	GetAll(ctx context.Context) ([]*models.Course, error)
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id int64) error
}

// CourseService handles the course catalog
type CourseService struct {
	courses CourseStore
}

// NewCourseService creates a new course service instance
func NewCourseService(courses CourseStore) *CourseService {
	return &CourseService{
		courses: courses,
	}
}

// Create adds a course to the catalog
func (s *CourseService) Create(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewValidationError("course name is required")
	}
	if req.Fee < 0 {
		return nil, apperrors.NewValidationError("fee cannot be negative")
	}

	course := &models.Course{
		Name:     name,
		Duration: req.Duration,
		Fee:      req.Fee,
		Subjects: req.Subjects,
	}

	if err := s.courses.Create(ctx, course); err != nil {
		return nil, err
	}

	return course, nil
}

// GetAll retrieves the full catalog
func (s *CourseService) GetAll(ctx context.Context) ([]*models.Course, error) {
	return s.courses.GetAll(ctx)
}

// GetByName retrieves a course by case-insensitive exact name match
// after trimming whitespace
func (s *CourseService) GetByName(ctx context.Context, name string) (*models.Course, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.NewValidationError("course name is required")
	}
	return s.courses.GetByName(ctx, name)
}

// Update updates a catalog entry
func (s *CourseService) Update(ctx context.Context, id int64, req *dto.UpdateCourseRequest) (*models.Course, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("course ID must be positive")
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewValidationError("course name is required")
	}
	if req.Fee < 0 {
		return nil, apperrors.NewValidationError("fee cannot be negative")
	}

	course := &models.Course{
		ID:       id,
		Name:     name,
		Duration: req.Duration,
		Fee:      req.Fee,
		Subjects: req.Subjects,
	}

	if err := s.courses.Update(ctx, course); err != nil {
		return nil, err
	}

	return course, nil
}

// Delete removes a catalog entry. Students and certificates keep their
// course-name snapshot; renames and deletions do not cascade to them.
func (s *CourseService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.NewValidationError("course ID must be positive")
	}
	return s.courses.Delete(ctx, id)
}
