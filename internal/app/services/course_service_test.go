package services

import (
	"context"
	"strings"
	"testing"

	"github.com/skillpoint/institute-backend/internal/app/models"
	"github.com/skillpoint/institute-backend/internal/app/models/dto"
	"github.com/skillpoint/institute-backend/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCourseStore struct {
	nextID  int64
	courses []*models.Course
}

func normalizeCourseName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func (s *fakeCourseStore) Create(ctx context.Context, course *models.Course) error {
	for _, c := range s.courses {
		if c.Name == course.Name {
			return apperrors.ErrCourseAlreadyExists
		}
	}
	s.nextID++
	course.ID = s.nextID
	s.courses = append(s.courses, course)
	return nil
}

func (s *fakeCourseStore) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	for _, c := range s.courses {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, apperrors.ErrCourseNotFound
}

func (s *fakeCourseStore) GetByName(ctx context.Context, name string) (*models.Course, error) {
	for _, c := range s.courses {
		if normalizeCourseName(c.Name) == normalizeCourseName(name) {
			return c, nil
		}
	}
	return nil, apperrors.ErrCourseNotFound
}

func (s *fakeCourseStore) GetAll(ctx context.Context) ([]*models.Course, error) {
	return s.courses, nil
}

func (s *fakeCourseStore) Update(ctx context.Context, course *models.Course) error {
	for i, c := range s.courses {
		if c.ID == course.ID {
			s.courses[i] = course
			return nil
		}
	}
	return apperrors.ErrCourseNotFound
}

func (s *fakeCourseStore) Delete(ctx context.Context, id int64) error {
	for i, c := range s.courses {
		if c.ID == id {
			s.courses = append(s.courses[:i], s.courses[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrCourseNotFound
}

func TestCourseCreateTrimsName(t *testing.T) {
	store := &fakeCourseStore{}
	svc := NewCourseService(store)

	course, err := svc.Create(context.Background(), &dto.CreateCourseRequest{
		Name:     "  Web Development  ",
		Duration: "6 months",
		Fee:      10000,
		Subjects: []string{"HTML", "CSS", "JavaScript"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Web Development", course.Name)
}

func TestCourseCreateRejectsNegativeFee(t *testing.T) {
	svc := NewCourseService(&fakeCourseStore{})

	_, err := svc.Create(context.Background(), &dto.CreateCourseRequest{
		Name: "Web Development",
		Fee:  -1,
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestCourseCreateRejectsBlankName(t *testing.T) {
	svc := NewCourseService(&fakeCourseStore{})

	_, err := svc.Create(context.Background(), &dto.CreateCourseRequest{Name: "   "})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestCourseGetByNameIsCaseInsensitive(t *testing.T) {
	store := &fakeCourseStore{}
	svc := NewCourseService(store)

	_, err := svc.Create(context.Background(), &dto.CreateCourseRequest{
		Name: "Web Development",
		Fee:  10000,
	})
	require.NoError(t, err)

	course, err := svc.GetByName(context.Background(), "  web development ")
	require.NoError(t, err)
	assert.Equal(t, "Web Development", course.Name)

	_, err = svc.GetByName(context.Background(), "Data Science")
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}

func TestCourseUpdate(t *testing.T) {
	store := &fakeCourseStore{}
	svc := NewCourseService(store)

	created, err := svc.Create(context.Background(), &dto.CreateCourseRequest{
		Name: "Web Development",
		Fee:  10000,
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID, &dto.UpdateCourseRequest{
		Name: "Full Stack Development",
		Fee:  12000,
	})
	require.NoError(t, err)
	assert.Equal(t, "Full Stack Development", updated.Name)
	assert.Equal(t, 12000.0, updated.Fee)
}

func TestCourseDuplicateName(t *testing.T) {
	store := &fakeCourseStore{}
	svc := NewCourseService(store)

	_, err := svc.Create(context.Background(), &dto.CreateCourseRequest{Name: "Web Development"})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), &dto.CreateCourseRequest{Name: "Web Development"})
	assert.ErrorIs(t, err, apperrors.ErrCourseAlreadyExists)
}
