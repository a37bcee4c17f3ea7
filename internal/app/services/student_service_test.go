package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/skillpoint/institute-backend/internal/app/models"
	"github.com/skillpoint/institute-backend/internal/app/models/dto"
	"github.com/skillpoint/institute-backend/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeStudentStore struct {
	nextID      int64
	students    []*models.Student // newest first
	searchCalls int
}

func (s *fakeStudentStore) Create(ctx context.Context, student *models.Student) error {
	for _, existing := range s.students {
		if existing.EnrollmentNo == student.EnrollmentNo {
			return apperrors.ErrEnrollmentNoExists
		}
	}
	s.nextID++
	student.ID = s.nextID
	s.students = append([]*models.Student{student}, s.students...)
	return nil
}

func (s *fakeStudentStore) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	for _, st := range s.students {
		if st.ID == id {
			return st, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (s *fakeStudentStore) GetByEnrollmentNo(ctx context.Context, enrollmentNo string) (*models.Student, error) {
	for _, st := range s.students {
		if st.EnrollmentNo == enrollmentNo {
			return st, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (s *fakeStudentStore) List(ctx context.Context, offset uint64, limit int) ([]*models.Student, error) {
	start := int(offset)
	if start >= len(s.students) {
		return []*models.Student{}, nil
	}
	end := start + limit
	if end > len(s.students) {
		end = len(s.students)
	}
	return s.students[start:end], nil
}

func (s *fakeStudentStore) Count(ctx context.Context) (int64, error) {
	return int64(len(s.students)), nil
}

func (s *fakeStudentStore) Search(ctx context.Context, term string, limit int) ([]*models.Student, error) {
	s.searchCalls++
	var matches []*models.Student
	for _, st := range s.students {
		if len(matches) >= limit {
			break
		}
		matches = append(matches, st)
	}
	return matches, nil
}

func (s *fakeStudentStore) Update(ctx context.Context, student *models.Student) error {
	for i, st := range s.students {
		if st.ID == student.ID {
			s.students[i] = student
			return nil
		}
	}
	return apperrors.ErrStudentNotFound
}

func (s *fakeStudentStore) UpdatePhoto(ctx context.Context, id int64, photoURL string) error {
	for _, st := range s.students {
		if st.ID == id {
			st.Photo = photoURL
			return nil
		}
	}
	return apperrors.ErrStudentNotFound
}

func (s *fakeStudentStore) Delete(ctx context.Context, id int64) error {
	for i, st := range s.students {
		if st.ID == id {
			s.students = append(s.students[:i], s.students[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrStudentNotFound
}

func newStudentService(store StudentStore) *StudentService {
	return NewStudentService(store, zerolog.Nop())
}

func TestStudentCreateHashesPassword(t *testing.T) {
	store := &fakeStudentStore{}
	svc := newStudentService(store)

	student, err := svc.Create(context.Background(), &dto.CreateStudentRequest{
		EnrollmentNo: "SP/2024/0001",
		Password:     "secret123",
		Name:         "Asha Verma",
	})
	require.NoError(t, err)

	assert.NotEqual(t, "secret123", student.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(student.PasswordHash), []byte("secret123")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(student.PasswordHash), []byte("wrong")))
}

func TestStudentCreateDefaultsStatus(t *testing.T) {
	svc := newStudentService(&fakeStudentStore{})

	student, err := svc.Create(context.Background(), &dto.CreateStudentRequest{
		EnrollmentNo: "SP/2024/0002",
		Password:     "secret123",
		Name:         "Rahul Nair",
	})
	require.NoError(t, err)
	assert.Equal(t, models.StudentStatusActive, student.Status)

	student, err = svc.Create(context.Background(), &dto.CreateStudentRequest{
		EnrollmentNo: "SP/2024/0003",
		Password:     "secret123",
		Name:         "Meera Iyer",
		Status:       string(models.StudentStatusPassed),
	})
	require.NoError(t, err)
	assert.Equal(t, models.StudentStatusPassed, student.Status)
}

func TestStudentCreateDuplicateEnrollmentNo(t *testing.T) {
	store := &fakeStudentStore{}
	svc := newStudentService(store)

	_, err := svc.Create(context.Background(), &dto.CreateStudentRequest{
		EnrollmentNo: "SP/2024/0004",
		Password:     "secret123",
		Name:         "First Student",
	})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), &dto.CreateStudentRequest{
		EnrollmentNo: "SP/2024/0004",
		Password:     "secret123",
		Name:         "Second Student",
	})
	assert.ErrorIs(t, err, apperrors.ErrEnrollmentNoExists)
}

func TestStudentCreateRejectsMalformedEnrollmentNo(t *testing.T) {
	svc := newStudentService(&fakeStudentStore{})

	for _, enrollmentNo := range []string{"", "   ", "ab", "has spaces in it"} {
		_, err := svc.Create(context.Background(), &dto.CreateStudentRequest{
			EnrollmentNo: enrollmentNo,
			Password:     "secret123",
			Name:         "Someone",
		})
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed, "enrollmentNo %q", enrollmentNo)
	}
}

func TestStudentSearchBlankTermMatchesNothing(t *testing.T) {
	store := &fakeStudentStore{}
	svc := newStudentService(store)

	results, err := svc.Search(context.Background(), "   ")
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.Zero(t, store.searchCalls, "a blank term should never reach the store")
}

func TestStudentUpdateKeepsLedgerFields(t *testing.T) {
	store := &fakeStudentStore{}
	svc := newStudentService(store)

	created, err := svc.Create(context.Background(), &dto.CreateStudentRequest{
		EnrollmentNo: "SP/2024/0005",
		Password:     "secret123",
		Name:         "Before Update",
	})
	require.NoError(t, err)
	created.PaidFee = 7500

	updated, err := svc.Update(context.Background(), created.ID, &dto.UpdateStudentRequest{
		Name:       "After Update",
		CourseName: "Web Development",
	})
	require.NoError(t, err)

	assert.Equal(t, "After Update", updated.Name)
	assert.Equal(t, "Web Development", updated.CourseName)
	assert.Equal(t, "SP/2024/0005", updated.EnrollmentNo)
	assert.Equal(t, 7500.0, updated.PaidFee)
}

func TestStudentUpdateRejectsInvalidProfile(t *testing.T) {
	store := &fakeStudentStore{}
	svc := newStudentService(store)

	created, err := svc.Create(context.Background(), &dto.CreateStudentRequest{
		EnrollmentNo: "SP/2024/0009",
		Password:     "secret123",
		Name:         "Valid Name",
		Contact:      "+919876543210",
	})
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), created.ID, &dto.UpdateStudentRequest{
		Name: "   ",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.Update(context.Background(), created.ID, &dto.UpdateStudentRequest{
		Name:    "Still Valid",
		Contact: "not-a-number",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	// The stored record is untouched by rejected updates.
	current, err := svc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Valid Name", current.Name)
	assert.Equal(t, "+919876543210", current.Contact)
}

func TestStudentListPaginates(t *testing.T) {
	store := &fakeStudentStore{}
	svc := newStudentService(store)

	for _, enrollmentNo := range []string{"SP/2024/0006", "SP/2024/0007", "SP/2024/0008"} {
		_, err := svc.Create(context.Background(), &dto.CreateStudentRequest{
			EnrollmentNo: enrollmentNo,
			Password:     "secret123",
			Name:         "Student " + enrollmentNo,
		})
		require.NoError(t, err)
	}

	students, pagination, err := svc.List(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Len(t, students, 2)
	assert.Equal(t, int64(3), pagination.TotalItems)
	assert.Equal(t, 2, pagination.TotalPages)

	// Newest admission comes first
	assert.Equal(t, "SP/2024/0008", students[0].EnrollmentNo)
}

func TestStudentDeleteUnknown(t *testing.T) {
	svc := newStudentService(&fakeStudentStore{})

	err := svc.Delete(context.Background(), 42)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}
