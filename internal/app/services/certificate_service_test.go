package services

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/skillpoint/institute-backend/internal/app/models"
	"github.com/skillpoint/institute-backend/internal/app/models/dto"
	"github.com/skillpoint/institute-backend/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCertificateStore struct {
	nextID int64
	certs  []*models.Certificate
}

func (s *fakeCertificateStore) Create(ctx context.Context, cert *models.Certificate) error {
	for _, c := range s.certs {
		if c.EnrollmentNo == cert.EnrollmentNo {
			return apperrors.ErrCertificateExists
		}
		if c.CertificateNo == cert.CertificateNo {
			return apperrors.ErrCertificateNoExists
		}
	}
	s.nextID++
	cert.ID = s.nextID
	s.certs = append([]*models.Certificate{cert}, s.certs...)
	return nil
}

func (s *fakeCertificateStore) GetByCertificateNo(ctx context.Context, certificateNo string) (*models.Certificate, error) {
	for _, c := range s.certs {
		if c.CertificateNo == certificateNo {
			return c, nil
		}
	}
	return nil, apperrors.ErrCertificateNotFound
}

func (s *fakeCertificateStore) ExistsByEnrollmentNo(ctx context.Context, enrollmentNo string) (bool, error) {
	for _, c := range s.certs {
		if c.EnrollmentNo == enrollmentNo {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeCertificateStore) List(ctx context.Context) ([]*models.Certificate, error) {
	return s.certs, nil
}

func (s *fakeCertificateStore) Delete(ctx context.Context, id int64) error {
	for i, c := range s.certs {
		if c.ID == id {
			s.certs = append(s.certs[:i], s.certs[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrCertificateNotFound
}

type fakeStudentReader struct {
	students map[string]*models.Student
}

func (r *fakeStudentReader) GetByEnrollmentNo(ctx context.Context, enrollmentNo string) (*models.Student, error) {
	if s, ok := r.students[enrollmentNo]; ok {
		return s, nil
	}
	return nil, apperrors.ErrStudentNotFound
}

func newCertificateService(certs CertificateStore, students StudentReader) *CertificateService {
	return NewCertificateService(certs, students, zerolog.Nop())
}

func TestCertificateIssueDefaults(t *testing.T) {
	store := &fakeCertificateStore{}
	svc := newCertificateService(store, &fakeStudentReader{})

	cert, err := svc.Issue(context.Background(), &dto.IssueCertificateRequest{
		EnrollmentNo: "SP/2024/0001",
		StudentName:  "Asha Verma",
		Percentage:   72,
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(cert.CertificateNo, "CERT-"), "generated number should carry the CERT- prefix, got %q", cert.CertificateNo)
	assert.Len(t, cert.CertificateNo, len("CERT-")+8)
	assert.NotEmpty(t, cert.IssueDate)
	assert.Equal(t, "A", cert.Grade)
}

func TestCertificateIssueKeepsExplicitValues(t *testing.T) {
	store := &fakeCertificateStore{}
	svc := newCertificateService(store, &fakeStudentReader{})

	cert, err := svc.Issue(context.Background(), &dto.IssueCertificateRequest{
		CertificateNo: "CERT-CUSTOM01",
		EnrollmentNo:  "SP/2024/0002",
		StudentName:   "Rahul Nair",
		IssueDate:     "2023-05-01",
		Percentage:    92,
		Grade:         "B",
	})
	require.NoError(t, err)

	assert.Equal(t, "CERT-CUSTOM01", cert.CertificateNo)
	assert.Equal(t, "2023-05-01", cert.IssueDate)
	// An examiner-supplied grade wins over the percentage mapping
	assert.Equal(t, "B", cert.Grade)
}

func TestCertificateIssueOnePerEnrollment(t *testing.T) {
	store := &fakeCertificateStore{}
	svc := newCertificateService(store, &fakeStudentReader{})

	_, err := svc.Issue(context.Background(), &dto.IssueCertificateRequest{
		EnrollmentNo: "SP/2024/0003",
		StudentName:  "Meera Iyer",
	})
	require.NoError(t, err)

	_, err = svc.Issue(context.Background(), &dto.IssueCertificateRequest{
		EnrollmentNo: "SP/2024/0003",
		StudentName:  "Meera Iyer",
	})
	assert.ErrorIs(t, err, apperrors.ErrCertificateExists)
}

func TestCertificateIssueRequiresEnrollmentNo(t *testing.T) {
	svc := newCertificateService(&fakeCertificateStore{}, &fakeStudentReader{})

	_, err := svc.Issue(context.Background(), &dto.IssueCertificateRequest{
		EnrollmentNo: "   ",
		StudentName:  "Nobody",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestCertificateVerifyMergesStudentFields(t *testing.T) {
	store := &fakeCertificateStore{}
	students := &fakeStudentReader{students: map[string]*models.Student{
		"SP/2024/0004": {
			EnrollmentNo:  "SP/2024/0004",
			Photo:         "http://localhost:8080/uploads/students/abc.jpg",
			Batch:         "10am",
			AdmissionDate: "2023-07-15",
			FatherName:    "Suresh Pillai",
			DOB:           "2001-03-22",
			SessionStart:  "Jul 2023",
			SessionEnd:    "Jun 2024",
		},
	}}
	svc := newCertificateService(store, students)

	_, err := svc.Issue(context.Background(), &dto.IssueCertificateRequest{
		CertificateNo: "CERT-TEST0001",
		EnrollmentNo:  "SP/2024/0004",
		StudentName:   "Kiran Pillai",
		CourseName:    "Web Development",
		Percentage:    88,
	})
	require.NoError(t, err)

	res, err := svc.Verify(context.Background(), "CERT-TEST0001")
	require.NoError(t, err)

	// Fields the certificate snapshot lacks come from the live record
	assert.Equal(t, "10am", res.Batch)
	assert.Equal(t, "2023-07-15", res.AdmissionDate)
	assert.Equal(t, "Suresh Pillai", res.FatherName)
	assert.Equal(t, "2001-03-22", res.DOB)
	assert.Equal(t, "Jul 2023 - Jun 2024", res.Session)
	assert.Equal(t, "http://localhost:8080/uploads/students/abc.jpg", res.StudentPhoto)
	assert.Equal(t, "Kiran Pillai", res.StudentName)
}

func TestCertificateVerifyCertificateFieldsWin(t *testing.T) {
	store := &fakeCertificateStore{}
	students := &fakeStudentReader{students: map[string]*models.Student{
		"SP/2024/0005": {
			EnrollmentNo: "SP/2024/0005",
			Batch:        "10am",
			FatherName:   "Live Record Father",
		},
	}}
	svc := newCertificateService(store, students)

	_, err := svc.Issue(context.Background(), &dto.IssueCertificateRequest{
		CertificateNo: "CERT-TEST0002",
		EnrollmentNo:  "SP/2024/0005",
		StudentName:   "Dev Anand",
		Batch:         "Morning",
		FatherName:    "Snapshot Father",
	})
	require.NoError(t, err)

	res, err := svc.Verify(context.Background(), "CERT-TEST0002")
	require.NoError(t, err)

	assert.Equal(t, "Morning", res.Batch)
	assert.Equal(t, "Snapshot Father", res.FatherName)
}

func TestCertificateVerifyWithoutStudent(t *testing.T) {
	store := &fakeCertificateStore{}
	svc := newCertificateService(store, &fakeStudentReader{})

	_, err := svc.Issue(context.Background(), &dto.IssueCertificateRequest{
		CertificateNo: "CERT-TEST0003",
		EnrollmentNo:  "SP/2020/0099",
		StudentName:   "Alumni Student",
		Batch:         "Evening",
	})
	require.NoError(t, err)

	res, err := svc.Verify(context.Background(), "CERT-TEST0003")
	require.NoError(t, err)

	assert.Equal(t, "Evening", res.Batch)
	assert.Empty(t, res.StudentPhoto)
	assert.Equal(t, "N/A", res.AdmissionDate)
	assert.Equal(t, "N/A", res.FatherName)
	assert.Equal(t, "N/A", res.DOB)
	assert.Equal(t, "N/A", res.Session)
}

func TestCertificateVerifyUnknownNumber(t *testing.T) {
	svc := newCertificateService(&fakeCertificateStore{}, &fakeStudentReader{})

	_, err := svc.Verify(context.Background(), "CERT-MISSING1")
	assert.ErrorIs(t, err, apperrors.ErrCertificateNotFound)
}

func TestCertificateVerifySessionRequiresBothEnds(t *testing.T) {
	cert := &models.Certificate{CertificateNo: "C1", EnrollmentNo: "E1"}
	student := &models.Student{SessionStart: "Jul 2023"}

	res := mergeVerification(cert, student)
	assert.Equal(t, "N/A", res.Session)
}

func TestGradeForPercentage(t *testing.T) {
	cases := []struct {
		percentage float64
		grade      string
	}{
		{95, "A+"},
		{85, "A+"},
		{84.9, "A"},
		{70, "A"},
		{69.9, "B"},
		{60, "B"},
		{59.9, "C"},
		{50, "C"},
		{49.9, "D"},
		{40, "D"},
		{39.9, "F"},
		{0, "F"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.grade, GradeForPercentage(tc.percentage), "percentage %v", tc.percentage)
	}
}
