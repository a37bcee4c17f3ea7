package repositories

import (
	"github.com/skillpoint/institute-backend/internal/db"
)

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository     *StudentRepository
	CourseRepository      *CourseRepository
	FeeRepository         *FeeRepository
	CertificateRepository *CertificateRepository
	DashboardRepository   *DashboardRepository
}

// NewRepositories initializes all repositories
func NewRepositories(database *db.PostgresDB) *Repositories {
	return &Repositories{
		StudentRepository:     NewStudentRepository(database.Pool),
		CourseRepository:      NewCourseRepository(database.Pool),
		FeeRepository:         NewFeeRepository(database),
		CertificateRepository: NewCertificateRepository(database.Pool),
		DashboardRepository:   NewDashboardRepository(database.Pool),
	}
}
