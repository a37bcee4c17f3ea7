package models

import "time"

// Certificate represents an issued course-completion certificate.
// StudentName and CourseName are intentional snapshots taken at issue
// time; they are never re-derived from the live student record, so a
// certificate stays valid even after the student record changes or is
// removed.
type Certificate struct {
	ID             int64     `json:"id" db:"id"`
	CertificateNo  string    `json:"certificateNo" db:"certificate_no"`
	EnrollmentNo   string    `json:"enrollmentNo" db:"enrollment_no" binding:"required"`
	StudentName    string    `json:"studentName" db:"student_name"`
	CourseName     string    `json:"courseName" db:"course_name"`
	IssueDate      string    `json:"issueDate" db:"issue_date"`
	TheoryMarks    float64   `json:"theoryMarks" db:"theory_marks"`
	PracticalMarks float64   `json:"practicalMarks" db:"practical_marks"`
	ProjectMarks   float64   `json:"projectMarks" db:"project_marks"`
	VivaMarks      float64   `json:"vivaMarks" db:"viva_marks"`
	Percentage     float64   `json:"percentage" db:"percentage"`
	Grade          string    `json:"grade" db:"grade"`
	Batch          string    `json:"batch" db:"batch"`
	AdmissionDate  string    `json:"admissionDate" db:"admission_date"`
	FatherName     string    `json:"fatherName" db:"father_name"`
	DOB            string    `json:"dob" db:"dob"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
}
