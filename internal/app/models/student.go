package models

import "time"

// Student defines the student model based on the 'students' table.
// PaidFee is a denormalized running total of the student's fee
// transactions; it is only ever written inside the same transaction
// that inserts or deletes a fee_transactions row.
type Student struct {
	ID            int64         `json:"id" db:"id"`
	EnrollmentNo  string        `json:"enrollmentNo" db:"enrollment_no"` // Human-assigned unique identifier
	PasswordHash  string        `json:"-" db:"password_hash"`
	Name          string        `json:"name" db:"name"`
	FatherName    string        `json:"fatherName" db:"father_name"`
	DOB           string        `json:"dob" db:"dob"`
	Contact       string        `json:"contact" db:"contact"`
	Address       string        `json:"address" db:"address"`
	Qualification string        `json:"qualification" db:"qualification"`
	CourseName    string        `json:"courseName" db:"course_name"`
	Batch         string        `json:"batch" db:"batch"`
	SessionStart  string        `json:"sessionStart" db:"session_start"`
	SessionEnd    string        `json:"sessionEnd" db:"session_end"`
	AdmissionDate string        `json:"admissionDate" db:"admission_date"`
	Photo         string        `json:"photo" db:"photo"` // URL into the uploads dir
	PaidFee       float64       `json:"paidFee" db:"paid_fee"`
	Status        StudentStatus `json:"status" db:"status"`
	CreatedAt     time.Time     `json:"createdAt" db:"created_at"`
}

// StudentBalance is the read model used by the dashboard aggregate.
// CourseFee is nil when the student's course name does not resolve to
// a catalog entry.
type StudentBalance struct {
	PaidFee   float64
	CourseFee *float64
}
