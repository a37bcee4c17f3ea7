package dto

// CreateStudentRequest represents a new student admission form
type CreateStudentRequest struct {
	EnrollmentNo  string `json:"enrollmentNo" binding:"required"`
	Password      string `json:"password" binding:"required,min=4"`
	Name          string `json:"name" binding:"required"`
	FatherName    string `json:"fatherName"`
	DOB           string `json:"dob"`
	Contact       string `json:"contact"`
	Address       string `json:"address"`
	Qualification string `json:"qualification"`
	CourseName    string `json:"courseName"`
	Batch         string `json:"batch"`
	SessionStart  string `json:"sessionStart"`
	SessionEnd    string `json:"sessionEnd"`
	AdmissionDate string `json:"admissionDate"`
	Status        string `json:"status"`
}

// UpdateStudentRequest represents an update to an existing student record.
// Enrollment number and password are not updatable through this request;
// the paid-fee total is only ever changed by the fee ledger.
type UpdateStudentRequest struct {
	Name          string `json:"name"`
	FatherName    string `json:"fatherName"`
	DOB           string `json:"dob"`
	Contact       string `json:"contact"`
	Address       string `json:"address"`
	Qualification string `json:"qualification"`
	CourseName    string `json:"courseName"`
	Batch         string `json:"batch"`
	SessionStart  string `json:"sessionStart"`
	SessionEnd    string `json:"sessionEnd"`
	AdmissionDate string `json:"admissionDate"`
	Status        string `json:"status"`
}
