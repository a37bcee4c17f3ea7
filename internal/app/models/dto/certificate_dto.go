package dto

// IssueCertificateRequest represents a certificate to issue. Marks,
// percentage and grade come from the examiner; the snapshot fields
// (studentName, courseName) are captured as given at issue time.
type IssueCertificateRequest struct {
	CertificateNo  string  `json:"certificateNo"`
	EnrollmentNo   string  `json:"enrollmentNo" binding:"required"`
	StudentName    string  `json:"studentName" binding:"required"`
	CourseName     string  `json:"courseName"`
	IssueDate      string  `json:"issueDate"`
	TheoryMarks    float64 `json:"theoryMarks"`
	PracticalMarks float64 `json:"practicalMarks"`
	ProjectMarks   float64 `json:"projectMarks"`
	VivaMarks      float64 `json:"vivaMarks"`
	Percentage     float64 `json:"percentage" binding:"gte=0,lte=100"`
	Grade          string  `json:"grade"`
	Batch          string  `json:"batch"`
	AdmissionDate  string  `json:"admissionDate"`
	FatherName     string  `json:"fatherName"`
	DOB            string  `json:"dob"`
}

// VerificationResponse is the public read-only view returned by the
// certificate verification endpoint: the certificate merged with the
// issuing student's current profile fields. It is never persisted.
type VerificationResponse struct {
	CertificateNo  string  `json:"certificateNo"`
	EnrollmentNo   string  `json:"enrollmentNo"`
	StudentName    string  `json:"studentName"`
	CourseName     string  `json:"courseName"`
	IssueDate      string  `json:"issueDate"`
	TheoryMarks    float64 `json:"theoryMarks"`
	PracticalMarks float64 `json:"practicalMarks"`
	ProjectMarks   float64 `json:"projectMarks"`
	VivaMarks      float64 `json:"vivaMarks"`
	Percentage     float64 `json:"percentage"`
	Grade          string  `json:"grade"`
	StudentPhoto   string  `json:"studentPhoto"`
	Batch          string  `json:"batch"`
	AdmissionDate  string  `json:"admissionDate"`
	FatherName     string  `json:"fatherName"`
	DOB            string  `json:"dob"`
	Session        string  `json:"session"`
}
