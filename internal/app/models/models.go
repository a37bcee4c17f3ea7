package models

// StudentStatus defines the lifecycle state of a student record
type StudentStatus string

const (
	StudentStatusActive   StudentStatus = "Active"
	StudentStatusInactive StudentStatus = "Inactive"
	StudentStatusPassed   StudentStatus = "Passed Out"
)

// DefaultNarration is applied to fee transactions recorded without one.
const DefaultNarration = "Fee Payment"
