package validation

import (
	"regexp"
)

// Validation rule patterns
var (
	// Enrollment number: letters, digits, slashes and dashes, e.g. SP/2024/0042
	EnrollmentNoPattern = `^[A-Za-z0-9/\-]{3,30}$`

	// Contact number: optional country code plus 7-15 digits
	ContactPattern = `^\+?[0-9]{7,15}$`

	// Name validation min/max length
	NameMinLength = 2
	NameMaxLength = 100
)

// CompiledPatterns caches compiled regex patterns for better performance
var CompiledPatterns = struct {
	EnrollmentNo *regexp.Regexp
	Contact      *regexp.Regexp
}{
	EnrollmentNo: regexp.MustCompile(EnrollmentNoPattern),
	Contact:      regexp.MustCompile(ContactPattern),
}

// IsValidEnrollmentNo reports whether the enrollment number matches the
// accepted format.
func IsValidEnrollmentNo(enrollmentNo string) bool {
	return NewStringValidation(enrollmentNo).
		WithPattern(CompiledPatterns.EnrollmentNo).
		Validate()
}

// IsValidContact reports whether the contact number matches the accepted
// format. Empty values pass; the field is optional.
func IsValidContact(contact string) bool {
	return NewStringValidation(contact).
		WithRequired(false).
		WithPattern(CompiledPatterns.Contact).
		Validate()
}

// IsValidName reports whether a person name falls within accepted length bounds.
func IsValidName(name string) bool {
	return NewStringValidation(name).
		WithMinLength(NameMinLength).
		WithMaxLength(NameMaxLength).
		Validate()
}

// String validation
type StringValidation struct {
	Value    string
	MinLen   int
	MaxLen   int
	Required bool
	Pattern  *regexp.Regexp
}

// NewStringValidation creates a new string validation
func NewStringValidation(value string) *StringValidation {
	return &StringValidation{
		Value:    value,
		Required: true,
	}
}

// WithMinLength sets minimum length
func (v *StringValidation) WithMinLength(min int) *StringValidation {
	v.MinLen = min
	return v
}

// WithMaxLength sets maximum length
func (v *StringValidation) WithMaxLength(max int) *StringValidation {
	v.MaxLen = max
	return v
}

// WithPattern sets regex pattern
func (v *StringValidation) WithPattern(pattern *regexp.Regexp) *StringValidation {
	v.Pattern = pattern
	return v
}

// WithRequired sets if field is required
func (v *StringValidation) WithRequired(required bool) *StringValidation {
	v.Required = required
	return v
}

// Validate performs validation
func (v *StringValidation) Validate() bool {
	if v.Required && v.Value == "" {
		return false
	}

	// Skip other validations for empty optional values
	if !v.Required && v.Value == "" {
		return true
	}

	if v.MinLen > 0 && len(v.Value) < v.MinLen {
		return false
	}

	if v.MaxLen > 0 && len(v.Value) > v.MaxLen {
		return false
	}

	if v.Pattern != nil && !v.Pattern.MatchString(v.Value) {
		return false
	}

	return true
}
