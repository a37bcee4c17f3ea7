package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEnrollmentNo(t *testing.T) {
	valid := []string{"SP/2024/0042", "EN-2023-001", "A1B2C3"}
	for _, v := range valid {
		assert.True(t, IsValidEnrollmentNo(v), "%q should be valid", v)
	}

	invalid := []string{"", "ab", "has spaces", "too@strange!", "0123456789012345678901234567890"}
	for _, v := range invalid {
		assert.False(t, IsValidEnrollmentNo(v), "%q should be invalid", v)
	}
}

func TestIsValidContact(t *testing.T) {
	assert.True(t, IsValidContact("9876543210"))
	assert.True(t, IsValidContact("+919876543210"))
	assert.True(t, IsValidContact(""), "contact is optional")

	assert.False(t, IsValidContact("12345"))
	assert.False(t, IsValidContact("not-a-number"))
}

func TestIsValidName(t *testing.T) {
	assert.True(t, IsValidName("Asha Verma"))
	assert.False(t, IsValidName(""))
	assert.False(t, IsValidName("A"))
}
