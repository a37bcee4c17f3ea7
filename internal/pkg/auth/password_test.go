package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)

	assert.NotEqual(t, "secret123", hash)
	assert.True(t, strings.HasPrefix(hash, "$2a$"))

	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("secret123")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("Secret123")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("")))
}
