package middleware

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/skillpoint/institute-backend/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"validation failure", apperrors.ErrValidationFailed, 400},
		{"invalid amount", apperrors.ErrInvalidAmount, 400},
		{"student not found", apperrors.ErrStudentNotFound, 404},
		{"transaction not found", apperrors.ErrTransactionNotFound, 404},
		{"certificate not found", apperrors.ErrCertificateNotFound, 404},
		{"duplicate enrollment", apperrors.ErrEnrollmentNoExists, 409},
		{"certificate already issued", apperrors.ErrCertificateExists, 409},
		{"store unavailable", apperrors.ErrStoreUnavailable, 503},
		{"request deadline expired", context.DeadlineExceeded, 503},
		{"unexpected failure", errors.New("boom"), 500},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest("GET", "/api/test", nil)

			HandleAPIError(c, tc.err)

			assert.Equal(t, tc.status, w.Code)
		})
	}
}

func TestHandleAPIErrorWrappedSentinel(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/test", nil)

	wrapped := apperrors.NewValidationError("amount must be positive")
	HandleAPIError(c, wrapped)

	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "amount must be positive")
}
