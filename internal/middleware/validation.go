package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/skillpoint/institute-backend/internal/app/models/dto"
)

// validatedBodyKey is the context key ValidateRequest stores the bound
// body under.
const validatedBodyKey = "validatedBody"

// ValidateRequest binds the JSON request body into a fresh T and aborts
// with a field-level 400 when binding or a binding rule fails. Handlers
// behind it read the body with ValidatedBody.
func ValidateRequest[T any]() gin.HandlerFunc {
	return func(c *gin.Context) {
		obj := new(T)
		if err := c.ShouldBindJSON(obj); err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed")

			var validationErrors validator.ValidationErrors
			if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
				first := validationErrors[0]
				errorDetail = errorDetail.
					WithField(first.Field()).
					WithDetails(formatValidationError(first))
			} else {
				errorDetail = errorDetail.WithDetails(err.Error())
			}

			c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			c.Abort()
			return
		}

		c.Set(validatedBodyKey, obj)
		c.Next()
	}
}

// ValidatedBody returns the request body bound by a preceding
// ValidateRequest[T] in the handler chain.
func ValidatedBody[T any](c *gin.Context) *T {
	return c.MustGet(validatedBodyKey).(*T)
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "gte":
		return e.Field() + " must be at least " + e.Param()
	case "lte":
		return e.Field() + " must be at most " + e.Param()
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
