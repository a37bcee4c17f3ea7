package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/skillpoint/institute-backend/internal/app/models/dto"
	"github.com/skillpoint/institute-backend/internal/pkg/apperrors"
	"github.com/skillpoint/institute-backend/internal/pkg/dberrors"
	"github.com/skillpoint/institute-backend/internal/pkg/logger"
)

// HandleAPIError maps service errors to API responses. Controllers call
// this for every error coming out of the service layer; the mapping from
// error kind to status code lives only here.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case apperrors.Is(err, apperrors.ErrValidationFailed,
		apperrors.ErrInvalidAmount,
		apperrors.ErrBadRequest):
		c.JSON(400, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error()),
		})
	case apperrors.Is(err, apperrors.ErrResourceNotFound,
		apperrors.ErrStudentNotFound,
		apperrors.ErrCourseNotFound,
		apperrors.ErrTransactionNotFound,
		apperrors.ErrCertificateNotFound):
		c.JSON(404, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, err.Error()),
		})
	case apperrors.Is(err, apperrors.ErrConflict,
		apperrors.ErrResourceAlreadyExists,
		apperrors.ErrEnrollmentNoExists,
		apperrors.ErrCourseAlreadyExists,
		apperrors.ErrCertificateExists,
		apperrors.ErrCertificateNoExists):
		c.JSON(409, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, err.Error()),
		})
	case errors.Is(err, apperrors.ErrStoreUnavailable) || dberrors.IsTransient(err):
		logger.Warn().Err(err).Str("path", c.Request.URL.Path).Msg("Store unavailable")
		c.JSON(503, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeServiceUnavailable, "Service temporarily unavailable"),
		})
	default:
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled API error")
		c.JSON(500, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"),
		})
	}
}
