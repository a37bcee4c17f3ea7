package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/skillpoint/institute-backend/internal/app/models/dto"
	"github.com/skillpoint/institute-backend/internal/app/services"
	"github.com/skillpoint/institute-backend/internal/middleware"
)

// CertificateController handles certificate issuance and verification
type CertificateController struct {
	certificateService *services.CertificateService
}

// NewCertificateController creates a new CertificateController
func NewCertificateController(certificateService *services.CertificateService) *CertificateController {
	return &CertificateController{
		certificateService: certificateService,
	}
}

// Issue issues a new certificate
// @Summary Issue a certificate
// @Description Issues a certificate; at most one certificate may exist per enrollment number
// @Tags certificates
// @Accept json
// @Produce json
// @Param request body dto.IssueCertificateRequest true "Certificate details"
// @Success 201 {object} dto.APIResponse{data=models.Certificate} "Certificate issued"
// @Failure 400 {object} dto.ErrorResponse "Invalid certificate data"
// @Failure 409 {object} dto.ErrorResponse "Certificate already issued for this enrollment number"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /certificates/issue [post]
func (c *CertificateController) Issue(ctx *gin.Context) {
	req := middleware.ValidatedBody[dto.IssueCertificateRequest](ctx)

	cert, err := c.certificateService.Issue(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      cert,
		Timestamp: time.Now(),
	})
}

// List retrieves all certificates, newest first
// @Summary List certificates
// @Tags certificates
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Certificate} "Certificates retrieved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /certificates [get]
func (c *CertificateController) List(ctx *gin.Context) {
	certs, err := c.certificateService.List(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      certs,
		Timestamp: time.Now(),
	})
}

// Verify returns the enriched public verification view for a certificate
// @Summary Verify a certificate
// @Description Public verification view merging the certificate with the issuing student's current profile
// @Tags certificates
// @Produce json
// @Param certNo path string true "Certificate number"
// @Success 200 {object} dto.APIResponse{data=dto.VerificationResponse} "Certificate verified"
// @Failure 404 {object} dto.ErrorResponse "Certificate not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /certificates/verify/{certNo} [get]
func (c *CertificateController) Verify(ctx *gin.Context) {
	result, err := c.certificateService.Verify(ctx, ctx.Param("certNo"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      result,
		Timestamp: time.Now(),
	})
}

// Delete deletes a certificate
// @Summary Delete a certificate
// @Tags certificates
// @Produce json
// @Param id path int true "Certificate ID"
// @Success 204 "Certificate deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid certificate ID"
// @Failure 404 {object} dto.ErrorResponse "Certificate not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /certificates/{id} [delete]
func (c *CertificateController) Delete(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid certificate ID")
		errorDetail = errorDetail.WithDetails("Certificate ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.certificateService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusNoContent, dto.APIResponse{
		Timestamp: time.Now(),
	})
}
