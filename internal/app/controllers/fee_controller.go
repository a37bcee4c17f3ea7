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

// FeeController handles fee ledger operations
type FeeController struct {
	feeLedgerService *services.FeeLedgerService
}

// NewFeeController creates a new FeeController
func NewFeeController(feeLedgerService *services.FeeLedgerService) *FeeController {
	return &FeeController{
		feeLedgerService: feeLedgerService,
	}
}

// Collect records a fee payment
// @Summary Record a fee payment
// @Description Records a payment against a student and increments the student's paid-fee total
// @Tags fees
// @Accept json
// @Produce json
// @Param request body dto.CollectFeeRequest true "Payment details"
// @Success 201 {object} dto.APIResponse{data=models.FeeTransaction} "Payment recorded"
// @Failure 400 {object} dto.ErrorResponse "Invalid payment data"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /fees/collect [post]
func (c *FeeController) Collect(ctx *gin.Context) {
	req := middleware.ValidatedBody[dto.CollectFeeRequest](ctx)

	txn, err := c.feeLedgerService.Collect(ctx, req.StudentID, *req.Amount, req.Date, req.Narration)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      txn,
		Timestamp: time.Now(),
	})
}

// History returns a student's fee transactions, newest first
// @Summary Fee history
// @Description Returns a student's fee transactions, newest first
// @Tags fees
// @Produce json
// @Param studentId path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=[]models.FeeTransaction} "History retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /fees/history/{studentId} [get]
func (c *FeeController) History(ctx *gin.Context) {
	studentID, err := strconv.ParseInt(ctx.Param("studentId"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student ID")
		errorDetail = errorDetail.WithDetails("Student ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	history, err := c.feeLedgerService.History(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      history,
		Timestamp: time.Now(),
	})
}

// Void deletes a fee transaction and reverses its effect
// @Summary Void a fee transaction
// @Description Deletes a transaction and decrements the owning student's paid-fee total by the stored amount
// @Tags fees
// @Produce json
// @Param id path int true "Transaction ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Transaction voided"
// @Failure 400 {object} dto.ErrorResponse "Invalid transaction ID"
// @Failure 404 {object} dto.ErrorResponse "Transaction not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /fees/transaction/{id} [delete]
func (c *FeeController) Void(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid transaction ID")
		errorDetail = errorDetail.WithDetails("Transaction ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.feeLedgerService.Void(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Transaction voided"},
		Timestamp: time.Now(),
	})
}
