package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/skillpoint/institute-backend/internal/app/models/dto"
	"github.com/skillpoint/institute-backend/internal/app/services"
	"github.com/skillpoint/institute-backend/internal/middleware"
	"github.com/skillpoint/institute-backend/internal/pkg/filestorage"
	"github.com/skillpoint/institute-backend/internal/pkg/helpers"
)

// StudentController handles student enrollment records
type StudentController struct {
	studentService *services.StudentService
	fileStorage    filestorage.FileStorage
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService *services.StudentService, fileStorage filestorage.FileStorage) *StudentController {
	return &StudentController{
		studentService: studentService,
		fileStorage:    fileStorage,
	}
}

// Create admits a new student
// @Summary Admit a new student
// @Description Creates a student record; the enrollment number must be unique
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.CreateStudentRequest true "Admission form"
// @Success 201 {object} dto.APIResponse{data=models.Student} "Student created"
// @Failure 400 {object} dto.ErrorResponse "Invalid student data"
// @Failure 409 {object} dto.ErrorResponse "Enrollment number already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students [post]
func (c *StudentController) Create(ctx *gin.Context) {
	req := middleware.ValidatedBody[dto.CreateStudentRequest](ctx)

	student, err := c.studentService.Create(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      student,
		Timestamp: time.Now(),
	})
}

// List retrieves students newest first, paginated
// @Summary List students
// @Description Retrieves students newest first, one page at a time
// @Tags students
// @Produce json
// @Param page query int false "1-based page number"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse} "Students retrieved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students [get]
func (c *StudentController) List(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	students, pagination, err := c.studentService.List(ctx, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.PaginatedResponse{
			Items:      students,
			Pagination: pagination,
		},
		Timestamp: time.Now(),
	})
}

// Search performs a substring search on student name and enrollment number
// @Summary Search students
// @Description Case-insensitive substring match on name and enrollment number, capped at 10 results
// @Tags students
// @Produce json
// @Param q query string true "Search term"
// @Success 200 {object} dto.APIResponse{data=[]models.Student} "Matches retrieved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/search [get]
func (c *StudentController) Search(ctx *gin.Context) {
	students, err := c.studentService.Search(ctx, ctx.Query("q"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      students,
		Timestamp: time.Now(),
	})
}

// GetByID retrieves a student by ID
// @Summary Get student by ID
// @Tags students
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=models.Student} "Student retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id} [get]
func (c *StudentController) GetByID(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student ID")
		errorDetail = errorDetail.WithDetails("Student ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	student, err := c.studentService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      student,
		Timestamp: time.Now(),
	})
}

// Update applies profile changes to a student record
// @Summary Update a student
// @Tags students
// @Accept json
// @Produce json
// @Param id path int true "Student ID"
// @Param request body dto.UpdateStudentRequest true "Updated profile fields"
// @Success 200 {object} dto.APIResponse{data=models.Student} "Student updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id} [put]
func (c *StudentController) Update(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student ID")
		errorDetail = errorDetail.WithDetails("Student ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	req := middleware.ValidatedBody[dto.UpdateStudentRequest](ctx)

	student, err := c.studentService.Update(ctx, id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      student,
		Timestamp: time.Now(),
	})
}

// UploadPhoto stores a student photo and records its URL
// @Summary Upload student photo
// @Description Saves the uploaded photo and stores its URL on the student record
// @Tags students
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Student ID"
// @Param photo formData file true "Photo file"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Photo uploaded"
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id}/photo [post]
func (c *StudentController) UploadPhoto(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student ID")
		errorDetail = errorDetail.WithDetails("Student ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	fileHeader, err := ctx.FormFile("photo")
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Photo file is required")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	photoURL, err := c.fileStorage.SaveFileWithPath(fileHeader, "students")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.studentService.SetPhoto(ctx, id, photoURL); err != nil {
		// The record update failed; don't leave the file orphaned.
		_ = c.fileStorage.DeleteFile(photoURL)
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: photoURL},
		Timestamp: time.Now(),
	})
}

// Delete removes a student record
// @Summary Delete a student
// @Tags students
// @Produce json
// @Param id path int true "Student ID"
// @Success 204 "Student deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id} [delete]
func (c *StudentController) Delete(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student ID")
		errorDetail = errorDetail.WithDetails("Student ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.studentService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusNoContent, dto.APIResponse{
		Timestamp: time.Now(),
	})
}
