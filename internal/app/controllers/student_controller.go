package controllers

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/srkad/placement-portal/internal/app/models/dto"
	"github.com/srkad/placement-portal/internal/app/services"
	"github.com/srkad/placement-portal/internal/middleware"
	"github.com/srkad/placement-portal/internal/pkg/apperrors"
)

// StudentController handles student registration, search and CRUD endpoints
type StudentController struct {
	studentService *services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService *services.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

// parseID reads the :id path parameter. A non-numeric id cannot match any
// record, so it reports the same way as an unknown one.
func parseID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.ErrStudentNotFound)
		return 0, false
	}
	return id, true
}

// GetAll lists all students
// @Summary List students
// @Description Retrieves all registered students, newest first
// @Tags students
// @Produce json
// @Success 200 {array} models.Student
// @Failure 500 {object} dto.ErrorResponse
// @Router /students [get]
func (c *StudentController) GetAll(ctx *gin.Context) {
	students, err := c.studentService.GetAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, students)
}

// GetByID retrieves one student
// @Summary Get student by ID
// @Tags students
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} models.Student
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /students/{id} [get]
func (c *StudentController) GetByID(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	student, err := c.studentService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, student)
}

// Register handles the registration form
// @Summary Register a student
// @Description Registers a student from the multipart form, with an optional PDF résumé (field "resume", max 10 MiB)
// @Tags students
// @Accept mpfd
// @Produce json
// @Success 201 {object} dto.RegisterStudentResponse
// @Failure 400 {object} dto.ErrorResponse "Missing fields or bad upload"
// @Failure 409 {object} dto.ErrorResponse "Duplicate USN or email"
// @Failure 500 {object} dto.ErrorResponse
// @Router /students [post]
func (c *StudentController) Register(ctx *gin.Context) {
	var req dto.StudentRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid registration data"))
		return
	}

	var resume *multipart.FileHeader
	if file, err := ctx.FormFile("resume"); err == nil {
		resume = file
	} else if !errors.Is(err, http.ErrMissingFile) {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid resume upload"))
		return
	}

	student, err := c.studentService.Register(ctx, req, resume)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.RegisterStudentResponse{
		Message:    "Student registered successfully",
		StudentID:  student.ID,
		ResumePath: student.ResumePath,
	})
}

// Update rewrites a student record
// @Summary Update a student
// @Tags students
// @Accept json
// @Produce json
// @Param id path int true "Student ID"
// @Param request body dto.StudentRequest true "Full student record"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /students/{id} [put]
func (c *StudentController) Update(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var req dto.StudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid student data"))
		return
	}

	if _, err := c.studentService.Update(ctx, id, req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Student updated successfully"})
}

// Delete removes a student
// @Summary Delete a student
// @Tags students
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /students/{id} [delete]
func (c *StudentController) Delete(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.studentService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Student deleted successfully"})
}

// GetByDepartmentAndBatch lists one department's batch
// @Summary List students by department and batch
// @Tags students
// @Produce json
// @Param dept path string true "Department"
// @Param batch path string true "Batch year"
// @Success 200 {array} models.Student
// @Failure 500 {object} dto.ErrorResponse
// @Router /students/department/{dept}/batch/{batch} [get]
func (c *StudentController) GetByDepartmentAndBatch(ctx *gin.Context) {
	students, err := c.studentService.GetByDepartmentAndBatch(ctx, ctx.Param("dept"), ctx.Param("batch"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, students)
}

// Search filters students by skills and/or domain
// @Summary Search students
// @Description Matches skill tokens and the domain term as case-insensitive substrings; results ordered by first name
// @Tags students
// @Produce json
// @Param skills query string false "Free-text skills, split on commas/whitespace"
// @Param domain query string false "Specialization substring"
// @Success 200 {array} models.Student
// @Failure 400 {object} dto.ErrorResponse "Neither parameter provided"
// @Failure 500 {object} dto.ErrorResponse
// @Router /students/search [get]
func (c *StudentController) Search(ctx *gin.Context) {
	students, err := c.studentService.Search(ctx, ctx.Query("skills"), ctx.Query("domain"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, students)
}
