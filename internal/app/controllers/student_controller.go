package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tolga/acadapi/internal/app/models/dto"
	"github.com/tolga/acadapi/internal/app/services"
	"github.com/tolga/acadapi/internal/middleware"
	"github.com/tolga/acadapi/internal/pkg/helpers"
)

// StudentController handles student operations nested under an institution
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

// CreateStudent creates a student under an institution. The parent id comes
// from the path only.
// @Summary Create a student
// @Description Creates a student under an existing academic institution
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Institution ID"
// @Param request body dto.CreateStudentRequest true "Student information"
// @Success 201 {object} dto.StudentResponse "Student created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Institution not found"
// @Router /academic_institutions/{id}/students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	institutionID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.CreateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(err))
		return
	}

	student, err := c.studentService.CreateStudent(ctx.Request.Context(), institutionID, req.Name)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewStudentResponse(student))
}

// ListStudents retrieves a page of an institution's students
// @Summary List students of an institution
// @Description Retrieves an institution's students with offset/limit pagination
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path int true "Institution ID"
// @Param offset query int false "Rows to skip" default(0) minimum(0)
// @Param limit query int false "Page size" default(100) maximum(100)
// @Success 200 {object} dto.StudentListResponse "Students retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid institution ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Superuser privileges required"
// @Failure 404 {object} dto.ErrorResponse "Institution not found"
// @Router /academic_institutions/{id}/students [get]
func (c *StudentController) ListStudents(ctx *gin.Context) {
	institutionID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	offset, limit := helpers.ParseOffsetLimit(ctx)

	students, count, err := c.studentService.ListStudents(ctx.Request.Context(), institutionID, offset, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	data := make([]dto.StudentResponse, 0, len(students))
	for _, student := range students {
		data = append(data, dto.NewStudentResponse(student))
	}

	ctx.JSON(http.StatusOK, dto.StudentListResponse{Data: data, Count: count})
}

// GetStudentByID retrieves a student with its institution nested
// @Summary Get student by ID
// @Description Retrieves a student together with its academic institution
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path int true "Institution ID"
// @Param studentId path int true "Student ID"
// @Success 200 {object} dto.StudentWithInstitutionResponse "Student retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid path parameters"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Superuser privileges required"
// @Failure 404 {object} dto.ErrorResponse "Institution or student not found"
// @Router /academic_institutions/{id}/students/{studentId} [get]
func (c *StudentController) GetStudentByID(ctx *gin.Context) {
	institutionID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	studentID, ok := parseIDParam(ctx, "studentId")
	if !ok {
		return
	}

	student, err := c.studentService.GetStudentWithInstitution(ctx.Request.Context(), institutionID, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	response := dto.StudentWithInstitutionResponse{
		StudentResponse:     dto.NewStudentResponse(student),
		AcademicInstitution: dto.NewInstitutionResponse(student.AcademicInstitution),
	}
	ctx.JSON(http.StatusOK, response)
}
