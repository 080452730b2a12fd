package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tolga/acadapi/internal/app/models/dto"
	"github.com/tolga/acadapi/internal/app/services"
	"github.com/tolga/acadapi/internal/middleware"
	"github.com/tolga/acadapi/internal/pkg/helpers"
)

// InstitutionController handles academic institution operations
type InstitutionController struct {
	institutionService services.InstitutionService
}

// NewInstitutionController creates a new InstitutionController
func NewInstitutionController(institutionService services.InstitutionService) *InstitutionController {
	return &InstitutionController{
		institutionService: institutionService,
	}
}

// parseIDParam parses a path parameter as an int64 id
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		ctx.JSON(http.StatusBadRequest,
			dto.NewErrorResponse(dto.ErrorCodeValidationFailed, "Invalid "+name+" path parameter"))
		return 0, false
	}
	return id, true
}

// CreateInstitution handles institution creation
// @Summary Create a new academic institution
// @Description Creates a new academic institution
// @Tags academic institutions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateInstitutionRequest true "Institution information"
// @Success 201 {object} dto.InstitutionResponse "Institution created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Superuser privileges required"
// @Router /academic_institutions [post]
func (c *InstitutionController) CreateInstitution(ctx *gin.Context) {
	var req dto.CreateInstitutionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(err))
		return
	}

	institution, err := c.institutionService.CreateInstitution(ctx.Request.Context(), req.Name)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewInstitutionResponse(institution))
}

// ListInstitutions retrieves a page of institutions
// @Summary List academic institutions
// @Description Retrieves institutions with offset/limit pagination
// @Tags academic institutions
// @Produce json
// @Security BearerAuth
// @Param offset query int false "Rows to skip" default(0) minimum(0)
// @Param limit query int false "Page size" default(100) maximum(100)
// @Success 200 {object} dto.InstitutionListResponse "Institutions retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Superuser privileges required"
// @Router /academic_institutions [get]
func (c *InstitutionController) ListInstitutions(ctx *gin.Context) {
	offset, limit := helpers.ParseOffsetLimit(ctx)

	institutions, count, err := c.institutionService.ListInstitutions(ctx.Request.Context(), offset, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	data := make([]dto.InstitutionResponse, 0, len(institutions))
	for _, institution := range institutions {
		data = append(data, dto.NewInstitutionResponse(institution))
	}

	ctx.JSON(http.StatusOK, dto.InstitutionListResponse{Data: data, Count: count})
}

// GetInstitutionByID retrieves an institution with its students
// @Summary Get academic institution by ID
// @Description Retrieves an institution together with its students
// @Tags academic institutions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Institution ID"
// @Success 200 {object} dto.InstitutionWithStudentsResponse "Institution retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid institution ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Superuser privileges required"
// @Failure 404 {object} dto.ErrorResponse "Institution not found"
// @Router /academic_institutions/{id} [get]
func (c *InstitutionController) GetInstitutionByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	institution, err := c.institutionService.GetInstitutionWithStudents(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewInstitutionWithStudentsResponse(institution))
}

// DeleteInstitution deletes an institution and, through the store-level
// cascade, its students.
// @Summary Delete an academic institution
// @Description Deletes an institution; its students are removed by cascade
// @Tags academic institutions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Institution ID"
// @Success 204 "Institution deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid institution ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Superuser privileges required"
// @Failure 404 {object} dto.ErrorResponse "Institution not found"
// @Router /academic_institutions/{id} [delete]
func (c *InstitutionController) DeleteInstitution(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.institutionService.DeleteInstitution(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
