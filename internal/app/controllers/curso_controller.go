package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mfreitas/sistema-escolar/internal/app/models/dto"
	"github.com/mfreitas/sistema-escolar/internal/app/services"
	"github.com/mfreitas/sistema-escolar/internal/middleware"
	"github.com/mfreitas/sistema-escolar/internal/pkg/viewmeta"
)

// CursoController handles curso-related operations
type CursoController struct {
	cursoService services.CursoService
}

// NewCursoController creates a new CursoController
func NewCursoController(cursoService services.CursoService) *CursoController {
	return &CursoController{
		cursoService: cursoService,
	}
}

// ListCursos retrieves the active cursos
// @Summary List cursos
// @Description Retrieves the active cursos ordered by name, optionally filtered by search
// @Tags cursos
// @Produce json
// @Param search query string false "Case-insensitive substring match on name or description"
// @Success 200 {object} dto.APIResponse{data=dto.CursoListResponse} "Cursos retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /cursos [get]
func (c *CursoController) ListCursos(ctx *gin.Context) {
	search := ctx.Query("search")

	cursos, err := c.cursoService.ListCursos(ctx, search)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	view := viewmeta.New("Cursos",
		viewmeta.Crumb("Início", "/"),
		viewmeta.Current("Cursos"))
	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.CursoListResponse{
		Cursos: cursos,
		Search: search,
	}, view))
}

// GetCurso retrieves a curso with its active alunos
// @Summary Get curso by ID
// @Description Retrieves an active curso and its active alunos
// @Tags cursos
// @Produce json
// @Param id path int true "Curso ID"
// @Success 200 {object} dto.APIResponse{data=dto.CursoDetailResponse} "Curso retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid curso ID"
// @Failure 404 {object} dto.ErrorResponse "Curso not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /cursos/{id} [get]
func (c *CursoController) GetCurso(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "curso")
	if !ok {
		return
	}

	detail, err := c.cursoService.GetCurso(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	view := viewmeta.New(detail.Curso.Name,
		viewmeta.Crumb("Início", "/"),
		viewmeta.Crumb("Cursos", "/cursos"),
		viewmeta.Current(detail.Curso.Name))
	ctx.JSON(http.StatusOK, dto.NewDataResponse(detail, view))
}

// CreateCurso creates a new curso
// @Summary Create a curso
// @Description Creates a new curso with the provided information
// @Tags cursos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCursoRequest true "Curso information"
// @Success 201 {object} dto.APIResponse{data=models.Curso} "Curso created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Curso code already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /cursos [post]
func (c *CursoController) CreateCurso(ctx *gin.Context) {
	var req dto.CreateCursoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid curso data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	curso, err := c.cursoService.CreateCurso(ctx, &req, middleware.Principal(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := dto.NewMessageResponse(curso, "Curso criado com sucesso!")
	resp.Redirect = fmt.Sprintf("/cursos/%d", curso.ID)
	ctx.JSON(http.StatusCreated, resp)
}

// UpdateCurso updates an existing curso
// @Summary Update a curso
// @Description Updates an active curso with the provided information
// @Tags cursos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Curso ID"
// @Param request body dto.UpdateCursoRequest true "Updated curso information"
// @Success 200 {object} dto.APIResponse{data=models.Curso} "Curso updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Curso not found"
// @Failure 409 {object} dto.ErrorResponse "Curso code already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /cursos/{id} [put]
func (c *CursoController) UpdateCurso(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "curso")
	if !ok {
		return
	}

	var req dto.UpdateCursoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid curso data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	curso, err := c.cursoService.UpdateCurso(ctx, id, &req, middleware.Principal(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := dto.NewMessageResponse(curso, "Curso atualizado com sucesso!")
	resp.Redirect = fmt.Sprintf("/cursos/%d", curso.ID)
	ctx.JSON(http.StatusOK, resp)
}

// DeleteCurso soft-deletes a curso
// @Summary Delete a curso
// @Description Marks an active curso inactive; its alunos keep their rows
// @Tags cursos
// @Produce json
// @Security BearerAuth
// @Param id path int true "Curso ID"
// @Success 200 {object} dto.APIResponse "Curso deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid curso ID"
// @Failure 404 {object} dto.ErrorResponse "Curso not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /cursos/{id} [delete]
func (c *CursoController) DeleteCurso(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "curso")
	if !ok {
		return
	}

	if err := c.cursoService.DeleteCurso(ctx, id, middleware.Principal(ctx)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := dto.NewMessageResponse(nil, "Curso removido com sucesso!")
	resp.Redirect = "/cursos"
	ctx.JSON(http.StatusOK, resp)
}

// parseIDParam parses the :id path parameter, writing the 400 response itself
func parseIDParam(ctx *gin.Context, resource string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+resource+" ID")
		errorDetail = errorDetail.WithDetails("ID must be a positive number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}
