package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mfreitas/sistema-escolar/internal/app/models"
	"github.com/mfreitas/sistema-escolar/internal/app/models/dto"
	"github.com/mfreitas/sistema-escolar/internal/app/repositories"
	"github.com/mfreitas/sistema-escolar/internal/app/services"
	"github.com/mfreitas/sistema-escolar/internal/middleware"
	"github.com/mfreitas/sistema-escolar/internal/pkg/viewmeta"
)

// AlunoController handles aluno-related operations
type AlunoController struct {
	alunoService services.AlunoService
}

// NewAlunoController creates a new AlunoController
func NewAlunoController(alunoService services.AlunoService) *AlunoController {
	return &AlunoController{
		alunoService: alunoService,
	}
}

// ListAlunos retrieves the active alunos
// @Summary List alunos
// @Description Retrieves the active alunos ordered by name, filtered by search, curso and status
// @Tags alunos
// @Produce json
// @Param search query string false "Case-insensitive substring match on name, email or enrollment number"
// @Param curso query int false "Exact curso filter"
// @Param status query string false "Exact status filter; unmatched values yield an empty list" Enums(active, inactive, unlinked, graduated)
// @Success 200 {object} dto.APIResponse{data=dto.AlunoListResponse} "Alunos retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid curso filter"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /alunos [get]
func (c *AlunoController) ListAlunos(ctx *gin.Context) {
	filter := repositories.AlunoFilter{
		Search: ctx.Query("search"),
	}

	if cursoStr := ctx.Query("curso"); cursoStr != "" {
		cursoID, err := strconv.ParseInt(cursoStr, 10, 64)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid curso filter")
			errorDetail = errorDetail.WithDetails("curso must be a valid number").WithField("curso")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		filter.CursoID = &cursoID
	}

	// Any status value flows into the query as-is; one that matches no row
	// simply produces an empty list
	filter.Status = models.AlunoStatus(ctx.Query("status"))

	list, err := c.alunoService.ListAlunos(ctx, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	view := viewmeta.New("Alunos",
		viewmeta.Crumb("Início", "/"),
		viewmeta.Current("Alunos"))
	ctx.JSON(http.StatusOK, dto.NewDataResponse(list, view))
}

// GetAluno retrieves an active aluno
// @Summary Get aluno by ID
// @Description Retrieves an active aluno with its curso
// @Tags alunos
// @Produce json
// @Param id path int true "Aluno ID"
// @Success 200 {object} dto.APIResponse{data=dto.AlunoDetailResponse} "Aluno retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid aluno ID"
// @Failure 404 {object} dto.ErrorResponse "Aluno not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /alunos/{id} [get]
func (c *AlunoController) GetAluno(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "aluno")
	if !ok {
		return
	}

	aluno, err := c.alunoService.GetAluno(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	view := viewmeta.New(aluno.Name,
		viewmeta.Crumb("Início", "/"),
		viewmeta.Crumb("Alunos", "/alunos"),
		viewmeta.Current(aluno.Name))
	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.AlunoDetailResponse{Aluno: aluno}, view))
}

// CreateAluno creates a new aluno
// @Summary Create an aluno
// @Description Creates a new aluno enrolled in an active curso
// @Tags alunos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateAlunoRequest true "Aluno information"
// @Success 201 {object} dto.APIResponse{data=models.Aluno} "Aluno created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Email or enrollment number already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /alunos [post]
func (c *AlunoController) CreateAluno(ctx *gin.Context) {
	var req dto.CreateAlunoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid aluno data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	aluno, err := c.alunoService.CreateAluno(ctx, &req, middleware.Principal(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := dto.NewMessageResponse(aluno, "Aluno criado com sucesso!")
	resp.Redirect = fmt.Sprintf("/alunos/%d", aluno.ID)
	ctx.JSON(http.StatusCreated, resp)
}

// UpdateAluno updates an existing aluno
// @Summary Update an aluno
// @Description Updates an active aluno with the provided information
// @Tags alunos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Aluno ID"
// @Param request body dto.UpdateAlunoRequest true "Updated aluno information"
// @Success 200 {object} dto.APIResponse{data=models.Aluno} "Aluno updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Aluno not found"
// @Failure 409 {object} dto.ErrorResponse "Email or enrollment number already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /alunos/{id} [put]
func (c *AlunoController) UpdateAluno(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "aluno")
	if !ok {
		return
	}

	var req dto.UpdateAlunoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid aluno data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	aluno, err := c.alunoService.UpdateAluno(ctx, id, &req, middleware.Principal(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := dto.NewMessageResponse(aluno, "Aluno atualizado com sucesso!")
	resp.Redirect = fmt.Sprintf("/alunos/%d", aluno.ID)
	ctx.JSON(http.StatusOK, resp)
}

// DeleteAluno soft-deletes an aluno
// @Summary Delete an aluno
// @Description Marks an active aluno inactive
// @Tags alunos
// @Produce json
// @Security BearerAuth
// @Param id path int true "Aluno ID"
// @Success 200 {object} dto.APIResponse "Aluno deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid aluno ID"
// @Failure 404 {object} dto.ErrorResponse "Aluno not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /alunos/{id} [delete]
func (c *AlunoController) DeleteAluno(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "aluno")
	if !ok {
		return
	}

	if err := c.alunoService.DeleteAluno(ctx, id, middleware.Principal(ctx)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := dto.NewMessageResponse(nil, "Aluno removido com sucesso!")
	resp.Redirect = "/alunos"
	ctx.JSON(http.StatusOK, resp)
}
