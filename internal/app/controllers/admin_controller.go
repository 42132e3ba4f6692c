package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mfreitas/sistema-escolar/internal/app/models/dto"
	"github.com/mfreitas/sistema-escolar/internal/app/services"
	"github.com/mfreitas/sistema-escolar/internal/middleware"
)

// AdminController handles the staff console bulk actions
type AdminController struct {
	adminService services.AdminService
	cursoService services.CursoService
	alunoService services.AlunoService
}

// NewAdminController creates a new AdminController
func NewAdminController(adminService services.AdminService, cursoService services.CursoService, alunoService services.AlunoService) *AdminController {
	return &AdminController{
		adminService: adminService,
		cursoService: cursoService,
		alunoService: alunoService,
	}
}

// BulkActivateCursos restores the selected cursos
// @Summary Bulk-activate cursos
// @Description Sets the active flag on every selected curso, restoring soft-deleted rows
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.BulkActionRequest true "Curso ids"
// @Success 200 {object} dto.APIResponse{data=dto.BulkActionResponse} "Cursos activated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/cursos/bulk-activate [post]
func (c *AdminController) BulkActivateCursos(ctx *gin.Context) {
	c.bulkSetCursos(ctx, true, "%d curso(s) ativado(s) com sucesso.")
}

// BulkDeactivateCursos soft-deletes the selected cursos
// @Summary Bulk-deactivate cursos
// @Description Clears the active flag on every selected curso
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.BulkActionRequest true "Curso ids"
// @Success 200 {object} dto.APIResponse{data=dto.BulkActionResponse} "Cursos deactivated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/cursos/bulk-deactivate [post]
func (c *AdminController) BulkDeactivateCursos(ctx *gin.Context) {
	c.bulkSetCursos(ctx, false, "%d curso(s) desativado(s) com sucesso.")
}

// BulkActivateAlunos restores the selected alunos
// @Summary Bulk-activate alunos
// @Description Sets the active flag on every selected aluno, restoring soft-deleted rows
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.BulkActionRequest true "Aluno ids"
// @Success 200 {object} dto.APIResponse{data=dto.BulkActionResponse} "Alunos activated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/alunos/bulk-activate [post]
func (c *AdminController) BulkActivateAlunos(ctx *gin.Context) {
	c.bulkSetAlunos(ctx, true, "%d aluno(s) ativado(s) com sucesso.")
}

// BulkDeactivateAlunos soft-deletes the selected alunos
// @Summary Bulk-deactivate alunos
// @Description Clears the active flag on every selected aluno
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.BulkActionRequest true "Aluno ids"
// @Success 200 {object} dto.APIResponse{data=dto.BulkActionResponse} "Alunos deactivated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/alunos/bulk-deactivate [post]
func (c *AdminController) BulkDeactivateAlunos(ctx *gin.Context) {
	c.bulkSetAlunos(ctx, false, "%d aluno(s) desativado(s) com sucesso.")
}

// PrepareEmail collects the addresses of the selected alunos
// @Summary Prepare email
// @Description Collects the non-empty email of every selected aluno without sending anything
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.BulkActionRequest true "Aluno ids"
// @Success 200 {object} dto.APIResponse{data=dto.PrepareEmailResponse} "Emails collected successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/alunos/prepare-email [post]
func (c *AdminController) PrepareEmail(ctx *gin.Context) {
	req, ok := bindBulkRequest(ctx)
	if !ok {
		return
	}

	result, err := c.adminService.PrepareEmail(ctx, req.IDs)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := dto.NewMessageResponse(result, "")
	if result.Count == 0 {
		// Empty selection is a warning, not a failure
		resp.Warning = "Nenhum email encontrado nos alunos selecionados."
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetCurso looks a curso up regardless of the active flag
// @Summary Get curso (console)
// @Description Retrieves a curso including soft-deleted rows
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Curso ID"
// @Success 200 {object} dto.APIResponse{data=models.Curso} "Curso retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid curso ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Curso not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/cursos/{id} [get]
func (c *AdminController) GetCurso(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "curso")
	if !ok {
		return
	}

	curso, err := c.cursoService.GetCursoAdmin(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse(curso, ""))
}

// GetAluno looks an aluno up regardless of the active flag
// @Summary Get aluno (console)
// @Description Retrieves an aluno including soft-deleted rows
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Aluno ID"
// @Success 200 {object} dto.APIResponse{data=models.Aluno} "Aluno retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid aluno ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Aluno not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/alunos/{id} [get]
func (c *AdminController) GetAluno(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "aluno")
	if !ok {
		return
	}

	aluno, err := c.alunoService.GetAlunoAdmin(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse(aluno, ""))
}

func (c *AdminController) bulkSetCursos(ctx *gin.Context, active bool, messageFormat string) {
	req, ok := bindBulkRequest(ctx)
	if !ok {
		return
	}

	result, err := c.adminService.BulkSetCursosActive(ctx, req.IDs, active, middleware.Principal(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse(result, fmt.Sprintf(messageFormat, result.Affected)))
}

func (c *AdminController) bulkSetAlunos(ctx *gin.Context, active bool, messageFormat string) {
	req, ok := bindBulkRequest(ctx)
	if !ok {
		return
	}

	result, err := c.adminService.BulkSetAlunosActive(ctx, req.IDs, active, middleware.Principal(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse(result, fmt.Sprintf(messageFormat, result.Affected)))
}

func bindBulkRequest(ctx *gin.Context) (*dto.BulkActionRequest, bool) {
	var req dto.BulkActionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid selection")
		errorDetail = errorDetail.WithDetails(err.Error()).WithField("ids")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return nil, false
	}
	return &req, true
}
