package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mfreitas/sistema-escolar/internal/app/models/dto"
	"github.com/mfreitas/sistema-escolar/internal/app/services"
	"github.com/mfreitas/sistema-escolar/internal/middleware"
	"github.com/mfreitas/sistema-escolar/internal/pkg/viewmeta"
)

// HomeController handles the dashboard
type HomeController struct {
	homeService services.HomeService
}

// NewHomeController creates a new HomeController
func NewHomeController(homeService services.HomeService) *HomeController {
	return &HomeController{
		homeService: homeService,
	}
}

// GetHome returns the dashboard counters
// @Summary Dashboard
// @Description Returns the active curso and aluno counts
// @Tags home
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.HomeResponse} "Dashboard retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router / [get]
func (c *HomeController) GetHome(ctx *gin.Context) {
	summary, err := c.homeService.GetSummary(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	view := viewmeta.New("Início", viewmeta.Current("Início"))
	ctx.JSON(http.StatusOK, dto.NewDataResponse(summary, view))
}
