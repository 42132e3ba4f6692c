package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mfreitas/sistema-escolar/internal/app/controllers"
	"github.com/mfreitas/sistema-escolar/internal/app/models/dto"
	"github.com/mfreitas/sistema-escolar/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	homeController *controllers.HomeController,
	cursoController *controllers.CursoController,
	alunoController *controllers.AlunoController,
	adminController *controllers.AdminController,
	authController *controllers.AuthController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// Anonymous requests pass through; a present token still identifies the
	// caller so mutations get their audit stamp
	router.Use(authMiddleware.Identify())

	router.GET("/", homeController.GetHome)

	cursos := router.Group("/cursos")
	{
		cursos.GET("", cursoController.ListCursos)
		cursos.GET("/:id", cursoController.GetCurso)
		cursos.POST("", cursoController.CreateCurso)
		cursos.PUT("/:id", cursoController.UpdateCurso)
		cursos.DELETE("/:id", cursoController.DeleteCurso)
	}

	alunos := router.Group("/alunos")
	{
		alunos.GET("", alunoController.ListAlunos)
		alunos.GET("/:id", alunoController.GetAluno)
		alunos.POST("", alunoController.CreateAluno)
		alunos.PUT("/:id", alunoController.UpdateAluno)
		alunos.DELETE("/:id", alunoController.DeleteAluno)
	}

	auth := router.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	users := router.Group("/users")
	users.Use(authMiddleware.RequireAuth())
	{
		users.DELETE("/me", authController.DeleteAccount)
	}

	// Staff console: active-inclusive lookups and bulk actions
	admin := router.Group("/admin")
	admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireStaff())
	{
		admin.GET("/cursos/:id", adminController.GetCurso)
		admin.POST("/cursos/bulk-activate", adminController.BulkActivateCursos)
		admin.POST("/cursos/bulk-deactivate", adminController.BulkDeactivateCursos)

		admin.GET("/alunos/:id", adminController.GetAluno)
		admin.POST("/alunos/bulk-activate", adminController.BulkActivateAlunos)
		admin.POST("/alunos/bulk-deactivate", adminController.BulkDeactivateAlunos)
		admin.POST("/alunos/prepare-email", adminController.PrepareEmail)
	}

	// Health check endpoint (public)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Success:   true,
			Data:      gin.H{"status": "ok"},
			Timestamp: time.Now(),
		})
	})
}
