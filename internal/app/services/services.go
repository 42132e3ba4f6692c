package services

import (
	"github.com/mfreitas/sistema-escolar/internal/app/repositories"
	"github.com/mfreitas/sistema-escolar/internal/pkg/auth"
)

// Services holds all the service instances
type Services struct {
	CursoService CursoService
	AlunoService AlunoService
	AdminService AdminService
	HomeService  HomeService
	AuthService  AuthService
}

// NewServices initializes all services
func NewServices(repos *repositories.Repositories, jwtService *auth.JWTService) *Services {
	return &Services{
		CursoService: NewCursoService(repos.CursoRepository, repos.AlunoRepository),
		AlunoService: NewAlunoService(repos.AlunoRepository, repos.CursoRepository),
		AdminService: NewAdminService(repos.CursoRepository, repos.AlunoRepository),
		HomeService:  NewHomeService(repos.CursoRepository, repos.AlunoRepository),
		AuthService:  NewAuthService(repos.UserRepository, jwtService),
	}
}
