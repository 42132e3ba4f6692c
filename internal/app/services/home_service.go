package services

import (
	"context"

	"github.com/mfreitas/sistema-escolar/internal/app/models/dto"
	"github.com/mfreitas/sistema-escolar/internal/app/repositories"
)

// HomeService produces the dashboard counters
type HomeService interface {
	// GetSummary recomputes the active record counts on every call
	GetSummary(ctx context.Context) (*dto.HomeResponse, error)
}

type homeService struct {
	cursoRepo repositories.CursoRepository
	alunoRepo repositories.AlunoRepository
}

// NewHomeService creates a new home service
func NewHomeService(cursoRepo repositories.CursoRepository, alunoRepo repositories.AlunoRepository) HomeService {
	return &homeService{
		cursoRepo: cursoRepo,
		alunoRepo: alunoRepo,
	}
}

func (s *homeService) GetSummary(ctx context.Context) (*dto.HomeResponse, error) {
	totalCursos, err := s.cursoRepo.CountActive(ctx)
	if err != nil {
		return nil, err
	}

	totalAlunos, err := s.alunoRepo.CountActive(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.HomeResponse{
		TotalCursos: totalCursos,
		TotalAlunos: totalAlunos,
	}, nil
}
