package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mfreitas/sistema-escolar/internal/app/models"
	"github.com/mfreitas/sistema-escolar/internal/app/models/dto"
	"github.com/mfreitas/sistema-escolar/internal/app/repositories"
	"github.com/mfreitas/sistema-escolar/internal/pkg/apperrors"
	"github.com/mfreitas/sistema-escolar/internal/pkg/dberrors"
)

// CursoService handles curso business logic
type CursoService interface {
	// ListCursos returns the active cursos, optionally narrowed by search
	ListCursos(ctx context.Context, search string) ([]models.Curso, error)
	// GetCurso returns an active curso with its active alunos
	GetCurso(ctx context.Context, id int64) (*dto.CursoDetailResponse, error)
	// GetCursoAdmin returns the curso regardless of the active flag
	GetCursoAdmin(ctx context.Context, id int64) (*models.Curso, error)
	CreateCurso(ctx context.Context, req *dto.CreateCursoRequest, principal *int64) (*models.Curso, error)
	UpdateCurso(ctx context.Context, id int64, req *dto.UpdateCursoRequest, principal *int64) (*models.Curso, error)
	// DeleteCurso soft-deletes the curso; its alunos keep their rows
	DeleteCurso(ctx context.Context, id int64, principal *int64) error
}

type cursoService struct {
	cursoRepo repositories.CursoRepository
	alunoRepo repositories.AlunoRepository
}

// NewCursoService creates a new curso service
func NewCursoService(cursoRepo repositories.CursoRepository, alunoRepo repositories.AlunoRepository) CursoService {
	return &cursoService{
		cursoRepo: cursoRepo,
		alunoRepo: alunoRepo,
	}
}

func (s *cursoService) ListCursos(ctx context.Context, search string) ([]models.Curso, error) {
	return s.cursoRepo.List(ctx, search)
}

func (s *cursoService) GetCurso(ctx context.Context, id int64) (*dto.CursoDetailResponse, error) {
	curso, err := s.cursoRepo.GetActiveByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if curso == nil {
		return nil, apperrors.ErrCursoNotFound
	}

	alunos, err := s.alunoRepo.ListActiveByCurso(ctx, id)
	if err != nil {
		return nil, err
	}

	return &dto.CursoDetailResponse{Curso: curso, Alunos: alunos}, nil
}

func (s *cursoService) GetCursoAdmin(ctx context.Context, id int64) (*models.Curso, error) {
	curso, err := s.cursoRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if curso == nil {
		return nil, apperrors.ErrCursoNotFound
	}
	return curso, nil
}

func (s *cursoService) CreateCurso(ctx context.Context, req *dto.CreateCursoRequest, principal *int64) (*models.Curso, error) {
	now := time.Now().UTC()
	curso := &models.Curso{
		ExternalID:      uuid.New(),
		Name:            req.Name,
		Code:            req.Code,
		CoordinatorName: req.CoordinatorName,
		Description:     req.Description,
		CreditHours:     req.CreditHours,
		Active:          true,
		CreatedAt:       now,
		UpdatedAt:       now,
		CreatedBy:       principal,
		UpdatedBy:       principal,
	}

	if err := s.cursoRepo.Create(ctx, curso); err != nil {
		if dberrors.IsDuplicateConstraintError(err, repositories.ConstraintCursoCode) {
			return nil, apperrors.ErrCursoCodeExists
		}
		return nil, err
	}

	return curso, nil
}

func (s *cursoService) UpdateCurso(ctx context.Context, id int64, req *dto.UpdateCursoRequest, principal *int64) (*models.Curso, error) {
	curso, err := s.cursoRepo.GetActiveByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if curso == nil {
		return nil, apperrors.ErrCursoNotFound
	}

	curso.Name = req.Name
	curso.Code = req.Code
	curso.CoordinatorName = req.CoordinatorName
	curso.Description = req.Description
	curso.CreditHours = req.CreditHours
	curso.UpdatedAt = time.Now().UTC()
	curso.UpdatedBy = principal

	affected, err := s.cursoRepo.Update(ctx, curso)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, repositories.ConstraintCursoCode) {
			return nil, apperrors.ErrCursoCodeExists
		}
		return nil, err
	}
	if affected == 0 {
		// Soft-deleted between the read and the write
		return nil, apperrors.ErrCursoNotFound
	}

	return curso, nil
}

func (s *cursoService) DeleteCurso(ctx context.Context, id int64, principal *int64) error {
	affected, err := s.cursoRepo.SoftDelete(ctx, id, principal, time.Now().UTC())
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperrors.ErrCursoNotFound
	}
	return nil
}
