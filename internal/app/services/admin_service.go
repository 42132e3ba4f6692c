package services

import (
	"context"
	"time"

	"github.com/mfreitas/sistema-escolar/internal/app/models/dto"
	"github.com/mfreitas/sistema-escolar/internal/app/repositories"
)

// AdminService handles bulk console actions over cursos and alunos
type AdminService interface {
	// BulkSetCursosActive flips the active flag on every selected curso,
	// restoring soft-deleted rows when active is true
	BulkSetCursosActive(ctx context.Context, ids []int64, active bool, principal *int64) (*dto.BulkActionResponse, error)
	BulkSetAlunosActive(ctx context.Context, ids []int64, active bool, principal *int64) (*dto.BulkActionResponse, error)
	// PrepareEmail collects the non-empty addresses of the selected alunos
	// without sending anything
	PrepareEmail(ctx context.Context, ids []int64) (*dto.PrepareEmailResponse, error)
}

type adminService struct {
	cursoRepo repositories.CursoRepository
	alunoRepo repositories.AlunoRepository
}

// NewAdminService creates a new admin service
func NewAdminService(cursoRepo repositories.CursoRepository, alunoRepo repositories.AlunoRepository) AdminService {
	return &adminService{
		cursoRepo: cursoRepo,
		alunoRepo: alunoRepo,
	}
}

func (s *adminService) BulkSetCursosActive(ctx context.Context, ids []int64, active bool, principal *int64) (*dto.BulkActionResponse, error) {
	affected, err := s.cursoRepo.SetActive(ctx, ids, active, principal, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	return &dto.BulkActionResponse{Affected: affected}, nil
}

func (s *adminService) BulkSetAlunosActive(ctx context.Context, ids []int64, active bool, principal *int64) (*dto.BulkActionResponse, error) {
	affected, err := s.alunoRepo.SetActive(ctx, ids, active, principal, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	return &dto.BulkActionResponse{Affected: affected}, nil
}

func (s *adminService) PrepareEmail(ctx context.Context, ids []int64) (*dto.PrepareEmailResponse, error) {
	emails, err := s.alunoRepo.CollectEmails(ctx, ids)
	if err != nil {
		return nil, err
	}
	return &dto.PrepareEmailResponse{Emails: emails, Count: len(emails)}, nil
}
