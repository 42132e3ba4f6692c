package controllers

import (
	"context"

	"github.com/mfreitas/sistema-escolar/internal/app/models"
	"github.com/mfreitas/sistema-escolar/internal/app/models/dto"
	"github.com/mfreitas/sistema-escolar/internal/app/repositories"
)

type stubCursoService struct {
	cursos     []models.Curso
	detail     *dto.CursoDetailResponse
	created    *models.Curso
	updated    *models.Curso
	getErr     error
	createErr  error
	updateErr  error
	deleteErr  error
	lastSearch string
	deletedID  int64
}

func (s *stubCursoService) ListCursos(_ context.Context, search string) ([]models.Curso, error) {
	s.lastSearch = search
	return s.cursos, nil
}

func (s *stubCursoService) GetCurso(_ context.Context, id int64) (*dto.CursoDetailResponse, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	if s.detail != nil {
		return s.detail, nil
	}
	return &dto.CursoDetailResponse{Curso: &models.Curso{ID: id, Name: "Curso"}}, nil
}

func (s *stubCursoService) GetCursoAdmin(_ context.Context, id int64) (*models.Curso, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return &models.Curso{ID: id}, nil
}

func (s *stubCursoService) CreateCurso(_ context.Context, _ *dto.CreateCursoRequest, _ *int64) (*models.Curso, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	return s.created, nil
}

func (s *stubCursoService) UpdateCurso(_ context.Context, _ int64, _ *dto.UpdateCursoRequest, _ *int64) (*models.Curso, error) {
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	return s.updated, nil
}

func (s *stubCursoService) DeleteCurso(_ context.Context, id int64, _ *int64) error {
	s.deletedID = id
	return s.deleteErr
}

type stubAdminService struct {
	bulkResult   *dto.BulkActionResponse
	emailResult  *dto.PrepareEmailResponse
	lastIDs      []int64
	lastActive   bool
	lastEntity   string
	prepareErr   error
	bulkErr      error
	lastStampers []*int64
}

func (s *stubAdminService) BulkSetCursosActive(_ context.Context, ids []int64, active bool, principal *int64) (*dto.BulkActionResponse, error) {
	s.lastIDs = ids
	s.lastActive = active
	s.lastEntity = "cursos"
	s.lastStampers = append(s.lastStampers, principal)
	if s.bulkErr != nil {
		return nil, s.bulkErr
	}
	return s.bulkResult, nil
}

func (s *stubAdminService) BulkSetAlunosActive(_ context.Context, ids []int64, active bool, principal *int64) (*dto.BulkActionResponse, error) {
	s.lastIDs = ids
	s.lastActive = active
	s.lastEntity = "alunos"
	s.lastStampers = append(s.lastStampers, principal)
	if s.bulkErr != nil {
		return nil, s.bulkErr
	}
	return s.bulkResult, nil
}

func (s *stubAdminService) PrepareEmail(_ context.Context, ids []int64) (*dto.PrepareEmailResponse, error) {
	s.lastIDs = ids
	if s.prepareErr != nil {
		return nil, s.prepareErr
	}
	return s.emailResult, nil
}

type stubAlunoService struct {
	list       *dto.AlunoListResponse
	aluno      *models.Aluno
	getErr     error
	lastFilter repositories.AlunoFilter
}

func (s *stubAlunoService) ListAlunos(_ context.Context, filter repositories.AlunoFilter) (*dto.AlunoListResponse, error) {
	s.lastFilter = filter
	if s.list != nil {
		return s.list, nil
	}
	return &dto.AlunoListResponse{Search: filter.Search}, nil
}

func (s *stubAlunoService) GetAluno(_ context.Context, id int64) (*models.Aluno, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	if s.aluno != nil {
		return s.aluno, nil
	}
	return &models.Aluno{ID: id, Name: "Aluno"}, nil
}

func (s *stubAlunoService) GetAlunoAdmin(_ context.Context, id int64) (*models.Aluno, error) {
	return s.GetAluno(nil, id)
}

func (s *stubAlunoService) CreateAluno(_ context.Context, _ *dto.CreateAlunoRequest, _ *int64) (*models.Aluno, error) {
	return s.aluno, nil
}

func (s *stubAlunoService) UpdateAluno(_ context.Context, _ int64, _ *dto.UpdateAlunoRequest, _ *int64) (*models.Aluno, error) {
	return s.aluno, nil
}

func (s *stubAlunoService) DeleteAluno(_ context.Context, _ int64, _ *int64) error {
	return nil
}
