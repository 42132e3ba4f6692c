package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/mfreitas/sistema-escolar/internal/app/models"
	"github.com/mfreitas/sistema-escolar/internal/app/models/dto"
	"github.com/mfreitas/sistema-escolar/internal/app/repositories"
	"github.com/mfreitas/sistema-escolar/internal/pkg/apperrors"
	"github.com/mfreitas/sistema-escolar/internal/pkg/dberrors"
)

const birthDateLayout = "2006-01-02"

// AlunoService handles aluno business logic
type AlunoService interface {
	// ListAlunos returns the active alunos matching the filter, plus the
	// option lists needed to render the filter controls
	ListAlunos(ctx context.Context, filter repositories.AlunoFilter) (*dto.AlunoListResponse, error)
	GetAluno(ctx context.Context, id int64) (*models.Aluno, error)
	// GetAlunoAdmin returns the aluno regardless of the active flag
	GetAlunoAdmin(ctx context.Context, id int64) (*models.Aluno, error)
	CreateAluno(ctx context.Context, req *dto.CreateAlunoRequest, principal *int64) (*models.Aluno, error)
	UpdateAluno(ctx context.Context, id int64, req *dto.UpdateAlunoRequest, principal *int64) (*models.Aluno, error)
	DeleteAluno(ctx context.Context, id int64, principal *int64) error
}

type alunoService struct {
	alunoRepo repositories.AlunoRepository
	cursoRepo repositories.CursoRepository
}

// NewAlunoService creates a new aluno service
func NewAlunoService(alunoRepo repositories.AlunoRepository, cursoRepo repositories.CursoRepository) AlunoService {
	return &alunoService{
		alunoRepo: alunoRepo,
		cursoRepo: cursoRepo,
	}
}

func (s *alunoService) ListAlunos(ctx context.Context, filter repositories.AlunoFilter) (*dto.AlunoListResponse, error) {
	alunos, err := s.alunoRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	cursos, err := s.cursoRepo.List(ctx, "")
	if err != nil {
		return nil, err
	}

	resp := &dto.AlunoListResponse{
		Alunos:        alunos,
		Search:        filter.Search,
		Cursos:        dto.NewCursoOptions(cursos),
		StatusChoices: dto.NewStatusChoices(),
	}
	if filter.CursoID != nil {
		resp.SelectedCurso = strconv.FormatInt(*filter.CursoID, 10)
	}
	resp.SelectedStatus = string(filter.Status)

	return resp, nil
}

func (s *alunoService) GetAluno(ctx context.Context, id int64) (*models.Aluno, error) {
	aluno, err := s.alunoRepo.GetActiveByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if aluno == nil {
		return nil, apperrors.ErrAlunoNotFound
	}

	curso, err := s.cursoRepo.GetByID(ctx, aluno.CursoID)
	if err != nil {
		return nil, err
	}
	aluno.Curso = curso

	return aluno, nil
}

func (s *alunoService) GetAlunoAdmin(ctx context.Context, id int64) (*models.Aluno, error) {
	aluno, err := s.alunoRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if aluno == nil {
		return nil, apperrors.ErrAlunoNotFound
	}
	return aluno, nil
}

func (s *alunoService) CreateAluno(ctx context.Context, req *dto.CreateAlunoRequest, principal *int64) (*models.Aluno, error) {
	birthDate, err := time.Parse(birthDateLayout, req.BirthDate)
	if err != nil {
		return nil, apperrors.NewValidationError("birthDate must be in YYYY-MM-DD format")
	}

	if err := validateAlunoFields(req.Status, req.Semester); err != nil {
		return nil, err
	}

	if err := s.checkCursoActive(ctx, req.CursoID); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = models.AlunoStatusActive
	}

	now := time.Now().UTC()
	aluno := &models.Aluno{
		ExternalID:       uuid.New(),
		Name:             req.Name,
		EnrollmentNumber: req.EnrollmentNumber,
		Email:            req.Email,
		Phone:            req.Phone,
		BirthDate:        birthDate,
		Semester:         req.Semester,
		Status:           status,
		CursoID:          req.CursoID,
		Active:           true,
		CreatedAt:        now,
		UpdatedAt:        now,
		CreatedBy:        principal,
		UpdatedBy:        principal,
	}

	if err := s.alunoRepo.Create(ctx, aluno); err != nil {
		return nil, s.mapStoreError(err)
	}

	return aluno, nil
}

func (s *alunoService) UpdateAluno(ctx context.Context, id int64, req *dto.UpdateAlunoRequest, principal *int64) (*models.Aluno, error) {
	aluno, err := s.alunoRepo.GetActiveByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if aluno == nil {
		return nil, apperrors.ErrAlunoNotFound
	}

	birthDate, err := time.Parse(birthDateLayout, req.BirthDate)
	if err != nil {
		return nil, apperrors.NewValidationError("birthDate must be in YYYY-MM-DD format")
	}

	if err := validateAlunoFields(req.Status, req.Semester); err != nil {
		return nil, err
	}

	if err := s.checkCursoActive(ctx, req.CursoID); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = models.AlunoStatusActive
	}

	aluno.Name = req.Name
	aluno.EnrollmentNumber = req.EnrollmentNumber
	aluno.Email = req.Email
	aluno.Phone = req.Phone
	aluno.BirthDate = birthDate
	aluno.Semester = req.Semester
	aluno.Status = status
	aluno.CursoID = req.CursoID
	aluno.UpdatedAt = time.Now().UTC()
	aluno.UpdatedBy = principal

	affected, err := s.alunoRepo.Update(ctx, aluno)
	if err != nil {
		return nil, s.mapStoreError(err)
	}
	if affected == 0 {
		return nil, apperrors.ErrAlunoNotFound
	}

	return aluno, nil
}

func (s *alunoService) DeleteAluno(ctx context.Context, id int64, principal *int64) error {
	affected, err := s.alunoRepo.SoftDelete(ctx, id, principal, time.Now().UTC())
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperrors.ErrAlunoNotFound
	}
	return nil
}

// validateAlunoFields checks the fields the store also constrains, so the
// caller gets a validation error instead of a raw constraint violation
func validateAlunoFields(status models.AlunoStatus, semester int) error {
	if status != "" && !status.IsValid() {
		return apperrors.NewValidationError("status must be one of: active, inactive, unlinked, graduated")
	}
	if semester < models.MinSemester || semester > models.MaxSemester {
		return apperrors.NewValidationError(
			fmt.Sprintf("semester must be between %d and %d", models.MinSemester, models.MaxSemester))
	}
	return nil
}

// checkCursoActive rejects enrollment into an absent or soft-deleted curso
func (s *alunoService) checkCursoActive(ctx context.Context, cursoID int64) error {
	curso, err := s.cursoRepo.GetActiveByID(ctx, cursoID)
	if err != nil {
		return err
	}
	if curso == nil {
		return apperrors.NewValidationError("curso not found or inactive")
	}
	return nil
}

func (s *alunoService) mapStoreError(err error) error {
	switch {
	case dberrors.IsDuplicateConstraintError(err, repositories.ConstraintAlunoEnrollment):
		return apperrors.ErrAlunoEnrollmentExists
	case dberrors.IsDuplicateConstraintError(err, repositories.ConstraintAlunoEmail):
		return apperrors.ErrAlunoEmailExists
	case dberrors.IsForeignKeyViolation(err):
		// The curso was hard-deleted between the active check and the write
		return apperrors.NewValidationError("curso not found or inactive")
	}
	return err
}
