package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/mfreitas/sistema-escolar/internal/app/models/dto"
	"github.com/mfreitas/sistema-escolar/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCursoServiceForTest() (CursoService, *memCursoRepo, *memAlunoRepo) {
	cursoRepo := newMemCursoRepo()
	alunoRepo := newMemAlunoRepo()
	return NewCursoService(cursoRepo, alunoRepo), cursoRepo, alunoRepo
}

func int64Ptr(v int64) *int64 { return &v }

func TestCreateCurso(t *testing.T) {
	svc, _, _ := newCursoServiceForTest()

	curso, err := svc.CreateCurso(context.Background(), &dto.CreateCursoRequest{
		Name:            "Ciência da Computação",
		Code:            "CC-101",
		CoordinatorName: "Maria Souza",
		CreditHours:     3200,
	}, int64Ptr(7))

	require.NoError(t, err)
	assert.True(t, curso.Active)
	assert.NotEqual(t, uuid.Nil, curso.ExternalID)
	assert.False(t, curso.CreatedAt.IsZero())
	require.NotNil(t, curso.CreatedBy)
	assert.Equal(t, int64(7), *curso.CreatedBy)
}

func TestCreateCursoAnonymousLeavesAuditNull(t *testing.T) {
	svc, _, _ := newCursoServiceForTest()

	curso, err := svc.CreateCurso(context.Background(), &dto.CreateCursoRequest{
		Name:            "Engenharia",
		Code:            "ENG-1",
		CoordinatorName: "João",
	}, nil)

	require.NoError(t, err)
	assert.Nil(t, curso.CreatedBy)
	assert.Nil(t, curso.UpdatedBy)
}

func TestCreateCursoDuplicateCode(t *testing.T) {
	svc, _, _ := newCursoServiceForTest()
	ctx := context.Background()

	_, err := svc.CreateCurso(ctx, &dto.CreateCursoRequest{
		Name: "A", Code: "CC-101", CoordinatorName: "X",
	}, nil)
	require.NoError(t, err)

	_, err = svc.CreateCurso(ctx, &dto.CreateCursoRequest{
		Name: "B", Code: "CC-101", CoordinatorName: "Y",
	}, nil)
	assert.ErrorIs(t, err, apperrors.ErrCursoCodeExists)
}

func TestUpdateCursoKeepsCreationAudit(t *testing.T) {
	svc, repo, _ := newCursoServiceForTest()
	ctx := context.Background()

	curso, err := svc.CreateCurso(ctx, &dto.CreateCursoRequest{
		Name: "Original", Code: "CC-1", CoordinatorName: "X",
	}, int64Ptr(1))
	require.NoError(t, err)
	createdAt := curso.CreatedAt

	updated, err := svc.UpdateCurso(ctx, curso.ID, &dto.UpdateCursoRequest{
		Name: "Renomeado", Code: "CC-1", CoordinatorName: "Y", CreditHours: 100,
	}, int64Ptr(2))
	require.NoError(t, err)

	assert.Equal(t, "Renomeado", updated.Name)
	require.NotNil(t, updated.UpdatedBy)
	assert.Equal(t, int64(2), *updated.UpdatedBy)

	stored, _ := repo.GetByID(ctx, curso.ID)
	assert.Equal(t, createdAt, stored.CreatedAt)
	require.NotNil(t, stored.CreatedBy)
	assert.Equal(t, int64(1), *stored.CreatedBy)
}

func TestUpdateCursoSoftDeletedIsNotFound(t *testing.T) {
	svc, _, _ := newCursoServiceForTest()
	ctx := context.Background()

	curso, err := svc.CreateCurso(ctx, &dto.CreateCursoRequest{
		Name: "A", Code: "CC-1", CoordinatorName: "X",
	}, nil)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteCurso(ctx, curso.ID, nil))

	_, err = svc.UpdateCurso(ctx, curso.ID, &dto.UpdateCursoRequest{
		Name: "B", Code: "CC-1", CoordinatorName: "X",
	}, nil)
	assert.ErrorIs(t, err, apperrors.ErrCursoNotFound)
}

func TestDeleteCursoHidesFromListAndDetail(t *testing.T) {
	svc, repo, _ := newCursoServiceForTest()
	ctx := context.Background()

	curso, err := svc.CreateCurso(ctx, &dto.CreateCursoRequest{
		Name: "A", Code: "CC-1", CoordinatorName: "X",
	}, nil)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteCurso(ctx, curso.ID, int64Ptr(9)))

	cursos, err := svc.ListCursos(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, cursos)

	_, err = svc.GetCurso(ctx, curso.ID)
	assert.ErrorIs(t, err, apperrors.ErrCursoNotFound)

	// The row itself survives with active=false and a stamped updater
	stored, _ := repo.GetByID(ctx, curso.ID)
	require.NotNil(t, stored)
	assert.False(t, stored.Active)
	require.NotNil(t, stored.UpdatedBy)
	assert.Equal(t, int64(9), *stored.UpdatedBy)
}

func TestDeleteCursoTwiceIsNotFound(t *testing.T) {
	svc, _, _ := newCursoServiceForTest()
	ctx := context.Background()

	curso, err := svc.CreateCurso(ctx, &dto.CreateCursoRequest{
		Name: "A", Code: "CC-1", CoordinatorName: "X",
	}, nil)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteCurso(ctx, curso.ID, nil))
	err = svc.DeleteCurso(ctx, curso.ID, nil)
	assert.ErrorIs(t, err, apperrors.ErrCursoNotFound)
}

func TestListCursosSearch(t *testing.T) {
	svc, _, _ := newCursoServiceForTest()
	ctx := context.Background()

	_, err := svc.CreateCurso(ctx, &dto.CreateCursoRequest{
		Name: "Ciência da Computação", Code: "CC-1", CoordinatorName: "X",
	}, nil)
	require.NoError(t, err)
	_, err = svc.CreateCurso(ctx, &dto.CreateCursoRequest{
		Name: "Direito", Code: "DIR-1", CoordinatorName: "Y",
	}, nil)
	require.NoError(t, err)

	cursos, err := svc.ListCursos(ctx, "computação")
	require.NoError(t, err)
	require.Len(t, cursos, 1)
	assert.Equal(t, "CC-1", cursos[0].Code)
}

func TestGetCursoDetailListsOnlyActiveAlunos(t *testing.T) {
	cursoRepo := newMemCursoRepo()
	alunoRepo := newMemAlunoRepo()
	cursoSvc := NewCursoService(cursoRepo, alunoRepo)
	alunoSvc := NewAlunoService(alunoRepo, cursoRepo)
	ctx := context.Background()

	curso, err := cursoSvc.CreateCurso(ctx, &dto.CreateCursoRequest{
		Name: "CS101", Code: "CS-101", CoordinatorName: "X", CreditHours: 60,
	}, nil)
	require.NoError(t, err)

	ana, err := alunoSvc.CreateAluno(ctx, &dto.CreateAlunoRequest{
		Name: "Ana", EnrollmentNumber: "2024001", Email: "ana@x.com",
		BirthDate: "2000-01-15", Semester: 1, CursoID: curso.ID,
	}, nil)
	require.NoError(t, err)

	detail, err := cursoSvc.GetCurso(ctx, curso.ID)
	require.NoError(t, err)
	require.Len(t, detail.Alunos, 1)
	assert.Equal(t, "Ana", detail.Alunos[0].Name)

	require.NoError(t, alunoSvc.DeleteAluno(ctx, ana.ID, nil))

	detail, err = cursoSvc.GetCurso(ctx, curso.ID)
	require.NoError(t, err)
	assert.Empty(t, detail.Alunos)

	// Direct admin lookup still reaches the soft-deleted row
	stored, err := alunoSvc.GetAlunoAdmin(ctx, ana.ID)
	require.NoError(t, err)
	assert.False(t, stored.Active)
}
