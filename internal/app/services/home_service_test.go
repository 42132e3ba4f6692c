package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSummaryCountsOnlyActive(t *testing.T) {
	f := newAlunoFixture(t)
	homeSvc := NewHomeService(f.cursoRepo, f.alunoRepo)
	ctx := context.Background()

	ana := f.createAluno(t, "Ana", "2024001", "ana@x.com", "")
	f.createAluno(t, "Bruno", "2024002", "bruno@x.com", "")

	summary, err := homeSvc.GetSummary(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), summary.TotalCursos)
	assert.Equal(t, int64(2), summary.TotalAlunos)

	// Counts are recomputed after a soft delete
	require.NoError(t, f.alunoSvc.DeleteAluno(ctx, ana.ID, nil))

	summary, err = homeSvc.GetSummary(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), summary.TotalAlunos)
}
