package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/mfreitas/sistema-escolar/internal/app/models/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdminTestRouter(svc *stubAdminService) *gin.Engine {
	router := gin.New()
	controller := NewAdminController(svc, &stubCursoService{}, &stubAlunoService{})
	router.POST("/admin/cursos/bulk-activate", controller.BulkActivateCursos)
	router.POST("/admin/cursos/bulk-deactivate", controller.BulkDeactivateCursos)
	router.POST("/admin/alunos/bulk-activate", controller.BulkActivateAlunos)
	router.POST("/admin/alunos/prepare-email", controller.PrepareEmail)
	return router
}

func postJSON(router *gin.Engine, path string, payload interface{}) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestBulkActivateCursosMessage(t *testing.T) {
	svc := &stubAdminService{bulkResult: &dto.BulkActionResponse{Affected: 3}}
	router := newAdminTestRouter(svc)

	w := postJSON(router, "/admin/cursos/bulk-activate", dto.BulkActionRequest{IDs: []int64{1, 2, 3}})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []int64{1, 2, 3}, svc.lastIDs)
	assert.True(t, svc.lastActive)
	assert.Equal(t, "cursos", svc.lastEntity)

	var resp dto.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "3 curso(s) ativado(s) com sucesso.", resp.Message)
}

func TestBulkDeactivateCursosMessage(t *testing.T) {
	svc := &stubAdminService{bulkResult: &dto.BulkActionResponse{Affected: 1}}
	router := newAdminTestRouter(svc)

	w := postJSON(router, "/admin/cursos/bulk-deactivate", dto.BulkActionRequest{IDs: []int64{9}})

	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, svc.lastActive)

	var resp dto.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "1 curso(s) desativado(s) com sucesso.", resp.Message)
}

func TestBulkActivateAlunosMessage(t *testing.T) {
	svc := &stubAdminService{bulkResult: &dto.BulkActionResponse{Affected: 2}}
	router := newAdminTestRouter(svc)

	w := postJSON(router, "/admin/alunos/bulk-activate", dto.BulkActionRequest{IDs: []int64{4, 5}})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "alunos", svc.lastEntity)

	var resp dto.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "2 aluno(s) ativado(s) com sucesso.", resp.Message)
}

func TestBulkActionRejectsEmptySelection(t *testing.T) {
	router := newAdminTestRouter(&stubAdminService{})

	w := postJSON(router, "/admin/cursos/bulk-activate", dto.BulkActionRequest{IDs: []int64{}})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPrepareEmailReturnsAddresses(t *testing.T) {
	svc := &stubAdminService{emailResult: &dto.PrepareEmailResponse{
		Emails: []string{"ana@x.com", "bruno@x.com"},
		Count:  2,
	}}
	router := newAdminTestRouter(svc)

	w := postJSON(router, "/admin/alunos/prepare-email", dto.BulkActionRequest{IDs: []int64{1, 2}})

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool                     `json:"success"`
		Warning string                   `json:"warning"`
		Data    dto.PrepareEmailResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Empty(t, resp.Warning)
	assert.Equal(t, 2, resp.Data.Count)
}

func TestPrepareEmailEmptySelectionIsWarningNotError(t *testing.T) {
	svc := &stubAdminService{emailResult: &dto.PrepareEmailResponse{Count: 0}}
	router := newAdminTestRouter(svc)

	w := postJSON(router, "/admin/alunos/prepare-email", dto.BulkActionRequest{IDs: []int64{1}})

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Nenhum email encontrado nos alunos selecionados.", resp.Warning)
}
