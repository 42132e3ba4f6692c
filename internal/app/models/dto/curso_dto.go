package dto

import "github.com/mfreitas/sistema-escolar/internal/app/models"

// CreateCursoRequest represents curso creation data
type CreateCursoRequest struct {
	Name            string `json:"name" binding:"required,max=100"`
	Code            string `json:"code" binding:"required,max=20"`
	CoordinatorName string `json:"coordinatorName" binding:"required,max=100"`
	Description     string `json:"description" binding:"omitempty"`
	CreditHours     int    `json:"creditHours" binding:"gte=0"`
}

// UpdateCursoRequest represents curso update data; all fields are submitted,
// audit-creation fields are never touched.
type UpdateCursoRequest struct {
	Name            string `json:"name" binding:"required,max=100"`
	Code            string `json:"code" binding:"required,max=20"`
	CoordinatorName string `json:"coordinatorName" binding:"required,max=100"`
	Description     string `json:"description" binding:"omitempty"`
	CreditHours     int    `json:"creditHours" binding:"gte=0"`
}

// CursoListResponse represents the curso list view payload
type CursoListResponse struct {
	Cursos []models.Curso `json:"cursos"`
	Search string         `json:"search"` // Echoed filter
}

// CursoDetailResponse represents the curso detail view payload
type CursoDetailResponse struct {
	Curso  *models.Curso  `json:"curso"`
	Alunos []models.Aluno `json:"alunos"` // Active alunos of this curso
}

// CursoOption is a compact curso reference used to build filter dropdowns
type CursoOption struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// NewCursoOptions maps cursos to dropdown options
func NewCursoOptions(cursos []models.Curso) []CursoOption {
	options := make([]CursoOption, 0, len(cursos))
	for _, c := range cursos {
		options = append(options, CursoOption{ID: c.ID, Name: c.Name})
	}
	return options
}
