package dto

import "github.com/mfreitas/sistema-escolar/internal/app/models"

// CreateAlunoRequest represents aluno creation data
type CreateAlunoRequest struct {
	Name             string             `json:"name" binding:"required,max=100"`
	EnrollmentNumber string             `json:"enrollmentNumber" binding:"required,max=20"`
	Email            string             `json:"email" binding:"required,email"`
	Phone            string             `json:"phone" binding:"omitempty,max=20"`
	BirthDate        string             `json:"birthDate" binding:"required"` // YYYY-MM-DD
	Semester         int                `json:"semester" binding:"required,gte=1,lte=10"`
	Status           models.AlunoStatus `json:"status" binding:"omitempty,oneof=active inactive unlinked graduated"`
	CursoID          int64              `json:"cursoId" binding:"required,gt=0"`
}

// UpdateAlunoRequest represents aluno update data
type UpdateAlunoRequest struct {
	Name             string             `json:"name" binding:"required,max=100"`
	EnrollmentNumber string             `json:"enrollmentNumber" binding:"required,max=20"`
	Email            string             `json:"email" binding:"required,email"`
	Phone            string             `json:"phone" binding:"omitempty,max=20"`
	BirthDate        string             `json:"birthDate" binding:"required"` // YYYY-MM-DD
	Semester         int                `json:"semester" binding:"required,gte=1,lte=10"`
	Status           models.AlunoStatus `json:"status" binding:"omitempty,oneof=active inactive unlinked graduated"`
	CursoID          int64              `json:"cursoId" binding:"required,gt=0"`
}

// StatusChoice pairs a status value with its display label
type StatusChoice struct {
	Value models.AlunoStatus `json:"value" example:"active"`
	Label string             `json:"label" example:"Ativo"`
}

// NewStatusChoices builds the list of selectable aluno statuses
func NewStatusChoices() []StatusChoice {
	statuses := models.AlunoStatusChoices()
	choices := make([]StatusChoice, 0, len(statuses))
	for _, s := range statuses {
		choices = append(choices, StatusChoice{Value: s, Label: s.Label()})
	}
	return choices
}

// AlunoListResponse represents the aluno list view payload, with every filter
// echoed back alongside the options needed to render the filter controls.
type AlunoListResponse struct {
	Alunos         []models.Aluno `json:"alunos"`
	Search         string         `json:"search"`
	SelectedCurso  string         `json:"selectedCurso"`
	SelectedStatus string         `json:"selectedStatus"`
	Cursos         []CursoOption  `json:"cursos"`
	StatusChoices  []StatusChoice `json:"statusChoices"`
}

// AlunoDetailResponse represents the aluno detail view payload
type AlunoDetailResponse struct {
	Aluno *models.Aluno `json:"aluno"`
}
