package models

import (
	"time"

	"github.com/google/uuid"
)

// Aluno defines the student model based on the 'alunos' table
type Aluno struct {
	ID               int64       `json:"id" db:"id" example:"1"`
	ExternalID       uuid.UUID   `json:"externalId" db:"external_id"`
	Name             string      `json:"name" db:"name" example:"Ana Lima"`
	EnrollmentNumber string      `json:"enrollmentNumber" db:"enrollment_number" example:"2024001"` // Unique
	Email            string      `json:"email" db:"email" example:"ana@example.com"`                // Unique
	Phone            string      `json:"phone,omitempty" db:"phone"`
	BirthDate        time.Time   `json:"birthDate" db:"birth_date"`
	Semester         int         `json:"semester" db:"semester" example:"1"` // 1..10
	Status           AlunoStatus `json:"status" db:"status" example:"active"`
	CursoID          int64       `json:"cursoId" db:"curso_id"`
	Active           bool        `json:"active" db:"active"`
	CreatedAt        time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt        time.Time   `json:"updatedAt" db:"updated_at"`
	CreatedBy        *int64      `json:"createdBy,omitempty" db:"created_by"`
	UpdatedBy        *int64      `json:"updatedBy,omitempty" db:"updated_by"`

	// Relation (populated when needed)
	Curso *Curso `json:"curso,omitempty"`
}
