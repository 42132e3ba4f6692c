package models

import (
	"time"

	"github.com/google/uuid"
)

// Curso defines the course model based on the 'cursos' table
type Curso struct {
	ID              int64     `json:"id" db:"id" example:"1"`                                                  // Internal identifier, never reused
	ExternalID      uuid.UUID `json:"externalId" db:"external_id" example:"f7a9c6ce-88b4-4ac0-9ed2-2f3a1f0b6a01"` // Stable external reference, assigned at creation
	Name            string    `json:"name" db:"name" example:"Ciência da Computação"`
	Code            string    `json:"code" db:"code" example:"CC-2024"` // Unique across active and inactive rows
	CoordinatorName string    `json:"coordinatorName" db:"coordinator_name" example:"Maria Souza"`
	Description     string    `json:"description,omitempty" db:"description"`
	CreditHours     int       `json:"creditHours" db:"credit_hours" example:"3200"`
	Active          bool      `json:"active" db:"active"` // Soft-delete flag
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time `json:"updatedAt" db:"updated_at"`
	CreatedBy       *int64    `json:"createdBy,omitempty" db:"created_by"` // Nil when created unauthenticated
	UpdatedBy       *int64    `json:"updatedBy,omitempty" db:"updated_by"`

	// Relations (populated when needed)
	Alunos []Aluno `json:"alunos,omitempty"` // Active alunos enrolled in this curso
}
