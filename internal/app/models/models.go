package models

// AlunoStatus defines the enrollment status of an aluno
type AlunoStatus string

const (
	AlunoStatusActive    AlunoStatus = "active"
	AlunoStatusInactive  AlunoStatus = "inactive"
	AlunoStatusUnlinked  AlunoStatus = "unlinked"
	AlunoStatusGraduated AlunoStatus = "graduated"
)

// AlunoStatusChoices lists every valid status in display order
func AlunoStatusChoices() []AlunoStatus {
	return []AlunoStatus{
		AlunoStatusActive,
		AlunoStatusInactive,
		AlunoStatusUnlinked,
		AlunoStatusGraduated,
	}
}

// IsValid reports whether the status is one of the known choices
func (s AlunoStatus) IsValid() bool {
	switch s {
	case AlunoStatusActive, AlunoStatusInactive, AlunoStatusUnlinked, AlunoStatusGraduated:
		return true
	}
	return false
}

// Label returns the display label for the status
func (s AlunoStatus) Label() string {
	switch s {
	case AlunoStatusActive:
		return "Ativo"
	case AlunoStatusInactive:
		return "Inativo"
	case AlunoStatusUnlinked:
		return "Desvinculado"
	case AlunoStatusGraduated:
		return "Formado"
	}
	return string(s)
}

// MinSemester and MaxSemester bound the aluno semester field
const (
	MinSemester = 1
	MaxSemester = 10
)
