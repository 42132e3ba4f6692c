package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mfreitas/sistema-escolar/internal/app/models"
)

// Unique constraint names, matched against pg unique-violation errors
const (
	ConstraintCursoCode       = "cursos_code_key"
	ConstraintAlunoEnrollment = "alunos_enrollment_number_key"
	ConstraintAlunoEmail      = "alunos_email_key"
	ConstraintUserEmail       = "users_email_key"
)

// AlunoFilter holds the aluno list filters; all set filters combine with AND
type AlunoFilter struct {
	Search  string             // Case-insensitive substring on name, email or enrollment number
	CursoID *int64             // Exact curso match
	Status  models.AlunoStatus // Exact status match, empty means any
}

// CursoRepository handles database operations for cursos
type CursoRepository interface {
	Create(ctx context.Context, curso *models.Curso) error
	// GetActiveByID returns the curso only when it is active; (nil, nil) otherwise
	GetActiveByID(ctx context.Context, id int64) (*models.Curso, error)
	// GetByID looks the curso up regardless of the active flag (admin surface)
	GetByID(ctx context.Context, id int64) (*models.Curso, error)
	// List returns active cursos ordered by name; search optionally narrows by
	// case-insensitive substring on name or description
	List(ctx context.Context, search string) ([]models.Curso, error)
	// Update writes the mutable fields of an active curso; returns rows affected
	Update(ctx context.Context, curso *models.Curso) (int64, error)
	// SoftDelete flips active to false on an active curso; returns rows affected
	SoftDelete(ctx context.Context, id int64, updatedBy *int64, now time.Time) (int64, error)
	// SetActive unconditionally sets the active flag on every given id
	SetActive(ctx context.Context, ids []int64, active bool, updatedBy *int64, now time.Time) (int64, error)
	CountActive(ctx context.Context) (int64, error)
	// HardDelete physically removes the row; the store cascades to its alunos.
	// No request handler calls this, it exists for store-level administration.
	HardDelete(ctx context.Context, id int64) (int64, error)
}

// AlunoRepository handles database operations for alunos
type AlunoRepository interface {
	Create(ctx context.Context, aluno *models.Aluno) error
	GetActiveByID(ctx context.Context, id int64) (*models.Aluno, error)
	GetByID(ctx context.Context, id int64) (*models.Aluno, error)
	List(ctx context.Context, filter AlunoFilter) ([]models.Aluno, error)
	// ListActiveByCurso returns the active alunos of a curso ordered by name
	ListActiveByCurso(ctx context.Context, cursoID int64) ([]models.Aluno, error)
	Update(ctx context.Context, aluno *models.Aluno) (int64, error)
	SoftDelete(ctx context.Context, id int64, updatedBy *int64, now time.Time) (int64, error)
	SetActive(ctx context.Context, ids []int64, active bool, updatedBy *int64, now time.Time) (int64, error)
	CountActive(ctx context.Context) (int64, error)
	// CollectEmails gathers the non-empty email of every selected aluno
	CollectEmails(ctx context.Context, ids []int64) ([]string, error)
}

// UserRepository handles database operations for user accounts
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	// GetOrCreateSentinel lazily creates the placeholder "deleted user" account.
	// It is idempotent under concurrency, guarded by the users email constraint.
	GetOrCreateSentinel(ctx context.Context) (*models.User, error)
	// DeleteWithAuditRedirect redirects every audit reference of the user to
	// the sentinel and removes the account, all in one transaction.
	DeleteWithAuditRedirect(ctx context.Context, userID, sentinelID int64) error
}

// Repositories holds all the repository instances
type Repositories struct {
	CursoRepository CursoRepository
	AlunoRepository AlunoRepository
	UserRepository  UserRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		CursoRepository: NewCursoRepository(db),
		AlunoRepository: NewAlunoRepository(db),
		UserRepository:  NewUserRepository(db),
	}
}
