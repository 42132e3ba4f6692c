package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mfreitas/sistema-escolar/internal/app/models"
)

var cursoColumns = []string{
	"id", "external_id", "name", "code", "coordinator_name", "description",
	"credit_hours", "active", "created_at", "updated_at", "created_by", "updated_by",
}

type cursoRepository struct {
	db *pgxpool.Pool
}

// NewCursoRepository creates a new curso repository
func NewCursoRepository(db *pgxpool.Pool) CursoRepository {
	return &cursoRepository{db: db}
}

func scanCurso(row pgx.Row) (*models.Curso, error) {
	var curso models.Curso
	err := row.Scan(
		&curso.ID,
		&curso.ExternalID,
		&curso.Name,
		&curso.Code,
		&curso.CoordinatorName,
		&curso.Description,
		&curso.CreditHours,
		&curso.Active,
		&curso.CreatedAt,
		&curso.UpdatedAt,
		&curso.CreatedBy,
		&curso.UpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &curso, nil
}

// Create inserts a new curso and fills in its assigned id
func (r *cursoRepository) Create(ctx context.Context, curso *models.Curso) error {
	query := squirrel.Insert("cursos").
		Columns("external_id", "name", "code", "coordinator_name", "description",
			"credit_hours", "active", "created_at", "updated_at", "created_by", "updated_by").
		Values(curso.ExternalID, curso.Name, curso.Code, curso.CoordinatorName, curso.Description,
			curso.CreditHours, curso.Active, curso.CreatedAt, curso.UpdatedAt, curso.CreatedBy, curso.UpdatedBy).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	return r.db.QueryRow(ctx, sql, args...).Scan(&curso.ID)
}

// GetActiveByID retrieves an active curso by id, (nil, nil) when absent or inactive
func (r *cursoRepository) GetActiveByID(ctx context.Context, id int64) (*models.Curso, error) {
	return r.getByID(ctx, id, true)
}

// GetByID retrieves a curso by id regardless of the active flag
func (r *cursoRepository) GetByID(ctx context.Context, id int64) (*models.Curso, error) {
	return r.getByID(ctx, id, false)
}

func (r *cursoRepository) getByID(ctx context.Context, id int64, activeOnly bool) (*models.Curso, error) {
	query := squirrel.Select(cursoColumns...).
		From("cursos").
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	if activeOnly {
		query = query.Where("active = TRUE")
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	curso, err := scanCurso(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving curso: %w", err)
	}

	return curso, nil
}

// List retrieves active cursos ordered by name, optionally narrowed by a
// case-insensitive substring match on name or description
func (r *cursoRepository) List(ctx context.Context, search string) ([]models.Curso, error) {
	query := squirrel.Select(cursoColumns...).
		From("cursos").
		Where("active = TRUE").
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if search != "" {
		like := "%" + search + "%"
		query = query.Where("(name ILIKE ? OR description ILIKE ?)", like, like)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var cursos []models.Curso
	for rows.Next() {
		curso, err := scanCurso(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		cursos = append(cursos, *curso)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return cursos, nil
}

// Update writes the mutable fields of an active curso. Identity and
// audit-creation columns are never part of the statement.
func (r *cursoRepository) Update(ctx context.Context, curso *models.Curso) (int64, error) {
	query := squirrel.Update("cursos").
		Set("name", curso.Name).
		Set("code", curso.Code).
		Set("coordinator_name", curso.CoordinatorName).
		Set("description", curso.Description).
		Set("credit_hours", curso.CreditHours).
		Set("updated_at", curso.UpdatedAt).
		Set("updated_by", curso.UpdatedBy).
		Where("id = ? AND active = TRUE", curso.ID).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building SQL: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, err
	}

	return cmdTag.RowsAffected(), nil
}

// SoftDelete marks an active curso inactive and stamps the update audit fields
func (r *cursoRepository) SoftDelete(ctx context.Context, id int64, updatedBy *int64, now time.Time) (int64, error) {
	query := squirrel.Update("cursos").
		Set("active", false).
		Set("updated_at", now).
		Set("updated_by", updatedBy).
		Where("id = ? AND active = TRUE", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building SQL: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("error soft-deleting curso: %w", err)
	}

	return cmdTag.RowsAffected(), nil
}

// SetActive unconditionally sets the active flag on every given id
func (r *cursoRepository) SetActive(ctx context.Context, ids []int64, active bool, updatedBy *int64, now time.Time) (int64, error) {
	query := squirrel.Update("cursos").
		Set("active", active).
		Set("updated_at", now).
		Set("updated_by", updatedBy).
		Where("id = ANY(?)", ids).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building SQL: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("error updating cursos: %w", err)
	}

	return cmdTag.RowsAffected(), nil
}

// CountActive counts the active cursos, recomputed on every call
func (r *cursoRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM cursos WHERE active = TRUE`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting cursos: %w", err)
	}
	return count, nil
}

// HardDelete physically removes the curso; the alunos foreign key cascades
func (r *cursoRepository) HardDelete(ctx context.Context, id int64) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM cursos WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("error deleting curso: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}
