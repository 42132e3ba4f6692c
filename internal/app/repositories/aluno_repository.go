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

var alunoColumns = []string{
	"id", "external_id", "name", "enrollment_number", "email", "phone",
	"birth_date", "semester", "status", "curso_id", "active",
	"created_at", "updated_at", "created_by", "updated_by",
}

type alunoRepository struct {
	db *pgxpool.Pool
}

// NewAlunoRepository creates a new aluno repository
func NewAlunoRepository(db *pgxpool.Pool) AlunoRepository {
	return &alunoRepository{db: db}
}

func scanAluno(row pgx.Row) (*models.Aluno, error) {
	var aluno models.Aluno
	err := row.Scan(
		&aluno.ID,
		&aluno.ExternalID,
		&aluno.Name,
		&aluno.EnrollmentNumber,
		&aluno.Email,
		&aluno.Phone,
		&aluno.BirthDate,
		&aluno.Semester,
		&aluno.Status,
		&aluno.CursoID,
		&aluno.Active,
		&aluno.CreatedAt,
		&aluno.UpdatedAt,
		&aluno.CreatedBy,
		&aluno.UpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &aluno, nil
}

// Create inserts a new aluno and fills in its assigned id
func (r *alunoRepository) Create(ctx context.Context, aluno *models.Aluno) error {
	query := squirrel.Insert("alunos").
		Columns("external_id", "name", "enrollment_number", "email", "phone",
			"birth_date", "semester", "status", "curso_id", "active",
			"created_at", "updated_at", "created_by", "updated_by").
		Values(aluno.ExternalID, aluno.Name, aluno.EnrollmentNumber, aluno.Email, aluno.Phone,
			aluno.BirthDate, aluno.Semester, aluno.Status, aluno.CursoID, aluno.Active,
			aluno.CreatedAt, aluno.UpdatedAt, aluno.CreatedBy, aluno.UpdatedBy).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	return r.db.QueryRow(ctx, sql, args...).Scan(&aluno.ID)
}

// GetActiveByID retrieves an active aluno by id, (nil, nil) when absent or inactive
func (r *alunoRepository) GetActiveByID(ctx context.Context, id int64) (*models.Aluno, error) {
	return r.getByID(ctx, id, true)
}

// GetByID retrieves an aluno by id regardless of the active flag
func (r *alunoRepository) GetByID(ctx context.Context, id int64) (*models.Aluno, error) {
	return r.getByID(ctx, id, false)
}

func (r *alunoRepository) getByID(ctx context.Context, id int64, activeOnly bool) (*models.Aluno, error) {
	query := squirrel.Select(alunoColumns...).
		From("alunos").
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	if activeOnly {
		query = query.Where("active = TRUE")
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	aluno, err := scanAluno(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving aluno: %w", err)
	}

	return aluno, nil
}

// List retrieves active alunos ordered by name. Search narrows by
// case-insensitive substring on name, email or enrollment number; curso and
// status filters are exact; all set filters combine with AND.
func (r *alunoRepository) List(ctx context.Context, filter AlunoFilter) ([]models.Aluno, error) {
	query := squirrel.Select(alunoColumns...).
		From("alunos").
		Where("active = TRUE").
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("(name ILIKE ? OR email ILIKE ? OR enrollment_number ILIKE ?)", like, like, like)
	}
	if filter.CursoID != nil {
		query = query.Where("curso_id = ?", *filter.CursoID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}

	return r.queryAlunos(ctx, query)
}

// ListActiveByCurso retrieves the active alunos of a curso ordered by name
func (r *alunoRepository) ListActiveByCurso(ctx context.Context, cursoID int64) ([]models.Aluno, error) {
	query := squirrel.Select(alunoColumns...).
		From("alunos").
		Where("active = TRUE").
		Where("curso_id = ?", cursoID).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar)

	return r.queryAlunos(ctx, query)
}

func (r *alunoRepository) queryAlunos(ctx context.Context, query squirrel.SelectBuilder) ([]models.Aluno, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var alunos []models.Aluno
	for rows.Next() {
		aluno, err := scanAluno(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		alunos = append(alunos, *aluno)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return alunos, nil
}

// Update writes the mutable fields of an active aluno
func (r *alunoRepository) Update(ctx context.Context, aluno *models.Aluno) (int64, error) {
	query := squirrel.Update("alunos").
		Set("name", aluno.Name).
		Set("enrollment_number", aluno.EnrollmentNumber).
		Set("email", aluno.Email).
		Set("phone", aluno.Phone).
		Set("birth_date", aluno.BirthDate).
		Set("semester", aluno.Semester).
		Set("status", aluno.Status).
		Set("curso_id", aluno.CursoID).
		Set("updated_at", aluno.UpdatedAt).
		Set("updated_by", aluno.UpdatedBy).
		Where("id = ? AND active = TRUE", aluno.ID).
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

// SoftDelete marks an active aluno inactive and stamps the update audit fields
func (r *alunoRepository) SoftDelete(ctx context.Context, id int64, updatedBy *int64, now time.Time) (int64, error) {
	query := squirrel.Update("alunos").
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
		return 0, fmt.Errorf("error soft-deleting aluno: %w", err)
	}

	return cmdTag.RowsAffected(), nil
}

// SetActive unconditionally sets the active flag on every given id
func (r *alunoRepository) SetActive(ctx context.Context, ids []int64, active bool, updatedBy *int64, now time.Time) (int64, error) {
	query := squirrel.Update("alunos").
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
		return 0, fmt.Errorf("error updating alunos: %w", err)
	}

	return cmdTag.RowsAffected(), nil
}

// CountActive counts the active alunos, recomputed on every call
func (r *alunoRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM alunos WHERE active = TRUE`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting alunos: %w", err)
	}
	return count, nil
}

// CollectEmails gathers the non-empty email of every selected aluno
func (r *alunoRepository) CollectEmails(ctx context.Context, ids []int64) ([]string, error) {
	rows, err := r.db.Query(ctx,
		`SELECT email FROM alunos WHERE id = ANY($1) AND email <> '' ORDER BY email`, ids)
	if err != nil {
		return nil, fmt.Errorf("error collecting emails: %w", err)
	}
	defer rows.Close()

	var emails []string
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		emails = append(emails, email)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return emails, nil
}
