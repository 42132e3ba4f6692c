package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mfreitas/sistema-escolar/internal/app/models"
	"github.com/mfreitas/sistema-escolar/internal/app/repositories"
)

// duplicateErr fakes a pg unique violation for the given constraint, so the
// services exercise the same error mapping they use against a real store.
func duplicateErr(constraint string) error {
	return &pgconn.PgError{Code: "23505", ConstraintName: constraint}
}

// foreignKeyErr fakes a pg foreign key violation for the given constraint
func foreignKeyErr(constraint string) error {
	return &pgconn.PgError{Code: "23503", ConstraintName: constraint}
}

type memCursoRepo struct {
	nextID int64
	rows   map[int64]models.Curso
	// when linked, HardDelete removes the curso's alunos, matching the
	// ON DELETE CASCADE on alunos.curso_id
	alunos *memAlunoRepo
}

func newMemCursoRepo() *memCursoRepo {
	return &memCursoRepo{rows: make(map[int64]models.Curso)}
}

func (r *memCursoRepo) Create(_ context.Context, curso *models.Curso) error {
	for _, row := range r.rows {
		if row.Code == curso.Code {
			return duplicateErr(repositories.ConstraintCursoCode)
		}
	}
	r.nextID++
	curso.ID = r.nextID
	r.rows[curso.ID] = *curso
	return nil
}

func (r *memCursoRepo) GetActiveByID(_ context.Context, id int64) (*models.Curso, error) {
	row, ok := r.rows[id]
	if !ok || !row.Active {
		return nil, nil
	}
	out := row
	return &out, nil
}

func (r *memCursoRepo) GetByID(_ context.Context, id int64) (*models.Curso, error) {
	row, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	out := row
	return &out, nil
}

func (r *memCursoRepo) List(_ context.Context, search string) ([]models.Curso, error) {
	var cursos []models.Curso
	needle := strings.ToLower(search)
	for _, row := range r.rows {
		if !row.Active {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(row.Name), needle) &&
			!strings.Contains(strings.ToLower(row.Description), needle) {
			continue
		}
		cursos = append(cursos, row)
	}
	sort.Slice(cursos, func(i, j int) bool { return cursos[i].Name < cursos[j].Name })
	return cursos, nil
}

func (r *memCursoRepo) Update(_ context.Context, curso *models.Curso) (int64, error) {
	row, ok := r.rows[curso.ID]
	if !ok || !row.Active {
		return 0, nil
	}
	for id, other := range r.rows {
		if id != curso.ID && other.Code == curso.Code {
			return 0, duplicateErr(repositories.ConstraintCursoCode)
		}
	}
	updated := *curso
	updated.CreatedAt = row.CreatedAt
	updated.CreatedBy = row.CreatedBy
	r.rows[curso.ID] = updated
	return 1, nil
}

func (r *memCursoRepo) SoftDelete(_ context.Context, id int64, updatedBy *int64, now time.Time) (int64, error) {
	row, ok := r.rows[id]
	if !ok || !row.Active {
		return 0, nil
	}
	row.Active = false
	row.UpdatedAt = now
	row.UpdatedBy = updatedBy
	r.rows[id] = row
	return 1, nil
}

func (r *memCursoRepo) SetActive(_ context.Context, ids []int64, active bool, updatedBy *int64, now time.Time) (int64, error) {
	var affected int64
	for _, id := range ids {
		row, ok := r.rows[id]
		if !ok {
			continue
		}
		row.Active = active
		row.UpdatedAt = now
		row.UpdatedBy = updatedBy
		r.rows[id] = row
		affected++
	}
	return affected, nil
}

func (r *memCursoRepo) CountActive(_ context.Context) (int64, error) {
	var count int64
	for _, row := range r.rows {
		if row.Active {
			count++
		}
	}
	return count, nil
}

func (r *memCursoRepo) HardDelete(_ context.Context, id int64) (int64, error) {
	if _, ok := r.rows[id]; !ok {
		return 0, nil
	}
	delete(r.rows, id)
	if r.alunos != nil {
		for alunoID, row := range r.alunos.rows {
			if row.CursoID == id {
				delete(r.alunos.rows, alunoID)
			}
		}
	}
	return 1, nil
}

type memAlunoRepo struct {
	nextID int64
	rows   map[int64]models.Aluno
}

func newMemAlunoRepo() *memAlunoRepo {
	return &memAlunoRepo{rows: make(map[int64]models.Aluno)}
}

func (r *memAlunoRepo) checkUnique(aluno *models.Aluno) error {
	for id, row := range r.rows {
		if id == aluno.ID {
			continue
		}
		if row.EnrollmentNumber == aluno.EnrollmentNumber {
			return duplicateErr(repositories.ConstraintAlunoEnrollment)
		}
		if row.Email == aluno.Email {
			return duplicateErr(repositories.ConstraintAlunoEmail)
		}
	}
	return nil
}

func (r *memAlunoRepo) Create(_ context.Context, aluno *models.Aluno) error {
	if err := r.checkUnique(aluno); err != nil {
		return err
	}
	r.nextID++
	aluno.ID = r.nextID
	r.rows[aluno.ID] = *aluno
	return nil
}

func (r *memAlunoRepo) GetActiveByID(_ context.Context, id int64) (*models.Aluno, error) {
	row, ok := r.rows[id]
	if !ok || !row.Active {
		return nil, nil
	}
	out := row
	return &out, nil
}

func (r *memAlunoRepo) GetByID(_ context.Context, id int64) (*models.Aluno, error) {
	row, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	out := row
	return &out, nil
}

func (r *memAlunoRepo) List(_ context.Context, filter repositories.AlunoFilter) ([]models.Aluno, error) {
	var alunos []models.Aluno
	needle := strings.ToLower(filter.Search)
	for _, row := range r.rows {
		if !row.Active {
			continue
		}
		if filter.Search != "" &&
			!strings.Contains(strings.ToLower(row.Name), needle) &&
			!strings.Contains(strings.ToLower(row.Email), needle) &&
			!strings.Contains(strings.ToLower(row.EnrollmentNumber), needle) {
			continue
		}
		if filter.CursoID != nil && row.CursoID != *filter.CursoID {
			continue
		}
		if filter.Status != "" && row.Status != filter.Status {
			continue
		}
		alunos = append(alunos, row)
	}
	sort.Slice(alunos, func(i, j int) bool { return alunos[i].Name < alunos[j].Name })
	return alunos, nil
}

func (r *memAlunoRepo) ListActiveByCurso(ctx context.Context, cursoID int64) ([]models.Aluno, error) {
	return r.List(ctx, repositories.AlunoFilter{CursoID: &cursoID})
}

func (r *memAlunoRepo) Update(_ context.Context, aluno *models.Aluno) (int64, error) {
	row, ok := r.rows[aluno.ID]
	if !ok || !row.Active {
		return 0, nil
	}
	if err := r.checkUnique(aluno); err != nil {
		return 0, err
	}
	updated := *aluno
	updated.CreatedAt = row.CreatedAt
	updated.CreatedBy = row.CreatedBy
	r.rows[aluno.ID] = updated
	return 1, nil
}

func (r *memAlunoRepo) SoftDelete(_ context.Context, id int64, updatedBy *int64, now time.Time) (int64, error) {
	row, ok := r.rows[id]
	if !ok || !row.Active {
		return 0, nil
	}
	row.Active = false
	row.UpdatedAt = now
	row.UpdatedBy = updatedBy
	r.rows[id] = row
	return 1, nil
}

func (r *memAlunoRepo) SetActive(_ context.Context, ids []int64, active bool, updatedBy *int64, now time.Time) (int64, error) {
	var affected int64
	for _, id := range ids {
		row, ok := r.rows[id]
		if !ok {
			continue
		}
		row.Active = active
		row.UpdatedAt = now
		row.UpdatedBy = updatedBy
		r.rows[id] = row
		affected++
	}
	return affected, nil
}

func (r *memAlunoRepo) CountActive(_ context.Context) (int64, error) {
	var count int64
	for _, row := range r.rows {
		if row.Active {
			count++
		}
	}
	return count, nil
}

func (r *memAlunoRepo) CollectEmails(_ context.Context, ids []int64) ([]string, error) {
	var emails []string
	for _, id := range ids {
		row, ok := r.rows[id]
		if !ok || row.Email == "" {
			continue
		}
		emails = append(emails, row.Email)
	}
	sort.Strings(emails)
	return emails, nil
}

type memUserRepo struct {
	nextID    int64
	rows      map[int64]models.User
	redirects map[int64]int64 // userID -> sentinelID for audit redirection
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{
		rows:      make(map[int64]models.User),
		redirects: make(map[int64]int64),
	}
}

func (r *memUserRepo) Create(_ context.Context, user *models.User) error {
	for _, row := range r.rows {
		if row.Email == user.Email {
			return duplicateErr(repositories.ConstraintUserEmail)
		}
	}
	r.nextID++
	user.ID = r.nextID
	r.rows[user.ID] = *user
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	row, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	out := row
	return &out, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, row := range r.rows {
		if row.Email == email {
			out := row
			return &out, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	user, err := r.GetByEmail(ctx, email)
	return user != nil, err
}

func (r *memUserRepo) GetOrCreateSentinel(ctx context.Context) (*models.User, error) {
	if sentinel, _ := r.GetByEmail(ctx, models.SentinelUserEmail); sentinel != nil {
		return sentinel, nil
	}
	sentinel := &models.User{
		Email:    models.SentinelUserEmail,
		FullName: "Deleted User",
	}
	if err := r.Create(ctx, sentinel); err != nil {
		return nil, err
	}
	return sentinel, nil
}

func (r *memUserRepo) DeleteWithAuditRedirect(_ context.Context, userID, sentinelID int64) error {
	if _, ok := r.rows[userID]; !ok {
		return pgx.ErrNoRows
	}
	r.redirects[userID] = sentinelID
	delete(r.rows, userID)
	return nil
}
