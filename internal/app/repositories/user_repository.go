package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mfreitas/sistema-escolar/internal/app/models"
	"github.com/mfreitas/sistema-escolar/internal/db"
)

type userRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *pgxpool.Pool) UserRepository {
	return &userRepository{db: db}
}

func scanUser(row pgx.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.Password,
		&user.FullName,
		&user.IsStaff,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create inserts a new user and fills in its assigned id
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (email, password, full_name, is_staff, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	return r.db.QueryRow(ctx, query,
		user.Email, user.Password, user.FullName, user.IsStaff,
		user.CreatedAt, user.UpdatedAt).Scan(&user.ID)
}

// GetByID retrieves a user by id, (nil, nil) when absent
func (r *userRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := `
		SELECT id, email, password, full_name, is_staff, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	return user, nil
}

// GetByEmail retrieves a user by email, (nil, nil) when absent
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT id, email, password, full_name, is_staff, created_at, updated_at
		FROM users
		WHERE email = $1
	`

	user, err := scanUser(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	return user, nil
}

// EmailExists checks if a user exists with the given email
func (r *userRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking user existence: %w", err)
	}
	return exists, nil
}

// GetOrCreateSentinel lazily creates the placeholder "deleted user" account.
// The insert races safely under concurrency: ON CONFLICT DO NOTHING leaves
// exactly one row keyed by the users email constraint, and the following
// select returns it either way.
func (r *userRepository) GetOrCreateSentinel(ctx context.Context) (*models.User, error) {
	now := time.Now().UTC()
	_, err := r.db.Exec(ctx, `
		INSERT INTO users (email, password, full_name, is_staff, created_at, updated_at)
		VALUES ($1, '', 'Deleted User', FALSE, $2, $2)
		ON CONFLICT (email) DO NOTHING`,
		models.SentinelUserEmail, now)
	if err != nil {
		return nil, fmt.Errorf("error creating sentinel user: %w", err)
	}

	sentinel, err := r.GetByEmail(ctx, models.SentinelUserEmail)
	if err != nil {
		return nil, err
	}
	if sentinel == nil {
		return nil, fmt.Errorf("sentinel user missing after get-or-create")
	}

	return sentinel, nil
}

// DeleteWithAuditRedirect redirects every audit reference of the user to the
// sentinel and removes the account, all in one transaction.
func (r *userRepository) DeleteWithAuditRedirect(ctx context.Context, userID, sentinelID int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		redirects := []string{
			`UPDATE cursos SET created_by = $1 WHERE created_by = $2`,
			`UPDATE cursos SET updated_by = $1 WHERE updated_by = $2`,
			`UPDATE alunos SET created_by = $1 WHERE created_by = $2`,
			`UPDATE alunos SET updated_by = $1 WHERE updated_by = $2`,
		}
		for _, stmt := range redirects {
			if _, err := tx.Exec(ctx, stmt, sentinelID, userID); err != nil {
				return fmt.Errorf("error redirecting audit references: %w", err)
			}
		}

		cmdTag, err := tx.Exec(ctx, `DELETE FROM users WHERE id = $1`, userID)
		if err != nil {
			return fmt.Errorf("error deleting user: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return pgx.ErrNoRows
		}

		return nil
	})
}
