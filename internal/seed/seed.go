package seed

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	appModels "github.com/mfreitas/sistema-escolar/internal/app/models"
	appRepos "github.com/mfreitas/sistema-escolar/internal/app/repositories"
	"github.com/mfreitas/sistema-escolar/internal/pkg/auth"
	"github.com/rs/zerolog"
)

// DefaultAdminEmail is the account created on first startup
const DefaultAdminEmail = "admin@escola.local"

// CreateDefaultData seeds the sentinel user, the default staff account and a
// couple of starter cursos. Safe to run on every startup.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)
	cursoRepo := appRepos.NewCursoRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data...")
	var finalErr error

	// Sentinel user, referenced when an account is removed
	if _, err := userRepo.GetOrCreateSentinel(ctx); err != nil {
		lgr.Error().Err(err).Msg("Error creating sentinel user")
		finalErr = errors.Join(finalErr, err)
	}

	// Default staff account
	exists, err := userRepo.EmailExists(ctx, DefaultAdminEmail)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking if admin user exists")
		finalErr = errors.Join(finalErr, err)
	} else if !exists {
		lgr.Info().Msg("Creating default admin user...")

		hashedPassword, err := auth.HashPassword("Admin123!")
		if err != nil {
			lgr.Error().Err(err).Msg("Error hashing admin password")
			finalErr = errors.Join(finalErr, err)
		} else {
			now := time.Now().UTC()
			admin := &appModels.User{
				Email:     DefaultAdminEmail,
				Password:  hashedPassword,
				FullName:  "Administrador do Sistema",
				IsStaff:   true,
				CreatedAt: now,
				UpdatedAt: now,
			}

			if err := userRepo.Create(ctx, admin); err != nil {
				lgr.Error().Err(err).Msg("Error creating admin user")
				finalErr = errors.Join(finalErr, err)
			} else {
				lgr.Info().Int64("adminID", admin.ID).Msg("Default admin user created successfully")
			}
		}
	} else {
		lgr.Info().Msg("Admin user already exists, skipping creation")
	}

	// Starter cursos, created only on an empty store
	count, err := cursoRepo.CountActive(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Error counting cursos")
		finalErr = errors.Join(finalErr, err)
	} else if count == 0 {
		now := time.Now().UTC()
		starters := []appModels.Curso{
			{
				ExternalID:      uuid.New(),
				Name:            "Ciência da Computação",
				Code:            "CC-001",
				CoordinatorName: "Prof. Carlos Silva",
				Description:     "Bacharelado em Ciência da Computação",
				CreditHours:     3200,
				Active:          true,
				CreatedAt:       now,
				UpdatedAt:       now,
			},
			{
				ExternalID:      uuid.New(),
				Name:            "Engenharia de Software",
				Code:            "ES-001",
				CoordinatorName: "Profa. Maria Santos",
				Description:     "Bacharelado em Engenharia de Software",
				CreditHours:     3000,
				Active:          true,
				CreatedAt:       now,
				UpdatedAt:       now,
			},
		}

		for i := range starters {
			if err := cursoRepo.Create(ctx, &starters[i]); err != nil {
				lgr.Error().Err(err).Str("code", starters[i].Code).Msg("Error creating starter curso")
				finalErr = errors.Join(finalErr, err)
			}
		}
	}

	lgr.Info().Msg("Default data check/creation finished.")
	return finalErr
}
