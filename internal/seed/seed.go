package seed

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/srkad/placement-portal/internal/app/models"
	appRepos "github.com/srkad/placement-portal/internal/app/repositories"
	"github.com/srkad/placement-portal/internal/config"
)

// CreateDefaultData ensures the default admin account exists so the dashboard
// is reachable on a fresh database. The insert is idempotent.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		lgr.Warn().Msg("Admin seed skipped: no admin credentials configured")
		return nil
	}

	userRepo := appRepos.NewUserRepository(dbPool)

	admin := &appModels.User{
		Name:     cfg.Admin.Name,
		Email:    cfg.Admin.Email,
		Password: cfg.Admin.Password,
		IsAdmin:  true,
	}

	created, err := userRepo.CreateIfAbsent(ctx, admin)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to seed admin account")
		return err
	}

	if created {
		lgr.Info().Str("email", admin.Email).Msg("Default admin account created")
	}
	return nil
}
