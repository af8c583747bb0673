package seed

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/akshayp/cetadvisor/internal/app/models"
	appRepos "github.com/akshayp/cetadvisor/internal/app/repositories"
	"github.com/akshayp/cetadvisor/internal/config"
	"github.com/akshayp/cetadvisor/internal/pkg/auth"
)

// CreateDefaultData seeds the admin account from configuration and a few
// sample announcements when the updates table is empty. Failures are
// collected and reported but never abort startup.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	adminRepo := appRepos.NewAdminUserRepository(dbPool)
	updateRepo := appRepos.NewUpdateRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data (admin account, sample updates)...")
	var finalErr error

	// --- Admin account from configuration --- //
	if cfg.Admin.Email != "" && cfg.Admin.Password != "" {
		exists, err := adminRepo.ExistsByEmail(ctx, cfg.Admin.Email)
		if err != nil {
			lgr.Error().Err(err).Msg("Error checking if admin user exists")
			finalErr = errors.Join(finalErr, err)
		} else if !exists {
			lgr.Info().Str("email", cfg.Admin.Email).Msg("Creating admin user...")

			passwordHash, err := auth.HashPassword(cfg.Admin.Password)
			if err != nil {
				lgr.Error().Err(err).Msg("Error hashing admin password")
				finalErr = errors.Join(finalErr, err)
			} else {
				admin := &appModels.AdminUser{
					Email:        cfg.Admin.Email,
					PasswordHash: passwordHash,
					Role:         appModels.RoleAdmin,
				}
				if err := adminRepo.Create(ctx, admin); err != nil {
					lgr.Error().Err(err).Msg("Error creating admin user")
					finalErr = errors.Join(finalErr, err)
				} else {
					lgr.Info().Str("adminID", admin.ID).Msg("Admin user created successfully")
				}
			}
		} else {
			lgr.Info().Msg("Admin user already exists, skipping creation")
		}
	} else {
		lgr.Info().Msg("Admin credentials not configured, skipping admin creation")
	}

	// --- Sample updates when the feed is empty --- //
	count, err := updateRepo.Count(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Error counting updates")
		return errors.Join(finalErr, err)
	}
	if count > 0 {
		return finalErr
	}

	lgr.Info().Msg("Inserting sample updates...")
	samples := []appModels.Update{
		{
			Title:         "CAP Round 1 Schedule Announced",
			Content:       "The first round of Common Admission Process (CAP) for MHT CET 2026 will begin from March 15, 2026. Candidates are advised to complete their registration and document verification before the deadline.",
			PublishedDate: time.Date(2026, time.February, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			Title:         "Important: Document Verification Process",
			Content:       "All candidates must upload scanned copies of their documents including 10th and 12th mark sheets, caste certificate (if applicable), and domicile certificate. Ensure all documents are clear and legible.",
			PublishedDate: time.Date(2026, time.February, 12, 0, 0, 0, 0, time.UTC),
		},
		{
			Title:         "Cutoff Trends for 2025 Released",
			Content:       "The State CET Cell has released the final cutoff data for the academic year 2025. Students can use this information to make informed decisions during the counseling process.",
			PublishedDate: time.Date(2026, time.February, 14, 0, 0, 0, 0, time.UTC),
		},
	}
	for i := range samples {
		if err := updateRepo.Create(ctx, &samples[i]); err != nil {
			lgr.Error().Err(err).Str("title", samples[i].Title).Msg("Error inserting sample update")
			finalErr = errors.Join(finalErr, err)
		}
	}

	lgr.Info().Msg("Default data check/creation finished.")
	return finalErr
}
