package seed

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	appServices "github.com/rushiiaher/CivilPath-sub000/internal/app/services"
	"github.com/rushiiaher/CivilPath-sub000/internal/pkg/apperrors"
)

// CreateDefaultData inserts the default resource types into an empty table
// and creates the configured admin account when a password is configured.
// Both steps are idempotent. Failures are collected, not short-circuited.
func CreateDefaultData(ctx context.Context, svcs *appServices.Services, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default data (resource types, admin)...")
	var finalErr error

	inserted, err := svcs.Resource.SeedTypes(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Error seeding resource types")
		finalErr = errors.Join(finalErr, err)
	} else if inserted > 0 {
		lgr.Info().Int("inserted", inserted).Msg("Default resource types created")
	} else {
		lgr.Info().Msg("Resource types already present, skipping")
	}

	admin, err := svcs.Auth.CreateAdmin(ctx)
	switch {
	case err == nil:
		lgr.Info().Int64("adminID", admin.ID).Str("username", admin.Username).Msg("Default admin user created successfully")
	case errors.Is(err, apperrors.ErrConflict):
		lgr.Info().Msg("Admin user already exists, skipping creation")
	case errors.Is(err, apperrors.ErrValidationFailed):
		lgr.Info().Str("reason", err.Error()).Msg("Admin user not configured, skipping creation")
	default:
		lgr.Error().Err(err).Msg("Error creating admin user")
		finalErr = errors.Join(finalErr, err)
	}

	lgr.Info().Msg("Default data check/creation finished.")
	return finalErr
}
