package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rushiiaher/CivilPath-sub000/internal/bootstrap"
	"github.com/rushiiaher/CivilPath-sub000/internal/config"
	"github.com/rushiiaher/CivilPath-sub000/internal/pkg/apperrors"
	"github.com/rushiiaher/CivilPath-sub000/internal/pkg/logger"
	"github.com/rushiiaher/CivilPath-sub000/internal/seed"
	"github.com/rushiiaher/CivilPath-sub000/internal/server"
)

// @title CivilServices.org API
// @version 1.0
// @description Exam-preparation content API: exams, stages, subjects, resources, blog and uploads

// @host localhost:8080
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Admin token, sent as "Bearer <token>"

var configPath string

func main() {
	rootCommand := &cobra.Command{
		Use:           "civilservices-api",
		Short:         "Run the CivilServices.org content API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runServe,
	}
	rootCommand.PersistentFlags().StringVar(&configPath, "config", bootstrap.DefaultConfigPath, "Path to the YAML config file")

	serveCommand := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server (default)",
		RunE:  runServe,
	}

	migrateCommand := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(cmd.Context(), func(ctx context.Context, env *environment) error {
				applied, err := bootstrap.RunMigrations(ctx, env.cfg, env.pool, env.lgr)
				if err != nil {
					return err
				}
				fmt.Printf("Applied %d migration(s)\n", applied)
				return nil
			})
		},
	}

	seedCommand := &cobra.Command{
		Use:   "seed",
		Short: "Insert default resource types and the configured admin",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(cmd.Context(), func(ctx context.Context, env *environment) error {
				return seed.CreateDefaultData(ctx, env.deps.Services, env.lgr)
			})
		},
	}

	createAdminCommand := &cobra.Command{
		Use:   "create-admin",
		Short: "Create the admin account from configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(cmd.Context(), func(ctx context.Context, env *environment) error {
				admin, err := env.deps.Services.Auth.CreateAdmin(ctx)
				if err != nil {
					if errors.Is(err, apperrors.ErrConflict) {
						fmt.Println("Admin user already exists")
						return nil
					}
					return err
				}
				fmt.Printf("Created admin %q (id %d)\n", admin.Username, admin.ID)
				return nil
			})
		},
	}

	rootCommand.AddCommand(serveCommand, migrateCommand, seedCommand, createAdminCommand)

	if err := rootCommand.ExecuteContext(context.Background()); err != nil {
		logger.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	srv, err := server.NewServer(cmd.Context(), configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}
	if err := srv.Run(); err != nil {
		return err
	}
	logger.Info().Msg("Application finished gracefully.")
	return nil
}

type environment struct {
	cfg  *config.Config
	lgr  zerolog.Logger
	pool *pgxpool.Pool
	deps *bootstrap.Dependencies
}

// withDatabase runs fn with configuration, a connection pool and the services,
// and closes everything afterwards
func withDatabase(ctx context.Context, fn func(context.Context, *environment) error) error {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(configPath)
	if err != nil {
		return err
	}

	dbPool, err := bootstrap.ConnectDatabase(ctx, cfg, lgr)
	if err != nil {
		return err
	}
	defer dbPool.Close()

	deps, err := bootstrap.BuildDependencies(ctx, cfg, dbPool, lgr)
	if err != nil {
		return err
	}
	defer deps.Close()

	return fn(ctx, &environment{cfg: cfg, lgr: lgr, pool: dbPool, deps: deps})
}
