package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/rushiiaher/CivilPath-sub000/internal/app/controllers"
	appMigrations "github.com/rushiiaher/CivilPath-sub000/internal/app/migrations"
	appRepos "github.com/rushiiaher/CivilPath-sub000/internal/app/repositories"
	appRoutes "github.com/rushiiaher/CivilPath-sub000/internal/app/routes"
	appServices "github.com/rushiiaher/CivilPath-sub000/internal/app/services"
	"github.com/rushiiaher/CivilPath-sub000/internal/config"
	"github.com/rushiiaher/CivilPath-sub000/internal/db"
	appMiddleware "github.com/rushiiaher/CivilPath-sub000/internal/middleware"
	"github.com/rushiiaher/CivilPath-sub000/internal/pkg/apperrors"
	pkgAuth "github.com/rushiiaher/CivilPath-sub000/internal/pkg/auth"
	"github.com/rushiiaher/CivilPath-sub000/internal/pkg/filestorage"
	"github.com/rushiiaher/CivilPath-sub000/internal/pkg/helpers"
	"github.com/rushiiaher/CivilPath-sub000/internal/pkg/logger"
	"github.com/rushiiaher/CivilPath-sub000/internal/pkg/ratelimit"
	"github.com/rushiiaher/CivilPath-sub000/internal/pkg/validation"
)

// DefaultConfigPath is used when no --config flag is given
var DefaultConfigPath = filepath.Join("configs", "config.yaml")

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos          *appRepos.Repositories
	Services       *appServices.Services
	Controllers    *appControllers.Controllers
	AuthMiddleware *appMiddleware.AuthMiddleware
	JWTService     *pkgAuth.JWTService
	FileStorage    filestorage.FileStorage
	Redis          *redis.Client // nil when Redis is disabled
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	level := logger.Configure(logger.Config{
		Level:          cfg.Logging.Level,
		Pretty:         strings.EqualFold(cfg.Logging.Format, "text"),
		StackMarshaler: apperrors.MarshalStack,
	})

	lgr := log.Logger
	lgr.Info().Stringer("logLevel", level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// ConnectDatabase opens the connection pool
func ConnectDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(ctx, cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")
	return database.Pool, nil
}

// RunMigrations applies every pending file of the migrations directory
func RunMigrations(ctx context.Context, cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (int, error) {
	migrationsDir := cfg.Database.MigrationsDir
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return 0, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	lgr.Info().Str("path", migrationsDir).Msg("Running database migrations...")
	applied, err := appMigrations.NewMigrator(dbPool, lgr).MigrateFromDirectory(ctx, migrationsDir)
	if err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return applied, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Int("applied", applied).Msg("Database migrations successfully applied.")
	return applied, nil
}

// SetupDatabase connects and migrates
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	dbPool, err := ConnectDatabase(ctx, cfg, lgr)
	if err != nil {
		return nil, err
	}
	if _, err := RunMigrations(ctx, cfg, dbPool, lgr); err != nil {
		dbPool.Close()
		return nil, err
	}
	return dbPool, nil
}

// NewFileStorage returns the backend selected by storage.driver
func NewFileStorage(ctx context.Context, cfg *config.Config) (filestorage.FileStorage, error) {
	if cfg.Storage.Driver == config.StorageDriverS3 {
		s3cfg := cfg.Storage.S3
		return filestorage.NewS3Storage(ctx, filestorage.S3Config{
			Bucket:    s3cfg.Bucket,
			Region:    s3cfg.Region,
			Endpoint:  s3cfg.Endpoint,
			AccessKey: s3cfg.AccessKey,
			SecretKey: s3cfg.SecretKey,
			PublicURL: s3cfg.PublicURL,
		})
	}
	return filestorage.NewLocalStorage(cfg.Server.StoragePath, cfg.UploadsBaseURL())
}

// NewLoginLimiter connects to Redis when enabled. Without Redis the returned
// client is nil and logins are not throttled.
func NewLoginLimiter(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (ratelimit.Limiter, *redis.Client, error) {
	if !cfg.Redis.Enabled {
		lgr.Info().Msg("Redis disabled, login throttling is off")
		return ratelimit.Noop{}, nil, nil
	}

	client, err := ratelimit.NewRedisClient(ctx, cfg.Redis.URL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	window := helpers.ParseDuration(cfg.Auth.LoginWindow, 15*time.Minute)
	lgr.Info().Int("maxAttempts", cfg.Auth.MaxLoginAttempts).Dur("window", window).Msg("Login throttling enabled")
	return ratelimit.NewRedisLimiter(client, "login:", cfg.Auth.MaxLoginAttempts, window), client, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(ctx context.Context, cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	var err error
	deps.FileStorage, err = NewFileStorage(ctx, cfg)
	if err != nil {
		lgr.Error().Err(err).Str("driver", cfg.Storage.Driver).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	limiter, redisClient, err := NewLoginLimiter(ctx, cfg, lgr)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize login limiter")
		return nil, err
	}
	deps.Redis = redisClient

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExp:    helpers.ParseDuration(cfg.JWT.TokenExpiration, pkgAuth.DefaultTokenExpiration),
		TokenIssuer: cfg.JWT.Issuer,
	})

	deps.Services = appServices.NewServices(deps.Repos, appServices.Options{
		JWTService: deps.JWTService,
		Limiter:    limiter,
		Admin: appServices.AdminCredentials{
			Username: cfg.Admin.Username,
			Password: cfg.Admin.Password,
			Email:    cfg.Admin.Email,
		},
		Storage: deps.FileStorage,
		Logger:  lgr,
	})

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)
	deps.Controllers = appControllers.NewControllers(deps.Services)

	return deps, nil
}

// Close releases what BuildDependencies opened besides the pool
func (d *Dependencies) Close() error {
	if d.Redis != nil {
		return d.Redis.Close()
	}
	return nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	if err := validation.Register(); err != nil {
		lgr.Error().Err(err).Msg("Failed to register validation rules")
	}

	router := gin.New()
	router.Use(appMiddleware.Recovery(), appMiddleware.RequestLogger(), appMiddleware.CORS())

	opts := appRoutes.Options{BasePath: cfg.Server.BasePath}
	if cfg.Storage.Driver == config.StorageDriverLocal {
		opts.UploadsPath = cfg.Server.StoragePath
		lgr.Info().Str("path", opts.UploadsPath).Msg("Static file serving configured for uploads directory")
	}

	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware, opts)
	return router
}
