package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/skillpoint/institute-backend/internal/app/controllers"
	appMigrations "github.com/skillpoint/institute-backend/internal/app/migrations"
	appRepos "github.com/skillpoint/institute-backend/internal/app/repositories"
	appRoutes "github.com/skillpoint/institute-backend/internal/app/routes"
	appServices "github.com/skillpoint/institute-backend/internal/app/services"
	"github.com/skillpoint/institute-backend/internal/config"
	"github.com/skillpoint/institute-backend/internal/db"
	appMiddleware "github.com/skillpoint/institute-backend/internal/middleware"
	"github.com/skillpoint/institute-backend/internal/pkg/filestorage"
	"github.com/skillpoint/institute-backend/internal/pkg/helpers"
	"github.com/skillpoint/institute-backend/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	StudentService        *appServices.StudentService
	CourseService         *appServices.CourseService
	FeeLedgerService      *appServices.FeeLedgerService
	CertificateService    *appServices.CertificateService
	DashboardService      *appServices.DashboardService
	StudentController     *appControllers.StudentController
	CourseController      *appControllers.CourseController
	FeeController         *appControllers.FeeController
	CertificateController *appControllers.CertificateController
	DashboardController   *appControllers.DashboardController
	Repos                 *appRepos.Repositories
	Logger                zerolog.Logger
	FileStorage           *filestorage.LocalStorage
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := database.Pool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		database.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database)

	// File storage base URL must match the static file serving path
	var err error
	baseURL := "http://localhost:" + cfg.Server.Port
	fileStorageBaseURL := baseURL + "/uploads"
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, fileStorageBaseURL)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository, lgr)
	deps.CourseService = appServices.NewCourseService(deps.Repos.CourseRepository)
	deps.FeeLedgerService = appServices.NewFeeLedgerService(deps.Repos.FeeRepository, lgr)
	deps.CertificateService = appServices.NewCertificateService(deps.Repos.CertificateRepository, deps.Repos.StudentRepository, lgr)
	deps.DashboardService = appServices.NewDashboardService(deps.Repos.DashboardRepository)

	deps.StudentController = appControllers.NewStudentController(deps.StudentService, deps.FileStorage)
	deps.CourseController = appControllers.NewCourseController(deps.CourseService)
	deps.FeeController = appControllers.NewFeeController(deps.FeeLedgerService)
	deps.CertificateController = appControllers.NewCertificateController(deps.CertificateService)
	deps.DashboardController = appControllers.NewDashboardController(deps.DashboardService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger())

	requestTimeout := helpers.ParseDuration(cfg.Server.RequestTimeout, 15*time.Second)
	router.Use(appMiddleware.RequestTimeout(requestTimeout))

	appRoutes.SetupRouter(router,
		deps.DashboardController,
		deps.StudentController,
		deps.FeeController,
		deps.CourseController,
		deps.CertificateController,
	)

	return router
}
