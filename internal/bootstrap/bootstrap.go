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
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/akshayp/cetadvisor/internal/app/controllers"
	appMigrations "github.com/akshayp/cetadvisor/internal/app/migrations"
	appRepos "github.com/akshayp/cetadvisor/internal/app/repositories"
	appRoutes "github.com/akshayp/cetadvisor/internal/app/routes"
	appServices "github.com/akshayp/cetadvisor/internal/app/services"
	"github.com/akshayp/cetadvisor/internal/config"
	"github.com/akshayp/cetadvisor/internal/db"
	appMiddleware "github.com/akshayp/cetadvisor/internal/middleware"
	pkgAuth "github.com/akshayp/cetadvisor/internal/pkg/auth"
	"github.com/akshayp/cetadvisor/internal/pkg/calendar"
	"github.com/akshayp/cetadvisor/internal/pkg/email"
	"github.com/akshayp/cetadvisor/internal/pkg/helpers"
	"github.com/akshayp/cetadvisor/internal/pkg/logger"
	"github.com/akshayp/cetadvisor/internal/pkg/metrics"
	"github.com/akshayp/cetadvisor/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService         *appServices.AuthService
	UpdateService       *appServices.UpdateService
	CutoffService       *appServices.CutoffService
	PredictorService    *appServices.PredictorService
	GuideService        *appServices.GuideService
	BookingService      *appServices.BookingService
	AuthController      *appControllers.AuthController
	UpdateController    *appControllers.UpdateController
	CutoffController    *appControllers.CutoffController
	PredictorController *appControllers.PredictorController
	GuideController     *appControllers.GuideController
	BookingController   *appControllers.BookingController
	AuthMiddleware      *appMiddleware.AuthMiddleware
	PublicWriteLimiter  *appMiddleware.TokenBucket
	Repos               *appRepos.Repositories
	JWTService          *pkgAuth.JWTService
	Calendar            *calendar.Client
	Mailer              email.Sender
	Metrics             *metrics.Metrics
	Logger              zerolog.Logger
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

// SetupDatabase establishes the database connection, runs migrations and
// seeds default data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

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

	if err := seed.CreateDefaultData(context.Background(), dbPool, cfg, lgr); err != nil {
		// Seeding failures should not block startup
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 24*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.Calendar = calendar.NewClient(calendar.Config{
		ClientID:     cfg.Calendar.ClientID,
		ClientSecret: cfg.Calendar.ClientSecret,
		RefreshToken: cfg.Calendar.RefreshToken,
		CalendarID:   cfg.Calendar.CalendarID,
	}, lgr)

	deps.Mailer = email.NewSender(email.SMTPConfig{
		Host:      cfg.SMTP.Host,
		Port:      cfg.SMTP.Port,
		Username:  cfg.SMTP.Username,
		Password:  cfg.SMTP.Password,
		FromName:  cfg.SMTP.FromName,
		FromEmail: cfg.SMTP.FromEmail,
		UseTLS:    cfg.SMTP.UseTLS,
	}, lgr)

	deps.Metrics = metrics.New()

	deps.AuthService = appServices.NewAuthService(deps.Repos.AdminUserRepository, deps.JWTService, lgr)
	deps.UpdateService = appServices.NewUpdateService(deps.Repos.UpdateRepository)
	deps.CutoffService = appServices.NewCutoffService(deps.Repos.CutoffRepository)
	deps.PredictorService = appServices.NewPredictorService(deps.Repos.CutoffRepository)
	deps.GuideService = appServices.NewGuideService(deps.Repos.GuideRepository, lgr)
	deps.BookingService = appServices.NewBookingService(deps.Repos.BookingRepository, deps.Calendar, deps.Mailer, deps.Metrics, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)
	if cfg.RateLimit.Enabled {
		deps.PublicWriteLimiter = appMiddleware.NewTokenBucket(cfg.RateLimit.Burst, cfg.RateLimit.Rate)
	}

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.UpdateController = appControllers.NewUpdateController(deps.UpdateService)
	deps.CutoffController = appControllers.NewCutoffController(deps.CutoffService)
	deps.PredictorController = appControllers.NewPredictorController(deps.PredictorService, deps.Metrics)
	deps.GuideController = appControllers.NewGuideController(deps.GuideService, deps.Metrics)
	deps.BookingController = appControllers.NewBookingController(deps.BookingService)

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

	router := gin.Default()

	router.Use(appMiddleware.Metrics(deps.Metrics))

	// Setup Swagger
	appRoutes.SetupSwagger(router)

	// Prometheus scrape endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Setup API routes using the dependencies
	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.UpdateController,
		deps.CutoffController,
		deps.PredictorController,
		deps.GuideController,
		deps.BookingController,
		deps.AuthMiddleware,
		deps.PublicWriteLimiter,
	)

	return router
}
