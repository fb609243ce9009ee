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
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/thequad/api/docs" // Import generated swagger docs
	appControllers "github.com/thequad/api/internal/app/controllers"
	appMigrations "github.com/thequad/api/internal/app/migrations"
	appRepos "github.com/thequad/api/internal/app/repositories"
	appRoutes "github.com/thequad/api/internal/app/routes"
	appServices "github.com/thequad/api/internal/app/services"
	"github.com/thequad/api/internal/config"
	"github.com/thequad/api/internal/db"
	appMiddleware "github.com/thequad/api/internal/middleware"
	pkgAuth "github.com/thequad/api/internal/pkg/auth"
	"github.com/thequad/api/internal/pkg/filestorage"
	"github.com/thequad/api/internal/pkg/helpers"
	"github.com/thequad/api/internal/pkg/logger"
	"github.com/thequad/api/internal/pkg/websocket"
	"github.com/thequad/api/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos                *appRepos.Repositories
	Services             *appServices.Services
	JWTService           *pkgAuth.JWTService
	FileStorage          *filestorage.LocalStorage
	Hub                  *websocket.Hub
	WSHandler            *websocket.Handler
	AuthMiddleware       *appMiddleware.AuthMiddleware
	AuthController       *appControllers.AuthController
	UserController       *appControllers.UserController
	LostFoundController  *appControllers.LostFoundController
	TeamController       *appControllers.TeamController
	CrewController       *appControllers.CrewController
	MentorshipController *appControllers.MentorshipController
	AlertController      *appControllers.AlertController
	ChatController       *appControllers.ChatController
	DashboardController  *appControllers.DashboardController
	Logger               zerolog.Logger
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
		database.Pool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool, lgr)

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

	if err := seed.CreateDefaultData(context.Background(), database.Pool, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return database, nil
}

// BuildDependencies initializes repositories, services and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database.Pool)

	// File storage URLs must match the static file serving endpoint
	baseURL := "http://localhost:" + cfg.Server.Port
	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, baseURL+"/uploads")
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	deps.Hub = websocket.NewHub(lgr)
	go deps.Hub.Run()

	deps.Services = appServices.NewServices(deps.Repos, database, cfg, deps.JWTService, deps.FileStorage, deps.Hub, lgr)

	deps.WSHandler = websocket.NewHandler(deps.Hub, deps.Repos.ChatRepository, deps.Services.Chat, lgr)
	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.Services.Auth)
	deps.UserController = appControllers.NewUserController(deps.Services.User)
	deps.LostFoundController = appControllers.NewLostFoundController(deps.Services.LostFound)
	deps.TeamController = appControllers.NewTeamController(deps.Services.Team)
	deps.CrewController = appControllers.NewCrewController(deps.Services.Crew)
	deps.MentorshipController = appControllers.NewMentorshipController(deps.Services.Mentorship)
	deps.AlertController = appControllers.NewAlertController(deps.Services.Alert)
	deps.ChatController = appControllers.NewChatController(deps.Services.Chat)
	deps.DashboardController = appControllers.NewDashboardController(deps.Services.Dashboard)

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

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.UserController,
		deps.LostFoundController,
		deps.TeamController,
		deps.CrewController,
		deps.MentorshipController,
		deps.AlertController,
		deps.ChatController,
		deps.DashboardController,
		deps.WSHandler,
		deps.AuthMiddleware,
	)

	return router
}
