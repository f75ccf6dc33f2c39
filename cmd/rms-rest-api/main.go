// cmd/rms-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "github.com/MGTheTrain/rms/internal/api/rest/v1"
	"github.com/MGTheTrain/rms/internal/app"
	"github.com/MGTheTrain/rms/internal/domain/auth"
	"github.com/MGTheTrain/rms/internal/domain/employees"
	"github.com/MGTheTrain/rms/internal/domain/history"
	"github.com/MGTheTrain/rms/internal/domain/organizations"
	"github.com/MGTheTrain/rms/internal/domain/positions"
	"github.com/MGTheTrain/rms/internal/domain/ranks"
	"github.com/MGTheTrain/rms/internal/domain/shared"
	"github.com/MGTheTrain/rms/internal/domain/users"
	"github.com/MGTheTrain/rms/internal/infrastructure/persistence"
	"github.com/MGTheTrain/rms/internal/infrastructure/security"
	"github.com/MGTheTrain/rms/internal/pkg/config"
	"github.com/MGTheTrain/rms/internal/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const shutdownTimeout = 15 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/rest-app.yaml"
	}
	if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
		configPath = ""
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	// Initialize application dependencies
	deps, err := initializeDependencies(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer func() {
		if err := persistence.CloseDB(deps.db); err != nil {
			log.Error("Failed to close database: ", err)
		}
	}()

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(restConfig, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	db       *gorm.DB
	services *appServices
}

type appRepositories struct {
	user                users.UserRepository
	employee            employees.EmployeeRepository
	organization        organizations.OrganizationRepository
	position            positions.PositionRepository
	rank                ranks.RankRepository
	employeeHistory     history.HistoryRepository
	organizationHistory history.HistoryRepository
	transactor          shared.Transactor
}

type appServices struct {
	auth                auth.AuthService
	user                users.UserService
	employee            employees.EmployeeService
	organization        organizations.OrganizationService
	position            positions.PositionService
	rank                ranks.RankService
	employeeHistory     history.HistoryService
	organizationHistory history.HistoryService
}

// initializeDependencies sets up all application components
func initializeDependencies(cfg *config.RestConfig, log logger.Logger) (*appDependencies, error) {
	// Initialize database
	db, err := persistence.NewDBConnection(cfg.Database, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	// Run migrations
	if err := persistence.Migrate(db); err != nil {
		return nil, err
	}
	log.Info("Database migrations completed successfully")

	// Initialize repositories
	repos, err := initializeRepositories(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize repositories: %w", err)
	}

	// Initialize security providers
	tokens, err := security.NewJWTTokenProvider(&cfg.JWT)
	if err != nil {
		return nil, fmt.Errorf("failed to create token provider: %w", err)
	}

	hasher, err := security.NewBcryptHasher(0)
	if err != nil {
		return nil, fmt.Errorf("failed to create password hasher: %w", err)
	}

	// Initialize services
	services, err := initializeApplicationServices(repos, tokens, hasher, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	return &appDependencies{
		db:       db,
		services: services,
	}, nil
}

// initializeRepositories sets up the gorm repositories and the transactor
func initializeRepositories(db *gorm.DB, log logger.Logger) (*appRepositories, error) {
	var (
		repos appRepositories
		err   error
	)

	if repos.user, err = persistence.NewGormUserRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create user repository: %w", err)
	}
	if repos.employee, err = persistence.NewGormEmployeeRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create employee repository: %w", err)
	}
	if repos.organization, err = persistence.NewGormOrganizationRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create organization repository: %w", err)
	}
	if repos.position, err = persistence.NewGormPositionRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create position repository: %w", err)
	}
	if repos.rank, err = persistence.NewGormRankRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create rank repository: %w", err)
	}
	if repos.employeeHistory, err = persistence.NewGormEmployeeHistoryRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create employee history repository: %w", err)
	}
	if repos.organizationHistory, err = persistence.NewGormOrganizationHistoryRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create organization history repository: %w", err)
	}
	if repos.transactor, err = persistence.NewGormTransactor(db, log); err != nil {
		return nil, fmt.Errorf("failed to create transactor: %w", err)
	}

	return &repos, nil
}

// initializeApplicationServices sets up all application services
func initializeApplicationServices(
	repos *appRepositories,
	tokens auth.TokenProvider,
	hasher auth.PasswordHasher,
	log logger.Logger,
) (*appServices, error) {
	employeeRecorder, err := app.NewHistoryRecorder(repos.employeeHistory)
	if err != nil {
		return nil, fmt.Errorf("failed to create employee history recorder: %w", err)
	}

	organizationRecorder, err := app.NewHistoryRecorder(repos.organizationHistory)
	if err != nil {
		return nil, fmt.Errorf("failed to create organization history recorder: %w", err)
	}

	authService, err := app.NewAuthService(repos.user, tokens, hasher, repos.transactor, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create auth service: %w", err)
	}

	userService, err := app.NewUserService(repos.user, hasher, repos.transactor, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %w", err)
	}

	employeeService, err := app.NewEmployeeService(repos.employee, employeeRecorder, repos.transactor, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create employee service: %w", err)
	}

	organizationService, err := app.NewOrganizationService(repos.organization, repos.employee, organizationRecorder, repos.transactor, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create organization service: %w", err)
	}

	positionService, err := app.NewPositionService(repos.position, repos.transactor, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create position service: %w", err)
	}

	rankService, err := app.NewRankService(repos.rank, repos.transactor, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create rank service: %w", err)
	}

	employeeHistoryService, err := app.NewHistoryService(repos.employeeHistory)
	if err != nil {
		return nil, fmt.Errorf("failed to create employee history service: %w", err)
	}

	organizationHistoryService, err := app.NewHistoryService(repos.organizationHistory)
	if err != nil {
		return nil, fmt.Errorf("failed to create organization history service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &appServices{
		auth:                authService,
		user:                userService,
		employee:            employeeService,
		organization:        organizationService,
		position:            positionService,
		rank:                rankService,
		employeeHistory:     employeeHistoryService,
		organizationHistory: organizationHistoryService,
	}, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, deps *appDependencies, log logger.Logger) error {
	if cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(v1.RequestLogger(log))

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type", v1.TraceIDHeader},
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
	}))

	// Setup API routes
	v1.SetupRoutes(r,
		deps.services.auth,
		deps.services.user,
		deps.services.employee,
		deps.services.organization,
		deps.services.position,
		deps.services.rank,
		deps.services.employeeHistory,
		deps.services.organizationHistory,
		cfg.JWT.RequireAuth,
	)

	// Create HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal ", sig, ", initiating graceful shutdown")
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
