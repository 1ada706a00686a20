package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"doctorbot/config"
	deliveryHttp "doctorbot/internal/delivery/http"
	"doctorbot/internal/delivery/http/handler"
	"doctorbot/internal/delivery/http/middleware"
	"doctorbot/internal/infrastructure/cache"
	"doctorbot/internal/infrastructure/database"
	"doctorbot/internal/job"
	"doctorbot/internal/repository"
	"doctorbot/internal/service"
	"doctorbot/internal/telegram"
	"doctorbot/internal/usecase"
	"doctorbot/internal/worker"
	"doctorbot/pkg/jwt"
	"doctorbot/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
	Pool        *worker.Pool
	Sync        *job.MembershipSync

	syncCancel context.CancelFunc
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	setupLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	if err := database.RunMigrations(cfg.DB); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	logrus.Info("Migrations applied")

	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	app.initialize(cfg, db, redisClient)

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

func (app *App) initialize(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) {
	log := logrus.StandardLogger()

	jwtService := jwt.NewJWTService(cfg.JWT)
	customValidator := validator.NewValidator()

	// Repositories
	userRepo := repository.NewUserRepository()
	editorRepo := repository.NewEditorRepository()
	doctorRepo := repository.NewDoctorRepository()
	polyclinicRepo := repository.NewPolyclinicRepository()
	specialityRepo := repository.NewSpecialityRepository()
	districtRepo := repository.NewDistrictRepository()
	positionRepo := repository.NewPositionRepository()
	scheduleRepo := repository.NewScheduleRepository()
	shareRepo := repository.NewShareRepository()
	phoneRepo := repository.NewPhoneRepository()
	addressRepo := repository.NewAddressRepository()

	// Outbound messaging
	tgClient := telegram.NewClient(cfg.Telegram.Token, log)
	pool := worker.NewPool(cfg.Worker.PoolSize, cfg.Worker.QueueSize, log)
	app.Pool = pool

	jobs := job.NewJobs(db, log, pool, tgClient, specialityRepo, districtRepo, doctorRepo, polyclinicRepo)
	searchState := service.NewSearchStateService(redisClient, cfg.Telegram.SearchTTL)

	// Channel membership sync
	roster := telegram.NewRoster(tgClient, cfg.Telegram.ChannelID)
	app.Sync = job.NewMembershipSync(db, log, userRepo, roster, jobs, cfg.Sync.Interval, cfg.Sync.RetryDelay)

	// Usecases
	webhookUsecase := usecase.NewWebhookUsecase(db, log, jobs, searchState, userRepo, shareRepo, doctorRepo, polyclinicRepo)
	authUsecase := usecase.NewAuthUsecase(db, log, editorRepo, jwtService, redisClient)
	doctorUsecase := usecase.NewDoctorUsecase(db, log, doctorRepo)
	polyclinicUsecase := usecase.NewPolyclinicUsecase(db, log, polyclinicRepo)
	shareUsecase := usecase.NewShareUsecase(db, log, shareRepo)
	scheduleUsecase := usecase.NewScheduleUsecase(db, log, scheduleRepo)
	lookupUsecase := usecase.NewLookupUsecase(db, log, specialityRepo, districtRepo, positionRepo)
	contactUsecase := usecase.NewContactUsecase(db, log, phoneRepo, addressRepo)

	// Handlers
	webhookHandler := handler.NewWebhookHandler(webhookUsecase, log, cfg.Telegram.WebhookSecret)
	authHandler := handler.NewAuthHandler(authUsecase, customValidator, jwtService)
	doctorHandler := handler.NewDoctorHandler(doctorUsecase, customValidator)
	polyclinicHandler := handler.NewPolyclinicHandler(polyclinicUsecase, customValidator)
	shareHandler := handler.NewShareHandler(shareUsecase, customValidator)
	scheduleHandler := handler.NewScheduleHandler(scheduleUsecase, customValidator)
	lookupHandler := handler.NewLookupHandler(lookupUsecase, customValidator)
	contactHandler := handler.NewContactHandler(contactUsecase, customValidator)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware()
	loggingMiddleware := middleware.NewLoggingMiddleware(log)

	router := deliveryHttp.NewRouter(
		webhookHandler,
		authHandler,
		doctorHandler,
		polyclinicHandler,
		shareHandler,
		scheduleHandler,
		lookupHandler,
		contactHandler,
		authMiddleware,
		corsMiddleware,
		loggingMiddleware,
	)

	app.Server = &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.App.Port),
		Handler: router.Setup(),
	}
}

// Run starts the worker pool, the membership sync and the HTTP server,
// then blocks until shutdown
func (app *App) Run() {
	app.Pool.Start()

	syncCtx, cancel := context.WithCancel(context.Background())
	app.syncCancel = cancel
	go app.Sync.Start(syncCtx)

	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Stop accepting webhooks first so nothing new enters the queue
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	if app.syncCancel != nil {
		app.syncCancel()
	}

	// Drain queued jobs before closing connections
	app.Pool.Stop()

	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
