// File: doctorsportal/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"doctorsportal/config"
	"doctorsportal/cron"
	"doctorsportal/database"
	bookingRepo "doctorsportal/database/repository/booking"
	serviceRepo "doctorsportal/database/repository/service"
	userRepoPkg "doctorsportal/database/repository/user"
	"doctorsportal/handlers"
	"doctorsportal/middleware"
	"doctorsportal/routes"
	"doctorsportal/services/booking"
	"doctorsportal/services/notification"
	"doctorsportal/services/tasks"
	"doctorsportal/services/user"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	cfg := config.AppConfig
	utils.InitializeLogger(cfg.IsProduction(), cfg.LogLevel)
	logger := utils.GetLogger()
	defer logger.Sync()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	client, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("main: failed to connect to MongoDB", zap.Error(err))
	}
	db := client.Database(cfg.DatabaseName)
	logger.Info("Connected to MongoDB", zap.String("database", cfg.DatabaseName))

	// repositories.
	svcRepo := serviceRepo.NewMongoServiceRepo(db)
	bkRepo := bookingRepo.NewMongoBookingRepo(db)
	userRepo := userRepoPkg.NewMongoUserRepo(db)
	for name, ensure := range map[string]func(context.Context) error{
		"services": svcRepo.EnsureIndexes,
		"bookings": bkRepo.EnsureIndexes,
		"users":    userRepo.EnsureIndexes,
	} {
		if err := ensure(ctx); err != nil {
			logger.Fatal("main: failed to ensure indexes", zap.String("collection", name), zap.Error(err))
		}
	}

	// confirmation queue.
	var (
		confirmations booking.ConfirmationEnqueuer = tasks.NoopEnqueuer{}
		redisPinger   utils.Pinger
		worker        *cron.ConfirmationWorker
		queueClient   *asynq.Client
	)
	if cfg.QueueEnabled {
		redisClient, err := utils.NewRedisClient(utils.RedisOptions{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisQueueDB,
		})
		if err != nil {
			logger.Fatal("main: failed to connect to Redis", zap.Error(err))
		}
		defer redisClient.Close()
		redisPinger = utils.PingerFunc(func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		})

		redisOpt := asynq.RedisClientOpt{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisQueueDB,
		}
		queueClient = asynq.NewClient(redisOpt)
		confirmations = &tasks.AsynqEnqueuer{Client: queueClient}

		worker = cron.InitConfirmationWorker(cron.WorkerOptions{
			Redis:       redisOpt,
			Concurrency: cfg.WorkerConcurrency,
		}, &notification.LogNotifier{Logger: logger}, logger)
		if err := worker.Start(); err != nil {
			logger.Fatal("main: failed to start confirmation worker", zap.Error(err))
		}
	} else {
		logger.Info("Confirmation queue disabled")
	}

	health := utils.NewHealthMonitor(
		utils.PingerFunc(func(ctx context.Context) error {
			return client.Ping(ctx, readpref.Primary())
		}),
		redisPinger,
		30*time.Second,
	)
	health.Start(ctx)

	// services.
	tokens := utils.NewTokenService(cfg.AccessTokenSecret, cfg.TokenTTL)
	bookingService := &booking.DefaultBookingService{
		Services:      svcRepo,
		Bookings:      bkRepo,
		Confirmations: confirmations,
		Logger:        logger,
	}
	userService := &user.DefaultUserService{
		Repo:   userRepo,
		Tokens: tokens,
	}

	bookingHandler := handlers.NewBookingHandler(bookingService)
	userHandler := handlers.NewUserHandler(userService)
	adminHandler := handlers.NewAdminHandler(userService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Tokens:                tokens,
		AdminCheckRequireAuth: cfg.AdminCheckRequireAuth,
		CORSAllowOrigins:      cfg.CORSAllowOrigins,

		// Catalogue and availability.
		GetServicesHandler:     bookingHandler.GetServices,
		GetAvailabilityHandler: bookingHandler.GetAvailability,

		// Booking endpoints.
		CreateBookingHandler:      bookingHandler.CreateBooking,
		GetPatientBookingsHandler: bookingHandler.GetPatientBookings,

		// User endpoints.
		GetAllUsersHandler: userHandler.GetAllUsersHandler,
		UpsertUserHandler:  userHandler.UpsertUserHandler,

		// Admin endpoints.
		CheckAdminHandler:   adminHandler.CheckAdminHandler,
		PromoteAdminHandler: adminHandler.PromoteAdminHandler,

		HealthHandler: handlers.HealthHandler(health),
	}
	if !cfg.AdminCheckRequireAuth {
		logger.Warn("GET /admin/:email is served without authentication; set ADMIN_CHECK_REQUIRE_AUTH=true to guard it")
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin))

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := cfg.AppPort
	if port == "" {
		port = "5000"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("main: server forced to shutdown", zap.Error(err))
	}

	if worker != nil {
		worker.Shutdown()
	}
	if queueClient != nil {
		if err := queueClient.Close(); err != nil {
			logger.Warn("main: failed to close queue client", zap.Error(err))
		}
	}
	if err := database.Disconnect(client); err != nil {
		logger.Warn("main: failed to disconnect from MongoDB", zap.Error(err))
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
