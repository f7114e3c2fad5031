package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"alcyxob/gym-manager/internal/api"
	"alcyxob/gym-manager/internal/config"
	"alcyxob/gym-manager/internal/logger"
	"alcyxob/gym-manager/internal/repository/gormrepo"
	"alcyxob/gym-manager/internal/service"

	"github.com/gin-gonic/gin"
)

// @title Gym Manager API
// @version 1.0
// @description Role-based gym management: memberships, workout/diet plans, attendance.
// @host localhost:8080
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		logger.L.Fatal().Err(err).Msg("could not load config")
	}
	logger.Init(cfg.Log.Level)
	logger.L.Info().Msg("configuration loaded")

	// --- Database Connection ---
	db, err := gormrepo.Connect(cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		logger.L.Fatal().Err(err).Str("driver", cfg.Database.Driver).Msg("could not connect to database")
	}
	if err := gormrepo.Migrate(db); err != nil {
		logger.L.Fatal().Err(err).Msg("could not migrate database schema")
	}
	logger.L.Info().Str("driver", cfg.Database.Driver).Msg("database ready")

	// --- Initialize Repositories ---
	userRepo := gormrepo.NewUserRepository(db)
	membershipRepo := gormrepo.NewMembershipRepository(db)
	planRepo := gormrepo.NewWorkoutPlanRepository(db)
	logRepo := gormrepo.NewWorkoutLogRepository(db)
	dietRepo := gormrepo.NewDietPlanRepository(db)
	attendanceRepo := gormrepo.NewAttendanceRepository(db)

	// --- Initialize Services ---
	authService := service.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	userService := service.NewUserService(userRepo)
	membershipService := service.NewMembershipService(membershipRepo)
	planService := service.NewWorkoutPlanService(planRepo)
	logService := service.NewWorkoutLogService(logRepo, cfg.Policy.AllowLogMutation)
	dietService := service.NewDietPlanService(dietRepo)
	attendanceService := service.NewAttendanceService(attendanceRepo, cfg.Policy.AllowLogMutation)
	dashboardService := service.NewDashboardService(userRepo, membershipRepo, logRepo, attendanceRepo)

	// --- Initialize Gin Engine ---
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(api.RequestLogger(), gin.Recovery())

	api.SetupRoutes(
		router,
		cfg.JWT.Secret,
		authService,
		userService,
		membershipService,
		planService,
		logService,
		dietService,
		attendanceService,
		dashboardService,
	)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.L.Info().Str("address", cfg.Server.Address).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L.Fatal().Err(err).Msg("listen and serve")
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.L.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.L.Fatal().Err(err).Msg("server forced to shutdown")
	}

	logger.L.Info().Msg("server exiting")
}
