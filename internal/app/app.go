package app

import (
	"fmt"
	"time"

	"zogiraa_backend/database"
	"zogiraa_backend/internal/auth"
	"zogiraa_backend/internal/config"
	"zogiraa_backend/internal/handlers"
	"zogiraa_backend/internal/logger"
	"zogiraa_backend/internal/middleware"
	"zogiraa_backend/internal/repositories"
	"zogiraa_backend/internal/routes"
	"zogiraa_backend/internal/services"
	"zogiraa_backend/internal/sms"
	"zogiraa_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", "error", err)
	}
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter wires repositories, services and handlers onto a gin
// engine. Tests call it directly with their own config and database.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	userRepo := repositories.NewUserRepository(gormDB)
	otpRepo := repositories.NewOTPRepository(gormDB)
	profileRepo := repositories.NewProfileRepository(gormDB)

	smsProvider, err := sms.NewProvider(cfg)
	if err != nil {
		logger.Fatal("Failed to initialize SMS provider", "error", err)
	}
	logger.Info("SMS provider initialized", "mode", cfg.SMS.Mode)

	tokens := auth.NewTokenService(cfg.JWT.Secret, time.Duration(cfg.JWT.TTLDays)*24*time.Hour)

	serviceContainer := &services.ServiceContainer{
		AuthService:    services.NewAuthService(userRepo, otpRepo, profileRepo, smsProvider, tokens),
		ProfileService: services.NewProfileService(profileRepo),
	}

	appHandlers := handlers.NewAppHandlers(validator.New(), serviceContainer)
	authMW := middleware.AuthMiddleware(tokens, userRepo)

	ginRouter := initializeGinRouter(cfg)
	routes.RegisterRoutes(ginRouter, appHandlers, authMW)
	return ginRouter
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	return router
}
