package app

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"venturelink_backend/internal/config"
	"venturelink_backend/internal/database"
	"venturelink_backend/internal/handlers"
	"venturelink_backend/internal/logger"
	"venturelink_backend/internal/middleware"
	"venturelink_backend/internal/repositories"
	"venturelink_backend/internal/routes"
	"venturelink_backend/internal/services"
	"venturelink_backend/internal/validator"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := database.Connect(cfg.Database.DSN)
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

	if err := database.Migrate(gormDB); err != nil {
		logger.Fatal("Failed to migrate schema", "error", err)
	}
	logger.Info("Schema migrated")

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	serviceContainer := initializeServices(cfg, gormDB)
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter()
	routes.RegisterRoutes(ginRouter, appHandlers)
	return ginRouter
}

func initializeServices(cfg *config.Config, gormDB *gorm.DB) *services.ServiceContainer {
	companyRepo := repositories.NewCompanyRepository(gormDB)
	investorRepo := repositories.NewInvestorRepository(gormDB)
	roundRepo := repositories.NewRoundRepository(gormDB)
	interestRepo := repositories.NewInterestRepository(gormDB)
	followRepo := repositories.NewFollowRepository(gormDB)
	notificationRepo := repositories.NewNotificationRepository(gormDB)

	notificationService := services.NewNotificationService(notificationRepo)
	linkBase := cfg.Links.BaseURL

	return &services.ServiceContainer{
		CompanyService:      services.NewCompanyService(companyRepo, followRepo),
		InvestorService:     services.NewInvestorService(investorRepo),
		RoundService:        services.NewRoundService(roundRepo, companyRepo, followRepo, notificationService, linkBase),
		InterestService:     services.NewInterestService(interestRepo, roundRepo, companyRepo, investorRepo, notificationService, linkBase),
		FollowService:       services.NewFollowService(followRepo, companyRepo, notificationService, linkBase),
		NotificationService: notificationService,
	}
}

func initializeHandlers(container *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		CompanyHandler:      handlers.NewCompanyHandler(baseHandler, container.CompanyService),
		InvestorHandler:     handlers.NewInvestorHandler(baseHandler, container.InvestorService),
		RoundHandler:        handlers.NewRoundHandler(baseHandler, container.RoundService, container.InterestService),
		InterestHandler:     handlers.NewInterestHandler(baseHandler, container.InterestService),
		FollowHandler:       handlers.NewFollowHandler(baseHandler, container.FollowService),
		NotificationHandler: handlers.NewNotificationHandler(baseHandler, container.NotificationService),
	}
}

func initializeGinRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	return router
}
