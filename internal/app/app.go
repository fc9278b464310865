package app

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"tailorlink_backend/database"
	"tailorlink_backend/internal/cache"
	"tailorlink_backend/internal/config"
	"tailorlink_backend/internal/email"
	"tailorlink_backend/internal/handlers"
	"tailorlink_backend/internal/logger"
	"tailorlink_backend/internal/middleware"
	"tailorlink_backend/internal/models"
	"tailorlink_backend/internal/routes"
	"tailorlink_backend/internal/services"
	"tailorlink_backend/internal/validator"
	"tailorlink_backend/internal/workers"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	gormDB, err := database.ConnectGorm()
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	if err := database.AutoMigrate(); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}
	logger.Info("Database connected and migrated")

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	container := initializeServices(cfg, gormDB)

	worker := workers.NewTokenCleanupWorker(container.RefreshTokens)
	if err := worker.Start(); err != nil {
		logger.Fatal("Failed to start token cleanup worker", "error", err)
	}
	defer worker.Stop()

	ginRouter := SetupRouter(container)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(container *services.ServiceContainer) *gin.Engine {
	appHandlers := handlers.NewAppHandlers(container, validator.New())

	ginRouter := gin.New()
	ginRouter.Use(gin.Recovery())
	ginRouter.Use(middleware.RequestIDMiddleware())
	ginRouter.Use(middleware.LoggingMiddleware())
	ginRouter.Use(middleware.CORSMiddleware())

	routes.RegisterRoutes(ginRouter, appHandlers)
	return ginRouter
}

func initializeServices(cfg *config.Config, gormDB *gorm.DB) *services.ServiceContainer {
	return services.NewServiceContainer(gormDB, newTokenStore(cfg), newEmailProvider(cfg))
}

// newTokenStore prefers Redis and falls back to the in-process store when no
// Redis address is configured or the server is unreachable. The fallback
// keeps single-node development working; reset tokens then do not survive a
// restart.
func newTokenStore(cfg *config.Config) cache.TokenStore {
	if cfg.Redis.Addr == "" {
		logger.Warn("REDIS_ADDR not set, using in-memory token store")
		return cache.NewMemoryTokenStore()
	}

	client, err := cache.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		logger.Warn("Redis unavailable, using in-memory token store", "addr", cfg.Redis.Addr, "error", err)
		return cache.NewMemoryTokenStore()
	}

	logger.Info("Redis connected", "addr", cfg.Redis.Addr)
	return cache.NewRedisTokenStore(client)
}

func newEmailProvider(cfg *config.Config) email.Provider {
	if cfg.Email.SMTPPassword == "" {
		logger.Warn("SMTP_PASSWORD not set, outgoing email is mocked")
		return email.NewMockProvider()
	}
	return email.NewSMTPProvider(cfg)
}

// seedFirstAdmin creates the initial ADMIN account. Admins cannot register
// through the API, so the very first one has to come from configuration.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.FirstAdminEmail
	adminPassword := cfg.FirstAdminPassword

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("FIRST_ADMIN_EMAIL or FIRST_ADMIN_PASSWORD not set. Skipping admin seeding.")
		return nil
	}

	var adminUser models.User
	result := db.Where("email = ?", adminEmail).First(&adminUser)
	if result.Error == nil {
		logger.Info("Admin user already exists. Skipping creation.", "email", adminEmail)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", result.Error)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	newAdmin := &models.User{
		Email:        adminEmail,
		PasswordHash: string(hashedPassword),
		FullName:     "Administrator",
		Role:         models.UserRoleAdmin,
		IsActive:     true,
	}
	if err := db.Create(newAdmin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	logger.Info("First admin user created", "email", adminEmail)
	return nil
}
