package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/pawsome-ngo/rescue-backend/internal/auth"
	"github.com/pawsome-ngo/rescue-backend/internal/config"
	v1 "github.com/pawsome-ngo/rescue-backend/internal/handler/http/v1"
	"github.com/pawsome-ngo/rescue-backend/internal/push"
	"github.com/pawsome-ngo/rescue-backend/internal/repository"
	"github.com/pawsome-ngo/rescue-backend/internal/service"
	"github.com/pawsome-ngo/rescue-backend/internal/storage"
	"github.com/pawsome-ngo/rescue-backend/internal/ws"
	"github.com/pawsome-ngo/rescue-backend/pkg/logger"
	"github.com/pawsome-ngo/rescue-backend/pkg/postgres"
	redisclient "github.com/pawsome-ngo/rescue-backend/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/pawsome-ngo/rescue-backend/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Pawsome Rescue API
// @version 1.0
// @description Volunteer coordination backend for the Pawsome animal rescue organization.
// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запуск миграций
	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Локальное хранилище загружаемых медиафайлов
	mediaStorage, err := storage.NewLocalStorage(cfg.UploadDir)
	if err != nil {
		log.Fatalf("Failed to init upload storage: %v", err)
	}

	// Менеджер JWT-токенов
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL)

	// Инициализация репозиториев
	userRepo := repository.NewUserRepository(dbpool)
	incidentRepo := repository.NewIncidentRepository(dbpool, redisClient)
	teamRepo := repository.NewTeamRepository(dbpool)
	caseRepo := repository.NewCaseRepository(dbpool)
	chatRepo := repository.NewChatRepository(dbpool)
	inventoryRepo := repository.NewInventoryRepository(dbpool)
	notificationRepo := repository.NewNotificationRepository(dbpool)

	// Очередь Web Push: издатель и воркер доставки
	pushPublisher := push.NewRedisPublisher(redisClient)
	pushWorker := push.NewWorker(redisClient, notificationRepo, log, cfg)
	pushWorker.Start(ctx)

	// WebSocket-хаб и мост между экземплярами через Redis pub/sub
	hub := ws.NewHub(log)
	bridge := ws.NewBridge(hub, redisClient, log)

	// Инициализация сервисов
	notificationService := service.NewNotificationService(notificationRepo, pushPublisher, log)
	chatService := service.NewChatService(chatRepo, userRepo, mediaStorage, pushPublisher, cfg, log)
	globalChatService := service.NewGlobalChatService(chatService, chatRepo, mediaStorage, log)
	userService := service.NewUserService(userRepo, log)
	authService := service.NewAuthService(userRepo, tokens, notificationService, log)
	adminService := service.NewAdminService(userRepo, caseRepo, globalChatService, notificationService, log)
	incidentService := service.NewIncidentService(incidentRepo, userRepo, chatService, mediaStorage, notificationService, log)
	assignmentService := service.NewAssignmentService(teamRepo, caseRepo, incidentRepo, userRepo, inventoryRepo, chatService, notificationService, log)
	rescueCaseService := service.NewRescueCaseService(caseRepo, teamRepo, incidentRepo, userRepo, chatService, notificationService, log)
	inventoryService := service.NewInventoryService(inventoryRepo, userRepo, notificationService, log)

	// Инициализация хэндлеров
	handler := v1.NewHandler(v1.Deps{
		Auth:          authService,
		Users:         userService,
		Admin:         adminService,
		Incidents:     incidentService,
		Assignments:   assignmentService,
		Cases:         rescueCaseService,
		Chats:         chatService,
		GlobalChat:    globalChatService,
		Inventory:     inventoryService,
		Notifications: notificationService,
		Tokens:        tokens,
		Storage:       mediaStorage,
		Broadcaster:   bridge,
		Hub:           hub,
		Logger:        log,
		Cfg:           cfg,
	})

	// Входящие WebSocket-фреймы обрабатывает хэндлер чатов
	hub.SetInboundHandler(handler.HandleInboundEvent)
	go hub.Run(ctx)
	go bridge.Run(ctx)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api")
	handler.RegisterRoutes(api)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
