package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shenikar/blood_connect/internal/auth"
	"github.com/shenikar/blood_connect/internal/client"
	"github.com/shenikar/blood_connect/internal/config"
	"github.com/shenikar/blood_connect/internal/forecast"
	v1 "github.com/shenikar/blood_connect/internal/handler/http/v1"
	"github.com/shenikar/blood_connect/internal/notify"
	"github.com/shenikar/blood_connect/internal/repository"
	"github.com/shenikar/blood_connect/internal/service"
	"github.com/shenikar/blood_connect/internal/webhook"
	"github.com/shenikar/blood_connect/pkg/logger"
	"github.com/shenikar/blood_connect/pkg/metrics"
	"github.com/shenikar/blood_connect/pkg/postgres"
	redisclient "github.com/shenikar/blood_connect/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/blood_connect/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title BloodConnect API
// @version 1.0
// @description Blood donation coordination: requests, nearby search, shortage forecast.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запуск миграций
	log.Info("Running database migrations...")
	if err := postgres.RunMigrations(cfg.MigrationsPath, cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}
	log.Info("Database migrations applied successfully")

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	m := metrics.NewMetrics("blood_connect", prometheus.DefaultRegisterer)

	// Telegram подключается только при наличии токена
	var notifier webhook.Notifier
	if cfg.TelegramBotToken != "" {
		tg, err := notify.NewTelegramNotifier(cfg.TelegramBotToken, cfg.TelegramChatID, log)
		if err != nil {
			log.WithError(err).Warn("Telegram notifier disabled")
		} else {
			notifier = tg
		}
	}

	// Инициализация издателя и воркера вебхуков
	webhookPublisher := webhook.NewRedisWebhookPublisher(redisClient)
	webhookWorker := webhook.NewWebhookWorker(redisClient, log, cfg, m, notifier)
	webhookWorker.Start(ctx)

	// Инициализация репозиториев
	requestRepo := repository.NewBloodRequestRepository(dbpool, redisClient)
	userRepo := repository.NewUserRepository(dbpool)
	sessionRepo := repository.NewSessionRepository(redisClient)
	inventoryRepo := repository.NewInventoryRepository(dbpool, redisClient)

	// Внешние сервисы
	anemiaClient := client.NewAnemiaClient(cfg.AnemiaModelURL, cfg.ExternalTimeout, log, m)
	geocoder := client.NewNominatimGeocoder(cfg.GeocoderURL, cfg.ExternalTimeout, log, m)

	// Инициализация сервисов
	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.JWTTTL)
	requestService := service.NewRequestService(requestRepo, userRepo, log, cfg, webhookPublisher, m)
	authService := service.NewAuthService(userRepo, sessionRepo, jwtService, log)
	predictionService := service.NewPredictionService(
		inventoryRepo,
		userRepo,
		forecast.NewAggregator(log, m),
		anemiaClient,
		geocoder,
		log,
		cfg,
	)

	// Инициализация хэндлеров
	handler := v1.NewHandler(requestService, authService, predictionService, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Swagger UI и метрики
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

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
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
