package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/ocean_watch/internal/broker"
	"github.com/shenikar/ocean_watch/internal/config"
	v1 "github.com/shenikar/ocean_watch/internal/handler/http/v1"
	"github.com/shenikar/ocean_watch/internal/handler/http/web"
	"github.com/shenikar/ocean_watch/internal/metrics"
	"github.com/shenikar/ocean_watch/internal/repository"
	"github.com/shenikar/ocean_watch/internal/service"
	"github.com/shenikar/ocean_watch/internal/webhook"
	"github.com/shenikar/ocean_watch/pkg/logger"
	"github.com/shenikar/ocean_watch/pkg/postgres"
	redisclient "github.com/shenikar/ocean_watch/pkg/redis"

	_ "github.com/shenikar/ocean_watch/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const rateLimitVisitorTTL = 10 * time.Minute

// @title Ocean Watch API
// @version 1.0
// @description Coastal hazard monitoring and community reporting API.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Запуск миграций
	log.Info("Running database migrations...")
	if err := postgres.Migrate(cfg.DatabaseURL, "file://migrations"); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}
	log.Info("Database migrations applied successfully")

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, redisclient.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	m := metrics.NewMetrics()
	clock := clockwork.NewRealClock()

	// Получатели принятых сообщений: очередь на проверку и, если настроена, Kafka
	sinks := []service.Sink{
		{Name: "webhook", Publisher: webhook.NewRedisReviewQueue(redisClient)},
	}
	if cfg.KafkaEnabled() {
		kafkaPublisher := broker.NewKafkaPublisher(cfg)
		defer func() {
			if err := kafkaPublisher.Close(); err != nil {
				log.WithError(err).Error("Failed to close Kafka writer")
			}
		}()
		sinks = append(sinks, service.Sink{Name: "kafka", Publisher: kafkaPublisher})
		log.WithField("topic", cfg.KafkaReportsTopic).Info("Kafka publishing enabled")
	}

	// Инициализация и запуск воркера вебхуков
	webhookWorker := webhook.NewWebhookWorker(redisClient, log, cfg, m, clock)
	webhookWorker.Start(ctx)

	// Инициализация репозиториев
	reportRepo := repository.NewReportRepository(dbpool, redisClient, cfg.ReportCacheTTL)
	draftRepo := repository.NewDraftRepository(redisClient, cfg.DraftTTL)

	// Инициализация сервисов
	reportService := service.NewReportService(reportRepo, draftRepo, log, cfg, m, clock, sinks...)

	// Инициализация хэндлеров
	limiter := v1.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, rateLimitVisitorTTL, log)
	go limiter.Run(ctx)
	apiHandler := v1.NewHandler(reportService, log, cfg, limiter)

	renderer, err := web.NewRenderer(cfg.TemplatesDir)
	if err != nil {
		log.Fatalf("Failed to load templates: %v", err)
	}
	webHandler := web.NewHandler(reportService, renderer, log, m)

	// Настройка Gin роутера
	router := gin.New()
	router.Use(gin.Recovery(), logger.GinMiddleware(log), m.GinMiddleware())

	api := router.Group("/api/v1")
	apiHandler.RegisterRoutes(api)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	webHandler.RegisterRoutes(router)

	// Запуск HTTP-сервера
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	<-ctx.Done()
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Server forced to shutdown: %v", err)
		return
	}

	log.Info("Server gracefully stopped")
}
