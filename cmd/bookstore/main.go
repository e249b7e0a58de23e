package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"

	"github.com/tair/bookstore-backend/internal/basket"
	basketdomain "github.com/tair/bookstore-backend/internal/basket/domain"
	basketcommand "github.com/tair/bookstore-backend/internal/basket/usecase/command"
	"github.com/tair/bookstore-backend/internal/catalog"
	catalogdomain "github.com/tair/bookstore-backend/internal/catalog/domain"
	"github.com/tair/bookstore-backend/internal/favorites"
	favoritesdomain "github.com/tair/bookstore-backend/internal/favorites/domain"
	"github.com/tair/bookstore-backend/internal/requests"
	requestsdomain "github.com/tair/bookstore-backend/internal/requests/domain"
	"github.com/tair/bookstore-backend/internal/user"
	userdomain "github.com/tair/bookstore-backend/internal/user/domain"
	"github.com/tair/bookstore-backend/kafka"
	"github.com/tair/bookstore-backend/pkg/auth"
	"github.com/tair/bookstore-backend/pkg/cache"
	"github.com/tair/bookstore-backend/pkg/database"
	"github.com/tair/bookstore-backend/pkg/logger"
	"github.com/tair/bookstore-backend/pkg/tracing"
)

func main() {
	// Initialize logger
	serviceName := getEnv("OTEL_SERVICE_NAME", "bookstore-backend")
	isDevelopment := getEnv("ENVIRONMENT", "development") == "development"
	logger.Init(serviceName, isDevelopment)
	logger.SetLevel(getEnv("LOG_LEVEL", "info"))

	logger.Logger.Info().
		Str("service", serviceName).
		Str("environment", getEnv("ENVIRONMENT", "development")).
		Msg("Starting bookstore backend")

	// Initialize tracer; the service runs without it when Jaeger is
	// unreachable
	tp, err := tracing.InitTracer(serviceName, getEnv("JAEGER_ENDPOINT", "http://localhost:14268/api/traces"))
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to initialize tracer")
	} else {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracing.Shutdown(ctx, tp); err != nil {
				logger.Logger.Error().Err(err).Msg("Failed to shutdown tracer")
			}
		}()
	}

	// Load database configuration
	dbConfig := database.Config{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "bookstore"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	// Connect to database
	sqlDB, err := database.NewPostgresConnection(dbConfig)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer sqlDB.Close()

	db, err := database.NewGormConnection(sqlDB)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize ORM")
	}

	// Run migrations
	if err := db.AutoMigrate(
		&userdomain.User{},
		&catalogdomain.Author{},
		&catalogdomain.Genre{},
		&catalogdomain.Book{},
		&favoritesdomain.Favorite{},
		&basketdomain.BasketItem{},
		&requestsdomain.BookRequest{},
	); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
	}

	logger.Logger.Info().Msg("Database initialized successfully")

	// Token manager
	jwtSecret := getEnv("JWT_SECRET", "")
	if jwtSecret == "" {
		logger.Logger.Fatal().Msg("JWT_SECRET must be set")
	}
	tokenTTL := auth.DefaultTokenTTL
	if minutes, err := strconv.Atoi(getEnv("JWT_TTL_MINUTES", "")); err == nil && minutes > 0 {
		tokenTTL = time.Duration(minutes) * time.Minute
	}
	tokens := auth.NewJWTManager(auth.Config{Secret: jwtSecret, TokenTTL: tokenTTL})

	// Redis-backed catalog response cache; nil client disables caching
	var redisClient *redis.Client
	if addr := getEnv("REDIS_ADDR", ""); addr != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: addr})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			logger.Logger.Warn().Err(err).Str("addr", addr).Msg("Redis unreachable, catalog cache disabled")
			redisClient = nil
		}
	}
	catalogCache := cache.New(redisClient, 5*time.Minute)

	// Kafka purchase events; a missing broker list disables publishing
	var publisher basketcommand.EventPublisher
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		kafkaPublisher, err := kafka.NewPublisher(strings.Split(brokers, ","))
		if err != nil {
			logger.Logger.Warn().Err(err).Msg("Kafka unreachable, purchase events disabled")
		} else {
			defer kafkaPublisher.Close()
			publisher = kafkaPublisher
		}
	}

	// Initialize handlers with Wire DI
	middleware, err := user.InitializeMiddleware(db, tokens)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize middleware")
	}
	userHandler, err := user.InitializeHTTPHandler(db, tokens)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize user handler")
	}
	favoriteChecker, err := favorites.InitializeFavoriteChecker(db)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize favorites checker")
	}
	catalogHandler, err := catalog.InitializeHTTPHandler(db, favoriteChecker, catalogCache)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize catalog handler")
	}
	favoritesHandler, err := favorites.InitializeHTTPHandler(db, catalogCache)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize favorites handler")
	}
	basketHandler, err := basket.InitializeHTTPHandler(db, publisher, favoriteChecker)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize basket handler")
	}
	requestsHandler, err := requests.InitializeHTTPHandler(db)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize book requests handler")
	}

	// Setup router
	router := mux.NewRouter()
	userHandler.RegisterRoutes(router, middleware)
	userHandler.RegisterHealthCheck(router, sqlDB)
	catalogHandler.RegisterRoutes(router, middleware)
	favoritesHandler.RegisterRoutes(router, middleware)
	basketHandler.RegisterRoutes(router, middleware)
	requestsHandler.RegisterRoutes(router, middleware)

	// Prometheus metrics endpoint
	router.Handle("/metrics", promhttp.Handler())

	// CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	httpPort := getEnv("HTTP_PORT", "8080")
	server := &http.Server{
		Addr:         ":" + httpPort,
		Handler:      c.Handler(router),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		logger.Logger.Info().Str("port", httpPort).Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Logger.Error().Err(err).Msg("Server shutdown failed")
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
