package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/vitaalplan/vitaal-api/internal/facades"
	"github.com/vitaalplan/vitaal-api/internal/handlers"
	"github.com/vitaalplan/vitaal-api/internal/jwt"
	"github.com/vitaalplan/vitaal-api/internal/logger"
	"github.com/vitaalplan/vitaal-api/internal/middlewares"
	"github.com/vitaalplan/vitaal-api/internal/repositories"
	"github.com/vitaalplan/vitaal-api/internal/services"
	"github.com/vitaalplan/vitaal-api/internal/storage"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/vitaalplan/vitaal-api/docs"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title vitaal-api
// @version 1.0.0
// @description Wellness companion API: accounts, check-ins, weight and meal logs, badges, community feed, and AI meal analysis
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		kafkaBrokers, kafkaTopic,
		visionURL, visionAPIKey,
		logLevel, jwtSecret, jwtExp,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		kafkaBrokers, kafkaTopic,
		visionURL, visionAPIKey,
		logLevel,
		jwtSecret, jwtExp,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns all
// application, database, Redis, Kafka, vision, logging, and JWT configuration.
func parseConfig(path string) (
	appHost, appPort string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	kafkaBrokers []string, kafkaTopic string,
	visionURL, visionAPIKey string,
	logLevel, jwtSecretKey string, jwtExpSecond int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "database")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")

	// Kafka config; empty brokers disable publishing
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		kafkaBrokers = strings.Split(brokers, ",")
	}
	kafkaTopic = getEnv("KAFKA_TOPIC", "wellness.notifications")

	// Vision service config
	visionURL = getEnv("VISION_URL", "")
	visionAPIKey = getEnv("VISION_API_KEY", "")

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	kafkaBrokers []string, kafkaTopic string,
	visionURL, visionAPIKey string,
	logLevel, jwtSecretKey string, jwtExpSecond int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL: %s", dsn)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Fatal("PostgreSQL ping failed:", err)
	}

	// Initialize document store
	docStore := storage.NewPostgresStore(db)
	if err := docStore.Migrate(ctx); err != nil {
		logger.Log.Fatal("document store migration failed:", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password: redisPassword,
		DB:       redisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Kafka writer for progress notifications
	var kafkaWriter services.KafkaWriter
	if len(kafkaBrokers) > 0 {
		w := &kafka.Writer{
			Addr:     kafka.TCP(kafkaBrokers...),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
	}

	// Initialize JWT service
	jwtExp := time.Duration(jwtExpSecond) * time.Second
	tokens := jwt.New(jwt.WithSecretKey(jwtSecretKey), jwt.WithExpiration(jwtExp))

	// Initialize repositories
	accountRepo := repositories.NewAccountRepository(docStore)
	weightRepo := repositories.NewWeightRepository(docStore)
	checkInRepo := repositories.NewCheckInRepository(docStore)
	mealRepo := repositories.NewMealRepository(docStore)
	postRepo := repositories.NewPostRepository(docStore)
	resetRepo := repositories.NewResetTokenRepository(docStore)
	sessionRepo := repositories.NewSessionRepository(rdb, jwtExp)

	// Initialize services
	authService := services.NewAuthService(accountRepo, accountRepo, sessionRepo, tokens,
		weightRepo, checkInRepo, mealRepo)
	resetService := services.NewPasswordResetService(accountRepo, accountRepo, resetRepo)
	progressService := services.NewProgressService(accountRepo, authService, weightRepo, checkInRepo, kafkaWriter)
	weightService := services.NewWeightService(weightRepo, progressService)
	checkInService := services.NewCheckInService(checkInRepo, progressService)
	mealService := services.NewMealService(mealRepo, progressService)
	communityService := services.NewCommunityService(postRepo, accountRepo, progressService)
	analysisService := services.NewAnalysisService(facades.NewVisionFacade(visionURL, visionAPIKey))

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.Post("/register", handlers.NewRegisterHandler(authService))
		r.Post("/login", handlers.NewLoginHandler(authService))
		r.Post("/password-reset", handlers.NewResetRequestHandler(resetService))
		r.Post("/password-reset/confirm", handlers.NewResetConfirmHandler(resetService))

		// Protected routes with JWT middleware
		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(tokens))

			r.Get("/me", handlers.NewSessionHandler(authService))
			r.Post("/logout", handlers.NewLogoutHandler(authService))
			r.Patch("/profile", handlers.NewProfileUpdateHandler(authService))
			r.Delete("/account", handlers.NewAccountDeleteHandler(authService))

			r.Get("/weights", handlers.NewWeightListHandler(weightService))
			r.Post("/weights", handlers.NewWeightAddHandler(weightService))
			r.Delete("/weights/{entryID}", handlers.NewWeightDeleteHandler(weightService))

			r.Get("/checkins", handlers.NewCheckInListHandler(checkInService))
			r.Post("/checkins", handlers.NewCheckInAddHandler(checkInService))

			r.Get("/meals", handlers.NewMealListHandler(mealService))
			r.Post("/meals", handlers.NewMealAddHandler(mealService))
			r.Delete("/meals/{entryID}", handlers.NewMealDeleteHandler(mealService))
			r.Post("/meals/analyze", handlers.NewAnalyzeHandler(analysisService))

			r.Get("/posts", handlers.NewPostListHandler(communityService))
			r.Post("/posts", handlers.NewPostCreateHandler(communityService))
			r.Post("/posts/{postID}/reactions", handlers.NewReactHandler(communityService))
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
