package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/flashcards-api/internal/admin"
	"github.com/sbilibin2017/flashcards-api/internal/config"
	"github.com/sbilibin2017/flashcards-api/internal/handlers"
	"github.com/sbilibin2017/flashcards-api/internal/jwt"
	"github.com/sbilibin2017/flashcards-api/internal/logger"
	"github.com/sbilibin2017/flashcards-api/internal/middlewares"
	"github.com/sbilibin2017/flashcards-api/internal/repositories"
	"github.com/sbilibin2017/flashcards-api/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/sbilibin2017/flashcards-api/docs"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title flashcards-api
// @version 1.0.0
// @description Flashcard decks, spreadsheet import/export and study sessions
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s, Commit: %s, Build: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// run initializes the logger, database, optional Redis and Kafka clients, and
// the HTTP server. It blocks until ctx is cancelled or a shutdown signal arrives.
func run(ctx context.Context, cfg *config.Config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.App.LogLevel, cfg.App.LogFormat); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.App.LogLevel)

	// Connect to PostgreSQL
	logger.Log.Infow("Connecting to PostgreSQL", "host", cfg.Postgres.Host, "port", cfg.Postgres.Port, "db", cfg.Postgres.DB)
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Postgres.MaxIdleConns)

	if err := repositories.Migrate(ctx, db); err != nil {
		return fmt.Errorf("schema migration failed: %w", err)
	}

	// Connect to Redis when the admin panel is enabled
	var rdb *redis.Client
	if cfg.Admin.Enabled() {
		rdb = redis.NewClient(&redis.Options{
			Addr:         cfg.Redis.Addr(),
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			PoolSize:     cfg.Redis.PoolSize,
			MinIdleConns: cfg.Redis.MinIdleConns,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("Redis connection error: %w", err)
		}
		defer rdb.Close()
	} else {
		logger.Log.Info("Admin credentials not configured, admin panel disabled")
	}

	// Kafka writer for progress events
	var kafkaWriter services.KafkaWriter
	if len(cfg.Kafka.Brokers) > 0 {
		w := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.Kafka.Brokers...),
			Topic:                  cfg.Kafka.Topic,
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
		}
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infow("Publishing progress events", "brokers", cfg.Kafka.Brokers, "topic", cfg.Kafka.Topic)
	}

	srv := &http.Server{
		Addr:    cfg.App.Addr(),
		Handler: newRouter(cfg, db, rdb, kafkaWriter),
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", cfg.App.Addr())
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// newRouter wires repositories, services and handlers into the HTTP router.
// rdb may be nil when the admin panel is disabled, kafkaWriter when event
// publishing is off.
func newRouter(cfg *config.Config, db *sqlx.DB, rdb *redis.Client, kafkaWriter services.KafkaWriter) http.Handler {
	// Initialize JWT
	accessJWT := jwt.New(
		jwt.WithSecretKey(cfg.JWT.SecretKey),
		jwt.WithExpiration(cfg.JWT.AccessExp),
		jwt.WithAlgorithm(cfg.JWT.Algorithm),
	)
	refreshJWT := jwt.New(
		jwt.WithSecretKey(cfg.JWT.RefreshSecretKey),
		jwt.WithExpiration(cfg.JWT.RefreshExp),
		jwt.WithAlgorithm(cfg.JWT.Algorithm),
	)

	// Initialize repositories
	txGetter := repositories.TxGetter(middlewares.GetTxFromContext)
	userReadRepo := repositories.NewUserReadRepository(db, txGetter)
	userWriteRepo := repositories.NewUserWriteRepository(db, txGetter)
	deckReadRepo := repositories.NewDeckReadRepository(db, txGetter)
	deckWriteRepo := repositories.NewDeckWriteRepository(db, txGetter)
	cardReadRepo := repositories.NewCardReadRepository(db, txGetter)
	cardWriteRepo := repositories.NewCardWriteRepository(db, txGetter)
	progressReadRepo := repositories.NewProgressReadRepository(db, txGetter)
	progressWriteRepo := repositories.NewProgressWriteRepository(db, txGetter)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, accessJWT, refreshJWT)
	deckService := services.NewDeckService(deckReadRepo, deckWriteRepo, cardReadRepo, cardWriteRepo)
	studyService := services.NewStudyService(deckReadRepo, cardReadRepo, progressReadRepo, progressWriteRepo, kafkaWriter)

	// Middlewares
	txMiddleware := middlewares.TxMiddleware(db)
	authMiddleware := middlewares.AuthMiddleware(accessJWT, userReadRepo)
	optionalAuthMiddleware := middlewares.OptionalAuthMiddleware(accessJWT, userReadRepo)

	// Setup router
	r := chi.NewRouter()
	r.Use(middlewares.LoggingMiddleware)
	r.Use(middlewares.RecoverMiddleware)
	r.Use(middlewares.CORSMiddleware(cfg.App.CORSAllowedOrigins))

	r.Get("/", handlers.NewRootHandler())
	r.Get("/health", handlers.NewHealthHandler(db))
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Auth routes
	authRoutes := func(r chi.Router) {
		r.Use(txMiddleware)
		r.Post("/register", handlers.NewRegisterHandler(authService))
		r.Post("/login", handlers.NewLoginHandler(authService))
		r.Post("/refresh", handlers.NewRefreshHandler(authService))

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Get("/me", handlers.NewGetProfileHandler())
			r.Patch("/me", handlers.NewUpdateProfileHandler(authService))
		})
	}
	r.Route("/auth", authRoutes)
	if cfg.App.APIPrefix != "" {
		r.Route(cfg.App.APIPrefix+"/auth", authRoutes)
	}

	// Deck routes
	r.Route(cfg.App.APIPrefix+"/decks", func(r chi.Router) {
		r.Use(txMiddleware)

		// Public routes, guests allowed
		r.Group(func(r chi.Router) {
			r.Use(optionalAuthMiddleware)
			r.Get("/", handlers.NewListDecksHandler(deckService))
			r.Post("/{deckID}/next-card", handlers.NewNextCardHandler(studyService))
		})

		// Protected routes with JWT middleware
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Post("/", handlers.NewCreateDeckHandler(deckService))
			r.Put("/{deckID}", handlers.NewUpdateDeckHandler(deckService))
			r.Delete("/{deckID}", handlers.NewDeleteDeckHandler(deckService))
			r.Get("/{deckID}/cards", handlers.NewGetCardsHandler(deckService))
			r.Put("/{deckID}/cards", handlers.NewReplaceCardsHandler(deckService))
			r.Get("/{deckID}/export", handlers.NewExportDeckHandler(deckService))
			r.Post("/{deckID}/import", handlers.NewImportDeckHandler(deckService, cfg.App.UploadMaxBytes))
			r.Patch("/{deckID}/toggle_learned", handlers.NewToggleLearnedHandler(studyService))
			r.Delete("/{deckID}/reset", handlers.NewResetProgressHandler(studyService))
		})
	})

	// Admin panel
	if cfg.Admin.Enabled() && rdb != nil {
		sessionRepo := repositories.NewAdminSessionRepository(rdb, cfg.Admin.SessionTTL)
		panel := admin.NewPanel(repositories.NewAdminRepository(db), sessionRepo, cfg.Admin, "/admin")
		r.Mount("/admin", panel.Routes())
	}

	return r
}
