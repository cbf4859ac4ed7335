package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/CybrFarhvn06/Codex/internal/cache"
	"github.com/CybrFarhvn06/Codex/internal/config"
	"github.com/CybrFarhvn06/Codex/internal/middleware"
	"github.com/CybrFarhvn06/Codex/internal/research"
	"github.com/CybrFarhvn06/Codex/internal/store"
	"github.com/CybrFarhvn06/Codex/internal/synth"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger init: %v", err)
	}
	defer logger.Sync()

	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()
	ctx := context.Background()

	// ── PostgreSQL ────────────────────────────────────────────
	pgPool, err := pgxpool.New(ctx, cfg.PostgresDSN)
	if err != nil {
		logger.Fatal("postgres connect", zap.Error(err))
	}
	defer pgPool.Close()
	pgStore := store.NewPostgresStore(pgPool)
	if err := pgStore.Migrate(ctx); err != nil {
		logger.Fatal("postgres migrate", zap.Error(err))
	}

	// ── MongoDB ──────────────────────────────────────────────
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		logger.Fatal("mongo connect", zap.Error(err))
	}
	defer mongoClient.Disconnect(ctx)
	mongoStore := store.NewMongoStore(mongoClient.Database(cfg.MongoDB))

	// ── Redis (optional) ─────────────────────────────────────
	var rdb *redis.Client
	var reportCache research.ReportCache
	if cfg.RedisAddr != "" {
		rdb, err = store.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			logger.Fatal("redis connect", zap.Error(err))
		}
		defer rdb.Close()
		reportCache = cache.NewReports(rdb, cfg.CacheTTL, logger)
	} else {
		logger.Info("redis not configured, report cache and rate limiting disabled")
	}

	// ── MinIO (optional) ─────────────────────────────────────
	var files research.FileStore
	if cfg.MinioEndpoint != "" {
		minioStore, err := store.NewMinioStore(
			ctx, cfg.MinioEndpoint, cfg.MinioAccessKey,
			cfg.MinioSecretKey, cfg.MinioBucket, cfg.MinioUseSSL,
		)
		if err != nil {
			logger.Fatal("minio connect", zap.Error(err))
		}
		files = minioStore
	} else {
		logger.Info("minio not configured, markdown exports disabled")
	}

	// ── Synthesis engine ─────────────────────────────────────
	var external synth.Generator
	if cfg.OpenAIAPIKey != "" {
		external = synth.NewOpenAIGenerator(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel)
		logger.Info("external generator enabled", zap.String("model", cfg.OpenAIModel))
	} else {
		logger.Info("external generator not configured, synthesizing locally")
	}
	engine := synth.NewEngine(external, cfg.GenerateTimeout, logger)

	// ── Handlers ─────────────────────────────────────────────
	researchHandler := research.NewHandler(pgStore, mongoStore, files, engine, reportCache, logger)
	limiter := middleware.NewRateLimiter(rdb, cfg.RequestsPerMinute, logger)

	// ── Router ───────────────────────────────────────────────
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:5173", "http://localhost:3000"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/api/health", research.Health)
	r.With(limiter.Limit).Post("/api/research", researchHandler.Generate)
	r.Get("/api/research/{researchID}/markdown", researchHandler.DownloadMarkdown)
	r.Delete("/api/research/{researchID}", researchHandler.Delete)
	r.Get("/api/history/{studentID}", researchHandler.History)
	r.Get("/api/history/detail/{researchID}", researchHandler.Detail)

	// Static frontend
	r.Handle("/*", http.FileServer(http.Dir(cfg.StaticDir)))

	// ── Server ───────────────────────────────────────────────
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 2 * time.Minute,
	}

	go func() {
		logger.Info("backend listening", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	shutCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	srv.Shutdown(shutCtx)
}
