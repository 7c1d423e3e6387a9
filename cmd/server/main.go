package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/quizforge/backend/internal/database"
	"github.com/quizforge/backend/internal/generator"
	"github.com/quizforge/backend/internal/middleware"
	"github.com/quizforge/backend/internal/platform/cache"
	"github.com/quizforge/backend/internal/platform/config"
	"github.com/quizforge/backend/internal/platform/logger"
	"github.com/quizforge/backend/internal/quizzes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	log, err := logger.New(cfg.Log.Mode)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	if err := cfg.Validate(); err != nil {
		log.Fatal("invalid configuration", "error", err)
	}

	tuning, err := generator.LoadTuning(cfg.Engine.TuningFile)
	if err != nil {
		log.Fatal("failed to load tuning", "error", err)
	}
	engine := generator.NewEngine(generator.EngineConfig{Tuning: tuning, Logger: log.With("component", "engine")})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	// Storage: Postgres when configured, memory otherwise
	var store quizzes.QuizStore = quizzes.NewMemoryStore()
	var db *sql.DB
	if cfg.Database.Enabled() {
		db, err = database.Connect(cfg.Database)
		if err != nil {
			log.Fatal("failed to connect to database", "error", err)
		}
		defer db.Close()
		if err := database.Migrate(db); err != nil {
			log.Fatal("failed to run migrations", "error", err)
		}
		store = quizzes.NewPostgresStore(db)
	}

	var quizCache quizzes.QuizCache
	var redisCache *cache.Cache
	if cfg.Cache.URL != "" {
		redisCache, err = cache.New(ctx, cfg.Cache.URL, "quiz")
		if err != nil {
			log.Fatal("failed to connect to cache", "error", err)
		}
		defer redisCache.Close()
		quizCache = quizzes.NewRedisCache(redisCache, cfg.Cache.TTL, log)
	}

	service := quizzes.NewService(quizzes.ServiceConfig{
		Engine:       engine,
		Store:        store,
		Cache:        quizCache,
		Logger:       log,
		MaxTextBytes: cfg.Engine.MaxTextBytes,
	})
	quizHandler := quizzes.NewHandler(service, log)

	// Setup router
	r := mux.NewRouter()
	r.Use(middleware.AttachRequestID, middleware.AccessLog(log))

	api := r.PathPrefix("/api/v1").Subrouter()
	if cfg.Auth.JWTSecret != "" {
		api.Use(middleware.Auth([]byte(cfg.Auth.JWTSecret)))
	}
	quizHandler.Register(api)

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if db != nil {
			if err := db.PingContext(r.Context()); err != nil {
				w.WriteHeader(http.StatusServiceUnavailable)
				w.Write([]byte(`{"status":"degraded","database":"unreachable"}`))
				return
			}
		}
		if redisCache != nil {
			if err := redisCache.HealthCheck(r.Context()); err != nil {
				w.WriteHeader(http.StatusServiceUnavailable)
				w.Write([]byte(`{"status":"degraded","cache":"unreachable"}`))
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.Server.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: true,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           c.Handler(r),
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second,
	}

	go func() {
		log.Info("server starting", "port", cfg.Server.Port, "postgres", db != nil, "cache", redisCache != nil)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown failed", "error", err)
	}
}
