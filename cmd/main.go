// cmd/main.go
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lmittmann/tint"
	"github.com/rs/cors"

	"go_5_pixel_ledger/internal/config"
	"go_5_pixel_ledger/internal/handlers"
	"go_5_pixel_ledger/internal/middleware"
	"go_5_pixel_ledger/internal/model"
	"go_5_pixel_ledger/internal/progression"
	"go_5_pixel_ledger/internal/repository"
	"go_5_pixel_ledger/internal/service"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	//　設定ファイル読み込み用の一時的なロガー設定
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)
	log.Println("Log Config Loading...")

	if err := config.LoadConfig("../configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := newLogger(config.Cfg.Log.Level, os.Getenv("APP_ENV"))
	slog.SetDefault(logger)
	log.Println("Log Config Loaded...")

	slog.Info("Application starting...", slog.String("app", config.AppName), slog.String("version", config.AppVersion))

	ctx := middleware.WithLogger(context.Background(), logger)

	// 1. Database
	db, err := repository.NewDB(config.Cfg.Database, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("Database connection closed.")
		}
	}()

	if config.Cfg.Database.AutoMigrate {
		if err := repository.AutoMigrate(ctx, db); err != nil {
			slog.Error("Error migrating database", slog.Any("error", err))
			os.Exit(1)
		}
		slog.Info("Database migrated")
	}

	catalogRepo := repository.NewGormCatalogRepository()
	if _, err := catalogRepo.Seed(ctx, db, model.DefaultCatalog()); err != nil {
		slog.Error("Error seeding catalog", slog.Any("error", err))
		os.Exit(1)
	}

	// 2. Redis (任意)。未設定ならキャッシュ・トークン失効・流量制限なしで動く
	redisClient, err := repository.NewRedisClient(ctx, config.Cfg.Redis, logger)
	if err != nil {
		slog.Error("Error connecting to redis", slog.Any("error", err))
		os.Exit(1)
	}
	var (
		catalogCache service.CatalogCacher
		revoker      service.TokenRevoker
		revocation   middleware.RevocationChecker
		limiter      *middleware.RateLimiter
	)
	if redisClient != nil {
		defer redisClient.Close()
		denylist := repository.NewTokenDenylist(redisClient)
		catalogCache = repository.NewCatalogCache(redisClient, config.Cfg.Redis.CatalogTTL)
		revoker = denylist
		revocation = denylist
		limiter = middleware.NewRateLimiter(redisClient)
	}

	mailer, err := service.NewMailer(ctx, &config.Cfg, logger)
	if err != nil {
		slog.Error("Error initializing mailer", slog.Any("error", err))
		os.Exit(1)
	}

	// 3. Dependency Injection
	clock := progression.NewSystemClock(config.Cfg.Location())

	accountRepo := repository.NewGormAccountRepository()
	progressRepo := repository.NewGormProgressRepository()
	unlockRepo := repository.NewGormUnlockRepository()
	sessionRepo := repository.NewGormSessionRepository()
	gameRecordRepo := repository.NewGormGameRecordRepository()
	achievementRepo := repository.NewGormAchievementRepository()
	avatarRepo := repository.NewGormAvatarRepository()

	catalogService := service.NewCatalogService(db, accountRepo, progressRepo, catalogRepo, unlockRepo, catalogCache, clock)
	accountService := service.NewAccountService(db, accountRepo, progressRepo, catalogService, mailer, revoker, &config.Cfg)
	progressionService := service.NewProgressionService(db, accountRepo, progressRepo, clock)
	sessionService := service.NewSessionService(db, accountRepo, progressRepo, sessionRepo, gameRecordRepo, clock, &config.Cfg)
	achievementService := service.NewAchievementService(db, accountRepo, progressRepo, achievementRepo, catalogRepo, unlockRepo, clock)
	avatarService := service.NewAvatarService(db, accountRepo, progressRepo, avatarRepo, clock)

	h := handlers.Handlers{
		Account:     handlers.NewAccountHandler(accountService),
		Progress:    handlers.NewProgressHandler(progressionService),
		Session:     handlers.NewSessionHandler(sessionService),
		Catalog:     handlers.NewCatalogHandler(catalogService),
		Achievement: handlers.NewAchievementHandler(achievementService),
		Avatar:      handlers.NewAvatarHandler(avatarService),
	}

	// 4. Setup Router
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   config.Cfg.CORS.AllowedOrigins,
		AllowedMethods:   config.Cfg.CORS.AllowedMethods,
		AllowedHeaders:   config.Cfg.CORS.AllowedHeaders,
		ExposedHeaders:   config.Cfg.CORS.ExposedHeaders,
		AllowCredentials: config.Cfg.CORS.AllowCredentials,
		MaxAge:           config.Cfg.CORS.MaxAge,
		Debug:            false,
	})
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	var authMiddleware func(http.Handler) http.Handler
	if config.Cfg.Auth.Enabled {
		slog.Info("Applying JWT authentication middleware")
		authMiddleware = middleware.JWTAuthMiddleware(config.Cfg.JWT.SecretKey, revocation)
	} else {
		slog.Warn("Authentication is DISABLED. Using X-Account-ID header (development only)")
		authMiddleware = middleware.DevAccountContextMiddleware
	}

	handlers.RegisterRoutes(r, h, authMiddleware, limiter, config.Cfg.RateLimit)

	// Health Check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if err := sqlDB.PingContext(ctx); err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not ping DB", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusServiceUnavailable)
			return
		}
		if redisClient != nil {
			if err := redisClient.Ping(ctx).Err(); err != nil {
				slog.WarnContext(ctx, "Health check degraded: could not ping redis", slog.Any("error", err))
			}
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// 5. Start Server
	server := &http.Server{
		Addr:         config.Cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", config.Cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", config.Cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	log.Println("Server exiting")
}

// newLogger は log.level と APP_ENV からロガーを作ります。dev は tint、それ以外は JSON
func newLogger(level, appEnv string) *slog.Logger {
	logLevel := new(slog.LevelVar)
	switch strings.ToLower(level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
		slog.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", level))
	}

	var handler slog.Handler
	if strings.ToLower(appEnv) == "dev" {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		})
		slog.Info("Using TINT log handler", slog.String("APP_ENV", appEnv))
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})
		slog.Info("Using JSON log handler", slog.String("APP_ENV", appEnv))
	}
	return slog.New(handler)
}
