package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"libraryhub/database"
	"libraryhub/internal/config"
	"libraryhub/internal/http-api/cache"
	"libraryhub/internal/http-api/handler"
	"libraryhub/internal/http-api/middleware"
	"libraryhub/internal/http-api/repository"
	"libraryhub/internal/http-api/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger := newLogger(cfg)

	db, err := database.Connect(cfg, logger)
	if err != nil {
		logger.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	// Redis cache is optional; without REDIS_URL every read goes to postgres.
	var bookCache *cache.BookCache
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			logger.Error("invalid redis url", "error", err)
			os.Exit(1)
		}
		if cfg.RedisPassword != "" {
			opts.Password = cfg.RedisPassword
		}
		bookCache = cache.NewBookCache(redis.NewClient(opts), cfg.CacheTTL, logger)
		logger.Info("book cache enabled", "ttl", cfg.CacheTTL)
	}

	// Repositories
	bookRepo := repository.NewBookRepo(db)
	userRepo := repository.NewUserRepository(db)
	borrowRepo := repository.NewBorrowingRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	// Services
	bookService := service.NewBookService(bookRepo, bookCache)
	userService := service.NewUserService(userRepo)
	borrowService := service.NewBorrowService(borrowRepo, bookCache)
	reviewService := service.NewReviewService(reviewRepo, bookCache)

	// Handlers
	bookHandler := handler.NewBookHandler(bookService)
	userHandler := handler.NewUserHandler(userService)
	borrowHandler := handler.NewBorrowHandler(borrowService)
	reviewHandler := handler.NewReviewHandler(reviewService)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))

	r.GET("/check-conn", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"message": "API is alive and database connected"})
	})

	books := r.Group("/books")
	bookHandler.RegisterRoutes(books)
	reviewHandler.RegisterRoutes(books)

	users := r.Group("/users")
	userHandler.RegisterRoutes(users)

	borrowHandler.RegisterRoutes(&r.RouterGroup)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info("server starting", "addr", addr)
	if err := r.Run(addr); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}
	return slog.New(h)
}
