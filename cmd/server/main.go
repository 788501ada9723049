package main // Entry point package

import (
	"context"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/rentflix/api/internal/auth"
	"github.com/rentflix/api/internal/config"
	"github.com/rentflix/api/internal/database"
	"github.com/rentflix/api/internal/handler"
	"github.com/rentflix/api/internal/logger"
	"github.com/rentflix/api/internal/queue"
	"github.com/rentflix/api/internal/repository"
	"github.com/rentflix/api/internal/router"
	"github.com/rentflix/api/internal/service"
	"github.com/rentflix/api/internal/validate"
)

func main() {
	cfg := config.Load()

	zlog, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("logger init: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	db, err := database.Open(cfg)
	if err != nil {
		zlog.Fatal("database connect failed", zap.Error(err))
	}
	defer func() { _ = db.Close() }()

	// nil when Redis is unreachable; cache and rate limiting degrade to no-ops
	rdb := config.NewRedisClient()
	if rdb == nil {
		zlog.Warn("redis unavailable, response cache and rate limiting disabled")
	}

	tokens := auth.NewTokens(cfg.JWTSecret, cfg.TokenTTLMin)
	valid := validate.New()

	users := repository.NewUserRepo(db)
	genres := repository.NewGenreRepo(db)
	movies := repository.NewMovieRepo(db)
	customers := repository.NewCustomerRepo(db)
	rentals := repository.NewRentalRepo(db)

	h := router.Handlers{
		Auth:      handler.NewAuthHandler(users, tokens, valid, zlog),
		Users:     handler.NewUserHandler(users, tokens, valid, zlog, cfg.BcryptCost),
		Genres:    handler.NewGenreHandler(genres, valid, zlog),
		Movies:    handler.NewMovieHandler(movies, valid, zlog),
		Customers: handler.NewCustomerHandler(customers, valid, zlog),
		Rentals:   handler.NewRentalHandler(rentals, valid, zlog),
		Returns: handler.NewReturnsHandler(rentals, valid, zlog,
			func(ctx context.Context, ev queue.RentalReturnedEvent) error {
				return service.PublishRentalReturned(ctx, cfg.RabbitURL, ev)
			}),
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.HTTPErrorHandler = errorHandler(zlog)

	router.Register(e, h, tokens, rdb)

	// background consumer writes returns to logs/returns.log
	go queue.StartReturnsConsumer(cfg.RabbitURL, zlog)

	addr := ":" + cfg.Port
	zlog.Info("listening", zap.String("addr", addr), zap.String("env", cfg.Env))
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}

// errorHandler is the outermost boundary: anything a handler did not map to
// a response is logged in full and reported to the client as a generic 500.
// echo.HTTPErrors (404 route misses, method errors) keep their status.
func errorHandler(zlog *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		code := http.StatusInternalServerError
		msg := "something failed"
		if he, ok := err.(*echo.HTTPError); ok {
			code = he.Code
			if s, ok := he.Message.(string); ok {
				msg = s
			}
		}
		if code >= http.StatusInternalServerError {
			zlog.Error("unhandled error",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Request().URL.Path),
				zap.Error(err))
		}
		_ = c.JSON(code, echo.Map{"error": msg})
	}
}
