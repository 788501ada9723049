package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/rentflix/api/internal/model"
	"github.com/rentflix/api/internal/repository"
	"github.com/rentflix/api/internal/validate"
)

// MovieStore is what the movie handler needs from the repository.
type MovieStore interface {
	List(ctx context.Context) ([]model.Movie, error)
	Get(ctx context.Context, id uint64) (model.Movie, error)
	Create(ctx context.Context, title string, genreID uint64, stock int, rate float64) (model.Movie, error)
	Update(ctx context.Context, id uint64, title string, genreID uint64, stock int, rate float64) (model.Movie, error)
	Delete(ctx context.Context, id uint64) (model.Movie, error)
}

// MovieHandler serves CRUD over movies.
type MovieHandler struct {
	Movies   MovieStore
	Validate *validate.Validator
	Log      *zap.Logger
}

func NewMovieHandler(movies MovieStore, v *validate.Validator, log *zap.Logger) *MovieHandler {
	return &MovieHandler{Movies: movies, Validate: v, Log: log}
}

type movieReq struct {
	Title           string  `json:"title" validate:"required,min=1,max=255"`
	GenreID         uint64  `json:"genreId" validate:"required,gt=0"`
	NumberInStock   int     `json:"numberInStock" validate:"gte=0"`
	DailyRentalRate float64 `json:"dailyRentalRate" validate:"gte=0"`
}

func (h *MovieHandler) ListMovies(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	movies, err := h.Movies.List(ctx)
	if err != nil {
		h.Log.Error("movies: list failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "something failed"})
	}
	return c.JSON(http.StatusOK, movies)
}

func (h *MovieHandler) GetMovie(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "movie not found"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	m, err := h.Movies.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "movie not found"})
	}
	if err != nil {
		h.Log.Error("movies: get failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "something failed"})
	}
	return c.JSON(http.StatusOK, m)
}

func (h *MovieHandler) CreateMovie(c echo.Context) error {
	var req movieReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := h.Validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	m, err := h.Movies.Create(ctx, req.Title, req.GenreID, req.NumberInStock, req.DailyRentalRate)
	if errors.Is(err, repository.ErrNotFound) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid genre"})
	}
	if err != nil {
		h.Log.Error("movies: create failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "something failed"})
	}
	return c.JSON(http.StatusOK, m)
}

func (h *MovieHandler) UpdateMovie(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "movie not found"})
	}
	var req movieReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := h.Validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	m, err := h.Movies.Update(ctx, id, req.Title, req.GenreID, req.NumberInStock, req.DailyRentalRate)
	if errors.Is(err, repository.ErrNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "movie or genre not found"})
	}
	if err != nil {
		h.Log.Error("movies: update failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "something failed"})
	}
	return c.JSON(http.StatusOK, m)
}

func (h *MovieHandler) DeleteMovie(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "movie not found"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	m, err := h.Movies.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "movie not found"})
	}
	if err != nil {
		h.Log.Error("movies: delete failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "something failed"})
	}
	return c.JSON(http.StatusOK, m)
}
