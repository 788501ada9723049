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

// GenreStore is what the genre handler needs from the repository.
type GenreStore interface {
	List(ctx context.Context) ([]model.Genre, error)
	Get(ctx context.Context, id uint64) (model.Genre, error)
	Create(ctx context.Context, name string) (model.Genre, error)
	Update(ctx context.Context, id uint64, name string) (model.Genre, error)
	Delete(ctx context.Context, id uint64) (model.Genre, error)
}

// GenreHandler serves CRUD over genres.
type GenreHandler struct {
	Genres   GenreStore
	Validate *validate.Validator
	Log      *zap.Logger
}

func NewGenreHandler(genres GenreStore, v *validate.Validator, log *zap.Logger) *GenreHandler {
	return &GenreHandler{Genres: genres, Validate: v, Log: log}
}

type genreReq struct {
	Name string `json:"name" validate:"required,min=5,max=50"`
}

func (h *GenreHandler) ListGenres(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	genres, err := h.Genres.List(ctx)
	if err != nil {
		h.Log.Error("genres: list failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "something failed"})
	}
	return c.JSON(http.StatusOK, genres)
}

func (h *GenreHandler) GetGenre(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "genre not found"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	g, err := h.Genres.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "genre not found"})
	}
	if err != nil {
		h.Log.Error("genres: get failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "something failed"})
	}
	return c.JSON(http.StatusOK, g)
}

func (h *GenreHandler) CreateGenre(c echo.Context) error {
	var req genreReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := h.Validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	g, err := h.Genres.Create(ctx, req.Name)
	if err != nil {
		h.Log.Error("genres: create failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "something failed"})
	}
	return c.JSON(http.StatusOK, g)
}

func (h *GenreHandler) UpdateGenre(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "genre not found"})
	}
	var req genreReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := h.Validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	g, err := h.Genres.Update(ctx, id, req.Name)
	if errors.Is(err, repository.ErrNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "genre not found"})
	}
	if err != nil {
		h.Log.Error("genres: update failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "something failed"})
	}
	return c.JSON(http.StatusOK, g)
}

func (h *GenreHandler) DeleteGenre(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "genre not found"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	g, err := h.Genres.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "genre not found"})
	}
	if err != nil {
		h.Log.Error("genres: delete failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "something failed"})
	}
	return c.JSON(http.StatusOK, g)
}
