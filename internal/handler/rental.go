package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/rentflix/api/internal/model"
	"github.com/rentflix/api/internal/repository"
	"github.com/rentflix/api/internal/validate"
)

// RentalStore is what the rental and returns handlers need from the
// repository. Create and Return are transactional: the rental write and the
// movie stock adjustment happen together or not at all.
type RentalStore interface {
	List(ctx context.Context) ([]model.Rental, error)
	Create(ctx context.Context, customerID, movieID uint64, now time.Time) (model.Rental, error)
	Return(ctx context.Context, customerID, movieID uint64, now time.Time) (model.Rental, error)
}

// RentalHandler lists rentals and opens new ones.
type RentalHandler struct {
	Rentals  RentalStore
	Validate *validate.Validator
	Log      *zap.Logger
}

func NewRentalHandler(rentals RentalStore, v *validate.Validator, log *zap.Logger) *RentalHandler {
	return &RentalHandler{Rentals: rentals, Validate: v, Log: log}
}

type rentalReq struct {
	CustomerID uint64 `json:"customerId" validate:"required,gt=0"`
	MovieID    uint64 `json:"movieId" validate:"required,gt=0"`
}

func (h *RentalHandler) ListRentals(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	rentals, err := h.Rentals.List(ctx)
	if err != nil {
		h.Log.Error("rentals: list failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "something failed"})
	}
	return c.JSON(http.StatusOK, rentals)
}

// CreateRental opens a rental: snapshots the customer and movie onto the new
// row and takes one copy off the shelf.
func (h *RentalHandler) CreateRental(c echo.Context) error {
	var req rentalReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := h.Validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	rent, err := h.Rentals.Create(ctx, req.CustomerID, req.MovieID, time.Now())
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid customer or movie"})
	case errors.Is(err, repository.ErrNotInStock):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "movie not in stock"})
	case err != nil:
		h.Log.Error("rentals: create failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "something failed"})
	}
	return c.JSON(http.StatusOK, rent)
}
