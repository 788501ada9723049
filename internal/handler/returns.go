package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/rentflix/api/internal/queue"
	"github.com/rentflix/api/internal/repository"
	"github.com/rentflix/api/internal/validate"
)

// ReturnsHandler processes rental returns: it closes the open rental for a
// customer/movie pair, charges the fee and puts the copy back in stock.
type ReturnsHandler struct {
	Rentals  RentalStore
	Validate *validate.Validator
	Log      *zap.Logger
	// Publish, when set, sends a RentalReturnedEvent after a successful
	// return. Publishing is best effort and never fails the request.
	Publish func(ctx context.Context, ev queue.RentalReturnedEvent) error
}

func NewReturnsHandler(rentals RentalStore, v *validate.Validator, log *zap.Logger,
	publish func(ctx context.Context, ev queue.RentalReturnedEvent) error) *ReturnsHandler {
	return &ReturnsHandler{Rentals: rentals, Validate: v, Log: log, Publish: publish}
}

type returnReq struct {
	CustomerID uint64 `json:"customerId" validate:"required,gt=0"`
	MovieID    uint64 `json:"movieId" validate:"required,gt=0"`
}

// ProcessReturn handles POST /api/returns. Responses: 200 with the closed
// rental, 400 for bad input or an already processed rental, 404 when no open
// rental exists for the pair.
func (h *ReturnsHandler) ProcessReturn(c echo.Context) error {
	var req returnReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := h.Validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	rent, err := h.Rentals.Return(ctx, req.CustomerID, req.MovieID, time.Now())
	switch {
	case errors.Is(err, repository.ErrNoOpenRental):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "rental not found"})
	case errors.Is(err, repository.ErrAlreadyReturned):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "rental already processed"})
	case err != nil:
		h.Log.Error("returns: processing failed",
			zap.Uint64("customer_id", req.CustomerID),
			zap.Uint64("movie_id", req.MovieID),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "something failed"})
	}

	if h.Publish != nil {
		ev := queue.RentalReturnedEvent{
			RentalID:     rent.ID,
			CustomerID:   rent.CustomerID,
			CustomerName: rent.CustomerName,
			MovieID:      rent.MovieID,
			MovieTitle:   rent.MovieTitle,
			DateOut:      rent.DateOut.Format(time.RFC3339),
			DateReturned: rent.DateReturned.Format(time.RFC3339),
			RentalFee:    *rent.RentalFee,
		}
		go func() {
			pubCtx, pubCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer pubCancel()
			if err := h.Publish(pubCtx, ev); err != nil {
				h.Log.Warn("returns: event publish failed", zap.Uint64("rental_id", ev.RentalID), zap.Error(err))
			}
		}()
	}

	return c.JSON(http.StatusOK, rent)
}
