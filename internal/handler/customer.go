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

// CustomerStore is what the customer handler needs from the repository.
type CustomerStore interface {
	List(ctx context.Context) ([]model.Customer, error)
	Get(ctx context.Context, id uint64) (model.Customer, error)
	Create(ctx context.Context, name, phone string, isGold bool) (model.Customer, error)
	Update(ctx context.Context, c model.Customer) (model.Customer, error)
	Delete(ctx context.Context, id uint64) (model.Customer, error)
}

// CustomerHandler serves CRUD over customers.
type CustomerHandler struct {
	Customers CustomerStore
	Validate  *validate.Validator
	Log       *zap.Logger
}

func NewCustomerHandler(customers CustomerStore, v *validate.Validator, log *zap.Logger) *CustomerHandler {
	return &CustomerHandler{Customers: customers, Validate: v, Log: log}
}

type customerReq struct {
	Name   string `json:"name" validate:"required,min=2,max=50"`
	Phone  string `json:"phone" validate:"required,min=5,max=50"`
	IsGold bool   `json:"isGold"`
}

func (h *CustomerHandler) ListCustomers(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	customers, err := h.Customers.List(ctx)
	if err != nil {
		h.Log.Error("customers: list failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "something failed"})
	}
	return c.JSON(http.StatusOK, customers)
}

func (h *CustomerHandler) GetCustomer(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "customer not found"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	cust, err := h.Customers.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "customer not found"})
	}
	if err != nil {
		h.Log.Error("customers: get failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "something failed"})
	}
	return c.JSON(http.StatusOK, cust)
}

func (h *CustomerHandler) CreateCustomer(c echo.Context) error {
	var req customerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := h.Validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	cust, err := h.Customers.Create(ctx, req.Name, req.Phone, req.IsGold)
	if err != nil {
		h.Log.Error("customers: create failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "something failed"})
	}
	return c.JSON(http.StatusOK, cust)
}

func (h *CustomerHandler) UpdateCustomer(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "customer not found"})
	}
	var req customerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := h.Validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	cust, err := h.Customers.Update(ctx, model.Customer{ID: id, Name: req.Name, Phone: req.Phone, IsGold: req.IsGold})
	if errors.Is(err, repository.ErrNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "customer not found"})
	}
	if err != nil {
		h.Log.Error("customers: update failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "something failed"})
	}
	return c.JSON(http.StatusOK, cust)
}

func (h *CustomerHandler) DeleteCustomer(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "customer not found"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	cust, err := h.Customers.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "customer not found"})
	}
	if err != nil {
		h.Log.Error("customers: delete failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "something failed"})
	}
	return c.JSON(http.StatusOK, cust)
}
