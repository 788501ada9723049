package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/rentflix/api/internal/auth"
	"github.com/rentflix/api/internal/middleware"
	"github.com/rentflix/api/internal/repository"
	"github.com/rentflix/api/internal/validate"
)

// UserHandler serves registration and the current-user endpoint.
type UserHandler struct {
	Users      UserStore
	Tokens     *auth.Tokens
	Validate   *validate.Validator
	Log        *zap.Logger
	BcryptCost int
}

func NewUserHandler(users UserStore, tokens *auth.Tokens, v *validate.Validator, log *zap.Logger, bcryptCost int) *UserHandler {
	return &UserHandler{Users: users, Tokens: tokens, Validate: v, Log: log, BcryptCost: bcryptCost}
}

type registerReq struct {
	Name     string `json:"name" validate:"required,min=2,max=50"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=5,max=255"`
}

// Register creates a user and logs them in: the response carries the user
// (without the password hash) and an x-auth-token header with a fresh token.
func (h *UserHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := h.Validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	u, err := h.Users.Create(ctx, strings.TrimSpace(req.Name), req.Email, req.Password, h.BcryptCost)
	if errors.Is(err, repository.ErrEmailExists) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "user already registered"})
	}
	if err != nil {
		h.Log.Error("register: create user failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "something failed"})
	}

	token, err := h.Tokens.Issue(auth.Identity{UserID: u.ID, IsAdmin: u.IsAdmin})
	if err != nil {
		h.Log.Error("register: token issue failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "something failed"})
	}
	c.Response().Header().Set("x-auth-token", token)
	return c.JSON(http.StatusCreated, u)
}

// Me returns the authenticated caller's user record.
func (h *UserHandler) Me(c echo.Context) error {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "access denied, no token provided"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	u, err := h.Users.GetByID(ctx, id.UserID)
	if errors.Is(err, repository.ErrNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
	}
	if err != nil {
		h.Log.Error("me: user lookup failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "something failed"})
	}
	return c.JSON(http.StatusOK, u)
}
