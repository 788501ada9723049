package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/rentflix/api/internal/auth"
	"github.com/rentflix/api/internal/model"
	"github.com/rentflix/api/internal/repository"
	"github.com/rentflix/api/internal/validate"
)

// UserStore is the slice of the user repository the auth and user handlers
// consume. *repository.UserRepo satisfies it; tests plug in fakes.
type UserStore interface {
	Create(ctx context.Context, name, email, password string, cost int) (model.User, error)
	GetByEmail(ctx context.Context, email string) (model.User, error)
	GetByID(ctx context.Context, id uint64) (model.User, error)
}

// AuthHandler serves login. Registration lives in UserHandler; both share
// the same token service so a fresh registration is immediately logged in.
type AuthHandler struct {
	Users    UserStore
	Tokens   *auth.Tokens
	Validate *validate.Validator
	Log      *zap.Logger
}

func NewAuthHandler(users UserStore, tokens *auth.Tokens, v *validate.Validator, log *zap.Logger) *AuthHandler {
	return &AuthHandler{Users: users, Tokens: tokens, Validate: v, Log: log}
}

type loginReq struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=5,max=255"`
}

// Login verifies credentials and responds with a signed token string. An
// unknown email and a wrong password produce the same message so the
// endpoint cannot be used to probe for accounts.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := h.Validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if errors.Is(err, repository.ErrNotFound) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid email or password"})
	}
	if err != nil {
		h.Log.Error("login: user lookup failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "something failed"})
	}
	if !auth.VerifyPassword(u.PasswordHash, req.Password) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid email or password"})
	}

	token, err := h.Tokens.Issue(auth.Identity{UserID: u.ID, IsAdmin: u.IsAdmin})
	if err != nil {
		h.Log.Error("login: token issue failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "something failed"})
	}
	c.Response().Header().Set("x-auth-token", token)
	return c.String(http.StatusOK, token)
}
