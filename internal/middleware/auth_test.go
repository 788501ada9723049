package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/rentflix/api/internal/auth"
)

func runProtected(t *testing.T, mw echo.MiddlewareFunc, token string) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/genres", nil)
	if token != "" {
		req.Header.Set("x-auth-token", token)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error { return c.String(http.StatusOK, "ok") }
	if err := mw(next)(c); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	return rec, c
}

func TestRequireToken_MissingHeader(t *testing.T) {
	tokens := auth.NewTokens("test-secret", 15)
	rec, _ := runProtected(t, RequireToken(tokens), "")

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}
}

func TestRequireToken_InvalidToken(t *testing.T) {
	tokens := auth.NewTokens("test-secret", 15)
	rec, _ := runProtected(t, RequireToken(tokens), "garbage.token.value")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid token, got %d", rec.Code)
	}
}

func TestRequireToken_ValidTokenSetsIdentity(t *testing.T) {
	tokens := auth.NewTokens("test-secret", 15)
	raw, err := tokens.Issue(auth.Identity{UserID: 9, IsAdmin: true})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	rec, c := runProtected(t, RequireToken(tokens), raw)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 with valid token, got %d", rec.Code)
	}
	id, ok := IdentityFrom(c)
	if !ok {
		t.Fatal("expected identity in context")
	}
	if id.UserID != 9 || !id.IsAdmin {
		t.Fatalf("unexpected identity: %+v", id)
	}
}

func TestRequireAdmin(t *testing.T) {
	e := echo.New()
	next := func(c echo.Context) error { return c.String(http.StatusOK, "ok") }

	// no identity at all
	req := httptest.NewRequest(http.MethodDelete, "/api/genres/1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := RequireAdmin()(next)(c); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 without identity, got %d", rec.Code)
	}

	// authenticated but not admin
	rec = httptest.NewRecorder()
	c = e.NewContext(httptest.NewRequest(http.MethodDelete, "/api/genres/1", nil), rec)
	c.Set(identityKey, auth.Identity{UserID: 5})
	if err := RequireAdmin()(next)(c); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for non-admin, got %d", rec.Code)
	}

	// admin passes through
	rec = httptest.NewRecorder()
	c = e.NewContext(httptest.NewRequest(http.MethodDelete, "/api/genres/1", nil), rec)
	c.Set(identityKey, auth.Identity{UserID: 5, IsAdmin: true})
	if err := RequireAdmin()(next)(c); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin, got %d", rec.Code)
	}
}
