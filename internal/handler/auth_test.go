package handler

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/rentflix/api/internal/auth"
	"github.com/rentflix/api/internal/model"
	"github.com/rentflix/api/internal/repository"
	"github.com/rentflix/api/internal/validate"
)

type fakeUserStore struct {
	users  map[string]model.User
	nextID uint64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]model.User{}}
}

func (f *fakeUserStore) Create(ctx context.Context, name, email, password string, cost int) (model.User, error) {
	email = strings.ToLower(email)
	if _, exists := f.users[email]; exists {
		return model.User{}, repository.ErrEmailExists
	}
	hash, err := auth.HashPassword(password, cost)
	if err != nil {
		return model.User{}, err
	}
	f.nextID++
	u := model.User{ID: f.nextID, Name: name, Email: email, PasswordHash: hash}
	f.users[email] = u
	return u, nil
}

func (f *fakeUserStore) GetByEmail(ctx context.Context, email string) (model.User, error) {
	u, ok := f.users[strings.ToLower(email)]
	if !ok {
		return model.User{}, repository.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserStore) GetByID(ctx context.Context, id uint64) (model.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return model.User{}, repository.ErrNotFound
}

func TestLogin_Success(t *testing.T) {
	users := newFakeUserStore()
	if _, err := users.Create(context.Background(), "Alice", "alice@example.com", "supersafe", 4); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	tokens := auth.NewTokens("test-secret", 15)
	h := NewAuthHandler(users, tokens, validate.New(), zap.NewNop())

	c, rec := postJSON(t, "/api/auth", `{"email":"alice@example.com","password":"supersafe"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("login: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	raw := rec.Body.String()
	id, err := tokens.Verify(raw)
	if err != nil {
		t.Fatalf("response body is not a valid token: %v", err)
	}
	if id.UserID != 1 || id.IsAdmin {
		t.Fatalf("unexpected identity in token: %+v", id)
	}
	if rec.Header().Get("x-auth-token") != raw {
		t.Fatal("expected token echoed in x-auth-token header")
	}
}

func TestLogin_BadCredentialsAreUniform(t *testing.T) {
	users := newFakeUserStore()
	if _, err := users.Create(context.Background(), "Alice", "alice@example.com", "supersafe", 4); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	h := NewAuthHandler(users, auth.NewTokens("test-secret", 15), validate.New(), zap.NewNop())

	// wrong password
	c, rec := postJSON(t, "/api/auth", `{"email":"alice@example.com","password":"wrongpass"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("login: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("wrong password: expected 400, got %d", rec.Code)
	}
	wrongPass := rec.Body.String()

	// unknown email must look exactly the same
	c, rec = postJSON(t, "/api/auth", `{"email":"nobody@example.com","password":"wrongpass"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("login: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unknown email: expected 400, got %d", rec.Code)
	}
	if rec.Body.String() != wrongPass {
		t.Fatalf("expected identical bodies for both failures, got %q vs %q", wrongPass, rec.Body.String())
	}
}

func TestLogin_MalformedInput(t *testing.T) {
	h := NewAuthHandler(newFakeUserStore(), auth.NewTokens("test-secret", 15), validate.New(), zap.NewNop())

	for _, body := range []string{
		`{}`,
		`{"email":"not-an-email","password":"supersafe"}`,
		`{"email":"alice@example.com","password":"1234"}`,
	} {
		c, rec := postJSON(t, "/api/auth", body)
		if err := h.Login(c); err != nil {
			t.Fatalf("login: %v", err)
		}
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("body %s: expected 400, got %d", body, rec.Code)
		}
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	users := newFakeUserStore()
	tokens := auth.NewTokens("test-secret", 15)
	h := NewUserHandler(users, tokens, validate.New(), zap.NewNop(), 4)

	c, rec := postJSON(t, "/api/users", `{"name":"Alice","email":"alice@example.com","password":"supersafe"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("register: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if rec.Header().Get("x-auth-token") == "" {
		t.Fatal("expected token header on registration")
	}
	if strings.Contains(rec.Body.String(), "password") {
		t.Fatalf("response leaks password material: %s", rec.Body.String())
	}

	c, rec = postJSON(t, "/api/users", `{"name":"Alice","email":"alice@example.com","password":"supersafe"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("register: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("duplicate email: expected 400, got %d", rec.Code)
	}
}
