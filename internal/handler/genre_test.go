package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/rentflix/api/internal/model"
	"github.com/rentflix/api/internal/repository"
	"github.com/rentflix/api/internal/validate"
)

type fakeGenreStore struct {
	genres []model.Genre
	nextID uint64
}

func (f *fakeGenreStore) List(ctx context.Context) ([]model.Genre, error) {
	return f.genres, nil
}

func (f *fakeGenreStore) Get(ctx context.Context, id uint64) (model.Genre, error) {
	for _, g := range f.genres {
		if g.ID == id {
			return g, nil
		}
	}
	return model.Genre{}, repository.ErrNotFound
}

func (f *fakeGenreStore) Create(ctx context.Context, name string) (model.Genre, error) {
	f.nextID++
	g := model.Genre{ID: f.nextID, Name: name}
	f.genres = append(f.genres, g)
	return g, nil
}

func (f *fakeGenreStore) Update(ctx context.Context, id uint64, name string) (model.Genre, error) {
	for i := range f.genres {
		if f.genres[i].ID == id {
			f.genres[i].Name = name
			return f.genres[i], nil
		}
	}
	return model.Genre{}, repository.ErrNotFound
}

func (f *fakeGenreStore) Delete(ctx context.Context, id uint64) (model.Genre, error) {
	for i, g := range f.genres {
		if g.ID == id {
			f.genres = append(f.genres[:i], f.genres[i+1:]...)
			return g, nil
		}
	}
	return model.Genre{}, repository.ErrNotFound
}

func TestCreateGenre_ThenList(t *testing.T) {
	store := &fakeGenreStore{}
	h := NewGenreHandler(store, validate.New(), zap.NewNop())

	c, rec := postJSON(t, "/api/genres", `{"name":"genre1"}`)
	if err := h.CreateGenre(c); err != nil {
		t.Fatalf("create: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("create: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var created model.Genre
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	if created.ID == 0 || created.Name != "genre1" {
		t.Fatalf("unexpected created genre: %+v", created)
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/genres", nil)
	rec = httptest.NewRecorder()
	if err := h.ListGenres(e.NewContext(req, rec)); err != nil {
		t.Fatalf("list: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", rec.Code)
	}
	var listed []model.Genre
	if err := json.Unmarshal(rec.Body.Bytes(), &listed); err != nil {
		t.Fatalf("decode list response: %v", err)
	}
	found := false
	for _, g := range listed {
		if g.ID == created.ID && g.Name == "genre1" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected created genre in list, got %+v", listed)
	}
}

func TestCreateGenre_NameBounds(t *testing.T) {
	h := NewGenreHandler(&fakeGenreStore{}, validate.New(), zap.NewNop())

	cases := []struct {
		length   int
		wantCode int
	}{
		{4, http.StatusBadRequest},
		{5, http.StatusOK},
		{50, http.StatusOK},
		{51, http.StatusBadRequest},
	}
	for _, tc := range cases {
		body := `{"name":"` + strings.Repeat("g", tc.length) + `"}`
		c, rec := postJSON(t, "/api/genres", body)
		if err := h.CreateGenre(c); err != nil {
			t.Fatalf("length %d: %v", tc.length, err)
		}
		if rec.Code != tc.wantCode {
			t.Fatalf("length %d: expected %d, got %d", tc.length, tc.wantCode, rec.Code)
		}
	}
}

func TestGetGenre_NotFound(t *testing.T) {
	h := NewGenreHandler(&fakeGenreStore{}, validate.New(), zap.NewNop())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/genres/:id")
	c.SetParamNames("id")
	c.SetParamValues("99")
	if err := h.GetGenre(c); err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown genre, got %d", rec.Code)
	}

	// malformed identifiers are indistinguishable from missing rows
	rec = httptest.NewRecorder()
	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	c.SetPath("/api/genres/:id")
	c.SetParamNames("id")
	c.SetParamValues("not-a-number")
	if err := h.GetGenre(c); err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for malformed id, got %d", rec.Code)
	}
}
