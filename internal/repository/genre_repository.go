package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/rentflix/api/internal/model"
)

// GenreRepo provides CRUD over the genres table.
type GenreRepo struct{ db *sql.DB }

func NewGenreRepo(db *sql.DB) *GenreRepo { return &GenreRepo{db: db} }

// List returns all genres ordered by name.
func (r *GenreRepo) List(ctx context.Context) ([]model.Genre, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id,name,created_at FROM genres ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Genre, 0)
	for rows.Next() {
		var g model.Genre
		if err := rows.Scan(&g.ID, &g.Name, &g.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

// Get fetches one genre by id.
func (r *GenreRepo) Get(ctx context.Context, id uint64) (model.Genre, error) {
	var g model.Genre
	err := r.db.QueryRowContext(ctx,
		"SELECT id,name,created_at FROM genres WHERE id=? LIMIT 1", id).
		Scan(&g.ID, &g.Name, &g.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Genre{}, ErrNotFound
	}
	return g, err
}

// Create inserts a genre and returns it with its generated id.
func (r *GenreRepo) Create(ctx context.Context, name string) (model.Genre, error) {
	res, err := r.db.ExecContext(ctx, "INSERT INTO genres (name) VALUES (?)", name)
	if err != nil {
		return model.Genre{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Genre{}, err
	}
	return model.Genre{ID: uint64(id), Name: name}, nil
}

// Update renames a genre. Existing movies keep their denormalized genre name.
func (r *GenreRepo) Update(ctx context.Context, id uint64, name string) (model.Genre, error) {
	res, err := r.db.ExecContext(ctx, "UPDATE genres SET name=? WHERE id=?", name, id)
	if err != nil {
		return model.Genre{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		// 0 rows can also mean an unchanged name, so re-check existence
		if _, getErr := r.Get(ctx, id); getErr != nil {
			return model.Genre{}, getErr
		}
	}
	return model.Genre{ID: id, Name: name}, nil
}

// Delete removes a genre by id.
func (r *GenreRepo) Delete(ctx context.Context, id uint64) (model.Genre, error) {
	g, err := r.Get(ctx, id)
	if err != nil {
		return model.Genre{}, err
	}
	_, err = r.db.ExecContext(ctx, "DELETE FROM genres WHERE id=?", id)
	return g, err
}
