package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/rentflix/api/internal/model"
)

// MovieRepo provides CRUD over the movies table. Writes copy the referenced
// genre's id and name onto the movie row, so reads never need a join.
type MovieRepo struct{ db *sql.DB }

func NewMovieRepo(db *sql.DB) *MovieRepo { return &MovieRepo{db: db} }

const movieCols = "id,title,genre_id,genre_name,number_in_stock,daily_rental_rate,created_at"

func scanMovie(row interface{ Scan(...interface{}) error }) (model.Movie, error) {
	var m model.Movie
	err := row.Scan(&m.ID, &m.Title, &m.GenreID, &m.GenreName,
		&m.NumberInStock, &m.DailyRentalRate, &m.CreatedAt)
	return m, err
}

// List returns all movies ordered by title.
func (r *MovieRepo) List(ctx context.Context) ([]model.Movie, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+movieCols+" FROM movies ORDER BY title")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Movie, 0)
	for rows.Next() {
		m, err := scanMovie(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// Get fetches one movie by id.
func (r *MovieRepo) Get(ctx context.Context, id uint64) (model.Movie, error) {
	m, err := scanMovie(r.db.QueryRowContext(ctx,
		"SELECT "+movieCols+" FROM movies WHERE id=? LIMIT 1", id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Movie{}, ErrNotFound
	}
	return m, err
}

// Create inserts a movie with a denormalized copy of the genre. The genre
// must exist; a missing one returns ErrNotFound.
func (r *MovieRepo) Create(ctx context.Context, title string, genreID uint64, stock int, rate float64) (model.Movie, error) {
	var genreName string
	err := r.db.QueryRowContext(ctx,
		"SELECT name FROM genres WHERE id=? LIMIT 1", genreID).Scan(&genreName)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Movie{}, ErrNotFound
	}
	if err != nil {
		return model.Movie{}, err
	}
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO movies (title, genre_id, genre_name, number_in_stock, daily_rental_rate) VALUES (?,?,?,?,?)",
		title, genreID, genreName, stock, rate)
	if err != nil {
		return model.Movie{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Movie{}, err
	}
	return model.Movie{ID: uint64(id), Title: title, GenreID: genreID, GenreName: genreName,
		NumberInStock: stock, DailyRentalRate: rate}, nil
}

// Update rewrites a movie row, refreshing the genre snapshot from the
// referenced genre.
func (r *MovieRepo) Update(ctx context.Context, id uint64, title string, genreID uint64, stock int, rate float64) (model.Movie, error) {
	if _, err := r.Get(ctx, id); err != nil {
		return model.Movie{}, err
	}
	var genreName string
	err := r.db.QueryRowContext(ctx,
		"SELECT name FROM genres WHERE id=? LIMIT 1", genreID).Scan(&genreName)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Movie{}, ErrNotFound
	}
	if err != nil {
		return model.Movie{}, err
	}
	_, err = r.db.ExecContext(ctx,
		"UPDATE movies SET title=?, genre_id=?, genre_name=?, number_in_stock=?, daily_rental_rate=? WHERE id=?",
		title, genreID, genreName, stock, rate, id)
	if err != nil {
		return model.Movie{}, err
	}
	return model.Movie{ID: id, Title: title, GenreID: genreID, GenreName: genreName,
		NumberInStock: stock, DailyRentalRate: rate}, nil
}

// Delete removes a movie by id.
func (r *MovieRepo) Delete(ctx context.Context, id uint64) (model.Movie, error) {
	m, err := r.Get(ctx, id)
	if err != nil {
		return model.Movie{}, err
	}
	_, err = r.db.ExecContext(ctx, "DELETE FROM movies WHERE id=?", id)
	return m, err
}
