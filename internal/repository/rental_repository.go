package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/rentflix/api/internal/model"
)

// RentalRepo provides access to the rentals table. Rental creation and the
// return workflow each run inside a single transaction so the rental write
// and the stock adjustment on the movie succeed or fail together.
type RentalRepo struct{ db *sql.DB }

func NewRentalRepo(db *sql.DB) *RentalRepo { return &RentalRepo{db: db} }

const rentalCols = `id,customer_id,customer_name,customer_phone,
movie_id,movie_title,movie_daily_rental_rate,date_out,date_returned,rental_fee`

func scanRental(row interface{ Scan(...interface{}) error }) (model.Rental, error) {
	var rent model.Rental
	var returned sql.NullTime
	var fee sql.NullFloat64
	err := row.Scan(&rent.ID, &rent.CustomerID, &rent.CustomerName, &rent.CustomerPhone,
		&rent.MovieID, &rent.MovieTitle, &rent.MovieDailyRentalRate,
		&rent.DateOut, &returned, &fee)
	if err != nil {
		return model.Rental{}, err
	}
	if returned.Valid {
		t := returned.Time
		rent.DateReturned = &t
	}
	if fee.Valid {
		f := fee.Float64
		rent.RentalFee = &f
	}
	return rent, nil
}

// List returns all rentals, most recent first.
func (r *RentalRepo) List(ctx context.Context) ([]model.Rental, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+rentalCols+" FROM rentals ORDER BY date_out DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Rental, 0)
	for rows.Next() {
		rent, err := scanRental(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rent)
	}
	return out, rows.Err()
}

// Get fetches one rental by id.
func (r *RentalRepo) Get(ctx context.Context, id uint64) (model.Rental, error) {
	rent, err := scanRental(r.db.QueryRowContext(ctx,
		"SELECT "+rentalCols+" FROM rentals WHERE id=? LIMIT 1", id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Rental{}, ErrNotFound
	}
	return rent, err
}

// Create opens a rental for the given customer and movie. Inside one
// transaction it locks the movie row, refuses when no copies are left,
// decrements the stock and inserts the rental carrying snapshots of the
// customer and movie as they are right now.
func (r *RentalRepo) Create(ctx context.Context, customerID, movieID uint64, now time.Time) (model.Rental, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return model.Rental{}, err
	}
	defer func() { _ = tx.Rollback() }()

	var cust model.Customer
	err = tx.QueryRowContext(ctx,
		"SELECT id,name,phone FROM customers WHERE id=? LIMIT 1", customerID).
		Scan(&cust.ID, &cust.Name, &cust.Phone)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Rental{}, ErrNotFound
	}
	if err != nil {
		return model.Rental{}, err
	}

	var mov model.Movie
	err = tx.QueryRowContext(ctx,
		"SELECT id,title,number_in_stock,daily_rental_rate FROM movies WHERE id=? LIMIT 1 FOR UPDATE", movieID).
		Scan(&mov.ID, &mov.Title, &mov.NumberInStock, &mov.DailyRentalRate)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Rental{}, ErrNotFound
	}
	if err != nil {
		return model.Rental{}, err
	}
	if mov.NumberInStock <= 0 {
		return model.Rental{}, ErrNotInStock
	}

	if _, err = tx.ExecContext(ctx,
		"UPDATE movies SET number_in_stock = number_in_stock - 1 WHERE id=?", movieID); err != nil {
		return model.Rental{}, err
	}

	res, err := tx.ExecContext(ctx,
		`INSERT INTO rentals (customer_id, customer_name, customer_phone,
			movie_id, movie_title, movie_daily_rental_rate, date_out)
		 VALUES (?,?,?,?,?,?,?)`,
		cust.ID, cust.Name, cust.Phone, mov.ID, mov.Title, mov.DailyRentalRate, now.UTC())
	if err != nil {
		return model.Rental{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Rental{}, err
	}
	if err := tx.Commit(); err != nil {
		return model.Rental{}, err
	}
	return model.Rental{
		ID:                   uint64(id),
		CustomerID:           cust.ID,
		CustomerName:         cust.Name,
		CustomerPhone:        cust.Phone,
		MovieID:              mov.ID,
		MovieTitle:           mov.Title,
		MovieDailyRentalRate: mov.DailyRentalRate,
		DateOut:              now.UTC(),
	}, nil
}

// Return closes the open rental for the customer/movie pair. The open row is
// locked with FOR UPDATE, so a concurrent return of the same rental blocks
// here and then finds no open row. Stamping the return date, computing the
// fee from the snapshot rate and restocking the movie all commit together.
func (r *RentalRepo) Return(ctx context.Context, customerID, movieID uint64, now time.Time) (model.Rental, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return model.Rental{}, err
	}
	defer func() { _ = tx.Rollback() }()

	rent, err := scanRental(tx.QueryRowContext(ctx,
		"SELECT "+rentalCols+` FROM rentals
		 WHERE customer_id=? AND movie_id=? AND date_returned IS NULL
		 LIMIT 1 FOR UPDATE`, customerID, movieID))
	if errors.Is(err, sql.ErrNoRows) {
		// Distinguish "already processed" from "never rented": a second
		// return of the same rental is a business-rule violation, not a miss.
		var n int
		if countErr := tx.QueryRowContext(ctx,
			"SELECT COUNT(*) FROM rentals WHERE customer_id=? AND movie_id=?",
			customerID, movieID).Scan(&n); countErr == nil && n > 0 {
			return model.Rental{}, ErrAlreadyReturned
		}
		return model.Rental{}, ErrNoOpenRental
	}
	if err != nil {
		return model.Rental{}, err
	}
	// The filter above already excludes processed rentals; keep the explicit
	// guard anyway in case the row changed between request arrival and lock
	// acquisition.
	if rent.DateReturned != nil {
		return model.Rental{}, ErrAlreadyReturned
	}

	returned := now.UTC()
	fee := model.RentalFee(rent.DateOut, returned, rent.MovieDailyRentalRate)

	if _, err = tx.ExecContext(ctx,
		"UPDATE rentals SET date_returned=?, rental_fee=? WHERE id=?",
		returned, fee, rent.ID); err != nil {
		return model.Rental{}, err
	}
	if _, err = tx.ExecContext(ctx,
		"UPDATE movies SET number_in_stock = number_in_stock + 1 WHERE id=?",
		rent.MovieID); err != nil {
		return model.Rental{}, err
	}
	if err := tx.Commit(); err != nil {
		return model.Rental{}, err
	}

	rent.DateReturned = &returned
	rent.RentalFee = &fee
	return rent, nil
}
