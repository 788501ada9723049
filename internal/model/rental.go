package model

import (
	"math"
	"time"
)

// Rental records one customer borrowing one movie. The customer and movie
// fields are immutable snapshots taken when the rental is created; editing
// the source customer or movie later does not rewrite history. A rental with
// a nil DateReturned is open.
//
// Fields:
//
//	ID                   – primary key identifier.
//	CustomerID/Name/Phone – snapshot of the customer at creation.
//	MovieID/Title        – snapshot of the movie at creation.
//	MovieDailyRentalRate – snapshot of the rate the fee is computed from.
//	DateOut              – when the movie left the shelf (defaults to now).
//	DateReturned         – when it came back; nil while the rental is open.
//	RentalFee            – total fee; nil until the return is processed.
type Rental struct {
	ID                   uint64     `json:"id"`                   // rentals.id
	CustomerID           uint64     `json:"customerId"`           // rentals.customer_id
	CustomerName         string     `json:"customerName"`         // rentals.customer_name
	CustomerPhone        string     `json:"customerPhone"`        // rentals.customer_phone
	MovieID              uint64     `json:"movieId"`              // rentals.movie_id
	MovieTitle           string     `json:"movieTitle"`           // rentals.movie_title
	MovieDailyRentalRate float64    `json:"movieDailyRentalRate"` // rentals.movie_daily_rental_rate
	DateOut              time.Time  `json:"dateOut"`              // rentals.date_out
	DateReturned         *time.Time `json:"dateReturned"`         // rentals.date_returned (nullable)
	RentalFee            *float64   `json:"rentalFee"`            // rentals.rental_fee (nullable)
}

// Open reports whether the rental has not been returned yet.
func (r Rental) Open() bool { return r.DateReturned == nil }

// RentalFee computes the charge for keeping a movie from dateOut until
// returnedAt at the given daily rate. Partial days round up, so an exact
// 7-day rental at rate 2 costs 14 and 7 days plus one hour costs 16. The
// elapsed duration is truncated to whole seconds before rounding, so the
// microseconds a live clock adds on top of a day boundary do not charge an
// extra day.
func RentalFee(dateOut, returnedAt time.Time, dailyRate float64) float64 {
	elapsed := returnedAt.Sub(dateOut).Truncate(time.Second)
	days := math.Ceil(elapsed.Hours() / 24)
	if days < 0 {
		days = 0
	}
	return days * dailyRate
}
