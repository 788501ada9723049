package model

import "time"

// Movie represents a title available for rent. Genre is denormalized: the id
// and name of the genre are copied onto the movie row when it is created or
// updated, mirroring how rentals snapshot their movie.
//
// Fields:
//
//	ID              – primary key identifier.
//	Title           – movie title.
//	GenreID         – id of the genre copied at write time.
//	GenreName       – name of the genre copied at write time.
//	NumberInStock   – copies currently on the shelf; decremented on
//	                  rental creation, incremented on return. Never negative.
//	DailyRentalRate – price per rental day, used for fee computation.
type Movie struct {
	ID              uint64    `json:"id"`              // movies.id
	Title           string    `json:"title"`           // movies.title
	GenreID         uint64    `json:"genreId"`         // movies.genre_id
	GenreName       string    `json:"genreName"`       // movies.genre_name
	NumberInStock   int       `json:"numberInStock"`   // movies.number_in_stock
	DailyRentalRate float64   `json:"dailyRentalRate"` // movies.daily_rental_rate
	CreatedAt       time.Time `json:"-"`               // movies.created_at
}
