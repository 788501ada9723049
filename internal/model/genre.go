package model

import "time"

// Genre is a movie category. Movies embed a copy of the genre's id and name
// at creation time, so renaming a genre does not rewrite existing movies.
type Genre struct {
	ID        uint64    `json:"id"`   // genres.id
	Name      string    `json:"name"` // genres.name (5–50 chars)
	CreatedAt time.Time `json:"-"`    // genres.created_at
}
