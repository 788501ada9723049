package model

import "time"

// User represents an application user record as stored in the `users` table.
// PasswordHash never serializes; handlers returning a user to the client rely
// on the `json:"-"` tag rather than copying fields by hand.
//
// Fields:
//
//	ID           – primary key identifier of the user.
//	Name         – display name.
//	Email        – unique, normalized (lower-cased) email address.
//	PasswordHash – bcrypt hash of the password.
//	IsAdmin      – grants access to admin-only routes (deletes).
//	CreatedAt    – timestamp of creation.
type User struct {
	ID           uint64    `json:"id"`      // users.id
	Name         string    `json:"name"`    // users.name
	Email        string    `json:"email"`   // users.email
	PasswordHash string    `json:"-"`       // users.password_hash
	IsAdmin      bool      `json:"isAdmin"` // users.is_admin
	CreatedAt    time.Time `json:"-"`       // users.created_at
}
