package models

import "time"

// User defines a portal account based on the 'users' table.
//
// Passwords are stored and compared in plaintext, matching the behavior the
// frontend and existing data depend on.
// TODO: hash passwords with bcrypt once a credential migration is scheduled.
type User struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Password  string    `json:"-" db:"password"`
	IsAdmin   bool      `json:"isAdmin" db:"is_admin"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
