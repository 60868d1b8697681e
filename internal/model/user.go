package model

import "time"

// User is a registered account.
//
// Identity is local: username + bcrypt password hash. The username is
// unique; ownership checks elsewhere compare the user's ID, never the
// name. PasswordHash is tagged json:"-" so it can never leak through an
// encoded response.
type User struct {
	ID           string    `json:"id"        db:"id"`
	Username     string    `json:"username"  db:"username"`
	PasswordHash string    `json:"-"         db:"password_hash"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}
