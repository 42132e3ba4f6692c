package models

import (
	"time"
)

// SentinelUserEmail identifies the placeholder account that audit references
// are redirected to when the original account is removed.
const SentinelUserEmail = "deleted"

// User defines the user model based on the 'users' table
type User struct {
	ID        int64     `json:"id" db:"id" example:"1"`
	Email     string    `json:"email" db:"email" example:"admin@escola.edu.br"`
	Password  string    `json:"-" db:"password"` // Hashed, excluded from JSON
	FullName  string    `json:"fullName" db:"full_name" example:"João Pereira"`
	IsStaff   bool      `json:"isStaff" db:"is_staff"` // Grants access to the admin surface
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// IsSentinel reports whether this is the placeholder "deleted user" account
func (u *User) IsSentinel() bool {
	return u.Email == SentinelUserEmail
}
