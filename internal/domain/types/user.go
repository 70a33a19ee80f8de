package types

import "time"

// User is the authenticated account holder as reported by the backend.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FullName joins the display name fields for presentation.
func (u User) FullName() string { return u.FirstName + " " + u.LastName }
