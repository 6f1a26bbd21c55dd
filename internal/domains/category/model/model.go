package model

import "time"

// Category is read-only from the application's perspective; rows are
// seeded directly in the database.
type Category struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
