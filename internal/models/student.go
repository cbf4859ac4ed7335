package models

import "time"

// Student represents a row in the PostgreSQL students table. Students are
// upserted by email on every research request; there is no login flow.
type Student struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Institution string    `json:"institution,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
