package models

import "time"

// User is the authenticated identity returned by the login endpoint.
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}
