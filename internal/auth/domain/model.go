package domain

import "time"

// User is an admin account. Only one is seeded; the hash never leaves the
// process.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Identity is what a verified token proves about its bearer.
type Identity struct {
	UserID   string `json:"id"`
	Username string `json:"username"`
}

// LoginResult is returned by a successful login.
type LoginResult struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	User      Identity  `json:"user"`
}
