package entities

import "time"

type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	Phone        string
	Address      string
	IsAdmin      bool
	CreatedAt    time.Time
}

type Session struct {
	Token     string
	UserID    string
	CreatedAt time.Time
	ExpiresAt time.Time
}

func (s Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// AuthContext identifies the authenticated caller of a request.
// It is passed explicitly instead of being carried in ambient session state.
type AuthContext struct {
	UserID   string
	Username string
	IsAdmin  bool
}
