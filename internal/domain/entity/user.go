package entity

import "time"

// User is a registered shopper. Only the bcrypt hash of the password is kept.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash"`
	CreatedAt    time.Time `json:"createdAt"`
}

type Session struct {
	UserID    string    `json:"userId"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	LoginTime time.Time `json:"loginTime"`
}

func NewSession(u *User, now time.Time) *Session {
	return &Session{
		UserID:    u.ID,
		Email:     u.Email,
		Name:      u.Name,
		LoginTime: now.UTC(),
	}
}

// Profile is the dashboard view of the logged-in shopper.
type Profile struct {
	UserID        string    `json:"userId"`
	Name          string    `json:"name"`
	FirstName     string    `json:"firstName"`
	Email         string    `json:"email"`
	JoinedAt      time.Time `json:"joinedAt"`
	WishlistCount int       `json:"wishlistCount"`
	CartCount     int       `json:"cartCount"`
}
