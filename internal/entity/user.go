package entity

import "time"

// User is the current-user record returned by GET /users/me.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"` // "admin" | "traveler"
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == "admin"
}

// Session pairs a bearer token with the user it was validated against.
// The token is the only piece of state this tier persists client-side.
type Session struct {
	Token string
	User  *User
}

func (s *Session) Authenticated() bool {
	return s != nil && s.Token != "" && s.User != nil
}
