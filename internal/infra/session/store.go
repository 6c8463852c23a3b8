package session

import (
	"net/http"
	"time"
)

// TokenStore abstracts where the session token is persisted between
// requests. The cookie store is the production implementation; tests
// substitute an in-memory one.
type TokenStore interface {
	Read(r *http.Request) string
	Write(w http.ResponseWriter, token string)
	Clear(w http.ResponseWriter)
}

// CookieStore keeps the bearer token in a single http-only cookie, the
// only client-side state this tier persists.
type CookieStore struct {
	Name   string
	Secure bool
	MaxAge time.Duration
}

func NewCookieStore(name string, secure bool) *CookieStore {
	return &CookieStore{
		Name:   name,
		Secure: secure,
		MaxAge: 30 * 24 * time.Hour,
	}
}

func (s *CookieStore) Read(r *http.Request) string {
	cookie, err := r.Cookie(s.Name)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func (s *CookieStore) Write(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.Name,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.Secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(s.MaxAge.Seconds()),
	})
}

func (s *CookieStore) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.Name,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   s.Secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}
