package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/power-mac-book/travelkit-web/internal/entity"
	"github.com/power-mac-book/travelkit-web/internal/infra/session"
	"github.com/power-mac-book/travelkit-web/internal/usecase"
)

type ctxKey int

const sessionKey ctxKey = iota

// SessionFromContext returns the restored session, or nil when the
// request is unauthenticated.
func SessionFromContext(ctx context.Context) *entity.Session {
	s, _ := ctx.Value(sessionKey).(*entity.Session)
	return s
}

// SessionLoader restores the persisted token on every request. A token
// the backend rejects is cleared immediately; a backend outage leaves
// the token in place and the request unauthenticated.
type SessionLoader struct {
	Sessions *usecase.SessionUseCase
	Store    session.TokenStore
}

func (m *SessionLoader) Load(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := session.TokenFromRequest(r, m.Store)
		if token == "" {
			next.ServeHTTP(w, r)
			return
		}

		sess, err := m.Sessions.Restore(r.Context(), token)
		if err != nil {
			if errors.Is(err, usecase.ErrUnauthenticated) {
				m.Store.Clear(w)
			}
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), sessionKey, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireUser redirects unauthenticated page requests to the login
// route, preserving where the user was headed.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !SessionFromContext(r.Context()).Authenticated() {
			http.Redirect(w, r, "/login?next="+r.URL.Path, http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin additionally enforces the admin role.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := SessionFromContext(r.Context())
		if !sess.Authenticated() {
			http.Redirect(w, r, "/login?next="+r.URL.Path, http.StatusSeeOther)
			return
		}
		if !sess.User.IsAdmin() {
			http.Error(w, "admin access required", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
