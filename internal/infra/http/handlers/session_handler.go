package handlers

import (
	"net/http"
	"strings"

	"github.com/power-mac-book/travelkit-web/internal/infra/http/middleware"
	"github.com/power-mac-book/travelkit-web/internal/infra/http/web"
	"github.com/power-mac-book/travelkit-web/internal/infra/session"
	"github.com/power-mac-book/travelkit-web/internal/usecase"
)

type SessionHandler struct {
	Sessions *usecase.SessionUseCase
	Store    session.TokenStore
	View     *web.Renderer
}

func NewSessionHandler(sessions *usecase.SessionUseCase, store session.TokenStore, view *web.Renderer) *SessionHandler {
	return &SessionHandler{Sessions: sessions, Store: store, View: view}
}

type loginView struct {
	Next string
}

func (h *SessionHandler) ShowLogin(w http.ResponseWriter, r *http.Request) {
	if middleware.SessionFromContext(r.Context()).Authenticated() {
		http.Redirect(w, r, safeNext(r.URL.Query().Get("next")), http.StatusSeeOther)
		return
	}
	h.View.Render(w, http.StatusOK, "login", pageData(r, "Log in", loginView{Next: r.URL.Query().Get("next")}))
}

func (h *SessionHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	token := strings.TrimSpace(r.PostFormValue("token"))
	if _, err := h.Sessions.Login(r.Context(), token); err != nil {
		data := pageData(r, "Log in", loginView{Next: r.PostFormValue("next")})
		data.Error = "That token was not accepted. Check it and try again."
		h.View.Render(w, http.StatusUnauthorized, "login", data)
		return
	}

	h.Store.Write(w, token)
	http.Redirect(w, r, safeNext(r.PostFormValue("next")), http.StatusSeeOther)
}

func (h *SessionHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	h.Sessions.Logout(session.TokenFromRequest(r, h.Store))
	h.Store.Clear(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// safeNext keeps redirects on-site.
func safeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return "/destinations"
	}
	return next
}
