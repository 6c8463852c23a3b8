package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/power-mac-book/travelkit-web/internal/infra/http/middleware"
	"github.com/power-mac-book/travelkit-web/internal/infra/http/web"
	"github.com/power-mac-book/travelkit-web/internal/usecase"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// pageData builds the common template envelope from the request.
func pageData(r *http.Request, title string, data interface{}) web.PageData {
	return web.PageData{
		Title:   title,
		Session: middleware.SessionFromContext(r.Context()),
		Flash:   r.URL.Query().Get("flash"),
		Data:    data,
	}
}

// flashURL appends a one-shot message to a redirect target.
func flashURL(path, msg string) string {
	return path + "?flash=" + url.QueryEscape(msg)
}

// sessionToken returns the restored session's token, empty when the
// request is unauthenticated. Public pages pass the empty token on to
// the backend, which decides what anonymous callers may see.
func sessionToken(r *http.Request) string {
	if sess := middleware.SessionFromContext(r.Context()); sess != nil {
		return sess.Token
	}
	return ""
}

type errorView struct {
	Message string
}

// failPage maps a usecase error onto the page error surface: dead
// sessions go back to login, rejections render with their message,
// transport failures render a generic message after logging.
func failPage(view *web.Renderer, w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, usecase.ErrUnauthenticated) {
		http.Redirect(w, r, "/login?next="+r.URL.Path, http.StatusSeeOther)
		return
	}

	status := http.StatusBadGateway
	message := "The TravelKit service is unreachable. Your data is unchanged; try again shortly."

	var de *usecase.DomainError
	switch {
	case errors.Is(err, usecase.ErrNotFound):
		status = http.StatusNotFound
		message = "Not found."
	case errors.As(err, &de):
		status = http.StatusBadRequest
		message = de.Message
	default:
		slog.Error("request failed", slog.String("path", r.URL.Path), slog.Any("error", err))
		middleware.RecordBackendError(r.URL.Path)
	}

	view.Render(w, status, "error", web.PageData{
		Title:   "Error",
		Session: middleware.SessionFromContext(r.Context()),
		Data:    errorView{Message: message},
	})
}

// failJSON is the JSON counterpart of failPage.
func failJSON(w http.ResponseWriter, err error) {
	var de *usecase.DomainError
	switch {
	case errors.Is(err, usecase.ErrUnauthenticated):
		writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "not authenticated"})
	case errors.Is(err, usecase.ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"detail": "not found"})
	case errors.As(err, &de):
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": de.Message})
	default:
		slog.Error("json request failed", slog.Any("error", err))
		writeJSON(w, http.StatusBadGateway, map[string]string{"detail": "backend unreachable"})
	}
}
