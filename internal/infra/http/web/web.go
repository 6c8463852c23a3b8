package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/power-mac-book/travelkit-web/internal/entity"
)

//go:embed templates/*.html
var files embed.FS

var pageNames = []string{
	"login", "pages", "funnel", "segments",
	"destinations", "destination", "groups", "profile", "error",
}

var funcs = template.FuncMap{
	"money": func(v float64, currency string) string {
		if currency == "" {
			currency = "INR"
		}
		return fmt.Sprintf("%s %.0f", currency, v)
	},
	"pct": func(v float64) string {
		return fmt.Sprintf("%.1f%%", v)
	},
	"datefmt": func(t time.Time) string {
		if t.IsZero() {
			return "-"
		}
		return t.Format("02 Jan 2006")
	},
}

// PageData is the envelope every template receives.
type PageData struct {
	Title   string
	Session *entity.Session
	Flash   string
	Error   string
	Data    interface{}
}

// Renderer holds one compiled template set per page, each paired with
// the shared layout.
type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		t, err := template.New("layout.html").Funcs(funcs).ParseFS(files,
			"templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		pages[name] = t
	}
	return &Renderer{pages: pages}, nil
}

// Render writes a page. The template executes into a buffer first so a
// rendering failure becomes a clean 500 instead of a torn response.
func (r *Renderer) Render(w http.ResponseWriter, status int, name string, data PageData) {
	t, ok := r.pages[name]
	if !ok {
		slog.Error("unknown template", slog.String("name", name))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		slog.Error("template execute failed", slog.String("name", name), slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}
