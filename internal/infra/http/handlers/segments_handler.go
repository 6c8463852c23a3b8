package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/power-mac-book/travelkit-web/internal/entity"
	"github.com/power-mac-book/travelkit-web/internal/infra/http/web"
	"github.com/power-mac-book/travelkit-web/internal/usecase"
)

type SegmentsHandler struct {
	Segments *usecase.SegmentUseCase
	View     *web.Renderer
}

func NewSegmentsHandler(segments *usecase.SegmentUseCase, view *web.Renderer) *SegmentsHandler {
	return &SegmentsHandler{Segments: segments, View: view}
}

type segmentsView struct {
	Segments        []entity.Segment
	Draft           entity.Segment
	ShowEditor      bool
	Templates       []string
	Frequencies     []string
	Tones           []string
	ConfirmDeleteID string
}

func (h *SegmentsHandler) List(w http.ResponseWriter, r *http.Request) {
	segments, err := h.Segments.List(r.Context(), sessionToken(r))
	if err != nil {
		failPage(h.View, w, r, err)
		return
	}

	view := segmentsView{
		Segments:        segments,
		Templates:       h.Segments.TemplateNames(),
		Frequencies:     []string{"daily", "weekly", "monthly"},
		Tones:           []string{"urgent", "friendly", "informative"},
		ConfirmDeleteID: r.URL.Query().Get("confirm_delete"),
	}

	switch {
	case r.URL.Query().Get("draft") == "blank":
		view.Draft = h.Segments.NewDraft()
		view.ShowEditor = true
	case r.URL.Query().Get("draft") != "":
		draft, err := h.Segments.DraftFromTemplate(r.URL.Query().Get("draft"))
		if err != nil {
			failPage(h.View, w, r, err)
			return
		}
		view.Draft = draft
		view.ShowEditor = true
	case r.URL.Query().Get("edit") != "":
		id := r.URL.Query().Get("edit")
		for _, s := range segments {
			if s.ID == id {
				view.Draft = s
				view.ShowEditor = true
				break
			}
		}
	}

	h.View.Render(w, http.StatusOK, "segments", pageData(r, "User segments", view))
}

// Save rebuilds the draft from the form through the per-field update
// functions, so a form that omits a section can never wipe it.
func (h *SegmentsHandler) Save(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	token := sessionToken(r)
	draft, err := h.baseDraft(r, token)
	if err != nil {
		failPage(h.View, w, r, err)
		return
	}

	draft, err = applySegmentForm(draft, r)
	if err != nil {
		failPage(h.View, w, r, err)
		return
	}

	if _, _, err := h.Segments.Save(r.Context(), token, draft); err != nil {
		failPage(h.View, w, r, err)
		return
	}
	http.Redirect(w, r, flashURL("/admin/segments", "Segment saved"), http.StatusSeeOther)
}

func (h *SegmentsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	confirmed := r.PostFormValue("confirm") == "true"

	if _, err := h.Segments.Delete(r.Context(), sessionToken(r), id, confirmed); err != nil {
		if errors.Is(err, usecase.ErrConfirmationRequired) {
			http.Redirect(w, r, "/admin/segments?confirm_delete="+id, http.StatusSeeOther)
			return
		}
		failPage(h.View, w, r, err)
		return
	}
	http.Redirect(w, r, flashURL("/admin/segments", "Segment deleted"), http.StatusSeeOther)
}

// ApplyField is the JSON edit endpoint: one field path, one value, the
// whole draft in and out. Sibling fields come back untouched.
func (h *SegmentsHandler) ApplyField(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Draft entity.Segment `json:"draft"`
		Field string         `json:"field"`
		Value string         `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "invalid JSON"})
		return
	}

	updated, err := usecase.ApplyField(req.Draft, req.Field, req.Value)
	if err != nil {
		failJSON(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// baseDraft resolves what the form edits started from: the stored
// segment when an id is present, a fresh draft otherwise.
func (h *SegmentsHandler) baseDraft(r *http.Request, token string) (entity.Segment, error) {
	id := r.PostFormValue("id")
	if id == "" {
		return h.Segments.NewDraft(), nil
	}

	segments, err := h.Segments.List(r.Context(), token)
	if err != nil {
		return entity.Segment{}, err
	}
	for _, s := range segments {
		if s.ID == id {
			return s, nil
		}
	}
	return entity.Segment{}, usecase.ErrNotFound
}

func applySegmentForm(draft entity.Segment, r *http.Request) (entity.Segment, error) {
	fields := map[string]string{
		"name":                                    r.PostFormValue("name"),
		"description":                             r.PostFormValue("description"),
		"is_active":                               checkbox(r, "is_active"),
		"targeting_rules.visit_count.min":         formNumber(r, "visit_count_min"),
		"targeting_rules.visit_count.max":         formNumber(r, "visit_count_max"),
		"targeting_rules.total_spend.min":         formNumber(r, "total_spend_min"),
		"targeting_rules.total_spend.max":         formNumber(r, "total_spend_max"),
		"targeting_rules.last_active_days":        formNumber(r, "last_active_days"),
		"messaging_preferences.frequency":         r.PostFormValue("frequency"),
		"messaging_preferences.tone":              r.PostFormValue("tone"),
		"messaging_preferences.send_hour_start":   formNumber(r, "send_hour_start"),
		"messaging_preferences.send_hour_end":     formNumber(r, "send_hour_end"),
		"messaging_preferences.channels.email":    checkbox(r, "channel_email"),
		"messaging_preferences.channels.sms":      checkbox(r, "channel_sms"),
		"messaging_preferences.channels.push":     checkbox(r, "channel_push"),
		"messaging_preferences.channels.whatsapp": checkbox(r, "channel_whatsapp"),
	}

	var err error
	for path, value := range fields {
		draft, err = usecase.ApplyField(draft, path, value)
		if err != nil {
			return draft, err
		}
	}
	return draft, nil
}

func checkbox(r *http.Request, name string) string {
	if r.PostFormValue(name) != "" {
		return "true"
	}
	return "false"
}

func formNumber(r *http.Request, name string) string {
	v := r.PostFormValue(name)
	if v == "" {
		return "0"
	}
	return v
}
