package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/power-mac-book/travelkit-web/internal/entity"
	"github.com/power-mac-book/travelkit-web/internal/infra/http/web"
	"github.com/power-mac-book/travelkit-web/internal/usecase"
)

type PagesHandler struct {
	Pages *usecase.PageAdminUseCase
	View  *web.Renderer
}

func NewPagesHandler(pages *usecase.PageAdminUseCase, view *web.Renderer) *PagesHandler {
	return &PagesHandler{Pages: pages, View: view}
}

type pagesView struct {
	Pages           []entity.Page
	ConfirmDeleteID int
}

func (h *PagesHandler) List(w http.ResponseWriter, r *http.Request) {
	pages, err := h.Pages.List(r.Context(), sessionToken(r))
	if err != nil {
		failPage(h.View, w, r, err)
		return
	}

	confirmID, _ := strconv.Atoi(r.URL.Query().Get("confirm_delete"))
	h.View.Render(w, http.StatusOK, "pages", pageData(r, "Content pages", pagesView{
		Pages:           pages,
		ConfirmDeleteID: confirmID,
	}))
}

func (h *PagesHandler) TogglePublish(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid page id", http.StatusBadRequest)
		return
	}

	if _, err := h.Pages.TogglePublish(r.Context(), sessionToken(r), id); err != nil {
		failPage(h.View, w, r, err)
		return
	}
	http.Redirect(w, r, flashURL("/admin/pages", "Page updated"), http.StatusSeeOther)
}

func (h *PagesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid page id", http.StatusBadRequest)
		return
	}

	confirmed := r.PostFormValue("confirm") == "true"
	if _, err := h.Pages.Delete(r.Context(), sessionToken(r), id, confirmed); err != nil {
		if errors.Is(err, usecase.ErrConfirmationRequired) {
			// First click arms the confirmation; the list re-renders
			// with a "really delete?" button for this page only.
			http.Redirect(w, r, fmt.Sprintf("/admin/pages?confirm_delete=%d", id), http.StatusSeeOther)
			return
		}
		failPage(h.View, w, r, err)
		return
	}
	http.Redirect(w, r, flashURL("/admin/pages", "Page deleted"), http.StatusSeeOther)
}
