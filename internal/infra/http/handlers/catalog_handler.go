package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/power-mac-book/travelkit-web/internal/entity"
	"github.com/power-mac-book/travelkit-web/internal/infra/http/web"
	"github.com/power-mac-book/travelkit-web/internal/usecase"
)

type CatalogHandler struct {
	Catalog *usecase.CatalogUseCase
	View    *web.Renderer
}

func NewCatalogHandler(catalog *usecase.CatalogUseCase, view *web.Renderer) *CatalogHandler {
	return &CatalogHandler{Catalog: catalog, View: view}
}

type destinationsView struct {
	Destinations []entity.Destination
}

func (h *CatalogHandler) ListDestinations(w http.ResponseWriter, r *http.Request) {
	destinations, err := h.Catalog.Destinations(r.Context(), sessionToken(r))
	if err != nil {
		failPage(h.View, w, r, err)
		return
	}
	h.View.Render(w, http.StatusOK, "destinations", pageData(r, "Destinations", destinationsView{
		Destinations: destinations,
	}))
}

func (h *CatalogHandler) ShowDestination(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid destination id", http.StatusBadRequest)
		return
	}

	detail, err := h.Catalog.Detail(r.Context(), sessionToken(r), id)
	if err != nil {
		failPage(h.View, w, r, err)
		return
	}
	h.View.Render(w, http.StatusOK, "destination", pageData(r, detail.Destination.Name, detail))
}

type groupsView struct {
	Groups []entity.Group
}

func (h *CatalogHandler) ListGroups(w http.ResponseWriter, r *http.Request) {
	destinationID, _ := strconv.Atoi(r.URL.Query().Get("destination_id"))
	groups, err := h.Catalog.Groups(r.Context(), sessionToken(r), destinationID)
	if err != nil {
		failPage(h.View, w, r, err)
		return
	}
	h.View.Render(w, http.StatusOK, "groups", pageData(r, "Travel groups", groupsView{Groups: groups}))
}

// JoinGroup is not wired to the backend yet; the button exists so the
// page matches the booking flow, but the action is declined.
func (h *CatalogHandler) JoinGroup(w http.ResponseWriter, r *http.Request) {
	http.Error(w, "joining groups is not available yet", http.StatusNotImplemented)
}
