package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/power-mac-book/travelkit-web/internal/entity"
	"github.com/power-mac-book/travelkit-web/internal/infra/http/web"
	"github.com/power-mac-book/travelkit-web/internal/usecase"
)

type ProfileHandler struct {
	Profile *usecase.ProfileUseCase
	View    *web.Renderer
}

func NewProfileHandler(profile *usecase.ProfileUseCase, view *web.Renderer) *ProfileHandler {
	return &ProfileHandler{Profile: profile, View: view}
}

type profileView struct {
	Profile entity.TravelerProfile
	Editing bool
}

func (h *ProfileHandler) Show(w http.ResponseWriter, r *http.Request) {
	profile, err := h.Profile.Get(r.Context(), sessionToken(r))
	if err != nil {
		failPage(h.View, w, r, err)
		return
	}

	h.View.Render(w, http.StatusOK, "profile", pageData(r, "My profile", profileView{
		Profile: *profile,
		Editing: r.URL.Query().Get("edit") == "true",
	}))
}

// Save overlays the submitted form onto the current profile so the full
// DTO goes back to the backend, then redirects to the read-only view.
// The redirect without ?edit is what exits edit mode.
func (h *ProfileHandler) Save(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	token := sessionToken(r)
	current, err := h.Profile.Get(r.Context(), token)
	if err != nil {
		failPage(h.View, w, r, err)
		return
	}

	edited := applyProfileForm(*current, r)
	if _, err := h.Profile.Save(r.Context(), token, edited); err != nil {
		var de *usecase.DomainError
		if errors.As(err, &de) {
			data := pageData(r, "My profile", profileView{Profile: edited, Editing: true})
			data.Error = de.Message
			h.View.Render(w, http.StatusBadRequest, "profile", data)
			return
		}
		failPage(h.View, w, r, err)
		return
	}

	http.Redirect(w, r, flashURL("/traveler/profile", "Profile saved"), http.StatusSeeOther)
}

func applyProfileForm(p entity.TravelerProfile, r *http.Request) entity.TravelerProfile {
	p.Personal.FirstName = r.PostFormValue("first_name")
	p.Personal.LastName = r.PostFormValue("last_name")
	p.Personal.DateOfBirth = r.PostFormValue("date_of_birth")
	p.Personal.Nationality = r.PostFormValue("nationality")

	p.Contact.Phone = r.PostFormValue("phone")
	p.Contact.AlternatePhone = r.PostFormValue("alternate_phone")
	p.Contact.Address = r.PostFormValue("address")
	p.Contact.City = r.PostFormValue("city")
	p.Contact.State = r.PostFormValue("state")
	p.Contact.PinCode = r.PostFormValue("pin_code")
	p.Contact.EmergencyName = r.PostFormValue("emergency_contact_name")
	p.Contact.EmergencyPhone = r.PostFormValue("emergency_contact_phone")

	p.Medical.Conditions = r.PostFormValue("conditions")
	p.Medical.Allergies = r.PostFormValue("allergies")
	p.Medical.DietaryNeeds = r.PostFormValue("dietary_needs")

	p.Preferences.TravelStyle = r.PostFormValue("travel_style")
	if v, err := strconv.ParseFloat(r.PostFormValue("budget_min"), 64); err == nil {
		p.Preferences.BudgetMin = v
	}
	if v, err := strconv.ParseFloat(r.PostFormValue("budget_max"), 64); err == nil {
		p.Preferences.BudgetMax = v
	}
	p.Preferences.RoomSharing = r.PostFormValue("room_sharing") != ""

	return p
}
