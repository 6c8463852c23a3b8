package entity

// TravelerProfile mirrors GET /travelers/me/profile. The whole DTO is
// sent back on save; the backend is the authority for every field.
type TravelerProfile struct {
	UserID      string            `json:"user_id"`
	Personal    PersonalInfo      `json:"personal"`
	Contact     ContactInfo       `json:"contact"`
	Medical     MedicalInfo       `json:"medical"`
	Preferences TravelPreferences `json:"preferences"`
}

type PersonalInfo struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	DateOfBirth string `json:"date_of_birth"` // YYYY-MM-DD
	Gender      string `json:"gender"`
	Nationality string `json:"nationality"`
}

type ContactInfo struct {
	Phone             string `json:"phone"`
	AlternatePhone    string `json:"alternate_phone"`
	Address           string `json:"address"`
	City              string `json:"city"`
	State             string `json:"state"`
	PinCode           string `json:"pin_code"`
	EmergencyName     string `json:"emergency_contact_name"`
	EmergencyPhone    string `json:"emergency_contact_phone"`
	EmergencyRelation string `json:"emergency_contact_relation"`
}

type MedicalInfo struct {
	Conditions   string `json:"conditions"`
	Allergies    string `json:"allergies"`
	Medications  string `json:"medications"`
	DietaryNeeds string `json:"dietary_needs"`
}

type TravelPreferences struct {
	PreferredDestinations []string `json:"preferred_destinations"`
	BudgetMin             float64  `json:"budget_min"`
	BudgetMax             float64  `json:"budget_max"`
	TravelStyle           string   `json:"travel_style"` // "budget" | "comfort" | "luxury"
	RoomSharing           bool     `json:"room_sharing"`
}
