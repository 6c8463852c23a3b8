package entity

// Destination is read-only from this tier; pricing and interest
// aggregates come pre-computed from the backend.
type Destination struct {
	ID             int     `json:"id"`
	Name           string  `json:"name"`
	Location       string  `json:"location"`
	Description    string  `json:"description"`
	ImageURL       string  `json:"image_url"`
	SoloPrice      float64 `json:"solo_price"`
	GroupPrice     float64 `json:"group_price"`
	Currency       string  `json:"currency"`
	InterestCount  int     `json:"interest_count"`
	UpcomingGroups int     `json:"upcoming_groups"`
}

// Savings is a derived display value, never authoritative.
func (d Destination) Savings() float64 {
	if d.SoloPrice <= d.GroupPrice {
		return 0
	}
	return d.SoloPrice - d.GroupPrice
}

// CalendarMonth is one month of the destination availability calendar.
type CalendarMonth struct {
	Year  int           `json:"year"`
	Month int           `json:"month"`
	Days  []CalendarDay `json:"days"`
}

type CalendarDay struct {
	Date       string `json:"date"` // YYYY-MM-DD
	Available  bool   `json:"available"`
	GroupCount int    `json:"group_count"`
}
