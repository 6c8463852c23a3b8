package entity

import "time"

type GroupStatus string

const (
	GroupForming   GroupStatus = "forming"
	GroupConfirmed GroupStatus = "confirmed"
	GroupFull      GroupStatus = "full"
)

func (s GroupStatus) Valid() bool {
	switch s {
	case GroupForming, GroupConfirmed, GroupFull:
		return true
	}
	return false
}

// Group is a forming travel group for a destination. Read-only here;
// joining is handled by the backend.
type Group struct {
	ID            int         `json:"id"`
	DestinationID int         `json:"destination_id"`
	Destination   string      `json:"destination_name"`
	MinSize       int         `json:"min_size"`
	MaxSize       int         `json:"max_size"`
	CurrentSize   int         `json:"current_size"`
	Status        GroupStatus `json:"status"`
	PricePerHead  float64     `json:"price_per_head"`
	SoloPrice     float64     `json:"solo_price"`
	DepartureDate time.Time   `json:"departure_date"`
}

func (g Group) Savings() float64 {
	if g.SoloPrice <= g.PricePerHead {
		return 0
	}
	return g.SoloPrice - g.PricePerHead
}

// SpotsLeft is a display value; the backend enforces capacity.
func (g Group) SpotsLeft() int {
	left := g.MaxSize - g.CurrentSize
	if left < 0 {
		return 0
	}
	return left
}
