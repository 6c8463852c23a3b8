package entity

import "time"

// Segment is a named targeting rule set with messaging preferences,
// created and edited from the admin surface and persisted server-side.
type Segment struct {
	ID                   string               `json:"id"`
	Name                 string               `json:"name"`
	Description          string               `json:"description"`
	TargetingRules       TargetingRules       `json:"targeting_rules"`
	MessagingPreferences MessagingPreferences `json:"messaging_preferences"`
	IsActive             bool                 `json:"is_active"`
	UserCount            int                  `json:"user_count"`
	CreatedAt            time.Time            `json:"created_at"`
	UpdatedAt            time.Time            `json:"updated_at"`
}

// IsNew reports whether the segment has never been saved. Save routes
// on this: POST when new, PUT otherwise.
func (s Segment) IsNew() bool { return s.ID == "" }

type TargetingRules struct {
	VisitCount     Bounds   `json:"visit_count"`
	TotalSpend     Bounds   `json:"total_spend"`
	LastActiveDays int      `json:"last_active_days"`
	Destinations   []string `json:"destinations"`
	TravelStyles   []string `json:"travel_styles"`
}

// Bounds is an inclusive min/max range; Max == 0 means unbounded.
type Bounds struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

type MessagingPreferences struct {
	Channels      Channels `json:"channels"`
	Frequency     string   `json:"frequency"` // "daily" | "weekly" | "monthly"
	Tone          string   `json:"tone"`      // "urgent" | "friendly" | "informative"
	SendHourStart int      `json:"send_hour_start"`
	SendHourEnd   int      `json:"send_hour_end"`
}

type Channels struct {
	Email    bool `json:"email"`
	SMS      bool `json:"sms"`
	Push     bool `json:"push"`
	WhatsApp bool `json:"whatsapp"`
}
