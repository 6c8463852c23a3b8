package usecase

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/power-mac-book/travelkit-web/internal/entity"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var phonePattern = regexp.MustCompile(`^\+?[0-9][0-9\s\-]{7,17}$`)

// ValidateProfile checks the traveler profile before save. Optional
// sections (medical, preferences) are free-form; only identity and
// contact fields are enforced.
func ValidateProfile(p entity.TravelerProfile) []ValidationError {
	var errs []ValidationError

	if strings.TrimSpace(p.Personal.FirstName) == "" {
		errs = append(errs, ValidationError{"personal.first_name", "is required"})
	}
	if strings.TrimSpace(p.Personal.LastName) == "" {
		errs = append(errs, ValidationError{"personal.last_name", "is required"})
	}
	if p.Personal.DateOfBirth != "" && !isValidDate(p.Personal.DateOfBirth) {
		errs = append(errs, ValidationError{"personal.date_of_birth", "must be a valid date (YYYY-MM-DD)"})
	}

	if p.Contact.Phone != "" && !phonePattern.MatchString(p.Contact.Phone) {
		errs = append(errs, ValidationError{"contact.phone", "must be a valid phone number"})
	}
	if p.Contact.AlternatePhone != "" && !phonePattern.MatchString(p.Contact.AlternatePhone) {
		errs = append(errs, ValidationError{"contact.alternate_phone", "must be a valid phone number"})
	}
	if p.Contact.EmergencyPhone != "" && !phonePattern.MatchString(p.Contact.EmergencyPhone) {
		errs = append(errs, ValidationError{"contact.emergency_contact_phone", "must be a valid phone number"})
	}

	if p.Preferences.BudgetMax > 0 && p.Preferences.BudgetMin > p.Preferences.BudgetMax {
		errs = append(errs, ValidationError{"preferences.budget_min", "must not exceed budget_max"})
	}

	return errs
}

// ValidateSegment checks a draft before it is sent to the backend.
func ValidateSegment(s entity.Segment) []ValidationError {
	var errs []ValidationError

	name := strings.TrimSpace(s.Name)
	if name == "" {
		errs = append(errs, ValidationError{"name", "is required"})
	} else if len(name) > 100 {
		errs = append(errs, ValidationError{"name", "must not exceed 100 characters"})
	}

	rules := s.TargetingRules
	if rules.VisitCount.Max > 0 && rules.VisitCount.Min > rules.VisitCount.Max {
		errs = append(errs, ValidationError{"targeting_rules.visit_count", "min must not exceed max"})
	}
	if rules.TotalSpend.Max > 0 && rules.TotalSpend.Min > rules.TotalSpend.Max {
		errs = append(errs, ValidationError{"targeting_rules.total_spend", "min must not exceed max"})
	}
	if rules.LastActiveDays < 0 {
		errs = append(errs, ValidationError{"targeting_rules.last_active_days", "must not be negative"})
	}

	prefs := s.MessagingPreferences
	switch prefs.Frequency {
	case "", "daily", "weekly", "monthly":
	default:
		errs = append(errs, ValidationError{"messaging_preferences.frequency", "must be daily, weekly or monthly"})
	}
	switch prefs.Tone {
	case "", "urgent", "friendly", "informative":
	default:
		errs = append(errs, ValidationError{"messaging_preferences.tone", "must be urgent, friendly or informative"})
	}
	if prefs.SendHourStart < 0 || prefs.SendHourStart > 23 || prefs.SendHourEnd < 0 || prefs.SendHourEnd > 23 {
		errs = append(errs, ValidationError{"messaging_preferences.send_hours", "must be within 0-23"})
	}
	if prefs.SendHourEnd > 0 && prefs.SendHourStart > prefs.SendHourEnd {
		errs = append(errs, ValidationError{"messaging_preferences.send_hours", "start must not be after end"})
	}
	channels := prefs.Channels
	if !channels.Email && !channels.SMS && !channels.Push && !channels.WhatsApp {
		errs = append(errs, ValidationError{"messaging_preferences.channels", "at least one channel is required"})
	}

	return errs
}

func isValidDate(dateStr string) bool {
	if _, err := time.Parse("2006-01-02", dateStr); err == nil {
		return true
	}
	if _, err := time.Parse(time.RFC3339, dateStr); err == nil {
		return true
	}
	return false
}
