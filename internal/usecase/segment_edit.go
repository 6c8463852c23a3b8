package usecase

import (
	"fmt"
	"strconv"

	"github.com/power-mac-book/travelkit-web/internal/entity"
)

// Draft edits are expressed as one field path plus a value, and each
// path has a typed update function operating on a value copy. Sibling
// preservation is structural: nothing here ever rebuilds a nested
// object from partial input.

// ApplyField dispatches an editor field path ("targeting_rules.visit_count.min",
// "messaging_preferences.channels.sms", ...) onto the draft and returns
// the updated copy.
func ApplyField(draft entity.Segment, path, value string) (entity.Segment, error) {
	switch path {
	case "name":
		draft.Name = value
	case "description":
		draft.Description = value
	case "is_active":
		on, err := strconv.ParseBool(value)
		if err != nil {
			return draft, invalidFieldValue(path, value)
		}
		draft.IsActive = on

	case "targeting_rules.visit_count.min":
		return applyIntField(draft, path, value, func(d *entity.Segment, n int) { d.TargetingRules.VisitCount.Min = n })
	case "targeting_rules.visit_count.max":
		return applyIntField(draft, path, value, func(d *entity.Segment, n int) { d.TargetingRules.VisitCount.Max = n })
	case "targeting_rules.total_spend.min":
		return applyIntField(draft, path, value, func(d *entity.Segment, n int) { d.TargetingRules.TotalSpend.Min = n })
	case "targeting_rules.total_spend.max":
		return applyIntField(draft, path, value, func(d *entity.Segment, n int) { d.TargetingRules.TotalSpend.Max = n })
	case "targeting_rules.last_active_days":
		return applyIntField(draft, path, value, func(d *entity.Segment, n int) { d.TargetingRules.LastActiveDays = n })

	case "messaging_preferences.frequency":
		draft.MessagingPreferences.Frequency = value
	case "messaging_preferences.tone":
		draft.MessagingPreferences.Tone = value
	case "messaging_preferences.send_hour_start":
		return applyIntField(draft, path, value, func(d *entity.Segment, n int) { d.MessagingPreferences.SendHourStart = n })
	case "messaging_preferences.send_hour_end":
		return applyIntField(draft, path, value, func(d *entity.Segment, n int) { d.MessagingPreferences.SendHourEnd = n })

	case "messaging_preferences.channels.email",
		"messaging_preferences.channels.sms",
		"messaging_preferences.channels.push",
		"messaging_preferences.channels.whatsapp":
		on, err := strconv.ParseBool(value)
		if err != nil {
			return draft, invalidFieldValue(path, value)
		}
		return applyChannel(draft, path, on), nil

	default:
		return draft, &DomainError{Code: "UNKNOWN_FIELD", Message: fmt.Sprintf("unknown segment field %q", path)}
	}
	return draft, nil
}

func applyIntField(draft entity.Segment, path, value string, set func(*entity.Segment, int)) (entity.Segment, error) {
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return draft, invalidFieldValue(path, value)
	}
	set(&draft, n)
	return draft, nil
}

func applyChannel(draft entity.Segment, path string, on bool) entity.Segment {
	switch path {
	case "messaging_preferences.channels.email":
		draft.MessagingPreferences.Channels.Email = on
	case "messaging_preferences.channels.sms":
		draft.MessagingPreferences.Channels.SMS = on
	case "messaging_preferences.channels.push":
		draft.MessagingPreferences.Channels.Push = on
	case "messaging_preferences.channels.whatsapp":
		draft.MessagingPreferences.Channels.WhatsApp = on
	}
	return draft
}

func invalidFieldValue(path, value string) error {
	return &DomainError{Code: "INVALID_FIELD_VALUE", Message: fmt.Sprintf("invalid value %q for %s", value, path)}
}
