package usecase_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/power-mac-book/travelkit-web/internal/entity"
	"github.com/power-mac-book/travelkit-web/internal/usecase"
)

func TestValidateProfilePhoneFormats(t *testing.T) {
	for _, phone := range []string{"", "+91 98765 43210", "9876543210", "+1-202-555-0143"} {
		p := validProfile()
		p.Contact.Phone = phone
		assert.Empty(t, usecase.ValidateProfile(p), "phone %q", phone)
	}

	for _, phone := range []string{"abc", "+", "12", "call me maybe"} {
		p := validProfile()
		p.Contact.Phone = phone
		assert.NotEmpty(t, usecase.ValidateProfile(p), "phone %q", phone)
	}
}

func TestValidateProfileRequiredNames(t *testing.T) {
	p := validProfile()
	p.Personal.FirstName = "  "

	errs := usecase.ValidateProfile(p)

	assert.Len(t, errs, 1)
	assert.Equal(t, "personal.first_name", errs[0].Field)
}

func TestValidateProfileDateOfBirth(t *testing.T) {
	p := validProfile()
	p.Personal.DateOfBirth = "17/04/1992"

	assert.NotEmpty(t, usecase.ValidateProfile(p))

	p.Personal.DateOfBirth = "1992-04-17"
	assert.Empty(t, usecase.ValidateProfile(p))
}

func TestValidateSegmentNameLength(t *testing.T) {
	s := validDraft()
	s.Name = strings.Repeat("x", 101)

	errs := usecase.ValidateSegment(s)

	assert.Len(t, errs, 1)
	assert.Equal(t, "name", errs[0].Field)
}

func TestValidateSegmentBounds(t *testing.T) {
	s := validDraft()
	s.TargetingRules.VisitCount.Min = 20
	s.TargetingRules.VisitCount.Max = 10

	errs := usecase.ValidateSegment(s)

	assert.Len(t, errs, 1)
	assert.Equal(t, "targeting_rules.visit_count", errs[0].Field)
}

func TestValidateSegmentUnboundedMaxAllowed(t *testing.T) {
	s := validDraft()
	s.TargetingRules.VisitCount = entity.Bounds{Min: 5, Max: 0}

	assert.Empty(t, usecase.ValidateSegment(s))
}

func TestValidateSegmentSendHours(t *testing.T) {
	s := validDraft()
	s.MessagingPreferences.SendHourStart = 22
	s.MessagingPreferences.SendHourEnd = 8

	errs := usecase.ValidateSegment(s)

	assert.Len(t, errs, 1)
	assert.Equal(t, "messaging_preferences.send_hours", errs[0].Field)
}

func TestValidateSegmentNeedsAChannel(t *testing.T) {
	s := validDraft()
	s.MessagingPreferences.Channels = entity.Channels{}

	errs := usecase.ValidateSegment(s)

	assert.Len(t, errs, 1)
	assert.Equal(t, "messaging_preferences.channels", errs[0].Field)
}
