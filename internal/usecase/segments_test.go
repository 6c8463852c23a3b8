package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/power-mac-book/travelkit-web/internal/entity"
	"github.com/power-mac-book/travelkit-web/internal/usecase"
)

func validDraft() entity.Segment {
	return entity.Segment{
		Name: "Weekend explorers",
		TargetingRules: entity.TargetingRules{
			VisitCount:     entity.Bounds{Min: 2, Max: 10},
			LastActiveDays: 30,
		},
		MessagingPreferences: entity.MessagingPreferences{
			Channels:      entity.Channels{Email: true},
			Frequency:     "weekly",
			Tone:          "friendly",
			SendHourStart: 9,
			SendHourEnd:   21,
		},
		IsActive: true,
	}
}

func TestSegmentSaveCreatesWhenNew(t *testing.T) {
	segments := new(MockSegmentGateway)
	uc := usecase.NewSegmentUseCase(segments)

	draft := validDraft()
	saved := draft
	saved.ID = "seg-1"

	segments.On("CreateSegment", context.Background(), "token", draft).Return(&saved, nil)
	segments.On("ListSegments", context.Background(), "token").Return([]entity.Segment{saved}, nil)

	result, list, err := uc.Save(context.Background(), "token", draft)

	assert.NoError(t, err)
	assert.Equal(t, "seg-1", result.ID)
	assert.Len(t, list, 1)
	segments.AssertNotCalled(t, "UpdateSegment")
}

func TestSegmentSaveUpdatesWhenExisting(t *testing.T) {
	segments := new(MockSegmentGateway)
	uc := usecase.NewSegmentUseCase(segments)

	draft := validDraft()
	draft.ID = "seg-1"

	segments.On("UpdateSegment", context.Background(), "token", draft).Return(&draft, nil)
	segments.On("ListSegments", context.Background(), "token").Return([]entity.Segment{draft}, nil)

	_, _, err := uc.Save(context.Background(), "token", draft)

	assert.NoError(t, err)
	segments.AssertNotCalled(t, "CreateSegment")
}

func TestSegmentSaveRejectsInvalidDraft(t *testing.T) {
	segments := new(MockSegmentGateway)
	uc := usecase.NewSegmentUseCase(segments)

	draft := validDraft()
	draft.Name = ""

	result, list, err := uc.Save(context.Background(), "token", draft)

	assert.Nil(t, result)
	assert.Nil(t, list)
	assert.True(t, usecase.IsDomainError(err))
	segments.AssertNotCalled(t, "CreateSegment")
	segments.AssertNotCalled(t, "UpdateSegment")
}

func TestSegmentDeleteRequiresConfirmation(t *testing.T) {
	segments := new(MockSegmentGateway)
	uc := usecase.NewSegmentUseCase(segments)

	list, err := uc.Delete(context.Background(), "token", "seg-1", false)

	assert.Nil(t, list)
	assert.ErrorIs(t, err, usecase.ErrConfirmationRequired)
	segments.AssertNotCalled(t, "DeleteSegment")
}

func TestSegmentDeleteRefetchesList(t *testing.T) {
	segments := new(MockSegmentGateway)
	uc := usecase.NewSegmentUseCase(segments)

	segments.On("DeleteSegment", context.Background(), "token", "seg-1").Return(nil)
	segments.On("ListSegments", context.Background(), "token").Return([]entity.Segment{}, nil)

	list, err := uc.Delete(context.Background(), "token", "seg-1", true)

	assert.NoError(t, err)
	assert.Empty(t, list)
	segments.AssertExpectations(t)
}

func TestSegmentNewDraftDefaults(t *testing.T) {
	uc := usecase.NewSegmentUseCase(nil)

	draft := uc.NewDraft()

	assert.True(t, draft.IsNew())
	assert.True(t, draft.IsActive)
	assert.True(t, draft.MessagingPreferences.Channels.Email)
	assert.Equal(t, "weekly", draft.MessagingPreferences.Frequency)
	assert.Equal(t, 9, draft.MessagingPreferences.SendHourStart)
	assert.Equal(t, 21, draft.MessagingPreferences.SendHourEnd)
}

func TestSegmentDraftFromTemplate(t *testing.T) {
	uc := usecase.NewSegmentUseCase(nil)

	for _, name := range uc.TemplateNames() {
		draft, err := uc.DraftFromTemplate(name)
		assert.NoError(t, err)
		assert.True(t, draft.IsNew())
		assert.NotEmpty(t, draft.Name)
		assert.Empty(t, usecase.ValidateSegment(draft))
	}
}

func TestSegmentDraftFromTemplateIsACopy(t *testing.T) {
	uc := usecase.NewSegmentUseCase(nil)

	draft, err := uc.DraftFromTemplate("premium")
	assert.NoError(t, err)

	draft.Name = "edited"
	draft.TargetingRules.TravelStyles[0] = "edited"

	fresh, err := uc.DraftFromTemplate("premium")
	assert.NoError(t, err)
	assert.Equal(t, "Premium travelers", fresh.Name)
	assert.Equal(t, []string{"comfort", "luxury"}, fresh.TargetingRules.TravelStyles)
}

func TestSegmentDraftFromUnknownTemplate(t *testing.T) {
	uc := usecase.NewSegmentUseCase(nil)

	_, err := uc.DraftFromTemplate("nope")

	assert.True(t, usecase.IsDomainError(err))
}
