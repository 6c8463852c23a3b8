package usecase

import (
	"context"
	"fmt"
	"slices"

	"github.com/power-mac-book/travelkit-web/internal/entity"
)

// SegmentUseCase drives the segment editor: list, drafts (blank or from
// a template), save (POST for new, PUT for existing), delete with
// confirmation. Like the CMS list, every successful mutation is
// followed by a full re-list.
type SegmentUseCase struct {
	Segments SegmentGateway
}

func NewSegmentUseCase(segments SegmentGateway) *SegmentUseCase {
	return &SegmentUseCase{Segments: segments}
}

func (uc *SegmentUseCase) List(ctx context.Context, token string) ([]entity.Segment, error) {
	segments, err := uc.Segments.ListSegments(ctx, token)
	if err != nil {
		return nil, mapGatewayErr(err)
	}
	return segments, nil
}

// NewDraft returns a blank draft with sane messaging defaults.
func (uc *SegmentUseCase) NewDraft() entity.Segment {
	return entity.Segment{
		IsActive: true,
		MessagingPreferences: entity.MessagingPreferences{
			Channels:      entity.Channels{Email: true},
			Frequency:     "weekly",
			Tone:          "friendly",
			SendHourStart: 9,
			SendHourEnd:   21,
		},
	}
}

// DraftFromTemplate copies one of the built-in starting points. Slices
// are cloned so editing a draft never mutates the template.
func (uc *SegmentUseCase) DraftFromTemplate(name string) (entity.Segment, error) {
	template, ok := segmentTemplates[name]
	if !ok {
		return entity.Segment{}, &DomainError{Code: "UNKNOWN_TEMPLATE", Message: fmt.Sprintf("unknown segment template %q", name)}
	}
	template.TargetingRules.Destinations = slices.Clone(template.TargetingRules.Destinations)
	template.TargetingRules.TravelStyles = slices.Clone(template.TargetingRules.TravelStyles)
	return template, nil
}

// TemplateNames lists the built-in templates in menu order.
func (uc *SegmentUseCase) TemplateNames() []string {
	return []string{"frequent-traveler", "budget-conscious", "premium"}
}

// Save persists a draft: POST when it has never been saved, PUT keyed
// by id otherwise. Returns the saved record and the re-fetched list.
func (uc *SegmentUseCase) Save(ctx context.Context, token string, draft entity.Segment) (*entity.Segment, []entity.Segment, error) {
	if errs := ValidateSegment(draft); len(errs) > 0 {
		return nil, nil, &DomainError{Code: "INVALID_SEGMENT", Message: errs[0].Error()}
	}

	var saved *entity.Segment
	var err error
	if draft.IsNew() {
		saved, err = uc.Segments.CreateSegment(ctx, token, draft)
	} else {
		saved, err = uc.Segments.UpdateSegment(ctx, token, draft)
	}
	if err != nil {
		return nil, nil, mapGatewayErr(err)
	}

	segments, err := uc.List(ctx, token)
	if err != nil {
		return nil, nil, err
	}
	return saved, segments, nil
}

// Delete removes a segment by id after confirmation and re-lists.
func (uc *SegmentUseCase) Delete(ctx context.Context, token, id string, confirmed bool) ([]entity.Segment, error) {
	if !confirmed {
		return nil, ErrConfirmationRequired
	}
	if err := uc.Segments.DeleteSegment(ctx, token, id); err != nil {
		return nil, mapGatewayErr(err)
	}
	return uc.List(ctx, token)
}

var segmentTemplates = map[string]entity.Segment{
	"frequent-traveler": {
		Name:        "Frequent travelers",
		Description: "Travelers with five or more trips who were active this quarter",
		TargetingRules: entity.TargetingRules{
			VisitCount:     entity.Bounds{Min: 5},
			LastActiveDays: 90,
		},
		MessagingPreferences: entity.MessagingPreferences{
			Channels:      entity.Channels{Email: true, Push: true},
			Frequency:     "weekly",
			Tone:          "friendly",
			SendHourStart: 9,
			SendHourEnd:   21,
		},
		IsActive: true,
	},
	"budget-conscious": {
		Name:        "Budget conscious",
		Description: "Low-spend travelers who respond to savings messaging",
		TargetingRules: entity.TargetingRules{
			TotalSpend:   entity.Bounds{Max: 50000},
			TravelStyles: []string{"budget"},
		},
		MessagingPreferences: entity.MessagingPreferences{
			Channels:      entity.Channels{Email: true, SMS: true},
			Frequency:     "weekly",
			Tone:          "urgent",
			SendHourStart: 10,
			SendHourEnd:   20,
		},
		IsActive: true,
	},
	"premium": {
		Name:        "Premium travelers",
		Description: "High-spend travelers preferring comfort or luxury trips",
		TargetingRules: entity.TargetingRules{
			TotalSpend:   entity.Bounds{Min: 200000},
			TravelStyles: []string{"comfort", "luxury"},
		},
		MessagingPreferences: entity.MessagingPreferences{
			Channels:      entity.Channels{Email: true, WhatsApp: true},
			Frequency:     "monthly",
			Tone:          "informative",
			SendHourStart: 11,
			SendHourEnd:   19,
		},
		IsActive: true,
	},
}
