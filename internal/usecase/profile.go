package usecase

import (
	"context"

	"github.com/power-mac-book/travelkit-web/internal/entity"
)

// ProfileUseCase covers the traveler profile form: fetch once, edit,
// save the full DTO, re-fetch.
type ProfileUseCase struct {
	Profile ProfileGateway
}

func NewProfileUseCase(profile ProfileGateway) *ProfileUseCase {
	return &ProfileUseCase{Profile: profile}
}

// Get fetches the profile with a single retry on transport failure.
// This is the only retry in the whole tier; rejections and auth
// failures are never retried.
func (uc *ProfileUseCase) Get(ctx context.Context, token string) (*entity.TravelerProfile, error) {
	profile, err := uc.Profile.FetchProfile(ctx, token)
	if err == nil {
		return profile, nil
	}

	mapped := mapGatewayErr(err)
	if !isTransient(mapped) {
		return nil, mapped
	}

	profile, err = uc.Profile.FetchProfile(ctx, token)
	if err != nil {
		return nil, mapGatewayErr(err)
	}
	return profile, nil
}

// Save validates the edited profile, PUTs the full DTO and returns the
// re-fetched record so the form renders what the backend stored.
func (uc *ProfileUseCase) Save(ctx context.Context, token string, profile entity.TravelerProfile) (*entity.TravelerProfile, error) {
	if errs := ValidateProfile(profile); len(errs) > 0 {
		return nil, &DomainError{Code: "INVALID_PROFILE", Message: errs[0].Error()}
	}

	if _, err := uc.Profile.UpdateProfile(ctx, token, profile); err != nil {
		return nil, mapGatewayErr(err)
	}

	saved, err := uc.Profile.FetchProfile(ctx, token)
	if err != nil {
		return nil, mapGatewayErr(err)
	}
	return saved, nil
}
