package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/power-mac-book/travelkit-web/internal/entity"
	"github.com/power-mac-book/travelkit-web/internal/infra/integration/travelapi"
	"github.com/power-mac-book/travelkit-web/internal/usecase"
)

func validProfile() entity.TravelerProfile {
	return entity.TravelerProfile{
		UserID: "user-1",
		Personal: entity.PersonalInfo{
			FirstName:   "Asha",
			LastName:    "Patel",
			DateOfBirth: "1992-04-17",
		},
		Contact: entity.ContactInfo{
			Phone: "+91 98765 43210",
		},
		Preferences: entity.TravelPreferences{
			BudgetMin:   10000,
			BudgetMax:   50000,
			TravelStyle: "comfort",
		},
	}
}

func TestProfileGetRetriesOnceOnTransportFailure(t *testing.T) {
	gateway := new(MockProfileGateway)
	uc := usecase.NewProfileUseCase(gateway)

	profile := validProfile()
	gateway.On("FetchProfile", context.Background(), "token").Return(nil, errors.New("connection reset")).Once()
	gateway.On("FetchProfile", context.Background(), "token").Return(&profile, nil).Once()

	result, err := uc.Get(context.Background(), "token")

	assert.NoError(t, err)
	assert.Equal(t, "Asha", result.Personal.FirstName)
	gateway.AssertNumberOfCalls(t, "FetchProfile", 2)
}

func TestProfileGetDoesNotRetryAuthFailure(t *testing.T) {
	gateway := new(MockProfileGateway)
	uc := usecase.NewProfileUseCase(gateway)

	gateway.On("FetchProfile", context.Background(), "token").Return(nil, travelapi.ErrUnauthorized)

	result, err := uc.Get(context.Background(), "token")

	assert.Nil(t, result)
	assert.ErrorIs(t, err, usecase.ErrUnauthenticated)
	gateway.AssertNumberOfCalls(t, "FetchProfile", 1)
}

func TestProfileGetGivesUpAfterSecondFailure(t *testing.T) {
	gateway := new(MockProfileGateway)
	uc := usecase.NewProfileUseCase(gateway)

	gateway.On("FetchProfile", context.Background(), "token").Return(nil, errors.New("connection reset")).Twice()

	result, err := uc.Get(context.Background(), "token")

	assert.Nil(t, result)
	assert.True(t, usecase.IsTechnicalError(err))
	gateway.AssertNumberOfCalls(t, "FetchProfile", 2)
}

func TestProfileSaveReturnsRefetchedRecord(t *testing.T) {
	gateway := new(MockProfileGateway)
	uc := usecase.NewProfileUseCase(gateway)

	edited := validProfile()
	edited.Contact.Phone = "+91 98765 00000"

	stored := edited
	gateway.On("UpdateProfile", context.Background(), "token", edited).Return(&stored, nil)
	gateway.On("FetchProfile", context.Background(), "token").Return(&stored, nil)

	result, err := uc.Save(context.Background(), "token", edited)

	assert.NoError(t, err)
	assert.Equal(t, "+91 98765 00000", result.Contact.Phone)
	gateway.AssertExpectations(t)
}

func TestProfileSaveRejectsInvalidPhone(t *testing.T) {
	gateway := new(MockProfileGateway)
	uc := usecase.NewProfileUseCase(gateway)

	edited := validProfile()
	edited.Contact.Phone = "not-a-phone"

	result, err := uc.Save(context.Background(), "token", edited)

	assert.Nil(t, result)
	assert.True(t, usecase.IsDomainError(err))
	gateway.AssertNotCalled(t, "UpdateProfile")
}

func TestProfileSaveRejectsInvertedBudget(t *testing.T) {
	gateway := new(MockProfileGateway)
	uc := usecase.NewProfileUseCase(gateway)

	edited := validProfile()
	edited.Preferences.BudgetMin = 60000
	edited.Preferences.BudgetMax = 50000

	result, err := uc.Save(context.Background(), "token", edited)

	assert.Nil(t, result)
	assert.True(t, usecase.IsDomainError(err))
	gateway.AssertNotCalled(t, "UpdateProfile")
}
