package usecase_test

import (
	"context"
	"net/url"

	"github.com/stretchr/testify/mock"

	"github.com/power-mac-book/travelkit-web/internal/entity"
)

// MockAuthGateway
type MockAuthGateway struct {
	mock.Mock
}

func (m *MockAuthGateway) FetchCurrentUser(ctx context.Context, token string) (*entity.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

// MockPageGateway
type MockPageGateway struct {
	mock.Mock
}

func (m *MockPageGateway) ListPages(ctx context.Context, token string) ([]entity.Page, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Page), args.Error(1)
}

func (m *MockPageGateway) UpdatePage(ctx context.Context, token string, page entity.Page) (*entity.Page, error) {
	args := m.Called(ctx, token, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Page), args.Error(1)
}

func (m *MockPageGateway) DeletePage(ctx context.Context, token string, id int) error {
	args := m.Called(ctx, token, id)
	return args.Error(0)
}

// MockProfileGateway
type MockProfileGateway struct {
	mock.Mock
}

func (m *MockProfileGateway) FetchProfile(ctx context.Context, token string) (*entity.TravelerProfile, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.TravelerProfile), args.Error(1)
}

func (m *MockProfileGateway) UpdateProfile(ctx context.Context, token string, profile entity.TravelerProfile) (*entity.TravelerProfile, error) {
	args := m.Called(ctx, token, profile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.TravelerProfile), args.Error(1)
}

// MockCatalogGateway
type MockCatalogGateway struct {
	mock.Mock
}

func (m *MockCatalogGateway) ListDestinations(ctx context.Context, token string) ([]entity.Destination, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Destination), args.Error(1)
}

func (m *MockCatalogGateway) FetchDestination(ctx context.Context, token string, id int) (*entity.Destination, error) {
	args := m.Called(ctx, token, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Destination), args.Error(1)
}

func (m *MockCatalogGateway) FetchCalendar(ctx context.Context, token string, id, year, month int) ([]entity.CalendarMonth, error) {
	args := m.Called(ctx, token, id, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.CalendarMonth), args.Error(1)
}

func (m *MockCatalogGateway) ListGroups(ctx context.Context, token string, destinationID int) ([]entity.Group, error) {
	args := m.Called(ctx, token, destinationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Group), args.Error(1)
}

// MockFunnelGateway
type MockFunnelGateway struct {
	mock.Mock
}

func (m *MockFunnelGateway) FetchFunnel(ctx context.Context, token string, query url.Values) (*entity.FunnelReport, error) {
	args := m.Called(ctx, token, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.FunnelReport), args.Error(1)
}

// MockSegmentGateway
type MockSegmentGateway struct {
	mock.Mock
}

func (m *MockSegmentGateway) ListSegments(ctx context.Context, token string) ([]entity.Segment, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Segment), args.Error(1)
}

func (m *MockSegmentGateway) CreateSegment(ctx context.Context, token string, segment entity.Segment) (*entity.Segment, error) {
	args := m.Called(ctx, token, segment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Segment), args.Error(1)
}

func (m *MockSegmentGateway) UpdateSegment(ctx context.Context, token string, segment entity.Segment) (*entity.Segment, error) {
	args := m.Called(ctx, token, segment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Segment), args.Error(1)
}

func (m *MockSegmentGateway) DeleteSegment(ctx context.Context, token, id string) error {
	args := m.Called(ctx, token, id)
	return args.Error(0)
}
