package usecase

import (
	"context"
	"net/url"

	"github.com/power-mac-book/travelkit-web/internal/entity"
)

// Gateways are slices of the backend API client, one per resource
// family, so each usecase depends only on the calls it makes and tests
// can mock them independently. *travelapi.Client satisfies all of them.

type AuthGateway interface {
	FetchCurrentUser(ctx context.Context, token string) (*entity.User, error)
}

type PageGateway interface {
	ListPages(ctx context.Context, token string) ([]entity.Page, error)
	UpdatePage(ctx context.Context, token string, page entity.Page) (*entity.Page, error)
	DeletePage(ctx context.Context, token string, id int) error
}

type ProfileGateway interface {
	FetchProfile(ctx context.Context, token string) (*entity.TravelerProfile, error)
	UpdateProfile(ctx context.Context, token string, profile entity.TravelerProfile) (*entity.TravelerProfile, error)
}

type CatalogGateway interface {
	ListDestinations(ctx context.Context, token string) ([]entity.Destination, error)
	FetchDestination(ctx context.Context, token string, id int) (*entity.Destination, error)
	FetchCalendar(ctx context.Context, token string, id, year, month int) ([]entity.CalendarMonth, error)
	ListGroups(ctx context.Context, token string, destinationID int) ([]entity.Group, error)
}

type FunnelGateway interface {
	FetchFunnel(ctx context.Context, token string, query url.Values) (*entity.FunnelReport, error)
}

type SegmentGateway interface {
	ListSegments(ctx context.Context, token string) ([]entity.Segment, error)
	CreateSegment(ctx context.Context, token string, segment entity.Segment) (*entity.Segment, error)
	UpdateSegment(ctx context.Context, token string, segment entity.Segment) (*entity.Segment, error)
	DeleteSegment(ctx context.Context, token, id string) error
}
