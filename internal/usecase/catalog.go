package usecase

import (
	"context"
	"time"

	"github.com/power-mac-book/travelkit-web/internal/entity"
)

// CatalogUseCase serves the read-only browsing surfaces: destinations,
// their availability calendars and the forming groups. Nothing here is
// mutated from this tier; the join action lives on the backend.
type CatalogUseCase struct {
	Catalog CatalogGateway
	now     func() time.Time
}

func NewCatalogUseCase(catalog CatalogGateway) *CatalogUseCase {
	return &CatalogUseCase{Catalog: catalog, now: time.Now}
}

func (uc *CatalogUseCase) Destinations(ctx context.Context, token string) ([]entity.Destination, error) {
	destinations, err := uc.Catalog.ListDestinations(ctx, token)
	if err != nil {
		return nil, mapGatewayErr(err)
	}
	return destinations, nil
}

// DestinationDetail is everything the detail page needs in one fetch
// pass: the destination, its forming groups and the availability
// calendar starting from the current month.
type DestinationDetail struct {
	Destination entity.Destination
	Groups      []entity.Group
	Calendar    []entity.CalendarMonth
}

func (uc *CatalogUseCase) Detail(ctx context.Context, token string, id int) (*DestinationDetail, error) {
	destination, err := uc.Catalog.FetchDestination(ctx, token, id)
	if err != nil {
		return nil, mapGatewayErr(err)
	}

	groups, err := uc.Catalog.ListGroups(ctx, token, id)
	if err != nil {
		return nil, mapGatewayErr(err)
	}

	now := uc.now()
	calendar, err := uc.Catalog.FetchCalendar(ctx, token, id, now.Year(), int(now.Month()))
	if err != nil {
		return nil, mapGatewayErr(err)
	}

	return &DestinationDetail{
		Destination: *destination,
		Groups:      groups,
		Calendar:    calendar,
	}, nil
}

func (uc *CatalogUseCase) Groups(ctx context.Context, token string, destinationID int) ([]entity.Group, error) {
	groups, err := uc.Catalog.ListGroups(ctx, token, destinationID)
	if err != nil {
		return nil, mapGatewayErr(err)
	}
	return groups, nil
}
