package travelapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/power-mac-book/travelkit-web/internal/entity"
)

func (c *Client) ListDestinations(ctx context.Context, token string) ([]entity.Destination, error) {
	var destinations []entity.Destination
	if err := c.do(ctx, http.MethodGet, "/destinations", token, nil, nil, &destinations); err != nil {
		return nil, err
	}
	return destinations, nil
}

func (c *Client) FetchDestination(ctx context.Context, token string, id int) (*entity.Destination, error) {
	var destination entity.Destination
	path := fmt.Sprintf("/destinations/%d", id)
	if err := c.do(ctx, http.MethodGet, path, token, nil, nil, &destination); err != nil {
		return nil, err
	}
	return &destination, nil
}

// FetchCalendar returns the availability calendar starting at the given
// year/month; the backend decides how many months it includes.
func (c *Client) FetchCalendar(ctx context.Context, token string, id, year, month int) ([]entity.CalendarMonth, error) {
	query := url.Values{}
	if year > 0 {
		query.Set("year", strconv.Itoa(year))
	}
	if month > 0 {
		query.Set("month", strconv.Itoa(month))
	}

	var months []entity.CalendarMonth
	path := fmt.Sprintf("/destinations/%d/calendar", id)
	if err := c.do(ctx, http.MethodGet, path, token, query, nil, &months); err != nil {
		return nil, err
	}
	return months, nil
}
