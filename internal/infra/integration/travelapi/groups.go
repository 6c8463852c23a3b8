package travelapi

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/power-mac-book/travelkit-web/internal/entity"
)

// ListGroups returns forming groups, optionally filtered by destination.
func (c *Client) ListGroups(ctx context.Context, token string, destinationID int) ([]entity.Group, error) {
	query := url.Values{}
	if destinationID > 0 {
		query.Set("destination_id", strconv.Itoa(destinationID))
	}

	var groups []entity.Group
	if err := c.do(ctx, http.MethodGet, "/groups", token, query, nil, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}
