package travelapi

import (
	"context"
	"net/http"

	"github.com/power-mac-book/travelkit-web/internal/entity"
)

func (c *Client) FetchProfile(ctx context.Context, token string) (*entity.TravelerProfile, error) {
	var profile entity.TravelerProfile
	if err := c.do(ctx, http.MethodGet, "/travelers/me/profile", token, nil, nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *Client) UpdateProfile(ctx context.Context, token string, profile entity.TravelerProfile) (*entity.TravelerProfile, error) {
	var updated entity.TravelerProfile
	if err := c.do(ctx, http.MethodPut, "/travelers/me/profile", token, nil, profile, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}
