package travelapi

import (
	"context"
	"net/http"
)

// Ping checks backend reachability for the health endpoint.
func (c *Client) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", "", nil, nil, nil)
}
