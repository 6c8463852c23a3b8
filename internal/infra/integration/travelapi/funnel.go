package travelapi

import (
	"context"
	"net/http"
	"net/url"

	"github.com/power-mac-book/travelkit-web/internal/entity"
)

// FetchFunnel returns the aggregated conversion report for a filter
// combination. The query values are built by the usecase so the cache
// key and the request share one canonical form.
func (c *Client) FetchFunnel(ctx context.Context, token string, query url.Values) (*entity.FunnelReport, error) {
	var report entity.FunnelReport
	if err := c.do(ctx, http.MethodGet, "/analytics/funnel", token, query, nil, &report); err != nil {
		return nil, err
	}
	return &report, nil
}
