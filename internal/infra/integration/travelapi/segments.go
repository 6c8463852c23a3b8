package travelapi

import (
	"context"
	"net/http"

	"github.com/power-mac-book/travelkit-web/internal/entity"
)

func (c *Client) ListSegments(ctx context.Context, token string) ([]entity.Segment, error) {
	var segments []entity.Segment
	if err := c.do(ctx, http.MethodGet, "/admin/segments", token, nil, nil, &segments); err != nil {
		return nil, err
	}
	return segments, nil
}

func (c *Client) CreateSegment(ctx context.Context, token string, segment entity.Segment) (*entity.Segment, error) {
	var created entity.Segment
	if err := c.do(ctx, http.MethodPost, "/admin/segments", token, nil, segment, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateSegment(ctx context.Context, token string, segment entity.Segment) (*entity.Segment, error) {
	var updated entity.Segment
	if err := c.do(ctx, http.MethodPut, "/admin/segments/"+segment.ID, token, nil, segment, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteSegment(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/admin/segments/"+id, token, nil, nil, nil)
}
