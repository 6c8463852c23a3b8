package travelapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/power-mac-book/travelkit-web/internal/entity"
)

func (c *Client) ListPages(ctx context.Context, token string) ([]entity.Page, error) {
	var pages []entity.Page
	if err := c.do(ctx, http.MethodGet, "/admin/pages", token, nil, nil, &pages); err != nil {
		return nil, err
	}
	return pages, nil
}

// UpdatePage sends the full page record; the backend returns the stored
// version, which callers discard in favor of a fresh list fetch.
func (c *Client) UpdatePage(ctx context.Context, token string, page entity.Page) (*entity.Page, error) {
	var updated entity.Page
	path := fmt.Sprintf("/admin/pages/%d", page.ID)
	if err := c.do(ctx, http.MethodPut, path, token, nil, page, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeletePage(ctx context.Context, token string, id int) error {
	path := fmt.Sprintf("/admin/pages/%d", id)
	return c.do(ctx, http.MethodDelete, path, token, nil, nil, nil)
}
