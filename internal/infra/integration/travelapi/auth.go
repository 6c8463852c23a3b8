package travelapi

import (
	"context"
	"net/http"

	"github.com/power-mac-book/travelkit-web/internal/entity"
)

// FetchCurrentUser validates a token by fetching the profile it belongs
// to. An ErrUnauthorized here means the token is dead.
func (c *Client) FetchCurrentUser(ctx context.Context, token string) (*entity.User, error) {
	var user entity.User
	if err := c.do(ctx, http.MethodGet, "/users/me", token, nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
