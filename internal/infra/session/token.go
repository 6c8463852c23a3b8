package session

import (
	"net/http"
	"strings"
)

const bearerPrefix = "Bearer "

// ExtractBearerToken pulls the token out of the Authorization header,
// tolerating a lowercase "bearer" prefix. Empty string means no token.
func ExtractBearerToken(r *http.Request) string {
	if r == nil {
		return ""
	}
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	if header == "" {
		return ""
	}
	if strings.HasPrefix(header, bearerPrefix) {
		return strings.TrimSpace(header[len(bearerPrefix):])
	}
	if strings.HasPrefix(strings.ToLower(header), strings.ToLower(bearerPrefix)) {
		return strings.TrimSpace(header[len(bearerPrefix):])
	}
	return ""
}

// TokenFromRequest resolves the session token for a request: the
// persisted cookie wins, then the Authorization header (used by the
// JSON endpoints and the websocket handshake).
func TokenFromRequest(r *http.Request, store TokenStore) string {
	if store != nil {
		if token := store.Read(r); token != "" {
			return token
		}
	}
	return ExtractBearerToken(r)
}
