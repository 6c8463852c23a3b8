package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCookieStoreRoundTrip(t *testing.T) {
	store := NewCookieStore("travelkit_token", false)

	rec := httptest.NewRecorder()
	store.Write(rec, "token-123")

	cookies := rec.Result().Cookies()
	assert.Len(t, cookies, 1)
	assert.Equal(t, "travelkit_token", cookies[0].Name)
	assert.Equal(t, "token-123", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])
	assert.Equal(t, "token-123", store.Read(req))
}

func TestCookieStoreClear(t *testing.T) {
	store := NewCookieStore("travelkit_token", false)

	rec := httptest.NewRecorder()
	store.Clear(rec)

	cookies := rec.Result().Cookies()
	assert.Len(t, cookies, 1)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestCookieStoreReadMissing(t *testing.T) {
	store := NewCookieStore("travelkit_token", false)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, store.Read(req))
}

func TestExtractBearerToken(t *testing.T) {
	cases := []struct {
		header string
		want   string
	}{
		{"Bearer abc123", "abc123"},
		{"bearer abc123", "abc123"},
		{"Bearer   abc123  ", "abc123"},
		{"Basic abc123", ""},
		{"", ""},
		{"Bearer", ""},
	}

	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if tc.header != "" {
			req.Header.Set("Authorization", tc.header)
		}
		assert.Equal(t, tc.want, ExtractBearerToken(req), "header %q", tc.header)
	}
}

func TestTokenFromRequestCookieWins(t *testing.T) {
	store := NewCookieStore("travelkit_token", false)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "travelkit_token", Value: "cookie-token"})
	req.Header.Set("Authorization", "Bearer header-token")

	assert.Equal(t, "cookie-token", TokenFromRequest(req, store))
}

func TestTokenFromRequestFallsBackToHeader(t *testing.T) {
	store := NewCookieStore("travelkit_token", false)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer header-token")

	assert.Equal(t, "header-token", TokenFromRequest(req, store))
}
