package auth

import (
	"errors"
	"net/http"
	"time"
)

// RefreshCookieName is the cookie carrying the refresh token
const RefreshCookieName = "refreshToken"

// ErrRefreshCookieMissing is returned when the request carries no refresh cookie
var ErrRefreshCookieMissing = errors.New("refresh token cookie not found")

// RefreshCookie reads, writes, and clears the HttpOnly refresh token
// cookie. The browser is the only holder of the refresh token; it never
// appears in a response body.
type RefreshCookie struct {
	maxAge time.Duration
	secure bool
}

// NewRefreshCookie creates the cookie transport. maxAge should equal
// the refresh token TTL so cookie and token expire together.
func NewRefreshCookie(maxAge time.Duration, secure bool) *RefreshCookie {
	return &RefreshCookie{
		maxAge: maxAge,
		secure: secure,
	}
}

// Set writes the refresh token cookie
func (c *RefreshCookie) Set(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     RefreshCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(c.maxAge.Seconds()),
		HttpOnly: true,
		Secure:   c.secure,
	})
}

// Clear overwrites the cookie with an empty value and zero max-age.
// Only the client's copy is removed; an already-issued token stays
// cryptographically valid until its own expiry.
func (c *RefreshCookie) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     RefreshCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1, // serialized as Max-Age=0
		HttpOnly: true,
		Secure:   c.secure,
	})
}

// Extract returns the refresh token from the request cookies
func (c *RefreshCookie) Extract(r *http.Request) (string, error) {
	cookie, err := r.Cookie(RefreshCookieName)
	if err != nil || cookie.Value == "" {
		return "", ErrRefreshCookieMissing
	}
	return cookie.Value, nil
}
