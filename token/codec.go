package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Codec mints signed access and refresh tokens. TTLs are fixed at
// construction and constant for the process lifetime. Tokens are
// self-describing and verifiable without any server-side lookup.
type Codec struct {
	keys       *Keypair
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewCodec creates a codec signing with the keypair's private key.
func NewCodec(keys *Keypair, accessTTL, refreshTTL time.Duration) *Codec {
	return &Codec{
		keys:       keys,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// MintAccess issues an ACCESS token carrying the principal's role set.
func (c *Codec) MintAccess(username string, roles []string, now time.Time) (string, error) {
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.accessTTL)),
		},
		Type:  TypeAccess,
		Roles: roles,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(c.keys.private)
	if err != nil {
		return "", fmt.Errorf("sign access token: %w", err)
	}
	return signed, nil
}

// MintRefresh issues a REFRESH token. No roles are embedded.
func (c *Codec) MintRefresh(username string, now time.Time) (string, error) {
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.refreshTTL)),
		},
		Type: TypeRefresh,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(c.keys.private)
	if err != nil {
		return "", fmt.Errorf("sign refresh token: %w", err)
	}
	return signed, nil
}

// RefreshTTL reports the configured refresh token lifetime. The cookie
// transport uses it as the cookie max-age.
func (c *Codec) RefreshTTL() time.Duration {
	return c.refreshTTL
}
