package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Verifier validates token signature, expiry, and declared type using
// the keypair's public key. Verification is a pure function of
// (token, public key, current time); no shared mutable state.
type Verifier struct {
	keys *Keypair
	now  func() time.Time
}

// VerifierOption customizes a Verifier.
type VerifierOption func(*Verifier)

// WithClock overrides the verifier's time source.
func WithClock(now func() time.Time) VerifierOption {
	return func(v *Verifier) {
		v.now = now
	}
}

// NewVerifier creates a verifier checking against the keypair's public key.
func NewVerifier(keys *Keypair, opts ...VerifierOption) *Verifier {
	v := &Verifier{
		keys: keys,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Verify parses and validates a token. Structural decoding failures are
// reported before signature or expiry checks run.
func (v *Verifier) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}

	parsed, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return v.keys.public, nil
		},
		jwt.WithTimeFunc(v.now),
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
	)

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, ErrTokenMalformed
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrSignatureInvalid
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		default:
			return nil, fmt.Errorf("%w: %v", ErrTokenMalformed, err)
		}
	}

	if !parsed.Valid {
		return nil, ErrSignatureInvalid
	}

	return claims, nil
}

// Roles returns the role set of an ACCESS token. Reading roles off a
// REFRESH token is a type violation.
func (v *Verifier) Roles(claims *Claims) ([]string, error) {
	if claims.Type != TypeAccess {
		return nil, ErrWrongTokenType
	}
	if claims.Roles == nil {
		return []string{}, nil
	}
	return claims.Roles, nil
}

// AssertRefresh fails unless the token is REFRESH-typed.
func (v *Verifier) AssertRefresh(claims *Claims) error {
	if claims.Type != TypeRefresh {
		return ErrWrongTokenType
	}
	return nil
}
