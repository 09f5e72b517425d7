package token

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// Token types carried in the "type" claim. A token's declared type must
// match the operation consuming it.
const (
	TypeAccess  = "ACCESS"
	TypeRefresh = "REFRESH"
)

var (
	// ErrTokenMalformed is returned when the token does not decode structurally
	ErrTokenMalformed = errors.New("token malformed")

	// ErrSignatureInvalid is returned when the signature does not verify
	ErrSignatureInvalid = errors.New("token signature invalid")

	// ErrTokenExpired is returned when the token is past its expiry
	ErrTokenExpired = errors.New("token expired")

	// ErrWrongTokenType is returned when an operation is given a token of the other type
	ErrWrongTokenType = errors.New("wrong token type")
)

// Claims is the signed payload embedded in every issued token.
// Roles are present only on ACCESS tokens; REFRESH tokens carry none.
type Claims struct {
	jwt.RegisteredClaims
	Type  string   `json:"type"`
	Roles []string `json:"roles,omitempty"`
}

// Username returns the token subject.
func (c *Claims) Username() string {
	return c.Subject
}
