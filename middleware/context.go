package middleware

import "context"

// Context key type to avoid collisions
type contextKey string

// PrincipalKey is the context key for the authenticated principal
const PrincipalKey contextKey = "principal"

// Principal is the authenticated identity derived from a verified
// access token. Roles are the snapshot embedded at token issuance, not
// a live read of the store.
type Principal struct {
	Username string
	Roles    []string
}

// HasRole reports whether the principal carries the given role
func (p *Principal) HasRole(role string) bool {
	for _, r := range p.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// WithPrincipal adds the authenticated principal to the context
func WithPrincipal(ctx context.Context, principal *Principal) context.Context {
	return context.WithValue(ctx, PrincipalKey, principal)
}

// GetPrincipalFromContext retrieves the authenticated principal from
// context, or nil when the request was not authenticated
func GetPrincipalFromContext(ctx context.Context) *Principal {
	if val := ctx.Value(PrincipalKey); val != nil {
		if principal, ok := val.(*Principal); ok {
			return principal
		}
	}
	return nil
}

// GetUsernameFromContext retrieves the authenticated username from
// context, or "" when the request was not authenticated
func GetUsernameFromContext(ctx context.Context) string {
	if principal := GetPrincipalFromContext(ctx); principal != nil {
		return principal.Username
	}
	return ""
}
