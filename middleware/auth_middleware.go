package middleware

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/stocksync/backend/token"
	"github.com/stocksync/backend/utils"
)

// TokenVerifier defines the interface for verifying access tokens
type TokenVerifier interface {
	// Verify parses and validates a signed token
	Verify(tokenString string) (*token.Claims, error)
	// Roles returns the role names carried by an ACCESS token
	Roles(claims *token.Claims) ([]string, error)
}

// AuthMiddleware guards routes with access token verification
type AuthMiddleware struct {
	verifier TokenVerifier
	logger   *zap.Logger
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(verifier TokenVerifier, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
		logger:   logger,
	}
}

// RequireAuth rejects requests without a valid ACCESS token in the
// Authorization header. Refresh tokens are not accepted here even
// though they verify against the same key.
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString := extractBearerToken(r)
		if tokenString == "" {
			m.logger.Warn("missing bearer token", zap.String("path", r.URL.Path))
			_ = utils.WriteUnauthorized(w, r, "Missing or invalid authorization")
			return
		}

		claims, err := m.verifier.Verify(tokenString)
		if err != nil {
			m.logger.Warn("token verification failed",
				zap.String("path", r.URL.Path),
				zap.Error(err))
			_ = utils.WriteUnauthorized(w, r, "Invalid or expired token")
			return
		}

		roles, err := m.verifier.Roles(claims)
		if err != nil {
			m.logger.Warn("non-access token on guarded route",
				zap.String("path", r.URL.Path),
				zap.Error(err))
			_ = utils.WriteUnauthorized(w, r, "Invalid or expired token")
			return
		}

		principal := &Principal{
			Username: claims.Username(),
			Roles:    roles,
		}
		ctx := WithPrincipal(r.Context(), principal)

		m.logger.Debug("authentication successful",
			zap.String("username", principal.Username))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole rejects authenticated requests whose token snapshot does
// not carry the given role. Must run after RequireAuth.
func (m *AuthMiddleware) RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal := GetPrincipalFromContext(r.Context())
			if principal == nil {
				m.logger.Error("principal not found in context",
					zap.String("path", r.URL.Path))
				_ = utils.WriteUnauthorized(w, r, "Authentication required")
				return
			}

			if !principal.HasRole(role) {
				m.logger.Warn("insufficient permissions",
					zap.String("username", principal.Username),
					zap.String("required_role", role),
					zap.Strings("roles", principal.Roles))
				_ = utils.WriteForbidden(w, r, "Insufficient permissions")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// extractBearerToken extracts the Bearer token from the Authorization header
func extractBearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}
