// Package auth orchestrates login, token refresh, registration, logout,
// and password changes over the token codec and the user store.
//
// The session lives entirely client-side: the access token travels in
// the response body and Authorization header, the refresh token only in
// an HttpOnly cookie. There is no server-side session or revocation
// state. Consequences, kept deliberately: a rotated-away refresh token
// stays valid until its own expiry, and a password change does not
// invalidate outstanding access tokens. Replay protection would require
// a consumed-token store, which this protocol avoids.
package auth

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/stocksync/backend/models"
	"github.com/stocksync/backend/repositories"
	"github.com/stocksync/backend/services"
	"github.com/stocksync/backend/token"
	"go.uber.org/zap"
)

// Service implements the authentication facade
type Service struct {
	users    repositories.UserRepository
	roles    repositories.RoleRepository
	tx       repositories.TransactionManager
	codec    *token.Codec
	verifier *token.Verifier
	hasher   PasswordHasher
	cookies  *RefreshCookie
	logger   *zap.Logger
	now      func() time.Time
}

// Option customizes a Service.
type Option func(*Service)

// WithClock overrides the service's time source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// NewService wires the authentication facade
func NewService(
	users repositories.UserRepository,
	roles repositories.RoleRepository,
	tx repositories.TransactionManager,
	codec *token.Codec,
	verifier *token.Verifier,
	hasher PasswordHasher,
	cookies *RefreshCookie,
	logger *zap.Logger,
	opts ...Option,
) *Service {
	s := &Service{
		users:    users,
		roles:    roles,
		tx:       tx,
		codec:    codec,
		verifier: verifier,
		hasher:   hasher,
		cookies:  cookies,
		logger:   logger,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Login checks credentials and, on success, sets the refresh cookie and
// returns the access token for the response body. A missing principal
// is reported as invalid credentials so account existence is not leaked.
func (s *Service) Login(ctx context.Context, username, password string, w http.ResponseWriter) (string, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			s.logger.Warn("login for unknown username", zap.String("username", username))
			return "", services.ErrCredentialInvalid
		}
		return "", services.WrapInternal("load user", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		s.logger.Warn("login with bad password", zap.String("username", username))
		return "", services.ErrCredentialInvalid
	}

	if !user.IsActive() {
		s.logger.Warn("login for inactive account", zap.String("username", username))
		return "", services.ErrAccountInactive
	}

	assignments, err := s.roles.ResolveForUser(ctx, user.ID)
	if err != nil {
		return "", services.WrapInternal("resolve roles", err)
	}
	user.Roles = assignments

	access, err := s.issuePair(user.Username, user.RoleNames(), w)
	if err != nil {
		return "", err
	}

	s.logger.Info("login succeeded", zap.String("username", username))
	return access, nil
}

// Refresh rotates the token pair carried by the refresh cookie. Any
// verification failure clears the cookie and ends the session. Roles
// and account status are re-read from the store: an account disabled
// after issuance is caught here even though its tokens still verify.
func (s *Service) Refresh(ctx context.Context, r *http.Request, w http.ResponseWriter) (string, error) {
	refreshToken, err := s.cookies.Extract(r)
	if err != nil {
		return "", services.ErrRefreshExpired
	}

	claims, err := s.verifier.Verify(refreshToken)
	if err == nil {
		err = s.verifier.AssertRefresh(claims)
	}
	if err != nil {
		s.cookies.Clear(w)
		s.logger.Warn("refresh token rejected", zap.Error(err))
		return "", services.ErrRefreshExpired
	}

	username := claims.Username()
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			s.cookies.Clear(w)
			return "", services.ErrSessionInvalid
		}
		return "", services.WrapInternal("load user", err)
	}

	if !user.IsActive() {
		s.logger.Warn("refresh for inactive account", zap.String("username", username))
		return "", services.ErrAccountInactive
	}

	assignments, err := s.roles.ResolveForUser(ctx, user.ID)
	if err != nil {
		return "", services.WrapInternal("resolve roles", err)
	}
	user.Roles = assignments

	access, err := s.issuePair(username, user.RoleNames(), w)
	if err != nil {
		return "", err
	}

	s.logger.Debug("session refreshed", zap.String("username", username))
	return access, nil
}

// issuePair mints an access/refresh pair and writes the refresh cookie
func (s *Service) issuePair(username string, roleNames []string, w http.ResponseWriter) (string, error) {
	now := s.now()

	access, err := s.codec.MintAccess(username, roleNames, now)
	if err != nil {
		return "", services.WrapInternal("mint access token", err)
	}

	refresh, err := s.codec.MintRefresh(username, now)
	if err != nil {
		return "", services.WrapInternal("mint refresh token", err)
	}

	s.cookies.Set(w, refresh)
	return access, nil
}

// Register creates an ACTIVE principal with the given roles. Both
// uniqueness checks run before any mutation; the user row and its role
// assignments commit as one transaction.
func (s *Service) Register(ctx context.Context, username, email, password string, roleNames []string) error {
	usernameTaken, err := s.users.ExistsByUsername(ctx, username)
	if err != nil {
		return services.WrapInternal("check username", err)
	}
	if usernameTaken {
		return services.ErrUsernameTaken
	}

	emailTaken, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return services.WrapInternal("check email", err)
	}
	if emailTaken {
		return services.ErrEmailTaken
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return services.WrapInternal("hash password", err)
	}

	now := s.now()
	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Status:       models.StatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = s.tx.InTransaction(ctx, func(txCtx context.Context) error {
		if err := s.users.Create(txCtx, user); err != nil {
			return services.WrapInternal("create user", err)
		}
		for _, roleName := range roleNames {
			role, err := s.roles.GetByName(txCtx, roleName)
			if err != nil {
				if errors.Is(err, repositories.ErrNotFound) {
					return services.NewDomainError(services.ErrorTypeNotFound, "role not found", nil).
						WithDetail("role", roleName)
				}
				return services.WrapInternal("load role", err)
			}
			if err := s.roles.Assign(txCtx, user.ID, role.ID, now); err != nil {
				return services.WrapInternal("assign role", err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("user registered",
		zap.String("username", username), zap.Strings("roles", roleNames))
	return nil
}

// Logout clears the refresh cookie. Outstanding tokens remain valid
// until their own expiry.
func (s *Service) Logout(w http.ResponseWriter) {
	s.cookies.Clear(w)
}

// ChangePassword overwrites the stored hash after verifying the current
// password. Access tokens issued before the change stay valid.
func (s *Service) ChangePassword(ctx context.Context, username, currentPassword, newPassword string) error {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return services.ErrUserNotFound
		}
		return services.WrapInternal("load user", err)
	}

	if !s.hasher.Verify(currentPassword, user.PasswordHash) {
		return services.ErrPasswordMismatch
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return services.WrapInternal("hash password", err)
	}

	if err := s.users.UpdatePassword(ctx, user.ID, hash); err != nil {
		return services.WrapInternal("update password", err)
	}

	s.logger.Info("password changed", zap.String("username", username))
	return nil
}

// Me returns the principal record for the authenticated username,
// roles included.
func (s *Service) Me(ctx context.Context, username string) (*models.User, error) {
	if username == "" {
		return nil, services.ErrUnauthenticated
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, services.ErrUserNotFound
		}
		return nil, services.WrapInternal("load user", err)
	}

	assignments, err := s.roles.ResolveForUser(ctx, user.ID)
	if err != nil {
		return nil, services.WrapInternal("resolve roles", err)
	}
	user.Roles = assignments

	return user, nil
}
