package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/stocksync/backend/middleware"
	"github.com/stocksync/backend/utils"
)

// LoginRequest is the login request body
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse carries the access token; the refresh token travels
// only in the HttpOnly cookie.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// RegisterRequest is the registration request body
type RegisterRequest struct {
	Username string   `json:"username" validate:"required,min=3,max=50"`
	Email    string   `json:"email" validate:"required,email"`
	Password string   `json:"password" validate:"required,min=8"`
	Roles    []string `json:"roles" validate:"required,min=1"`
}

// ChangePasswordRequest is the change-password request body
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

// AuthService defines the authentication operations the handler needs
type AuthService interface {
	Login(ctx context.Context, username, password string, w http.ResponseWriter) (string, error)
	Refresh(ctx context.Context, r *http.Request, w http.ResponseWriter) (string, error)
	Register(ctx context.Context, username, email, password string, roleNames []string) error
	Logout(w http.ResponseWriter)
	ChangePassword(ctx context.Context, username, currentPassword, newPassword string) error
}

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	auth   AuthService
	logger *zap.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(auth AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, logger: logger}
}

// HandleLogin handles POST /api/auth/login
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = utils.WriteBadRequest(w, r, "Invalid request body", nil)
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		HandleValidationError(w, r, err, h.logger)
		return
	}

	access, err := h.auth.Login(r.Context(), req.Username, req.Password, w)
	if err != nil {
		HandleServiceError(w, r, err, h.logger)
		return
	}

	_ = utils.WriteOK(w, TokenResponse{AccessToken: access, TokenType: "Bearer"})
}

// HandleRefresh handles POST /api/auth/refresh
func (h *AuthHandler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	access, err := h.auth.Refresh(r.Context(), r, w)
	if err != nil {
		HandleServiceError(w, r, err, h.logger)
		return
	}

	_ = utils.WriteOK(w, TokenResponse{AccessToken: access, TokenType: "Bearer"})
}

// HandleRegister handles POST /api/auth/register
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = utils.WriteBadRequest(w, r, "Invalid request body", nil)
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		HandleValidationError(w, r, err, h.logger)
		return
	}

	if err := h.auth.Register(r.Context(), req.Username, req.Email, req.Password, req.Roles); err != nil {
		HandleServiceError(w, r, err, h.logger)
		return
	}

	_ = utils.WriteCreated(w, map[string]string{"username": req.Username})
}

// HandleLogout handles POST /api/auth/logout
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	h.auth.Logout(w)
	utils.WriteNoContent(w)
}

// HandleChangePassword handles POST /api/auth/change-password
func (h *AuthHandler) HandleChangePassword(w http.ResponseWriter, r *http.Request) {
	username := middleware.GetUsernameFromContext(r.Context())
	if username == "" {
		_ = utils.WriteUnauthorized(w, r, "")
		return
	}

	var req ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = utils.WriteBadRequest(w, r, "Invalid request body", nil)
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		HandleValidationError(w, r, err, h.logger)
		return
	}

	if err := h.auth.ChangePassword(r.Context(), username, req.CurrentPassword, req.NewPassword); err != nil {
		HandleServiceError(w, r, err, h.logger)
		return
	}

	utils.WriteNoContent(w)
}
