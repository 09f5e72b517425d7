package handlers

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/stocksync/backend/middleware"
	"github.com/stocksync/backend/models"
	"github.com/stocksync/backend/repositories"
	"github.com/stocksync/backend/services"
	"github.com/stocksync/backend/utils"
)

// UserResponse is the principal payload returned by /users/me
type UserResponse struct {
	ID       int64    `json:"id"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Status   string   `json:"status"`
	Roles    []string `json:"roles"`
}

// MeService resolves the authenticated principal
type MeService interface {
	Me(ctx context.Context, username string) (*models.User, error)
}

// UserHandler handles user HTTP requests
type UserHandler struct {
	me     MeService
	users  repositories.UserRepository
	logger *zap.Logger
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(me MeService, users repositories.UserRepository, logger *zap.Logger) *UserHandler {
	return &UserHandler{me: me, users: users, logger: logger}
}

// HandleMe handles GET /api/v1/users/me
func (h *UserHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	username := middleware.GetUsernameFromContext(r.Context())

	user, err := h.me.Me(r.Context(), username)
	if err != nil {
		HandleServiceError(w, r, err, h.logger)
		return
	}

	_ = utils.WriteOK(w, UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Status:   string(user.Status),
		Roles:    user.RoleNames(),
	})
}

// HandleListUsernames handles GET /api/v1/users/usernames
func (h *UserHandler) HandleListUsernames(w http.ResponseWriter, r *http.Request) {
	usernames, err := h.users.ListUsernames(r.Context())
	if err != nil {
		HandleServiceError(w, r, services.WrapInternal("list usernames", err), h.logger)
		return
	}

	_ = utils.WriteOK(w, usernames)
}
