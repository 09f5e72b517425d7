package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/stocksync/backend/middleware"
	"github.com/stocksync/backend/services"
)

// MockAuthService is a mock implementation of AuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, username, password string, w http.ResponseWriter) (string, error) {
	args := m.Called(ctx, username, password, w)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) Refresh(ctx context.Context, r *http.Request, w http.ResponseWriter) (string, error) {
	args := m.Called(ctx, r, w)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) Register(ctx context.Context, username, email, password string, roleNames []string) error {
	args := m.Called(ctx, username, email, password, roleNames)
	return args.Error(0)
}

func (m *MockAuthService) Logout(w http.ResponseWriter) {
	m.Called(w)
}

func (m *MockAuthService) ChangePassword(ctx context.Context, username, currentPassword, newPassword string) error {
	args := m.Called(ctx, username, currentPassword, newPassword)
	return args.Error(0)
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var envelope map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope
}

func TestHandleLogin_Success(t *testing.T) {
	svc := new(MockAuthService)
	svc.On("Login", mock.Anything, "alice", "pw123", mock.Anything).Return("the-access-token", nil)
	h := NewAuthHandler(svc, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"username":"alice","password":"pw123"}`))
	w := httptest.NewRecorder()
	h.HandleLogin(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp TokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "the-access-token", resp.AccessToken)
	assert.Equal(t, "Bearer", resp.TokenType)
}

func TestHandleLogin_BadCredentials(t *testing.T) {
	svc := new(MockAuthService)
	svc.On("Login", mock.Anything, "alice", "wrong", mock.Anything).
		Return("", services.ErrCredentialInvalid)
	h := NewAuthHandler(svc, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"username":"alice","password":"wrong"}`))
	w := httptest.NewRecorder()
	h.HandleLogin(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	envelope := decodeEnvelope(t, w)
	assert.Equal(t, float64(401), envelope["status"])
	assert.Equal(t, "Unauthorized", envelope["error"])
	assert.Equal(t, "/api/auth/login", envelope["path"])
	assert.NotEmpty(t, envelope["timestamp"])
}

func TestHandleLogin_MissingFields(t *testing.T) {
	svc := new(MockAuthService)
	h := NewAuthHandler(svc, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"username":"alice"}`))
	w := httptest.NewRecorder()
	h.HandleLogin(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "Login", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestHandleLogin_InvalidBody(t *testing.T) {
	h := NewAuthHandler(new(MockAuthService), zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{broken`))
	w := httptest.NewRecorder()
	h.HandleLogin(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleRefresh_Expired(t *testing.T) {
	svc := new(MockAuthService)
	svc.On("Refresh", mock.Anything, mock.Anything, mock.Anything).
		Return("", services.ErrRefreshExpired)
	h := NewAuthHandler(svc, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/auth/refresh", nil)
	w := httptest.NewRecorder()
	h.HandleRefresh(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandleRegister_Conflict(t *testing.T) {
	svc := new(MockAuthService)
	svc.On("Register", mock.Anything, "alice", "a@example.com", "password1", []string{"SALES"}).
		Return(services.ErrUsernameTaken)
	h := NewAuthHandler(svc, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register",
		strings.NewReader(`{"username":"alice","email":"a@example.com","password":"password1","roles":["SALES"]}`))
	w := httptest.NewRecorder()
	h.HandleRegister(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandleRegister_Success(t *testing.T) {
	svc := new(MockAuthService)
	svc.On("Register", mock.Anything, "bob", "b@example.com", "password1", []string{"PURCHASING"}).
		Return(nil)
	h := NewAuthHandler(svc, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register",
		strings.NewReader(`{"username":"bob","email":"b@example.com","password":"password1","roles":["PURCHASING"]}`))
	w := httptest.NewRecorder()
	h.HandleRegister(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandleRegister_ShortPassword(t *testing.T) {
	svc := new(MockAuthService)
	h := NewAuthHandler(svc, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register",
		strings.NewReader(`{"username":"bob","email":"b@example.com","password":"short","roles":["SALES"]}`))
	w := httptest.NewRecorder()
	h.HandleRegister(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "Register",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestHandleLogout(t *testing.T) {
	svc := new(MockAuthService)
	svc.On("Logout", mock.Anything).Return()
	h := NewAuthHandler(svc, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	w := httptest.NewRecorder()
	h.HandleLogout(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	svc.AssertCalled(t, "Logout", mock.Anything)
}

func TestHandleChangePassword(t *testing.T) {
	svc := new(MockAuthService)
	svc.On("ChangePassword", mock.Anything, "alice", "oldpw123", "newpw456").Return(nil)
	h := NewAuthHandler(svc, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/auth/change-password",
		strings.NewReader(`{"current_password":"oldpw123","new_password":"newpw456"}`))
	req = req.WithContext(middleware.WithPrincipal(req.Context(),
		&middleware.Principal{Username: "alice"}))
	w := httptest.NewRecorder()
	h.HandleChangePassword(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestHandleChangePassword_Unauthenticated(t *testing.T) {
	svc := new(MockAuthService)
	h := NewAuthHandler(svc, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/auth/change-password",
		strings.NewReader(`{"current_password":"oldpw123","new_password":"newpw456"}`))
	w := httptest.NewRecorder()
	h.HandleChangePassword(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	svc.AssertNotCalled(t, "ChangePassword",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestHandleChangePassword_Mismatch(t *testing.T) {
	svc := new(MockAuthService)
	svc.On("ChangePassword", mock.Anything, "alice", "wrongpw1", "newpw456").
		Return(services.ErrPasswordMismatch)
	h := NewAuthHandler(svc, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/auth/change-password",
		strings.NewReader(`{"current_password":"wrongpw1","new_password":"newpw456"}`))
	req = req.WithContext(middleware.WithPrincipal(req.Context(),
		&middleware.Principal{Username: "alice"}))
	w := httptest.NewRecorder()
	h.HandleChangePassword(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
