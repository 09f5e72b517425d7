package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/stocksync/backend/services"
)

func TestHandleServiceError_StatusMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"not found", services.ErrSupplierNotFound, http.StatusNotFound},
		{"validation", services.ErrOrderNotReceivable, http.StatusBadRequest},
		{"unauthorized", services.ErrCredentialInvalid, http.StatusUnauthorized},
		{"forbidden", services.ErrForbidden, http.StatusForbidden},
		{"conflict", services.ErrUsernameTaken, http.StatusConflict},
		{"internal", services.WrapInternal("boom", errors.New("db down")), http.StatusInternalServerError},
		{"unknown", errors.New("plain error"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/suppliers/1", nil)
			w := httptest.NewRecorder()
			HandleServiceError(w, req, tc.err, zap.NewNop())

			assert.Equal(t, tc.status, w.Code)

			var envelope map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
			assert.Equal(t, float64(tc.status), envelope["status"])
			assert.Equal(t, http.StatusText(tc.status), envelope["error"])
			assert.Equal(t, "/api/v1/suppliers/1", envelope["path"])
			assert.NotEmpty(t, envelope["timestamp"])
			assert.NotEmpty(t, envelope["message"])
		})
	}
}

func TestHandleServiceError_InternalHidesCause(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/grns", nil)
	w := httptest.NewRecorder()
	HandleServiceError(w, req, services.WrapInternal("load grn", errors.New("pq: relation missing")), zap.NewNop())

	var envelope map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.NotContains(t, envelope["message"], "pq:")
}

func TestHandleServiceError_Details(t *testing.T) {
	err := services.NewDomainError(services.ErrorTypeValidation, "invalid input", nil).
		WithDetail("status", "TELEPORTED")

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/purchase-orders/3/status", nil)
	w := httptest.NewRecorder()
	HandleServiceError(w, req, err, zap.NewNop())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var envelope map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	details, ok := envelope["details"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "TELEPORTED", details["status"])
}

func TestHandleServiceError_NilIsNoop(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	HandleServiceError(w, req, nil, zap.NewNop())
	assert.Empty(t, w.Body.String())
}
