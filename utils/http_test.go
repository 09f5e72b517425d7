package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	w := httptest.NewRecorder()
	err := WriteJSON(w, http.StatusOK, map[string]string{"hello": "world"})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"hello":"world"}`, w.Body.String())
}

func TestWriteJSON_NilBody(t *testing.T) {
	w := httptest.NewRecorder()
	require.NoError(t, WriteJSON(w, http.StatusAccepted, nil))
	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestWriteError_Envelope(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/suppliers/9", nil)
	w := httptest.NewRecorder()

	before := time.Now().UTC()
	require.NoError(t, WriteError(w, req, http.StatusNotFound, "supplier not found", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)

	var envelope ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, http.StatusNotFound, envelope.Status)
	assert.Equal(t, "Not Found", envelope.Error)
	assert.Equal(t, "supplier not found", envelope.Message)
	assert.Equal(t, "/api/v1/suppliers/9", envelope.Path)
	assert.False(t, envelope.Timestamp.Before(before.Truncate(time.Second)))
}

func TestWriteUnauthorized_DefaultMessage(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
	w := httptest.NewRecorder()
	require.NoError(t, WriteUnauthorized(w, req, ""))

	var envelope ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, "Authentication required", envelope.Message)
}

func TestWriteNoContent(t *testing.T) {
	w := httptest.NewRecorder()
	WriteNoContent(w)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}
