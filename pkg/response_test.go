package pkg

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureLog, testin süresi boyunca slog default logger'ını bir buffer'a
// yönlendirir. Test bitince eski logger geri gelir.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	return &buf
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) APIResponse {
	t.Helper()

	var resp APIResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestErrorInternalMasksDetailAndLogs(t *testing.T) {
	buf := captureLog(t)

	rec := httptest.NewRecorder()
	Error(rec, errors.New("disk exploded: sector 42"))

	resp := decodeResponse(t, rec)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.False(t, resp.Success)
	assert.Equal(t, "internal server error", resp.Error)

	// Detay response'a sızmaz ama log'da durur.
	assert.NotContains(t, rec.Body.String(), "disk exploded")
	assert.Contains(t, buf.String(), "request failed")
	assert.Contains(t, buf.String(), "disk exploded: sector 42")
}

func TestErrorDomainErrorsNotLogged(t *testing.T) {
	buf := captureLog(t)

	rec := httptest.NewRecorder()
	Error(rec, fmt.Errorf("%w: account 7 not found", ErrNotFound))

	resp := decodeResponse(t, rec)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not found: account 7 not found", resp.Error)

	// 4xx beklenen bir durum — log'a gürültü basılmaz.
	assert.Empty(t, buf.String())
}

func TestErrorValidationFields(t *testing.T) {
	vErr := &ValidationError{}
	vErr.Add("name", "name is required")

	rec := httptest.NewRecorder()
	Error(rec, vErr)

	resp := decodeResponse(t, rec)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "validation failed", resp.Error)
	assert.Equal(t, "name is required", resp.Fields["name"])
}
