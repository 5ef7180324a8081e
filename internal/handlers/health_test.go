package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthCheck(t *testing.T) {
	router, _ := setupTestRouter()

	w := performRequest(router, http.MethodGet, "/v1/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var response HealthResponse
	decode(t, w, &response)
	assert.Equal(t, "healthy", response.Status)
	assert.Equal(t, map[string]string{"cpf": "healthy", "cnpj": "healthy"}, response.Services)
	assert.False(t, response.Timestamp.IsZero())
}

func TestNewDocumentHandlers(t *testing.T) {
	h := NewDocumentHandlers(nil)
	assert.NotNil(t, h)

	// A nil logger must not panic
	assert.NotPanics(t, func() { h.logger.Info("noop") })
}
