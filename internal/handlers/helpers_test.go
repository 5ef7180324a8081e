package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prefeitura-rio/brado/internal/logging"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// setupTestRouter creates a router with the document routes and an observed logger
func setupTestRouter() (*gin.Engine, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	h := NewDocumentHandlers(logging.New(zap.New(core)))

	router := gin.New()
	router.UseRawPath = true

	v1 := router.Group("/v1")
	v1.GET("/health", h.HealthCheck)
	v1.GET("/cpf/:document", h.ValidateCPF)
	v1.GET("/cnpj/:document", h.ValidateCNPJ)
	v1.POST("/validate", h.Validate)
	v1.POST("/format", h.Format)
	v1.GET("/generate/:type", h.GenerateDocument)

	return router, logs
}

// performRequest serves a request with an optional JSON body
func performRequest(router *gin.Engine, method, url string, body interface{}) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		var payload []byte
		switch b := body.(type) {
		case string:
			payload = []byte(b)
		default:
			payload, _ = json.Marshal(b)
		}
		req = httptest.NewRequest(method, url, bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// decode unmarshals the recorded body into out
func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out), "Failed to unmarshal response: %s", w.Body.String())
}
