package handlers

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/prefeitura-rio/brado/internal/document"
	"github.com/prefeitura-rio/brado/internal/models"
	"github.com/prefeitura-rio/brado/internal/observability"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCPF(t *testing.T) {
	router, _ := setupTestRouter()

	tests := []struct {
		name   string
		url    string
		valid  bool
		reason string
	}{
		{"bare", "/v1/cpf/63929247011", true, models.ReasonValid},
		{"masked", "/v1/cpf/639.292.470-11?masked=true", true, models.ReasonValid},
		{"masked without flag", "/v1/cpf/639.292.470-11", false, models.ReasonInvalidFormat},
		{"bare with masked flag", "/v1/cpf/63929247011?masked=true", false, models.ReasonInvalidFormat},
		{"wrong check digit", "/v1/cpf/63929247010", false, models.ReasonCheckDigitMismatch},
		{"repeated", "/v1/cpf/11111111111", false, models.ReasonRepeatedDigits},
		{"repeated ignored", "/v1/cpf/11111111111?ignore_repeated=true", true, models.ReasonValid},
		{"short", "/v1/cpf/6392924701", false, models.ReasonInvalidFormat},
		{"letters", "/v1/cpf/6392924701a", false, models.ReasonInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performRequest(router, http.MethodGet, tt.url, nil)
			require.Equal(t, http.StatusOK, w.Code)

			var response models.ValidationResponse
			decode(t, w, &response)
			assert.Equal(t, "cpf", response.Type)
			assert.Equal(t, tt.valid, response.Valid)
			assert.Equal(t, tt.reason, response.Reason)
		})
	}
}

func TestValidateCPF_InvalidQuery(t *testing.T) {
	router, _ := setupTestRouter()

	for _, url := range []string{
		"/v1/cpf/63929247011?masked=sim",
		"/v1/cpf/63929247011?ignore_repeated=2",
	} {
		w := performRequest(router, http.MethodGet, url, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, url)

		var response ErrorResponse
		decode(t, w, &response)
		assert.Contains(t, response.Error, "must be true or false")
	}
}

func TestValidateCPF_RecordsMetricsAndMasksLogs(t *testing.T) {
	router, logs := setupTestRouter()
	counter := observability.DocumentValidations.WithLabelValues("cpf", models.ReasonCheckDigitMismatch)
	before := testutil.ToFloat64(counter)

	performRequest(router, http.MethodGet, "/v1/cpf/63929247010", nil)

	assert.Equal(t, before+1, testutil.ToFloat64(counter))

	entries := logs.FilterMessage("document validated").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "639.***.470-**", fields["document"])
	assert.Equal(t, models.ReasonCheckDigitMismatch, fields["result"])
}

func TestValidateCNPJ(t *testing.T) {
	router, _ := setupTestRouter()

	tests := []struct {
		name   string
		url    string
		valid  bool
		reason string
	}{
		{"bare", "/v1/cnpj/05200851000100", true, models.ReasonValid},
		{"masked with escaped slash", "/v1/cnpj/05.200.851%2F0001-00?masked=true", true, models.ReasonValid},
		{"masked without flag", "/v1/cnpj/05.200.851%2F0001-00", false, models.ReasonInvalidFormat},
		{"wrong check digit", "/v1/cnpj/05200851000101", false, models.ReasonCheckDigitMismatch},
		{"zeros", "/v1/cnpj/00000000000000", false, models.ReasonRepeatedDigits},
		{"repeated ignore flag has no effect", "/v1/cnpj/11111111111111?ignore_repeated=true", false, models.ReasonRepeatedDigits},
		{"cpf length", "/v1/cnpj/63929247011", false, models.ReasonInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performRequest(router, http.MethodGet, tt.url, nil)
			require.Equal(t, http.StatusOK, w.Code)

			var response models.ValidationResponse
			decode(t, w, &response)
			assert.Equal(t, "cnpj", response.Type)
			assert.Equal(t, tt.valid, response.Valid)
			assert.Equal(t, tt.reason, response.Reason)
		})
	}
}

func TestValidateCNPJ_EchoesUnescapedDocument(t *testing.T) {
	router, _ := setupTestRouter()

	w := performRequest(router, http.MethodGet, "/v1/cnpj/05.200.851%2F0001-00?masked=true", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var response models.ValidationResponse
	decode(t, w, &response)
	assert.Equal(t, "05.200.851/0001-00", response.Document)
}

func TestValidate(t *testing.T) {
	router, _ := setupTestRouter()

	tests := []struct {
		name   string
		body   models.ValidationRequest
		valid  bool
		reason string
	}{
		{
			name:   "masked cpf",
			body:   models.ValidationRequest{Type: "cpf", Document: "639.292.470-11", Masked: true},
			valid:  true,
			reason: models.ReasonValid,
		},
		{
			name:   "bare cnpj",
			body:   models.ValidationRequest{Type: "cnpj", Document: "05200851000100"},
			valid:  true,
			reason: models.ReasonValid,
		},
		{
			name:   "repeated cpf ignored",
			body:   models.ValidationRequest{Type: "cpf", Document: "000.000.000-00", Masked: true, IgnoreRepeated: true},
			valid:  true,
			reason: models.ReasonValid,
		},
		{
			name:   "repeated cnpj never ignored",
			body:   models.ValidationRequest{Type: "cnpj", Document: "00000000000000", IgnoreRepeated: true},
			valid:  false,
			reason: models.ReasonRepeatedDigits,
		},
		{
			name:   "mask mismatch",
			body:   models.ValidationRequest{Type: "cnpj", Document: "05.200.851-0001/00", Masked: true},
			valid:  false,
			reason: models.ReasonInvalidFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performRequest(router, http.MethodPost, "/v1/validate", tt.body)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())

			var response models.ValidationResponse
			decode(t, w, &response)
			assert.Equal(t, tt.body.Type, response.Type)
			assert.Equal(t, tt.body.Document, response.Document)
			assert.Equal(t, tt.valid, response.Valid)
			assert.Equal(t, tt.reason, response.Reason)
		})
	}
}

func TestValidate_BadRequest(t *testing.T) {
	router, _ := setupTestRouter()

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"type": "cpf"`},
		{"unknown type", `{"type": "rg", "document": "123456789"}`},
		{"missing type", `{"document": "63929247011"}`},
		{"missing document", `{"type": "cpf"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performRequest(router, http.MethodPost, "/v1/validate", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)

			var response ErrorResponse
			decode(t, w, &response)
			assert.True(t, strings.HasPrefix(response.Error, "Invalid request body"))
		})
	}
}

func TestFormat(t *testing.T) {
	router, _ := setupTestRouter()

	w := performRequest(router, http.MethodPost, "/v1/format", models.FormatRequest{
		CPF:  "63929247011",
		CNPJ: "05.200.851/0001-00",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var response models.FormatResponse
	decode(t, w, &response)
	require.NotNil(t, response.CPF)
	require.NotNil(t, response.CNPJ)
	assert.Equal(t, models.FormattedDocument{Bare: "63929247011", Masked: "639.292.470-11"}, *response.CPF)
	assert.Equal(t, models.FormattedDocument{Bare: "05200851000100", Masked: "05.200.851/0001-00"}, *response.CNPJ)
}

func TestFormat_OnlyCNPJ(t *testing.T) {
	router, _ := setupTestRouter()

	w := performRequest(router, http.MethodPost, "/v1/format", `{"cnpj": "05200851000100"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var response models.FormatResponse
	decode(t, w, &response)
	assert.Nil(t, response.CPF)
	require.NotNil(t, response.CNPJ)
	assert.Equal(t, "05.200.851/0001-00", response.CNPJ.Masked)
}

func TestFormat_BadRequest(t *testing.T) {
	router, _ := setupTestRouter()

	tests := []struct {
		name string
		body string
	}{
		{"empty", `{}`},
		{"invalid cpf", `{"cpf": "63929247010"}`},
		{"repeated cpf", `{"cpf": "111.111.111-11"}`},
		{"invalid cnpj", `{"cpf": "63929247011", "cnpj": "05200851000101"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performRequest(router, http.MethodPost, "/v1/format", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
		})
	}
}

func TestGenerateDocument(t *testing.T) {
	router, _ := setupTestRouter()

	tests := []struct {
		url    string
		typ    document.Type
		masked bool
	}{
		{"/v1/generate/cpf", document.TypeCPF, false},
		{"/v1/generate/cpf?masked=true", document.TypeCPF, true},
		{"/v1/generate/cnpj", document.TypeCNPJ, false},
		{"/v1/generate/CNPJ?masked=1", document.TypeCNPJ, true},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			w := performRequest(router, http.MethodGet, tt.url, nil)
			require.Equal(t, http.StatusOK, w.Code)

			var response models.GenerateResponse
			decode(t, w, &response)
			assert.Equal(t, tt.typ.String(), response.Type)
			assert.Equal(t, tt.masked, response.Masked)
			assert.True(t, document.Validate(tt.typ, response.Document, tt.masked, false), response.Document)
		})
	}
}

func TestGenerateDocument_BadRequest(t *testing.T) {
	router, _ := setupTestRouter()

	for _, url := range []string{"/v1/generate/rg", "/v1/generate/cpf?masked=talvez"} {
		w := performRequest(router, http.MethodGet, url, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, url)
	}
}

func TestGenerateDocument_RecordsMetric(t *testing.T) {
	router, _ := setupTestRouter()
	counter := observability.DocumentGenerations.WithLabelValues("cnpj", "true")
	before := testutil.ToFloat64(counter)

	performRequest(router, http.MethodGet, "/v1/generate/cnpj?masked=true", nil)

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestValidateRequest_UnknownType(t *testing.T) {
	h := NewDocumentHandlers(nil)

	_, err := h.validateRequest(context.Background(), models.ValidationRequest{Type: "rg", Document: "123456789"})
	assert.ErrorIs(t, err, document.ErrUnknownType)

	response, err := h.validateRequest(context.Background(), models.ValidationRequest{Type: "CNPJ", Document: "05200851000100"})
	require.NoError(t, err)
	assert.Equal(t, "cnpj", response.Type)
	assert.True(t, response.Valid)
}
