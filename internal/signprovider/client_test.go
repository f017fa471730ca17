package signprovider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/contract-billing/internal/apperrs"
	"github.com/magabrotheeeer/contract-billing/internal/config"
)

func TestNewClient_ModeSelection(t *testing.T) {
	simulated := NewClient(config.SignProvider{})
	assert.Equal(t, ModeSimulated, simulated.Mode())

	live := NewClient(config.SignProvider{SignAPIKey: "key", SignBaseURL: "https://example.com"})
	assert.Equal(t, ModeLive, live.Mode())
}

func TestCreateEnvelope_Simulated(t *testing.T) {
	client := NewClient(config.SignProvider{})

	resp, err := client.CreateEnvelope(context.Background(), CreateEnvelopeRequest{
		PdfLocation: "https://x/doc.pdf",
		SignerName:  "Ana",
		SignerEmail: "ana@example.com",
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(resp.DocumentID, "sim_doc_"))
	assert.True(t, strings.HasPrefix(resp.EnvelopeID, "sim_env_"))
	assert.NotEmpty(t, resp.SignURL)
}

func TestCancelEnvelope_Simulated(t *testing.T) {
	client := NewClient(config.SignProvider{})
	assert.NoError(t, client.CancelEnvelope(context.Background(), "sim_doc_abc"))
}

func TestCreateEnvelope_Live(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/envelopes", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req CreateEnvelopeRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "ana@example.com", req.SignerEmail)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(CreateEnvelopeResponse{
			DocumentID: "doc_1",
			EnvelopeID: "env_1",
			SignURL:    "https://sign/1",
		})
	}))
	defer srv.Close()

	client := NewClient(config.SignProvider{SignAPIKey: "test-key", SignBaseURL: srv.URL})

	resp, err := client.CreateEnvelope(context.Background(), CreateEnvelopeRequest{
		PdfLocation: "https://x/doc.pdf",
		SignerName:  "Ana",
		SignerEmail: "ana@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "doc_1", resp.DocumentID)
	assert.Equal(t, "https://sign/1", resp.SignURL)
}

func TestCreateEnvelope_LiveError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewClient(config.SignProvider{SignAPIKey: "bad-key", SignBaseURL: srv.URL})

	_, err := client.CreateEnvelope(context.Background(), CreateEnvelopeRequest{
		PdfLocation: "https://x/doc.pdf",
		SignerName:  "Ana",
		SignerEmail: "ana@example.com",
	})
	assert.ErrorIs(t, err, apperrs.ErrExternalService)
}

func TestGetStatus_LiveServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(config.SignProvider{SignAPIKey: "test-key", SignBaseURL: srv.URL})

	_, err := client.GetStatus(context.Background(), "doc_1")
	assert.ErrorIs(t, err, apperrs.ErrExternalService)
}

func TestGetStatus_Live(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/documents/doc_1", r.URL.Path)
		_ = json.NewEncoder(w).Encode(EnvelopeStatus{Status: "signed"})
	}))
	defer srv.Close()

	client := NewClient(config.SignProvider{SignAPIKey: "test-key", SignBaseURL: srv.URL})

	status, err := client.GetStatus(context.Background(), "doc_1")
	require.NoError(t, err)
	assert.Equal(t, "signed", status.Status)
}
