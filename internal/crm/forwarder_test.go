package crm

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/contract-billing/internal/config"
	"github.com/magabrotheeeer/contract-billing/internal/models"
)

type WebhookLogRepoMock struct {
	mock.Mock
}

func (m *WebhookLogRepoMock) CreateWebhookLog(ctx context.Context, l models.WebhookLog) (int64, error) {
	args := m.Called(ctx, l)
	return args.Get(0).(int64), args.Error(1)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestForward_Success(t *testing.T) {
	var gotSecret string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSecret = r.Header.Get("X-Webhook-Secret")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"received":true}`))
	}))
	defer srv.Close()

	repo := new(WebhookLogRepoMock)
	repo.On("CreateWebhookLog", mock.Anything, mock.MatchedBy(func(l models.WebhookLog) bool {
		return l.Event == EventContractSigned && l.Status == models.WebhookStatusSuccess
	})).Return(int64(1), nil)

	forwarder := NewForwarder(config.CRM{CRMWebhookURL: srv.URL, CRMSecret: "topsecret"}, repo, testLogger())
	forwarder.Forward(context.Background(), EventContractSigned, map[string]any{"contract_id": 42})

	assert.Equal(t, "topsecret", gotSecret)
	assert.Equal(t, EventContractSigned, gotBody["event"])
	assert.NotEmpty(t, gotBody["timestamp"])

	payload, ok := gotBody["payload"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(42), payload["contract_id"])

	repo.AssertExpectations(t)
}

func TestForward_CRMError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	repo := new(WebhookLogRepoMock)
	repo.On("CreateWebhookLog", mock.Anything, mock.MatchedBy(func(l models.WebhookLog) bool {
		return l.Status == models.WebhookStatusError && l.Error != nil
	})).Return(int64(1), nil)

	forwarder := NewForwarder(config.CRM{CRMWebhookURL: srv.URL, CRMSecret: "topsecret"}, repo, testLogger())
	forwarder.Forward(context.Background(), EventPaymentConfirmed, map[string]any{"invoice_id": 7})

	repo.AssertExpectations(t)
}

func TestForward_EmptyURLIsNoop(t *testing.T) {
	repo := new(WebhookLogRepoMock)

	forwarder := NewForwarder(config.CRM{}, repo, testLogger())
	forwarder.Forward(context.Background(), EventContractCancelled, map[string]any{"contract_id": 1})

	repo.AssertNotCalled(t, "CreateWebhookLog", mock.Anything, mock.Anything)
}

func TestForward_BreakerOpensAfterRepeatedFailures(t *testing.T) {
	var requests int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		requests++
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	repo := new(WebhookLogRepoMock)
	repo.On("CreateWebhookLog", mock.Anything, mock.Anything).Return(int64(1), nil)

	forwarder := NewForwarder(config.CRM{CRMWebhookURL: srv.URL, CRMSecret: "topsecret"}, repo, testLogger())
	for i := 0; i < 10; i++ {
		forwarder.Forward(context.Background(), EventContractSigned, map[string]any{"contract_id": i})
	}

	// После открытия breaker сетевые вызовы прекращаются, но журнал пополняется.
	assert.Less(t, requests, 10)
	repo.AssertNumberOfCalls(t, "CreateWebhookLog", 10)
}
