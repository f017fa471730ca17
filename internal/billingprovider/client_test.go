package billingprovider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/contract-billing/internal/apperrs"
	"github.com/magabrotheeeer/contract-billing/internal/config"
)

func TestNewClient_ModeSelection(t *testing.T) {
	simulated := NewClient(config.BillingProvider{})
	assert.Equal(t, ModeSimulated, simulated.Mode())

	live := NewClient(config.BillingProvider{BillingAPIKey: "key", BillingBaseURL: "https://example.com"})
	assert.Equal(t, ModeLive, live.Mode())
}

func TestCreateCustomer_Simulated(t *testing.T) {
	client := NewClient(config.BillingProvider{})

	customerID, err := client.CreateCustomer(context.Background(), CreateCustomerRequest{
		Name:  "Ana",
		Email: "ana@example.com",
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(customerID, "sim_cus_"))
}

func TestCreateSubscription_Simulated(t *testing.T) {
	client := NewClient(config.BillingProvider{})
	firstDueDate := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	resp, err := client.CreateSubscription(context.Background(), CreateSubscriptionRequest{
		CustomerID:   "sim_cus_abc",
		Value:        100000,
		Cycle:        "MONTHLY",
		FirstDueDate: firstDueDate,
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(resp.SubscriptionID, "sim_sub_"))
	assert.Equal(t, "sim_cus_abc", resp.CustomerID)
	assert.Equal(t, firstDueDate, resp.NextDueDate)
}

func TestGetInvoice_Simulated(t *testing.T) {
	client := NewClient(config.BillingProvider{})

	inv, err := client.GetInvoice(context.Background(), "inv_1")
	require.NoError(t, err)
	assert.Equal(t, "inv_1", inv.InvoiceID)
	assert.Equal(t, "pending", inv.Status)
	assert.Contains(t, inv.PaymentURL, "inv_1")
}

func TestCreateSubscription_Live(t *testing.T) {
	nextDueDate := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/subscriptions", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("access_token"))

		var req CreateSubscriptionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, int64(100000), req.Value)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(CreateSubscriptionResponse{
			SubscriptionID: "sub_1",
			CustomerID:     req.CustomerID,
			NextDueDate:    nextDueDate,
		})
	}))
	defer srv.Close()

	client := NewClient(config.BillingProvider{BillingAPIKey: "test-key", BillingBaseURL: srv.URL})

	resp, err := client.CreateSubscription(context.Background(), CreateSubscriptionRequest{
		CustomerID:   "cus_1",
		Value:        100000,
		Cycle:        "MONTHLY",
		FirstDueDate: nextDueDate,
	})
	require.NoError(t, err)
	assert.Equal(t, "sub_1", resp.SubscriptionID)
	assert.Equal(t, nextDueDate.Unix(), resp.NextDueDate.Unix())
}

func TestCancelSubscription_Live(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/subscriptions/sub_1", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewClient(config.BillingProvider{BillingAPIKey: "test-key", BillingBaseURL: srv.URL})
	assert.NoError(t, client.CancelSubscription(context.Background(), "sub_1"))
}

func TestCreateCustomer_LiveError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	client := NewClient(config.BillingProvider{BillingAPIKey: "bad-key", BillingBaseURL: srv.URL})

	_, err := client.CreateCustomer(context.Background(), CreateCustomerRequest{
		Name:  "Ana",
		Email: "ana@example.com",
	})
	assert.ErrorIs(t, err, apperrs.ErrExternalService)
}

func TestGetInvoice_LiveServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(config.BillingProvider{BillingAPIKey: "test-key", BillingBaseURL: srv.URL})

	_, err := client.GetInvoice(context.Background(), "pay_1")
	assert.ErrorIs(t, err, apperrs.ErrExternalService)
}

func TestCycle(t *testing.T) {
	cases := []struct {
		name        string
		periodicity string
		want        string
	}{
		{"месячная периодичность", "monthly", "MONTHLY"},
		{"квартальная периодичность", "quarterly", "QUARTERLY"},
		{"полугодовая периодичность", "semiannual", "SEMIANNUALLY"},
		{"годовая периодичность", "annual", "YEARLY"},
		{"неизвестное значение возвращается как есть", "weekly", "weekly"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Cycle(tc.periodicity))
		})
	}
}
