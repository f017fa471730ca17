package billingprovider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/contract-billing/internal/apperrs"
	"github.com/magabrotheeeer/contract-billing/internal/config"
)

// Client клиент API биллинг-провайдера.
type Client struct {
	apiKey     string
	apiURL     string
	mode       Mode
	httpClient *http.Client
}

// NewClient создаёт новый клиент. Пустой API-ключ переводит клиент
// в режим Simulated.
func NewClient(cfg config.BillingProvider) *Client {
	mode := ModeLive
	if cfg.BillingAPIKey == "" {
		mode = ModeSimulated
	}
	return &Client{
		apiKey:     cfg.BillingAPIKey,
		apiURL:     cfg.BillingBaseURL,
		mode:       mode,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Mode возвращает режим работы клиента.
func (c *Client) Mode() Mode {
	return c.mode
}

func (c *Client) newRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	url := c.apiURL + path
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return nil, err
		}
	}
	req, err := http.NewRequestWithContext(ctx, method, url, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("access_token", c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

func (c *Client) do(req *http.Request, result any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperrs.External("billing", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return apperrs.External("billing", errors.New("unexpected status: "+resp.Status))
	}
	if result == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(result)
}

// CreateCustomer создаёт клиента у провайдера и возвращает его идентификатор.
func (c *Client) CreateCustomer(ctx context.Context, reqParams CreateCustomerRequest) (string, error) {
	if c.mode == ModeSimulated {
		return "sim_cus_" + uuid.NewString(), nil
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/customers", reqParams)
	if err != nil {
		return "", err
	}

	var custResp CreateCustomerResponse
	if err := c.do(req, &custResp); err != nil {
		return "", err
	}
	return custResp.CustomerID, nil
}

// CreateSubscription создаёт рекуррентную подписку у провайдера.
func (c *Client) CreateSubscription(ctx context.Context, reqParams CreateSubscriptionRequest) (*CreateSubscriptionResponse, error) {
	if c.mode == ModeSimulated {
		return &CreateSubscriptionResponse{
			SubscriptionID: "sim_sub_" + uuid.NewString(),
			CustomerID:     reqParams.CustomerID,
			NextDueDate:    reqParams.FirstDueDate,
		}, nil
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/subscriptions", reqParams)
	if err != nil {
		return nil, err
	}

	var subResp CreateSubscriptionResponse
	if err := c.do(req, &subResp); err != nil {
		return nil, err
	}
	return &subResp, nil
}

// CancelSubscription отменяет подписку у провайдера.
func (c *Client) CancelSubscription(ctx context.Context, subscriptionID string) error {
	if c.mode == ModeSimulated {
		return nil
	}

	req, err := c.newRequest(ctx, http.MethodDelete, fmt.Sprintf("/subscriptions/%s", subscriptionID), nil)
	if err != nil {
		return err
	}
	return c.do(req, nil)
}

// GetInvoice возвращает данные фактуры у провайдера, включая ссылку на оплату.
func (c *Client) GetInvoice(ctx context.Context, invoiceID string) (*InvoiceData, error) {
	if c.mode == ModeSimulated {
		return &InvoiceData{
			InvoiceID:  invoiceID,
			Status:     "pending",
			PaymentURL: "https://app.billingprovider.com/pay/sim/" + invoiceID,
		}, nil
	}

	req, err := c.newRequest(ctx, http.MethodGet, fmt.Sprintf("/payments/%s", invoiceID), nil)
	if err != nil {
		return nil, err
	}

	var invResp InvoiceData
	if err := c.do(req, &invResp); err != nil {
		return nil, err
	}
	return &invResp, nil
}
