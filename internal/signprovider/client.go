package signprovider

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

// Client клиент API провайдера цифровой подписи.
type Client struct {
	apiKey     string
	apiURL     string
	mode       Mode
	httpClient *http.Client
}

// NewClient создаёт новый клиент. Пустой API-ключ переводит клиент
// в режим Simulated.
func NewClient(cfg config.SignProvider) *Client {
	mode := ModeLive
	if cfg.SignAPIKey == "" {
		mode = ModeSimulated
	}
	return &Client{
		apiKey:     cfg.SignAPIKey,
		apiURL:     cfg.SignBaseURL,
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
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

// CreateEnvelope создаёт конверт подписи для единственного подписанта.
func (c *Client) CreateEnvelope(ctx context.Context, reqParams CreateEnvelopeRequest) (*CreateEnvelopeResponse, error) {
	if c.mode == ModeSimulated {
		id := uuid.NewString()
		return &CreateEnvelopeResponse{
			DocumentID: "sim_doc_" + id,
			EnvelopeID: "sim_env_" + id,
			SignURL:    "https://app.signprovider.com/sign/sim/" + id,
		}, nil
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/envelopes", reqParams)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrs.External("signature", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, apperrs.External("signature", errors.New("unexpected status: "+resp.Status))
	}

	var envResp CreateEnvelopeResponse
	if err := json.NewDecoder(resp.Body).Decode(&envResp); err != nil {
		return nil, err
	}
	return &envResp, nil
}

// CancelEnvelope отменяет документ у провайдера.
func (c *Client) CancelEnvelope(ctx context.Context, documentID string) error {
	if c.mode == ModeSimulated {
		return nil
	}

	req, err := c.newRequest(ctx, http.MethodPost, fmt.Sprintf("/documents/%s/cancel", documentID), nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperrs.External("signature", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return apperrs.External("signature", errors.New("unexpected status: "+resp.Status))
	}
	return nil
}

// GetStatus возвращает статус документа у провайдера.
func (c *Client) GetStatus(ctx context.Context, documentID string) (*EnvelopeStatus, error) {
	if c.mode == ModeSimulated {
		return &EnvelopeStatus{Status: "pending"}, nil
	}

	req, err := c.newRequest(ctx, http.MethodGet, fmt.Sprintf("/documents/%s", documentID), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrs.External("signature", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, apperrs.External("signature", errors.New("unexpected status: "+resp.Status))
	}

	var status EnvelopeStatus
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return nil, err
	}
	return &status, nil
}
