package notify

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/magabrotheeeer/contract-billing/internal/config"
)

// MessagingClient клиент HTTP-провайдера SMS и чат-сообщений.
// Без учётных данных работает в симулированном режиме, успешно "отправляя"
// сообщения без сетевых вызовов.
type MessagingClient struct {
	accountSID string
	authToken  string
	fromNumber string
	chatFrom   string
	apiURL     string
	simulated  bool
	httpClient *http.Client
}

// NewMessagingClient создаёт новый клиент провайдера сообщений.
func NewMessagingClient(cfg config.Messaging) *MessagingClient {
	return &MessagingClient{
		accountSID: cfg.MessagingAccountSID,
		authToken:  cfg.MessagingAuthToken,
		fromNumber: cfg.MessagingFromNumber,
		chatFrom:   cfg.MessagingChatFrom,
		apiURL:     cfg.MessagingBaseURL,
		simulated:  cfg.MessagingAccountSID == "" || cfg.MessagingAuthToken == "",
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Simulated сообщает, работает ли клиент без реального провайдера.
func (c *MessagingClient) Simulated() bool {
	return c.simulated
}

func (c *MessagingClient) send(ctx context.Context, from, to, message string) error {
	if c.simulated {
		return nil
	}

	form := url.Values{}
	form.Set("From", from)
	form.Set("To", to)
	form.Set("Body", message)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.apiURL+"/Accounts/"+c.accountSID+"/Messages.json",
		strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	auth := base64.StdEncoding.EncodeToString([]byte(c.accountSID + ":" + c.authToken))
	req.Header.Set("Authorization", "Basic "+auth)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		var errBody struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&errBody)
		if errBody.Message != "" {
			return errors.New("messaging provider: " + errBody.Message)
		}
		return errors.New("unexpected status: " + resp.Status)
	}
	return nil
}

// SendSMS отправляет SMS на номер получателя.
func (c *MessagingClient) SendSMS(ctx context.Context, to, message string) error {
	return c.send(ctx, c.fromNumber, to, message)
}

// SendChat отправляет сообщение в чат-канал получателя.
func (c *MessagingClient) SendChat(ctx context.Context, to, message string) error {
	return c.send(ctx, c.chatFrom, "chat:"+to, message)
}
