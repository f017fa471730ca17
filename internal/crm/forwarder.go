// Package crm реализует best-effort форвардер событий во внешнюю CRM.
//
// События жизненного цикла (contract_signed, payment_confirmed,
// contract_cancelled) отправляются POST-запросом на настроенный URL
// с общим секретом в заголовке. Сбои логируются и записываются в журнал
// webhooks_log, но никогда не прерывают вызвавшую бизнес-операцию.
package crm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/sony/gobreaker"

	"github.com/magabrotheeeer/contract-billing/internal/config"
	"github.com/magabrotheeeer/contract-billing/internal/lib/sl"
	"github.com/magabrotheeeer/contract-billing/internal/models"
)

// События, отправляемые в CRM.
const (
	EventContractSigned    = "contract_signed"
	EventPaymentConfirmed  = "payment_confirmed"
	EventContractCancelled = "contract_cancelled"
)

// WebhookLogRepository пишет записи аудита отправленных вебхуков.
type WebhookLogRepository interface {
	CreateWebhookLog(ctx context.Context, l models.WebhookLog) (int64, error)
}

// Forwarder отправляет события в CRM через circuit breaker.
// Открытый breaker превращает отправку в немедленный неуспех без сетевого
// вызова, чтобы лежащая CRM не задерживала бизнес-операции.
type Forwarder struct {
	webhookURL string
	secret     string
	repo       WebhookLogRepository
	breaker    *gobreaker.CircuitBreaker
	httpClient *http.Client
	log        *slog.Logger
}

// NewForwarder создает новый экземпляр Forwarder.
// Пустой URL отключает отправку: Forward становится no-op.
func NewForwarder(cfg config.CRM, repo WebhookLogRepository, log *slog.Logger) *Forwarder {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "crm-webhook",
		MaxRequests: 3,
		Interval:    30 * time.Second,
		Timeout:     10 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 5 && failureRatio >= 0.6
		},
	})
	return &Forwarder{
		webhookURL: cfg.CRMWebhookURL,
		secret:     cfg.CRMSecret,
		repo:       repo,
		breaker:    breaker,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        log,
	}
}

// Forward отправляет событие с произвольным payload в CRM.
// Ошибки не возвращаются: результат фиксируется в журнале и логе.
func (f *Forwarder) Forward(ctx context.Context, event string, payload any) {
	const op = "crm.Forward"
	log := f.log.With(slog.String("op", op), slog.String("event", event))

	if f.webhookURL == "" {
		log.Debug("CRM webhook URL not configured, skipping")
		return
	}

	body, err := json.Marshal(map[string]any{
		"event":     event,
		"payload":   payload,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		log.Error("failed to marshal webhook payload", sl.Err(err))
		return
	}

	respBody, err := f.breaker.Execute(func() (any, error) {
		return f.post(ctx, body)
	})

	logEntry := models.WebhookLog{
		Event:   event,
		Payload: string(body),
		Status:  models.WebhookStatusSuccess,
	}
	if err != nil {
		errText := err.Error()
		logEntry.Status = models.WebhookStatusError
		logEntry.Error = &errText
		log.Error("failed to forward event to CRM", sl.Err(err))
	} else {
		respText := respBody.(string)
		logEntry.Response = &respText
		log.Info("event forwarded to CRM")
	}

	if _, logErr := f.repo.CreateWebhookLog(ctx, logEntry); logErr != nil {
		log.Error("failed to record webhook log", sl.Err(logErr))
	}
}

func (f *Forwarder) post(ctx context.Context, body []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.webhookURL, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Webhook-Secret", f.secret)
	req.Header.Set("User-Agent", "contract-billing-webhook/1.0")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("webhook failed with status %d", resp.StatusCode)
	}
	return string(respBody), nil
}
