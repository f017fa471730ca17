// Package services содержит бизнес-логику жизненного цикла контрактов:
// создание, отправку на подпись, активацию и отмену. Переходы статусов
// монотонны, шаги с внешними побочными эффектами снабжены компенсациями.
package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/contract-billing/internal/apperrs"
	"github.com/magabrotheeeer/contract-billing/internal/billingprovider"
	"github.com/magabrotheeeer/contract-billing/internal/crm"
	"github.com/magabrotheeeer/contract-billing/internal/lib/dates"
	"github.com/magabrotheeeer/contract-billing/internal/lib/sl"
	"github.com/magabrotheeeer/contract-billing/internal/models"
	"github.com/magabrotheeeer/contract-billing/internal/notify"
	"github.com/magabrotheeeer/contract-billing/internal/signprovider"
)

// ContractRepository определяет методы хранилища, нужные оркестратору контрактов.
type ContractRepository interface {
	CreateContract(ctx context.Context, contract models.Contract) (int64, error)
	ReadContract(ctx context.Context, id int64) (*models.Contract, error)
	UpdateContractStatus(ctx context.Context, id int64, status string) (int, error)
	MarkContractPendingSignature(ctx context.Context, id int64, pdfURL string) (int, error)
	ListContracts(ctx context.Context, filter models.ContractFilter) ([]*models.Contract, error)

	ReadClient(ctx context.Context, id int64) (*models.Client, error)

	CreateSignature(ctx context.Context, sig models.Signature) (int64, error)
	FindSignatureByContract(ctx context.Context, contractID int64) (*models.Signature, error)
	MarkSignatureSigned(ctx context.Context, id int64, signedAt time.Time) (int, error)
	UpdateSignatureStatus(ctx context.Context, id int64, status string) (int, error)

	CreateSubscription(ctx context.Context, sub models.Subscription) (int64, error)
	FindSubscriptionByContract(ctx context.Context, contractID int64) (*models.Subscription, error)
	UpdateSubscriptionStatus(ctx context.Context, id int64, status string) (int, error)
	DeleteSubscription(ctx context.Context, id int64) error

	CreateInvoice(ctx context.Context, inv models.Invoice) (int64, error)
	CreateNotification(ctx context.Context, n models.Notification) (int64, error)

	RecordOperationKey(ctx context.Context, key, operation string, contractID int64) error
}

// SignProvider описывает вызовы сервиса цифровой подписи.
type SignProvider interface {
	CreateEnvelope(ctx context.Context, req signprovider.CreateEnvelopeRequest) (*signprovider.CreateEnvelopeResponse, error)
	CancelEnvelope(ctx context.Context, documentID string) error
}

// BillingProvider описывает вызовы сервиса рекуррентного биллинга.
type BillingProvider interface {
	CreateCustomer(ctx context.Context, req billingprovider.CreateCustomerRequest) (string, error)
	CreateSubscription(ctx context.Context, req billingprovider.CreateSubscriptionRequest) (*billingprovider.CreateSubscriptionResponse, error)
	CancelSubscription(ctx context.Context, subscriptionID string) error
}

// Notifier описывает отправку уведомления о подписанном контракте.
type Notifier interface {
	SendContractSigned(ctx context.Context, p notify.ContractSignedParams) []notify.ChannelResult
}

// CRMForwarder описывает best-effort доставку событий в CRM.
type CRMForwarder interface {
	Forward(ctx context.Context, event string, payload any)
}

// keyedMutex сериализует операции жизненного цикла по ID контракта:
// конкурентные вызовы на одном контракте исполняются по очереди.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[int64]*sync.Mutex)}
}

func (k *keyedMutex) lock(id int64) func() {
	k.mu.Lock()
	m, ok := k.locks[id]
	if !ok {
		m = &sync.Mutex{}
		k.locks[id] = m
	}
	k.mu.Unlock()
	m.Lock()
	return m.Unlock
}

// ContractService реализует операции жизненного цикла контрактов.
type ContractService struct {
	repo     ContractRepository
	sign     SignProvider
	billing  BillingProvider
	notifier Notifier
	crm      CRMForwarder
	log      *slog.Logger
	locks    *keyedMutex
}

// NewContractService создает новый экземпляр ContractService.
func NewContractService(repo ContractRepository, sign SignProvider, billing BillingProvider,
	notifier Notifier, crmf CRMForwarder, log *slog.Logger) *ContractService {
	return &ContractService{
		repo:     repo,
		sign:     sign,
		billing:  billing,
		notifier: notifier,
		crm:      crmf,
		log:      log,
		locks:    newKeyedMutex(),
	}
}

// Create создает новый контракт в статусе draft и возвращает его ID.
// EndDate вычисляется как StartDate + DurationMonths календарных месяцев.
func (s *ContractService) Create(ctx context.Context, req models.DummyContract) (int64, error) {
	if req.Value <= 0 {
		return 0, apperrs.Validation("contract value must be positive, got %d", req.Value)
	}
	if req.DurationMonths < 1 {
		return 0, apperrs.Validation("duration must be at least one month, got %d", req.DurationMonths)
	}

	startDate := time.Now().UTC().Truncate(24 * time.Hour)
	if req.StartDate != "" {
		parsed, err := time.Parse("02-01-2006", req.StartDate)
		if err != nil {
			return 0, apperrs.Validation("invalid start date %q, expected format 02-01-2006", req.StartDate)
		}
		startDate = parsed
	}

	if _, err := s.repo.ReadClient(ctx, req.ClientID); err != nil {
		return 0, err
	}

	contract := models.Contract{
		ClientID:       req.ClientID,
		Description:    req.Description,
		Value:          req.Value,
		Periodicity:    req.Periodicity,
		DurationMonths: req.DurationMonths,
		StartDate:      startDate,
		EndDate:        dates.EndDate(startDate, req.DurationMonths),
		Status:         models.ContractStatusDraft,
	}

	id, err := s.repo.CreateContract(ctx, contract)
	if err != nil {
		return 0, err
	}

	s.log.Info("created new contract", slog.Int64("id", id), slog.Int64("client_id", req.ClientID))
	return id, nil
}

// SendForSignatureResult результат отправки контракта на подпись.
type SendForSignatureResult struct {
	SignatureID int64  `json:"signature_id"`
	SignURL     string `json:"sign_url"`
}

// SendForSignature отправляет контракт на цифровую подпись: создает конверт
// у провайдера, запись подписи в статусе pending и переводит контракт в
// pending_signature. Допустим только из статуса draft, повторный вызов
// отклоняется и не создает второй конверт.
func (s *ContractService) SendForSignature(ctx context.Context, id int64, pdfURL string) (*SendForSignatureResult, error) {
	unlock := s.locks.lock(id)
	defer unlock()

	contract, err := s.repo.ReadContract(ctx, id)
	if err != nil {
		return nil, err
	}
	if contract.Status != models.ContractStatusDraft {
		return nil, apperrs.Validation("contract %d cannot be sent for signature from status %q", id, contract.Status)
	}

	client, err := s.repo.ReadClient(ctx, contract.ClientID)
	if err != nil {
		return nil, err
	}

	envelope, err := s.sign.CreateEnvelope(ctx, signprovider.CreateEnvelopeRequest{
		PdfLocation: pdfURL,
		SignerName:  client.Name,
		SignerEmail: client.Email,
		SignerTaxID: deref(client.TaxID),
	})
	if err != nil {
		return nil, err
	}

	sigID, err := s.repo.CreateSignature(ctx, models.Signature{
		ContractID:         id,
		ExternalEnvelopeID: &envelope.EnvelopeID,
		ExternalDocumentID: &envelope.DocumentID,
		Status:             models.SignatureStatusPending,
	})
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.MarkContractPendingSignature(ctx, id, pdfURL); err != nil {
		return nil, err
	}

	s.recordOperation(ctx, "send_for_signature", id)
	s.log.Info("contract sent for signature",
		slog.Int64("id", id), slog.Int64("signature_id", sigID))

	return &SendForSignatureResult{SignatureID: sigID, SignURL: envelope.SignURL}, nil
}

// Activate активирует контракт: создает клиента и рекуррентную подписку у
// биллинг-провайдера, сохраняет подписку и первую фактуру, переводит контракт
// в active и помечает подпись как signed. Допустим только из pending_signature.
// Если локальное сохранение не удалось после создания подписки у провайдера,
// подписка у провайдера отменяется (компенсация).
func (s *ContractService) Activate(ctx context.Context, id int64) (*models.Contract, *models.Subscription, error) {
	unlock := s.locks.lock(id)
	defer unlock()

	contract, err := s.repo.ReadContract(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if contract.Status != models.ContractStatusPendingSignature {
		return nil, nil, apperrs.Validation("contract %d cannot be activated from status %q", id, contract.Status)
	}

	client, err := s.repo.ReadClient(ctx, contract.ClientID)
	if err != nil {
		return nil, nil, err
	}

	customerID, err := s.billing.CreateCustomer(ctx, billingprovider.CreateCustomerRequest{
		Name:  client.Name,
		Email: client.Email,
		TaxID: deref(client.TaxID),
		Phone: deref(client.Phone),
	})
	if err != nil {
		return nil, nil, err
	}

	providerSub, err := s.billing.CreateSubscription(ctx, billingprovider.CreateSubscriptionRequest{
		CustomerID:   customerID,
		Value:        contract.Value,
		Cycle:        billingprovider.Cycle(contract.Periodicity),
		Description:  contract.Description,
		FirstDueDate: contract.StartDate,
	})
	if err != nil {
		return nil, nil, err
	}

	subscription := models.Subscription{
		ContractID:             id,
		ExternalSubscriptionID: &providerSub.SubscriptionID,
		ExternalCustomerID:     &providerSub.CustomerID,
		Status:                 models.SubscriptionStatusActive,
		NextDueDate:            &providerSub.NextDueDate,
	}
	subID, err := s.repo.CreateSubscription(ctx, subscription)
	if err != nil {
		s.compensateSubscription(ctx, providerSub.SubscriptionID)
		return nil, nil, err
	}
	subscription.ID = subID

	if _, err := s.repo.UpdateContractStatus(ctx, id, models.ContractStatusActive); err != nil {
		s.compensateSubscription(ctx, providerSub.SubscriptionID)
		if delErr := s.repo.DeleteSubscription(ctx, subID); delErr != nil {
			s.log.Error("failed to delete subscription during compensation", sl.Err(delErr))
		}
		return nil, nil, err
	}
	contract.Status = models.ContractStatusActive

	if _, err := s.repo.CreateInvoice(ctx, models.Invoice{
		SubscriptionID: subID,
		Value:          contract.Value,
		DueDate:        providerSub.NextDueDate,
		Status:         models.InvoiceStatusPending,
	}); err != nil {
		s.log.Error("failed to create first invoice", sl.Err(err))
	}

	signature, err := s.repo.FindSignatureByContract(ctx, id)
	if err != nil {
		s.log.Error("failed to find signature", sl.Err(err))
	}
	if signature != nil {
		if _, err := s.repo.MarkSignatureSigned(ctx, signature.ID, time.Now().UTC()); err != nil {
			s.log.Error("failed to mark signature as signed", sl.Err(err))
		}
	}

	s.notifyContractSigned(ctx, client, contract)
	s.crm.Forward(ctx, crm.EventContractSigned, map[string]any{
		"contract_id": id,
		"client_id":   client.ID,
		"value":       contract.Value,
		"signed_at":   time.Now().UTC(),
	})

	s.recordOperation(ctx, "activate", id)
	s.log.Info("contract activated", slog.Int64("id", id), slog.Int64("subscription_id", subID))

	return contract, &subscription, nil
}

// Cancel отменяет контракт и его дочерние сущности: подписку у
// биллинг-провайдера, конверт у провайдера подписи. Ошибка любого внешнего
// вызова прерывает операцию, статус контракта при этом остается прежним.
func (s *ContractService) Cancel(ctx context.Context, id int64) (*models.Contract, error) {
	unlock := s.locks.lock(id)
	defer unlock()

	contract, err := s.repo.ReadContract(ctx, id)
	if err != nil {
		return nil, err
	}
	switch contract.Status {
	case models.ContractStatusDraft, models.ContractStatusPendingSignature, models.ContractStatusActive:
	default:
		return nil, apperrs.Validation("contract %d cannot be cancelled from status %q", id, contract.Status)
	}

	subscription, err := s.repo.FindSubscriptionByContract(ctx, id)
	if err != nil {
		return nil, err
	}
	if subscription != nil && subscription.Status == models.SubscriptionStatusActive {
		if subscription.ExternalSubscriptionID != nil {
			if err := s.billing.CancelSubscription(ctx, *subscription.ExternalSubscriptionID); err != nil {
				return nil, err
			}
		}
		if _, err := s.repo.UpdateSubscriptionStatus(ctx, subscription.ID, models.SubscriptionStatusCancelled); err != nil {
			return nil, err
		}
	}

	signature, err := s.repo.FindSignatureByContract(ctx, id)
	if err != nil {
		return nil, err
	}
	if signature != nil && signature.Status == models.SignatureStatusPending {
		if signature.ExternalDocumentID != nil {
			if err := s.sign.CancelEnvelope(ctx, *signature.ExternalDocumentID); err != nil {
				return nil, err
			}
		}
		if _, err := s.repo.UpdateSignatureStatus(ctx, signature.ID, models.SignatureStatusCancelled); err != nil {
			return nil, err
		}
	}

	if _, err := s.repo.UpdateContractStatus(ctx, id, models.ContractStatusCancelled); err != nil {
		return nil, err
	}
	contract.Status = models.ContractStatusCancelled

	s.crm.Forward(ctx, crm.EventContractCancelled, map[string]any{
		"contract_id": id,
		"client_id":   contract.ClientID,
	})

	s.recordOperation(ctx, "cancel", id)
	s.log.Info("contract cancelled", slog.Int64("id", id))

	return contract, nil
}

// Read возвращает контракт по ID. Активный контракт с истекшей датой
// окончания возвращается как expired, статус при этом лениво сохраняется.
func (s *ContractService) Read(ctx context.Context, id int64) (*models.Contract, error) {
	contract, err := s.repo.ReadContract(ctx, id)
	if err != nil {
		return nil, err
	}
	s.applyExpiry(ctx, contract)
	return contract, nil
}

// List возвращает контракты по фильтру, с вычислением expired для каждого.
func (s *ContractService) List(ctx context.Context, filter models.ContractFilter) ([]*models.Contract, error) {
	contracts, err := s.repo.ListContracts(ctx, filter)
	if err != nil {
		return nil, err
	}
	for _, contract := range contracts {
		s.applyExpiry(ctx, contract)
	}
	return contracts, nil
}

// applyExpiry переводит активный контракт с истекшей датой окончания в expired.
func (s *ContractService) applyExpiry(ctx context.Context, contract *models.Contract) {
	if contract.Status != models.ContractStatusActive || !contract.EndDate.Before(time.Now().UTC()) {
		return
	}
	if _, err := s.repo.UpdateContractStatus(ctx, contract.ID, models.ContractStatusExpired); err != nil {
		s.log.Warn("failed to persist expired status", slog.Int64("id", contract.ID), sl.Err(err))
	}
	contract.Status = models.ContractStatusExpired
}

// compensateSubscription отменяет подписку у провайдера после сбоя
// локального сохранения. Ошибка компенсации только логируется.
func (s *ContractService) compensateSubscription(ctx context.Context, subscriptionID string) {
	if err := s.billing.CancelSubscription(ctx, subscriptionID); err != nil {
		s.log.Error("failed to cancel provider subscription during compensation",
			slog.String("subscription_id", subscriptionID), sl.Err(err))
	}
}

// notifyContractSigned отправляет клиенту уведомление о подписанном контракте
// и фиксирует результат в журнале уведомлений.
func (s *ContractService) notifyContractSigned(ctx context.Context, client *models.Client, contract *models.Contract) {
	results := s.notifier.SendContractSigned(ctx, notify.ContractSignedParams{
		ClientName:          client.Name,
		ClientEmail:         client.Email,
		ContractDescription: contract.Description,
		PdfURL:              deref(contract.PdfURL),
	})
	now := time.Now().UTC()
	for _, result := range results {
		status := models.NotificationStatusSent
		var sentAt *time.Time
		if result.OK {
			sentAt = &now
		} else {
			status = models.NotificationStatusFailed
		}
		if _, err := s.repo.CreateNotification(ctx, models.Notification{
			ClientID: client.ID,
			Channel:  result.Channel,
			Purpose:  models.PurposeConfirmation,
			Status:   status,
			Message:  result.Message,
			SentAt:   sentAt,
		}); err != nil {
			s.log.Error("failed to record notification", sl.Err(err))
		}
	}
}

// recordOperation сохраняет ключ идемпотентности вызова операции.
func (s *ContractService) recordOperation(ctx context.Context, operation string, contractID int64) {
	if err := s.repo.RecordOperationKey(ctx, uuid.NewString(), operation, contractID); err != nil {
		s.log.Warn("failed to record operation key",
			slog.String("operation", operation), slog.Int64("contract_id", contractID), sl.Err(err))
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
