// Package sender собирает приложение отправителя напоминаний:
// потребителя очереди, который рассылает напоминания об оплате.
package sender

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/streadway/amqp"

	"github.com/magabrotheeeer/contract-billing/internal/billingprovider"
	"github.com/magabrotheeeer/contract-billing/internal/config"
	"github.com/magabrotheeeer/contract-billing/internal/crm"
	"github.com/magabrotheeeer/contract-billing/internal/notify"
	"github.com/magabrotheeeer/contract-billing/internal/rabbitmq"
	invoiceservice "github.com/magabrotheeeer/contract-billing/internal/services/invoice"
	senderservice "github.com/magabrotheeeer/contract-billing/internal/services/reminder-sender"
	"github.com/magabrotheeeer/contract-billing/internal/storage/repository"
)

const (
	rabbitMaxRetries = 10
	rabbitRetryDelay = 3 * time.Second
)

// App представляет приложение отправителя напоминаний.
type App struct {
	senderService *senderservice.SenderService
	conn          *amqp.Connection
	ch            *amqp.Channel
	db            *repository.Storage
	logger        *slog.Logger
}

// New создает новый экземпляр приложения отправителя.
func New(_ context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to connect storage: %w", err)
	}

	conn, err := rabbitmq.Connect(cfg.RabbitConnection, rabbitMaxRetries, rabbitRetryDelay)
	if err != nil {
		return nil, fmt.Errorf("failed to connect RabbitMQ: %w", err)
	}
	ch, err := rabbitmq.SetupChannel(conn)
	if err != nil {
		if closeErr := conn.Close(); closeErr != nil {
			logger.Error("failed to close connection", "error", closeErr)
		}
		return nil, fmt.Errorf("failed to setup RabbitMQ channel: %w", err)
	}

	billingClient := billingprovider.NewClient(cfg.BillingProvider)
	smtpSender := notify.NewSMTPSender(cfg.SMTP, logger)
	messagingClient := notify.NewMessagingClient(cfg.Messaging)
	dispatcher := notify.NewDispatcher(smtpSender, messagingClient, logger)
	forwarder := crm.NewForwarder(cfg.CRM, db, logger)

	invoiceService := invoiceservice.NewInvoiceService(db, billingClient, dispatcher, forwarder, logger)
	senderService := senderservice.NewSenderService(invoiceService, logger)

	return &App{
		senderService: senderService,
		conn:          conn,
		ch:            ch,
		db:            db,
		logger:        logger,
	}, nil
}

// Run запускает потребителя очереди напоминаний до отмены контекста.
func (a *App) Run(ctx context.Context) error {
	if err := rabbitmq.ConsumerMessage(ctx, a.ch, rabbitmq.RemindersQueue, a.logger, a.senderService.HandleMessage(ctx)); err != nil {
		return fmt.Errorf("failed to start consumer: %w", err)
	}
	a.logger.Info("reminder sender started", slog.String("queue", rabbitmq.RemindersQueue))

	<-ctx.Done()

	a.logger.Info("shutting down reminder sender")
	if err := a.ch.Close(); err != nil {
		a.logger.Error("failed to close channel", slog.Any("err", err))
	}
	if err := a.conn.Close(); err != nil {
		a.logger.Error("failed to close connection", slog.Any("err", err))
	}
	_ = a.db.DB.Close()
	return nil
}
