// Package scheduler собирает приложение планировщика напоминаний.
package scheduler

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
	schedulerservice "github.com/magabrotheeeer/contract-billing/internal/services/reminder-scheduler"
	"github.com/magabrotheeeer/contract-billing/internal/storage/repository"
)

const (
	rabbitMaxRetries = 10
	rabbitRetryDelay = 3 * time.Second
)

// App представляет приложение планировщика напоминаний.
type App struct {
	schedulerService *schedulerservice.SchedulerService
	conn             *amqp.Connection
	ch               *amqp.Channel
	logger           *slog.Logger
}

func waitForDB(ctx context.Context, db *repository.Storage) error {
	for range 10 {
		if err := db.CheckDatabaseReady(ctx); err == nil {
			return nil
		}
		time.Sleep(3 * time.Second)
	}
	return fmt.Errorf("database not ready after retries")
}

// New создает новый экземпляр приложения планировщика.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	conn, err := rabbitmq.Connect(cfg.RabbitConnection, rabbitMaxRetries, rabbitRetryDelay)
	if err != nil {
		return nil, fmt.Errorf("failed to connect RabbitMQ: %w", err)
	}

	ch, err := rabbitmq.SetupChannel(conn)
	if err != nil {
		closeResources(nil, conn, logger)
		return nil, fmt.Errorf("failed to setup RabbitMQ channel: %w", err)
	}

	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		closeResources(ch, conn, logger)
		return nil, fmt.Errorf("failed to connect storage: %w", err)
	}
	if err := waitForDB(ctx, db); err != nil {
		closeResources(ch, conn, logger)
		return nil, err
	}

	billingClient := billingprovider.NewClient(cfg.BillingProvider)
	smtpSender := notify.NewSMTPSender(cfg.SMTP, logger)
	messagingClient := notify.NewMessagingClient(cfg.Messaging)
	dispatcher := notify.NewDispatcher(smtpSender, messagingClient, logger)
	forwarder := crm.NewForwarder(cfg.CRM, db, logger)

	invoiceService := invoiceservice.NewInvoiceService(db, billingClient, dispatcher, forwarder, logger)
	schedulerService := schedulerservice.NewSchedulerService(invoiceService, cfg.ScanInterval, logger)

	return &App{
		schedulerService: schedulerService,
		conn:             conn,
		ch:               ch,
		logger:           logger,
	}, nil
}

func closeResources(ch *amqp.Channel, conn *amqp.Connection, logger *slog.Logger) {
	if ch != nil {
		if err := ch.Close(); err != nil {
			logger.Error("failed to close channel", "error", err)
		}
	}
	if conn != nil {
		if err := conn.Close(); err != nil {
			logger.Error("failed to close connection", "error", err)
		}
	}
}

// Run запускает планировщик до отмены контекста.
func (a *App) Run(ctx context.Context) error {
	go a.schedulerService.Run(ctx, a.ch)

	<-ctx.Done()

	a.logger.Info("shutting down reminder scheduler")
	closeResources(a.ch, a.conn, a.logger)
	return nil
}
