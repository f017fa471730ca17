// Package contractbilling собирает HTTP-приложение биллинга контрактов:
// хранилище, кеш, адаптеры внешних провайдеров, сервисы и маршруты.
package contractbilling

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/contract-billing/internal/billingprovider"
	"github.com/magabrotheeeer/contract-billing/internal/cache"
	"github.com/magabrotheeeer/contract-billing/internal/config"
	"github.com/magabrotheeeer/contract-billing/internal/crm"
	"github.com/magabrotheeeer/contract-billing/internal/lib/jwt"
	"github.com/magabrotheeeer/contract-billing/internal/migrations"
	"github.com/magabrotheeeer/contract-billing/internal/notify"
	authservice "github.com/magabrotheeeer/contract-billing/internal/services/auth"
	clientservice "github.com/magabrotheeeer/contract-billing/internal/services/client"
	contractservice "github.com/magabrotheeeer/contract-billing/internal/services/contract"
	invoiceservice "github.com/magabrotheeeer/contract-billing/internal/services/invoice"
	"github.com/magabrotheeeer/contract-billing/internal/signprovider"
	"github.com/magabrotheeeer/contract-billing/internal/storage/repository"
)

// App объединяет HTTP-сервер и ресурсы приложения.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
}

// New создает приложение: подключает хранилище, применяет миграции,
// инициализирует кеш, адаптеры и сервисы, регистрирует маршруты.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	jwtMaker := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)
	authService := authservice.NewAuthService(db, jwtMaker)
	clientService := clientservice.NewClientService(db, cacheRedis, logger)

	signClient := signprovider.NewClient(cfg.SignProvider)
	billingClient := billingprovider.NewClient(cfg.BillingProvider)
	logger.Info("provider adapters initialized",
		slog.String("sign_mode", string(signClient.Mode())),
		slog.String("billing_mode", string(billingClient.Mode())))

	smtpSender := notify.NewSMTPSender(cfg.SMTP, logger)
	messagingClient := notify.NewMessagingClient(cfg.Messaging)
	dispatcher := notify.NewDispatcher(smtpSender, messagingClient, logger)
	forwarder := crm.NewForwarder(cfg.CRM, db, logger)

	contractService := contractservice.NewContractService(db, signClient, billingClient, dispatcher, forwarder, logger)
	invoiceService := invoiceservice.NewInvoiceService(db, billingClient, dispatcher, forwarder, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, db, authService, clientService, contractService, invoiceService)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
	}, nil
}

// Run запускает HTTP-сервер и ждет отмены контекста для graceful shutdown.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		_ = a.db.DB.Close()
		return err
	}
}
