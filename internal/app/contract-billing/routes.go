// Package contractbilling предоставляет маршруты для основного приложения.
package contractbilling

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/contract-billing/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/contract-billing/internal/http/handlers/auth/register"
	clientcreate "github.com/magabrotheeeer/contract-billing/internal/http/handlers/client/create"
	clientlist "github.com/magabrotheeeer/contract-billing/internal/http/handlers/client/list"
	clientread "github.com/magabrotheeeer/contract-billing/internal/http/handlers/client/read"
	clientupdate "github.com/magabrotheeeer/contract-billing/internal/http/handlers/client/update"
	contractactivate "github.com/magabrotheeeer/contract-billing/internal/http/handlers/contract/activate"
	contractcancel "github.com/magabrotheeeer/contract-billing/internal/http/handlers/contract/cancel"
	contractcreate "github.com/magabrotheeeer/contract-billing/internal/http/handlers/contract/create"
	contractlist "github.com/magabrotheeeer/contract-billing/internal/http/handlers/contract/list"
	contractread "github.com/magabrotheeeer/contract-billing/internal/http/handlers/contract/read"
	contractsend "github.com/magabrotheeeer/contract-billing/internal/http/handlers/contract/send"
	"github.com/magabrotheeeer/contract-billing/internal/http/handlers/health"
	invoicelist "github.com/magabrotheeeer/contract-billing/internal/http/handlers/invoice/list"
	invoicemarkpaid "github.com/magabrotheeeer/contract-billing/internal/http/handlers/invoice/markpaid"
	invoicepending "github.com/magabrotheeeer/contract-billing/internal/http/handlers/invoice/pending"
	invoiceread "github.com/magabrotheeeer/contract-billing/internal/http/handlers/invoice/read"
	invoiceremind "github.com/magabrotheeeer/contract-billing/internal/http/handlers/invoice/remind"
	"github.com/magabrotheeeer/contract-billing/internal/http/middlewarectx"
	authservice "github.com/magabrotheeeer/contract-billing/internal/services/auth"
	clientservice "github.com/magabrotheeeer/contract-billing/internal/services/client"
	contractservice "github.com/magabrotheeeer/contract-billing/internal/services/contract"
	invoiceservice "github.com/magabrotheeeer/contract-billing/internal/services/invoice"
	"github.com/magabrotheeeer/contract-billing/internal/storage/repository"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, db *repository.Storage,
	authService *authservice.AuthService, clientService *clientservice.ClientService,
	contractService *contractservice.ContractService, invoiceService *invoiceservice.InvoiceService) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/register", register.New(logger, authService).ServeHTTP)
		r.Post("/login", login.New(logger, authService).ServeHTTP)
		r.Get("/health", health.New(logger, db).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(authService, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))

			r.Post("/clients", clientcreate.New(logger, clientService).ServeHTTP)
			r.Get("/clients", clientlist.New(logger, clientService).ServeHTTP)
			r.Get("/clients/{id}", clientread.New(logger, clientService).ServeHTTP)
			r.Put("/clients/{id}", clientupdate.New(logger, clientService).ServeHTTP)

			r.Post("/contracts", contractcreate.New(logger, contractService).ServeHTTP)
			r.Get("/contracts", contractlist.New(logger, contractService).ServeHTTP)
			r.Get("/contracts/{id}", contractread.New(logger, contractService).ServeHTTP)
			r.Post("/contracts/{id}/send-for-signature", contractsend.New(logger, contractService).ServeHTTP)
			r.Post("/contracts/{id}/activate", contractactivate.New(logger, contractService).ServeHTTP)
			r.Post("/contracts/{id}/cancel", contractcancel.New(logger, contractService).ServeHTTP)

			r.Get("/invoices", invoicelist.New(logger, invoiceService).ServeHTTP)
			r.Get("/invoices/pending-reminders", invoicepending.New(logger, invoiceService).ServeHTTP)
			r.Get("/invoices/{id}", invoiceread.New(logger, invoiceService).ServeHTTP)
			r.Post("/invoices/{id}/mark-paid", invoicemarkpaid.New(logger, invoiceService).ServeHTTP)
			r.Post("/invoices/{id}/send-reminder", invoiceremind.New(logger, invoiceService).ServeHTTP)
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
