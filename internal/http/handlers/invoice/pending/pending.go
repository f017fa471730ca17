// Package pending реализует HTTP-обработчик выборки фактур, ожидающих
// напоминания об оплате: срок через четыре дня, напоминание не отправлялось.
package pending

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/contract-billing/internal/http/response"
	"github.com/magabrotheeeer/contract-billing/internal/lib/sl"
	"github.com/magabrotheeeer/contract-billing/internal/models"
)

// Handler обрабатывает запросы на выборку фактур, ожидающих напоминания.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики выборки фактур для напоминаний.
type Service interface {
	GetPendingReminders(ctx context.Context) ([]*models.Invoice, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Фактуры, ожидающие напоминания
// @Description Возвращает неоплаченные фактуры со сроком оплаты ровно через четыре дня, по которым напоминание еще не отправлялось.
// @Tags Invoices
// @Produce  json
// @Success 200 {object} map[string]any "Список фактур"
// @Failure 503 {object} response.ErrorResponse "Хранилище недоступно"
// @Security BearerAuth
// @Router /invoices/pending-reminders [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.invoice.pending"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	res, err := h.service.GetPendingReminders(r.Context())
	if err != nil {
		log.Error("failed to get pending reminders", sl.Err(err))
		w.WriteHeader(response.ErrorStatus(err))
		render.JSON(w, r, response.Error("could not get pending reminders"))
		return
	}

	log.Info("success to get pending reminders", slog.Int("count", len(res)))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"invoices": res,
		"count":    len(res),
	}))
}
