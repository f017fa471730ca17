// Package remind реализует HTTP-обработчик ручной отправки напоминания
// об оплате фактуры. Повторный вызов по уже обработанной фактуре ничего
// не отправляет.
package remind

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/contract-billing/internal/http/response"
	"github.com/magabrotheeeer/contract-billing/internal/lib/sl"
)

// Handler обрабатывает запросы на отправку напоминания об оплате.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики отправки напоминания.
type Service interface {
	SendReminder(ctx context.Context, id int64) error
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Отправить напоминание об оплате
// @Description Отправляет клиенту напоминание об оплате фактуры по доступным каналам.
// @Tags Invoices
// @Produce  json
// @Param id path int true "ID фактуры"
// @Success 200 {object} map[string]any "Напоминание отправлено"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 404 {object} response.ErrorResponse "Фактура не найдена"
// @Security BearerAuth
// @Router /invoices/{id}/send-reminder [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.invoice.remind"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Error("failed to decode id from url", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("failed to decode id from url"))
		return
	}

	if err := h.service.SendReminder(r.Context(), id); err != nil {
		log.Error("failed to send reminder", sl.Err(err))
		w.WriteHeader(response.ErrorStatus(err))
		render.JSON(w, r, response.Error("could not send reminder"))
		return
	}

	log.Info("reminder sent", slog.Int64("invoice_id", id))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"invoice_id": id,
	}))
}
