// Package markpaid реализует HTTP-обработчик отметки фактуры как оплаченной.
//
// Handler вызывает бизнес-логику, которая переводит фактуру в статус paid,
// отправляет клиенту подтверждение оплаты и передает событие в CRM.
package markpaid

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
	"github.com/magabrotheeeer/contract-billing/internal/models"
)

// Handler обрабатывает запросы на отметку фактуры как оплаченной.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики оплаты фактуры.
type Service interface {
	MarkAsPaid(ctx context.Context, id int64) (*models.Invoice, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Отметить фактуру оплаченной
// @Description Переводит фактуру в статус paid, отправляет подтверждение клиенту и событие в CRM.
// @Tags Invoices
// @Produce  json
// @Param id path int true "ID фактуры"
// @Success 200 {object} map[string]any "Фактура оплачена"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 404 {object} response.ErrorResponse "Фактура не найдена"
// @Failure 422 {object} response.ErrorResponse "Фактура уже оплачена"
// @Security BearerAuth
// @Router /invoices/{id}/mark-paid [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.invoice.markpaid"

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

	invoice, err := h.service.MarkAsPaid(r.Context(), id)
	if err != nil {
		log.Error("failed to mark invoice as paid", sl.Err(err))
		w.WriteHeader(response.ErrorStatus(err))
		render.JSON(w, r, response.Error("could not mark invoice as paid"))
		return
	}

	log.Info("invoice marked as paid", slog.Int64("id", id))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"invoice": invoice,
	}))
}
