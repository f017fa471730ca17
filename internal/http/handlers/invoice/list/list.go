// Package list реализует HTTP-обработчик для получения списка фактур
// с опциональными фильтрами по подписке и статусу.
package list

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/contract-billing/internal/http/response"
	"github.com/magabrotheeeer/contract-billing/internal/lib/sl"
	"github.com/magabrotheeeer/contract-billing/internal/models"
)

// Handler обрабатывает запросы на получение списка фактур.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики получения списка фактур.
type Service interface {
	List(ctx context.Context, filter models.InvoiceFilter) ([]*models.Invoice, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Получить список фактур
// @Description Возвращает список фактур с опциональными фильтрами по ID подписки и статусу.
// @Tags Invoices
// @Produce  json
// @Param subscription_id query int false "ID подписки"
// @Param status query string false "Статус фактуры"
// @Success 200 {object} map[string]any "Список фактур"
// @Failure 400 {object} response.ErrorResponse "Некорректный subscription_id"
// @Security BearerAuth
// @Router /invoices [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.invoice.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var filter models.InvoiceFilter
	if status := r.URL.Query().Get("status"); status != "" {
		filter.Status = &status
	}
	if rawSubID := r.URL.Query().Get("subscription_id"); rawSubID != "" {
		subID, err := strconv.ParseInt(rawSubID, 10, 64)
		if err != nil {
			log.Error("failed to decode subscription_id", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid subscription_id"))
			return
		}
		filter.SubscriptionID = &subID
	}

	res, err := h.service.List(r.Context(), filter)
	if err != nil {
		log.Error("failed to list invoices", sl.Err(err))
		w.WriteHeader(response.ErrorStatus(err))
		render.JSON(w, r, response.Error("could not list invoices"))
		return
	}

	log.Info("success to list invoices", slog.Int("count", len(res)))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"invoices": res,
		"count":    len(res),
	}))
}
