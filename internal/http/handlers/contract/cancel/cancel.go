// Package cancel реализует HTTP-обработчик отмены контракта.
//
// Handler вызывает бизнес-логику, которая отменяет подписку у
// биллинг-провайдера и конверт у провайдера подписи, после чего переводит
// контракт в статус cancelled.
package cancel

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

// Handler обрабатывает запросы на отмену контракта.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики отмены контракта.
type Service interface {
	Cancel(ctx context.Context, id int64) (*models.Contract, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Отменить контракт
// @Description Отменяет контракт вместе с подпиской и конвертом подписи. Ошибка внешнего вызова оставляет статус контракта неизменным.
// @Tags Contracts
// @Produce  json
// @Param id path int true "ID контракта"
// @Success 200 {object} map[string]any "Контракт отменён"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 404 {object} response.ErrorResponse "Контракт не найден"
// @Failure 422 {object} response.ErrorResponse "Контракт уже отменён или истёк"
// @Failure 502 {object} response.ErrorResponse "Ошибка внешнего провайдера"
// @Security BearerAuth
// @Router /contracts/{id}/cancel [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.contract.cancel"

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

	contract, err := h.service.Cancel(r.Context(), id)
	if err != nil {
		log.Error("failed to cancel contract", sl.Err(err))
		w.WriteHeader(response.ErrorStatus(err))
		render.JSON(w, r, response.Error("could not cancel contract"))
		return
	}

	log.Info("contract cancelled", slog.Int64("id", id))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"contract": contract,
	}))
}
