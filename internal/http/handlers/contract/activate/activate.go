// Package activate реализует HTTP-обработчик активации контракта.
//
// Handler вызывает бизнес-логику, которая создает клиента и рекуррентную
// подписку у биллинг-провайдера, помечает подпись как signed и переводит
// контракт в статус active.
package activate

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

// Handler обрабатывает запросы на активацию контракта.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики активации контракта.
type Service interface {
	Activate(ctx context.Context, id int64) (*models.Contract, *models.Subscription, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Активировать контракт
// @Description Создает подписку у биллинг-провайдера и переводит контракт из pending_signature в active.
// @Tags Contracts
// @Produce  json
// @Param id path int true "ID контракта"
// @Success 200 {object} map[string]any "Контракт активирован"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 404 {object} response.ErrorResponse "Контракт или клиент не найден"
// @Failure 422 {object} response.ErrorResponse "Контракт не в статусе pending_signature"
// @Failure 502 {object} response.ErrorResponse "Ошибка биллинг-провайдера"
// @Security BearerAuth
// @Router /contracts/{id}/activate [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.contract.activate"

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

	contract, subscription, err := h.service.Activate(r.Context(), id)
	if err != nil {
		log.Error("failed to activate contract", sl.Err(err))
		w.WriteHeader(response.ErrorStatus(err))
		render.JSON(w, r, response.Error("could not activate contract"))
		return
	}

	log.Info("contract activated", slog.Int64("id", id))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"contract":     contract,
		"subscription": subscription,
	}))
}
