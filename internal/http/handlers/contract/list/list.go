// Package list реализует HTTP-обработчик для получения списка контрактов
// с опциональными фильтрами по статусу и клиенту.
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

// Handler обрабатывает запросы на получение списка контрактов.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики получения списка контрактов.
type Service interface {
	List(ctx context.Context, filter models.ContractFilter) ([]*models.Contract, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Получить список контрактов
// @Description Возвращает список контрактов с опциональными фильтрами по статусу и ID клиента.
// @Tags Contracts
// @Produce  json
// @Param status query string false "Статус контракта"
// @Param client_id query int false "ID клиента"
// @Success 200 {object} map[string]any "Список контрактов"
// @Failure 400 {object} response.ErrorResponse "Некорректный client_id"
// @Security BearerAuth
// @Router /contracts [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.contract.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var filter models.ContractFilter
	if status := r.URL.Query().Get("status"); status != "" {
		filter.Status = &status
	}
	if rawClientID := r.URL.Query().Get("client_id"); rawClientID != "" {
		clientID, err := strconv.ParseInt(rawClientID, 10, 64)
		if err != nil {
			log.Error("failed to decode client_id", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid client_id"))
			return
		}
		filter.ClientID = &clientID
	}

	res, err := h.service.List(r.Context(), filter)
	if err != nil {
		log.Error("failed to list contracts", sl.Err(err))
		w.WriteHeader(response.ErrorStatus(err))
		render.JSON(w, r, response.Error("could not list contracts"))
		return
	}

	log.Info("success to list contracts", slog.Int("count", len(res)))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"contracts": res,
		"count":     len(res),
	}))
}
