// Package list реализует HTTP-обработчик для получения списка клиентов
// с опциональным поиском по имени или email.
package list

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

// Handler обрабатывает запросы на получение списка клиентов.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики получения списка клиентов.
type Service interface {
	List(ctx context.Context, search string) ([]*models.Client, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Получить список клиентов
// @Description Возвращает список клиентов с опциональным поиском по подстроке имени или email.
// @Tags Clients
// @Produce  json
// @Param search query string false "Подстрока для поиска"
// @Success 200 {object} map[string]any "Список клиентов"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Security BearerAuth
// @Router /clients [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.client.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	search := r.URL.Query().Get("search")

	res, err := h.service.List(r.Context(), search)
	if err != nil {
		log.Error("failed to list clients", sl.Err(err))
		w.WriteHeader(response.ErrorStatus(err))
		render.JSON(w, r, response.Error("could not list clients"))
		return
	}

	log.Info("success to list clients", slog.Int("count", len(res)))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"clients": res,
		"count":   len(res),
	}))
}
