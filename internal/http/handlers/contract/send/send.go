// Package send реализует HTTP-обработчик отправки контракта на цифровую подпись.
//
// Handler принимает ссылку на PDF-документ, вызывает бизнес-логику,
// которая создает конверт у провайдера подписи и переводит контракт
// в статус pending_signature, и возвращает ссылку для подписания.
package send

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	contractsvc "github.com/magabrotheeeer/contract-billing/internal/services/contract"

	"github.com/magabrotheeeer/contract-billing/internal/http/response"
	"github.com/magabrotheeeer/contract-billing/internal/lib/sl"
	"github.com/magabrotheeeer/contract-billing/internal/models"
)

// Handler обрабатывает запросы на отправку контракта на подпись.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики отправки контракта на подпись.
type Service interface {
	SendForSignature(ctx context.Context, id int64, pdfURL string) (*contractsvc.SendForSignatureResult, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Отправить контракт на подпись
// @Description Создает конверт подписи у провайдера и переводит контракт из draft в pending_signature.
// @Tags Contracts
// @Accept  json
// @Produce  json
// @Param id path int true "ID контракта"
// @Param request body models.DummySendForSignature true "Ссылка на PDF контракта"
// @Success 200 {object} map[string]any "Контракт отправлен на подпись"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или ID"
// @Failure 404 {object} response.ErrorResponse "Контракт или клиент не найден"
// @Failure 422 {object} response.ErrorResponse "Контракт не в статусе draft"
// @Failure 502 {object} response.ErrorResponse "Ошибка провайдера подписи"
// @Security BearerAuth
// @Router /contracts/{id}/send-for-signature [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.contract.send"

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

	var req models.DummySendForSignature
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	res, err := h.service.SendForSignature(r.Context(), id, req.PdfURL)
	if err != nil {
		log.Error("failed to send contract for signature", sl.Err(err))
		w.WriteHeader(response.ErrorStatus(err))
		render.JSON(w, r, response.Error("could not send contract for signature"))
		return
	}

	log.Info("contract sent for signature", slog.Int64("id", id))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"signature_id": res.SignatureID,
		"sign_url":     res.SignURL,
	}))
}
