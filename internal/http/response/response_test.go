package response

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/magabrotheeeer/contract-billing/internal/apperrs"
)

func TestErrorStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "ошибка валидации",
			err:  apperrs.Validation("value must be positive"),
			want: http.StatusUnprocessableEntity,
		},
		{
			name: "сущность не найдена",
			err:  apperrs.NotFound("contract", 7),
			want: http.StatusNotFound,
		},
		{
			name: "обёрнутая ошибка не найдена",
			err:  fmt.Errorf("storage.ReadContract: %w", apperrs.NotFound("contract", 7)),
			want: http.StatusNotFound,
		},
		{
			name: "ошибка внешнего сервиса",
			err:  apperrs.External("billing", errors.New("timeout")),
			want: http.StatusBadGateway,
		},
		{
			name: "хранилище недоступно",
			err:  fmt.Errorf("storage.New: %w", apperrs.ErrUnavailable),
			want: http.StatusServiceUnavailable,
		},
		{
			name: "неизвестная ошибка",
			err:  errors.New("boom"),
			want: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ErrorStatus(tt.err))
		})
	}
}
