package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEndDate(t *testing.T) {
	tests := []struct {
		name           string
		start          time.Time
		durationMonths int
		want           time.Time
	}{
		{
			name:           "двенадцать месяцев",
			start:          time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
			durationMonths: 12,
			want:           time.Date(2027, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:           "один месяц",
			start:          time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			durationMonths: 1,
			want:           time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:           "перенос через конец года",
			start:          time.Date(2026, 11, 30, 0, 0, 0, 0, time.UTC),
			durationMonths: 3,
			want:           time.Date(2027, 3, 2, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EndDate(tt.start, tt.durationMonths))
		})
	}
}

func TestDaysUntil(t *testing.T) {
	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		dueDate time.Time
		want    int
	}{
		{
			name:    "через четыре дня",
			dueDate: time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC),
			want:    4,
		},
		{
			name:    "неполные сутки округляются вверх",
			dueDate: time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC),
			want:    4,
		},
		{
			name:    "сегодня",
			dueDate: now,
			want:    0,
		},
		{
			name:    "просрочено",
			dueDate: time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC),
			want:    -5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysUntil(tt.dueDate, now))
		})
	}
}
