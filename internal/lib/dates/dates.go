// Package dates содержит календарную арифметику для контрактов и фатур.
package dates

import "time"

// EndDate возвращает дату окончания контракта: начало плюс durationMonths
// календарных месяцев (time.AddDate, с переносом через границы года).
func EndDate(start time.Time, durationMonths int) time.Time {
	return start.AddDate(0, durationMonths, 0)
}

// DaysUntil возвращает количество дней до dueDate, округлённое вверх.
// Для даты в прошлом результат отрицательный или нулевой.
func DaysUntil(dueDate, now time.Time) int {
	diff := dueDate.Sub(now)
	days := int(diff / (24 * time.Hour))
	if diff%(24*time.Hour) > 0 {
		days++
	}
	return days
}
