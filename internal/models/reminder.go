package models

import "time"

// ReminderJob — сообщение очереди напоминаний: фактура, по которой нужно
// отправить напоминание об оплате. Публикуется планировщиком, потребляется
// отправителем.
type ReminderJob struct {
	InvoiceID int64     `json:"invoice_id"`
	DueDate   time.Time `json:"due_date"`
}
