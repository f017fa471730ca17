package rabbitmq

import (
	"fmt"

	"github.com/streadway/amqp"
)

// Имена exchange, очереди и ключа маршрутизации напоминаний.
const (
	Exchange           = "billing"
	RemindersQueue     = "billing.reminders"
	ReminderRoutingKey = "reminder"
)

// SetupChannel открывает канал и объявляет exchange, очередь напоминаний
// и её привязку.
func SetupChannel(conn *amqp.Connection) (*amqp.Channel, error) {
	const op = "rabbitmq.SetupChannel"

	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := ch.Qos(10, 0, false); err != nil {
		return nil, fmt.Errorf("%s: failed to set QoS: %w", op, err)
	}

	err = ch.ExchangeDeclare(
		Exchange,
		"direct",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	_, err = ch.QueueDeclare(
		RemindersQueue,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to declare queue %s: %w", op, RemindersQueue, err)
	}

	err = ch.QueueBind(RemindersQueue, ReminderRoutingKey, Exchange, false, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to bind queue %s: %w", op, RemindersQueue, err)
	}

	return ch, nil
}
