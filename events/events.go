package events

import (
	"os"
	"time"

	"examination-backend/log"

	"github.com/streadway/amqp"
)

const GradingExchange = "grading"

type Events struct {
	Conn *amqp.Connection
}

var e *Events

// EnsureEvents connects to the broker named by RABBITMQ_CONNSTRING and
// declares the grading exchange. Without the variable, publishing stays a
// no-op and the server runs standalone.
func EnsureEvents() {
	if e != nil {
		return
	}

	s, ok := os.LookupEnv("RABBITMQ_CONNSTRING")
	if !ok {
		log.Logger.Info("RABBITMQ_CONNSTRING not set, event publishing disabled")
		return
	}

	log.Logger.Info("Trying to connect to rabbitmq...")

	var conn *amqp.Connection
	t := time.Second
	for i := 0; i < 6; i++ {
		var err error
		conn, err = amqp.Dial(s)
		if err != nil {
			if i == 5 {
				panic(err)
			}
			time.Sleep(t)
			t *= 2

			continue
		}

		break
	}
	log.Logger.Info("Connected to rabbitmq")

	ch, err := conn.Channel()
	if err != nil {
		panic(err)
	}
	defer ch.Close()

	err = ch.ExchangeDeclare(
		GradingExchange,
		"fanout",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		panic(err)
	}

	e = &Events{
		Conn: conn,
	}
}
