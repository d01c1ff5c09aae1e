package queue

import (
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/growthdesk/crm-backend/internal/infra/http/middleware"
)

// NotificationSender define o contrato do canal de aviso (hoje SMTP).
type NotificationSender interface {
	SendAssignment(to, name, recordName, table string) error
}

type Worker struct {
	Channel *amqp.Channel
	Sender  NotificationSender
}

func NewWorker(ch *amqp.Channel, sender NotificationSender) *Worker {
	return &Worker{
		Channel: ch,
		Sender:  sender,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName, // fila
		"",        // consumer
		false,     // auto-ack (manual é mais seguro)
		false,     // exclusive
		false,     // no-local
		false,     // no-wait
		nil,       // args
	)
	if err != nil {
		log.Fatalf("❌ Falha ao registrar consumidor RabbitMQ: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload AssignmentPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("❌ [WORKER] JSON Inválido: %s", err)
				// Mensagem podre. Rejeita sem requeue para não travar a fila.
				d.Nack(false, false)
				continue
			}

			log.Printf("📥 [WORKER] Atribuição: %s/%s → %s", payload.Table, payload.RecordID, payload.AssigneeEmail)

			if err := w.process(payload); err != nil {
				log.Printf("❌ [WORKER] Falha ao notificar: %s", err)
				middleware.RecordNotificationError()
				d.Nack(false, false)
			} else {
				d.Ack(false)
			}
		}
	}()

	log.Printf(" [*] Worker rodando e aguardando na fila '%s'", queueName)
	<-forever
}

func (w *Worker) process(payload AssignmentPayload) error {
	switch payload.Table {
	case "leads":
		return w.Sender.SendAssignment(
			payload.AssigneeEmail,
			payload.AssigneeName,
			payload.RecordName,
			payload.Table,
		)
	default:
		// Tabela que ainda não notificamos. Ack pra não entupir a fila.
		log.Printf("⚠️ [WORKER] Tabela sem notificação: %s", payload.Table)
		return nil
	}
}
