package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// AssignmentPayload avisa que um registro foi atribuído a alguém.
// O worker resolve isso num email pro responsável.
type AssignmentPayload struct {
	EventID    string `json:"event_id"`
	Table      string `json:"table"` // leads, por enquanto
	Op         string `json:"op"`    // INSERT ou UPDATE
	RecordID   string `json:"record_id"`
	RecordName string `json:"record_name"`

	AssigneeID    string `json:"assignee_id"`
	AssigneeName  string `json:"assignee_name"`
	AssigneeEmail string `json:"assignee_email"`
}

type ProducerInterface interface {
	PublishAssignment(ctx context.Context, payload AssignmentPayload) error
}

type RabbitMQProducer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{
		Conn: conn,
		Ch:   ch,
	}
}

func (p *RabbitMQProducer) PublishAssignment(ctx context.Context, payload AssignmentPayload) error {
	if payload.EventID == "" {
		payload.EventID = uuid.NewString()
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("erro ao converter payload: %v", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // Mandatory
		false, // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			MessageId:    payload.EventID,
			Body:         body,
			DeliveryMode: amqp.Persistent, // Mensagem salva no disco
		},
	)
	if err != nil {
		return fmt.Errorf("falha ao publicar no RabbitMQ: %v", err)
	}

	return nil
}
