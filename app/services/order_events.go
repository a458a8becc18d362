package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/gabrielborzinocontato-debug/SITEBAUTY/app/models"
	amqp "github.com/rabbitmq/amqp091-go"
)

const orderCreatedQueue = "order.created"

// OrderEventItem é a linha do evento publicado para sistemas de retaguarda.
type OrderEventItem struct {
	ProductName string `json:"product_name"`
	Qty         int    `json:"quantity"`
	Price       string `json:"price"`
}

type OrderCreatedEvent struct {
	OrderNumber string           `json:"order_number"`
	UserID      string           `json:"user_id"`
	Total       string           `json:"total"`
	Status      string           `json:"status"`
	Items       []OrderEventItem `json:"items"`
	CreatedAt   time.Time        `json:"created_at"`
}

// OrderPublisher publica eventos de pedido criado no RabbitMQ. É opcional:
// sem AMQP_URL configurada o checkout segue sem publicar nada.
type OrderPublisher struct {
	conn *amqp.Connection
	ch   *amqp.Channel
}

func NewOrderPublisher(amqpURL string) (*OrderPublisher, error) {
	conn, err := amqp.Dial(amqpURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if _, err := ch.QueueDeclare(
		orderCreatedQueue, // name
		true,              // durable
		false,             // delete when unused
		false,             // exclusive
		false,             // no-wait
		nil,               // arguments
	); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	log.Printf("✅ Publicador RabbitMQ conectado (fila %s).", orderCreatedQueue)
	return &OrderPublisher{conn: conn, ch: ch}, nil
}

func (p *OrderPublisher) PublishOrderCreated(ctx context.Context, order *models.Order) error {
	items := make([]OrderEventItem, 0, len(order.OrderItems))
	for _, item := range order.OrderItems {
		items = append(items, OrderEventItem{
			ProductName: item.ProductName,
			Qty:         item.Qty,
			Price:       item.Price.StringFixed(2),
		})
	}

	body, err := json.Marshal(OrderCreatedEvent{
		OrderNumber: order.OrderNumber,
		UserID:      order.UserID,
		Total:       order.Total.StringFixed(2),
		Status:      order.Status,
		Items:       items,
		CreatedAt:   order.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal order event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = p.ch.PublishWithContext(ctx,
		"",                // exchange
		orderCreatedQueue, // routing key
		false,             // mandatory
		false,             // immediate
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         body,
		})
	if err != nil {
		return fmt.Errorf("failed to publish order event: %w", err)
	}
	return nil
}

func (p *OrderPublisher) Close() {
	if p.ch != nil {
		p.ch.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
}
