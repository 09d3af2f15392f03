package messaging

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/rabbitmq/amqp091-go"

	"github.com/finance-tracker/reports-api/internal/domain/entity"
)

const (
	publishTimeout = 5 * time.Second
	// requeueDelay spaces out redeliveries while the handler keeps failing.
	requeueDelay = 2 * time.Second
)

// Client publishes and consumes ledger events on a durable direct exchange.
// The queue is bound with its own name as routing key.
type Client struct {
	conn         *amqp091.Connection
	channel      *amqp091.Channel
	exchangeName string
	queueName    string
	publishMu    sync.Mutex
}

// NewClient dials the broker and declares the exchange, queue and binding.
func NewClient(url, exchangeName, queueName string) (*Client, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	client := &Client{
		conn:         conn,
		channel:      channel,
		exchangeName: exchangeName,
		queueName:    queueName,
	}

	if err := client.setup(); err != nil {
		client.Close()
		return nil, fmt.Errorf("setup exchange and queue: %w", err)
	}

	return client, nil
}

func (c *Client) setup() error {
	err := c.channel.ExchangeDeclare(
		c.exchangeName, // name
		"direct",       // type
		true,           // durable
		false,          // auto-deleted
		false,          // internal
		false,          // no-wait
		nil,            // arguments
	)
	if err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}

	_, err = c.channel.QueueDeclare(
		c.queueName, // name
		true,        // durable
		false,       // delete when unused
		false,       // exclusive
		false,       // no-wait
		nil,         // arguments
	)
	if err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}

	err = c.channel.QueueBind(
		c.queueName,    // queue name
		c.queueName,    // routing key
		c.exchangeName, // exchange
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}

	return nil
}

// Publish implements adapter.EventPublisher.
func (c *Client) Publish(ctx context.Context, event entity.LedgerEvent) error {
	body, err := EncodeEvent(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	c.publishMu.Lock()
	defer c.publishMu.Unlock()

	err = c.channel.PublishWithContext(
		ctx,
		c.exchangeName, // exchange
		c.queueName,    // routing key
		false,          // mandatory
		false,          // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    event.OccurredAt,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}

	slog.DebugContext(ctx, "Published ledger event",
		"user_id", event.UserID,
		"entity", event.Entity,
		"action", event.Action,
		"exchange", c.exchangeName,
	)
	return nil
}

// EventHandler processes a decoded ledger event.
type EventHandler func(ctx context.Context, event entity.LedgerEvent) error

// Consume delivers queued events to handler until ctx is cancelled.
// Undecodable messages are dropped; handler failures are requeued after
// requeueDelay.
func (c *Client) Consume(ctx context.Context, handler EventHandler) error {
	msgs, err := c.channel.Consume(
		c.queueName, // queue
		"",          // consumer
		false,       // auto-ack
		false,       // exclusive
		false,       // no-local
		false,       // no-wait
		nil,         // args
	)
	if err != nil {
		return fmt.Errorf("start consuming: %w", err)
	}

	slog.InfoContext(ctx, "Started consuming ledger events", "queue", c.queueName)

	for {
		select {
		case <-ctx.Done():
			slog.InfoContext(ctx, "Stopping ledger event consumption", "reason", ctx.Err())
			return ctx.Err()
		case delivery, ok := <-msgs:
			if !ok {
				return fmt.Errorf("message channel closed")
			}
			deliver(ctx, delivery, handler, requeueDelay)
		}
	}
}

// outcome says how a delivery is settled.
type outcome int

const (
	ack outcome = iota
	drop
	requeue
)

func process(ctx context.Context, body []byte, handler EventHandler) outcome {
	event, err := DecodeEvent(body)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to decode ledger event", "error", err)
		return drop
	}

	if err := handler(ctx, event); err != nil {
		slog.ErrorContext(ctx, "Failed to handle ledger event",
			"error", err,
			"user_id", event.UserID,
			"entity_id", event.EntityID,
		)
		return requeue
	}
	return ack
}

// deliver handles one delivery and settles it. A requeue waits for delay
// first so a failing dependency is not retried in a tight loop.
func deliver(ctx context.Context, delivery amqp091.Delivery, handler EventHandler, delay time.Duration) {
	o := process(ctx, delivery.Body, handler)
	if o == requeue {
		wait(ctx, delay)
	}
	settle(delivery, o)
}

// wait blocks for d or until ctx is done.
func wait(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}

func settle(delivery amqp091.Delivery, o outcome) {
	var err error
	switch o {
	case ack:
		err = delivery.Ack(false)
	case drop:
		err = delivery.Nack(false, false)
	case requeue:
		err = delivery.Nack(false, true)
	}
	if err != nil {
		slog.Error("Failed to settle delivery", "error", err)
	}
}

// Close closes the channel and the connection.
func (c *Client) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}
