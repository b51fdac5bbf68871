package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"jobbridge/internal/config"
	"jobbridge/internal/logger"

	"github.com/streadway/amqp"
	"go.uber.org/zap"
)

var ErrPublisherClosed = errors.New("amqp publisher closed")

// AMQPPublisher publishes events as JSON to a durable topic exchange.
type AMQPPublisher struct {
	conn     *amqp.Connection
	exchange string
	logger   *zap.Logger

	mu     sync.Mutex
	ch     *amqp.Channel
	closed bool
}

func NewAMQPPublisher(cfg config.EventsConfig, log *zap.Logger) (*AMQPPublisher, error) {
	if !cfg.Enabled() {
		return nil, errors.New("rabbitmq url not configured")
	}

	conn, err := amqp.Dial(cfg.RabbitMQURL)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err := ch.ExchangeDeclare(
		cfg.Exchange,
		"topic",
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", cfg.Exchange, err)
	}

	return &AMQPPublisher{
		conn:     conn,
		ch:       ch,
		exchange: cfg.Exchange,
		logger:   logger.OrNop(log),
	}, nil
}

func (p *AMQPPublisher) Publish(_ context.Context, evt Event) error {
	body, err := json.Marshal(evt)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return ErrPublisherClosed
	}

	// amqp.Channel is not safe for concurrent publishes.
	err = p.ch.Publish(
		p.exchange,
		evt.RoutingKey(),
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		p.logger.Warn("event publish failed",
			zap.String("exchange", p.exchange),
			zap.String("routing_key", evt.RoutingKey()),
			zap.Error(err),
		)
		return fmt.Errorf("publish %s: %w", evt.RoutingKey(), err)
	}
	return nil
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true
	chErr := p.ch.Close()
	connErr := p.conn.Close()
	return errors.Join(chErr, connErr)
}
