package mq

import (
	"context"
	"fmt"

	"linkpulse/internal/config"
	"linkpulse/internal/model"

	"github.com/apache/rocketmq-client-go/v2"
	"github.com/apache/rocketmq-client-go/v2/consumer"
	"github.com/apache/rocketmq-client-go/v2/primitive"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
)

// ClickHandler records one click taken off the queue. It has no error
// return: a click that cannot be recorded is dropped, never redelivered.
type ClickHandler func(ctx context.Context, in model.ClickInput)

// Consumer handles message consumption from RocketMQ
type Consumer struct {
	client  rocketmq.PushConsumer
	topic   string
	group   string
	handler ClickHandler
	started bool
}

// NewConsumer creates a new RocketMQ consumer
func NewConsumer(cfg *config.RocketMQConfig, handler ClickHandler) (*Consumer, error) {
	c, err := rocketmq.NewPushConsumer(
		consumer.WithNameServer([]string{cfg.NameServer}),
		consumer.WithConsumerModel(consumer.Clustering),
		consumer.WithGroupName(cfg.Group),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create RocketMQ consumer: %w", err)
	}

	return &Consumer{
		client:  c,
		topic:   cfg.Topic,
		group:   cfg.Group,
		handler: handler,
	}, nil
}

// Subscribe subscribes to the topic and starts consuming messages
func (c *Consumer) Subscribe() error {
	if c.started {
		return nil
	}

	selector := consumer.MessageSelector{Type: consumer.TAG, Expression: clickTag}
	if err := c.client.Subscribe(c.topic, selector, c.consume); err != nil {
		return fmt.Errorf("failed to subscribe to topic: %w", err)
	}

	if err := c.client.Start(); err != nil {
		return fmt.Errorf("failed to start consumer: %w", err)
	}

	c.started = true
	log.Info().Str("topic", c.topic).Str("group", c.group).Msg("RocketMQ consumer started")

	return nil
}

// consume acknowledges every message, including ones that fail to decode
func (c *Consumer) consume(ctx context.Context, msgs ...*primitive.MessageExt) (consumer.ConsumeResult, error) {
	for _, msg := range msgs {
		var click model.ClickMessage
		if err := json.Unmarshal(msg.Body, &click); err != nil {
			log.Error().Err(err).Str("msg_id", msg.MsgId).Msg("Failed to unmarshal click message, dropping")
			continue
		}

		log.Debug().
			Str("msg_id", msg.MsgId).
			Int64("link_id", click.LinkID).
			Str("short_code", click.ShortCode).
			Msg("Processing click")

		if c.handler != nil {
			c.handler(ctx, click.Input())
		}
	}
	return consumer.ConsumeSuccess, nil
}

// Close closes the consumer
func (c *Consumer) Close() error {
	if c != nil && c.client != nil {
		return c.client.Shutdown()
	}
	return nil
}
