package mq

import (
	"context"
	"fmt"
	"strconv"

	"linkpulse/internal/config"
	"linkpulse/internal/model"

	"github.com/apache/rocketmq-client-go/v2"
	"github.com/apache/rocketmq-client-go/v2/primitive"
	"github.com/apache/rocketmq-client-go/v2/producer"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
)

const clickTag = "click"

// Producer handles message production to RocketMQ
type Producer struct {
	client rocketmq.Producer
	topic  string
}

// NewProducer creates a new RocketMQ producer
func NewProducer(cfg *config.RocketMQConfig) (*Producer, error) {
	p, err := rocketmq.NewProducer(
		producer.WithNameServer([]string{cfg.NameServer}),
		producer.WithRetry(3),
		producer.WithGroupName(cfg.Group+"_producer"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create RocketMQ producer: %w", err)
	}

	if err := p.Start(); err != nil {
		return nil, fmt.Errorf("failed to start RocketMQ producer: %w", err)
	}

	log.Info().Str("topic", cfg.Topic).Msg("RocketMQ producer started")

	return &Producer{
		client: p,
		topic:  cfg.Topic,
	}, nil
}

// SendClick publishes a click for the consumer side to record
func (p *Producer) SendClick(ctx context.Context, msg *model.ClickMessage) error {
	if p == nil {
		return nil // Producer disabled
	}

	m, err := newClickMessage(p.topic, msg)
	if err != nil {
		return err
	}

	result, err := p.client.SendSync(ctx, m)
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}

	log.Debug().
		Str("msg_id", result.MsgID).
		Int64("link_id", msg.LinkID).
		Str("short_code", msg.ShortCode).
		Msg("Click sent to RocketMQ")

	return nil
}

func newClickMessage(topic string, msg *model.ClickMessage) (*primitive.Message, error) {
	body, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal message: %w", err)
	}

	m := primitive.NewMessage(topic, body)
	m.WithTag(clickTag)
	m.WithKeys([]string{strconv.FormatInt(msg.LinkID, 10)})
	return m, nil
}

// Close closes the producer
func (p *Producer) Close() error {
	if p != nil && p.client != nil {
		return p.client.Shutdown()
	}
	return nil
}
