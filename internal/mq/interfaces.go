package mq

//go:generate mockgen -source=interfaces.go -destination=../mocks/mq.go -package=mocks

import (
	"context"

	"linkpulse/internal/model"
)

// ProducerInterface defines the interface for message production
type ProducerInterface interface {
	SendClick(ctx context.Context, msg *model.ClickMessage) error
	Close() error
}

// ConsumerInterface defines the interface for message consumption
type ConsumerInterface interface {
	Subscribe() error
	Close() error
}

var (
	_ ProducerInterface = (*Producer)(nil)
	_ ConsumerInterface = (*Consumer)(nil)
)
