package service

import (
	"context"

	"foodapp/agg-svc/internal/domain"
	"foodapp/agg-svc/internal/storage"

	"github.com/segmentio/kafka-go"
)

type StoreInterface interface {
	RecordOrder(ctx context.Context, event domain.OrderEvent) (bool, error)
}

// MessageReader is the part of *kafka.Reader the consumer uses.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
}

type ConsumerInterface interface {
	Start(ctx context.Context) error
	HandleMessage(ctx context.Context, message kafka.Message) error
	ProcessOrder(ctx context.Context, event domain.OrderEvent) error
}

var (
	_ StoreInterface    = (*storage.Store)(nil)
	_ MessageReader     = (*kafka.Reader)(nil)
	_ ConsumerInterface = (*Consumer)(nil)
)
