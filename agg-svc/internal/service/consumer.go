package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"foodapp/agg-svc/internal/domain"

	"github.com/segmentio/kafka-go"
)

const defaultRetryDelay = time.Second

type Consumer struct {
	Reader     MessageReader
	Store      StoreInterface
	RetryDelay time.Duration
}

func NewConsumer(reader MessageReader, store StoreInterface) *Consumer {
	return &Consumer{
		Reader:     reader,
		Store:      store,
		RetryDelay: defaultRetryDelay,
	}
}

// Start consumes until ctx is cancelled. An offset is committed only after
// its message has been handled, so an event that could not be recorded is
// retried here and, if the consumer stops first, redelivered on restart.
func (c *Consumer) Start(ctx context.Context) error {
	log.Println("[agg-svc] consumer started")
	for {
		message, err := c.Reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Println("[agg-svc] consumer stopped")
				return nil
			}
			log.Printf("[agg-svc] error fetching message: %v", err)
			if !c.pause(ctx) {
				return nil
			}
			continue
		}

		for {
			err := c.HandleMessage(ctx, message)
			if err == nil {
				break
			}
			log.Printf("[agg-svc] error recording message at offset %d, retrying: %v", message.Offset, err)
			if !c.pause(ctx) {
				log.Println("[agg-svc] consumer stopped")
				return nil
			}
		}

		if err := c.Reader.CommitMessages(ctx, message); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			log.Printf("[agg-svc] failed to commit offset %d: %v", message.Offset, err)
		}
	}
}

func (c *Consumer) pause(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(c.RetryDelay):
		return true
	}
}

// HandleMessage returns an error only when the event should be retried.
// Malformed messages and unknown event types are logged and dropped.
func (c *Consumer) HandleMessage(ctx context.Context, message kafka.Message) error {
	var event domain.OrderEvent
	if err := json.Unmarshal(message.Value, &event); err != nil {
		log.Printf("[agg-svc] skipping malformed message at offset %d: %v", message.Offset, err)
		return nil
	}
	if event.Type != domain.EventOrderPlaced {
		return nil
	}

	return c.ProcessOrder(ctx, event)
}

func (c *Consumer) ProcessOrder(ctx context.Context, event domain.OrderEvent) error {
	if event.Type != domain.EventOrderPlaced {
		return nil
	}

	recorded, err := c.Store.RecordOrder(ctx, event)
	if err != nil {
		return err
	}
	if !recorded {
		log.Printf("[agg-svc] order %d already recorded, skipping", event.OrderID)
		return nil
	}

	log.Printf("[agg-svc] recorded order %d: %d lines, total %.2f", event.OrderID, len(event.Items), event.Total)
	return nil
}
