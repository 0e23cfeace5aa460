package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"rik-restaurant/activity-svc/internal/domain"

	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
)

var ErrMalformedEvent = errors.New("malformed event")

type Consumer struct {
	Reader MessageReader
	Feed   FeedStore
	Hub    Broadcaster
}

func NewConsumer(reader MessageReader, feed FeedStore, hub Broadcaster) *Consumer {
	return &Consumer{
		Reader: reader,
		Feed:   feed,
		Hub:    hub,
	}
}

// Start reads until ctx is cancelled. Messages that fail to process are
// logged and skipped.
func (c *Consumer) Start(ctx context.Context) {
	log.Info().Msg("activity consumer started")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info().Msg("activity consumer stopped")
				return
			}
			log.Error().Err(err).Msg("failed to read message")
			time.Sleep(time.Second)
			continue
		}
		if err := c.ProcessMessage(ctx, message); err != nil {
			log.Warn().Err(err).Int64("offset", message.Offset).Msg("skipping message")
		}
	}
}

func (c *Consumer) ProcessMessage(ctx context.Context, message kafka.Message) error {
	var event domain.Event
	if err := json.Unmarshal(message.Value, &event); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedEvent, err)
	}
	if event.Type == "" {
		return fmt.Errorf("%w: missing type", ErrMalformedEvent)
	}

	if err := c.Feed.Record(ctx, event); err != nil {
		return fmt.Errorf("record %s: %w", event.Type, err)
	}
	if c.Hub != nil {
		c.Hub.Broadcast(event)
	}
	log.Debug().Str("type", event.Type).Str("identity", event.Identity).Msg("event recorded")
	return nil
}
