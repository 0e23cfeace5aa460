package service

import (
	"context"

	"rik-restaurant/activity-svc/internal/domain"

	"github.com/segmentio/kafka-go"
)

type FeedStore interface {
	Record(ctx context.Context, event domain.Event) error
	Recent(ctx context.Context, limit int64) ([]domain.Event, error)
	ForIdentity(ctx context.Context, identity string, limit int64) ([]domain.Event, error)
	Counts(ctx context.Context) (domain.Counts, error)
}

// MessageReader is the part of *kafka.Reader the consumer needs.
type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type Broadcaster interface {
	Broadcast(event domain.Event)
}

type ActivityServiceInterface interface {
	Recent(ctx context.Context, limit int64) ([]domain.Event, error)
	ForIdentity(ctx context.Context, identity string, limit int64) ([]domain.Event, error)
	Counts(ctx context.Context) (domain.Counts, error)
}

var _ MessageReader = (*kafka.Reader)(nil)
var _ ActivityServiceInterface = (*ActivityService)(nil)
var _ Broadcaster = (*Hub)(nil)
