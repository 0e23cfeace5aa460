package service

import (
	"context"
	"time"

	"rik-restaurant/restaurant-svc/internal/domain"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var newID = uuid.NewString

// notify publishes after a mutation has been persisted. Failures are logged
// and never undo or fail the mutation.
func notify(ctx context.Context, publisher EventPublisher, event domain.Event) {
	if publisher == nil {
		return
	}
	event.ID = newID()
	event.Timestamp = time.Now().UTC()
	if err := publisher.Publish(ctx, event); err != nil {
		log.Warn().Err(err).Str("type", event.Type).Str("entity_id", event.EntityID).Msg("failed to publish event")
	}
}
