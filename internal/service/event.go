package service

import (
	"context"

	"github.com/rs/zerolog/log"
)

// publishEvent never fails the caller: the write it describes is already committed.
func publishEvent(ctx context.Context, publisher EventPublisher, eventType string, key string, data interface{}) {
	if err := publisher.Publish(ctx, eventType, key, data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "publishEvent").Str("event_type", eventType).Msg("")
	}
}
