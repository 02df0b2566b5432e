package cache

import (
	"context"

	"github.com/ufobeep/quarantine/pkg/infra/cache/channel"
	"github.com/ufobeep/quarantine/pkg/infra/cache/event"
)

type EventPublisher interface {
	Publish(ctx context.Context, channel channel.Channel, ev event.Event) error
}
