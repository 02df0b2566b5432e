package alert

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ufobeep/quarantine/pkg/domain"
	domainAlert "github.com/ufobeep/quarantine/pkg/domain/alert"
	infraCache "github.com/ufobeep/quarantine/pkg/infra/cache"
	"github.com/ufobeep/quarantine/pkg/infra/cache/channel"
	"github.com/ufobeep/quarantine/pkg/infra/cache/event"
)

// Evictor drops an alert from the working set. The system of record is
// untouched; the alert simply leaves this session's view.
type Evictor interface {
	Evict(ctx context.Context, id uuid.UUID) error
}

type evictor struct {
	logger    *logrus.Logger
	alerts    domainAlert.Repository
	publisher infraCache.EventPublisher
}

func NewEvictor(logger *logrus.Logger, alerts domainAlert.Repository, publisher infraCache.EventPublisher) Evictor {
	return &evictor{
		logger:    logger,
		alerts:    alerts,
		publisher: publisher,
	}
}

func (e *evictor) Evict(ctx context.Context, id uuid.UUID) error {
	if err := e.alerts.Evict(ctx, id); err != nil {
		if domain.IsNotFoundError(err) {
			return err
		}
		e.logger.WithError(err).Error("failed to evict alert")
		return err
	}
	if err := e.publisher.Publish(
		ctx,
		channel.ModerationEventsChannel,
		event.AlertEvictedEvent{
			AlertID: id.String(),
		},
	); err != nil {
		e.logger.WithError(err).Error("failed to publish eviction event")
	}
	return nil
}
