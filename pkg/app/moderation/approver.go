package moderation

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ufobeep/quarantine/pkg/domain/alert"
	"github.com/ufobeep/quarantine/pkg/domain/quarantine"
	infraCache "github.com/ufobeep/quarantine/pkg/infra/cache"
	"github.com/ufobeep/quarantine/pkg/infra/cache/channel"
	"github.com/ufobeep/quarantine/pkg/infra/cache/event"
	"github.com/ufobeep/quarantine/pkg/infra/metrics"
	"github.com/ufobeep/quarantine/pkg/infra/syncgateway"
)

// Approver clears an alert. Approval always grants public visibility
// regardless of prior automated findings.
type Approver interface {
	Approve(ctx context.Context, alertID uuid.UUID, moderatorID, moderatorName string, metadata map[string]string) (alert.EnrichedAlert, error)
}

type approver struct {
	logger    *logrus.Logger
	alerts    alert.Repository
	outbox    syncgateway.OutboxRepository
	publisher infraCache.EventPublisher
	now       func() time.Time
}

func NewApprover(
	logger *logrus.Logger,
	alerts alert.Repository,
	outbox syncgateway.OutboxRepository,
	publisher infraCache.EventPublisher,
) Approver {
	return &approver{
		logger:    logger,
		alerts:    alerts,
		outbox:    outbox,
		publisher: publisher,
		now:       time.Now,
	}
}

func (a *approver) Approve(ctx context.Context, alertID uuid.UUID, moderatorID, moderatorName string, metadata map[string]string) (alert.EnrichedAlert, error) {
	current, err := a.alerts.Get(ctx, alertID)
	if err != nil {
		return alert.EnrichedAlert{}, err
	}

	st := ApplyApproval(current.Quarantine, moderatorID, moderatorName, metadata, a.now())
	updated := current.WithQuarantine(st)

	if err := a.alerts.Put(ctx, updated); err != nil {
		a.logger.WithError(err).Error("failed to apply approval locally")
		return alert.EnrichedAlert{}, err
	}
	metrics.DecisionsTotal.WithLabelValues(string(quarantine.ActionApproved), "manual").Inc()

	outboxCmd, err := syncgateway.NewApprovalCommand(alertID, moderatorID, moderatorName)
	if err != nil {
		a.logger.WithError(err).Error("failed to build sync command")
	} else if err := a.outbox.Enqueue(ctx, outboxCmd); err != nil {
		a.logger.WithError(err).WithField("alert_id", alertID).Error("failed to enqueue sync command")
	}

	if err := a.publisher.Publish(
		ctx,
		channel.ModerationEventsChannel,
		event.AlertApprovedEvent{
			AlertID:       alertID.String(),
			ModeratorID:   moderatorID,
			ModeratorName: moderatorName,
		},
	); err != nil {
		a.logger.WithError(err).Error("failed to publish approval event")
	}

	return updated, nil
}
