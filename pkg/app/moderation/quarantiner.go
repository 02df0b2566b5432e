package moderation

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ufobeep/quarantine/pkg/domain/alert"
	infraCache "github.com/ufobeep/quarantine/pkg/infra/cache"
	"github.com/ufobeep/quarantine/pkg/infra/cache/channel"
	"github.com/ufobeep/quarantine/pkg/infra/cache/event"
	"github.com/ufobeep/quarantine/pkg/infra/metrics"
	"github.com/ufobeep/quarantine/pkg/infra/syncgateway"
)

// Quarantiner applies a moderator's manual decision: the local working set
// is updated first, then the decision is queued for the sync gateway. The
// local update happens-before the outbound sync for the same alert.
type Quarantiner interface {
	Quarantine(ctx context.Context, alertID uuid.UUID, cmd QuarantineCommand) (alert.EnrichedAlert, error)
}

type quarantiner struct {
	logger    *logrus.Logger
	alerts    alert.Repository
	outbox    syncgateway.OutboxRepository
	publisher infraCache.EventPublisher
	now       func() time.Time
}

func NewQuarantiner(
	logger *logrus.Logger,
	alerts alert.Repository,
	outbox syncgateway.OutboxRepository,
	publisher infraCache.EventPublisher,
) Quarantiner {
	return &quarantiner{
		logger:    logger,
		alerts:    alerts,
		outbox:    outbox,
		publisher: publisher,
		now:       time.Now,
	}
}

func (q *quarantiner) Quarantine(ctx context.Context, alertID uuid.UUID, cmd QuarantineCommand) (alert.EnrichedAlert, error) {
	current, err := q.alerts.Get(ctx, alertID)
	if err != nil {
		return alert.EnrichedAlert{}, err
	}

	st := ApplyManualQuarantine(current.Quarantine, cmd, q.now())
	updated := current.WithQuarantine(st)

	if err := q.alerts.Put(ctx, updated); err != nil {
		q.logger.WithError(err).Error("failed to apply quarantine locally")
		return alert.EnrichedAlert{}, err
	}
	metrics.DecisionsTotal.WithLabelValues(string(st.Action), "manual").Inc()

	// Local state is committed; delivery failures from here on are
	// recoverable and never roll it back.
	outboxCmd, err := syncgateway.NewQuarantineCommand(alertID, st)
	if err != nil {
		q.logger.WithError(err).Error("failed to build sync command")
	} else if err := q.outbox.Enqueue(ctx, outboxCmd); err != nil {
		q.logger.WithError(err).WithField("alert_id", alertID).Error("failed to enqueue sync command")
	}

	reasons := make([]string, 0, len(st.Reasons))
	for _, r := range st.Reasons {
		reasons = append(reasons, string(r))
	}
	if err := q.publisher.Publish(
		ctx,
		channel.ModerationEventsChannel,
		event.AlertQuarantinedEvent{
			AlertID:      alertID.String(),
			Action:       string(st.Action),
			Reasons:      reasons,
			ModeratorID:  st.ModeratorID,
			CustomReason: st.CustomReason,
		},
	); err != nil {
		q.logger.WithError(err).Error("failed to publish quarantine event")
	}

	return updated, nil
}
