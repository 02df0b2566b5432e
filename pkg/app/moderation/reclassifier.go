package moderation

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ufobeep/quarantine/pkg/domain/alert"
	infraCache "github.com/ufobeep/quarantine/pkg/infra/cache"
	"github.com/ufobeep/quarantine/pkg/infra/cache/channel"
	"github.com/ufobeep/quarantine/pkg/infra/cache/event"
	"github.com/ufobeep/quarantine/pkg/infra/metrics"
)

// Reclassifier applies a fresh analysis verdict to an alert already in the
// working set. This is the call site that enforces the override-priority
// rule on every re-enrichment, not just at initial creation: a manual
// decision is never replaced by an automated one.
type Reclassifier interface {
	Reclassify(ctx context.Context, alertID uuid.UUID, analysis alert.ContentAnalysisResult) (alert.EnrichedAlert, error)
}

type reclassifier struct {
	logger    *logrus.Logger
	alerts    alert.Repository
	deriver   Deriver
	publisher infraCache.EventPublisher
}

func NewReclassifier(
	logger *logrus.Logger,
	alerts alert.Repository,
	deriver Deriver,
	publisher infraCache.EventPublisher,
) Reclassifier {
	return &reclassifier{
		logger:    logger,
		alerts:    alerts,
		deriver:   deriver,
		publisher: publisher,
	}
}

func (r *reclassifier) Reclassify(ctx context.Context, alertID uuid.UUID, analysis alert.ContentAnalysisResult) (alert.EnrichedAlert, error) {
	current, err := r.alerts.Get(ctx, alertID)
	if err != nil {
		return alert.EnrichedAlert{}, err
	}

	st := r.deriver.ApplyAutoQuarantine(current.Quarantine, analysis)

	updated := current
	updated.Enrichment = &alert.Enrichment{Analysis: &analysis}
	updated = updated.WithQuarantine(st)

	if err := r.alerts.Put(ctx, updated); err != nil {
		r.logger.WithError(err).Error("failed to apply reclassification locally")
		return alert.EnrichedAlert{}, err
	}

	if st.IsAutoQuarantined() {
		metrics.DecisionsTotal.WithLabelValues(string(st.Action), "auto").Inc()
	}

	reasons := make([]string, 0, len(st.Reasons))
	for _, reason := range st.Reasons {
		reasons = append(reasons, string(reason))
	}
	if err := r.publisher.Publish(
		ctx,
		channel.ModerationEventsChannel,
		event.AlertReclassifiedEvent{
			AlertID:    alertID.String(),
			Action:     string(st.Action),
			Reasons:    reasons,
			Confidence: st.ConfidenceScore,
		},
	); err != nil {
		r.logger.WithError(err).Error("failed to publish reclassification event")
	}

	return updated, nil
}
