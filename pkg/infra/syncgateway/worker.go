package syncgateway

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ufobeep/quarantine/pkg/domain/quarantine"
	"github.com/ufobeep/quarantine/pkg/infra/metrics"
)

const (
	defaultBatchSize = 50
	baseRetryDelay   = 5 * time.Second
	maxRetryDelay    = 10 * time.Minute
	maxBackoffShift  = 7
)

// Worker drains the outbox in the background. Commands for the same alert
// are delivered in enqueue order; a failure parks the command for a later
// retry, and the Due query keeps younger commands for that alert out of
// every pass until the parked one is delivered.
type Worker struct {
	logger   *logrus.Logger
	repo     OutboxRepository
	gateway  Gateway
	interval time.Duration
	batch    int
}

func NewWorker(logger *logrus.Logger, repo OutboxRepository, gateway Gateway, interval time.Duration) *Worker {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	return &Worker{
		logger:   logger,
		repo:     repo,
		gateway:  gateway,
		interval: interval,
		batch:    defaultBatchSize,
	}
}

// Run blocks until ctx is cancelled.
func (w *Worker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			w.Drain(ctx)
		}
	}
}

// Drain delivers every due command once. Exported so tests and shutdown
// paths can flush without a ticker.
func (w *Worker) Drain(ctx context.Context) {
	now := time.Now()
	commands, err := w.repo.Due(ctx, now, w.batch)
	if err != nil {
		w.logger.WithError(err).Error("failed to load due outbox commands")
		return
	}

	for _, cmd := range commands {
		if err := w.deliver(ctx, cmd); err != nil {
			delay := backoff(cmd.Attempts)
			if markErr := w.repo.MarkFailed(ctx, cmd.ID, now.Add(delay), err.Error()); markErr != nil {
				w.logger.WithError(markErr).Error("failed to park outbox command")
			}
			w.logger.WithError(err).
				WithField("alert_id", cmd.AlertID).
				WithField("attempts", cmd.Attempts+1).
				Warn("sync delivery failed, will retry")
			continue
		}
		if err := w.repo.MarkDelivered(ctx, cmd.ID, time.Now()); err != nil {
			w.logger.WithError(err).Error("failed to mark outbox command delivered")
		}
	}

	if pending, err := w.repo.PendingCount(ctx); err == nil {
		metrics.OutboxPending.Set(float64(pending))
	}
}

func (w *Worker) deliver(ctx context.Context, cmd Command) error {
	alertID, err := uuid.Parse(cmd.AlertID)
	if err != nil {
		return fmt.Errorf("outbox command %d has invalid alert id: %w", cmd.ID, err)
	}
	switch cmd.Kind {
	case CommandQuarantine:
		var payload QuarantinePayload
		if err := json.Unmarshal([]byte(cmd.Payload), &payload); err != nil {
			return fmt.Errorf("failed to unmarshal quarantine payload: %w", err)
		}
		reasons := make([]quarantine.Reason, 0, len(payload.Reasons))
		for _, r := range payload.Reasons {
			reasons = append(reasons, quarantine.Reason(r))
		}
		err := w.gateway.SyncQuarantine(ctx, alertID, quarantine.Action(payload.Action), reasons, payload.CustomReason)
		w.observe("quarantine", err)
		return err
	case CommandApproval:
		var payload ApprovalPayload
		if err := json.Unmarshal([]byte(cmd.Payload), &payload); err != nil {
			return fmt.Errorf("failed to unmarshal approval payload: %w", err)
		}
		err := w.gateway.SyncApproval(ctx, alertID, payload.ModeratorID, payload.ModeratorName)
		w.observe("approval", err)
		return err
	default:
		return fmt.Errorf("unknown outbox command kind: %q", cmd.Kind)
	}
}

func (w *Worker) observe(operation string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	metrics.SyncAttemptsTotal.WithLabelValues(operation, outcome).Inc()
}

func backoff(attempts int) time.Duration {
	if attempts > maxBackoffShift {
		attempts = maxBackoffShift
	}
	delay := baseRetryDelay << uint(attempts)
	if delay > maxRetryDelay {
		return maxRetryDelay
	}
	return delay
}
