package syncgateway

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ufobeep/quarantine/pkg/domain/quarantine"
)

type CommandKind string

const (
	CommandQuarantine CommandKind = "quarantine"
	CommandApproval   CommandKind = "approval"
)

// Command is a single moderation decision awaiting delivery to the system of
// record. The local state transition is committed before the command is
// enqueued, so a delivery failure never rolls the local view back.
type Command struct {
	ID            uint        `gorm:"primaryKey"`
	AlertID       string      `gorm:"size:64;not null;index:idx_outbox_alert"`
	Kind          CommandKind `gorm:"size:16;not null"`
	Payload       string      `gorm:"type:text;not null"`
	Attempts      int         `gorm:"not null;default:0"`
	NextAttemptAt time.Time   `gorm:"index:idx_outbox_due"`
	DeliveredAt   *time.Time
	LastError     string    `gorm:"type:text"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
}

func (Command) TableName() string {
	return "moderation_outbox"
}

type QuarantinePayload struct {
	Action       string   `json:"action"`
	Reasons      []string `json:"reasons,omitempty"`
	CustomReason string   `json:"custom_reason,omitempty"`
}

type ApprovalPayload struct {
	ModeratorID   string `json:"moderator_id"`
	ModeratorName string `json:"moderator_name,omitempty"`
}

// NewQuarantineCommand captures the outbound half of a manual quarantine.
func NewQuarantineCommand(alertID uuid.UUID, st quarantine.State) (*Command, error) {
	payload := QuarantinePayload{
		Action:       string(st.Action),
		CustomReason: st.CustomReason,
	}
	for _, r := range st.Reasons {
		payload.Reasons = append(payload.Reasons, string(r))
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal quarantine payload: %w", err)
	}
	return &Command{
		AlertID:       alertID.String(),
		Kind:          CommandQuarantine,
		Payload:       string(b),
		NextAttemptAt: time.Now(),
	}, nil
}

func NewApprovalCommand(alertID uuid.UUID, moderatorID, moderatorName string) (*Command, error) {
	b, err := json.Marshal(ApprovalPayload{
		ModeratorID:   moderatorID,
		ModeratorName: moderatorName,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal approval payload: %w", err)
	}
	return &Command{
		AlertID:       alertID.String(),
		Kind:          CommandApproval,
		Payload:       string(b),
		NextAttemptAt: time.Now(),
	}, nil
}

// OutboxRepository persists commands between the synchronous enqueue and the
// background delivery worker.
type OutboxRepository interface {
	Enqueue(ctx context.Context, cmd *Command) error
	// Due returns undelivered commands whose next attempt is at or before
	// now, oldest first. Only the oldest undelivered command of each alert
	// is eligible: a parked command keeps its younger siblings out of the
	// result until it is delivered, so the system of record always sees an
	// alert's decisions in enqueue order.
	Due(ctx context.Context, now time.Time, limit int) ([]Command, error)
	MarkDelivered(ctx context.Context, id uint, at time.Time) error
	MarkFailed(ctx context.Context, id uint, nextAttempt time.Time, lastError string) error
	PendingCount(ctx context.Context) (int64, error)
}
