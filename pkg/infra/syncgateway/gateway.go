package syncgateway

import (
	"context"

	"github.com/google/uuid"

	"github.com/ufobeep/quarantine/pkg/domain/quarantine"
)

// Gateway pushes moderator decisions to the system of record. Delivery is
// at-least-once; the server applies calls idempotently keyed by alert id, so
// retrying after an ambiguous failure is safe.
type Gateway interface {
	SyncQuarantine(ctx context.Context, alertID uuid.UUID, action quarantine.Action, reasons []quarantine.Reason, customReason string) error
	SyncApproval(ctx context.Context, alertID uuid.UUID, moderatorID, moderatorName string) error
}
