package alert

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the in-memory working set of alerts held by a client
// session. The system of record lives server-side behind the sync gateway;
// this collection is the optimistic local view.
type Repository interface {
	Get(ctx context.Context, id uuid.UUID) (EnrichedAlert, error)
	// Put inserts or replaces an alert wholesale. Readers never observe a
	// partially updated alert.
	Put(ctx context.Context, a EnrichedAlert) error
	List(ctx context.Context) ([]EnrichedAlert, error)
	Evict(ctx context.Context, id uuid.UUID) error
}
