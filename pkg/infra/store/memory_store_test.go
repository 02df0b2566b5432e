package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ufobeep/quarantine/pkg/domain"
	"github.com/ufobeep/quarantine/pkg/domain/alert"
	"github.com/ufobeep/quarantine/pkg/domain/quarantine"
)

func seedAlert(id uuid.UUID) alert.EnrichedAlert {
	return alert.New(alert.Sighting{
		ID:         id,
		ReporterID: "reporter-1",
		Category:   "light",
		Status:     alert.StatusActive,
		Level:      alert.LevelLow,
		CreatedAt:  time.Date(2026, 8, 1, 20, 0, 0, 0, time.UTC),
	})
}

func TestMemoryStore_PutAndGet(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	id := uuid.New()

	require.NoError(t, s.Put(ctx, seedAlert(id)))

	got, err := s.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, got.Sighting.ID)
}

func TestMemoryStore_GetUnknown(t *testing.T) {
	s := NewMemoryStore()

	_, err := s.Get(context.Background(), uuid.New())
	assert.True(t, domain.IsNotFoundError(err))
}

func TestMemoryStore_PutReplacesExisting(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	id := uuid.New()

	require.NoError(t, s.Put(ctx, seedAlert(id)))

	updated := seedAlert(id)
	st := quarantine.NewState()
	st.Action = quarantine.ActionHidePublic
	updated = updated.WithQuarantine(st)
	require.NoError(t, s.Put(ctx, updated))

	got, err := s.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, quarantine.ActionHidePublic, got.Quarantine.Action)

	all, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestMemoryStore_Evict(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	id := uuid.New()

	require.NoError(t, s.Put(ctx, seedAlert(id)))
	require.NoError(t, s.Evict(ctx, id))

	_, err := s.Get(ctx, id)
	assert.True(t, domain.IsNotFoundError(err))

	assert.True(t, domain.IsNotFoundError(s.Evict(ctx, id)))
}

func TestMemoryStore_ListSnapshotIsStable(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	id := uuid.New()

	require.NoError(t, s.Put(ctx, seedAlert(id)))

	snapshot, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, snapshot, 1)

	// Writes after the snapshot was taken do not leak into it.
	require.NoError(t, s.Put(ctx, seedAlert(uuid.New())))
	require.NoError(t, s.Evict(ctx, id))

	assert.Len(t, snapshot, 1)
	assert.Equal(t, id, snapshot[0].Sighting.ID)
}

func TestMemoryStore_ConcurrentWriters(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 50; j++ {
				_ = s.Put(ctx, seedAlert(uuid.New()))
				_, _ = s.List(ctx)
			}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}

	all, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 400)
}
