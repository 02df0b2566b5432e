package mocks

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/ufobeep/quarantine/pkg/infra/syncgateway"
)

type OutboxRepository struct {
	mock.Mock
}

func NewOutboxRepository(t *testing.T) *OutboxRepository {
	m := &OutboxRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *OutboxRepository) Enqueue(ctx context.Context, cmd *syncgateway.Command) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

func (m *OutboxRepository) Due(ctx context.Context, now time.Time, limit int) ([]syncgateway.Command, error) {
	args := m.Called(ctx, now, limit)
	cmds, _ := args.Get(0).([]syncgateway.Command)
	return cmds, args.Error(1)
}

func (m *OutboxRepository) MarkDelivered(ctx context.Context, id uint, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

func (m *OutboxRepository) MarkFailed(ctx context.Context, id uint, nextAttempt time.Time, lastError string) error {
	args := m.Called(ctx, id, nextAttempt, lastError)
	return args.Error(0)
}

func (m *OutboxRepository) PendingCount(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	count, _ := args.Get(0).(int64)
	return count, args.Error(1)
}
