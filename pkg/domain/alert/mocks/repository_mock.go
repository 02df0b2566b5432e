package mocks

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/ufobeep/quarantine/pkg/domain/alert"
)

type Repository struct {
	mock.Mock
}

func NewRepository(t *testing.T) *Repository {
	m := &Repository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *Repository) Get(ctx context.Context, id uuid.UUID) (alert.EnrichedAlert, error) {
	args := m.Called(ctx, id)
	a, _ := args.Get(0).(alert.EnrichedAlert)
	return a, args.Error(1)
}

func (m *Repository) Put(ctx context.Context, a alert.EnrichedAlert) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *Repository) List(ctx context.Context) ([]alert.EnrichedAlert, error) {
	args := m.Called(ctx)
	alerts, _ := args.Get(0).([]alert.EnrichedAlert)
	return alerts, args.Error(1)
}

func (m *Repository) Evict(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
